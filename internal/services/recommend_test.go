package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarun-1313/PrepInterview/internal/models"
)

func TestRecommendationScoreNilProfile(t *testing.T) {
	interview := &models.Interview{
		Role:      "Backend Engineer",
		Type:      "Technical",
		Level:     "Senior",
		Techstack: []string{"Go", "PostgreSQL"},
	}

	assert.Equal(t, 0, RecommendationScore(nil, interview))
}

func TestRecommendationScoreRoleMatch(t *testing.T) {
	profile := &models.UserProfile{PreferredRole: "Backend Engineer"}
	interview := &models.Interview{Role: "Senior Backend Engineer"}

	assert.Equal(t, 50, RecommendationScore(profile, interview))
}

func TestRecommendationScoreRoleMatchIsCaseInsensitive(t *testing.T) {
	profile := &models.UserProfile{PreferredRole: "backend engineer"}
	interview := &models.Interview{Role: "BACKEND ENGINEER"}

	assert.Equal(t, 50, RecommendationScore(profile, interview))
}

func TestRecommendationScoreTechStackMatch(t *testing.T) {
	profile := &models.UserProfile{
		PreferredTechStack: []string{"React", "Node"},
	}
	interview := &models.Interview{
		Techstack: []string{"react", "express", "node"},
	}

	// Both preferred entries match once each.
	assert.Equal(t, 30, RecommendationScore(profile, interview))
}

func TestRecommendationScoreSingleListingTechSatisfiesMultiplePreferred(t *testing.T) {
	profile := &models.UserProfile{
		PreferredTechStack: []string{"Java", "JavaScript"},
	}
	interview := &models.Interview{
		Techstack: []string{"javascript"},
	}

	// "javascript" contains both "java" and "javascript".
	assert.Equal(t, 30, RecommendationScore(profile, interview))
}

func TestRecommendationScoreExperienceAndTypeMatch(t *testing.T) {
	profile := &models.UserProfile{
		Experience:             "Fresher",
		PreferredInterviewType: []string{"Technical", "HR"},
	}
	interview := &models.Interview{
		Level: "Fresher friendly",
		Type:  "Technical",
	}

	assert.Equal(t, 35, RecommendationScore(profile, interview))
}

func TestRecommendationScoreTypeMatchIsExactMembership(t *testing.T) {
	profile := &models.UserProfile{
		PreferredInterviewType: []string{"Technical"},
	}
	interview := &models.Interview{Type: "technical"}

	// Set membership is exact, not case-folded or substring.
	assert.Equal(t, 0, RecommendationScore(profile, interview))
}

func TestRecommendationScoreFullMatch(t *testing.T) {
	profile := &models.UserProfile{
		PreferredRole:          "Frontend Developer",
		PreferredTechStack:     []string{"React", "TypeScript"},
		Experience:             "Junior",
		PreferredInterviewType: []string{"Technical"},
	}
	interview := &models.Interview{
		Role:      "Frontend Developer",
		Type:      "Technical",
		Level:     "Junior",
		Techstack: []string{"React", "TypeScript", "Next.js"},
	}

	assert.Equal(t, 50+30+20+15, RecommendationScore(profile, interview))
}

func TestRecommendationScoreMissingFieldsContributeNothing(t *testing.T) {
	profile := &models.UserProfile{}
	interview := &models.Interview{
		Role:      "Data Engineer",
		Type:      "Behavioral",
		Level:     "Mid",
		Techstack: []string{"Python"},
	}

	assert.Equal(t, 0, RecommendationScore(profile, interview))
	assert.GreaterOrEqual(t, RecommendationScore(profile, interview), 0)
}
