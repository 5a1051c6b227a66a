package services

import (
	"strings"

	"github.com/tarun-1313/PrepInterview/internal/models"
)

// Recommendation weights. Role alignment dominates, each matching tech adds
// a smaller fixed amount.
const (
	roleMatchWeight       = 50
	techMatchWeight       = 15
	experienceMatchWeight = 20
	typeMatchWeight       = 15
)

// RecommendationScore computes how well an interview matches a profile.
// Additive and order-independent; missing fields contribute nothing. A nil
// profile scores 0 for every interview. The result is never negative.
func RecommendationScore(profile *models.UserProfile, interview *models.Interview) int {
	if profile == nil || interview == nil {
		return 0
	}

	score := 0

	if profile.PreferredRole != "" &&
		strings.Contains(strings.ToLower(interview.Role), strings.ToLower(profile.PreferredRole)) {
		score += roleMatchWeight
	}

	// Each preferred tech counts once; a single listing tech may satisfy
	// several preferred entries.
	for _, preferred := range profile.PreferredTechStack {
		for _, tech := range interview.Techstack {
			if strings.Contains(strings.ToLower(tech), strings.ToLower(preferred)) {
				score += techMatchWeight
				break
			}
		}
	}

	if profile.Experience != "" && interview.Level != "" &&
		strings.Contains(strings.ToLower(interview.Level), strings.ToLower(profile.Experience)) {
		score += experienceMatchWeight
	}

	if interview.Type != "" {
		for _, preferred := range profile.PreferredInterviewType {
			if preferred == interview.Type {
				score += typeMatchWeight
				break
			}
		}
	}

	return score
}
