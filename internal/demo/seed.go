package demo

import (
	"time"

	"github.com/tarun-1313/PrepInterview/internal/models"
)

// Provider supplies the built-in interview set used when the store has no
// finalized interviews yet (first-run and demo deployments). It is a
// degraded-data path, not a cache.
type Provider interface {
	Interviews() []models.Interview
	InterviewByID(id string) *models.Interview
}

type seedProvider struct{}

func NewProvider() Provider {
	return &seedProvider{}
}

func (p *seedProvider) Interviews() []models.Interview {
	out := make([]models.Interview, len(seedInterviews))
	copy(out, seedInterviews)
	return out
}

func (p *seedProvider) InterviewByID(id string) *models.Interview {
	for _, interview := range seedInterviews {
		if interview.ID == id {
			found := interview
			return &found
		}
	}
	return nil
}

var seedInterviews = []models.Interview{
	{
		ID:        "demo-frontend-1",
		UserID:    "demo-user",
		Role:      "Frontend Developer",
		Type:      "Technical",
		Level:     "Junior",
		Techstack: []string{"React", "TypeScript", "Next.js", "Tailwind CSS"},
		Questions: []string{
			"What is the virtual DOM and why does React use it?",
			"How do you manage state in a large React application?",
			"Explain the difference between server and client components.",
		},
		Finalized:  true,
		CoverImage: "/covers/frontend developer.jpg",
		CreatedAt:  time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC),
	},
	{
		ID:        "demo-fullstack-1",
		UserID:    "demo-user",
		Role:      "Full Stack Developer",
		Type:      "Mixed",
		Level:     "Senior",
		Techstack: []string{"Node.js", "Express", "MongoDB", "React"},
		Questions: []string{
			"Walk me through designing a REST API for a booking system.",
			"How do you handle authentication across the stack?",
			"Tell me about a production incident you debugged end to end.",
		},
		Finalized:  true,
		CoverImage: "/covers/Full stack.avif",
		CreatedAt:  time.Date(2024, time.March, 14, 15, 30, 0, 0, time.UTC),
	},
	{
		ID:        "demo-backend-1",
		UserID:    "demo-user",
		Role:      "Backend Engineer",
		Type:      "Behavioral",
		Level:     "Mid",
		Techstack: []string{"Go", "PostgreSQL", "Docker"},
		Questions: []string{
			"Describe a time you disagreed with a technical decision.",
			"How do you prioritize tech debt against feature work?",
		},
		Finalized:  true,
		CoverImage: "/covers/BD.png",
		CreatedAt:  time.Date(2024, time.March, 12, 9, 15, 0, 0, time.UTC),
	},
}
