package models

import (
	"strings"
	"time"
)

// Interview is a schedulable mock-interview definition. Once finalized it is
// published, eligible for discovery and never mutated again.
type Interview struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Role       string    `json:"role"`
	Type       string    `json:"type"`
	Level      string    `json:"level"`
	Techstack  []string  `json:"techstack"`
	Questions  []string  `json:"questions,omitempty"`
	Finalized  bool      `json:"finalized"`
	CoverImage string    `json:"coverImage,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NormalizedType collapses any type containing "mix" (case-insensitive) to
// the canonical "Mixed" label.
func (i *Interview) NormalizedType() string {
	if strings.Contains(strings.ToLower(i.Type), "mix") {
		return "Mixed"
	}
	return i.Type
}

// RecommendedInterview attaches the transient recommendation score computed
// for one listing request. The score is never persisted.
type RecommendedInterview struct {
	Interview
	RecommendationScore int `json:"recommendationScore"`
}
