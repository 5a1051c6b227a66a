package models

import "time"

// Evaluation category names, in the order they appear in a feedback record.
const (
	CategoryCommunicationSkills = "Communication Skills"
	CategoryTechnicalKnowledge  = "Technical Knowledge"
	CategoryProblemSolving      = "Problem-Solving"
	CategoryCulturalRoleFit     = "Cultural & Role Fit"
	CategoryConfidenceClarity   = "Confidence & Clarity"
)

// FeedbackCategories is the fixed set of categories every feedback record
// must carry, each scored 0-100.
var FeedbackCategories = []string{
	CategoryCommunicationSkills,
	CategoryTechnicalKnowledge,
	CategoryProblemSolving,
	CategoryCulturalRoleFit,
	CategoryConfidenceClarity,
}

type CategoryScore struct {
	Name    string `json:"name"`
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// Feedback is a persisted evaluation of one interview session. At most one
// record exists per (interviewId, userId) pair.
type Feedback struct {
	ID                  string          `json:"id"`
	InterviewID         string          `json:"interviewId"`
	UserID              string          `json:"userId"`
	TotalScore          int             `json:"totalScore"`
	CategoryScores      []CategoryScore `json:"categoryScores"`
	Strengths           []string        `json:"strengths"`
	AreasForImprovement []string        `json:"areasForImprovement"`
	FinalAssessment     string          `json:"finalAssessment"`
	CreatedAt           time.Time       `json:"createdAt"`
}
