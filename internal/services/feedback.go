package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/tarun-1313/PrepInterview/internal/models"
	"github.com/tarun-1313/PrepInterview/internal/repositories"
)

type FeedbackService interface {
	// Generate evaluates a transcript and persists the resulting feedback
	// record, reusing feedbackID when given so the (interviewId, userId)
	// pair keeps a single record. Nothing is written unless a fully parsed,
	// schema-valid object was obtained.
	Generate(ctx context.Context, interviewID, userID string, transcript []models.ChatMessage, feedbackID string) (string, error)
	GetByInterview(ctx context.Context, interviewID, userID string) (*models.Feedback, error)
}

type feedbackService struct {
	feedbackRepo  repositories.FeedbackRepository
	gemini        GeminiService
	promptBuilder *PromptBuilder
	model         string
}

func NewFeedbackService(
	feedbackRepo repositories.FeedbackRepository,
	gemini GeminiService,
	model string,
) FeedbackService {
	return &feedbackService{
		feedbackRepo:  feedbackRepo,
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		model:         model,
	}
}

// feedbackObject is the schema-constrained shape the model must return.
type feedbackObject struct {
	TotalScore          int                    `json:"totalScore"`
	CategoryScores      []models.CategoryScore `json:"categoryScores"`
	Strengths           []string               `json:"strengths"`
	AreasForImprovement []string               `json:"areasForImprovement"`
	FinalAssessment     string                 `json:"finalAssessment"`
}

// Generate implements FeedbackService.
func (s *feedbackService) Generate(ctx context.Context, interviewID, userID string, transcript []models.ChatMessage, feedbackID string) (string, error) {
	if s.gemini == nil {
		return "", fmt.Errorf("no generative service credential configured")
	}

	prompt := s.promptBuilder.BuildFeedbackPrompt(transcript)

	var object feedbackObject
	if err := s.gemini.GenerateObject(ctx, s.model, feedbackSystemPrompt, prompt, FeedbackSchema(), &object); err != nil {
		return "", fmt.Errorf("failed to generate feedback: %w", err)
	}

	if err := repairFeedbackObject(&object); err != nil {
		return "", fmt.Errorf("invalid feedback object: %w", err)
	}

	feedback := &models.Feedback{
		ID:                  feedbackID,
		InterviewID:         interviewID,
		UserID:              userID,
		TotalScore:          object.TotalScore,
		CategoryScores:      object.CategoryScores,
		Strengths:           object.Strengths,
		AreasForImprovement: object.AreasForImprovement,
		FinalAssessment:     object.FinalAssessment,
		CreatedAt:           time.Now().UTC(),
	}

	id, err := s.feedbackRepo.Save(ctx, feedback)
	if err != nil {
		return "", fmt.Errorf("failed to save feedback: %w", err)
	}

	log.Printf("✅ Feedback %s saved for interview %s\n", id, interviewID)
	return id, nil
}

// GetByInterview implements FeedbackService.
func (s *feedbackService) GetByInterview(ctx context.Context, interviewID, userID string) (*models.Feedback, error) {
	return s.feedbackRepo.FindByInterviewAndUser(ctx, interviewID, userID)
}

// repairFeedbackObject enforces the five-category contract: the categories
// must be exactly the fixed set, and every score is clamped into [0, 100].
func repairFeedbackObject(object *feedbackObject) error {
	if len(object.CategoryScores) != len(models.FeedbackCategories) {
		return fmt.Errorf("expected %d category scores, got %d",
			len(models.FeedbackCategories), len(object.CategoryScores))
	}

	byName := make(map[string]models.CategoryScore, len(object.CategoryScores))
	for _, cs := range object.CategoryScores {
		byName[cs.Name] = cs
	}

	ordered := make([]models.CategoryScore, 0, len(models.FeedbackCategories))
	for _, name := range models.FeedbackCategories {
		cs, ok := byName[name]
		if !ok {
			return fmt.Errorf("missing category score %q", name)
		}
		cs.Score = clampScore(cs.Score)
		ordered = append(ordered, cs)
	}

	object.CategoryScores = ordered
	object.TotalScore = clampScore(object.TotalScore)

	return nil
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
