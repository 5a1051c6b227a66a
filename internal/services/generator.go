package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/tarun-1313/PrepInterview/internal/models"
	"github.com/tarun-1313/PrepInterview/internal/repositories"
)

// GeneratorService creates new finalized interviews from a role description,
// asking the model for the question list.
type GeneratorService interface {
	// GenerateQuestions asks the model for a JSON array of questions.
	// Malformed output is logged and treated as empty, never an error.
	GenerateQuestions(ctx context.Context, role, level, interviewType string, techstack []string, amount int) []string
	GenerateInterview(ctx context.Context, req models.GenerateInterviewRequest) (*models.Interview, error)
}

type generatorService struct {
	interviewRepo repositories.InterviewRepository
	gemini        GeminiService
	promptBuilder *PromptBuilder
	model         string
}

func NewGeneratorService(
	interviewRepo repositories.InterviewRepository,
	gemini GeminiService,
	model string,
) GeneratorService {
	return &generatorService{
		interviewRepo: interviewRepo,
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		model:         model,
	}
}

// GenerateQuestions implements GeneratorService.
func (s *generatorService) GenerateQuestions(ctx context.Context, role, level, interviewType string, techstack []string, amount int) []string {
	if s.gemini == nil {
		log.Println("⚠️  No generative service credential configured, skipping question generation")
		return []string{}
	}

	prompt := s.promptBuilder.BuildQuestionPrompt(role, level, interviewType, techstack, amount)

	text, err := s.gemini.GenerateText(ctx, s.model, prompt)
	if err != nil {
		log.Printf("⚠️  Failed to generate interview questions: %v\n", err)
		return []string{}
	}

	var parsed []any
	if err := json.Unmarshal([]byte(extractJSON(text)), &parsed); err != nil {
		log.Printf("⚠️  Generated question list is not a valid array: %v\n", err)
		return []string{}
	}

	questions := make([]string, 0, len(parsed))
	for _, item := range parsed {
		questions = append(questions, fmt.Sprintf("%v", item))
	}

	return questions
}

// GenerateInterview implements GeneratorService.
func (s *generatorService) GenerateInterview(ctx context.Context, req models.GenerateInterviewRequest) (*models.Interview, error) {
	amount := req.Amount
	if amount <= 0 {
		amount = 5
	}

	questions := s.GenerateQuestions(ctx, req.Role, req.Level, req.Type, []string(req.Techstack), amount)

	interview := &models.Interview{
		UserID:     req.UserID,
		Role:       req.Role,
		Type:       req.Type,
		Level:      req.Level,
		Techstack:  []string(req.Techstack),
		Questions:  questions,
		Finalized:  true,
		CoverImage: coverImageForRole(req.Role),
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.interviewRepo.Create(ctx, interview); err != nil {
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}

	log.Printf("✅ Interview %s generated with %d questions\n", interview.ID, len(questions))
	return interview, nil
}

var coverByRole = map[string]string{
	"frontend developer":        "/covers/frontend developer.jpg",
	"full stack developer":      "/covers/Full stack.avif",
	"backend engineer":          "/covers/BD.png",
	"data engineer":             "/covers/data engineer.png",
	"devops engineer":           "/covers/Devops.png",
	"mobile developer":          "/covers/Mobile app.png",
	"machine learning engineer": "/covers/Ml.png",
	"product manager":           "/covers/Product Manager.png",
	"ui/ux designer":            "/covers/UIUX.png",
	"cloud architect":           "/covers/cloud architect.png",
	"security engineer":         "/covers/Security.png",
	"data analyst":              "/covers/data analyst.png",
}

var fallbackCovers = []string{
	"/covers/frontend developer.jpg",
	"/covers/Full stack.avif",
	"/covers/BD.png",
	"/covers/Devops.png",
}

func coverImageForRole(role string) string {
	if cover, ok := coverByRole[strings.ToLower(strings.TrimSpace(role))]; ok {
		return cover
	}
	return fallbackCovers[rand.IntN(len(fallbackCovers))]
}
