package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/tarun-1313/PrepInterview/internal/models"
)

// CoachService produces one prep-coach reply per request. It degrades in
// three tiers: no credential configured, model reply, deterministic fallback
// on upstream failure. It never returns an error to the caller.
type CoachService interface {
	Respond(ctx context.Context, profile *models.UserProfile, history []models.ChatMessage) string
}

type coachService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	model         string
}

// NewCoachService builds the responder. A nil gemini means no credential is
// configured; the coach then always answers in offline mode.
func NewCoachService(gemini GeminiService, model string) CoachService {
	return &coachService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		model:         model,
	}
}

// Respond implements CoachService.
func (s *coachService) Respond(ctx context.Context, profile *models.UserProfile, history []models.ChatMessage) string {
	if s.gemini == nil {
		return s.offlineReply(history)
	}

	system := s.promptBuilder.BuildCoachSystemPrompt(profile)

	// The full history is sent verbatim on every turn, so the prompt grows
	// without bound over a long conversation. Known trade-off; a windowing
	// policy would change behavior and cost.
	reply, err := s.gemini.GenerateChat(ctx, s.model, system, history)
	if err != nil {
		log.Printf("⚠️  Prep coach upstream call failed: %v\n", err)
		return s.failureReply(history)
	}

	return reply
}

func (s *coachService) offlineReply(history []models.ChatMessage) string {
	lastUserMessage := latestUserMessage(history)

	lines := []string{
		"Hi, I am your PrepWise Preparation Coach running in local demo mode.",
		"",
		"Here is how you can use this space effectively:",
		"- Tell me your target role, experience, and tech stack.",
		"- Share the job description or interview type you are aiming for.",
		"- Paste any question or topic you are unsure about.",
		"",
		"Based on that, I will outline:",
		"- A focused preparation roadmap.",
		"- How to explain key concepts in interviews.",
		"- Common mistakes and what interviewers expect.",
		"",
	}

	if lastUserMessage != "" {
		lines = append(lines, fmt.Sprintf("You just asked:\n%q\n\nStart by breaking this into 3 parts: definition, how it works in your projects, and trade-offs. Then think of one concrete example from your experience that you can describe in 30-60 seconds.", lastUserMessage))
	} else {
		lines = append(lines, `Start by asking something like: "What should I prepare for a frontend interview with React and TypeScript?" or "How do I explain REST vs GraphQL in interviews?"`)
	}

	return strings.Join(lines, "\n")
}

func (s *coachService) failureReply(history []models.ChatMessage) string {
	lastUserMessage := latestUserMessage(history)

	lines := []string{
		"I had trouble reaching the AI model just now, so I will still give you structured guidance based on your message.",
		"",
	}

	if lastUserMessage != "" {
		lines = append(lines, fmt.Sprintf("You asked:\n%q", lastUserMessage))
	} else {
		lines = append(lines, `You can ask things like: "What should I prepare for a backend interview with Node and React?"`)
	}

	lines = append(lines,
		"",
		"Use this pattern to prepare any topic:",
		"- Start with a one-line definition.",
		"- Explain how it works in your own projects.",
		"- Mention 2-3 pros and 1-2 cons.",
		"- Add a short example from your experience.",
		"",
		"Try sending another question or paste a job description and I will help you turn it into a focused preparation plan.",
	)

	return strings.Join(lines, "\n")
}

func latestUserMessage(history []models.ChatMessage) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == models.RoleUser {
			return history[i].Content
		}
	}
	return ""
}
