package services

import (
	"context"
	"encoding/json"

	"google.golang.org/genai"

	"github.com/tarun-1313/PrepInterview/internal/models"
)

// stubGemini records calls and plays back canned responses.
type stubGemini struct {
	textResponse string
	chatResponse string
	objectJSON   string
	err          error

	lastModel   string
	lastSystem  string
	lastPrompt  string
	lastHistory []models.ChatMessage

	textCalls   int
	chatCalls   int
	objectCalls int
}

func (s *stubGemini) GenerateText(_ context.Context, model, prompt string) (string, error) {
	s.textCalls++
	s.lastModel = model
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.textResponse, nil
}

func (s *stubGemini) GenerateChat(_ context.Context, model, system string, history []models.ChatMessage) (string, error) {
	s.chatCalls++
	s.lastModel = model
	s.lastSystem = system
	s.lastHistory = history
	if s.err != nil {
		return "", s.err
	}
	return s.chatResponse, nil
}

func (s *stubGemini) GenerateObject(_ context.Context, model, system, prompt string, _ *genai.Schema, out any) error {
	s.objectCalls++
	s.lastModel = model
	s.lastSystem = system
	s.lastPrompt = prompt
	if s.err != nil {
		return s.err
	}
	return json.Unmarshal([]byte(s.objectJSON), out)
}
