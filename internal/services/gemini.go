package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/tarun-1313/PrepInterview/internal/models"
)

// GeminiService wraps the GenAI client behind the two call shapes the core
// needs: free-text generation and schema-constrained object generation. A
// nil GeminiService means no credential is configured, which components
// treat as a mode, not an error.
type GeminiService interface {
	// GenerateText runs a single-prompt completion.
	GenerateText(ctx context.Context, model, prompt string) (string, error)
	// GenerateChat runs a completion over a role-tagged message history with
	// a leading system instruction.
	GenerateChat(ctx context.Context, model, system string, history []models.ChatMessage) (string, error)
	// GenerateObject runs a schema-constrained completion and decodes the
	// result into out. The call fails rather than returning a partial object.
	GenerateObject(ctx context.Context, model, system, prompt string, schema *genai.Schema, out any) error
}

type geminiService struct {
	client *genai.Client
}

func NewGeminiService(apiKey string) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{client: client}, nil
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	return responseText(resp)
}

// GenerateChat implements GeminiService.
func (g *geminiService) GenerateChat(ctx context.Context, model, system string, history []models.ChatMessage) (string, error) {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := genai.RoleUser
		if msg.Role == models.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: msg.Content}},
		})
	}

	config := &genai.GenerateContentConfig{}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate chat reply: %w", err)
	}

	return responseText(resp)
}

// GenerateObject implements GeminiService.
func (g *geminiService) GenerateObject(ctx context.Context, model, system, prompt string, schema *genai.Schema, out any) error {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return fmt.Errorf("failed to generate object: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(extractJSON(text)), out); err != nil {
		return fmt.Errorf("failed to unmarshal generated object: %w", err)
	}

	return nil
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}

// extractJSON pulls a JSON object or array out of text the model may have
// wrapped in markdown fences.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
