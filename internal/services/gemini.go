package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/katsura919/codely-backend/internal/models"
)

const systemInstruction = `You are an expert React developer. Generate clean, production-quality component code from the user's request.

Rules:
- Use TypeScript and functional components with hooks.
- Use Tailwind CSS utility classes for styling.
- Keep the component self-contained in a single file.
- Return ONLY the component code, with no explanations and no markdown formatting.`

type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger *log.Logger
}

func NewGeminiService(ctx context.Context, apiKey, modelName string, logger *log.Logger) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	model.SetTopP(0.95)

	return &GeminiService{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// GenerateCode flattens the conversation into a single prompt, calls Gemini
// once, and returns the sanitized component code. No retry: every failure
// surfaces to the caller as-is.
func (s *GeminiService) GenerateCode(ctx context.Context, message string, history []models.ChatMessage) (string, error) {
	prompt := buildPrompt(message, history)

	s.logger.Debug("calling Gemini", "history_turns", len(history), "prompt_chars", len(prompt))

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	rawText := extractText(resp)
	if rawText == "" {
		return "", fmt.Errorf("Gemini returned empty response")
	}

	return SanitizeCode(rawText), nil
}

// buildPrompt concatenates the fixed system instruction, an optional
// transcript of prior turns, and the new user message into one text blob.
// History is flattened into text rather than sent through the multi-turn API.
func buildPrompt(message string, history []models.ChatMessage) string {
	var b strings.Builder

	b.WriteString(systemInstruction)
	b.WriteString("\n\n")

	if len(history) > 0 {
		b.WriteString("Previous conversation:\n")
		for _, turn := range history {
			b.WriteString(turn.Role)
			b.WriteString(": ")
			b.WriteString(turn.Content)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("User request: ")
	b.WriteString(message)
	b.WriteString("\n\nGenerate the component code for this request.")

	return b.String()
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
