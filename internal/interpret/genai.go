package interpret

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured
const DefaultModel = "gemini-2.0-flash"

// GenAI interprets readings with Google's Gemini API
type GenAI struct {
	client *genai.Client
	model  string
}

// NewGenAI creates a Gemini-backed interpreter
func NewGenAI(ctx context.Context, apiKey, model string) (*GenAI, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required (set GEMINI_API_KEY)")
	}

	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAI{client: client, model: model}, nil
}

// Interpret renders the prompt and asks the model for a reading
func (g *GenAI) Interpret(ctx context.Context, req Request) (Response, error) {
	prompt, err := Prompt(req)
	if err != nil {
		return Response{}, err
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return Response{}, fmt.Errorf("GenAI generate failed: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return Response{}, fmt.Errorf("GenAI returned an empty reading")
	}

	return Response{Reading: text}, nil
}

// Name returns the interpreter name
func (g *GenAI) Name() string {
	return fmt.Sprintf("genai:%s", g.model)
}
