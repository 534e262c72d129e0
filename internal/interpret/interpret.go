// Package interpret asks a language model to interpret a set of drawn cards.
package interpret

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"
)

// CardInput is one drawn card as handed to the model
type CardInput struct {
	Name    string `json:"name"`
	Meaning string `json:"meaning"`
}

// Request carries the spread name and the drawn cards in position order
type Request struct {
	SpreadName string      `json:"spreadName"`
	Cards      []CardInput `json:"cards"`
}

// Response holds the generated reading text
type Response struct {
	Reading string `json:"reading"`
}

// Interpreter produces a prose reading for a request. It either returns a
// reading or an error, exactly once per call.
type Interpreter interface {
	Interpret(ctx context.Context, req Request) (Response, error)
}

// InterpreterFunc adapts a function to the Interpreter interface
type InterpreterFunc func(ctx context.Context, req Request) (Response, error)

// Interpret calls f
func (f InterpreterFunc) Interpret(ctx context.Context, req Request) (Response, error) {
	return f(ctx, req)
}

var promptTemplate = template.Must(template.New("reading").Parse(
	`You are an expert tarot card reader. You will provide a personalized reading based on the cards selected and their positions in the chosen spread.

Spread Name: {{.SpreadName}}

Cards:
{{range .Cards}}  - Name: {{.Name}}
    Meaning: {{.Meaning}}
{{end}}
Generate a reading that combines the meanings of the cards in the context of the spread. Consider the relationships between the cards and how they influence each other. Focus on providing guidance and insights to the querent.
`))

// Prompt renders the reader prompt for req
func Prompt(req Request) (string, error) {
	if strings.TrimSpace(req.SpreadName) == "" {
		return "", fmt.Errorf("spread name is required")
	}
	if len(req.Cards) == 0 {
		return "", fmt.Errorf("at least one card is required")
	}

	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, req); err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}
	return buf.String(), nil
}
