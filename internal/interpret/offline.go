package interpret

import (
	"context"
	"fmt"
	"strings"
)

// Offline composes a reading from the card meanings without calling a model
type Offline struct{}

// Interpret joins the card meanings into a short reading
func (Offline) Interpret(ctx context.Context, req Request) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	if len(req.Cards) == 0 {
		return Response{}, fmt.Errorf("at least one card is required")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Your %s:\n\n", req.SpreadName)
	for i, c := range req.Cards {
		fmt.Fprintf(&b, "%d. %s. %s\n", i+1, c.Name, c.Meaning)
	}
	b.WriteString("\nRead together, these cards ask you to weigh each influence against the others before acting.")
	return Response{Reading: b.String()}, nil
}
