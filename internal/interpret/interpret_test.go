package interpret

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeCards() Request {
	return Request{
		SpreadName: "Three-Card Spread",
		Cards: []CardInput{
			{Name: "The Fool", Meaning: "Beginnings."},
			{Name: "Ace of Cups", Meaning: "New feelings."},
			{Name: "The Tower", Meaning: "Upheaval."},
		},
	}
}

func TestPrompt(t *testing.T) {
	prompt, err := Prompt(threeCards())
	require.NoError(t, err)

	assert.Contains(t, prompt, "Spread Name: Three-Card Spread")
	assert.Contains(t, prompt, "  - Name: The Fool\n    Meaning: Beginnings.\n")
	assert.Contains(t, prompt, "  - Name: The Tower\n    Meaning: Upheaval.\n")
	assert.Contains(t, prompt, "Focus on providing guidance")

	// Cards appear in position order.
	assert.Less(t, strings.Index(prompt, "The Fool"), strings.Index(prompt, "Ace of Cups"))
	assert.Less(t, strings.Index(prompt, "Ace of Cups"), strings.Index(prompt, "The Tower"))
}

func TestPrompt_Validation(t *testing.T) {
	_, err := Prompt(Request{Cards: threeCards().Cards})
	assert.Error(t, err)

	_, err = Prompt(Request{SpreadName: "x"})
	assert.Error(t, err)
}

func TestInterpreterFunc(t *testing.T) {
	boom := errors.New("boom")
	var f Interpreter = InterpreterFunc(func(ctx context.Context, req Request) (Response, error) {
		return Response{}, boom
	})
	_, err := f.Interpret(context.Background(), threeCards())
	assert.ErrorIs(t, err, boom)
}

func TestOffline(t *testing.T) {
	resp, err := Offline{}.Interpret(context.Background(), threeCards())
	require.NoError(t, err)
	assert.Contains(t, resp.Reading, "Three-Card Spread")
	assert.Contains(t, resp.Reading, "3. The Tower. Upheaval.")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Offline{}.Interpret(ctx, threeCards())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewGenAI_RequiresKey(t *testing.T) {
	_, err := NewGenAI(context.Background(), "", "")
	assert.Error(t, err)
}
