package render

import (
	"fmt"
	"io"
	"strings"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/mysticguide/internal/card"
	"github.com/arcanaland/mysticguide/internal/locale"
	"github.com/arcanaland/mysticguide/internal/store"
)

var (
	label   = colorize.New(colorize.FgCyan).SprintFunc()
	value   = colorize.New(colorize.FgHiWhite).SprintfFunc()
	heading = colorize.New(colorize.FgMagenta, colorize.Bold).SprintfFunc()
	accent  = colorize.New(colorize.FgYellow).SprintfFunc()
	muted   = colorize.New(colorize.FgHiBlack).SprintfFunc()
)

func suitSymbol(suit string) string {
	switch suit {
	case "Wands":
		return "♣"
	case "Cups":
		return "♥"
	case "Swords":
		return "♠"
	case "Pentacles":
		return "♦"
	default:
		return "•"
	}
}

// CardInfo returns the labelled info lines for c, description wrapped to width
func CardInfo(c card.Card, width int) []string {
	var lines []string
	lines = append(lines, label("Card: ")+value("%s", c.Name))
	lines = append(lines, label("ID:   ")+value("%s", c.ID))

	if c.IsMinor() {
		lines = append(lines, label("Type: ")+value("Minor Arcana"))
		lines = append(lines, label("Suit: ")+value("%s · %s", c.Suit, suitSymbol(c.Suit)))
		lines = append(lines, label("Rank: ")+value("%d", c.Number))
	} else {
		lines = append(lines, label("Type: ")+value("Major Arcana"))
	}

	if len(c.Keywords) > 0 {
		lines = append(lines, label("Keys: ")+value("%s", strings.Join(c.Keywords, ", ")))
	}

	lines = append(lines, "", label("Meaning:"))
	lines = append(lines, WrapText(c.Meaning, width)...)
	return lines
}

// Card prints a card with its ANSI art (if any) on the left and info on the right
func Card(w io.Writer, c card.Card, art string, width int) {
	var artLines []string
	if art != "" {
		artLines = strings.Split(strings.TrimRight(art, "\n"), "\n")
	}

	maxArtWidth := 0
	for _, line := range artLines {
		if n := visibleWidth(line); n > maxArtWidth {
			maxArtWidth = n
		}
	}

	spacing := 4
	infoStartCol := 0
	if maxArtWidth > 0 {
		infoStartCol = maxArtWidth + spacing
	}

	// Calculate available width for text, ensuring it's at least 20 characters
	infoWidth := width - infoStartCol - 2
	if infoWidth < 20 {
		infoWidth = 20
	}
	infoLines := CardInfo(c, infoWidth)

	fmt.Fprintln(w)
	maxLines := max(len(artLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		line := "  "
		if i < len(artLines) {
			line += artLines[i] + strings.Repeat(" ", infoStartCol-visibleWidth(artLines[i]))
		} else {
			line += strings.Repeat(" ", infoStartCol)
		}
		if i < len(infoLines) {
			line += infoLines[i]
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
	fmt.Fprintln(w)
}

// Spreads prints the numbered spread list
func Spreads(w io.Writer, spreads []card.Spread, bundle *locale.Bundle, width int) {
	fmt.Fprintln(w, heading("%s", bundle.T("spreads.title")))
	for i, s := range spreads {
		fmt.Fprintf(w, "%s %s %s\n",
			accent("%d.", i+1),
			value("%s", s.Name),
			muted("(%s, %s)", s.ID, bundle.T("spreads.cards", "count", fmt.Sprint(s.CardCount))))
		for _, line := range WrapText(s.Description, width-5) {
			fmt.Fprintf(w, "   %s\n", line)
		}
	}
}

// Placed prints one drawn card at its position
func Placed(w io.Writer, p card.Placed, bundle *locale.Bundle) {
	fmt.Fprintf(w, "  %s\n", bundle.T("draw.drawn",
		"position", label(p.PositionName),
		"card", value("%s", p.Card.Name)))
	fmt.Fprintf(w, "    %s\n", muted("(%s)", p.PositionDescription))
}

// Reading prints a reading: its cards, then the wrapped interpretation
func Reading(w io.Writer, r store.Reading, bundle *locale.Bundle, width int) {
	fmt.Fprintln(w, heading("%s", bundle.T("reading.title", "spread", r.SpreadName)))
	if r.Date != "" {
		fmt.Fprintln(w, muted("%s  %s", r.Date, r.ID))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, accent("%s", bundle.T("reading.drawnCards")))
	for _, p := range r.CardsInReading {
		Placed(w, p, bundle)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, accent("%s", bundle.T("reading.interpretation")))
	for _, line := range WrapText(r.Interpretation, width-2) {
		fmt.Fprintf(w, "  %s\n", line)
	}
}

// ReadingSummary prints one line per saved reading
func ReadingSummary(w io.Writer, readings []store.Reading) {
	for _, r := range readings {
		names := make([]string, len(r.CardsInReading))
		for i, p := range r.CardsInReading {
			names[i] = p.Card.Name
		}
		fmt.Fprintf(w, "%s  %s  %s\n", accent("%s", r.ID), value("%s", r.SpreadName), muted("%s", r.Date))
		fmt.Fprintf(w, "    %s\n", strings.Join(names, " · "))
	}
}
