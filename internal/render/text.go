package render

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// TerminalWidth returns the width of stdout, or 80 when it is not a terminal
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// IsTerminal reports whether fd is an interactive terminal
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// WrapText wraps text to a specified width, keeping blank-line paragraph breaks
func WrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	for i, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			if i > 0 {
				result = append(result, "")
			}
			continue
		}

		var currentLine string
		for _, word := range words {
			if currentLine == "" {
				currentLine = word
			} else if len(currentLine)+1+len(word) <= width {
				currentLine += " " + word
			} else {
				result = append(result, currentLine)
				currentLine = word
			}
		}
		result = append(result, currentLine)
	}

	if len(result) == 0 {
		return []string{""}
	}
	return result
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// visibleWidth counts the runes left after stripping escape sequences
func visibleWidth(s string) int {
	return len([]rune(StripANSI(s)))
}
