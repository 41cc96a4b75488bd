package output

import (
	"fmt"
	"strings"
)

// ScoreBar renders a visual progress bar for a 0-100 score, colored by the
// wellness bands.
// Example: "████████░░ 80/100"
func ScoreBar(score float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int((score / 100.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case score >= 70:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case score >= 40:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%.0f/100", score)))
}

// Bar renders value as a bar scaled against max, without a label.
func Bar(value, max, width int) string {
	if width <= 0 {
		width = 20
	}
	if max <= 0 {
		return strings.Repeat("░", width)
	}
	filled := value * width / max
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// StackedBar renders a 100-point split as three runs of characters,
// positive then neutral then negative.
func StackedBar(positive, neutral, negative, width int) string {
	if width <= 0 {
		width = 20
	}
	p := positive * width / 100
	n := negative * width / 100
	mid := width - p - n
	if mid < 0 {
		mid = 0
	}
	return StyleSuccess.Render(strings.Repeat("█", p)) +
		StyleInfo.Render(strings.Repeat("▒", mid)) +
		StyleError.Render(strings.Repeat("█", n))
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
