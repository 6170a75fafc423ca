package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/colourpush/internal/dynamo"
)

func fg(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

func header() lipgloss.Style {
	return fg(CurrentTheme.Primary).Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(CurrentTheme.Wire)
}

func label() lipgloss.Style { return fg(CurrentTheme.Muted).Width(14) }
func value() lipgloss.Style { return fg(CurrentTheme.Accent).Bold(true) }
func hint() lipgloss.Style  { return fg(CurrentTheme.Muted).Italic(true) }

// Swatch is a block of width cells filled with v.
func Swatch(v dynamo.Vec3, width int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(v.Hex())).
		Render(strings.Repeat(" ", width))
}

// SwatchStrip shows every slot's current colour above its home colour.
func SwatchStrip(slots []dynamo.Slot, width int) string {
	if len(slots) == 0 {
		return ""
	}
	cur := make([]string, len(slots))
	home := make([]string, len(slots))
	for i, s := range slots {
		cur[i] = Swatch(s.Colour, width) + " "
		home[i] = Swatch(s.Home, width) + " "
	}
	top := lipgloss.JoinHorizontal(lipgloss.Top, cur...)
	return lipgloss.JoinVertical(lipgloss.Left, top, top, lipgloss.JoinHorizontal(lipgloss.Top, home...))
}

// SparklineChart renders a mini sparkline from values
func SparklineChart(values []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	// most recent values win when the series is longer than width
	if len(values) > width {
		values = values[len(values)-width:]
	}

	var result strings.Builder
	for _, v := range values {
		idx := int((v - lo) / rng * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}
		result.WriteRune(chars[idx])
	}
	return fg(CurrentTheme.Secondary).Render(result.String())
}

func Separator(width int) string {
	if width < 6 {
		return strings.Repeat("─", width)
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return fg(CurrentTheme.Wire).Render(left + " ◆ " + right)
}
