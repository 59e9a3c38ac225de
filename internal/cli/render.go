package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wallet/internal/model"
)

// Theme colors
var (
	ColorBorder = lipgloss.Color("240")
	ColorHeader = lipgloss.Color("39")
	ColorText   = lipgloss.Color("252")
	ColorMuted  = lipgloss.Color("245")
	ColorGreen  = lipgloss.Color("77")
	ColorOrange = lipgloss.Color("214")
	ColorRed    = lipgloss.Color("203")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorText)
	dimStyle    = lipgloss.NewStyle().Foreground(ColorBorder)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	greenStyle  = lipgloss.NewStyle().Foreground(ColorGreen)
	orangeStyle = lipgloss.NewStyle().Foreground(ColorOrange)
	redStyle    = lipgloss.NewStyle().Foreground(ColorRed)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(52).
		Align(lipgloss.Center).
		Padding(0, 1)
	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table. A row of just "---" draws a
// separator line.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	b.WriteString(dimStyle.Render("│"))
	for i, h := range t.Headers {
		b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("│"))
		}
	}
	b.WriteString(dimStyle.Render("│"))
	b.WriteString("\n")
	rule("├", "┼", "┤")

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			// First column left-aligned, the rest right-aligned.
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			if i == 0 {
				b.WriteString(valueStyle.Render(" " + cell + strings.Repeat(" ", pad) + " "))
			} else {
				b.WriteString(valueStyle.Render(" " + strings.Repeat(" ", pad) + cell + " "))
			}
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")
	return b.String()
}

// RenderStatus returns the budget status colored by severity.
func RenderStatus(status model.BudgetStatus) string {
	switch status {
	case model.Exceeded:
		return redStyle.Render(string(status))
	case model.Warning:
		return orangeStyle.Render(string(status))
	default:
		return greenStyle.Render(string(status))
	}
}

// RenderBalance colors a balance green when non-negative, red otherwise.
func RenderBalance(formatted string, balance float64) string {
	if balance < 0 {
		return redStyle.Render(formatted)
	}
	return greenStyle.Render(formatted)
}

// RenderBudgetBar renders a utilization bar for one budget report.
func RenderBudgetBar(percent float64, width int) string {
	pct := percent / 100
	if pct < 0 {
		pct = 0
	}
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}

	style := greenStyle
	switch {
	case pct > 1:
		style = redStyle
	case pct >= 0.8:
		style = orangeStyle
	}

	bar := style.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled))
	return bar
}

// RenderHorizontalBar scales a value against the column maximum.
func RenderHorizontalBar(value, maxValue float64, maxWidth int) string {
	if maxValue <= 0 {
		return ""
	}
	barLen := int(value / maxValue * float64(maxWidth))
	if barLen < 0 {
		barLen = 0
	}
	return mutedStyle.Render(strings.Repeat("█", barLen))
}

// Muted renders secondary text.
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// Warn renders warning text.
func Warn(s string) string {
	return orangeStyle.Render(s)
}
