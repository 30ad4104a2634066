package ux

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	cellStyle = lipgloss.NewStyle().
			PaddingRight(2)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)

// Table renders rows under a styled header, columns padded to the widest
// cell. Good enough for product, cart, and order listings.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder

	var headerCells []string
	for i, h := range headers {
		headerCells = append(headerCells, cellStyle.Render(pad(h, widths[i])))
	}
	b.WriteString(headerStyle.Render(strings.Join(headerCells, "")))
	b.WriteString("\n")

	for _, row := range rows {
		var cells []string
		for i, cell := range row {
			if i < len(widths) {
				cells = append(cells, cellStyle.Render(pad(cell, widths[i])))
			}
		}
		b.WriteString(strings.Join(cells, ""))
		b.WriteString("\n")
	}

	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// Muted renders de-emphasized text
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// Success renders a success line
func Success(s string) string {
	return successStyle.Render(s)
}

// Error renders an error line
func Error(s string) string {
	return errorStyle.Render(s)
}

// Price formats a decimal amount for display
func Price(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
