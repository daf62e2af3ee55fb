package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Festive palette
var (
	colorRed   = lipgloss.Color("#C0392B")
	colorGreen = lipgloss.Color("#27AE60")
	colorGold  = lipgloss.Color("#F4D03F")
	colorMuted = lipgloss.Color("#7F8C8D")
)

var styles = struct {
	Title   lipgloss.Style
	Giver   lipgloss.Style
	Arrow   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Box     lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
	Giver:   lipgloss.NewStyle().Bold(true),
	Arrow:   lipgloss.NewStyle().Foreground(colorGold),
	Muted:   lipgloss.NewStyle().Foreground(colorMuted),
	Success: lipgloss.NewStyle().Foreground(colorGreen),
	Warning: lipgloss.NewStyle().Foreground(colorGold),
	Error:   lipgloss.NewStyle().Foreground(colorRed),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorRed).
		Padding(0, 1),
}

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, styles.Title.Render(title))
}

func printSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, styles.Success.Render("✓ "+msg))
}

func printError(w io.Writer, msg string) {
	fmt.Fprintln(w, styles.Error.Render("✗ "+msg))
}

func printPair(w io.Writer, giver, recipient string) {
	fmt.Fprintf(w, "  %s %s %s\n", styles.Giver.Render(giver), styles.Arrow.Render("→"), recipient)
}
