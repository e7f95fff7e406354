package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/VictorDenisov/zoompan/zoompan"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#3b82f6"))

	grabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f59e0b")).
			Background(lipgloss.Color("#3b82f6")).
			Bold(true)
)

func status(t zoompan.Transform, cursor zoompan.Cursor, width int) string {
	text := fmt.Sprintf(" scale %.2f  translate (%.1f, %.1f)  wheel zoom  drag pan  middle/r reset  q quit ",
		t.ScaleX, t.TranslateX, t.TranslateY)
	if cursor == zoompan.CursorGrab {
		return grabStyle.Width(width).Render(text)
	}
	return statusStyle.Width(width).Render(text)
}
