package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"xiangqi/internal/game"
)

// Run g 为 nil 时从标准开局开始
func Run(g *game.Game) error {
	if g == nil {
		g = game.New()
	}
	p := tea.NewProgram(NewModel(g), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
