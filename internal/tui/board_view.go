package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/width"

	"xiangqi/internal/game"
	"xiangqi/internal/xiangqi"
)

const cellWidth = 4

var (
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	blackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	targetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// displayWidth 汉字按两列算
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// pad 居中补齐到 cellWidth 列
func pad(s string) string {
	w := displayWidth(s)
	if w >= cellWidth {
		return s
	}
	left := (cellWidth - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", cellWidth-w-left)
}

// RenderBoard 红方在下。左侧标 ICCS 行号，底部标列字母。
func RenderBoard(g *game.Game, cursor, selected xiangqi.Square, targets map[xiangqi.Square]bool) string {
	b := g.Board()
	var sb strings.Builder
	for r := 0; r < xiangqi.Ranks; r++ {
		if r == xiangqi.RiverRank {
			sb.WriteString("   " + dimStyle.Render("      楚 河              汉 界") + "\n")
		}
		sb.WriteByte(byte('0' + (xiangqi.Ranks - 1 - r)))
		sb.WriteString("  ")
		for f := 0; f < xiangqi.Files; f++ {
			sq := xiangqi.SquareAt(f, r)
			sb.WriteString(cell(b.Get(sq), sq == cursor, sq == selected, targets[sq]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   ")
	for f := 0; f < xiangqi.Files; f++ {
		sb.WriteString(pad(string(rune('a' + f))))
	}
	sb.WriteByte('\n')
	return sb.String()
}

func cell(pc xiangqi.Piece, isCursor, isSelected, isTarget bool) string {
	var s string
	switch {
	case pc != 0:
		s = pc.String()
	case isTarget:
		s = "·"
	default:
		s = "+"
	}
	if isSelected {
		s = "[" + s + "]"
	}
	s = pad(s)

	switch {
	case isCursor:
		return cursorStyle.Render(s)
	case pc == 0 && isTarget:
		return targetStyle.Render(s)
	case pc == 0:
		return dimStyle.Render(s)
	case isTarget:
		return targetStyle.Render(s)
	case pc.Side() == xiangqi.Red:
		return redStyle.Render(s)
	default:
		return blackStyle.Render(s)
	}
}
