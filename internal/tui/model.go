package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"xiangqi/internal/game"
	"xiangqi/internal/xiangqi"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

type Model struct {
	g *game.Game

	cursor   xiangqi.Square
	selected xiangqi.Square
	targets  map[xiangqi.Square]bool

	m        mode
	input    textinput.Model
	logLines []string

	width  int
	height int
}

func NewModel(g *game.Game) Model {
	ti := textinput.New()
	ti.Placeholder = "h2e2 / 炮二平五 / C2.5 / undo / restart / fen / moves / pgn"
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Width = 60

	return Model{
		g:        g,
		cursor:   xiangqi.SquareAt(4, xiangqi.Ranks-1),
		selected: xiangqi.NoSquare,
		m:        modeNormal,
		input:    ti,
		logLines: []string{
			"ready (arrows/hjkl move, enter pick/drop, u undo, r restart, i command, q quit)",
		},
	}
}

// Game 供测试读取当前对局
func (m Model) Game() *game.Game { return m.g }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = min(80, max(30, m.width-4))
		return m, nil

	case tea.KeyMsg:
		switch m.m {
		case modeNormal:
			return m.updateNormal(msg)

		case modeInput:
			switch msg.String() {
			case "esc":
				m.m = modeNormal
				m.input.Blur()
				return m, nil
			case "enter":
				cmdline := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				m.m = modeNormal
				m.input.Blur()
				if cmdline != "" {
					m.execCommand(cmdline)
				}
				return m, nil
			}

			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(0, -1)
	case "down", "j":
		m.moveCursor(0, +1)
	case "left", "h":
		m.moveCursor(-1, 0)
	case "right", "l":
		m.moveCursor(+1, 0)
	case "enter", " ":
		m.pickOrDrop()
	case "esc":
		m.clearSelection()
	case "u":
		m.undo()
	case "r":
		m.restart()
	case "i", ":":
		m.m = modeInput
		m.input.SetValue("")
		m.input.Focus()
	}
	return m, nil
}

func (m *Model) moveCursor(df, dr int) {
	if sq := xiangqi.SquareAt(m.cursor.File()+df, m.cursor.Rank()+dr); sq != xiangqi.NoSquare {
		m.cursor = sq
	}
}

func (m *Model) clearSelection() {
	m.selected = xiangqi.NoSquare
	m.targets = nil
}

// pickOrDrop 第一次按选中己方棋子，第二次按落子；再按自己的子则换选。
func (m *Model) pickOrDrop() {
	pc := m.g.PieceAt(m.cursor)
	if m.selected == xiangqi.NoSquare || (pc != 0 && pc.Side() == m.g.Turn()) {
		if pc == 0 || pc.Side() != m.g.Turn() {
			return
		}
		m.selected = m.cursor
		m.targets = make(map[xiangqi.Square]bool)
		for _, mv := range m.g.LegalMovesFrom(m.cursor) {
			m.targets[mv.To] = true
		}
		return
	}
	m.play(xiangqi.Move{From: m.selected, To: m.cursor})
}

func (m *Model) play(mv xiangqi.Move) {
	if err := m.g.MakeMove(mv.From, mv.To); err != nil {
		m.appendLog(describeError(err))
		return
	}
	m.clearSelection()
	cn := m.g.ChineseMoves()
	m.appendLog(fmt.Sprintf("%d. %s %s", len(cn), mv, cn[len(cn)-1]))
	if st := m.g.Status(); st.Terminal() {
		m.appendLog("game over: " + st.String())
	} else if m.g.InCheck() {
		m.appendLog("check!")
	}
}

func (m *Model) undo() {
	m.clearSelection()
	if m.g.Undo() {
		m.appendLog("undo")
	} else {
		m.appendLog("nothing to undo")
	}
}

func (m *Model) restart() {
	m.g = game.New()
	m.clearSelection()
	m.appendLog("new game")
}

func (m *Model) execCommand(line string) {
	m.appendLog("> " + line)

	parts := strings.Fields(line)
	switch parts[0] {
	case "undo":
		m.undo()
	case "restart", "new":
		m.restart()
	case "fen":
		m.appendLog(m.g.FEN())
	case "moves":
		m.appendLog("moves: " + strings.Join(m.g.ChineseMoves(), " "))
	case "wxf":
		m.appendLog("wxf: " + strings.Join(m.g.WXFMoves(), " "))
	case "iccs":
		var ss []string
		for _, mv := range m.g.Moves() {
			ss = append(ss, mv.String())
		}
		m.appendLog("iccs: " + strings.Join(ss, " "))
	case "pgn":
		for _, l := range strings.Split(strings.TrimRight(m.g.PGN().String(), "\n"), "\n") {
			if l != "" {
				m.appendLog(l)
			}
		}
	case "load":
		g, err := game.FromFEN(strings.Join(parts[1:], " "))
		if err != nil {
			m.appendLog(fmt.Sprintf("load failed: %v", err))
			return
		}
		m.g = g
		m.clearSelection()
		m.appendLog("position loaded")
	default:
		// ICCS、中文、WXF 都认
		mv, err := m.g.ParseMove(parts[0])
		if err != nil {
			m.appendLog(fmt.Sprintf("unknown command: %s", parts[0]))
			return
		}
		m.play(mv)
	}
}

func describeError(err error) string {
	switch {
	case errors.Is(err, game.ErrNoPieceAtSource):
		return "no piece there"
	case errors.Is(err, game.ErrNotYourTurn):
		return "not your piece"
	case errors.Is(err, game.ErrIllegalMove):
		return "illegal move"
	case errors.Is(err, game.ErrGameNotPlaying):
		return "game is over (u to undo, r to restart)"
	}
	return err.Error()
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > 200 {
		m.logLines = m.logLines[len(m.logLines)-200:]
	}
}

func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	turn := "红方走"
	if m.g.Turn() == xiangqi.Black {
		turn = "黑方走"
	}
	status := m.g.Status().String()
	if m.g.InCheck() && !m.g.Status().Terminal() {
		status += " (check)"
	}
	header := titleStyle.Render(fmt.Sprintf("xiangqi  [%s]  %s  cursor:%s", turn, status, m.cursor))

	board := boxStyle.Render(RenderBoard(m.g, m.cursor, m.selected, m.targets))

	logHeight := max(5, m.height-18)
	logStart := max(0, len(m.logLines)-logHeight)
	logBox := boxStyle.Width(max(30, m.width-40)).Height(logHeight).
		Render(strings.Join(m.logLines[logStart:], "\n"))

	var inputLine string
	if m.m == modeInput {
		inputLine = m.input.View()
	} else {
		inputLine = "press i to enter command"
	}
	inputBox := boxStyle.Width(max(30, m.width-2)).Render(inputLine)

	body := lipgloss.JoinHorizontal(lipgloss.Top, board, logBox)
	return header + "\n" + body + "\n" + inputBox + "\n"
}
