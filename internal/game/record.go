package game

import (
	"fmt"
	"strings"

	"xiangqi/internal/xiangqi"
	"xiangqi/internal/xiangqi/notation"
)

// ParseMove 依次尝试 ICCS、中文纵线、WXF 三种写法；后两种要看当前局面。
func (g *Game) ParseMove(text string) (xiangqi.Move, error) {
	text = strings.TrimSpace(text)
	if mv, err := xiangqi.ParseMove(text); err == nil {
		return mv, nil
	}
	if _, err := notation.ParseWXF(text); err == nil {
		return notation.ResolveWXF(&g.board, g.turn, text)
	}
	return notation.ParseChinese(&g.board, g.turn, text)
}

// replay 从起始局面逐步重放，用 format 写出每一步
func (g *Game) replay(format func(*xiangqi.Board, xiangqi.Move) (string, error)) []string {
	b := g.start
	out := make([]string, 0, len(g.history))
	for _, r := range g.history {
		s, err := format(&b, r.Move)
		if err != nil {
			s = r.Move.String()
		}
		out = append(out, s)
		b.MovePiece(r.Move.From, r.Move.To)
	}
	return out
}

// ChineseMoves 整局的中文记法，每步一个，如 "炮二平五"
func (g *Game) ChineseMoves() []string { return g.replay(notation.Chinese) }

func (g *Game) WXFMoves() []string { return g.replay(notation.WXF) }

func (g *Game) startFEN() string {
	return xiangqi.EncodeFEN(&g.start, g.startSide, g.startHalf, g.startFull)
}

// PGN 着法用中文记法；不是标准开局时带 FEN 标签
func (g *Game) PGN() *notation.PGN {
	p := &notation.PGN{}
	p.SetTag("Game", "Chinese Chess")
	p.SetTag("Event", "?")
	p.SetTag("Date", "????.??.??")
	p.SetTag("Red", "?")
	p.SetTag("Black", "?")

	switch st := g.status; {
	case st.Kind == Checkmate && st.Winner == xiangqi.Red:
		p.Result = notation.RedWins
	case st.Kind == Checkmate && st.Winner == xiangqi.Black:
		p.Result = notation.BlackWins
	case st.Kind == Stalemate:
		p.Result = notation.Draw
	}
	p.SetTag("Result", p.Result.String())

	if fen := g.startFEN(); fen != xiangqi.InitialFEN {
		p.SetTag("FEN", fen)
	}
	p.Moves = g.ChineseMoves()
	return p
}

// FromPGN 读棋谱并走完全部着法；着法可以混用 ICCS、中文、WXF。
func FromPGN(text string) (*Game, error) {
	p, err := notation.ParsePGN(text)
	if err != nil {
		return nil, err
	}
	g := New()
	if fen, ok := p.Tag("FEN"); ok && fen != "" {
		if g, err = FromFEN(fen); err != nil {
			return nil, err
		}
	}
	for i, s := range p.Moves {
		mv, err := g.ParseMove(s)
		if err != nil {
			return nil, fmt.Errorf("move %d %q: %w", i+1, s, err)
		}
		if err := g.MakeMove(mv.From, mv.To); err != nil {
			return nil, fmt.Errorf("move %d %q: %w", i+1, s, err)
		}
	}
	return g, nil
}
