package game

import "xiangqi/internal/xiangqi"

// 以下都是只读查询，不改动对局。

// Board 返回棋盘拷贝
func (g *Game) Board() xiangqi.Board { return g.board }

func (g *Game) PieceAt(sq xiangqi.Square) xiangqi.Piece { return g.board.Get(sq) }

func (g *Game) Turn() xiangqi.Side { return g.turn }

func (g *Game) Status() Status { return g.status }

// InCheck 当前走子方是否被将军
func (g *Game) InCheck() bool { return g.board.IsInCheck(g.turn) }

// History 返回走子记录的拷贝，顺序即着法顺序
func (g *Game) History() []Record {
	out := make([]Record, len(g.history))
	copy(out, g.history)
	return out
}

func (g *Game) Moves() []xiangqi.Move {
	out := make([]xiangqi.Move, len(g.history))
	for i, r := range g.history {
		out[i] = r.Move
	}
	return out
}

// LegalMoves 终局后返回 nil
func (g *Game) LegalMoves() []xiangqi.Move {
	if g.status.Terminal() {
		return nil
	}
	return g.board.LegalMoves(g.turn)
}

// LegalMovesFrom 只返回当前走子方的子的走法，给界面高亮落点用
func (g *Game) LegalMovesFrom(sq xiangqi.Square) []xiangqi.Move {
	if g.status.Terminal() || g.board.Get(sq).Side() != g.turn {
		return nil
	}
	return g.board.LegalMovesFrom(sq)
}

func (g *Game) Hash() uint64 { return g.hash }

// RepetitionCount 当前局面在本局中出现的次数（含当前）
func (g *Game) RepetitionCount() int {
	n := 0
	for _, h := range g.hashes {
		if h == g.hash {
			n++
		}
	}
	return n
}

// FEN 半回合数从最近一次吃子算起；回合数从起始局面累加。
func (g *Game) FEN() string {
	half := g.startHalf + len(g.history)
	for i := len(g.history) - 1; i >= 0; i-- {
		if g.history[i].Captured != 0 {
			half = len(g.history) - 1 - i
			break
		}
	}

	plies := len(g.history)
	if g.startSide == xiangqi.Black {
		plies++
	}
	full := g.startFull + plies/2
	return xiangqi.EncodeFEN(&g.board, g.turn, half, full)
}
