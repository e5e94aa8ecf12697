package xiangqi

import (
	"strings"
	"unicode"
)

// Board 按下标存放棋子；值拷贝即为完整克隆。
type Board struct {
	Squares [NumSquares]Piece
}

// 开局盘面，第 0 行是黑方底线
const initialBoardString = `rnbakabnr
.........
.c.....c.
p.p.p.p.p
.........
.........
P.P.P.P.P
.C.....C.
.........
RNBAKABNR`

func parseInitialBoard() Board {
	var b Board
	lines := make([]string, 0, Ranks)
	for _, line := range strings.Split(initialBoardString, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Ranks {
		panic("initialBoardString 行数不为 10")
	}
	for r := 0; r < Ranks; r++ {
		if len(lines[r]) != Files {
			panic("initialBoardString 列数不为 9")
		}
		for f, ch := range lines[r] {
			if ch == '.' {
				continue
			}
			pt, ok := letterToPieceType[unicode.ToLower(ch)]
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = Red
			}
			b.Squares[indexOf(f, r)] = MakePiece(side, pt)
		}
	}
	return b
}

// NewBoard 返回标准开局。
func NewBoard() Board {
	return parseInitialBoard()
}

// EmptyBoard 返回空盘，用于摆局面。
func EmptyBoard() Board {
	return Board{}
}

// Get 越界或空位都返回 0
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return 0
	}
	return b.Squares[sq]
}

func (b *Board) IsEmpty(sq Square) bool { return b.Get(sq) == 0 }

// Place 覆盖 sq 上原有的子
func (b *Board) Place(sq Square, pc Piece) {
	if !sq.Valid() {
		return
	}
	b.Squares[sq] = pc
}

func (b *Board) Remove(sq Square) Piece {
	if !sq.Valid() {
		return 0
	}
	pc := b.Squares[sq]
	b.Squares[sq] = 0
	return pc
}

// MovePiece 把 from 的子挪到 to，返回被吃掉的子（可能为 0）。
// 不做任何规则校验。
func (b *Board) MovePiece(from, to Square) Piece {
	if !from.Valid() || !to.Valid() || b.Squares[from] == 0 {
		return 0
	}
	captured := b.Squares[to]
	b.Squares[to] = b.Squares[from]
	b.Squares[from] = 0
	return captured
}

// Pieces 按下标顺序返回 side 一方所有棋子的位置
func (b *Board) Pieces(side Side) []Square {
	out := make([]Square, 0, 16)
	for sq, pc := range b.Squares {
		if pc != 0 && pc.Side() == side {
			out = append(out, Square(sq))
		}
	}
	return out
}

// FindGeneral 将被吃掉时返回 NoSquare
func (b *Board) FindGeneral(side Side) Square {
	for sq, pc := range b.Squares {
		if pc != 0 && pc.Type() == PieceGeneral && pc.Side() == side {
			return Square(sq)
		}
	}
	return NoSquare
}

func (b *Board) GeneralExists(side Side) bool {
	return b.FindGeneral(side) != NoSquare
}

// CountBetween 统计同一直线上两点之间（不含端点）的棋子数；不同线返回 0。
func (b *Board) CountBetween(from, to Square) int {
	if !from.Valid() || !to.Valid() {
		return 0
	}
	ff, fr := from.File(), from.Rank()
	tf, tr := to.File(), to.Rank()
	count := 0
	switch {
	case ff == tf:
		lo, hi := fr, tr
		if lo > hi {
			lo, hi = hi, lo
		}
		for r := lo + 1; r < hi; r++ {
			if b.Squares[indexOf(ff, r)] != 0 {
				count++
			}
		}
	case fr == tr:
		lo, hi := ff, tf
		if lo > hi {
			lo, hi = hi, lo
		}
		for f := lo + 1; f < hi; f++ {
			if b.Squares[indexOf(f, fr)] != 0 {
				count++
			}
		}
	}
	return count
}

// GeneralsFacing 两将同列且中间无子（“对脸”），任何时候都非法。
func (b *Board) GeneralsFacing() bool {
	red := b.FindGeneral(Red)
	black := b.FindGeneral(Black)
	if red == NoSquare || black == NoSquare {
		// 有一方将已经没了：对局终结，但不存在“对脸”问题
		return false
	}
	if red.File() != black.File() {
		return false
	}
	return b.CountBetween(red, black) == 0
}
