// Package notation 把 (局面, 着法) 写成中文纵线记法或 WXF 记法，
// 也能把这两种写法还原成着法；另外提供象棋 PGN 的读写。
package notation

import (
	"errors"
	"fmt"
	"sort"

	"xiangqi/internal/xiangqi"
)

type Direction int8

const (
	Forward    Direction = iota // 进 / +
	Backward                    // 退 / -
	Horizontal                  // 平 / .
)

var (
	ErrNoPiece       = errors.New("no piece at source square")
	ErrInvalidMove   = errors.New("invalid move text")
	ErrNoSuchMove    = errors.New("no legal move matches")
	ErrAmbiguousMove = errors.New("move text matches more than one legal move")
)

// FileNumber 各自视角的路数：红方从右往左 1..9，黑方从左往右 1..9（都以红方视角看棋盘）
func FileNumber(sq xiangqi.Square, side xiangqi.Side) int {
	if side == xiangqi.Black {
		return sq.File() + 1
	}
	return xiangqi.Files - sq.File()
}

// DirectionOf 红方向 rank 减小为进，黑方相反
func DirectionOf(from, to xiangqi.Square, side xiangqi.Side) Direction {
	dr := to.Rank() - from.Rank()
	switch {
	case dr == 0:
		return Horizontal
	case (side == xiangqi.Red) == (dr < 0):
		return Forward
	}
	return Backward
}

// 斜着走的子（仕、相、马）进退时写落点路数，直着走的写步数
func movesDiagonally(pt xiangqi.PieceType) bool {
	return pt == xiangqi.PieceAdvisor || pt == xiangqi.PieceElephant || pt == xiangqi.PieceHorse
}

// parts 是两种记法共用的四段：棋子 / 出发位置 / 方向 / 落点
type parts struct {
	pc xiangqi.Piece
	// rank 为 0 表示没有同列同类子，用 file；否则 rank 是从前往后的序号（1 起），total 是同列子数
	file  int
	rank  int
	total int
	dir   Direction
	dest  int
}

func describe(b *xiangqi.Board, mv xiangqi.Move) (parts, error) {
	pc := b.Get(mv.From)
	if pc == 0 {
		return parts{}, fmt.Errorf("%w: %s", ErrNoPiece, mv.From)
	}
	if !mv.To.Valid() {
		return parts{}, fmt.Errorf("%w: %s", ErrInvalidMove, mv)
	}
	side := pc.Side()
	p := parts{
		pc:   pc,
		file: FileNumber(mv.From, side),
		dir:  DirectionOf(mv.From, mv.To, side),
	}

	switch {
	case p.dir == Horizontal, movesDiagonally(pc.Type()):
		p.dest = FileNumber(mv.To, side)
	default:
		p.dest = absInt(mv.To.Rank() - mv.From.Rank())
	}

	if pc.Type() != xiangqi.PieceGeneral {
		same := tandem(b, mv.From)
		if len(same) > 1 {
			p.total = len(same)
			for i, sq := range same {
				if sq == mv.From {
					p.rank = i + 1
				}
			}
		}
	}
	return p, nil
}

// tandem 同一列上的同方同类子，按离对方底线由近到远排序
func tandem(b *xiangqi.Board, from xiangqi.Square) []xiangqi.Square {
	pc := b.Get(from)
	var out []xiangqi.Square
	for r := 0; r < xiangqi.Ranks; r++ {
		sq := xiangqi.SquareAt(from.File(), r)
		if b.Get(sq) == pc {
			out = append(out, sq)
		}
	}
	if pc.Side() == xiangqi.Black {
		sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	}
	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// resolve 在 side 的所有合法着法里找出写法等于 text 的那一步
func resolve(b *xiangqi.Board, side xiangqi.Side, text string, format func(*xiangqi.Board, xiangqi.Move) (string, error)) (xiangqi.Move, error) {
	var found []xiangqi.Move
	for _, mv := range b.LegalMoves(side) {
		s, err := format(b, mv)
		if err == nil && s == text {
			found = append(found, mv)
		}
	}
	switch len(found) {
	case 0:
		return xiangqi.Move{}, fmt.Errorf("%w: %q", ErrNoSuchMove, text)
	case 1:
		return found[0], nil
	}
	return xiangqi.Move{}, fmt.Errorf("%w: %q", ErrAmbiguousMove, text)
}
