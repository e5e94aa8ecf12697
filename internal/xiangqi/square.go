package xiangqi

import (
	"errors"
	"fmt"
	"strings"
)

const (
	Files      = 9
	Ranks      = 10
	NumSquares = Files * Ranks

	// 楚河汉界：黑方占 0..4 行，红方占 5..9 行
	RiverRank = 5
)

// Square 是 rank*Files+file 的下标；rank 0 是黑方底线，rank 9 是红方底线。
type Square int

const NoSquare Square = -1

var ErrSquareOutOfRange = errors.New("square out of range")

func onBoard(file, rank int) bool {
	return file >= 0 && file < Files && rank >= 0 && rank < Ranks
}

func indexOf(file, rank int) Square { return Square(rank*Files + file) }

// NewSquare 越界时返回 ErrSquareOutOfRange。
func NewSquare(file, rank int) (Square, error) {
	if !onBoard(file, rank) {
		return NoSquare, fmt.Errorf("%w: (%d,%d)", ErrSquareOutOfRange, file, rank)
	}
	return indexOf(file, rank), nil
}

// SquareAt 和 NewSquare 一样，但越界时返回 NoSquare。
func SquareAt(file, rank int) Square {
	if !onBoard(file, rank) {
		return NoSquare
	}
	return indexOf(file, rank)
}

func (s Square) Valid() bool { return s >= 0 && s < NumSquares }
func (s Square) File() int   { return int(s) % Files }
func (s Square) Rank() int   { return int(s) / Files }

// InPalace 九宫：3..5 列，红方 7..9 行，黑方 0..2 行
func (s Square) InPalace(side Side) bool {
	if !s.Valid() {
		return false
	}
	f, r := s.File(), s.Rank()
	if f < 3 || f > 5 {
		return false
	}
	switch side {
	case Red:
		return r >= 7 && r <= 9
	case Black:
		return r >= 0 && r <= 2
	}
	return false
}

// OwnHalf 判断该格是否在 side 一方的半场（未过河）
func (s Square) OwnHalf(side Side) bool {
	switch side {
	case Red:
		return s.Rank() >= RiverRank
	case Black:
		return s.Rank() < RiverRank
	}
	return false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func fileDistance(a, b Square) int { return absInt(a.File() - b.File()) }
func rankDistance(a, b Square) int { return absInt(a.Rank() - b.Rank()) }

func chebyshev(a, b Square) int {
	df, dr := fileDistance(a, b), rankDistance(a, b)
	if df > dr {
		return df
	}
	return dr
}

// forwardDir 兵的前进方向：红向上(-1)，黑向下(+1)
func forwardDir(side Side) int {
	switch side {
	case Red:
		return -1
	case Black:
		return +1
	}
	return 0
}

// String 返回 ICCS 坐标：列 a..i，行号 0 在红方底线
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string(rune('a'+s.File())) + string(rune('0'+(Ranks-1-s.Rank())))
}

var ErrInvalidCoordinate = errors.New("invalid coordinate")

// ParseSquare 解析 ICCS 坐标，如 "e0" 是红帅初始位置。
func ParseSquare(str string) (Square, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	if len(str) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidCoordinate, str)
	}
	f := int(str[0]) - 'a'
	d := int(str[1]) - '0'
	if f < 0 || f >= Files || d < 0 || d >= Ranks {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidCoordinate, str)
	}
	return indexOf(f, Ranks-1-d), nil
}

// ParseMove 接受 "h2e2" 和 "H2-E2" 两种写法。
func ParseMove(str string) (Move, error) {
	s := strings.ReplaceAll(strings.TrimSpace(str), "-", "")
	if len(s) != 4 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, str)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}
