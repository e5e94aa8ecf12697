package xiangqi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// InitialFEN 标准开局
const InitialFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1"

var letterToPieceType = map[rune]PieceType{
	'k': PieceGeneral,  // 帅 / 将
	'a': PieceAdvisor,  // 仕 / 士
	'b': PieceElephant, // 相 / 象
	'n': PieceHorse,    // 马
	'r': PieceChariot,  // 车
	'c': PieceCannon,   // 炮
	'p': PieceSoldier,  // 兵 / 卒
}

var pieceTypeToLetter = [...]rune{'.', 'k', 'a', 'b', 'n', 'r', 'c', 'p'}

// PieceToChar 红方大写，黑方小写，空位 '.'
func PieceToChar(p Piece) rune {
	pt := p.Type()
	if p == 0 || pt > PieceSoldier {
		return '.'
	}
	base := pieceTypeToLetter[pt]
	if p.Side() == Red {
		return unicode.ToUpper(base)
	}
	return base
}

func CharToPiece(ch rune) (Piece, bool) {
	pt, ok := letterToPieceType[unicode.ToLower(ch)]
	if !ok {
		return 0, false
	}
	side := Black
	if unicode.IsUpper(ch) {
		side = Red
	}
	return MakePiece(side, pt), true
}

var (
	ErrInvalidFEN = errors.New("invalid FEN")

	// 以下都包了一层 ErrInvalidFEN
	ErrInvalidRankCount = fmt.Errorf("%w: rank count", ErrInvalidFEN)
	ErrInvalidFileCount = fmt.Errorf("%w: file count", ErrInvalidFEN)
	ErrInvalidPiece     = fmt.Errorf("%w: piece", ErrInvalidFEN)
	ErrInvalidTurn      = fmt.Errorf("%w: turn", ErrInvalidFEN)
	ErrInvalidMoveCount = fmt.Errorf("%w: move count", ErrInvalidFEN)
	ErrTooManyGenerals  = fmt.Errorf("%w: more than one general per side", ErrInvalidFEN)
)

// EncodeFEN 10 行用“/”隔开，空位用数字压缩；之后是 w/b、两个 "-" 和步数。
func EncodeFEN(b *Board, side Side, halfMove, fullMove int) string {
	var sb strings.Builder
	for r := 0; r < Ranks; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for f := 0; f < Files; f++ {
			pc := b.Squares[indexOf(f, r)]
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(PieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if side == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	fmt.Fprintf(&sb, " - - %d %d", halfMove, fullMove)
	return sb.String()
}

// DecodeFEN 接受完整 6 段写法，也接受只有盘面和走子方的简写。
func DecodeFEN(fen string) (Board, Side, error) {
	var b Board
	parts := strings.Fields(fen)
	if len(parts) != 2 && len(parts) != 6 {
		return b, NoSide, ErrInvalidFEN
	}

	rows := strings.Split(parts[0], "/")
	if len(rows) != Ranks {
		return b, NoSide, ErrInvalidRankCount
	}
	for r, row := range rows {
		f := 0
		for _, ch := range row {
			if ch >= '1' && ch <= '9' {
				f += int(ch - '0')
				if f > Files {
					return b, NoSide, ErrInvalidFileCount
				}
				continue
			}
			if f >= Files {
				return b, NoSide, ErrInvalidFileCount
			}
			pc, ok := CharToPiece(ch)
			if !ok {
				return b, NoSide, fmt.Errorf("%w %q", ErrInvalidPiece, ch)
			}
			b.Squares[indexOf(f, r)] = pc
			f++
		}
		if f != Files {
			return b, NoSide, ErrInvalidFileCount
		}
	}

	for _, sd := range []Side{Red, Black} {
		n := 0
		for _, pc := range b.Squares {
			if pc != 0 && pc.Side() == sd && pc.Type() == PieceGeneral {
				n++
			}
		}
		if n > 1 {
			return b, NoSide, ErrTooManyGenerals
		}
	}

	var side Side
	switch parts[1] {
	case "w", "W", "r", "R":
		side = Red
	case "b", "B":
		side = Black
	default:
		return b, NoSide, ErrInvalidTurn
	}

	if len(parts) == 6 {
		for _, n := range parts[4:] {
			if v, err := strconv.Atoi(n); err != nil || v < 0 {
				return b, NoSide, ErrInvalidMoveCount
			}
		}
	}
	return b, side, nil
}
