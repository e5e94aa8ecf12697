package notation

import (
	"fmt"
	"strconv"
	"strings"

	"xiangqi/internal/xiangqi"
)

var wxfLetters = [...]byte{
	xiangqi.PieceGeneral:  'K',
	xiangqi.PieceAdvisor:  'A',
	xiangqi.PieceElephant: 'E',
	xiangqi.PieceHorse:    'H',
	xiangqi.PieceChariot:  'R',
	xiangqi.PieceCannon:   'C',
	xiangqi.PieceSoldier:  'P',
}

var wxfDirections = [...]byte{Forward: '+', Backward: '-', Horizontal: '.'}

func wxfLetterToType(c byte) (xiangqi.PieceType, bool) {
	for pt, l := range wxfLetters {
		if l != 0 && l == c {
			return xiangqi.PieceType(pt), true
		}
	}
	return xiangqi.PieceNone, false
}

func wxfSymbolToDirection(c byte) (Direction, bool) {
	for d, s := range wxfDirections {
		if s == c {
			return Direction(d), true
		}
	}
	return 0, false
}

// 同列两子用 +/-（前/后）代替路数；三子以上用 a..e 从前往后编号
func wxfTandem(rank, total int) byte {
	if total == 2 {
		return "+-"[rank-1]
	}
	return byte('a' + rank - 1)
}

// WXF 记法，如 "C2.5"、"H8+7"、"C+.5"
func WXF(b *xiangqi.Board, mv xiangqi.Move) (string, error) {
	p, err := describe(b, mv)
	if err != nil {
		return "", err
	}
	buf := []byte{wxfLetters[p.pc.Type()]}
	if p.total > 1 {
		buf = append(buf, wxfTandem(p.rank, p.total))
	} else {
		buf = strconv.AppendInt(buf, int64(p.file), 10)
	}
	buf = append(buf, wxfDirections[p.dir])
	buf = strconv.AppendInt(buf, int64(p.dest), 10)
	return string(buf), nil
}

// WXFMove 是脱离局面、只按格式拆开的 WXF 着法
type WXFMove struct {
	Type xiangqi.PieceType
	// File 为 0 时看 Tandem：'+' '-' 或 'a'..'e'
	File   int
	Tandem byte
	Dir    Direction
	Dest   int
}

// ParseWXF 只检查格式，不看局面
func ParseWXF(s string) (WXFMove, error) {
	bad := fmt.Errorf("%w: %q", ErrInvalidMove, s)
	if len(s) != 4 {
		return WXFMove{}, bad
	}
	pt, ok := wxfLetterToType(s[0])
	if !ok {
		return WXFMove{}, bad
	}
	wm := WXFMove{Type: pt}

	switch c := s[1]; {
	case c >= '1' && c <= '9':
		wm.File = int(c - '0')
	case c == '+' || c == '-' || (c >= 'a' && c <= 'e'):
		wm.Tandem = c
	default:
		return WXFMove{}, bad
	}

	if wm.Dir, ok = wxfSymbolToDirection(s[2]); !ok {
		return WXFMove{}, bad
	}
	if c := s[3]; c >= '1' && c <= '9' {
		wm.Dest = int(c - '0')
	} else {
		return WXFMove{}, bad
	}
	return wm, nil
}

// ResolveWXF 在 side 的合法着法里找出这句 WXF 对应的一步
func ResolveWXF(b *xiangqi.Board, side xiangqi.Side, text string) (xiangqi.Move, error) {
	text = strings.TrimSpace(text)
	if _, err := ParseWXF(text); err != nil {
		return xiangqi.Move{}, err
	}
	return resolve(b, side, text, WXF)
}
