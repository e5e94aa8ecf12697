package xiangqi

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0 // 先手
	Black  Side = 1 // 后手
)

// Opposite 返回对方；NoSide 仍是 NoSide。
func (s Side) Opposite() Side {
	switch s {
	case Red:
		return Black
	case Black:
		return Red
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case Red:
		return "Red"
	case Black:
		return "Black"
	}
	return "None"
}

type PieceType int8

const (
	PieceNone     PieceType = iota
	PieceGeneral            // 帅 / 将
	PieceAdvisor            // 仕 / 士
	PieceElephant           // 相 / 象
	PieceHorse              // 马
	PieceChariot            // 车
	PieceCannon             // 炮
	PieceSoldier            // 兵 / 卒
)

func (pt PieceType) String() string {
	switch pt {
	case PieceGeneral:
		return "General"
	case PieceAdvisor:
		return "Advisor"
	case PieceElephant:
		return "Elephant"
	case PieceHorse:
		return "Horse"
	case PieceChariot:
		return "Chariot"
	case PieceCannon:
		return "Cannon"
	case PieceSoldier:
		return "Soldier"
	}
	return "None"
}

type Piece int8 // 0=空；>0 红；<0 黑；abs=PieceType

func MakePiece(side Side, pt PieceType) Piece {
	if pt == PieceNone || side == NoSide {
		return 0
	}
	if side == Red {
		return Piece(pt)
	}
	return -Piece(pt)
}

func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

func (p Piece) Side() Side {
	if p == 0 {
		return NoSide
	}
	if p > 0 {
		return Red
	}
	return Black
}

var redGlyphs = [...]string{"", "帅", "仕", "相", "马", "车", "炮", "兵"}
var blackGlyphs = [...]string{"", "将", "士", "象", "马", "车", "炮", "卒"}

// String 返回中文棋子名，空位为 "."
func (p Piece) String() string {
	pt := p.Type()
	if p == 0 || pt > PieceSoldier {
		return "."
	}
	if p.Side() == Red {
		return redGlyphs[pt]
	}
	return blackGlyphs[pt]
}

type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// String 返回 ICCS 坐标形式，如 "h2e2"
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
