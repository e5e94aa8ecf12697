package game

import (
	"errors"
	"strconv"
	"strings"

	"xiangqi/internal/xiangqi"
)

// Record 一步棋的完整记录：悔棋时靠 Captured 把被吃的子放回去。
type Record struct {
	Move     xiangqi.Move  `json:"move"`
	Piece    xiangqi.Piece `json:"piece"`
	Captured xiangqi.Piece `json:"captured"`
}

// Game 单局对弈：一个棋盘 + 走子方 + 走子记录 + 状态。
// 不是并发安全的，调用方负责串行访问。
type Game struct {
	board   xiangqi.Board
	turn    xiangqi.Side
	history []Record
	status  Status

	hash   uint64
	hashes []uint64 // hashes[i] 是走完 i 步后的局面哈希

	start     xiangqi.Board // 起始局面，重放记谱用
	startHalf int
	startFull int
	startSide xiangqi.Side
}

// New 标准开局，红先
func New() *Game {
	return newGame(xiangqi.NewBoard(), xiangqi.Red, 0, 1)
}

// FromFEN 从任意局面开始；局面本身已是终局时状态会立即算出来。
func FromFEN(fen string) (*Game, error) {
	b, side, err := xiangqi.DecodeFEN(fen)
	if err != nil {
		return nil, err
	}
	half, full := 0, 1
	if parts := strings.Fields(fen); len(parts) == 6 {
		// DecodeFEN 已经校验过是非负整数
		half, _ = strconv.Atoi(parts[4])
		full, _ = strconv.Atoi(parts[5])
	}
	return newGame(b, side, half, full), nil
}

var ErrMissingMoves = errors.New("expected \"moves\" after FEN")

// FromFENWithMoves 解析 "[position] [fen] <FEN> moves m1 m2 ..."，依次走完。
// startpos 可以代替 FEN。
func FromFENWithMoves(input string) (*Game, error) {
	parts := strings.Fields(strings.TrimSpace(input))
	if len(parts) > 0 && parts[0] == "position" {
		parts = parts[1:]
	}
	if len(parts) > 0 && parts[0] == "fen" {
		parts = parts[1:]
	}

	idx := -1
	for i, p := range parts {
		if p == "moves" {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrMissingMoves
	}

	var g *Game
	if idx == 1 && parts[0] == "startpos" {
		g = New()
	} else {
		var err error
		if g, err = FromFEN(strings.Join(parts[:idx], " ")); err != nil {
			return nil, err
		}
	}

	for _, s := range parts[idx+1:] {
		mv, err := xiangqi.ParseMove(s)
		if err != nil {
			return nil, err
		}
		if err := g.MakeMove(mv.From, mv.To); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func newGame(b xiangqi.Board, side xiangqi.Side, half, full int) *Game {
	g := &Game{
		board:     b,
		turn:      side,
		status:    statusInProgress,
		start:     b,
		startHalf: half,
		startFull: full,
		startSide: side,
	}
	g.hash = b.Hash(side)
	g.hashes = []uint64{g.hash}
	g.updateStatus()
	return g
}

// MakeMove 任何错误都不改动局面。
func (g *Game) MakeMove(from, to xiangqi.Square) error {
	mv := xiangqi.Move{From: from, To: to}

	if g.status.Terminal() {
		return &MoveError{Move: mv, Status: g.status, Err: ErrGameNotPlaying}
	}
	pc := g.board.Get(from)
	if pc == 0 {
		return &MoveError{Move: mv, Err: ErrNoPieceAtSource}
	}
	if pc.Side() != g.turn {
		return &MoveError{Move: mv, Err: ErrNotYourTurn}
	}
	if !g.board.IsLegalMove(from, to) {
		return &MoveError{Move: mv, Err: ErrIllegalMove}
	}

	captured := g.board.MovePiece(from, to)
	g.history = append(g.history, Record{Move: mv, Piece: pc, Captured: captured})
	g.hash = xiangqi.UpdateHash(g.hash, pc, mv, captured)
	g.hashes = append(g.hashes, g.hash)
	g.turn = g.turn.Opposite()

	g.updateStatus()
	return nil
}

// Undo 悔一步：走的子回原位，被吃的子放回去，轮次和状态一并还原。
// 没有可悔的棋时返回 false。
func (g *Game) Undo() bool {
	n := len(g.history)
	if n == 0 {
		return false
	}
	rec := g.history[n-1]
	g.history = g.history[:n-1]

	g.board.Remove(rec.Move.To)
	g.board.Place(rec.Move.From, rec.Piece)
	if rec.Captured != 0 {
		g.board.Place(rec.Move.To, rec.Captured)
	}

	g.hashes = g.hashes[:n]
	g.hash = g.hashes[n-1]
	g.turn = g.turn.Opposite()
	// 被接受的每一步之前的局面都是进行中
	g.status = statusInProgress
	return true
}

// updateStatus 针对当前走子方重新计算状态：
// 任一方没有将 → 直接判负；没有合法走法 → 被将军则将死，否则困毙。
func (g *Game) updateStatus() {
	side := g.turn
	for _, sd := range []xiangqi.Side{side, side.Opposite()} {
		if !g.board.GeneralExists(sd) {
			g.status = Status{Kind: Checkmate, Winner: sd.Opposite()}
			return
		}
	}
	if g.board.HasLegalMove(side) {
		g.status = statusInProgress
		return
	}
	if g.board.IsInCheck(side) {
		g.status = Status{Kind: Checkmate, Winner: side.Opposite()}
		return
	}
	g.status = Status{Kind: Stalemate, Winner: xiangqi.NoSide}
}
