package httpserver

import (
	"xiangqi/internal/game"
	"xiangqi/internal/xiangqi"
)

// 前端用的招法结构：from/to 是 0..89 的下标，iccs 形如 "h2e2"
type MoveDTO struct {
	From int    `json:"from"`
	To   int    `json:"to"`
	ICCS string `json:"iccs,omitempty"`
}

// NewGame 请求：fen 为空则标准开局
type NewGameRequest struct {
	FEN string `json:"fen"`
}

// Play 请求：move 和 iccs 二选一，iccs 优先
type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
	ICCS   string  `json:"iccs"`
}

// State / Undo / Restart 请求
type GameRequest struct {
	GameID string `json:"game_id"`
}

// StateResponse new_game / play / state / restart 都返回这个
type StateResponse struct {
	GameID     string    `json:"game_id"`
	Position   string    `json:"position"` // FEN 字符串
	ToMove     int       `json:"to_move"`  // 0=红(w),1=黑(b)
	InCheck    bool      `json:"in_check"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	History    []string  `json:"history"`         // ICCS
	HistoryCN  []string  `json:"history_chinese"` // 如 "炮二平五"
	HistoryWXF []string  `json:"history_wxf"`     // 如 "C2.5"
	Status     string    `json:"status"`          // "ongoing" / "checkmate" / "stalemate"
	Winner     int       `json:"winner"`          // 只在 checkmate 时有意义，否则 -1
}

type UndoResponse struct {
	StateResponse
	Undone bool `json:"undone"`
}

type PGNResponse struct {
	GameID string `json:"game_id"`
	PGN    string `json:"pgn"`
}

func sideToInt(s xiangqi.Side) int {
	switch s {
	case xiangqi.Red:
		return 0
	case xiangqi.Black:
		return 1
	default:
		return -1
	}
}

func statusToString(st game.Status) string {
	switch st.Kind {
	case game.Checkmate:
		return "checkmate"
	case game.Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

func dtoToMove(m MoveDTO) xiangqi.Move {
	return xiangqi.Move{From: xiangqi.Square(m.From), To: xiangqi.Square(m.To)}
}

func moveToDTO(m xiangqi.Move) MoveDTO {
	return MoveDTO{From: int(m.From), To: int(m.To), ICCS: m.String()}
}

func movesToDTO(ms []xiangqi.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

func stateOf(id string, g *game.Game) StateResponse {
	moves := g.Moves()
	history := make([]string, len(moves))
	for i, m := range moves {
		history[i] = m.String()
	}
	st := g.Status()
	return StateResponse{
		GameID:     id,
		Position:   g.FEN(),
		ToMove:     sideToInt(g.Turn()),
		InCheck:    g.InCheck(),
		LegalMoves: movesToDTO(g.LegalMoves()),
		History:    history,
		HistoryCN:  g.ChineseMoves(),
		HistoryWXF: g.WXFMoves(),
		Status:     statusToString(st),
		Winner:     sideToInt(st.Winner),
	}
}
