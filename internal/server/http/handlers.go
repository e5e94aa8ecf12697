package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"xiangqi/internal/game"
	servergame "xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games *servergame.Manager
}

func NewHandler(m *servergame.Manager) *Handler {
	if m == nil {
		m = servergame.NewManager()
	}
	return &Handler{games: m}
}

func (h *Handler) Manager() *servergame.Manager {
	return h.games
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/undo":
		h.handleUndo(w, r)
	case "/api/restart":
		h.handleRestart(w, r)
	case "/api/pgn":
		h.handlePGN(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	// 允许空 body
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
	}

	gs, err := h.games.NewGame(req.FEN)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("new game %s", gs.ID)
	h.writeState(w, gs.ID)
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	mv := dtoToMove(req.Move)
	if req.ICCS != "" {
		parsed, err := xiangqi.ParseMove(req.ICCS)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		mv = parsed
	}
	if !mv.From.Valid() || !mv.To.Valid() {
		http.Error(w, "square out of range", http.StatusBadRequest)
		return
	}

	// 走子和取局面在同一把锁里，别的请求插不进来
	var resp StateResponse
	err := h.games.Play(req.GameID, mv, func(gs *servergame.GameState) {
		resp = stateOf(gs.ID, gs.Game)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, resp)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	h.writeState(w, req.GameID)
}

func (h *Handler) handleUndo(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	var resp UndoResponse
	undone, err := h.games.Undo(req.GameID, func(gs *servergame.GameState) {
		resp.StateResponse = stateOf(gs.ID, gs.Game)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	resp.Undone = undone
	writeJSON(w, resp)
}

func (h *Handler) handleRestart(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	var resp StateResponse
	err := h.games.Restart(req.GameID, func(gs *servergame.GameState) {
		resp = stateOf(gs.ID, gs.Game)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, resp)
}

func (h *Handler) handlePGN(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	var resp PGNResponse
	err := h.games.View(req.GameID, func(gs *servergame.GameState) {
		resp = PGNResponse{GameID: gs.ID, PGN: gs.Game.PGN().String()}
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, resp)
}

func (h *Handler) writeState(w http.ResponseWriter, id string) {
	var resp StateResponse
	err := h.games.View(id, func(gs *servergame.GameState) {
		resp = stateOf(gs.ID, gs.Game)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, resp)
}

// writeError 把领域错误映射成 HTTP 状态码
func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, servergame.ErrGameNotFound):
		code = http.StatusNotFound
	case errors.Is(err, game.ErrNotYourTurn), errors.Is(err, game.ErrGameNotPlaying):
		code = http.StatusConflict
	case errors.Is(err, game.ErrNoPieceAtSource), errors.Is(err, game.ErrIllegalMove):
		code = http.StatusBadRequest
	}
	if code == http.StatusInternalServerError {
		log.Println("unexpected error:", err)
	}
	http.Error(w, err.Error(), code)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
