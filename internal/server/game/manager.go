package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"xiangqi/internal/game"
	"xiangqi/internal/xiangqi"
)

var ErrGameNotFound = errors.New("game not found")

// Manager 本地内存对局表。game.Game 本身不是并发安全的，
// 所有读写都在 mu 下完成。
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

// NewGame fen 为空时从标准开局开始
func (m *Manager) NewGame(fen string) (*GameState, error) {
	g := game.New()
	if fen != "" {
		var err error
		if g, err = game.FromFEN(fen); err != nil {
			return nil, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	gs := &GameState{
		ID:        uuid.NewString(),
		Game:      g,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[gs.ID] = gs
	return gs, nil
}

// View 在读锁下调用 fn，fn 里只能做只读查询
func (m *Manager) View(id string, fn func(gs *GameState)) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	gs, ok := m.games[id]
	if !ok {
		return ErrGameNotFound
	}
	fn(gs)
	return nil
}

// Play 走一步；走子错误原样返回（*game.MoveError）。
// view 不为 nil 时，在同一把锁内拿走子后的局面，中间不会插进别的请求。
func (m *Manager) Play(id string, mv xiangqi.Move, view func(gs *GameState)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	gs, ok := m.games[id]
	if !ok {
		return ErrGameNotFound
	}
	if err := gs.Game.MakeMove(mv.From, mv.To); err != nil {
		return err
	}
	gs.UpdatedAt = time.Now()
	if view != nil {
		view(gs)
	}
	return nil
}

// Undo view 的用法同 Play
func (m *Manager) Undo(id string, view func(gs *GameState)) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	gs, ok := m.games[id]
	if !ok {
		return false, ErrGameNotFound
	}
	undone := gs.Game.Undo()
	if undone {
		gs.UpdatedAt = time.Now()
	}
	if view != nil {
		view(gs)
	}
	return undone, nil
}

// Restart 丢掉原来的对局，在同一个 ID 下换成新开局
func (m *Manager) Restart(id string, view func(gs *GameState)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	gs, ok := m.games[id]
	if !ok {
		return ErrGameNotFound
	}
	gs.Game = game.New()
	gs.UpdatedAt = time.Now()
	if view != nil {
		view(gs)
	}
	return nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrGameNotFound
	}
	delete(m.games, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
