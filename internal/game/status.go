package game

import (
	"errors"
	"fmt"

	"xiangqi/internal/xiangqi"
)

type StatusKind int8

const (
	InProgress StatusKind = iota
	Checkmate
	Stalemate
)

// Status 是对局状态机的当前值；Winner 只在 Checkmate 时有意义。
type Status struct {
	Kind   StatusKind
	Winner xiangqi.Side
}

var statusInProgress = Status{Kind: InProgress, Winner: xiangqi.NoSide}

// Terminal 将死和困毙都是终局，之后不再接受走子
func (s Status) Terminal() bool { return s.Kind != InProgress }

func (s Status) String() string {
	switch s.Kind {
	case Checkmate:
		return fmt.Sprintf("checkmate, %s wins", s.Winner)
	case Stalemate:
		return "stalemate"
	}
	return "in progress"
}

var (
	ErrNoPieceAtSource = errors.New("no piece at source square")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrIllegalMove     = errors.New("illegal move")
	ErrGameNotPlaying  = errors.New("game is not in progress")
)

// MoveError 包装上面四个哨兵错误，errors.Is 可以直接判断种类。
type MoveError struct {
	Move   xiangqi.Move
	Status Status // 仅 ErrGameNotPlaying 时填写
	Err    error
}

func (e *MoveError) Error() string {
	if errors.Is(e.Err, ErrGameNotPlaying) {
		return fmt.Sprintf("move %s: %v (%s)", e.Move, e.Err, e.Status)
	}
	return fmt.Sprintf("move %s: %v", e.Move, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }
