package game

import (
	"errors"
	"testing"

	"xiangqi/internal/xiangqi"
)

func mustMove(t *testing.T, s string) xiangqi.Move {
	t.Helper()
	mv, err := xiangqi.ParseMove(s)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", s, err)
	}
	return mv
}

func play(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	for _, s := range moves {
		mv := mustMove(t, s)
		if err := g.MakeMove(mv.From, mv.To); err != nil {
			t.Fatalf("MakeMove(%s): %v", s, err)
		}
	}
}

func TestNewGame(t *testing.T) {
	g := New()
	if g.Turn() != xiangqi.Red {
		t.Fatalf("turn=%v want Red", g.Turn())
	}
	if g.Status().Kind != InProgress {
		t.Fatalf("status=%v", g.Status())
	}
	if g.InCheck() {
		t.Fatalf("opening position in check")
	}
	if n := len(g.LegalMoves()); n != 52 {
		t.Fatalf("legal moves=%d want 52", n)
	}
	if g.FEN() != xiangqi.InitialFEN {
		t.Fatalf("FEN=%s", g.FEN())
	}
}

func TestMakeMoveAlternatesTurn(t *testing.T) {
	g := New()
	play(t, g, "h2e2")
	if g.Turn() != xiangqi.Black {
		t.Fatalf("turn=%v want Black", g.Turn())
	}
	play(t, g, "h9g7")
	if g.Turn() != xiangqi.Red {
		t.Fatalf("turn=%v want Red", g.Turn())
	}
	moves := g.Moves()
	if len(moves) != 2 || moves[0].String() != "h2e2" || moves[1].String() != "h9g7" {
		t.Fatalf("history=%v", moves)
	}
	want := "rnbakab1r/9/1c4nc1/p1p1p1p1p/9/9/P1P1P1P1P/1C2C4/9/RNBAKABNR w - - 2 2"
	if g.FEN() != want {
		t.Fatalf("FEN\n got=%s\nwant=%s", g.FEN(), want)
	}
}

func TestMakeMoveErrorsLeaveStateUnchanged(t *testing.T) {
	g := New()
	before := g.FEN()

	cases := []struct {
		move string
		want error
	}{
		{"e5e4", ErrNoPieceAtSource}, // 空位
		{"a9a8", ErrNotYourTurn},     // 黑车，红方走
		{"a0b0", ErrIllegalMove},     // 吃自己的马
		{"b0b1", ErrIllegalMove},     // 马不走直线
		{"e0e2", ErrIllegalMove},     // 将走两格
	}
	for _, c := range cases {
		mv := mustMove(t, c.move)
		err := g.MakeMove(mv.From, mv.To)
		if !errors.Is(err, c.want) {
			t.Fatalf("%s: err=%v want %v", c.move, err, c.want)
		}
		var me *MoveError
		if !errors.As(err, &me) || me.Move != mv {
			t.Fatalf("%s: expected *MoveError carrying the move, got %#v", c.move, err)
		}
		if g.FEN() != before || len(g.History()) != 0 || g.Turn() != xiangqi.Red {
			t.Fatalf("%s: state mutated after rejected move", c.move)
		}
	}
}

func TestCheckmateIsTerminal(t *testing.T) {
	g, err := FromFEN("3k5/R8/9/9/9/8R/9/9/9/4K4 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	play(t, g, "i4i9")

	st := g.Status()
	if st.Kind != Checkmate || st.Winner != xiangqi.Red {
		t.Fatalf("status=%v want checkmate by Red", st)
	}
	if !g.InCheck() {
		t.Fatalf("mated side should be in check")
	}
	if g.LegalMoves() != nil {
		t.Fatalf("terminal game still lists legal moves")
	}

	before := g.FEN()
	mv := mustMove(t, "d9e9")
	if err := g.MakeMove(mv.From, mv.To); !errors.Is(err, ErrGameNotPlaying) {
		t.Fatalf("err=%v want ErrGameNotPlaying", err)
	}
	if g.FEN() != before {
		t.Fatalf("state mutated after rejected move")
	}

	if !g.Undo() {
		t.Fatalf("undo failed")
	}
	if g.Status().Kind != InProgress || g.Turn() != xiangqi.Red {
		t.Fatalf("undo did not reopen the game: %v %v", g.Status(), g.Turn())
	}
}

func TestStalemate(t *testing.T) {
	g, err := FromFEN("3k5/9/R8/9/9/9/9/9/9/4K4 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	play(t, g, "a7a8")

	st := g.Status()
	if st.Kind != Stalemate {
		t.Fatalf("status=%v want stalemate", st)
	}
	if g.InCheck() {
		t.Fatalf("stalemated side must not be in check")
	}
	if !st.Terminal() {
		t.Fatalf("stalemate must be terminal")
	}
}

func TestMissingGeneralIsImmediateLoss(t *testing.T) {
	g, err := FromFEN("9/9/9/9/9/9/9/9/9/4K4 b - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if st := g.Status(); st.Kind != Checkmate || st.Winner != xiangqi.Red {
		t.Fatalf("status=%v want Red win", st)
	}

	g, err = FromFEN("4k4/9/9/9/9/9/9/9/9/9 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if st := g.Status(); st.Kind != Checkmate || st.Winner != xiangqi.Black {
		t.Fatalf("status=%v want Black win", st)
	}
}

func TestUndoRestoresCapturedPiece(t *testing.T) {
	g := New()
	before := g.Board()
	hash := g.Hash()

	// 炮二进七：隔黑炮打马
	play(t, g, "h2h9")
	rec := g.History()[0]
	if rec.Captured != xiangqi.MakePiece(xiangqi.Black, xiangqi.PieceHorse) {
		t.Fatalf("captured=%v want black horse", rec.Captured)
	}
	if rec.Piece != xiangqi.MakePiece(xiangqi.Red, xiangqi.PieceCannon) {
		t.Fatalf("piece=%v want red cannon", rec.Piece)
	}

	if !g.Undo() {
		t.Fatalf("undo failed")
	}
	if g.Board() != before {
		t.Fatalf("board not restored after undo")
	}
	if g.Hash() != hash || g.Turn() != xiangqi.Red || len(g.History()) != 0 {
		t.Fatalf("undo did not restore hash/turn/history")
	}
	if g.Undo() {
		t.Fatalf("undo on empty history returned true")
	}
}

func TestFromFENWithMoves(t *testing.T) {
	g, err := FromFENWithMoves("position startpos moves h2e2 h9g7 e2h2 g7h9")
	if err != nil {
		t.Fatalf("FromFENWithMoves: %v", err)
	}
	if len(g.Moves()) != 4 {
		t.Fatalf("moves=%d want 4", len(g.Moves()))
	}
	if g.Board() != xiangqi.NewBoard() {
		t.Fatalf("expected the opening position again")
	}
	if n := g.RepetitionCount(); n != 2 {
		t.Fatalf("repetitions=%d want 2", n)
	}

	g, err = FromFENWithMoves("fen " + xiangqi.InitialFEN + " moves b0c2")
	if err != nil {
		t.Fatalf("FromFENWithMoves fen: %v", err)
	}
	if g.Turn() != xiangqi.Black {
		t.Fatalf("turn=%v", g.Turn())
	}

	if _, err := FromFENWithMoves(xiangqi.InitialFEN); !errors.Is(err, ErrMissingMoves) {
		t.Fatalf("err=%v want ErrMissingMoves", err)
	}
	if _, err := FromFENWithMoves("startpos moves a0a5"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("err=%v want ErrIllegalMove", err)
	}
}

func TestLegalMovesFromOnlyForSideToMove(t *testing.T) {
	g := New()
	if mv := g.LegalMovesFrom(mustMove(t, "a9a8").From); mv != nil {
		t.Fatalf("black piece listed on red turn: %v", mv)
	}
	// 开局红炮 h2：左平 5、右平 1、进 4 加打马、退 1，共 12 步
	if n := len(g.LegalMovesFrom(mustMove(t, "h2h3").From)); n != 12 {
		t.Fatalf("cannon moves=%d want 12", n)
	}
}

func TestRepetitionCount(t *testing.T) {
	g := New()
	if n := g.RepetitionCount(); n != 1 {
		t.Fatalf("opening repetitions=%d want 1", n)
	}

	// 一来一回，双方各自退回原位
	play(t, g, "h2e2", "h9g7", "e2h2", "g7h9")
	if n := g.RepetitionCount(); n != 2 {
		t.Fatalf("repetitions=%d want 2", n)
	}
	play(t, g, "h2e2")
	if n := g.RepetitionCount(); n != 2 {
		t.Fatalf("after h2e2 again repetitions=%d want 2", n)
	}
	play(t, g, "h9g7", "e2h2", "g7h9")
	if n := g.RepetitionCount(); n != 3 {
		t.Fatalf("repetitions=%d want 3", n)
	}

	if !g.Undo() {
		t.Fatalf("undo failed")
	}
	if n := g.RepetitionCount(); n != 2 {
		t.Fatalf("after undo repetitions=%d want 2", n)
	}
	g.Undo()
	g.Undo()
	g.Undo()
	g.Undo()
	if n := g.RepetitionCount(); n != 1 {
		t.Fatalf("after undoing back to move 3 repetitions=%d want 1", n)
	}
}
