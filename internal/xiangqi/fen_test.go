package xiangqi

import (
	"errors"
	"testing"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"4k4/9/9/9/9/9/9/9/4A4/3K5 b - - 3 17",
		"r1bakabr1/9/1cn3nc1/p1p1p1p1p/9/9/P1P1P1P1P/1CN3NC1/9/R1BAKABR1 w - - 0 5",
	}
	for _, fen := range fens {
		b, side, err := DecodeFEN(fen)
		if err != nil {
			t.Fatalf("decode %q: %v", fen, err)
		}
		var half, full int
		switch fen {
		case InitialFEN:
			half, full = 0, 1
		case fens[1]:
			half, full = 3, 17
		default:
			half, full = 0, 5
		}
		if got := EncodeFEN(&b, side, half, full); got != fen {
			t.Fatalf("round trip\n got=%s\nwant=%s", got, fen)
		}
	}
}

func TestDecodeFENShortForm(t *testing.T) {
	b, side, err := DecodeFEN("4k4/9/9/9/9/9/9/9/9/4K4 b")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if side != Black {
		t.Fatalf("side=%v want Black", side)
	}
	if !b.GeneralsFacing() {
		t.Fatalf("expected facing generals")
	}
}

func TestDecodeFENErrors(t *testing.T) {
	cases := []struct {
		fen  string
		want error
	}{
		{"", ErrInvalidFEN},
		{"rnbakabnr/9 w - - 0 1", ErrInvalidRankCount},
		{"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABN w - - 0 1", ErrInvalidFileCount},
		{"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNRR w - - 0 1", ErrInvalidFileCount},
		{"rnbakabnx/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1", ErrInvalidPiece},
		{"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR x - - 0 1", ErrInvalidTurn},
		{"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - a 1", ErrInvalidMoveCount},
		{"4k4/9/9/9/9/9/9/9/9/3KK4 w - - 0 1", ErrTooManyGenerals},
	}
	for _, c := range cases {
		if _, _, err := DecodeFEN(c.fen); !errors.Is(err, c.want) {
			t.Fatalf("DecodeFEN(%q) err=%v want %v", c.fen, err, c.want)
		}
	}
}
