package notation

import (
	"errors"
	"strings"
	"testing"
)

func TestParseTag(t *testing.T) {
	cases := []struct {
		in, key, value string
	}{
		{`[Event "World Championship"]`, "Event", "World Championship"},
		{`[Red "Hu Ronghua"]`, "Red", "Hu Ronghua"},
		{`  [Result "1-0"]  `, "Result", "1-0"},
	}
	for _, c := range cases {
		tag, err := ParseTag(c.in)
		if err != nil || tag.Key != c.key || tag.Value != c.value {
			t.Fatalf("ParseTag(%q)=%+v,%v", c.in, tag, err)
		}
	}
	for _, bad := range []string{`Event "x"`, `[Event]`, `[Event x]`, `[ "x"]`} {
		if _, err := ParseTag(bad); !errors.Is(err, ErrInvalidTag) {
			t.Fatalf("ParseTag(%q) err=%v want ErrInvalidTag", bad, err)
		}
	}
}

func TestTagString(t *testing.T) {
	tag := Tag{Key: "Event", Value: "World Championship"}
	if got := tag.String(); got != `[Event "World Championship"]` {
		t.Fatalf("Tag.String()=%s", got)
	}
}

func TestParseResult(t *testing.T) {
	cases := map[string]Result{
		"1-0":     RedWins,
		"0-1":     BlackWins,
		"1/2-1/2": Draw,
		"*":       ResultUnknown,
	}
	for in, want := range cases {
		got, ok := ParseResult(in)
		if !ok || got != want {
			t.Fatalf("ParseResult(%q)=%v,%v want %v", in, got, ok, want)
		}
		if got.String() != in {
			t.Fatalf("Result.String()=%s want %s", got, in)
		}
	}
	if _, ok := ParseResult("2-0"); ok {
		t.Fatalf("2-0 should not parse")
	}
}

func TestParsePGN(t *testing.T) {
	text := `[Event "Test Game"]
[Red "Player1"]
[Black "Player2"]
[Result "1-0"]

h2e2 h9g7 h3g3`

	g, err := ParsePGN(text)
	if err != nil {
		t.Fatalf("ParsePGN: %v", err)
	}
	if len(g.Tags) != 4 || len(g.Moves) != 3 || g.Result != RedWins {
		t.Fatalf("tags=%d moves=%d result=%v", len(g.Tags), len(g.Moves), g.Result)
	}
	if v, ok := g.Tag("Red"); !ok || v != "Player1" {
		t.Fatalf("Red tag=%q,%v", v, ok)
	}
}

func TestParsePGNSkipsNumbersAndComments(t *testing.T) {
	text := `[Event "x"]
[Result "*"]

1. 炮二平五 {当头炮} 马八进七 2. 马二进三
{黑方
  换行的注释} 车九平八 0-1`

	g, err := ParsePGN(text)
	if err != nil {
		t.Fatalf("ParsePGN: %v", err)
	}
	want := []string{"炮二平五", "马八进七", "马二进三", "车九平八"}
	if strings.Join(g.Moves, " ") != strings.Join(want, " ") {
		t.Fatalf("moves=%v want %v", g.Moves, want)
	}
	// 着法末尾的结果优先于 Result 标签
	if g.Result != BlackWins {
		t.Fatalf("result=%v want 0-1", g.Result)
	}
}

func TestPGNString(t *testing.T) {
	g := &PGN{}
	g.SetTag("Event", "Test Game")
	g.SetTag("Red", "Player1")
	g.SetTag("Black", "Player2")
	g.SetTag("Event", "Renamed")
	g.Moves = []string{"h2e2", "h9g7", "h3g3"}
	g.Result = RedWins

	s := g.String()
	for _, want := range []string{`[Event "Renamed"]`, `[Red "Player1"]`, "1. h2e2 h9g7 2. h3g3 1-0"} {
		if !strings.Contains(s, want) {
			t.Fatalf("PGN missing %q:\n%s", want, s)
		}
	}
	if len(g.Tags) != 3 {
		t.Fatalf("SetTag should overwrite, tags=%v", g.Tags)
	}

	back, err := ParsePGN(s)
	if err != nil || len(back.Moves) != 3 || back.Result != RedWins || len(back.Tags) != 3 {
		t.Fatalf("reparse=%+v,%v", back, err)
	}
}
