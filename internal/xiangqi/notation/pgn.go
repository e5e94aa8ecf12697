package notation

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
)

type Result int8

const (
	ResultUnknown Result = iota // "*"
	RedWins                     // "1-0"
	BlackWins                   // "0-1"
	Draw                        // "1/2-1/2"
)

func (r Result) String() string {
	switch r {
	case RedWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}

func ParseResult(s string) (Result, bool) {
	switch strings.TrimSpace(s) {
	case "1-0":
		return RedWins, true
	case "0-1":
		return BlackWins, true
	case "1/2-1/2":
		return Draw, true
	case "*":
		return ResultUnknown, true
	}
	return ResultUnknown, false
}

type Tag struct {
	Key   string
	Value string
}

func (t Tag) String() string {
	return fmt.Sprintf("[%s %q]", t.Key, t.Value)
}

var ErrInvalidTag = errors.New("invalid PGN tag")

// ParseTag 解析 [Key "Value"]
func ParseTag(line string) (Tag, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
		return Tag{}, fmt.Errorf("%w: %q", ErrInvalidTag, line)
	}
	inner := strings.TrimSpace(line[1 : len(line)-1])
	key, rest, ok := strings.Cut(inner, " ")
	rest = strings.TrimSpace(rest)
	if !ok || key == "" || len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
		return Tag{}, fmt.Errorf("%w: %q", ErrInvalidTag, line)
	}
	return Tag{Key: key, Value: rest[1 : len(rest)-1]}, nil
}

// PGN 象棋棋谱：标签 + 着法文本（ICCS、中文或 WXF 均可）+ 结果
type PGN struct {
	Tags   []Tag
	Moves  []string
	Result Result
}

func (g *PGN) Tag(key string) (string, bool) {
	for _, t := range g.Tags {
		if t.Key == key {
			return t.Value, true
		}
	}
	return "", false
}

// SetTag 已有则覆盖，保持原顺序
func (g *PGN) SetTag(key, value string) {
	for i := range g.Tags {
		if g.Tags[i].Key == key {
			g.Tags[i].Value = value
			return
		}
	}
	g.Tags = append(g.Tags, Tag{Key: key, Value: value})
}

// String 标签每行一个，空一行后是 "1. m1 m2 2. m3 ..." 和结果
func (g *PGN) String() string {
	var sb strings.Builder
	for _, t := range g.Tags {
		sb.WriteString(t.String())
		sb.WriteByte('\n')
	}
	if len(g.Tags) > 0 && len(g.Moves) > 0 {
		sb.WriteByte('\n')
	}
	for i, mv := range g.Moves {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d. ", i/2+1)
		}
		sb.WriteString(mv)
	}
	if len(g.Moves) > 0 {
		sb.WriteByte(' ')
	}
	sb.WriteString(g.Result.String())
	sb.WriteByte('\n')
	return sb.String()
}

// ParsePGN 跳过回合号和 {} 注释；结果取着法末尾的结果标记，没有再看 Result 标签。
func ParsePGN(text string) (*PGN, error) {
	g := &PGN{}
	var moveText strings.Builder
	inTags := true

	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			if len(g.Tags) > 0 {
				inTags = false
			}
			continue
		}
		if inTags && strings.HasPrefix(line, "[") {
			t, err := ParseTag(line)
			if err != nil {
				return nil, err
			}
			g.Tags = append(g.Tags, t)
			continue
		}
		inTags = false
		moveText.WriteString(line)
		moveText.WriteByte(' ')
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if v, ok := g.Tag("Result"); ok {
		if r, ok := ParseResult(v); ok {
			g.Result = r
		}
	}

	tokens := moveTokens(moveText.String())
	if n := len(tokens); n > 0 {
		if r, ok := ParseResult(tokens[n-1]); ok {
			g.Result = r
			tokens = tokens[:n-1]
		}
	}
	g.Moves = tokens
	return g, nil
}

func moveTokens(s string) []string {
	var out []string
	depth := 0
	var cur strings.Builder
	flush := func() {
		tok := cur.String()
		cur.Reset()
		// "1." 这样的回合号不要
		if tok != "" && !strings.HasSuffix(tok, ".") {
			out = append(out, tok)
		}
	}
	for _, r := range s {
		switch {
		case r == '{':
			flush()
			depth++
		case r == '}':
			if depth > 0 {
				depth--
			}
		case depth > 0:
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return out
}
