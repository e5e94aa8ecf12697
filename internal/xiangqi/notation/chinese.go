package notation

import (
	"strings"

	"xiangqi/internal/xiangqi"
)

var chineseDigits = [...]string{"", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

var chineseDirections = [...]string{Forward: "进", Backward: "退", Horizontal: "平"}

// ChineseNumeral 1..9 之外返回 "?"
func ChineseNumeral(n int) string {
	if n < 1 || n > 9 {
		return "?"
	}
	return chineseDigits[n]
}

// 同列两子：前/后；三子：前/中/后；更多（只有兵卒）：一二三四五
func tandemPrefix(rank, total int) string {
	switch total {
	case 2:
		return [...]string{"前", "后"}[rank-1]
	case 3:
		return [...]string{"前", "中", "后"}[rank-1]
	}
	return ChineseNumeral(rank)
}

// Chinese 中文纵线记法，如 "炮二平五"、"马八进七"、"前炮进一"。
// 黑方也用中文数字。
func Chinese(b *xiangqi.Board, mv xiangqi.Move) (string, error) {
	p, err := describe(b, mv)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if p.total > 1 {
		sb.WriteString(tandemPrefix(p.rank, p.total))
		sb.WriteString(p.pc.String())
	} else {
		sb.WriteString(p.pc.String())
		sb.WriteString(ChineseNumeral(p.file))
	}
	sb.WriteString(chineseDirections[p.dir])
	sb.WriteString(ChineseNumeral(p.dest))
	return sb.String(), nil
}

// ParseChinese 在 side 的合法着法里找出这句中文记法对应的一步
func ParseChinese(b *xiangqi.Board, side xiangqi.Side, text string) (xiangqi.Move, error) {
	return resolve(b, side, strings.TrimSpace(text), Chinese)
}
