package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"xiangqi/internal/game"
)

func main() {
	fen := flag.String("fen", "", "position to inspect (default: opening)")
	depth := flag.Int("depth", 2, "perft depth")
	divide := flag.Bool("divide", false, "print perft(depth-1) per root move")
	flag.Parse()

	g := game.New()
	if *fen != "" {
		var err error
		if g, err = game.FromFEN(*fen); err != nil {
			log.Fatalf("bad FEN: %v", err)
		}
	}

	b := g.Board()
	fmt.Println("FEN:", g.FEN())
	fmt.Println("Status:", g.Status())
	fmt.Println("In check:", g.InCheck())
	moves := g.LegalMoves()
	fmt.Println("Legal moves:", len(moves))

	if *divide && *depth > 1 {
		var lines []string
		for _, mv := range moves {
			nb := b
			nb.MovePiece(mv.From, mv.To)
			lines = append(lines, fmt.Sprintf("%s: %d", mv, nb.Perft(g.Turn().Opposite(), *depth-1)))
		}
		sort.Strings(lines)
		for _, l := range lines {
			fmt.Println(l)
		}
	}

	for d := 1; d <= *depth; d++ {
		start := time.Now()
		n := b.Perft(g.Turn(), d)
		fmt.Printf("perft(%d) = %d  (%v)\n", d, n, time.Since(start))
	}
}
