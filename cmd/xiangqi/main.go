package main

import (
	"flag"
	"log"

	"xiangqi/internal/game"
	"xiangqi/internal/tui"
)

func main() {
	fen := flag.String("fen", "", "start from this FEN instead of the opening position")
	moves := flag.String("moves", "", "\"startpos moves ...\" or \"<FEN> moves ...\" to replay before starting")
	flag.Parse()

	var (
		g   *game.Game
		err error
	)
	switch {
	case *moves != "":
		g, err = game.FromFENWithMoves(*moves)
	case *fen != "":
		g, err = game.FromFEN(*fen)
	default:
		g = game.New()
	}
	if err != nil {
		log.Fatalf("load position: %v", err)
	}

	if err := tui.Run(g); err != nil {
		log.Fatal(err)
	}
}
