package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"xiangqi/internal/game"
)

// TestCase 给前端或其他实现做走法生成对拍
type TestCase struct {
	FEN    string   `json:"fen"`
	ToMove int      `json:"to_move"`
	Check  bool     `json:"in_check"`
	Legal  []string `json:"legal"`
	Played string   `json:"played,omitempty"`
}

func main() {
	numGames := flag.Int("games", 10, "number of random games")
	maxMoves := flag.Int("max", 300, "max plies per game")
	seed := flag.Int64("seed", 1, "random seed")
	out := flag.String("o", "move_gen_test_data.json", "output file")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	var testCases []TestCase

	for i := 0; i < *numGames; i++ {
		g := game.New()
		for ply := 0; ply < *maxMoves; ply++ {
			legal := g.LegalMoves()

			tc := TestCase{
				FEN:    g.FEN(),
				ToMove: int(g.Turn()),
				Check:  g.InCheck(),
				Legal:  make([]string, 0, len(legal)),
			}
			for _, mv := range legal {
				tc.Legal = append(tc.Legal, mv.String())
			}

			if len(legal) == 0 {
				testCases = append(testCases, tc)
				break
			}

			// 随机选一步
			mv := legal[rng.Intn(len(legal))]
			tc.Played = mv.String()
			testCases = append(testCases, tc)

			if err := g.MakeMove(mv.From, mv.To); err != nil {
				log.Fatalf("game %d ply %d: %v", i, ply, err)
			}
		}
	}

	data, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Generated %d test cases from %d random games to %s\n", len(testCases), *numGames, *out)
}
