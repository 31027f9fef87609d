// Command othello wires the search core together end to end: parse a
// board position (defaulting to the starting position) and a search
// budget from flags, run FindBestMove once, and print the result. It
// is ambient scaffolding (§1), not the interactive front-end the spec
// excludes — no read-eval-print loop, no game driver.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/AlexXLi12/othello-engine/board"
	"github.com/AlexXLi12/othello-engine/eval"
	"github.com/AlexXLi12/othello-engine/search"
	"github.com/rs/zerolog"
)

const name = "othello-engine"

var (
	flgDepth   int
	flgTime    time.Duration
	flgThreads int
	flgSide    string
	flgBoard   string
)

func main() {
	flag.IntVar(&flgDepth, "depth", 10, "maximum search depth")
	flag.DurationVar(&flgTime, "time", 5*time.Second, "time budget for iterative deepening")
	flag.IntVar(&flgThreads, "threads", runtime.NumCPU(), "root-level parallelism")
	flag.StringVar(&flgSide, "side", "black", "side to move: black or white")
	flag.StringVar(&flgBoard, "board", "", "64-square grid ('.', 'X', 'O'; same vocabulary board.Render prints) to search from, default the starting position")
	flag.Parse()

	var logger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "cmd/othello").Logger()
	logger.Info().
		Str("name", name).
		Str("runtimeVersion", runtime.Version()).
		Int("depth", flgDepth).
		Dur("time", flgTime).
		Int("threads", flgThreads).
		Msg("starting")

	var side, err = parseSide(flgSide)
	if err != nil {
		logger.Fatal().Err(err).Msg("bad -side flag")
	}

	var b board.GameBoard
	if flgBoard == "" {
		b = board.CreateInitialBoard()
	} else {
		b, err = board.ParseGrid(flgBoard, side)
		if err != nil {
			logger.Fatal().Err(err).Msg("bad -board flag")
		}
	}

	var engine = search.NewEngine(eval.NewWeightedEvaluator(), search.Options{
		PoolSize:   flgThreads,
		TTCapacity: 1 << 16,
	})
	defer engine.Close()
	engine.SetLogger(logger)

	var move = engine.FindBestMove(b, flgDepth, side, flgTime)
	if move == -1 {
		fmt.Println("no legal move")
		return
	}

	fmt.Println(board.Render(b, board.GetPossibleMoves(b, side)))
	fmt.Printf("best move: %d (nodes=%d cacheHits=%d)\n", move, engine.NodesSearched.Load(), engine.CacheHits.Load())
}

func parseSide(s string) (board.Color, error) {
	switch s {
	case "black":
		return board.Black, nil
	case "white":
		return board.White, nil
	default:
		return 0, fmt.Errorf("unknown side %q, want \"black\" or \"white\"", s)
	}
}
