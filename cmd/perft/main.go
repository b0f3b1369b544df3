package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"time"

	mg "chess-rules/chessmg"
	"chess-rules/internal/perftsuite"
	"chess-rules/internal/reference"
)

func main() {
	fen := flag.String("fen", mg.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required unless -suite is given)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.String("verify", "", "Reference engine to compare against: dragontooth or goose")
	suite := flag.String("suite", "", "Run a TOML perft suite instead of a single position")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *suite != "" {
		os.Exit(runSuite(*suite, *depth))
	}

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := mg.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	var ref reference.Engine
	if *verify != "" {
		if ref, err = reference.ByName(*verify); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	// Optional divide output
	if *divide {
		div := mg.DivideByText(mg.PerftDivide(pos, *depth))
		for _, m := range perftsuite.SortedMoves(div) {
			fmt.Printf("%s: %d\n", m, div[m])
		}
		fmt.Printf("Total: %d\n", perftsuite.Total(div))
		if ref != nil {
			want, err := ref.Divide(*fen, *depth)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", ref.Name(), err)
				os.Exit(2)
			}
			diffs := perftsuite.DiffDivide(div, want)
			for _, d := range diffs {
				fmt.Printf("DIFF %s: chessmg %d %s %d\n", d.Move, d.Got, ref.Name(), d.Want)
			}
			if len(diffs) > 0 {
				os.Exit(1)
			}
			fmt.Printf("Divide matches %s\n", ref.Name())
		}
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += mg.Perft(pos, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if ref != nil {
		want, err := ref.Perft(*fen, *depth)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", ref.Name(), err)
			os.Exit(2)
		}
		if got := totalNodes / uint64(*repeat); got != want {
			fmt.Printf("MISMATCH: chessmg %d %s %d\n", got, ref.Name(), want)
			os.Exit(1)
		}
		fmt.Printf("Matches %s\n", ref.Name())
	}

	// Optional heap profile after run
	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

// runSuite runs every position of the suite file, up to maxDepth when it is
// positive, and returns the process exit code.
func runSuite(path string, maxDepth int) int {
	s, err := perftsuite.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := perftsuite.Run(ctx, s, s.Engines(), maxDepth)
	for _, r := range results {
		fmt.Println(r)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("%d runs ok\n", len(results))
	return 0
}
