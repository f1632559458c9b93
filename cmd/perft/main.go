// Command perft is a small driver around the chesscore move generator: it
// parses a position, runs perft to a given depth (single- or
// multi-threaded), and prints the node count.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/op/go-logging"
	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chesscore/bitboard"
)

var log = logging.MustGetLogger("perft")

func main() {
	var (
		fen        = flag.String("fen", "", "FEN position to search (default: starting position)")
		depth      = flag.Int("depth", 0, "perft depth (default: from config)")
		workers    = flag.Int("workers", 0, "above 1 selects the parallel dispatcher (one goroutine per root move); 1 runs single-threaded (default: from config)")
		parallel   = flag.Int("parallel", 0, "alias for -workers")
		configPath = flag.String("config", "", "optional TOML config file")
		cpuprofile = flag.String("cpuprofile", "", "write a CPU profile into this directory")
		memprofile = flag.String("memprofile", "", "write a memory profile into this directory")
	)
	flag.Parse()

	cfg, err := chesscore.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if cfg.Verbose {
		chesscore.SetLogLevel(logging.DEBUG)
	}

	if *fen != "" {
		cfg.FEN = *fen
	}
	if *depth != 0 {
		cfg.Depth = *depth
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}
	if *parallel != 0 {
		cfg.Workers = *parallel
	}

	if *cpuprofile != "" {
		cfg.CPUProfile = *cpuprofile
	}
	if *memprofile != "" {
		cfg.MemProfile = *memprofile
	}

	if cfg.CPUProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.CPUProfile)).Stop()
	} else if cfg.MemProfile != "" {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(cfg.MemProfile)).Stop()
	}

	pos, err := chesscore.ParseFEN(cfg.FEN)
	if err != nil {
		log.Fatalf("parsing FEN %q: %v", cfg.FEN, err)
	}

	var nodes uint64
	if cfg.Workers > 1 {
		nodes, err = chesscore.MultiThreadPerft(pos, cfg.Depth)
		if err != nil {
			log.Fatalf("multi-threaded perft: %v", err)
		}
	} else {
		nodes = chesscore.Perft(pos, cfg.Depth)
	}

	printer := message.NewPrinter(language.English)
	printer.Printf("Nodes: %d\n", nodes)
}

func init() {
	if len(os.Args) > 0 {
		flag.CommandLine.Usage = func() {
			fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
			flag.PrintDefaults()
		}
	}
}
