// Command circuits reads junction box positions and links them
// closest-pair-first, printing the bounded-rounds and/or full-connectivity
// answers.
//
// Usage:
//
//	circuits -input boxes.txt [-mode bounded|full|both] [-rounds N] [-workers N] [-config circuits.yaml] [-v]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/circuits/boxel"
	"github.com/katalvlaran/circuits/circuit"
	"github.com/katalvlaran/circuits/config"
	"github.com/katalvlaran/circuits/point"
	"github.com/katalvlaran/circuits/progress"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to circuits.yaml (optional)")
		inputPath  = flag.String("input", "-", "point file, one x,y,z per line (- for stdin)")
		mode       = flag.String("mode", "", "bounded, full or both (default: config mode)")
		rounds     = flag.Int("rounds", -1, "bounded round budget (default: config, then 10 for 20 points else 1000)")
		workers    = flag.Int("workers", -1, "parallel search workers (default: config, then GOMAXPROCS)")
		verbose    = flag.Bool("v", false, "log every round")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "circuits:", err)
		os.Exit(2)
	}
	if *rounds >= 0 {
		cfg.Rounds = *rounds
	}
	if *workers >= 0 {
		cfg.Workers = *workers
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}

	modes, err := selectModes(*mode, cfg.Mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, "circuits:", err)
		os.Exit(2)
	}

	if err := run(cfg, *inputPath, modes, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "circuits:", err)
		os.Exit(1)
	}
}

// selectModes resolves the -mode flag against the configured default.
func selectModes(flagMode, cfgMode string) ([]circuit.Mode, error) {
	m := flagMode
	if m == "" {
		m = cfgMode
	}
	switch m {
	case "both":
		return []circuit.Mode{circuit.ModeBounded, circuit.ModeFull}, nil
	case string(circuit.ModeBounded), string(circuit.ModeFull):
		return []circuit.Mode{circuit.Mode(m)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", circuit.ErrUnknownMode, m)
	}
}

// run loads the points once and runs each mode over a fresh index.
func run(cfg config.Config, inputPath string, modes []circuit.Mode, stdin io.Reader, stdout io.Writer) error {
	logger := cfg.Logger()

	points, err := readPoints(inputPath, stdin)
	if err != nil {
		return err
	}
	opts := cfg.BoxelOptions(points)
	logger.Debug("grid", "origin", opts.Origin.String(), "side", opts.Side, "cells", opts.Cells, "radius", opts.SearchRadius)

	for _, m := range modes {
		idx, err := boxel.Build(points, opts)
		if err != nil {
			return err
		}
		reporter := progress.NewLog(logger.Logger, string(m), cfg.ProgressInterval())

		start := time.Now()
		res, err := circuit.Compute(idx,
			circuit.WithMode(m),
			circuit.WithRounds(cfg.Rounds),
			circuit.WithWorkers(cfg.Workers),
			circuit.WithProgress(reporter),
			circuit.WithLogger(logger),
		)
		if err != nil {
			return fmt.Errorf("%s: %w", m, err)
		}
		fmt.Fprintf(stdout, "[%10s] %s: %d\n", time.Since(start).Round(time.Microsecond), m, res.Value)
		logger.LogAttrs(context.Background(), slog.LevelDebug, "result",
			slog.String("mode", string(m)),
			slog.Int("rounds", res.Rounds),
			slog.Int("circuits", len(res.Sizes)),
		)
	}

	return nil
}

// readPoints reads path, or stdin when path is "-".
func readPoints(path string, stdin io.Reader) ([]point.Point, error) {
	if path == "-" {
		return point.Read(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return point.Read(f)
}
