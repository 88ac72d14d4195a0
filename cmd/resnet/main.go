// SPDX-License-Identifier: MIT

// Command resnet reads a resistor network from stdin and prints the current
// through every edge.
//
//	resnet [-n] [-p] [-config file] [-plot file.png] [-eps e] [-workers k] [-pivoting p] < circuit.txt
//	resnet -compare a.txt b.txt
//
// Each input edge has the form "a -- b, R; [E V]". Output lines follow the
// input order: "a -- b: I A", or just "I" with -n. With -p the node
// potentials follow as "n -- V V" lines.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/resnet/chart"
	"github.com/katalvlaran/resnet/config"
	"github.com/katalvlaran/resnet/matrix"
	"github.com/katalvlaran/resnet/netlist"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type flags struct {
	nonVerbose bool
	potentials bool
	configPath string
	plotPath   string
	eps        float64
	workers    int
	pivoting   string
	compare    bool
}

func parseFlags(args []string, stderr io.Writer) (*flags, []string, map[string]bool, error) {
	f := &flags{}
	fs := flag.NewFlagSet("resnet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&f.nonVerbose, "n", false, "non-verbose output: one current per line")
	fs.BoolVar(&f.nonVerbose, "nonverbose", false, "same as -n")
	fs.BoolVar(&f.potentials, "p", false, "print node potentials (forces verbose output)")
	fs.BoolVar(&f.potentials, "potentials", false, "same as -p")
	fs.StringVar(&f.configPath, "config", "", "YAML config file")
	fs.StringVar(&f.plotPath, "plot", "", "write a bar chart of node potentials (.png, .svg, .pdf)")
	fs.Float64Var(&f.eps, "eps", matrix.DefaultEpsilon, "zero tolerance")
	fs.IntVar(&f.workers, "workers", 1, "components solved concurrently")
	fs.StringVar(&f.pivoting, "pivoting", matrix.DefaultPivoting.String(), "pivot policy: partial or none")
	fs.BoolVar(&f.compare, "compare", false, "compare the numbers in two files and exit 0 when they match")
	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	return f, fs.Args(), set, nil
}

// resolve merges the config file with the flags given on the command line.
func resolve(f *flags, set map[string]bool) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}
	if set["eps"] {
		cfg.Solver.Epsilon = f.eps
	}
	if set["workers"] {
		cfg.Solver.Workers = f.workers
	}
	if set["pivoting"] {
		cfg.Solver.Pivoting = f.pivoting
	}
	if set["n"] || set["nonverbose"] {
		cfg.Output.NonVerbose = f.nonVerbose
	}
	if set["p"] || set["potentials"] {
		cfg.Output.Potentials = f.potentials
	}

	return cfg, config.Validate(cfg)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	f, rest, set, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	if f.compare {
		return compare(rest, stderr)
	}

	cfg, err := resolve(f, set)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	logger, err := config.NewLogger(stderr, cfg.Log)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	opts, err := cfg.Solver.CircuitOptions()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	edges, err := netlist.Parse(stdin)
	if err != nil {
		logger.Error("parse failed", "err", err)
		fmt.Fprintln(stderr, "Aborting...")
		return 1
	}
	nw, err := netlist.Network(edges, opts...)
	if err != nil {
		logger.Error("invalid network", "err", err)
		fmt.Fprintln(stderr, "Aborting...")
		return 1
	}
	logger.Debug("network parsed", "edges", nw.EdgeCount(), "nodes", nw.Len())

	sol, err := nw.SolveContext(ctx)
	if err != nil {
		logger.Error("solve failed", "err", err)
		return 1
	}

	if err := netlist.Write(stdout, edges, sol, cfg.Output.Format()); err != nil {
		logger.Error("write failed", "err", err)
		return 1
	}

	if f.plotPath != "" {
		if err := chart.SavePotentials(f.plotPath, sol); err != nil {
			logger.Error("plot failed", "path", f.plotPath, "err", err)
			return 1
		}
		logger.Info("plot written", slog.String("path", f.plotPath))
	}

	return 0
}

// compare checks that two files hold the same whitespace separated numbers.
func compare(files []string, stderr io.Writer) int {
	switch {
	case len(files) < 2:
		fmt.Fprintln(stderr, "Nothing to compare")
		return 1
	case len(files) > 2:
		fmt.Fprintln(stderr, "More than 2 files to compare")
		return 1
	}

	a, err := os.Open(files[0])
	if err != nil {
		fmt.Fprintf(stderr, "Can't open %s\n", files[0])
		return 1
	}
	defer a.Close()
	b, err := os.Open(files[1])
	if err != nil {
		fmt.Fprintf(stderr, "Can't open %s\n", files[1])
		return 1
	}
	defer b.Close()

	same, err := netlist.CompareValues(a, b, matrix.DefaultEpsilon)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if !same {
		return 1
	}

	return 0
}
