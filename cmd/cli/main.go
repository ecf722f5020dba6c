package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"adwords-sim/internal/analysis"
	"adwords-sim/internal/config"
	"adwords-sim/internal/data"
	"adwords-sim/internal/simulate"
	"adwords-sim/internal/strategy"

	"gopkg.in/yaml.v3"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}

	switch args[0] {
	case "run":
		return cmdRun(args[1:], stdout, stderr)
	case "compare":
		return cmdCompare(args[1:], stdout, stderr)
	case "sample":
		return cmdSample(stdout, stderr)
	default:
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  cli run [--config examples/universes/sample.yaml] [--strategy 1|2|3] [--out results/ledger.csv] [--report]")
	fmt.Fprintln(w, "  cli compare [--config examples/universes/sample.yaml]")
	fmt.Fprintln(w, "  cli sample")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "strategies:")
	fmt.Fprintln(w, "  1 greedy, 2 balance, 3 general-balance")
	fmt.Fprintln(w, "  without --config the built-in sample universe is used")
}

func cmdRun(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "Path to YAML universe config (default: built-in sample)")
	selector := fs.String("strategy", "", "Strategy selector, overrides the config (1|2|3 or a name)")
	scoring := fs.String("scoring", "", "General balance score function (remaining-budget|spent-fraction)")
	outPath := fs.String("out", "", "Optional: write the ledger as CSV")
	report := fs.Bool("report", false, "Print the step-by-step report")
	logLevel := fs.String("log-level", "warn", "Log level (debug|info|warn|error)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	setLogger(*logLevel, stderr)

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if *selector != "" {
		cfg.Strategy.Name = *selector
	}
	if *scoring != "" {
		if cfg.Strategy.Params == nil {
			cfg.Strategy.Params = map[string]any{}
		}
		cfg.Strategy.Params["scoring"] = *scoring
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		if errors.Is(err, strategy.ErrUnknownStrategy) {
			return 2
		}
		return 1
	}

	strat, err := cfg.NewStrategy()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	u, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	res, err := simulate.New().Run(u, cfg.Timeline, strat)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if *report {
		if err := simulate.WriteReport(stdout, res); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	} else {
		fmt.Fprintf(stdout, "Strategy=%s Steps=%d Revenue=%g\n", res.Strategy, len(res.Ledger), res.TotalRevenue)
	}

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		if err := simulate.WriteLedgerCSV(*outPath, res.Ledger); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Wrote %d rows to %s\n", len(res.Ledger), *outPath)
	}
	return 0
}

func cmdCompare(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "Path to YAML universe config (default: built-in sample)")
	logLevel := fs.String("log-level", "warn", "Log level (debug|info|warn|error)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	setLogger(*logLevel, stderr)

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if err := cfg.ValidateUniverse(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	strats := make([]strategy.Strategy, 0, len(strategy.All()))
	for _, k := range strategy.All() {
		s, err := strategy.New(string(k), cfg.Strategy.Params)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 2
		}
		strats = append(strats, s)
	}

	results, err := simulate.New().Compare(cfg.Build, cfg.Timeline, strats)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "%-4s %-16s %-6s %-6s %-10s %-12s\n", "rank", "strategy", "wins", "exh", "revenue", "utilization")
	for _, r := range analysis.RankByRevenue(results) {
		fmt.Fprintf(stdout, "%-4d %-16s %-6d %-6d %-10.4f %-12.4f\n",
			r.Rank,
			r.Strategy,
			r.Wins,
			r.Exhaustions,
			r.TotalRevenue,
			r.Utilization,
		)
	}
	return 0
}

func cmdSample(stdout, stderr io.Writer) int {
	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(data.Sample()); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if err := enc.Close(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig reads the config without validating it so that flags can
// override the strategy first. An empty path selects the built-in sample.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return data.Sample(), nil
	}
	return config.LoadUnchecked(path)
}

func setLogger(level string, w io.Writer) {
	logger := config.Logger{Level: level}.NewLogger(w)
	slog.SetDefault(logger)
}
