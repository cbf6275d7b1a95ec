package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/viant/tscheck/linter"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "configuration file; defaults to tscheck.yaml at the project root")
	format := flag.String("format", "text", "output format: text or json")
	concurrency := flag.Int("concurrency", 0, "number of files linted in parallel")
	flag.Parse()

	targets := flag.Args()
	if len(targets) == 0 {
		targets = []string{"."}
	}

	ctx := context.Background()
	config, err := loadConfig(ctx, *configPath, targets[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "tscheck: %v\n", err)
		return 2
	}
	if *concurrency > 0 {
		config.Concurrency = *concurrency
	}

	emitter, err := linter.NewEmitter(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tscheck: %v\n", err)
		return 2
	}

	l := linter.New(config)
	var all []*linter.Result
	for _, target := range targets {
		results, err := l.Lint(ctx, target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tscheck: %v\n", err)
			return 2
		}
		all = append(all, results...)
	}

	output, err := emitter.Emit(all)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tscheck: %v\n", err)
		return 2
	}
	os.Stdout.Write(output)

	for _, result := range all {
		if len(result.Diagnostics) > 0 {
			return 1
		}
	}
	return 0
}

func loadConfig(ctx context.Context, configPath, target string) (*linter.Config, error) {
	if configPath != "" {
		return linter.LoadConfig(ctx, configPath)
	}
	located, err := linter.NewDetector().LocateConfig(target)
	if err != nil || located == "" {
		return linter.DefaultConfig(), nil
	}
	return linter.LoadConfig(ctx, located)
}
