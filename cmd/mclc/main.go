// Command mclc compiles a textual logic-circuit description into a
// Minecraft redstone layout: an SVG visualization and a batched command
// list ready to paste into a command block (SPEC_FULL.md §4.12).
//
// Usage:
//
//	mclc <file> [target]
//
// target names the entity to compile; it defaults to the first entity
// declared in file.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Lol3rrr/mclc-go/config"
	"github.com/Lol3rrr/mclc-go/pipeline"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: mclc <file> [target]")
		return 2
	}

	path := args[0]
	var target string
	if len(args) > 1 {
		target = args[1]
	}

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mclc: %v\n", err)
		return 1
	}

	result, err := pipeline.Compile(string(source), config.WithLogger(logger), config.WithTarget(target))
	if err != nil {
		fmt.Fprintf(os.Stderr, "mclc: %v\n", err)
		return 1
	}

	if err := os.WriteFile("placement.svg", []byte(result.SVG), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "mclc: writing placement.svg: %v\n", err)
		return 1
	}
	if err := os.WriteFile("commands.txt", []byte(strings.Join(result.Commands, "\n")+"\n"), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "mclc: writing commands.txt: %v\n", err)
		return 1
	}

	logger.Info("compile complete", "placed_nodes", len(result.Placed), "command_batches", len(result.Commands))

	return 0
}
