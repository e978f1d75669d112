package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/Lol3rrr/mclc-go/circuit"
	"github.com/Lol3rrr/mclc-go/config"
	"github.com/Lol3rrr/mclc-go/lang"
	"github.com/Lol3rrr/mclc-go/lowering"
	"github.com/Lol3rrr/mclc-go/placement"
	"github.com/Lol3rrr/mclc-go/render"
	"github.com/Lol3rrr/mclc-go/router"
	"github.com/Lol3rrr/mclc-go/voxel"
)

// Result is everything a successful compile produces: the routed grid (kept
// for callers that want to inspect it directly, e.g. tests), its placed
// nodes, the rendered SVG document, and the batched command list.
type Result struct {
	Grid     *voxel.Grid
	Placed   []placement.Node
	SVG      string
	Commands []string
}

// Compile runs source through every stage in order — tokenize, parse,
// analyze, inline, normalize, optimize, place, route, render — and logs one
// Info-level line per stage transition (SPEC_FULL.md §7). opts customizes
// the compile target, placement/routing halo and spacing, and logger via
// package config's functional options, the same resolution pattern the
// teacher's dijkstra.Dijkstra(g, opts ...Option) uses (SPEC_FULL.md §2).
func Compile(source string, opts ...config.Option) (*Result, error) {
	cfg := config.New(opts...)
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("stage", "name", "tokenize")
	tokens, err := lang.Tokenize(source)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	logger.Info("stage", "name", "parse")
	entities, err := lang.Parse(tokens)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(entities) == 0 {
		return nil, fmt.Errorf("%w: source declares no entities", ErrUnknownTarget)
	}

	logger.Info("stage", "name", "analyze")
	table, err := lang.Analyze(entities)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	target := cfg.Target
	if target == "" {
		target = entities[0].Name
	}
	root, ok := table[target]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}
	logger.Debug("target resolved", "entity", target)

	logger.Info("stage", "name", "inline")
	builtin, err := lowering.Inline(cloneEntityGraph(root), table)
	if err != nil {
		return nil, fmt.Errorf("inline: %w", err)
	}

	logger.Info("stage", "name", "normalize")
	normalized := lowering.Normalize(builtin)

	logger.Info("stage", "name", "optimize")
	lowering.Optimize(normalized)

	logger.Info("stage", "name", "place")
	grid, placed, err := placement.Place(normalized, cfg.ReserveSpace, cfg.ColumnSpacing)
	if err != nil {
		return nil, fmt.Errorf("place: %w", err)
	}
	logger.Debug("placement complete", "nodes", len(placed))

	logger.Info("stage", "name", "route")
	if err := router.ConnectAll(grid, normalized, placed, cfg.ReserveSpace); err != nil {
		return nil, fmt.Errorf("route: %w", err)
	}
	logger.Debug("routing complete", "edges", len(normalized.Edges()))

	logger.Info("stage", "name", "render")
	svgDoc, err := render.SVG(grid)
	if err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}
	commands, err := render.Commands(grid)
	if err != nil {
		return nil, fmt.Errorf("render commands: %w", err)
	}
	logger.Debug("render complete", "batches", len(commands))

	return &Result{Grid: grid, Placed: placed, SVG: svgDoc, Commands: commands}, nil
}

// cloneEntityGraph returns a copy of g's node/edge slices so Inline (which
// consumes and mutates its root argument) never corrupts the entity table
// entry — the same entity may be the compile target today and a callee
// referenced by EntityOp tomorrow.
func cloneEntityGraph(g *circuit.EntityGraph) *circuit.EntityGraph {
	nodes := make([]circuit.Node[circuit.EntityKind], len(g.Nodes()))
	copy(nodes, g.Nodes())
	edges := make([]circuit.Edge, len(g.Edges()))
	copy(edges, g.Edges())

	return circuit.New(nodes, edges)
}
