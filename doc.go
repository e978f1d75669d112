// Command mclc-go compiles a textual boolean-circuit description language
// into a Minecraft redstone layout: a 3-D voxel block placement, a routed
// wire network, an SVG visualization, and a batched in-game command list.
//
// The pipeline is a sequence of small, independently testable packages:
//
//	lang/      — lexer, recursive-descent parser, semantic analysis
//	circuit/   — generic id-addressed graph shared by every lowering stage
//	lowering/  — entity inlining, fan-out splitter insertion, pass-through node removal
//	voxel/     — sparse 3-D grid of typed cells
//	openset/   — f-score-ordered index set with decrease-key
//	astar/     — generic shortest-path search over an indexable container
//	placement/ — gate-primitive macro stampers + column-sweep placer
//	router/    — per-edge wire routing over the voxel grid
//	render/    — SVG layer renderer + Minecraft command-block batch serializer
//	config/    — functional-options configuration for package pipeline
//	pipeline/  — sequences every stage above into one Compile call
//	cmd/mclc/  — CLI entry point: `mclc <file> [target]`
//
// See SPEC_FULL.md for the full specification and DESIGN.md for the
// grounding ledger behind each package's design.
package mclc
