// Package render turns a routed voxel.Grid into the two artifacts a compile
// produces: an SVG layer-by-layer visualization and a batched Minecraft
// command list (SPEC_FULL.md §4.11). Grounded on
// _examples/original_source/src/backend/visualize.rs (SVG) and
// src/backend.rs's Layout/BlockLayout/MinecraftBlock::place_cmd (commands).
//
// Both emitters are built on the standard library only (encoding/xml-style
// string building and strings.Builder): the teacher carries no rendering or
// serialization dependency of its own, and no library in the rest of the
// example pack has a plausible home here — an SVG document this shape is a
// few dozen lines of string formatting, and the command grammar is a fixed
// Minecraft chat-command string, not a structured format a library would
// help marshal. This package is recorded in DESIGN.md as intentionally
// standard-library for that reason.
//
// Test style follows the voxel/graph convention: plain testing and
// sentinel-equality checks, since every case here is "given this grid,
// produce this exact string" — the same validated-transformation shape
// voxel/grid_test.go and lowering's tests already cover without testify.
package render

import "errors"

// ErrUnsupportedOrientation is returned when a block's declared Orientation
// has no visualization or command mapping defined for its kind — mirrors
// the original visualize.rs's unimplemented `other => todo!()` arms, which
// only ever handled Orientation::East/West for their respective blocks.
var ErrUnsupportedOrientation = errors.New("render: unsupported orientation for this block kind")
