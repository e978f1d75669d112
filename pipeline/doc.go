// Package pipeline strings together every compiler stage — lang, lowering,
// placement, router, render — into the single call cmd/mclc needs
// (SPEC_FULL.md §4.12, §7). It owns no algorithm of its own; it sequences
// the packages that do and logs one line per stage transition with
// log/slog, the ambient logging convention SPEC_FULL.md's Domain Stack
// section settles on (the teacher carries no logging package at all, being
// a pure data-structure library with no I/O beyond its tests).
package pipeline

import "errors"

// ErrUnknownTarget is returned when the requested entity name (or, with no
// explicit target, the first declared entity) does not appear in the
// analyzed entity table.
var ErrUnknownTarget = errors.New("pipeline: unknown compile target")
