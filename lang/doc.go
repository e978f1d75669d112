// Package lang implements the front end of the compiler (SPEC_FULL.md
// §4.10): a hand-written lexer, a recursive-descent parser, and a semantic
// analysis pass that resolves port/variable/operation references and
// builds the per-entity graphs lowering.Inline consumes. Grounded directly
// on this project's original frontend/tokens.rs (lexer), frontend/syntax.rs
// (parser grammar), and frontend/semantics.rs (name resolution and
// entity-graph construction).
//
// Where the original's hand-rolled BuiltinOp enum special-cased Not with an
// unfinished todo!() in its graph-construction arm, this package's
// analysis treats all four builtin operations uniformly — circuit.EntityBuiltinOp
// already carries an Op field rather than a dedicated Rust enum variant per
// operation, so And/Or/Xor/Not share one code path with no gap.
//
// Test style follows this module's teacher's dfs package: plain testing,
// sentinel errors, and errors.Is assertions — parsing and analysis failures
// are exactly the kind of validated-input-rejection dfs's TopologicalSort
// tests cover the same way.
package lang

import "errors"

// Lexer errors.
var (
	// ErrUnexpectedCharacter is returned for `<` not followed by `=`, the
	// only multi-character lexeme the language defines.
	ErrUnexpectedCharacter = errors.New("lang: unexpected character")
)

// Parser errors.
var (
	ErrUnexpectedEOF   = errors.New("lang: unexpected end of input")
	ErrUnexpectedToken = errors.New("lang: unexpected token")
)

// Semantic analysis errors.
var (
	ErrUnknownType        = errors.New("lang: unknown type")
	ErrUnknownReference   = errors.New("lang: reference to undeclared port or variable")
	ErrUnknownOperation   = errors.New("lang: call to undeclared operation or entity")
	ErrArityMismatch      = errors.New("lang: wrong number of arguments")
	ErrTypeMismatch       = errors.New("lang: type mismatch")
	ErrAssignmentMismatch = errors.New("lang: assignment target count does not match value count")
	ErrUnknownOutPort     = errors.New("lang: port assignment names an undeclared out-port")
)
