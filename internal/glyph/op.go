// Package glyph defines the operator code type and the static table of
// named Unicode code points used by the command table.
package glyph

// Op wraps a single Unicode code point identifying a mathematical glyph.
type Op rune

// Rune returns the underlying code point.
func (o Op) Rune() rune { return rune(o) }

// String renders the operator as its single-character glyph.
func (o Op) String() string { return string(rune(o)) }

// Null is the sentinel operator representing an absent fence bracket
// (spec invariant: an absent bracket in a Fenced node is NULL, not omitted).
const Null Op = 0
