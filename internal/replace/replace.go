// Package replace implements the delimiter-splitting collaborator a
// host embeds the core behind: it walks a larger text looking for
// paired inline/block math delimiters, hands each delimited span to a
// caller-supplied conversion function, and splices the result back
// into the surrounding text. It has no opinion about what the
// delimiters look like or where the converted output goes — both are
// supplied by the host.
package replace

import (
	"fmt"
	"strings"
)

// Display distinguishes the two delimiter pairs a Replacer watches
// for, passed through to the conversion callback so it can choose a
// display-mode attribute on the output it produces.
type Display int

const (
	DisplayInline Display = iota
	DisplayBlock
)

func (d Display) String() string {
	if d == DisplayBlock {
		return "block"
	}
	return "inline"
}

// ConvertFunc converts the math content found between a delimiter
// pair, appending its result to out. Returning an error aborts the
// whole Replace call; Replacer.Replace wraps it in a ConversionError
// of kind ErrConvert.
type ConvertFunc func(out *strings.Builder, content string, display Display) error

// ErrorKind discriminates the members of the ConversionError sum type.
type ErrorKind int

const (
	ErrUnclosedDelimiter ErrorKind = iota
	ErrNestedDelimiters
	ErrMismatchedDelimiters
	ErrConvert
)

// ConversionError is the single error type Replace can return.
type ConversionError struct {
	Kind ErrorKind

	Pos      int // UnclosedDelimiter, NestedDelimiters
	OpenPos  int // MismatchedDelimiters
	ClosePos int // MismatchedDelimiters

	Content string // ErrConvert: the span being converted when f failed
	Err     error  // ErrConvert: the error f returned
}

func (e *ConversionError) Error() string {
	switch e.Kind {
	case ErrUnclosedDelimiter:
		return fmt.Sprintf("unclosed delimiter at %d", e.Pos)
	case ErrNestedDelimiters:
		return fmt.Sprintf("nested delimiters are not allowed (at %d)", e.Pos)
	case ErrMismatchedDelimiters:
		return fmt.Sprintf("mismatched delimiters at %d and %d", e.OpenPos, e.ClosePos)
	case ErrConvert:
		return fmt.Sprintf("error at %q: %s", e.Content, e.Err)
	default:
		return "unknown conversion error"
	}
}

func (e *ConversionError) Unwrap() error { return e.Err }

// Replacer scans for one inline and one block delimiter pair. A
// Replacer is reusable across calls to Replace; it holds no state
// from one call to the next.
type Replacer struct {
	openInline, closeInline string
	openBlock, closeBlock   string
	closeIdentical          bool
}

// NewReplacer returns a Replacer watching for inlineDelim and
// blockDelim, given as (opening, closing) pairs.
func NewReplacer(inlineDelim, blockDelim [2]string) *Replacer {
	return &Replacer{
		openInline:     inlineDelim[0],
		closeInline:    inlineDelim[1],
		openBlock:      blockDelim[0],
		closeBlock:     blockDelim[1],
		closeIdentical: inlineDelim[1] == blockDelim[1],
	}
}

// Replace scans input for delimited math spans, converting each with
// f and splicing the result in place of the delimited span (including
// the delimiters themselves). Nesting of either delimiter kind inside
// a span is rejected; mismatching an inline opener with a block
// closer (or vice versa) is rejected unless the two delimiter pairs
// happen to share a closing spelling.
func (r *Replacer) Replace(input string, f ConvertFunc) (string, error) {
	var out strings.Builder
	out.Grow(len(input))

	pos := 0
	for pos < len(input) {
		remaining := input[pos:]

		openTyp, idx, ok := r.findNextDelimiter(remaining, true)
		if !ok {
			out.WriteString(remaining)
			return out.String(), nil
		}

		openLen := r.openLen(openTyp)
		openPos := pos + idx
		out.WriteString(input[pos:openPos])

		start := openPos + openLen
		afterOpen := input[start:]

		closeTyp, cidx, cok := r.findNextDelimiter(afterOpen, false)
		if !cok {
			return "", &ConversionError{Kind: ErrUnclosedDelimiter, Pos: openPos}
		}
		closeLen := r.closeLen(closeTyp)

		if !r.closeIdentical && openTyp != closeTyp {
			return "", &ConversionError{Kind: ErrMismatchedDelimiters, OpenPos: openPos, ClosePos: start + cidx}
		}

		end := start + cidx
		content := input[start:end]

		if _, nidx, nok := r.findNextDelimiter(content, true); nok {
			return "", &ConversionError{Kind: ErrNestedDelimiters, Pos: start + nidx}
		}

		if err := f(&out, content, openTyp); err != nil {
			return "", &ConversionError{Kind: ErrConvert, Content: content, Err: err}
		}

		pos = end + closeLen
	}

	return out.String(), nil
}

func (r *Replacer) openLen(d Display) int {
	if d == DisplayBlock {
		return len(r.openBlock)
	}
	return len(r.openInline)
}

func (r *Replacer) closeLen(d Display) int {
	if d == DisplayBlock {
		return len(r.closeBlock)
	}
	return len(r.closeInline)
}

// findNextDelimiter locates whichever of the inline/block delimiter
// (opening or closing, per the opening flag) occurs first in input.
// A tie goes to the block delimiter, matching the priority the host
// gives a block span that starts at the same position as an inline
// one (e.g. "$$" vs "$").
func (r *Replacer) findNextDelimiter(input string, opening bool) (Display, int, bool) {
	var inlineNeedle, blockNeedle string
	if opening {
		inlineNeedle, blockNeedle = r.openInline, r.openBlock
	} else {
		inlineNeedle, blockNeedle = r.closeInline, r.closeBlock
	}

	inlinePos := strings.Index(input, inlineNeedle)
	blockPos := strings.Index(input, blockNeedle)

	switch {
	case inlinePos >= 0 && blockPos >= 0 && inlinePos < blockPos:
		return DisplayInline, inlinePos, true
	case blockPos >= 0:
		return DisplayBlock, blockPos, true
	case inlinePos >= 0:
		return DisplayInline, inlinePos, true
	default:
		return 0, 0, false
	}
}
