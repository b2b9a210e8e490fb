// errors.go: the error taxonomy carried through the lexer, parser and
// evaluator, plus a caret-snippet renderer in the style of the teacher's
// WrapErrorWithSource — turns a *LexError/*ParseError/*EvalError into a
// readable, multi-line snippet pointing at the offending line.
package foxl

import (
	"fmt"
	"strings"
)

// LexError is raised by the lexer — unterminated strings, unknown bytes.
type LexError struct {
	Line int
	Msg  string
}

func (e *LexError) Error() string { return fmt.Sprintf("%s at line %d", e.Msg, e.Line) }

// ParseError is raised by the parser — unexpected tokens, missing
// terminators.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string { return fmt.Sprintf("%s at line %d", e.Msg, e.Line) }

// EvalErrorKind classifies an EvalError per spec.md §7's taxonomy.
type EvalErrorKind string

const (
	NameError      EvalErrorKind = "NameError"
	TypeError      EvalErrorKind = "TypeError"
	ArityError     EvalErrorKind = "ArityError"
	ArithError     EvalErrorKind = "ArithError"
	BoundsError    EvalErrorKind = "BoundsError"
	ConstError     EvalErrorKind = "ConstError"
	RedeclareError EvalErrorKind = "RedeclareError"
	IncludeError   EvalErrorKind = "IncludeError"
	NotImplemented EvalErrorKind = "NotImplementedError"
)

// EvalError is raised by the evaluator. It is distinct from the internal
// control-flow signal used for `return` — see control in interpreter.go.
type EvalError struct {
	Kind EvalErrorKind
	Line int
	Msg  string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s at line %d", e.Kind, e.Msg, e.Line)
}

func newEvalError(kind EvalErrorKind, line int, format string, args ...any) *EvalError {
	return &EvalError{Kind: kind, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// WrapErrorWithSource augments err with a caret-annotated snippet of src
// when err is a *LexError, *ParseError or *EvalError. Any other error is
// returned unchanged.
func WrapErrorWithSource(err error, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", snippet(src, "LEXICAL ERROR", e.Line, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", snippet(src, "PARSE ERROR", e.Line, e.Msg))
	case *EvalError:
		return fmt.Errorf("%s", snippet(src, string(e.Kind), e.Line, e.Msg))
	default:
		return err
	}
}

// snippet renders a Python-style error block: a header line followed by up
// to one line of context before and after the offending line, with a
// leading "> " marker on the offending line itself.
func snippet(src, header string, line int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s at line %d: %s\n\n", header, line, msg)
	for l := line - 1; l <= line+1; l++ {
		if l < 1 || l > len(lines) {
			continue
		}
		marker := "  "
		if l == line {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%4d | %s\n", marker, l, lines[l-1])
	}
	return b.String()
}
