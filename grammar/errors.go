package grammar

import (
	"fmt"
	"strings"
)

// ErrorCode enumerates the ways grammar construction may fail.
type ErrorCode int

const (
	_                  ErrorCode = iota
	MissingSeparator             // rule line without "=>"
	MissingHead                  // nothing left of "=>"
	EmptyProduction              // nothing right of "=>"
	ExtraSeparator               // more than one "=>"
	UnknownStartSymbol           // start symbol is not a registered non-terminal
)

func (c ErrorCode) String() string {
	switch c {
	case MissingSeparator:
		return "missing separator '=>'"
	case MissingHead:
		return "missing rule head"
	case EmptyProduction:
		return "empty production"
	case ExtraSeparator:
		return "more than one separator '=>'"
	case UnknownStartSymbol:
		return "unknown start symbol"
	}
	return fmt.Sprintf("<error code %d>", int(c))
}

// ConstructionError is returned if a grammar cannot be built. Line is the
// 1-based line number of the offending rule line, if known. Known lists the
// registered non-terminals for UnknownStartSymbol.
type ConstructionError struct {
	Code  ErrorCode
	Line  int
	Input string
	Known []NonTerminal
}

// Sentinels for errors.Is. Construction errors match by code only.
var (
	ErrMissingSeparator   = &ConstructionError{Code: MissingSeparator}
	ErrMissingHead        = &ConstructionError{Code: MissingHead}
	ErrEmptyProduction    = &ConstructionError{Code: EmptyProduction}
	ErrExtraSeparator     = &ConstructionError{Code: ExtraSeparator}
	ErrUnknownStartSymbol = &ConstructionError{Code: UnknownStartSymbol}
)

func (e *ConstructionError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	b.WriteString(e.Code.String())
	if e.Input != "" {
		fmt.Fprintf(&b, ": %q", e.Input)
	}
	if len(e.Known) > 0 {
		names := make([]string, len(e.Known))
		for i, nt := range e.Known {
			names[i] = string(nt)
		}
		fmt.Fprintf(&b, " (known non-terminals: %s)", strings.Join(names, ", "))
	}
	return b.String()
}

func (e *ConstructionError) Is(target error) bool {
	t, ok := target.(*ConstructionError)
	return ok && t.Code == e.Code
}
