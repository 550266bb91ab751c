/*
Package scanner defines the token alphabet of a C-like source language and
an interface for scanners producing tokens of this alphabet.

Two scanner implementations are provided: (1) a hand-rolled byte lexer,
created with NewLexer, and (2) an adapter for lexmachine, living in
sub-package `lexmach`. Both recognize the same alphabet.

Every call to NextToken has one of three outcomes:

	tok, nil          // a token has been produced
	nil, io.EOF       // input is exhausted
	nil, err          // input is malformed (*MalformedError) or unreadable

Scanners are not restartable: after the first error they keep returning it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/gorem"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gorem.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gorem.scanner")
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() (gorem.Token, error)
}

// --- Tokens ----------------------------------------------------------------

// Token is the token type produced by the scanners of this package.
// Values are
//
//   Integer      →  int64
//   Float        →  FloatValue
//   Identifier, String, Character, Directive  →  the lexeme as string
//
// and nil for every other token type.
type Token struct {
	kind   gorem.TokType
	lexeme string
	Val    interface{}
	span   gorem.Span
}

var _ gorem.Token = Token{}

// MakeToken creates a token. Clients normally do not call it directly, but
// it is handy for scanner backends outside of this package.
func MakeToken(typ gorem.TokType, lexeme string, val interface{}, span gorem.Span) Token {
	return Token{
		kind:   typ,
		lexeme: lexeme,
		Val:    val,
		span:   span,
	}
}

func (t Token) TokType() gorem.TokType {
	return t.kind
}

func (t Token) Value() interface{} {
	return t.Val
}

func (t Token) Lexeme() string {
	return t.lexeme
}

func (t Token) Span() gorem.Span {
	return t.span
}

func (t Token) String() string {
	if t.span.IsNull() {
		return fmt.Sprintf("%s %q", TokTypeString(t.kind), t.lexeme)
	}
	return fmt.Sprintf("%s %q @%v", TokTypeString(t.kind), t.lexeme, t.span)
}

// --- Errors ----------------------------------------------------------------

// MalformedError is returned by a scanner if the input contains a byte which
// does not start any token, or if a token is left unfinished.
type MalformedError struct {
	Source string // source ID given to the scanner
	Offset uint64 // byte offset where the offending token starts
	Byte   byte   // offending byte
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: %s at offset %d (byte %q)", e.Source, e.Reason, e.Offset, e.Byte)
}

// Drain reads tokens until the tokenizer stops. It returns all tokens read,
// and a nil error if and only if the input has been exhausted cleanly.
func Drain(t Tokenizer) ([]gorem.Token, error) {
	var toks []gorem.Token
	for {
		tok, err := t.NextToken()
		if errors.Is(err, io.EOF) {
			return toks, nil
		} else if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
}
