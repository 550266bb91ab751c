package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/gorem"
)

// Lexer is a hand-rolled byte lexer for the C-like language. It reads its
// input one byte at a time, with a lookahead of one byte for two-character
// operators. Create one with NewLexer.
type Lexer struct {
	source string
	r      *bufio.Reader
	offset uint64 // count of bytes consumed
	start  uint64 // offset of the token currently scanned
	err    error  // first error encountered, returned forever after
}

var _ Tokenizer = (*Lexer)(nil)

// NewLexer creates a lexer for an input stream. sourceID is used in error
// messages only.
func NewLexer(sourceID string, input io.Reader) *Lexer {
	return &Lexer{
		source: sourceID,
		r:      bufio.NewReader(input),
	}
}

// NextToken is part of the Tokenizer interface.
func (l *Lexer) NextToken() (gorem.Token, error) {
	if l.err != nil {
		return nil, l.err
	}
	tok, err := l.scan()
	if err != nil {
		l.err = err
		if errors.Is(err, io.EOF) {
			tracer().Debugf("lexer reached end of input %s", l.source)
		} else {
			tracer().Errorf("lexer stopped: %v", err)
		}
		return nil, err
	}
	tracer().Debugf("token %v", tok)
	return tok, nil
}

func (l *Lexer) scan() (Token, error) {
	for {
		l.start = l.offset
		ch, err := l.getch()
		if err != nil {
			return Token{}, err
		}
		switch {
		case isSpace(ch):
			continue
		case ch == '/':
			next, ok, err := l.peek()
			if err != nil {
				return Token{}, err
			}
			if ok && next == '/' {
				if err = l.skipLineComment(); err != nil {
					return Token{}, err
				}
				continue
			} else if ok && next == '*' {
				l.getch()
				if err = l.skipBlockComment(); err != nil {
					return Token{}, err
				}
				continue
			}
			return l.token(Div, "/"), nil
		case ch == '"' || ch == '\'':
			return l.quoted(ch)
		case ch == '#':
			return l.directive()
		case isLetter(ch) || ch == '_':
			return l.word(ch)
		case isDigit(ch):
			return l.number(ch)
		}
		return l.operator(ch)
	}
}

// operator matches punctuation, trying two-character composites first.
func (l *Lexer) operator(ch byte) (Token, error) {
	next, ok, err := l.peek()
	if err != nil {
		return Token{}, err
	}
	if ok {
		op := string([]byte{ch, next})
		if typ, found := operators[op]; found {
			l.getch()
			return l.token(typ, op), nil
		}
	}
	if typ, found := operators[string(ch)]; found {
		return l.token(typ, string(ch)), nil
	}
	return Token{}, l.malformed(ch, "unrecognized character")
}

func (l *Lexer) quoted(quote byte) (Token, error) {
	var b strings.Builder
	b.WriteByte(quote)
	for {
		ch, err := l.getch()
		if errors.Is(err, io.EOF) {
			return Token{}, l.malformed(quote, "unterminated literal")
		} else if err != nil {
			return Token{}, err
		}
		b.WriteByte(ch)
		if ch == quote {
			break
		}
	}
	return QuotedToken(b.String(), l.span()), nil
}

func (l *Lexer) directive() (Token, error) {
	var b strings.Builder
	b.WriteByte('#')
	if err := l.takeWhile(&b, isWordChar); err != nil {
		return Token{}, err
	}
	return DirectiveToken(b.String(), l.span()), nil
}

func (l *Lexer) word(first byte) (Token, error) {
	var b strings.Builder
	b.WriteByte(first)
	if err := l.takeWhile(&b, isWordChar); err != nil {
		return Token{}, err
	}
	return WordToken(b.String(), l.span()), nil
}

// number matches decimal digits with at most one dot.
func (l *Lexer) number(first byte) (Token, error) {
	var b strings.Builder
	b.WriteByte(first)
	if err := l.takeWhile(&b, isDigit); err != nil {
		return Token{}, err
	}
	next, ok, err := l.peek()
	if err != nil {
		return Token{}, err
	}
	if ok && next == '.' {
		l.getch()
		b.WriteByte('.')
		if err := l.takeWhile(&b, isDigit); err != nil {
			return Token{}, err
		}
	}
	tok, err := NumberToken(b.String(), l.span())
	if err != nil {
		return Token{}, l.malformed(first, err.Error())
	}
	return tok, nil
}

func (l *Lexer) skipLineComment() error {
	var discard strings.Builder
	return l.takeWhile(&discard, func(ch byte) bool { return ch != '\n' })
}

// skipBlockComment is called after "/*" has been consumed.
func (l *Lexer) skipBlockComment() error {
	star := false
	for {
		ch, err := l.getch()
		if errors.Is(err, io.EOF) {
			return l.malformed('/', "unterminated comment")
		} else if err != nil {
			return err
		}
		if star && ch == '/' {
			return nil
		}
		star = ch == '*'
	}
}

// --- Reading bytes ---------------------------------------------------------

func (l *Lexer) getch() (byte, error) {
	ch, err := l.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("%s: scanner cannot read input (%w)", l.source, err)
	}
	l.offset++
	return ch, nil
}

// peek returns the next byte without consuming it. ok is false at end of input.
func (l *Lexer) peek() (ch byte, ok bool, err error) {
	buf, err := l.r.Peek(1)
	if len(buf) == 1 {
		return buf[0], true, nil
	}
	if errors.Is(err, io.EOF) {
		return 0, false, nil
	}
	return 0, false, fmt.Errorf("%s: scanner cannot read input (%w)", l.source, err)
}

func (l *Lexer) takeWhile(b *strings.Builder, predicate func(byte) bool) error {
	for {
		ch, ok, err := l.peek()
		if err != nil {
			return err
		}
		if !ok || !predicate(ch) {
			return nil
		}
		l.getch()
		b.WriteByte(ch)
	}
}

func (l *Lexer) token(typ gorem.TokType, lexeme string) Token {
	return MakeToken(typ, lexeme, nil, l.span())
}

func (l *Lexer) span() gorem.Span {
	return gorem.Span{l.start, l.offset}
}

func (l *Lexer) malformed(ch byte, reason string) error {
	return &MalformedError{
		Source: l.source,
		Offset: l.start,
		Byte:   ch,
		Reason: reason,
	}
}

// --- Byte categories -------------------------------------------------------

// Backslashes are skipped like whitespace; line continuations carry no
// meaning for the token stream.
func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\n' || ch == '\t' || ch == '\r' || ch == '\f' || ch == '\\'
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isWordChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}
