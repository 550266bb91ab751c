package lexmach

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/npillmayer/gorem"
	"github.com/npillmayer/gorem/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'gorem.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gorem.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

var (
	cLexer     *LMAdapter
	cLexerErr  error
	cLexerOnce sync.Once
)

// NewCLexer returns the lexmachine adapter for the C-like language. The DFA
// is compiled on the first call; subsequent calls return the same adapter.
//
// NewCLexer will return an error if compiling the DFA failed.
func NewCLexer() (*LMAdapter, error) {
	cLexerOnce.Do(func() {
		cLexer, cLexerErr = newLMAdapter(initCPatterns, scanner.Operators())
	})
	return cLexer, cLexerErr
}

// newLMAdapter creates a new lexmachine adapter. It receives an initializer for
// regular expressions and a list of literals ('[', ';', …) to match verbatim.
func newLMAdapter(init func(*lexmachine.Lexer), literals []string) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		typ, _ := scanner.OperatorType(lit)
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), makeToken(typ))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// initCPatterns adds the regular expressions for comments, whitespace, literals,
// keywords, words and numbers. Keywords precede the identifier pattern, which
// matches them with equal length.
func initCPatterns(lexer *lexmachine.Lexer) {
	lexer.Add([]byte(`//[^\n]*`), skip)
	lexer.Add([]byte(`/\*([^*]|\r|\n|(\*+([^*/]|\r|\n)))*\*+/`), skip)
	lexer.Add([]byte(`/\*([^*]|\r|\n|(\*+([^*/]|\r|\n)))*\**`), unterminated("unterminated comment"))
	lexer.Add([]byte("( |\t|\n|\r|\f|\\\\)+"), skip)
	lexer.Add([]byte(`"[^"]*"`), quoted)
	lexer.Add([]byte(`'[^']*'`), quoted)
	lexer.Add([]byte(`"[^"]*`), unterminated("unterminated literal"))
	lexer.Add([]byte(`'[^']*`), unterminated("unterminated literal"))
	lexer.Add([]byte(`#([a-z]|[A-Z]|[0-9]|_)*`), directive)
	for _, kw := range scanner.Keywords() {
		lexer.Add([]byte(kw), word)
	}
	lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), word)
	lexer.Add([]byte(`[0-9]+\.[0-9]*`), number)
	lexer.Add([]byte(`[0-9]+`), number)
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface. sourceID is used in error messages only.
func (lm *LMAdapter) Scanner(sourceID string, input []byte) *LMScanner {
	lms := &LMScanner{source: sourceID, input: input}
	s, err := lm.Lexer.Scanner(input)
	if err != nil {
		lms.err = fmt.Errorf("%s: cannot create scanner (%w)", sourceID, err)
		return lms
	}
	lms.scanner = s
	return lms
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	source  string
	input   []byte
	err     error // first error encountered, returned forever after
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// NextToken is part of the Tokenizer interface.
func (lms *LMScanner) NextToken() (gorem.Token, error) {
	if lms.err != nil {
		return nil, lms.err
	}
	tok, err, eof := lms.scanner.Next()
	if eof {
		tracer().Debugf("lexmachine reached end of input %s", lms.source)
		lms.err = io.EOF
		return nil, io.EOF
	}
	if err != nil {
		lms.err = lms.malformed(err)
		tracer().Errorf("scanner error: %v", lms.err)
		return nil, lms.err
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	return tok.(scanner.Token), nil
}

// malformed translates lexmachine errors into MalformedErrors, positioned at
// the start of the offending match.
func (lms *LMScanner) malformed(err error) error {
	var ui *machines.UnconsumedInput
	if errors.As(err, &ui) {
		return lms.errorAt(ui.StartTC, "unrecognized character")
	}
	var ae *actionError
	if errors.As(err, &ae) {
		return lms.errorAt(ae.tc, ae.reason)
	}
	return fmt.Errorf("%s: %w", lms.source, err)
}

func (lms *LMScanner) errorAt(tc int, reason string) *scanner.MalformedError {
	e := &scanner.MalformedError{
		Source: lms.source,
		Offset: uint64(tc),
		Reason: reason,
	}
	if tc < len(lms.input) {
		e.Byte = lms.input[tc]
	}
	return e
}

// --- Actions ---------------------------------------------------------------

// actionError is returned by actions which reject a match.
type actionError struct {
	tc     int
	reason string
}

func (e *actionError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.reason, e.tc)
}

func span(m *machines.Match) gorem.Span {
	return gorem.Span{uint64(m.TC), uint64(m.TC + len(m.Bytes))}
}

// skip ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(typ gorem.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return scanner.MakeToken(typ, string(m.Bytes), nil, span(m)), nil
	}
}

func unterminated(reason string) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return nil, &actionError{tc: m.TC, reason: reason}
	}
}

func quoted(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return scanner.QuotedToken(string(m.Bytes), span(m)), nil
}

func directive(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return scanner.DirectiveToken(string(m.Bytes), span(m)), nil
}

func word(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return scanner.WordToken(string(m.Bytes), span(m)), nil
}

func number(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	tok, err := scanner.NumberToken(string(m.Bytes), span(m))
	if err != nil {
		return nil, &actionError{tc: m.TC, reason: err.Error()}
	}
	return tok, nil
}
