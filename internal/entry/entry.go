/*
Package entry implements the line-oriented protocol for entering a grammar:
rule lines are read until the sentinel line END, then a start symbol is
requested until the user names a registered non-terminal.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package entry

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/gorem/grammar"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gorem.cli'.
func tracer() tracing.Trace {
	return tracing.Select("gorem.cli")
}

// LineReader delivers input one line at a time, without the line ending.
// At end of input it returns io.EOF. A *readline.Instance is a LineReader.
type LineReader interface {
	Readline() (string, error)
}

// prompter is implemented by interactive line readers.
type prompter interface {
	SetPrompt(string)
}

// Prompts used during a session.
const (
	RulePrompt  = "rule> "
	StartPrompt = "start> "
)

// Session runs the grammar entry protocol. Out receives instructions and
// feedback; it may be io.Discard for non-interactive input.
type Session struct {
	In  LineReader
	Out io.Writer
}

// ErrNoStartSymbol is returned if input ends before a valid start symbol has
// been entered.
var ErrNoStartSymbol = errors.New("input ended without a valid start symbol")

// Grammar reads rules and a start symbol and returns the grammar. The first
// malformed rule line aborts the session with a *grammar.ConstructionError.
func (s *Session) Grammar(name string) (*grammar.Grammar, error) {
	fmt.Fprintf(s.Out, "enter rules as   HEAD => sym1 sym2 …   and finish with %s\n",
		grammar.EndOfRules)
	fmt.Fprintf(s.Out, "upper case symbols are non-terminals, %s is ε, all else is a terminal\n",
		grammar.EpsilonFragment)
	b := grammar.NewBuilder(name)
	if err := s.readRules(b); err != nil {
		return nil, err
	}
	return s.readStart(b)
}

func (s *Session) readRules(b *grammar.Builder) error {
	s.setPrompt(RulePrompt)
	n := 0
	for {
		line, err := s.In.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		n++
		if grammar.IsEndOfRules(line) {
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := grammar.ParseRuleLine(line)
		if err != nil {
			err.(*grammar.ConstructionError).Line = n
			tracer().Errorf("%v", err)
			return err
		}
		rec.Line = n
		if err = b.AddRecord(rec); err != nil {
			return err
		}
	}
}

func (s *Session) readStart(b *grammar.Builder) (*grammar.Grammar, error) {
	s.setPrompt(StartPrompt)
	for {
		fmt.Fprintln(s.Out, "set start symbol")
		line, err := s.In.Readline()
		if errors.Is(err, io.EOF) {
			return nil, ErrNoStartSymbol
		} else if err != nil {
			return nil, err
		}
		g, err := b.Grammar(strings.TrimSpace(line))
		if err == nil {
			tracer().Infof("start symbol is %s", g.Start())
			return g, nil
		}
		if !errors.Is(err, grammar.ErrUnknownStartSymbol) {
			return nil, err
		}
		fmt.Fprintf(s.Out, "your nonterminals are: %s\n", nonTerminalList(b.NonTerminals()))
	}
}

func (s *Session) setPrompt(p string) {
	if pr, ok := s.In.(prompter); ok {
		pr.SetPrompt(p)
	}
}

func nonTerminalList(nts []grammar.NonTerminal) string {
	names := make([]string, len(nts))
	for i, A := range nts {
		names[i] = string(A)
	}
	return strings.Join(names, " ")
}

// --- Non-interactive input -------------------------------------------------

// NewLineReader wraps r as a LineReader, for files and piped input.
func NewLineReader(r io.Reader) LineReader {
	return &lineScanner{s: bufio.NewScanner(r)}
}

type lineScanner struct {
	s *bufio.Scanner
}

func (ls *lineScanner) Readline() (string, error) {
	if ls.s.Scan() {
		return ls.s.Text(), nil
	}
	if err := ls.s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
