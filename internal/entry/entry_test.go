package entry

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/gorem/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// scripted is a LineReader replaying fixed lines and recording prompts.
type scripted struct {
	lines   []string
	prompts []string
}

func (sc *scripted) Readline() (string, error) {
	if len(sc.lines) == 0 {
		return "", io.EOF
	}
	line := sc.lines[0]
	sc.lines = sc.lines[1:]
	return line, nil
}

func (sc *scripted) SetPrompt(p string) {
	sc.prompts = append(sc.prompts, p)
}

func TestSessionRetriesStartSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorem.cli")
	defer teardown()
	//
	in := &scripted{lines: []string{
		"S => A B",
		"A => a",
		"A => ep30",
		"B => b",
		"END",
		"X",
		"s",
		" S ",
	}}
	var out bytes.Buffer
	session := Session{In: in, Out: &out}
	g, err := session.Grammar("G")
	if err != nil {
		t.Fatal(err)
	}
	if g.Start() != "S" {
		t.Errorf("expected start symbol S, have %s", g.Start())
	}
	if n := strings.Count(out.String(), "your nonterminals are: S A B\n"); n != 2 {
		t.Errorf("expected 2 echoes of known non-terminals, have %d in\n%s", n, out.String())
	}
	if n := strings.Count(out.String(), "set start symbol\n"); n != 3 {
		t.Errorf("expected 3 start symbol prompts, have %d", n)
	}
	if len(in.prompts) != 2 || in.prompts[0] != RulePrompt || in.prompts[1] != StartPrompt {
		t.Errorf("unexpected prompt switches %v", in.prompts)
	}
}

func TestSessionAbortsOnMalformedRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorem.cli")
	defer teardown()
	//
	in := &scripted{lines: []string{
		"S => A",
		"",
		"A a",
		"END",
		"S",
	}}
	session := Session{In: in, Out: io.Discard}
	_, err := session.Grammar("G")
	if !errors.Is(err, grammar.ErrMissingSeparator) {
		t.Fatalf("expected missing separator, have %v", err)
	}
	var cerr *grammar.ConstructionError
	if !errors.As(err, &cerr) || cerr.Line != 3 {
		t.Errorf("expected error located at line 3, have %v", err)
	}
	if len(in.lines) != 2 {
		t.Errorf("expected session to stop reading after the malformed line")
	}
}

func TestSessionNeverAcceptsUnknownStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorem.cli")
	defer teardown()
	//
	in := &scripted{lines: []string{"S => a", "END", "A", "B", "C", "a"}}
	session := Session{In: in, Out: io.Discard}
	if _, err := session.Grammar("G"); !errors.Is(err, ErrNoStartSymbol) {
		t.Errorf("expected end of input without start symbol, have %v", err)
	}
}

func TestSessionFromReader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorem.cli")
	defer teardown()
	//
	input := "E => E + a\nE => a\nEND\nE\n"
	session := Session{In: NewLineReader(strings.NewReader(input)), Out: io.Discard}
	g, err := session.Grammar("G")
	if err != nil {
		t.Fatal(err)
	}
	ga := grammar.Analyze(g)
	if !ga.First(grammar.N("E")).Equals(grammar.NewTerminalSet(grammar.Literal("a"))) {
		t.Errorf("expected FIRST(E) = {\"a\"}, have %v", ga.First(grammar.N("E")))
	}
}

func TestSessionEndOfInputEndsRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorem.cli")
	defer teardown()
	//
	in := &scripted{lines: []string{"S => a"}}
	session := Session{In: in, Out: io.Discard}
	if _, err := session.Grammar("G"); !errors.Is(err, ErrNoStartSymbol) {
		t.Errorf("expected missing start symbol after end of input, have %v", err)
	}
}
