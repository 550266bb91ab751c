package grammar

import (
	"testing"

	"github.com/npillmayer/gorem/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestClassify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorem.grammar")
	defer teardown()
	//
	tests := []struct {
		caption  string
		fragment string
		expected Symbol
	}{
		{caption: "upper case word", fragment: "EXPR", expected: N("EXPR")},
		{caption: "single upper case letter", fragment: "S", expected: N("S")},
		{caption: "upper case non-ASCII letters", fragment: "ÄÖ", expected: N("ÄÖ")},
		{caption: "sharp s is lower case", fragment: "STRAßE", expected: T(Literal("STRAßE"))},
		{caption: "title case letter", fragment: "ǅ", expected: T(Literal("ǅ"))},
		{caption: "caseless letters", fragment: "漢字", expected: N("漢字")},
		{caption: "epsilon marker", fragment: "ep30", expected: T(Epsilon)},
		{caption: "upper case epsilon marker is a literal", fragment: "EP30", expected: T(Literal("EP30"))},
		{caption: "lower case word", fragment: "id", expected: T(Literal("id"))},
		{caption: "mixed case word", fragment: "Expr", expected: T(Literal("Expr"))},
		{caption: "upper case with digit", fragment: "A1", expected: T(Literal("A1"))},
		{caption: "upper case with underscore", fragment: "A_B", expected: T(Literal("A_B"))},
		{caption: "operator", fragment: "+", expected: T(Literal("+"))},
		{caption: "two-character operator", fragment: "->", expected: T(Literal("->"))},
		{caption: "empty fragment", fragment: "", expected: T(Literal(""))},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			if sym := Classify(tt.fragment); sym != tt.expected {
				t.Errorf("expected %q to classify as %v, is %v", tt.fragment, tt.expected, sym)
			}
		})
	}
}

func TestSymbolIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorem.grammar")
	defer teardown()
	//
	if N("A") != N("A") || N("A") == N("B") {
		t.Errorf("non-terminals should be identified by name")
	}
	if T(Literal("a")) != T(Literal("a")) {
		t.Errorf("equal literals should be equal symbols")
	}
	if T(Literal("A")) == N("A") {
		t.Errorf("terminal and non-terminal of equal text should differ")
	}
	if Epsilon == EndOfInput || Epsilon == Literal("") {
		t.Errorf("ε should be distinct from every token terminal")
	}
	var zero Terminal
	if zero == EndOfInput {
		t.Errorf("zero terminal should not be end of input")
	}
	eof := scanner.MakeToken(scanner.EOF, "", nil, [2]uint64{3, 3})
	if TokenTerminal(eof) != EndOfInput {
		t.Errorf("EOF token should lift to EndOfInput")
	}
	plus := scanner.MakeToken(scanner.Plus, "+", nil, [2]uint64{0, 1})
	plus2 := scanner.MakeToken(scanner.Plus, "+", nil, [2]uint64{7, 8})
	if TokenTerminal(plus) != TokenTerminal(plus2) {
		t.Errorf("token terminals should not depend on spans")
	}
}

func TestSymbolStrings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorem.grammar")
	defer teardown()
	//
	p := Production{N("A"), T(Literal("a")), T(Epsilon), T(EndOfInput)}
	if p.String() != `A "a" ε #eof` {
		t.Errorf("unexpected production string %s", p)
	}
	if !EndOfInput.IsEndOfInput() || Epsilon.IsEndOfInput() || Literal("#eof").IsEndOfInput() {
		t.Errorf("only EndOfInput should report end of input")
	}
	if s := Literal("#eof").String(); s != `"#eof"` {
		t.Errorf("literal '#eof' should print quoted, is %s", s)
	}
}

func TestTerminalSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorem.grammar")
	defer teardown()
	//
	set := NewTerminalSet(Literal("b"))
	if !set.Add(Literal("a")) {
		t.Errorf("adding a new member should report a change")
	}
	if set.Add(Literal("a")) {
		t.Errorf("adding an existing member should not report a change")
	}
	other := NewTerminalSet(Literal("c"), Epsilon)
	if !set.unionExceptEpsilon(other) || set.Contains(Epsilon) {
		t.Errorf("union except ε should add c but not ε, have %v", set)
	}
	if set.Union(NewTerminalSet(Literal("a"))) {
		t.Errorf("union of a subset should not report a change")
	}
	if set.String() != `{"a", "b", "c"}` {
		t.Errorf("unexpected set string %s", set)
	}
	c := set.Copy()
	c.Add(EndOfInput)
	if set.Contains(EndOfInput) {
		t.Errorf("copy should be independent of original")
	}
	if !set.IsSubsetOf(c) || c.IsSubsetOf(set) {
		t.Errorf("subset relation broken for %v and %v", set, c)
	}
	var nilset TerminalSet
	if nilset.Contains(Epsilon) {
		t.Errorf("nil set should be empty")
	}
}
