package grammar

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func lit(s string) Terminal {
	return Literal(s)
}

func fromRules(t *testing.T, start string, rules string) *Grammar {
	records, err := ReadRules(strings.NewReader(rules))
	if err != nil {
		t.Fatal(err)
	}
	g, err := Build("G", records, start)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// S → A B, A → "a" | ε, B → "b"
func epsilonGrammar(t *testing.T) *Grammar {
	return fromRules(t, "S", `
S => A B
A => a
A => ep30
B => b
END`)
}

// E → E "+" "a" | "a"
func leftRecursiveGrammar(t *testing.T) *Grammar {
	return fromRules(t, "E", `
E => E + a
E => a
END`)
}

// The classic expression grammar with left recursion removed.
func expressionGrammar(t *testing.T) *Grammar {
	return fromRules(t, "E", `
E  => T EP
EP => + T EP
EP => ep30
T  => F TP
TP => * F TP
TP => ep30
F  => ( E )
F  => id
END`)
}

type setCase struct {
	A        NonTerminal
	expected TerminalSet
}

func checkSets(t *testing.T, what string, sets Sets, cases []setCase) {
	t.Helper()
	for _, c := range cases {
		if have := sets[N(c.A)]; !have.Equals(c.expected) {
			t.Errorf("expected %s(%s) = %v, have %v", what, c.A, c.expected, have)
		}
	}
}

func TestFirstEpsilonPropagation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorem.grammar")
	defer teardown()
	//
	first := First(epsilonGrammar(t))
	checkSets(t, "FIRST", first, []setCase{
		{"A", NewTerminalSet(lit("a"), Epsilon)},
		{"B", NewTerminalSet(lit("b"))},
		{"S", NewTerminalSet(lit("a"), lit("b"))},
	})
}

func TestFollowViaEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorem.grammar")
	defer teardown()
	//
	g := epsilonGrammar(t)
	follow := Follow(g, First(g))
	checkSets(t, "FOLLOW", follow, []setCase{
		{"A", NewTerminalSet(lit("b"))},
		{"B", NewTerminalSet(EndOfInput)},
		{"S", NewTerminalSet(EndOfInput)},
	})
}

func TestFirstOfTerminals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorem.grammar")
	defer teardown()
	//
	g := expressionGrammar(t)
	first := First(g)
	g.EachTerminal(func(term Terminal) {
		if !first[T(term)].Equals(NewTerminalSet(term)) {
			t.Errorf("expected FIRST(%v) = {%v}, have %v", term, term, first[T(term)])
		}
	})
	if !first[T(Epsilon)].Equals(NewTerminalSet(Epsilon)) {
		t.Errorf("expected FIRST(ε) = {ε}, have %v", first[T(Epsilon)])
	}
	if len(first) != len(g.Terminals())+len(g.NonTerminals()) {
		t.Errorf("expected an entry for every symbol, have %d entries", len(first))
	}
}

func TestLeftRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorem.grammar")
	defer teardown()
	//
	ga := Analyze(leftRecursiveGrammar(t))
	checkSets(t, "FIRST", ga.FirstSets(), []setCase{
		{"E", NewTerminalSet(lit("a"))},
	})
	checkSets(t, "FOLLOW", ga.FollowSets(), []setCase{
		{"E", NewTerminalSet(lit("+"), EndOfInput)},
	})
}

func TestExpressionGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorem.grammar")
	defer teardown()
	//
	ga := Analyze(expressionGrammar(t))
	open := NewTerminalSet(lit("("), lit("id"))
	checkSets(t, "FIRST", ga.FirstSets(), []setCase{
		{"E", open},
		{"T", open},
		{"F", open},
		{"EP", NewTerminalSet(lit("+"), Epsilon)},
		{"TP", NewTerminalSet(lit("*"), Epsilon)},
	})
	checkSets(t, "FOLLOW", ga.FollowSets(), []setCase{
		{"E", NewTerminalSet(lit(")"), EndOfInput)},
		{"EP", NewTerminalSet(lit(")"), EndOfInput)},
		{"T", NewTerminalSet(lit("+"), lit(")"), EndOfInput)},
		{"TP", NewTerminalSet(lit("+"), lit(")"), EndOfInput)},
		{"F", NewTerminalSet(lit("*"), lit("+"), lit(")"), EndOfInput)},
	})
	if !ga.Nullable("EP") || ga.Nullable("E") {
		t.Errorf("expected EP to be nullable and E not to be")
	}
}

func TestStartSymbolSeeding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorem.grammar")
	defer teardown()
	//
	grammars := []*Grammar{
		fromRules(t, "S", "S => a"),
		fromRules(t, "S", "S => ep30"),
		fromRules(t, "A", "S => A\nA => b"),
		epsilonGrammar(t),
		leftRecursiveGrammar(t),
		expressionGrammar(t),
	}
	for i, g := range grammars {
		ga := Analyze(g)
		if !ga.Follow(g.Start()).Contains(EndOfInput) {
			t.Errorf("grammar #%d: expected #eof in FOLLOW(%s)", i, g.Start())
		}
	}
}

func TestEpsilonResetsFollowTrailer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorem.grammar")
	defer teardown()
	//
	g := fromRules(t, "S", "S => A ep30 b\nA => a")
	ga := Analyze(g)
	checkSets(t, "FOLLOW", ga.FollowSets(), []setCase{
		{"A", NewTerminalSet(Epsilon)},
		{"S", NewTerminalSet(EndOfInput)},
	})
	// ε as the last symbol hides FOLLOW(S) from B
	g = fromRules(t, "S", "S => B ep30\nB => b")
	ga = Analyze(g)
	checkSets(t, "FOLLOW", ga.FollowSets(), []setCase{
		{"B", NewTerminalSet(Epsilon)},
	})
}

func TestFirstOfSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorem.grammar")
	defer teardown()
	//
	ga := Analyze(expressionGrammar(t))
	if f := ga.FirstOf(N("EP"), N("TP")); !f.Equals(NewTerminalSet(lit("+"), lit("*"), Epsilon)) {
		t.Errorf("expected FIRST(EP TP) = {+, *, ε}, have %v", f)
	}
	if f := ga.FirstOf(N("EP"), T(lit(")"))); !f.Equals(NewTerminalSet(lit("+"), lit(")"))) {
		t.Errorf("expected FIRST(EP \")\") = {+, )}, have %v", f)
	}
	if f := ga.FirstOf(); !f.Equals(NewTerminalSet(Epsilon)) {
		t.Errorf("expected FIRST of empty sequence = {ε}, have %v", f)
	}
}

func TestFirstIsMonotoneAndIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorem.grammar")
	defer teardown()
	//
	for _, g := range []*Grammar{epsilonGrammar(t), leftRecursiveGrammar(t), expressionGrammar(t)} {
		fc := newFirstComputation(g)
		for pass := 0; ; pass++ {
			before := fc.sets.Copy()
			changed := fc.step()
			checkGrowth(t, pass, before, fc.sets)
			if !changed {
				checkStable(t, before, fc.sets)
				break
			}
		}
		stable := fc.sets.Copy()
		if fc.step() {
			t.Errorf("expected closing pass of FIRST to change nothing")
		}
		checkStable(t, stable, fc.sets)
	}
}

func TestFollowIsMonotoneAndIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorem.grammar")
	defer teardown()
	//
	for _, g := range []*Grammar{epsilonGrammar(t), leftRecursiveGrammar(t), expressionGrammar(t)} {
		first := First(g)
		frozen := first.Copy()
		fc := newFollowComputation(g, first)
		for pass := 0; ; pass++ {
			before := fc.sets.Copy()
			changed := fc.step()
			checkGrowth(t, pass, before, fc.sets)
			if !changed {
				checkStable(t, before, fc.sets)
				break
			}
		}
		if fc.step() {
			t.Errorf("expected closing pass of FOLLOW to change nothing")
		}
		checkStable(t, frozen, first)
	}
}

func checkGrowth(t *testing.T, pass int, before, after Sets) {
	t.Helper()
	for sym, set := range before {
		if !set.IsSubsetOf(after[sym]) {
			t.Errorf("pass %d: set of %v shrank from %v to %v", pass, sym, set, after[sym])
		}
	}
}

func checkStable(t *testing.T, before, after Sets) {
	t.Helper()
	if len(before) != len(after) {
		t.Errorf("expected %d sets, have %d", len(before), len(after))
	}
	for sym, set := range before {
		if !set.Equals(after[sym]) {
			t.Errorf("set of %v changed from %v to %v", sym, set, after[sym])
		}
	}
}
