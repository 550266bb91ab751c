package grammar

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Grammar is a context-free grammar. Rules, terminals and non-terminals are
// kept in order of insertion. A Grammar is created by a Builder and is
// read-only thereafter.
type Grammar struct {
	Name         string
	start        NonTerminal
	rules        *linkedhashmap.Map // NonTerminal → []Production
	terminals    *linkedhashset.Set // of Terminal
	nonterminals *linkedhashset.Set // of NonTerminal
}

func newGrammar(name string) *Grammar {
	return &Grammar{
		Name:         name,
		rules:        linkedhashmap.New(),
		terminals:    linkedhashset.New(),
		nonterminals: linkedhashset.New(),
	}
}

// Start returns the start symbol.
func (g *Grammar) Start() NonTerminal {
	return g.start
}

// EachRule calls f for every rule head, in order of first appearance as a
// head, together with its productions.
func (g *Grammar) EachRule(f func(head NonTerminal, prods []Production)) {
	it := g.rules.Iterator()
	for it.Next() {
		f(it.Key().(NonTerminal), it.Value().([]Production))
	}
}

// Productions returns the productions of a rule head, or nil if A is not a
// rule head.
func (g *Grammar) Productions(A NonTerminal) []Production {
	if prods, found := g.rules.Get(A); found {
		return prods.([]Production)
	}
	return nil
}

// EachTerminal calls f for every terminal used in a production.
func (g *Grammar) EachTerminal(f func(Terminal)) {
	for _, t := range g.terminals.Values() {
		f(t.(Terminal))
	}
}

// Terminals returns all terminals used in productions, including Epsilon if
// used.
func (g *Grammar) Terminals() []Terminal {
	terms := make([]Terminal, 0, g.terminals.Size())
	g.EachTerminal(func(t Terminal) {
		terms = append(terms, t)
	})
	return terms
}

// EachNonTerminal calls f for every non-terminal, i.e. rule heads and
// non-terminals used in productions.
func (g *Grammar) EachNonTerminal(f func(NonTerminal)) {
	for _, A := range g.nonterminals.Values() {
		f(A.(NonTerminal))
	}
}

func (g *Grammar) NonTerminals() []NonTerminal {
	nts := make([]NonTerminal, 0, g.nonterminals.Size())
	g.EachNonTerminal(func(A NonTerminal) {
		nts = append(nts, A)
	})
	return nts
}

// IsNonTerminal is true if A is a registered non-terminal.
func (g *Grammar) IsNonTerminal(A NonTerminal) bool {
	return g.nonterminals.Contains(A)
}

// Size returns the number of productions.
func (g *Grammar) Size() int {
	n := 0
	g.EachRule(func(_ NonTerminal, prods []Production) {
		n += len(prods)
	})
	return n
}

// Dump is a debugging helper which traces the numbered list of productions.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	tracer().Debugf("start symbol is %s", g.start)
	i := 0
	g.EachRule(func(A NonTerminal, prods []Production) {
		for _, p := range prods {
			tracer().Debugf("%3d: [%s] ::= [%s]", i, A, p)
			i++
		}
	})
	tracer().Debugf("-------------------------------------------------------")
}

// add appends a production to the rule for A and registers every symbol.
func (g *Grammar) add(A NonTerminal, p Production) {
	g.nonterminals.Add(A)
	for _, sym := range p {
		if sym.IsNonTerminal() {
			g.nonterminals.Add(sym.NonTerminal())
		} else {
			g.terminals.Add(sym.Terminal())
		}
	}
	prods := g.Productions(A)
	g.rules.Put(A, append(prods, p))
}
