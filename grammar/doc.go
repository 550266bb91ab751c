/*
Package grammar implements context-free grammars and their static analysis,
i.e. the computation of FIRST and FOLLOW sets.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals are
literal strings or tokens of package scanner. Grammars may contain
epsilon-productions.

Example:

    b := grammar.NewBuilder("G")
    b.LHS("S").N("A").N("B").End()    // S  ->  A B
    b.LHS("A").T("a").End()           // A  ->  "a"
    b.LHS("A").Epsilon()              // A  ->  ε
    b.LHS("B").T("b").End()           // B  ->  "b"
    g, err := b.Grammar("S")

This results in the following trivial grammar:

   g.Dump()

   0: [S] ::= [A B]
   1: [A] ::= ["a"]
   2: [A] ::= [ε]
   3: [B] ::= ["b"]

Grammars may as well be built from rule lines of the form

    HEAD => sym1 sym2 … symN

where each symbol is classified by its text: all-uppercase alphabetic
fragments are non-terminals, the fragment `ep30` denotes ε, and everything
else is a literal terminal. See ReadRules, Classify and Build.

Static Grammar Analysis

After the grammar is complete, it may be analysed. FIRST is computed to a
fixed point first, then handed to the FOLLOW computation as a finished input.

    ga := grammar.Analyze(g)
    g.EachNonTerminal(func(A grammar.NonTerminal) {
        fmt.Printf("FIRST(%s) = %v\n", A, ga.First(grammar.N(A)))
    })

    // Output:
    FIRST(S) = {"a", "b"}
    FIRST(A) = {"a", ε}
    FIRST(B) = {"b"}

Both computations are total functions over any grammar produced by a
Builder; they cannot fail.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gorem.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("gorem.grammar")
}
