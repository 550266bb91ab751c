/*
Package report formats FIRST and FOLLOW sets for output.

Sets are reported one symbol per line,

    A => "a", ε
    B => "b"

with non-terminals first (in grammar order), followed by terminals. Members
are sorted by their display string: non-terminals by name, literals as
quoted strings, `ε` for epsilon and `#eof` for end of input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/gorem/grammar"
	"github.com/pterm/pterm"
)

// Write writes one line per symbol which has an entry in sets.
func Write(w io.Writer, g *grammar.Grammar, sets grammar.Sets) error {
	for _, sym := range Keys(g, sets) {
		if _, err := fmt.Fprintln(w, Line(sym, sets[sym])); err != nil {
			return err
		}
	}
	return nil
}

// Line formats a single report line.
func Line(sym grammar.Symbol, set grammar.TerminalSet) string {
	members := memberStrings(set)
	if len(members) == 0 {
		return sym.String() + " =>"
	}
	return sym.String() + " => " + strings.Join(members, ", ")
}

// Table returns sets as table data, to be rendered with pterm:
//
//     pterm.DefaultTable.WithHasHeader().WithData(report.Table(g, first, "FIRST")).Render()
//
func Table(g *grammar.Grammar, sets grammar.Sets, header string) pterm.TableData {
	data := pterm.TableData{{"symbol", header}}
	for _, sym := range Keys(g, sets) {
		data = append(data, []string{sym.String(), strings.Join(memberStrings(sets[sym]), " ")})
	}
	return data
}

// Keys returns the symbols of g having an entry in sets: non-terminals
// first, then terminals, each in grammar order, then ε if not yet included.
func Keys(g *grammar.Grammar, sets grammar.Sets) []grammar.Symbol {
	var keys []grammar.Symbol
	add := func(sym grammar.Symbol) {
		if _, ok := sets[sym]; ok {
			keys = append(keys, sym)
		}
	}
	g.EachNonTerminal(func(A grammar.NonTerminal) {
		add(grammar.N(A))
	})
	epsilon := false
	g.EachTerminal(func(t grammar.Terminal) {
		epsilon = epsilon || t.IsEpsilon()
		add(grammar.T(t))
	})
	if !epsilon {
		add(grammar.T(grammar.Epsilon))
	}
	return keys
}

func memberStrings(set grammar.TerminalSet) []string {
	members := set.Members()
	s := make([]string, len(members))
	for i, t := range members {
		s[i] = t.String()
	}
	return s
}
