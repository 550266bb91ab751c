package grammar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/gorem"
	"github.com/npillmayer/gorem/scanner"
	"golang.org/x/exp/slices"
)

// --- Terminals -------------------------------------------------------------

// Terminal is a grammar symbol which cannot be expanded further. It is either
// a token, identified by token type and lexeme, or Epsilon.
// Terminals are comparable and may be used as map keys.
type Terminal struct {
	kind    gorem.TokType
	lexeme  string
	epsilon bool
}

// Epsilon is the terminal for the empty derivation.
var Epsilon = Terminal{epsilon: true}

// EndOfInput is the terminal implicitly following the start symbol.
var EndOfInput = Terminal{kind: scanner.EOF}

// Literal wraps the text of a grammar fragment as a terminal.
func Literal(text string) Terminal {
	return Terminal{kind: scanner.String, lexeme: text}
}

// TokenTerminal lifts a scanner token to a terminal. The token's span and
// value are stripped.
func TokenTerminal(tok gorem.Token) Terminal {
	if tok.TokType() == scanner.EOF {
		return EndOfInput
	}
	return Terminal{kind: tok.TokType(), lexeme: tok.Lexeme()}
}

// TokType returns the token type of a token terminal. It is meaningless for
// Epsilon.
func (t Terminal) TokType() gorem.TokType {
	return t.kind
}

func (t Terminal) Lexeme() string {
	return t.lexeme
}

func (t Terminal) IsEpsilon() bool {
	return t.epsilon
}

func (t Terminal) IsEndOfInput() bool {
	return t == EndOfInput
}

func (t Terminal) String() string {
	switch {
	case t.epsilon:
		return "ε"
	case t.IsEndOfInput():
		return "#eof"
	}
	return strconv.Quote(t.lexeme)
}

// --- Non-terminals and symbols ---------------------------------------------

// NonTerminal names a syntactic category. Identity is by name.
type NonTerminal string

// Symbol is either a Terminal or a NonTerminal. Symbols are comparable and
// may be used as map keys. Create them with T and N.
type Symbol struct {
	term Terminal
	nt   NonTerminal
	isNT bool
}

// T creates a terminal symbol.
func T(t Terminal) Symbol {
	return Symbol{term: t}
}

// N creates a non-terminal symbol.
func N(name NonTerminal) Symbol {
	return Symbol{nt: name, isNT: true}
}

func (s Symbol) IsTerminal() bool {
	return !s.isNT
}

func (s Symbol) IsNonTerminal() bool {
	return s.isNT
}

// Terminal returns the terminal of a terminal symbol, and the zero Terminal
// otherwise.
func (s Symbol) Terminal() Terminal {
	return s.term
}

// NonTerminal returns the name of a non-terminal symbol, and "" otherwise.
func (s Symbol) NonTerminal() NonTerminal {
	return s.nt
}

func (s Symbol) String() string {
	if s.isNT {
		return string(s.nt)
	}
	return s.term.String()
}

// Production is a non-empty sequence of symbols, the right hand side of a
// rule. A rule deriving nothing has the production [T(Epsilon)].
type Production []Symbol

func (p Production) String() string {
	syms := make([]string, len(p))
	for i, sym := range p {
		syms[i] = sym.String()
	}
	return strings.Join(syms, " ")
}

// --- Sets of terminals -----------------------------------------------------

// TerminalSet is a set of terminals. Sets only grow: Add and Union report
// whether the set changed.
type TerminalSet map[Terminal]struct{}

var exists = struct{}{}

// NewTerminalSet creates a set containing the given terminals.
func NewTerminalSet(terms ...Terminal) TerminalSet {
	set := make(TerminalSet, len(terms))
	for _, t := range terms {
		set[t] = exists
	}
	return set
}

// Add inserts t and returns true if t has not been a member before.
func (set TerminalSet) Add(t Terminal) bool {
	if _, ok := set[t]; ok {
		return false
	}
	set[t] = exists
	return true
}

// Union adds all members of other and returns true if set changed.
func (set TerminalSet) Union(other TerminalSet) bool {
	changed := false
	for t := range other {
		if set.Add(t) {
			changed = true
		}
	}
	return changed
}

// unionExceptEpsilon adds other\{ε} and returns true if set changed.
func (set TerminalSet) unionExceptEpsilon(other TerminalSet) bool {
	changed := false
	for t := range other {
		if t.epsilon {
			continue
		}
		if set.Add(t) {
			changed = true
		}
	}
	return changed
}

func (set TerminalSet) Contains(t Terminal) bool {
	if set == nil {
		return false
	}
	_, ok := set[t]
	return ok
}

// Copy returns a copy of set which may be modified independently.
func (set TerminalSet) Copy() TerminalSet {
	c := make(TerminalSet, len(set))
	for t := range set {
		c[t] = exists
	}
	return c
}

// Equals is true if both sets have the same members.
func (set TerminalSet) Equals(other TerminalSet) bool {
	if len(set) != len(other) {
		return false
	}
	for t := range set {
		if !other.Contains(t) {
			return false
		}
	}
	return true
}

// IsSubsetOf is true if every member of set is a member of other.
func (set TerminalSet) IsSubsetOf(other TerminalSet) bool {
	for t := range set {
		if !other.Contains(t) {
			return false
		}
	}
	return true
}

// Members returns the members of set, sorted by their display string.
func (set TerminalSet) Members() []Terminal {
	m := make([]Terminal, 0, len(set))
	for t := range set {
		m = append(m, t)
	}
	slices.SortFunc(m, func(a, b Terminal) int {
		return strings.Compare(a.String(), b.String())
	})
	return m
}

func (set TerminalSet) String() string {
	m := set.Members()
	s := make([]string, len(m))
	for i, t := range m {
		s[i] = t.String()
	}
	return fmt.Sprintf("{%s}", strings.Join(s, ", "))
}

// Sets maps symbols to sets of terminals. It is the result type of the FIRST
// and FOLLOW computations.
type Sets map[Symbol]TerminalSet

// Copy returns a deep copy.
func (sets Sets) Copy() Sets {
	c := make(Sets, len(sets))
	for sym, set := range sets {
		c[sym] = set.Copy()
	}
	return c
}
