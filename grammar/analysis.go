package grammar

// Analysis holds the FIRST and FOLLOW sets of a grammar.
// Clients should treat the sets returned by its methods as read-only.
type Analysis struct {
	g      *Grammar
	first  Sets
	follow Sets
}

// Analyze computes FIRST sets for g to completion, then FOLLOW sets on top
// of them.
func Analyze(g *Grammar) *Analysis {
	ga := &Analysis{g: g}
	ga.first = First(g)
	ga.follow = Follow(g, ga.first)
	return ga
}

// Grammar returns the grammar which has been analysed.
func (ga *Analysis) Grammar() *Grammar {
	return ga.g
}

// First returns FIRST(X), or nil if X is not a symbol of the grammar.
func (ga *Analysis) First(X Symbol) TerminalSet {
	return ga.first[X]
}

// Follow returns FOLLOW(A), or nil if A is not a non-terminal of the grammar.
func (ga *Analysis) Follow(A NonTerminal) TerminalSet {
	return ga.follow[N(A)]
}

// FirstSets returns the FIRST sets of all symbols.
func (ga *Analysis) FirstSets() Sets {
	return ga.first
}

// FollowSets returns the FOLLOW sets of all non-terminals.
func (ga *Analysis) FollowSets() Sets {
	return ga.follow
}

// Nullable is true if A may derive the empty string.
func (ga *Analysis) Nullable(A NonTerminal) bool {
	return ga.first[N(A)].Contains(Epsilon)
}

// FirstOf returns FIRST of a sequence of symbols, e.g. the remainder of a
// production right of a dot. ε is a member if the whole sequence may vanish,
// in particular for an empty sequence.
func (ga *Analysis) FirstOf(seq ...Symbol) TerminalSet {
	return firstOfSequence(ga.first, seq)
}
