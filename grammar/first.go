package grammar

// First computes FIRST(X) for every symbol X of g: the terminals which may
// start a string derived from X. ε is a member if X may derive the empty
// string. The result holds an entry for every terminal, every non-terminal
// and for ε itself.
//
// Sets are computed by iterating over all productions until a pass does not
// change any set. Sets only grow and are bounded by the terminal alphabet,
// thus the iteration terminates.
func First(g *Grammar) Sets {
	fc := newFirstComputation(g)
	pass := 1
	for fc.step() {
		tracer().Debugf("FIRST pass %d changed sets", pass)
		pass++
	}
	tracer().Debugf("FIRST sets stable after %d passes", pass)
	return fc.sets
}

type firstComputation struct {
	g    *Grammar
	sets Sets
}

// newFirstComputation sets up the base case: FIRST(t) = {t} for terminals,
// FIRST(A) = {} for non-terminals.
func newFirstComputation(g *Grammar) *firstComputation {
	fc := &firstComputation{g: g, sets: make(Sets)}
	fc.sets[T(Epsilon)] = NewTerminalSet(Epsilon)
	g.EachTerminal(func(t Terminal) {
		fc.sets[T(t)] = NewTerminalSet(t)
	})
	g.EachNonTerminal(func(A NonTerminal) {
		fc.sets[N(A)] = NewTerminalSet()
	})
	return fc
}

// step does one pass over all productions and returns true if any set changed.
func (fc *firstComputation) step() bool {
	changed := false
	fc.g.EachRule(func(A NonTerminal, prods []Production) {
		for _, p := range prods {
			if fc.addProduction(A, p) {
				changed = true
			}
		}
	})
	return changed
}

// addProduction adds FIRST(Y1 … Yk) to FIRST(A) for A → Y1 … Yk.
func (fc *firstComputation) addProduction(A NonTerminal, p Production) bool {
	return fc.sets[N(A)].Union(firstOfSequence(fc.sets, p))
}

// firstOfSequence returns FIRST(Y1 … Yk) with respect to the current state of
// sets: FIRST(Y1)\{ε}, plus FIRST(Yi+1)\{ε} as long as Y1 … Yi are nullable,
// plus ε if all of Y1 … Yk are nullable. ε is a member for an empty sequence.
func firstOfSequence(sets Sets, seq []Symbol) TerminalSet {
	result := NewTerminalSet()
	for _, Y := range seq {
		fy := sets[Y]
		result.unionExceptEpsilon(fy)
		if !fy.Contains(Epsilon) {
			return result
		}
	}
	result.Add(Epsilon)
	return result
}
