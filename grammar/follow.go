package grammar

// Follow computes FOLLOW(A) for every non-terminal A of g: the terminals which
// may appear immediately to the right of A in a sentential form derived from
// the start symbol. EndOfInput follows the start symbol. Keys of the result
// are N(A).
//
// first must be the finished result of First(g). It is not modified.
func Follow(g *Grammar, first Sets) Sets {
	fc := newFollowComputation(g, first)
	pass := 1
	for fc.step() {
		tracer().Debugf("FOLLOW pass %d changed sets", pass)
		pass++
	}
	tracer().Debugf("FOLLOW sets stable after %d passes", pass)
	return fc.sets
}

type followComputation struct {
	g     *Grammar
	first Sets
	sets  Sets
}

func newFollowComputation(g *Grammar, first Sets) *followComputation {
	fc := &followComputation{g: g, first: first, sets: make(Sets)}
	g.EachNonTerminal(func(A NonTerminal) {
		fc.sets[N(A)] = NewTerminalSet()
	})
	fc.sets[N(g.Start())].Add(EndOfInput)
	return fc
}

// step does one pass over all productions and returns true if any set changed.
func (fc *followComputation) step() bool {
	changed := false
	fc.g.EachRule(func(A NonTerminal, prods []Production) {
		for _, p := range prods {
			if fc.scanProduction(A, p) {
				changed = true
			}
		}
	})
	return changed
}

// scanProduction walks A → Y1 … Yk from right to left. The trailer holds what
// may follow the symbol currently examined; it starts as FOLLOW(A). Every
// terminal, ε included, resets the trailer to itself.
func (fc *followComputation) scanProduction(A NonTerminal, p Production) bool {
	changed := false
	trailer := fc.sets[N(A)].Copy()
	for i := len(p) - 1; i >= 0; i-- {
		Y := p[i]
		if Y.IsTerminal() {
			trailer = NewTerminalSet(Y.Terminal())
			continue
		}
		if fc.sets[Y].Union(trailer) {
			changed = true
		}
		fy := fc.first[Y]
		if !fy.Contains(Epsilon) {
			trailer = NewTerminalSet()
		}
		trailer.unionExceptEpsilon(fy)
	}
	return changed
}
