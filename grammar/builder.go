package grammar

// Builder is used to construct a grammar. Construction is additive only;
// rules cannot be removed.
//
//     b := grammar.NewBuilder("G")
//     b.LHS("S").N("A").T("a").End()  // S  ->  A "a"
//     b.LHS("A").Epsilon()            // A  ->  ε
//     g, err := b.Grammar("S")
//
type Builder struct {
	name string
	g    *Grammar
}

// NewBuilder returns a new grammar builder for a grammar with a given name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name: name,
		g:    newGrammar(name),
	}
}

// LHS starts a new rule for head A.
func (b *Builder) LHS(A string) *RuleBuilder {
	return &RuleBuilder{b: b, head: NonTerminal(A)}
}

// Add appends production p to the rule for A. p must not be empty.
func (b *Builder) Add(A NonTerminal, p Production) error {
	if A == "" {
		return &ConstructionError{Code: MissingHead, Input: p.String()}
	}
	if len(p) == 0 {
		return &ConstructionError{Code: EmptyProduction, Input: string(A)}
	}
	tracer().Debugf("adding rule %s => %v", A, p)
	b.g.add(A, append(Production(nil), p...))
	return nil
}

// AddRecord classifies the fragments of a rule record and adds the
// resulting production.
func (b *Builder) AddRecord(rec RuleRecord) error {
	p := make(Production, len(rec.Fragments))
	for i, frag := range rec.Fragments {
		p[i] = Classify(frag)
	}
	if err := b.Add(NonTerminal(rec.Head), p); err != nil {
		if cerr, ok := err.(*ConstructionError); ok {
			cerr.Line = rec.Line
		}
		return err
	}
	return nil
}

// IsNonTerminal is true if A has been registered so far.
func (b *Builder) IsNonTerminal(A NonTerminal) bool {
	return b.g.IsNonTerminal(A)
}

// NonTerminals returns the non-terminals registered so far.
func (b *Builder) NonTerminals() []NonTerminal {
	return b.g.NonTerminals()
}

// Grammar returns the grammar with start symbol S. If S has not been
// registered as a non-terminal, an error of code UnknownStartSymbol is
// returned and the builder remains usable. On success the builder starts
// afresh with an empty grammar.
func (b *Builder) Grammar(S string) (*Grammar, error) {
	if !b.g.IsNonTerminal(NonTerminal(S)) {
		return nil, &ConstructionError{
			Code:  UnknownStartSymbol,
			Input: S,
			Known: b.g.NonTerminals(),
		}
	}
	g := b.g
	g.start = NonTerminal(S)
	b.g = newGrammar(b.name)
	return g, nil
}

// Build creates a grammar from a sequence of rule records and a start
// symbol.
func Build(name string, records []RuleRecord, start string) (*Grammar, error) {
	b := NewBuilder(name)
	for _, rec := range records {
		if err := b.AddRecord(rec); err != nil {
			return nil, err
		}
	}
	return b.Grammar(start)
}

// --- Rule builder ----------------------------------------------------------

// RuleBuilder is a builder type for a single production.
type RuleBuilder struct {
	b    *Builder
	head NonTerminal
	body Production
}

// N appends a non-terminal to the production.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.body = append(rb.body, N(NonTerminal(name)))
	return rb
}

// T appends a literal terminal to the production.
func (rb *RuleBuilder) T(text string) *RuleBuilder {
	rb.body = append(rb.body, T(Literal(text)))
	return rb
}

// End closes the production and adds it to the grammar. A production without
// symbols is taken as an epsilon-production.
func (rb *RuleBuilder) End() Production {
	if len(rb.body) == 0 {
		return rb.Epsilon()
	}
	if err := rb.b.Add(rb.head, rb.body); err != nil {
		tracer().Errorf("%v", err)
		return nil
	}
	return rb.body
}

// Epsilon adds the production [ε] for the rule's head.
func (rb *RuleBuilder) Epsilon() Production {
	rb.body = Production{T(Epsilon)}
	if err := rb.b.Add(rb.head, rb.body); err != nil {
		tracer().Errorf("%v", err)
		return nil
	}
	return rb.body
}
