package grammar

import (
	"github.com/cnf/structhash"
)

// hashable form of a grammar; structhash needs exported fields.
type fingerprintData struct {
	Start string
	Rules []fingerprintRule
}

type fingerprintRule struct {
	Head   string
	Bodies []string
}

// Fingerprint returns a digest of the start symbol and the rules of g.
// Grammars with equal rules in equal order have equal fingerprints.
func (g *Grammar) Fingerprint() string {
	data := fingerprintData{Start: string(g.start)}
	g.EachRule(func(A NonTerminal, prods []Production) {
		r := fingerprintRule{Head: string(A)}
		for _, p := range prods {
			r.Bodies = append(r.Bodies, p.String())
		}
		data.Rules = append(data.Rules, r)
	})
	hash, err := structhash.Hash(data, 1)
	if err != nil {
		tracer().Errorf("cannot fingerprint grammar %s: %v", g.Name, err)
		return ""
	}
	return hash
}
