package grammar

import (
	"unicode"
)

// EpsilonFragment is the rule fragment denoting an empty derivation.
const EpsilonFragment = "ep30"

// Classify decides, from its text alone, which symbol a rule fragment denotes:
//
//   all letters and upper case   →  non-terminal (caseless letters count as upper case)
//   "ep30"                       →  ε
//   anything else                →  literal terminal
//
func Classify(fragment string) Symbol {
	if fragment == EpsilonFragment {
		return T(Epsilon)
	}
	if isNonTerminalName(fragment) {
		return N(NonTerminal(fragment))
	}
	return T(Literal(fragment))
}

func isNonTerminalName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		// 'ß' has no single-rune upper case but is lower case nevertheless
		if !unicode.IsLetter(r) || unicode.IsLower(r) || unicode.ToUpper(r) != r {
			return false
		}
	}
	return true
}
