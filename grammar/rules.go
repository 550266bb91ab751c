package grammar

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// RuleSeparator separates the head of a rule line from its body.
const RuleSeparator = "=>"

// EndOfRules is the sentinel line terminating rule entry.
const EndOfRules = "END"

// RuleRecord is a pre-split rule line. Line is the 1-based line number in the
// input, or 0 if unknown.
type RuleRecord struct {
	Head      string
	Fragments []string
	Line      int
}

// ParseRuleLine splits a line of the form
//
//     HEAD => sym1 sym2 … symN
//
// into a rule record. Fragments are not classified.
func ParseRuleLine(line string) (RuleRecord, error) {
	head, body, found := strings.Cut(line, RuleSeparator)
	if !found {
		return RuleRecord{}, &ConstructionError{Code: MissingSeparator, Input: line}
	}
	if strings.Contains(body, RuleSeparator) {
		return RuleRecord{}, &ConstructionError{Code: ExtraSeparator, Input: line}
	}
	rec := RuleRecord{
		Head:      strings.TrimSpace(head),
		Fragments: strings.Fields(body),
	}
	if rec.Head == "" {
		return RuleRecord{}, &ConstructionError{Code: MissingHead, Input: line}
	}
	if len(rec.Fragments) == 0 {
		return RuleRecord{}, &ConstructionError{Code: EmptyProduction, Input: line}
	}
	return rec, nil
}

// IsEndOfRules is true for the sentinel line terminating rule entry.
func IsEndOfRules(line string) bool {
	return strings.TrimSpace(line) == EndOfRules
}

// ReadRules reads rule lines until the sentinel line or end of input. Blank
// lines are skipped. The first malformed line aborts reading.
func ReadRules(r io.Reader) ([]RuleRecord, error) {
	var records []RuleRecord
	lines := bufio.NewScanner(r)
	n := 0
	for lines.Scan() {
		n++
		line := lines.Text()
		if IsEndOfRules(line) {
			return records, nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := ParseRuleLine(line)
		if err != nil {
			err.(*ConstructionError).Line = n
			return records, err
		}
		rec.Line = n
		records = append(records, rec)
	}
	if err := lines.Err(); err != nil {
		return records, fmt.Errorf("cannot read rules: %w", err)
	}
	return records, nil
}
