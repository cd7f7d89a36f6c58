package generator

import (
	"strings"
)

// Matcher tests addresses against an ordered list of terms.
// The terms are expected to be normalized already (see Config.Normalize);
// addresses are normalized the same way on every call.
type Matcher struct {
	terms         []string
	caseSensitive bool
}

// NewMatcher creates a matcher for the given terms.
func NewMatcher(terms []string, caseSensitive bool) *Matcher {
	return &Matcher{
		terms:         terms,
		caseSensitive: caseSensitive,
	}
}

// Terms returns the terms in match order.
func (m *Matcher) Terms() []string {
	return m.terms
}

func (m *Matcher) normalize(address string) string {
	if m.caseSensitive {
		return address
	}
	return strings.ToLower(address)
}

// Match returns the first term, in configured order, that the address contains.
// Later terms are not reported even if they also appear.
func (m *Matcher) Match(address string) (string, bool) {
	addr := m.normalize(address)
	for _, term := range m.terms {
		if strings.Contains(addr, term) {
			return term, true
		}
	}
	return "", false
}

// Score ranks a match. Every contained term adds 10, plus 20 if the address
// starts with it, 15 if it ends with it and 5 for each extra occurrence.
// The score has no bearing on whether a result is accepted.
func (m *Matcher) Score(address string) int {
	addr := m.normalize(address)
	score := 0
	for _, term := range m.terms {
		if !strings.Contains(addr, term) {
			continue
		}
		score += 10
		if strings.HasPrefix(addr, term) {
			score += 20
		}
		if strings.HasSuffix(addr, term) {
			score += 15
		}
		if extra := strings.Count(addr, term) - 1; extra > 0 {
			score += extra * 5
		}
	}
	return score
}
