package globpattern

import "strings"

// Equal reports whether two matcher trees are structurally identical: same
// node kinds, same payloads, recursively equal children and continuations.
// It is the equality Parse round-trips are checked against; it says nothing
// about whether two different trees accept the same subjects.
func Equal(a, b Matcher) bool {
	switch x := a.(type) {
	case *nullMatcher:
		_, ok := b.(*nullMatcher)
		return ok
	case *literalMatcher:
		y, ok := b.(*literalMatcher)
		return ok && x.chars == y.chars && Equal(x.rest, y.rest)
	case *anyMatcher:
		y, ok := b.(*anyMatcher)
		return ok && Equal(x.rest, y.rest)
	case *eitherMatcher:
		y, ok := b.(*eitherMatcher)
		return ok && Equal(x.left, y.left) && Equal(x.right, y.right) && Equal(x.rest, y.rest)
	case *choiceMatcher:
		y, ok := b.(*choiceMatcher)
		if !ok || len(x.patterns) != len(y.patterns) {
			return false
		}
		for i := range x.patterns {
			if !Equal(x.patterns[i], y.patterns[i]) {
				return false
			}
		}
		return Equal(x.rest, y.rest)
	case *onePlusMatcher:
		y, ok := b.(*onePlusMatcher)
		return ok && x.c == y.c && Equal(x.rest, y.rest)
	case *charsetMatcher:
		y, ok := b.(*charsetMatcher)
		return ok && x.chars == y.chars && Equal(x.rest, y.rest)
	case *rangeMatcher:
		y, ok := b.(*rangeMatcher)
		return ok && x.lo == y.lo && x.hi == y.hi && Equal(x.rest, y.rest)
	}

	return false
}

// The String methods render a tree back to pattern syntax. Nodes the grammar
// can produce round-trip through Parse; OnePlus, Range and multi-way Choice
// have no surface syntax and render to a readable approximation instead
// (c+, [lo-hi], {a,b,c}) that is not guaranteed to re-parse.

func (m *nullMatcher) String() string {
	return ""
}

func (m *literalMatcher) String() string {
	return escapePatternString(m.chars) + m.rest.String()
}

func (m *anyMatcher) String() string {
	return "*" + m.rest.String()
}

func (m *eitherMatcher) String() string {
	return "{" + m.left.String() + "," + m.right.String() + "}" + m.rest.String()
}

func (m *choiceMatcher) String() string {
	alternatives := make([]string, len(m.patterns))
	for i, p := range m.patterns {
		alternatives[i] = p.String()
	}

	return "{" + strings.Join(alternatives, ",") + "}" + m.rest.String()
}

func (m *onePlusMatcher) String() string {
	return escapePatternString(string(m.c)) + "+" + m.rest.String()
}

func (m *charsetMatcher) String() string {
	return "[" + escapePatternString(m.chars) + "]" + m.rest.String()
}

func (m *rangeMatcher) String() string {
	return "[" + escapePatternString(string(m.lo)) + "-" + escapePatternString(string(m.hi)) + "]" + m.rest.String()
}
