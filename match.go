package globpattern

import "fmt"

// notAMatch is the position-domain failure sentinel. It sits strictly outside
// the valid range [0, len(text)], so it can never be confused with a position,
// including len(text) itself ("everything consumed").
const notAMatch = -1

// Matcher is one node of a compiled pattern tree. Each node owns the node to
// try after it succeeds (its continuation); chaining continuations is how
// concatenation of pattern pieces is expressed. Trees are immutable once
// built and may be matched against any number of subjects, concurrently.
//
// The set of implementations is closed: new kinds cannot be defined outside
// this package.
type Matcher interface {
	fmt.Stringer

	// matchFrom attempts to match text at start and returns the position
	// reached after this node and its continuation chain, or notAMatch.
	matchFrom(text string, start int) int
}

// Match reports whether m consumes text in its entirety. Matching a prefix or
// a substring is not enough: every character must be accounted for.
func Match(m Matcher, text string) bool {
	return m.matchFrom(text, 0) == len(text)
}

// nullTerminal is the shared empty continuation that ends every chain.
var nullTerminal = &nullMatcher{}

// orNull substitutes the shared terminal for a missing continuation.
func orNull(rest Matcher) Matcher {
	if rest == nil {
		return nullTerminal
	}

	return rest
}

type nullMatcher struct{}

type literalMatcher struct {
	chars string
	rest  Matcher
}

type anyMatcher struct {
	rest Matcher
}

type eitherMatcher struct {
	left  Matcher
	right Matcher
	rest  Matcher
}

type choiceMatcher struct {
	patterns []Matcher
	rest     Matcher
}

type onePlusMatcher struct {
	c    byte
	rest Matcher
}

type charsetMatcher struct {
	chars string
	rest  Matcher
}

type rangeMatcher struct {
	lo   byte
	hi   byte
	rest Matcher
}

// Null returns the empty matcher: it consumes nothing and succeeds at any
// position. It is the implicit end of every pattern; passing nil as the rest
// argument of any constructor is equivalent to passing Null().
func Null() Matcher {
	return nullTerminal
}

// Literal returns a matcher that consumes exactly chars.
func Literal(chars string, rest Matcher) Matcher {
	return &literalMatcher{chars: chars, rest: orNull(rest)}
}

// Any returns a matcher that consumes a span of arbitrary characters,
// possibly empty. Candidate spans are tried shortest first, and a span is
// kept only when the continuation goes on to consume the rest of the subject.
func Any(rest Matcher) Matcher {
	return &anyMatcher{rest: orNull(rest)}
}

// Either returns a matcher that consumes as left or, failing that, as right.
// The alternatives are tried in that order and the first one that leads to
// whole-subject consumption wins.
func Either(left, right Matcher, rest Matcher) Matcher {
	return &eitherMatcher{left: orNull(left), right: orNull(right), rest: orNull(rest)}
}

// Choice generalizes Either to an ordered list of alternatives. An empty list
// never matches anything.
func Choice(patterns []Matcher, rest Matcher) Matcher {
	normalized := make([]Matcher, len(patterns))
	for i, p := range patterns {
		normalized[i] = orNull(p)
	}

	return &choiceMatcher{patterns: normalized, rest: orNull(rest)}
}

// OnePlus returns a matcher that consumes one or more repetitions of c. A
// zero-length run never matches.
func OnePlus(c byte, rest Matcher) Matcher {
	return &onePlusMatcher{c: c, rest: orNull(rest)}
}

// Charset returns a matcher that consumes exactly one character drawn from
// chars, tested in the order they appear.
func Charset(chars string, rest Matcher) Matcher {
	return &charsetMatcher{chars: chars, rest: orNull(rest)}
}

// Range returns a matcher that consumes exactly one character c with
// lo <= c <= hi, inclusive on both ends.
func Range(lo, hi byte, rest Matcher) Matcher {
	return &rangeMatcher{lo: lo, hi: hi, rest: orNull(rest)}
}

func (m *nullMatcher) matchFrom(_ string, start int) int {
	return start
}

func (m *literalMatcher) matchFrom(text string, start int) int {
	end := start + len(m.chars)
	if end > len(text) || text[start:end] != m.chars {
		return notAMatch
	}

	return m.rest.matchFrom(text, end)
}

func (m *anyMatcher) matchFrom(text string, start int) int {
	// Less than or equal: an empty span is a valid candidate.
	for i := start; i <= len(text); i++ {
		if end := m.rest.matchFrom(text, i); end == len(text) {
			return end
		}
	}

	return notAMatch
}

func (m *eitherMatcher) matchFrom(text string, start int) int {
	for _, pattern := range []Matcher{m.left, m.right} {
		if end := m.tryAlternative(pattern, text, start); end != notAMatch {
			return end
		}
	}

	return notAMatch
}

func (m *eitherMatcher) tryAlternative(pattern Matcher, text string, start int) int {
	end := pattern.matchFrom(text, start)
	if end == notAMatch {
		return notAMatch
	}

	// The alternative matched locally; it still only counts when the
	// continuation consumes everything that remains.
	if end = m.rest.matchFrom(text, end); end == len(text) {
		return end
	}

	return notAMatch
}

func (m *choiceMatcher) matchFrom(text string, start int) int {
	for _, pattern := range m.patterns {
		end := pattern.matchFrom(text, start)
		if end == notAMatch {
			continue
		}

		if end = m.rest.matchFrom(text, end); end == len(text) {
			return end
		}
	}

	return notAMatch
}

func (m *onePlusMatcher) matchFrom(text string, start int) int {
	// Try run lengths of one and up, stopping at the first character that
	// breaks the run.
	for i := start; i < len(text) && text[i] == m.c; i++ {
		if end := m.rest.matchFrom(text, i+1); end == len(text) {
			return end
		}
	}

	return notAMatch
}

func (m *charsetMatcher) matchFrom(text string, start int) int {
	if start >= len(text) {
		return notAMatch
	}

	for i := 0; i < len(m.chars); i++ {
		if text[start] == m.chars[i] {
			if end := m.rest.matchFrom(text, start+1); end == len(text) {
				return end
			}
		}
	}

	return notAMatch
}

func (m *rangeMatcher) matchFrom(text string, start int) int {
	if start >= len(text) {
		return notAMatch
	}

	if text[start] < m.lo || text[start] > m.hi {
		return notAMatch
	}

	return m.rest.matchFrom(text, start+1)
}
