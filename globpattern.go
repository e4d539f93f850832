// Package globpattern implements a small glob-style pattern language.
//
// A pattern is built from alphanumeric literal runs, "*" (any span of
// characters, including the empty one), "{a,b}" (one of exactly two literal
// alternatives), "[abc]" (exactly one character from a set), and "\x" escapes
// that strip a delimiter of its meaning. A pattern matches a subject only
// when it accounts for every character of it; matching a prefix or a
// substring does not count.
//
// Patterns compile to trees of Matcher nodes, which can also be assembled
// directly through the constructors in this package. Direct construction
// reaches node kinds the textual grammar cannot express: OnePlus, Range, and
// the multi-way Choice.
package globpattern

// MatchString compiles pattern and reports whether it consumes text in its
// entirety. The returned error is non-nil only for pattern compilation
// failures (InvalidCharacterError, MalformedPatternError); a subject the pattern
// does not accept is an ordinary false, not an error.
//
// When the same pattern is matched against many subjects, Parse it once and
// reuse the tree instead.
func MatchString(pattern, text string) (bool, error) {
	m, err := Parse(pattern)
	if err != nil {
		return false, err
	}

	return Match(m, text), nil
}
