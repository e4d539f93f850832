package globpattern

// token is one lexical element of a pattern string.
type token struct {
	tType tokenType
	// index is the rune index in the pattern where the token started.
	index int
	value string
}

type tokenType uint8

const (
	// tokenLiteral represents a run of one or more characters to be matched
	// verbatim. Escaped characters accumulate into the same run. A literal
	// token never carries an empty value.
	tokenLiteral tokenType = iota
	// tokenAny represents a U+002A (*) code point, matching any span of
	// characters including the empty span.
	tokenAny
	// tokenEitherStart represents a U+007B ({) code point.
	tokenEitherStart
	// tokenEitherEnd represents a U+007D (}) code point.
	tokenEitherEnd
	// tokenCharsetStart represents a U+005B ([) code point.
	tokenCharsetStart
	// tokenCharsetEnd represents a U+005D (]) code point.
	tokenCharsetEnd
)

func (t tokenType) String() string {
	switch t {
	case tokenLiteral:
		return "literal"
	case tokenAny:
		return "any"
	case tokenEitherStart:
		return "either-start"
	case tokenEitherEnd:
		return "either-end"
	case tokenCharsetStart:
		return "charset-start"
	case tokenCharsetEnd:
		return "charset-end"
	}

	return "unknown"
}
