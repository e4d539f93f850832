package globpattern

import (
	"errors"
	"fmt"
)

// MalformedPatternError is returned by Parse when the token stream is not a
// valid pattern: a fixed-arity construct is not followed by the exact token
// shape it requires, or the pattern ends mid-construct.
var MalformedPatternError = errors.New("malformed pattern")

// Parse compiles a pattern string into a matcher tree. The resulting tree is
// immutable and may be reused across any number of Match calls.
//
// The grammar reaches only a subset of the node kinds: literal runs, "*",
// "{a,b}" with exactly two literal alternatives, and "[abc]" with exactly one
// literal operand. OnePlus, Range and Choice are available through their
// constructors only.
func Parse(pattern string) (Matcher, error) {
	tokenList, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}

	p := patternParser{tokenList: tokenList}

	return p.parseFrom(0)
}

type patternParser struct {
	tokenList []token
}

// parseFrom consumes one construct at index and wraps it around the matcher
// obtained by parsing everything after it. Building the remainder first is
// what turns token order into a continuation chain.
func (p *patternParser) parseFrom(index int) (Matcher, error) {
	if index >= len(p.tokenList) {
		return Null(), nil
	}

	tok := p.tokenList[index]

	switch tok.tType {
	case tokenLiteral:
		rest, err := p.parseFrom(index + 1)
		if err != nil {
			return nil, err
		}

		return Literal(tok.value, rest), nil

	case tokenAny:
		rest, err := p.parseFrom(index + 1)
		if err != nil {
			return nil, err
		}

		return Any(rest), nil

	case tokenEitherStart:
		left, err := p.expectToken(index+1, tokenLiteral)
		if err != nil {
			return nil, err
		}

		right, err := p.expectToken(index+2, tokenLiteral)
		if err != nil {
			return nil, err
		}

		if _, err := p.expectToken(index+3, tokenEitherEnd); err != nil {
			return nil, err
		}

		rest, err := p.parseFrom(index + 4)
		if err != nil {
			return nil, err
		}

		return Either(Literal(left.value, nil), Literal(right.value, nil), rest), nil

	case tokenCharsetStart:
		chars, err := p.expectToken(index+1, tokenLiteral)
		if err != nil {
			return nil, err
		}

		if _, err := p.expectToken(index+2, tokenCharsetEnd); err != nil {
			return nil, err
		}

		rest, err := p.parseFrom(index + 3)
		if err != nil {
			return nil, err
		}

		return Charset(chars.value, rest), nil
	}

	// tokenEitherEnd and tokenCharsetEnd cannot lead a construct.
	return nil, fmt.Errorf("%w: unexpected %s token at index %d", MalformedPatternError, tok.tType, tok.index)
}

// expectToken requires the token at index to be of the given type. It is how
// fixed-arity constructs validate their shape.
func (p *patternParser) expectToken(index int, tType tokenType) (token, error) {
	if index >= len(p.tokenList) {
		return token{}, fmt.Errorf("%w: pattern ends while a %s token is required", MalformedPatternError, tType)
	}

	tok := p.tokenList[index]
	if tok.tType != tType {
		return token{}, fmt.Errorf("%w: required a %s token, found %s at index %d", MalformedPatternError, tType, tok.tType, tok.index)
	}

	return tok, nil
}
