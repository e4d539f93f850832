package globpattern

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/utf8string"
)

// InvalidCharacterError is returned by Parse when the pattern contains a
// character that is neither alphanumeric, a recognized delimiter, nor the
// target of an escape.
var InvalidCharacterError = errors.New("invalid character in pattern")

type tokenizer struct {
	input        *utf8string.String
	tokenList    []token
	literal      strings.Builder
	literalStart int
	index        int
	nextIndex    int
	codePoint    rune
}

func tokenize(input string) ([]token, error) {
	t := tokenizer{
		input:     utf8string.NewString(input),
		tokenList: make([]token, 0, len(input)),
	}

	length := t.input.RuneCount()

	for t.index < length {
		t.seekAndGetNextCodePoint(t.index)

		switch {
		case t.codePoint == '\\':
			if t.index == length-1 {
				return nil, fmt.Errorf("%w: trailing escape at index %d", InvalidCharacterError, t.index)
			}

			// The escaped code point goes into the literal run verbatim,
			// whatever it is.
			escapeStart := t.index
			t.getNextCodePoint()
			t.accumulate(t.codePoint, escapeStart)

		case t.codePoint == '*':
			t.addToken(tokenAny)

		case t.codePoint == '{':
			t.addToken(tokenEitherStart)

		case t.codePoint == '}':
			t.addToken(tokenEitherEnd)

		case t.codePoint == '[':
			t.addToken(tokenCharsetStart)

		case t.codePoint == ']':
			t.addToken(tokenCharsetEnd)

		case t.codePoint == ',':
			// Separator: flushes the pending literal but is not a token
			// itself.
			t.flushLiteral()

		case isAlphanumeric(t.codePoint):
			t.accumulate(t.codePoint, t.index)

		default:
			return nil, fmt.Errorf("%w: %q at index %d", InvalidCharacterError, t.codePoint, t.index)
		}

		t.index = t.nextIndex
	}

	t.flushLiteral()

	return t.tokenList, nil
}

func (t *tokenizer) getNextCodePoint() {
	t.codePoint = t.input.At(t.nextIndex)
	t.nextIndex++
}

func (t *tokenizer) seekAndGetNextCodePoint(index int) {
	t.nextIndex = index
	t.getNextCodePoint()
}

// accumulate appends a code point to the pending literal run. start is the
// index of the code point in the pattern, or of its backslash when escaped.
func (t *tokenizer) accumulate(codePoint rune, start int) {
	if t.literal.Len() == 0 {
		t.literalStart = start
	}

	t.literal.WriteRune(codePoint)
}

// flushLiteral emits the pending literal run, if any, as a single token.
func (t *tokenizer) flushLiteral() {
	if t.literal.Len() == 0 {
		return
	}

	t.tokenList = append(t.tokenList, token{
		tType: tokenLiteral,
		index: t.literalStart,
		value: t.literal.String(),
	})
	t.literal.Reset()
}

// addToken flushes the pending literal run, then emits a delimiter token for
// the current code point.
func (t *tokenizer) addToken(tType tokenType) {
	t.flushLiteral()

	t.tokenList = append(t.tokenList, token{
		tType: tType,
		index: t.index,
		value: string(t.codePoint),
	})
}

func isAlphanumeric(codePoint rune) bool {
	return (codePoint >= 'A' && codePoint <= 'Z') ||
		(codePoint >= 'a' && codePoint <= 'z') ||
		(codePoint >= '0' && codePoint <= '9')
}
