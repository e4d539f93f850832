package globpattern

import "unicode/utf8"

// Adapted from the regexp package: https://cs.opensource.google/go/go/+/refs/tags/go1.23.0:src/regexp/regexp.go;l=705-747

// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found at https://go.dev/LICENSE.

// Bitmap used by func specialPattern to check whether a character needs to be escaped.
var specialPatternBytes [16]byte

// specialPattern reports whether byte b carries syntactic meaning in a
// pattern and must be escaped when rendered inside a literal.
func specialPattern(b byte) bool {
	return b < utf8.RuneSelf && specialPatternBytes[b%16]&(1<<(b/16)) != 0
}

func init() {
	for _, b := range []byte(`\*{}[],`) {
		specialPatternBytes[b%16] |= 1 << (b / 16)
	}
}

// escapePatternString returns s with every delimiter character prefixed by a
// backslash, so that tokenizing the result yields s as a single literal run.
func escapePatternString(s string) string {
	// A byte loop is correct because all metacharacters are ASCII.
	var i int
	for i = 0; i < len(s); i++ {
		if specialPattern(s[i]) {
			break
		}
	}
	// No meta characters found, so return original string.
	if i >= len(s) {
		return s
	}

	b := make([]byte, 2*len(s)-i)
	copy(b, s[:i])
	j := i
	for ; i < len(s); i++ {
		if specialPattern(s[i]) {
			b[j] = '\\'
			j++
		}
		b[j] = s[i]
		j++
	}
	return string(b[:j])
}
