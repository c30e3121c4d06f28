package snapflag

import (
	"unicode"
	"unicode/utf8"
)

// Tokenizer splits argument text into whitespace-delimited tokens.
// It is single pass: once a token is returned it cannot be read again.
// No quoting or escaping is interpreted.
type Tokenizer struct {
	src   string
	pos   int // byte offset of the next unread rune
	count int // tokens produced so far
}

// NewTokenizer returns a tokenizer positioned at the start of src
func NewTokenizer(src string) *Tokenizer {
	return &Tokenizer{src: src}
}

// reset rewinds the tokenizer onto a new source. Used by pooled machines only.
func (t *Tokenizer) reset(src string) {
	t.src = src
	t.pos = 0
	t.count = 0
}

// Next returns the next token, or false when the input is exhausted.
// Returned tokens are substrings of the source text.
func (t *Tokenizer) Next() (string, bool) {
	t.pos = t.skip(t.pos, true)
	if t.pos >= len(t.src) {
		return "", false
	}
	start := t.pos
	t.pos = t.skip(t.pos, false)
	t.count++
	return t.src[start:t.pos], true
}

// Index returns the number of tokens produced so far
func (t *Tokenizer) Index() int {
	return t.count
}

// skip advances from i over runes that are (space=true) or are not
// (space=false) whitespace and returns the new offset.
func (t *Tokenizer) skip(i int, space bool) int {
	for i < len(t.src) {
		c := t.src[i]
		if c < utf8.RuneSelf {
			if isASCIISpace(c) != space {
				return i
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(t.src[i:])
		if unicode.IsSpace(r) != space {
			return i
		}
		i += size
	}
	return i
}

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// Tokens drains a fresh tokenizer over src into a slice
func Tokens(src string) []string {
	var out []string
	t := NewTokenizer(src)
	for {
		tok, ok := t.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}
