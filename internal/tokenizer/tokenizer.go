// Package tokenizer splits raw text into word and punctuation tokens with
// codepoint offsets. Tokenization depends on the text alone, so it can be
// re-run for every BIO export and always produce the same sequence.
package tokenizer

import "unicode"

// Token is a single token with half-open codepoint offsets [Start, End).
type Token struct {
	Text  string
	Start int
	End   int
}

// Tokenize scans text left to right. A maximal run of word runes (letters,
// digits, apostrophe) becomes one token; any other non-space rune becomes
// its own single-rune token; whitespace produces nothing. Empty or
// all-whitespace input yields no tokens.
func Tokenize(text string) []Token {
	var tokens []Token
	runes := []rune(text)

	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case isWordRune(r):
			start := i
			for i < len(runes) && isWordRune(runes[i]) {
				i++
			}
			tokens = append(tokens, Token{Text: string(runes[start:i]), Start: start, End: i})
		default:
			tokens = append(tokens, Token{Text: string(r), Start: i, End: i + 1})
			i++
		}
	}
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\''
}
