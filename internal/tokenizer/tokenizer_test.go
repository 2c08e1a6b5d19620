package tokenizer

import (
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{"empty", "", nil},
		{"whitespace only", " \t\n  ", nil},
		{
			"words and punctuation",
			"Hi, Bob!",
			[]Token{
				{Text: "Hi", Start: 0, End: 2},
				{Text: ",", Start: 2, End: 3},
				{Text: "Bob", Start: 4, End: 7},
				{Text: "!", Start: 7, End: 8},
			},
		},
		{
			"apostrophe stays in word",
			"don't stop",
			[]Token{
				{Text: "don't", Start: 0, End: 5},
				{Text: "stop", Start: 6, End: 10},
			},
		},
		{
			"digits are word runes",
			"room 42b",
			[]Token{
				{Text: "room", Start: 0, End: 4},
				{Text: "42b", Start: 5, End: 8},
			},
		},
		{
			"consecutive punctuation splits",
			"wait...",
			[]Token{
				{Text: "wait", Start: 0, End: 4},
				{Text: ".", Start: 4, End: 5},
				{Text: ".", Start: 5, End: 6},
				{Text: ".", Start: 6, End: 7},
			},
		},
		{
			"unicode offsets are codepoints",
			"café !",
			[]Token{
				{Text: "café", Start: 0, End: 4},
				{Text: "!", Start: 5, End: 6},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) produced %d tokens, want %d: %v", tt.input, len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// Re-inserting the skipped whitespace by offset must reconstruct the
// original text exactly.
func TestTokenizeReconstruction(t *testing.T) {
	inputs := []string{
		"Hi, Bob!",
		"  leading and trailing  ",
		"one\ttab\nand newline",
		"café résumé — naïve?!",
		"a",
		"",
	}

	for _, input := range inputs {
		runes := []rune(input)
		tokens := Tokenize(input)

		rebuilt := make([]rune, 0, len(runes))
		cursor := 0
		for _, tok := range tokens {
			if tok.Start < cursor {
				t.Fatalf("input %q: token %+v overlaps previous token", input, tok)
			}
			rebuilt = append(rebuilt, runes[cursor:tok.Start]...)
			rebuilt = append(rebuilt, []rune(tok.Text)...)
			cursor = tok.End
		}
		rebuilt = append(rebuilt, runes[cursor:]...)

		if string(rebuilt) != input {
			t.Errorf("reconstruction of %q = %q", input, string(rebuilt))
		}
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	input := "Barack Obama visited Paris."
	first := Tokenize(input)
	second := Tokenize(input)

	if len(first) != len(second) {
		t.Fatalf("token counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("token %d differs across runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func FuzzTokenize(f *testing.F) {
	f.Add("Hello World")
	f.Add("")
	f.Add("  spaces  everywhere  ")
	f.Add("café résumé naïve")
	f.Add("don't... stop?!")
	f.Add("123 456 789")

	f.Fuzz(func(t *testing.T, input string) {
		tokens := Tokenize(input)
		runes := []rune(input)

		prevEnd := 0
		for _, tok := range tokens {
			if tok.Start < prevEnd || tok.End <= tok.Start || tok.End > len(runes) {
				t.Fatalf("bad offsets %+v for input %q", tok, input)
			}
			if string(runes[tok.Start:tok.End]) != tok.Text {
				t.Fatalf("token text %q does not match offsets [%d,%d) in %q", tok.Text, tok.Start, tok.End, input)
			}
			prevEnd = tok.End
		}
	})
}
