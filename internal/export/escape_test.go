package export

import "testing"

func TestEscapeCSV(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain value unchanged", "ok", "ok"},
		{"empty unchanged", "", ""},
		{"comma forces quoting", "a,b", `"a,b"`},
		{"quote forces quoting and doubling", `say "hi"`, `"say ""hi"""`},
		{"newline forces quoting", "line1\nline2", "\"line1\nline2\""},
		{"combined", `He said "hi", ok`, `"He said ""hi"", ok"`},
		{"spaces alone do not quote", "no special chars", "no special chars"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeCSV(tt.input); got != tt.want {
				t.Errorf("escapeCSV(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"ampersand first", "a & b", "a &amp; b"},
		{"angle brackets", "<tag>", "&lt;tag&gt;"},
		{"quotes", `it's "quoted"`, "it&apos;s &quot;quoted&quot;"},
		{"all five", `<a href="x">&'`, "&lt;a href=&quot;x&quot;&gt;&amp;&apos;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeXML(tt.input); got != tt.want {
				t.Errorf("escapeXML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Escaping applied once is stable under an unescape/escape round trip for
// inputs that do not already contain escaped entities.
func TestEscapeXMLRoundTripIdempotent(t *testing.T) {
	inputs := []string{
		"plain text",
		"a & b < c > d",
		`"mixed" & <nested 'things'>`,
		"",
		"unicode café & ñ",
	}

	for _, input := range inputs {
		escaped := escapeXML(input)
		if unescapeXML(escaped) != input {
			t.Errorf("unescape(escape(%q)) = %q", input, unescapeXML(escaped))
		}
		again := escapeXML(unescapeXML(escaped))
		if again != escaped {
			t.Errorf("second escape of %q = %q, want %q", input, again, escaped)
		}
	}
}
