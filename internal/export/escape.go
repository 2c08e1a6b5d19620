package export

import "strings"

// escapeCSV wraps the field in quotes only when it contains a comma, a
// double quote, or a line break, doubling any embedded quotes. All other
// fields pass through verbatim.
func escapeCSV(field string) string {
	if !strings.ContainsAny(field, ",\"\n\r") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// xmlEscaper replaces & first so already-replaced entities are never
// escaped twice in a single left-to-right pass.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// xmlUnescaper lists &amp; last so the longer entity names match first.
var xmlUnescaper = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&apos;", "'",
	"&quot;", `"`,
	"&amp;", "&",
)

func unescapeXML(s string) string {
	return xmlUnescaper.Replace(s)
}
