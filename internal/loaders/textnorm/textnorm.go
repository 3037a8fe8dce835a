// Package textnorm provides the text sanitization shared by all loaders.
//
// Every loader output passes through Sanitize so the engine only ever sees
// valid UTF-8 with \n line endings and no control characters. Nothing a
// document embeds (macros, scripts, active links) is ever interpreted;
// loaders extract inert text and discard the rest.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sanitize normalises raw text for the engine:
//
//   - invalid UTF-8 sequences are replaced with U+FFFD
//   - \r\n and bare \r become \n
//   - control characters other than newline and tab are stripped
func Sanitize(text string) string {
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)
}

// IsBlank reports whether text contains no printable content at all.
// Loaders treat a fully blank extraction as unrecoverable.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
