package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const separator = '-'

// Make converts label into a lowercase, hyphen-delimited slug.
// Known Latin diacritics are transliterated through Table, "&" becomes "and",
// and every other character outside [a-z0-9] is dropped.
// Returns an empty string when nothing in label survives.
func Make(label string, opts ...Option) string {
	o := newOptions(opts)

	if o.foldMarks {
		label = foldMarks(label)
	}

	lowered := strings.ToLower(label)

	var b strings.Builder
	b.Grow(len(lowered))

	for _, r := range lowered {
		switch {
		case isSpace(r):
			r = separator
		case o.asciiOnly:
			if r == '_' {
				r = separator
			}
		default:
			if to, ok := lookup[r]; ok {
				r = to
			}
		}

		switch {
		case r == '&':
			writeSeparator(&b)
			b.WriteString("and")
			writeSeparator(&b)
		case r == separator:
			writeSeparator(&b)
		case isSlugChar(r):
			b.WriteRune(r)
		}
	}

	result := strings.TrimRight(b.String(), string(separator))
	if o.maxLength > 0 {
		result = truncate(result, o.maxLength)
	}
	return result
}

// MakeASCII is the legacy variant without diacritic transliteration:
// accented characters are dropped instead of folded ("Café" -> "caf").
func MakeASCII(label string, opts ...Option) string {
	return Make(label, append(opts, ASCIIOnly())...)
}

// Valid reports whether s is a non-empty slug: lowercase ASCII letters and
// digits in groups joined by single hyphens.
func Valid(s string) bool {
	if s == "" || s[0] == separator || s[len(s)-1] == separator {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := rune(s[i])
		if c == separator {
			if s[i-1] == separator {
				return false
			}
			continue
		}
		if !isSlugChar(c) {
			return false
		}
	}
	return true
}

// writeSeparator appends a hyphen unless the builder is empty or already
// ends with one, which collapses runs and drops leading separators.
func writeSeparator(b *strings.Builder) {
	if b.Len() == 0 {
		return
	}
	if s := b.String(); s[len(s)-1] == separator {
		return
	}
	b.WriteByte(separator)
}

func isSlugChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// isSpace matches the ECMAScript \s class, which differs from unicode.IsSpace
// on U+0085 and U+FEFF.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0x00A0, 0x1680,
		0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

// truncate cuts s to at most n bytes, backing off to the last separator
// so that words are not split when possible.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if s[n] != separator {
		if i := strings.LastIndexByte(s[:n], separator); i > 0 {
			n = i
		}
	}
	return strings.TrimRight(s[:n], string(separator))
}

func foldMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
