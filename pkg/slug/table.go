package slug

// Replacement maps a single lower-case source rune to its ASCII substitute.
type Replacement struct {
	From rune
	To   rune
}

// table is the ordered substitution table applied by Make.
// Keys are lower-case: Make lower-cases its input before the lookup, so
// upper-case diacritics ("É", "Ü") fold through the same entries.
//
// The table must stay byte-compatible with the server-side canonicalization
// that owns page identifiers. Do not add entries without migrating slugs.
var table = []Replacement{
	{'à', 'a'}, {'á', 'a'}, {'â', 'a'}, {'ä', 'a'}, {'æ', 'a'},
	{'ã', 'a'}, {'å', 'a'}, {'ā', 'a'}, {'ă', 'a'}, {'ą', 'a'},
	{'ç', 'c'}, {'ć', 'c'}, {'č', 'c'},
	{'đ', 'd'}, {'ď', 'd'},
	{'è', 'e'}, {'é', 'e'}, {'ê', 'e'}, {'ë', 'e'},
	{'ē', 'e'}, {'ė', 'e'}, {'ę', 'e'}, {'ě', 'e'},
	{'ğ', 'g'}, {'ǵ', 'g'},
	{'ḧ', 'h'},
	{'î', 'i'}, {'ï', 'i'}, {'í', 'i'}, {'ī', 'i'}, {'į', 'i'}, {'ì', 'i'},
	{'ł', 'l'},
	{'ḿ', 'm'},
	{'ñ', 'n'}, {'ń', 'n'}, {'ǹ', 'n'}, {'ň', 'n'},
	{'ô', 'o'}, {'ö', 'o'}, {'ò', 'o'}, {'ó', 'o'}, {'œ', 'o'},
	{'ø', 'o'}, {'ō', 'o'}, {'õ', 'o'}, {'ő', 'o'},
	{'ṕ', 'p'},
	{'ŕ', 'r'}, {'ř', 'r'},
	{'ß', 's'}, {'ś', 's'}, {'š', 's'}, {'ş', 's'}, {'ș', 's'},
	{'ť', 't'}, {'ț', 't'},
	{'û', 'u'}, {'ü', 'u'}, {'ù', 'u'}, {'ú', 'u'}, {'ū', 'u'},
	{'ǘ', 'u'}, {'ů', 'u'}, {'ű', 'u'}, {'ų', 'u'},
	{'ẃ', 'w'},
	{'ẍ', 'x'},
	{'ÿ', 'y'}, {'ý', 'y'},
	{'ž', 'z'}, {'ź', 'z'}, {'ż', 'z'},
	{'·', '-'}, {'/', '-'}, {'_', '-'}, {',', '-'}, {':', '-'}, {';', '-'},
}

// lookup is built once from table; the first entry for a rune wins.
var lookup = func() map[rune]rune {
	m := make(map[rune]rune, len(table))
	for _, r := range table {
		if _, ok := m[r.From]; !ok {
			m[r.From] = r.To
		}
	}
	return m
}()

// Table returns a copy of the ordered substitution table Make applies.
// Changing the copy has no effect on Make or Transliterate.
func Table() []Replacement {
	out := make([]Replacement, len(table))
	copy(out, table)
	return out
}

// Transliterate applies Table to s rune by rune, leaving unknown runes untouched.
// It does not change case: upper-case diacritics pass through unchanged.
func Transliterate(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if to, ok := lookup[r]; ok {
			r = to
		}
		out = append(out, r)
	}
	return string(out)
}
