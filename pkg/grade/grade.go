package grade

import (
	"fmt"
	"strings"
)

// Sign is the optional modifier that follows the grade letters.
type Sign byte

const (
	NoSign Sign = 0
	Plus   Sign = '+'
	Minus  Sign = '-'
)

// Grade is a parsed letter grade: one or more upper-case ASCII letters and an optional sign.
type Grade struct {
	Letters string
	Sign    Sign
}

// Parse splits s into letters and sign.
// Returns ErrInvalidGrade for anything other than [A-Z]+[+-]?.
func Parse(s string) (Grade, error) {
	letters := s
	sign := NoSign
	if n := len(s); n > 0 && (s[n-1] == byte(Plus) || s[n-1] == byte(Minus)) {
		letters = s[:n-1]
		sign = Sign(s[n-1])
	}

	if letters == "" {
		return Grade{}, fmt.Errorf("%w: %q", ErrInvalidGrade, s)
	}
	for i := 0; i < len(letters); i++ {
		if letters[i] < 'A' || letters[i] > 'Z' {
			return Grade{}, fmt.Errorf("%w: %q", ErrInvalidGrade, s)
		}
	}

	return Grade{Letters: letters, Sign: sign}, nil
}

// MustParse is like Parse but panics on malformed input.
// Intended for constants and tests.
func MustParse(s string) Grade {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

// Valid reports whether s is a well-formed letter grade.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// String returns the grade in its canonical text form, e.g. "B+".
func (g Grade) String() string {
	if g.Sign == NoSign {
		return g.Letters
	}
	return g.Letters + string(rune(g.Sign))
}

// Compare orders g against o the same way Compare orders their string forms.
func (g Grade) Compare(o Grade) int {
	return strings.Compare(g.sortKey(), o.sortKey())
}

// sortKey appends unsignedMarker to grades without a sign.
// The marker sits between '+' and '-' in byte order, so plain string
// comparison yields "B+" < "B" < "B-".
func (g Grade) sortKey() string {
	if g.Sign == NoSign {
		return g.Letters + string(unsignedMarker)
	}
	return g.Letters + string(rune(g.Sign))
}
