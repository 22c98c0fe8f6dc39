package grade

import "fmt"

// ratingClasses maps committee ratings to the CSS classes used by the public
// templates. F is not split by sign.
var ratingClasses = map[string]string{
	"A+": "a-plus-rating",
	"A":  "a-rating",
	"A-": "a-minus-rating",
	"B+": "b-plus-rating",
	"B":  "b-rating",
	"B-": "b-minus-rating",
	"C+": "c-plus-rating",
	"C":  "c-rating",
	"C-": "c-minus-rating",
	"D+": "d-plus-rating",
	"D":  "d-rating",
	"D-": "d-minus-rating",
	"F+": "f-rating",
	"F":  "f-rating",
	"F-": "f-rating",
}

// CSSClass returns the rating class for g, e.g. "A+" -> "a-plus-rating".
func CSSClass(g string) (string, error) {
	if _, err := Parse(g); err != nil {
		return "", err
	}
	class, ok := ratingClasses[g]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownClass, g)
	}
	return class, nil
}
