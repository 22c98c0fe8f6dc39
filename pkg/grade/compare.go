package grade

import (
	"slices"
	"strings"
)

// unsignedMarker is ',' (0x2C), between '+' (0x2B) and '-' (0x2D).
const unsignedMarker = ','

// Compare orders two letter grades best first and returns -1, 0 or 1.
//
// Letters are compared first, then the sign: "A+" < "A" < "A-" < "B+".
// Strings that are not valid grades ("", "N/A", "b+") sort after every valid
// grade and compare lexicographically among themselves, keeping the order
// total for columns that mix grades with placeholders.
func Compare(a, b string) int {
	ga, errA := Parse(a)
	gb, errB := Parse(b)

	switch {
	case errA == nil && errB == nil:
		return ga.Compare(gb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// CompareDesc is the descending counterpart of Compare: exactly -Compare(a, b).
func CompareDesc(a, b string) int {
	return -Compare(a, b)
}

// Sort orders grades in place, best first. The sort is stable.
func Sort(grades []string) {
	slices.SortStableFunc(grades, Compare)
}

// SortDesc orders grades in place, worst first. The sort is stable.
func SortDesc(grades []string) {
	slices.SortStableFunc(grades, CompareDesc)
}

// Comparator returns Compare or CompareDesc depending on desc.
// Useful when the sort direction comes from a table column header.
func Comparator(desc bool) func(a, b string) int {
	if desc {
		return CompareDesc
	}
	return Compare
}
