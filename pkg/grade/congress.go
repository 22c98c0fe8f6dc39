package grade

import "github.com/dustin/go-humanize"

// CongressLabel formats a congress number for report headings: 116 -> "116th Congress".
func CongressLabel(n int) string {
	return humanize.Ordinal(n) + " Congress"
}
