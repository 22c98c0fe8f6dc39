// Package grade orders and classifies committee letter grades.
//
// Grades are one or more upper-case letters with an optional "+" or "-":
// "A+", "B", "C-". Ascending order is best first:
//
//	grades := []string{"B", "A-", "B+", "A", "B-"}
//	grade.Sort(grades)
//	// grades: ["A", "A-", "B+", "B", "B-"]
//
// Compare and CompareDesc plug directly into slices.SortFunc or a table
// column sorter. CompareDesc is always the exact negation of Compare.
//
// Values that are not grades ("", "N/A", "b+") never cause an error in
// Compare; they sort after all grades and lexicographically among
// themselves. Use Parse or Valid when malformed input must be rejected.
//
// CSSClass maps a grade to the rating class used by the templates:
//
//	class, err := grade.CSSClass("B+")
//	// class: "b-plus-rating"
//
// D grades keep their own classes ("d-plus-rating"), matching the committee
// rating model rather than the older template color table.
//
// ProgressClass and CongressLabel cover the rest of the report page:
// progress bar colors and congress headings ("116th Congress").
package grade
