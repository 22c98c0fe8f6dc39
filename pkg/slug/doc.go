// Package slug generates URL-safe slugs from category and committee labels.
//
// The output is byte-compatible with the slug canonicalization used for page
// identifiers on the server side, so slugs produced here can be matched
// against stored pages without re-normalizing.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/adminkit/pkg/slug"
//
//	s := slug.Make("Category 5")
//	// Output: "category-5"
//
//	s = slug.Make("R&D Oversight")
//	// Output: "r-and-d-oversight"
//
//	s = slug.Make("Café Policy")
//	// Output: "cafe-policy"
//
// # Algorithm
//
// Make processes the label in a fixed order:
//
//  1. Lowercase the whole string.
//  2. Turn every whitespace run into a hyphen.
//  3. Transliterate through the [Table] entries (Latin diacritics to ASCII, "·/_,:;" to "-").
//  4. Replace "&" with "-and-".
//  5. Drop every character outside [a-z0-9-].
//  6. Collapse repeated hyphens and trim them from both ends.
//
// The result always matches ^[a-z0-9]+(-[a-z0-9]+)*$ or is empty.
// Make is idempotent: Make(Make(x)) == Make(x).
//
// # Configuration Options
//
// MaxLength limits the slug length, cutting at a word boundary when possible:
//
//	slug.Make("Cut off cleanly", slug.MaxLength(7))
//	// Output: "cut-off"
//
// ASCIIOnly selects the legacy variant that skips transliteration:
//
//	slug.Make("Café Policy", slug.ASCIIOnly())
//	// Output: "caf-policy"
//
// MakeASCII is shorthand for the same call.
//
// FoldMarks strips combining marks first, so diacritics missing from the
// table fold as well. Use it only for slugs that are never compared with
// server-generated identifiers:
//
//	slug.Make("Ẽxtra", slug.FoldMarks())
//	// Output: "extra"
//
// # Unicode Support
//
// Characters the table does not know (Cyrillic, CJK, emoji) are removed, not
// replaced with separators:
//
//	slug.Make("München straße")    // "munchen-strase"
//	slug.Make("Привет world")      // "world"
package slug
