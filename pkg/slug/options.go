package slug

// Option configures Make.
type Option func(*options)

type options struct {
	maxLength int
	asciiOnly bool
	foldMarks bool
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// MaxLength caps the slug at n bytes, cutting at the last hyphen inside the
// limit when there is one. Zero or negative means no limit.
func MaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

// ASCIIOnly skips diacritic transliteration. Underscores still act as separators.
func ASCIIOnly() Option {
	return func(o *options) {
		o.asciiOnly = true
	}
}

// FoldMarks strips Unicode combining marks before slugifying, so diacritics
// missing from Table ("ẽ", "ǎ") fold to their base letter as well.
// Output then no longer matches the server-side canonical slug for such input.
func FoldMarks() Option {
	return func(o *options) {
		o.foldMarks = true
	}
}
