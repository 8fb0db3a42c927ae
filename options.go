package globmatch

// Options configures the wildcard, glob and gitignore matchers.
//
// Options is a plain value passed to every match call, so concurrent matches
// with different settings never interfere. The zero value disables DotGlob;
// use DefaultOptions for the documented defaults.
type Options struct {
	// DotGlob lets *, ? and [...] match a '.' at the start of the subject
	// or right after a '/'. When false such dotfiles are hidden from the
	// wildcards and only match a literal '.' in the pattern.
	// Default: true.
	DotGlob bool

	// NoCaseGlob folds case before comparing literals and class members.
	// Default: false (case-sensitive).
	NoCaseGlob bool
}

// DefaultOptions returns the default matching options: dotfiles are not
// specially hidden and matching is case-sensitive.
func DefaultOptions() Options {
	return Options{
		DotGlob:    true,
		NoCaseGlob: false,
	}
}
