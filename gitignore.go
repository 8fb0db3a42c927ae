package globmatch

import "strings"

// Gitignore reports whether text matches glob using DefaultOptions.
// See Options.Gitignore.
func Gitignore(text, glob string) bool {
	return DefaultOptions().Gitignore(text, glob)
}

// Gitignore reports whether text matches the gitignore-style glob.
//
// The syntax is that of Glob plus "**":
//
//   - a trailing "**" matches everything that remains, '/' included
//   - "**/" matches zero or more path segments; on a mismatch the rest of
//     the pattern is retried one character further on, so "a/**/c" also
//     matches "a/xc"
//   - "**" followed by anything other than '/' never matches
//
// Anchoring depends on where the pattern has slashes. A pattern starting
// with '/' matches the whole path, ignoring any leading "./" pairs and one
// leading '/' of text. A pattern with no '/' matches only the last segment
// of text. Any other pattern matches the whole path from its first byte.
func (o Options) Gitignore(text, glob string) bool {
	i, j := 0, 0
	if len(glob) > 1 && glob[0] == '/' {
		i = skipPathRoot(text)
		j = 1
	} else if strings.IndexByte(glob, '/') < 0 {
		i = strings.LastIndexByte(text, '/') + 1
	}
	return o.globMatch(text, glob, i, j, true)
}
