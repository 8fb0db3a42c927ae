// Package globmatch matches strings and paths against wildcard, glob and
// gitignore-style glob patterns.
//
// The three matchers are plain functions. They scan pattern and subject once
// with greedy-then-backtrack wildcards, keep at most two saved cursor pairs,
// allocate nothing and never fail: every input yields a bool.
//
// # Matchers
//
//	globmatch.Wildcard("src/main.go", "*.go")       // true, * crosses '/'
//	globmatch.Glob("src/main.go", "*.go")           // false, * stops at '/'
//	globmatch.Glob("src/main.go", "src/[a-m]*.go")  // true
//	globmatch.Gitignore("src/main.go", "*.go")      // true, basename match
//	globmatch.Gitignore("a/b/c/d.go", "a/**/*.go")  // true
//
// Wildcard knows '*' and '?'. Glob adds character classes ("[a-z]",
// "[!0-9]", "[^abc]"), backslash escapes and keeps '*', '?' and classes
// from matching '/'. Gitignore adds "**" and anchoring:
//
//   - "**" at the end matches everything left
//   - "**/" matches zero or more directories, retrying the rest of the
//     pattern at every later character
//   - a pattern without '/' is matched against the last path segment only
//   - a pattern starting with '/' is matched against the whole path, after
//     dropping leading "./" pairs and one leading '/' from it
//   - any other pattern is matched against the whole path
//
// # Options
//
// The package-level functions use DefaultOptions. Pass an Options value to
// change dotfile or case handling for a single call:
//
//	opts := globmatch.Options{DotGlob: false, NoCaseGlob: true}
//	opts.Glob(".profile", "*")   // false, dotfile hidden from *
//	opts.Glob("README.MD", "*.md") // true
//
// Options are values, so concurrent calls with different settings are safe.
//
// # Ignore files
//
// Matcher applies whole ignore files with gitignore line syntax (comments,
// "!" negation, trailing "/" for directories) on top of Gitignore:
//
//	m := globmatch.New()
//	m.AddPatterns("", []byte("*.log\nbuild/\n!keep.log\n"))
//	m.Match("build/out.bin", false) // true
//	m.Match("keep.log", false)      // false
//
// # Edge cases
//
// An unterminated class such as "[abc" swallows the rest of the pattern and
// is decided on the characters it contains. A trailing '\' matches a
// literal backslash. In Gitignore, "**" followed by anything but '/' never
// matches.
package globmatch
