package globmatch

import (
	"unicode"
	"unicode/utf8"
)

// Glob reports whether text matches glob using DefaultOptions.
// See Options.Glob.
func Glob(text, glob string) bool {
	return DefaultOptions().Glob(text, glob)
}

// Glob reports whether text matches the glob pattern.
//
// Supported syntax:
//
//   - '*' matches any run of characters except '/'
//   - '?' matches any single character except '/'
//   - "[...]" matches one character of a class, "[^...]" or "[!...]" negates
//   - '\' makes the next pattern character literal
//
// With DotGlob disabled, '*', '?' and classes do not match a '.' at the start
// of text or right after a '/'.
func (o Options) Glob(text, glob string) bool {
	return o.globMatch(text, glob, 0, 0, false)
}

// backtrack is a saved (text, pattern) cursor pair for a pending wildcard.
type backtrack struct {
	text    int
	pattern int
}

var noBacktrack = backtrack{text: -1, pattern: -1}

func (b backtrack) set() bool {
	return b.text >= 0
}

// globMatch runs the backtracking loop from cursors i (text) and j (glob).
// When recursive is true a "**/" opens a second, broader backtrack scope
// that resumes the rest of the pattern one character further on each retry,
// crossing '/' freely.
func (o Options) globMatch(text, glob string, i, j int, recursive bool) bool {
	n, m := len(text), len(glob)
	star := noBacktrack  // last '*', never extended across '/'
	dstar := noBacktrack // last "**/", may cross '/'
	nodot := !o.DotGlob

	for i < n {
		c, w := runeAt(text, i)
		if j < m {
			switch glob[j] {
			case '*':
				if nodot && c == '.' {
					break
				}
				if recursive && j+1 < m && glob[j+1] == '*' {
					rest := j + 2
					// trailing ** matches everything, '/' included
					if rest >= m {
						return true
					}
					if glob[rest] != '/' {
						return false
					}
					// new **-loop, discard the *-loop
					star = noBacktrack
					dstar = backtrack{text: i, pattern: rest + 1}
					j = rest + 1
					continue
				}
				j++
				star = backtrack{text: i, pattern: j}
				continue

			case '?':
				if (nodot && c == '.') || c == '/' {
					break
				}
				i += w
				j++
				nodot = false
				continue

			case '[':
				if (nodot && c == '.') || c == '/' {
					break
				}
				ok, end := matchClass(glob, j, c, o.NoCaseGlob)
				if !ok {
					break
				}
				i += w
				j = end
				if j < m {
					j++
				}
				nodot = false
				continue

			default:
				p := j
				if glob[p] == '\\' && p+1 < m {
					p++
				}
				r, pw := runeAt(glob, p)
				if !equalRune(r, c, o.NoCaseGlob) {
					break
				}
				nodot = !o.DotGlob && r == '/'
				i += w
				j = p + pw
				continue
			}
		}

		if star.set() && text[star.text] != '/' {
			star.text += runeWidth(text, star.text)
			i, j = star.text, star.pattern
			nodot = false
			continue
		}
		if dstar.set() {
			dstar.text += runeWidth(text, dstar.text)
			i, j = dstar.text, dstar.pattern
			star = noBacktrack
			continue
		}
		return false
	}

	return trailingStars(glob, j)
}

// trailingStars reports whether only '*' characters remain in pattern from j.
func trailingStars(pattern string, j int) bool {
	for j < len(pattern) && pattern[j] == '*' {
		j++
	}
	return j >= len(pattern)
}

// runeAt decodes the character at byte offset i of s.
func runeAt(s string, i int) (rune, int) {
	if c := s[i]; c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRuneInString(s[i:])
}

func runeWidth(s string, i int) int {
	_, w := runeAt(s, i)
	return w
}

func foldRune(r rune, fold bool) rune {
	if fold {
		return unicode.ToLower(r)
	}
	return r
}

func equalRune(a, b rune, fold bool) bool {
	return a == b || (fold && unicode.ToLower(a) == unicode.ToLower(b))
}
