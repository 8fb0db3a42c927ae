package globmatch

// Wildcard reports whether text matches wild using DefaultOptions.
// See Options.Wildcard.
func Wildcard(text, wild string) bool {
	return DefaultOptions().Wildcard(text, wild)
}

// Wildcard reports whether text matches the wildcard pattern wild.
//
// A '*' matches any run of characters, '/' included, and '?' matches any
// single character. There are no character classes, escapes or dotfile
// rules; NoCaseGlob still folds literal comparisons.
func (o Options) Wildcard(text, wild string) bool {
	n, m := len(text), len(wild)
	i, j := 0, 0
	star := noBacktrack

	for i < n {
		c, w := runeAt(text, i)
		if j < m && wild[j] == '*' {
			// new star-loop, any earlier one is abandoned
			j++
			star = backtrack{text: i, pattern: j}
			continue
		}
		if j < m {
			r, pw := runeAt(wild, j)
			if r == '?' || equalRune(r, c, o.NoCaseGlob) {
				i += w
				j += pw
				continue
			}
		}
		if !star.set() {
			return false
		}
		// the star swallows one more character
		star.text += runeWidth(text, star.text)
		i, j = star.text, star.pattern
	}

	return trailingStars(wild, j)
}
