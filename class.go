package globmatch

// matchClass evaluates the character class starting at glob[j] == '['
// against c. It returns whether c is accepted (negation applied) and the
// index of the closing ']', or len(glob) when the class is unterminated.
//
// A leading '^' or '!' negates the class. A '-' that is neither the first
// class character nor followed by ']' (or the end of the pattern) forms an
// inclusive range with its neighbours. A ']' right after '[' (or after the
// negation mark) closes an empty class.
func matchClass(glob string, j int, c rune, fold bool) (bool, int) {
	m := len(glob)
	j++

	negate := false
	if j < m && (glob[j] == '^' || glob[j] == '!') {
		negate = true
		j++
	}

	c = foldRune(c, fold)
	matched := false
	last := rune(-1)

	for j < m && glob[j] != ']' {
		r, w := runeAt(glob, j)
		if last >= 0 && r == '-' && j+w < m && glob[j+w] != ']' {
			hi, hw := runeAt(glob, j+w)
			hi = foldRune(hi, fold)
			if last <= c && c <= hi {
				matched = true
			}
			last = hi
			j += w + hw
			continue
		}
		r = foldRune(r, fold)
		if r == c {
			matched = true
		}
		last = r
		j += w
	}

	return matched != negate, j
}
