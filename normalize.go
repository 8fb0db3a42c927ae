package globmatch

import (
	"bytes"
	"runtime"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// normalizePath cleans a path handed to Matcher.Match or used as a rule base.
//
// On Windows backslashes become '/'. Runs of '/' collapse to one, leading
// "./" pairs and a trailing '/' are dropped. The standalone Wildcard, Glob
// and Gitignore functions never normalize their subject.
func normalizePath(p string) string {
	if runtime.GOOS == "windows" {
		p = strings.ReplaceAll(p, "\\", "/")
	}

	if strings.Contains(p, "//") {
		var b strings.Builder
		b.Grow(len(p))
		for i := 0; i < len(p); i++ {
			if p[i] == '/' && i > 0 && p[i-1] == '/' {
				continue
			}
			b.WriteByte(p[i])
		}
		p = b.String()
	}

	p = p[skipDotSlash(p):]
	return strings.TrimSuffix(p, "/")
}

// skipDotSlash returns the length of the run of "./" pairs that prefixes p.
func skipDotSlash(p string) int {
	i := 0
	for i+1 < len(p) && p[i] == '.' && p[i+1] == '/' {
		i += 2
	}
	return i
}

// skipPathRoot returns the offset of p past any leading "./" pairs and one
// leading '/'. A rooted gitignore pattern is matched from there.
func skipPathRoot(p string) int {
	i := skipDotSlash(p)
	if i < len(p) && p[i] == '/' {
		i++
	}
	return i
}

// splitLines strips any UTF-8 byte order marks and splits content on LF,
// CRLF or a lone CR.
func splitLines(content []byte) []string {
	for bytes.HasPrefix(content, utf8BOM) {
		content = content[len(utf8BOM):]
	}
	if len(content) == 0 {
		return nil
	}

	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	content = bytes.ReplaceAll(content, []byte("\r"), []byte("\n"))
	return strings.Split(string(content), "\n")
}

// trimTrailingSpace drops trailing spaces and tabs from a pattern line.
// A space escaped with an odd run of backslashes survives, minus its escape:
//
//	"foo "    -> "foo"
//	"foo\ "   -> "foo "
//	"foo\\ "  -> "foo\\"
func trimTrailingSpace(line string) string {
	end := len(line)
	for end > 0 && (line[end-1] == ' ' || line[end-1] == '\t') {
		end--
	}
	if end == len(line) {
		return line
	}

	if oddBackslashes(line[:end]) && line[end] == ' ' {
		return line[:end-1] + " "
	}
	return line[:end]
}

// oddBackslashes reports whether s ends with an odd number of backslashes.
func oddBackslashes(s string) bool {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}
