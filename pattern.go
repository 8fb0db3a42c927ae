package globmatch

import (
	"strings"
)

// ParseWarning describes an ignore file line that was skipped.
type ParseWarning struct {
	Pattern  string // The line as written, trailing whitespace removed
	Message  string // Human-readable reason
	Line     int    // Line number (1-indexed)
	BasePath string // Directory of the ignore file (empty for root)
}

// rule is one parsed ignore line.
type rule struct {
	pattern  string // line as written, for MatchResult
	glob     string // gitignore glob handed to Options.Gitignore
	basePath string // directory scope (empty = root)
	line     int
	negate   bool // line started with !
	dirOnly  bool // line ended with /
}

// parseLines parses ignore file content into rules plus warnings for the
// lines that could not become a rule.
func parseLines(basePath string, content []byte) ([]rule, []ParseWarning) {
	basePath = normalizePath(basePath)

	var rules []rule
	var warnings []ParseWarning
	for i, line := range splitLines(content) {
		r, w := parseLine(line, i+1)
		if w != nil {
			w.BasePath = basePath
			warnings = append(warnings, *w)
		}
		if r != nil {
			r.basePath = basePath
			rules = append(rules, *r)
		}
	}
	return rules, warnings
}

// parseLine turns one line into a rule. Blank lines and comments yield
// neither a rule nor a warning.
func parseLine(line string, lineNum int) (*rule, *ParseWarning) {
	line = trimTrailingSpace(line)
	if line == "" || line[0] == '#' {
		return nil, nil
	}
	original := line
	warn := func(msg string) *ParseWarning {
		return &ParseWarning{Pattern: original, Message: msg, Line: lineNum}
	}

	// \! must be checked before ! so an escaped bang stays literal
	negate := false
	switch {
	case strings.HasPrefix(line, `\!`):
		line = line[1:]
	case line[0] == '!':
		negate = true
		line = line[1:]
	}
	if strings.HasPrefix(line, `\#`) {
		line = line[1:]
	}

	dirOnly := false
	if strings.HasSuffix(line, "/") && !oddBackslashes(line[:len(line)-1]) {
		dirOnly = true
		line = line[:len(line)-1]
	}

	switch {
	case line == "":
		return nil, warn("pattern is empty after processing")
	case line == "/":
		return nil, warn("pattern is empty after removing leading slash")
	case oddBackslashes(line):
		return nil, warn("trailing backslash is invalid (pattern never matches)")
	}

	return &rule{
		pattern: original,
		glob:    line,
		line:    lineNum,
		negate:  negate,
		dirOnly: dirOnly,
	}, nil
}

// String returns a debug representation of a rule.
func (r *rule) String() string {
	var flags []string
	if r.negate {
		flags = append(flags, "negate")
	}
	if r.dirOnly {
		flags = append(flags, "dirOnly")
	}
	if r.anchored() {
		flags = append(flags, "anchored")
	}

	s := r.pattern
	if len(flags) > 0 {
		s += " [" + strings.Join(flags, ",") + "]"
	}
	if r.basePath != "" {
		s += " @" + r.basePath
	}
	return s
}

// anchored reports whether the rule matches whole paths rather than the
// last path segment.
func (r *rule) anchored() bool {
	return strings.IndexByte(r.glob, '/') >= 0
}
