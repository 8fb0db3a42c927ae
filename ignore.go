package globmatch

import (
	"sync"
)

// MatchResult explains a Matcher decision.
type MatchResult struct {
	// Rule is the line of the last matching rule (empty if Matched == false).
	Rule string

	// BasePath is the directory of the ignore file holding Rule.
	// Empty string means the root.
	BasePath string

	// Line is the 1-indexed line of Rule, zero if Matched == false.
	Line int

	// Ignored is the final decision, negation applied.
	Ignored bool

	// Matched reports whether any rule matched the path.
	Matched bool

	// Negated reports whether the deciding rule started with '!'.
	Negated bool
}

// WarningHandler is called for each parse warning if set.
type WarningHandler func(basePath string, warning ParseWarning)

// MatcherOptions configures Matcher behavior.
type MatcherOptions struct {
	// Options are passed to the gitignore glob matcher for every rule.
	// Note that a zero Options hides dotfiles from wildcards; start from
	// DefaultOptions() to keep the defaults.
	Options Options
}

// Matcher is an ordered list of gitignore rules loaded from one or more
// ignore files. Each rule is a Gitignore glob; the last rule that matches a
// path decides whether it is ignored.
//
// Matcher is safe for concurrent use. Rules added while Match calls are in
// flight become visible to later calls.
type Matcher struct {
	mu       sync.RWMutex
	rules    []rule
	warnings []ParseWarning
	handler  WarningHandler
	opts     MatcherOptions
}

// New creates an empty Matcher using DefaultOptions.
func New() *Matcher {
	return NewWithOptions(MatcherOptions{Options: DefaultOptions()})
}

// NewWithOptions creates an empty Matcher with custom options.
func NewWithOptions(opts MatcherOptions) *Matcher {
	return &Matcher{opts: opts}
}

// SetWarningHandler routes parse warnings from later AddPatterns calls to fn
// instead of collecting them.
func (m *Matcher) SetWarningHandler(fn WarningHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handler = fn
}

// AddPatterns parses ignore file content and appends its rules.
// basePath is the directory holding the file, relative to the root
// (empty string for the root itself).
//
// Content may carry a UTF-8 BOM and CRLF or CR line endings. Warnings are
// returned and collected unless a WarningHandler is set.
func (m *Matcher) AddPatterns(basePath string, content []byte) []ParseWarning {
	if content == nil {
		return nil
	}

	newRules, warnings := parseLines(basePath, content)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.rules = append(m.rules, newRules...)

	if m.handler != nil {
		for _, w := range warnings {
			m.handler(w.BasePath, w)
		}
		return nil
	}

	m.warnings = append(m.warnings, warnings...)
	return warnings
}

// Warnings returns a copy of the collected parse warnings.
func (m *Matcher) Warnings() []ParseWarning {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.warnings) == 0 {
		return nil
	}
	result := make([]ParseWarning, len(m.warnings))
	copy(result, m.warnings)
	return result
}

// Match reports whether path is ignored.
// path is relative to the root; isDir tells whether it names a directory.
func (m *Matcher) Match(path string, isDir bool) bool {
	return m.MatchWithReason(path, isDir).Ignored
}

// MatchWithReason is like Match but reports which rule decided.
//
//   - Matched == false: no rule matched, path is not ignored
//   - Matched == true, Ignored == true: path is ignored by Rule
//   - Matched == true, Ignored == false: path was re-included by a negated Rule
//
// Ancestor directories are decided first, outermost first. Once one of them
// is ignored, its rule decides for everything below it and no negation can
// re-include the path, as in git.
func (m *Matcher) MatchWithReason(path string, isDir bool) MatchResult {
	path = normalizePath(path)
	if path == "" {
		return MatchResult{}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for k := 1; k < len(path); k++ {
		if path[k] != '/' {
			continue
		}
		if result := m.decide(path[:k], true); result.Ignored {
			return result
		}
	}
	return m.decide(path, isDir)
}

// decide applies the rules to path alone, last match wins.
// The caller holds m.mu.
func (m *Matcher) decide(path string, isDir bool) MatchResult {
	var result MatchResult
	for i := range m.rules {
		r := &m.rules[i]
		if !matchRule(r, path, isDir, m.opts.Options) {
			continue
		}
		result = MatchResult{
			Rule:     r.pattern,
			BasePath: r.basePath,
			Line:     r.line,
			Ignored:  !r.negate,
			Matched:  true,
			Negated:  r.negate,
		}
	}
	return result
}

// RuleCount returns the number of rules loaded.
func (m *Matcher) RuleCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rules)
}
