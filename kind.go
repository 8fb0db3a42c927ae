package globmatch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for an unrecognized matcher name.
var ErrUnknownKind = errors.New("unknown matcher kind")

// Kind selects one of the three matchers.
type Kind int

const (
	KindWildcard Kind = iota
	KindGlob
	KindGitignore
)

var kindNames = [...]string{
	KindWildcard:  "wildcard",
	KindGlob:      "glob",
	KindGitignore: "gitignore",
}

// Kinds returns every matcher kind, simplest first.
func Kinds() []Kind {
	return []Kind{KindWildcard, KindGlob, KindGitignore}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind named s, ignoring case.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Match runs the matcher selected by k. An out-of-range Kind never matches.
func (o Options) Match(k Kind, text, pattern string) bool {
	switch k {
	case KindWildcard:
		return o.Wildcard(text, pattern)
	case KindGlob:
		return o.Glob(text, pattern)
	case KindGitignore:
		return o.Gitignore(text, pattern)
	default:
		return false
	}
}
