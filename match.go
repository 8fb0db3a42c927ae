package globmatch

import (
	"strings"
)

// matchRule reports whether r matches path itself, which must be
// normalized. Directory-only rules match only when isDir is set. Ancestor
// directories are handled by Matcher.MatchWithReason.
func matchRule(r *rule, path string, isDir bool, opts Options) bool {
	if r.dirOnly && !isDir {
		return false
	}
	rel, ok := scopeToBase(path, r.basePath)
	if !ok || rel == "" {
		return false
	}
	return opts.Gitignore(rel, r.glob)
}

// scopeToBase makes path relative to basePath. It reports false when path
// lies outside basePath.
func scopeToBase(path, basePath string) (string, bool) {
	if basePath == "" {
		return path, true
	}
	if path == basePath {
		return "", true
	}
	if rel, ok := strings.CutPrefix(path, basePath+"/"); ok {
		return rel, true
	}
	return "", false
}
