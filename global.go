package globmatch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"strings"
)

// AddGlobalPatterns adds the rules of the user's global excludes file at
// root scope. The file is located, in order, by:
//
//  1. git config --global core.excludesFile
//  2. $XDG_CONFIG_HOME/git/ignore
//  3. ~/.config/git/ignore
//
// A missing file is not an error.
func (m *Matcher) AddGlobalPatterns() error {
	path, err := globalExcludesPath()
	if err != nil {
		return fmt.Errorf("resolving global excludes file: %w", err)
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading global excludes file %s: %w", path, err)
	}

	m.AddPatterns("", content)
	return nil
}

func globalExcludesPath() (string, error) {
	if p := gitExcludesFile(); p != "" {
		return expandTilde(p)
	}
	return xdgExcludesPath()
}

// gitExcludesFile returns core.excludesFile from the global git config, or
// "" when git is missing or the key is unset.
func gitExcludesFile() string {
	out, err := exec.Command("git", "config", "--global", "core.excludesFile").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

func xdgExcludesPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "git", "ignore"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(home, ".config", "git", "ignore"), nil
}

// expandTilde expands a leading ~ or ~user.
func expandTilde(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	name, rest := path[1:], ""
	if i := strings.IndexByte(name, '/'); i >= 0 {
		name, rest = name[:i], name[i:]
	}

	if name == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding ~: %w", err)
		}
		return home + rest, nil
	}

	u, err := user.Lookup(name)
	if err != nil {
		return "", fmt.Errorf("expanding ~%s: %w", name, err)
	}
	return u.HomeDir + rest, nil
}
