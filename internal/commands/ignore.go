package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	globmatch "github.com/Sriram-PR/go-globmatch"
	"github.com/Sriram-PR/go-globmatch/internal/ui"
)

const defaultIgnoreFile = ".gitignore"

type ignoreFlags struct {
	root   string
	files  []string
	global bool
	dir    bool
}

func newIgnoreCmd(c *cli) *cobra.Command {
	f := &ignoreFlags{}

	cmd := &cobra.Command{
		Use:   "ignore [flags] <path>...",
		Short: "Check paths against gitignore files",
		Long: `Load one or more gitignore files and report, for each path, whether it
is ignored and which rule decided.

A file below --root applies to its own directory, like a nested .gitignore.
Without --file and --global, <root>/.gitignore is used when it exists.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, skipped, err := loadMatcher(c, f)
			if err != nil {
				return err
			}
			if skipped > 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), ui.FormatWarning(pluralize(skipped, "pattern")+" skipped"))
			}
			return printDecisions(cmd.OutOrStdout(), m, args, f.dir)
		},
	}

	cmd.Flags().StringVar(&f.root, "root", ".", "repository root the paths are relative to")
	cmd.Flags().StringArrayVarP(&f.files, "file", "f", nil, "gitignore file to load (repeatable)")
	cmd.Flags().BoolVar(&f.global, "global", false, "also load the user's global excludes file")
	cmd.Flags().BoolVarP(&f.dir, "dir", "d", false, "treat the paths as directories")
	return cmd
}

// loadMatcher builds the rule set and reports how many lines were skipped.
func loadMatcher(c *cli, f *ignoreFlags) (*globmatch.Matcher, int, error) {
	m := globmatch.NewWithOptions(globmatch.MatcherOptions{Options: c.options()})
	skipped := 0
	m.SetWarningHandler(func(basePath string, w globmatch.ParseWarning) {
		skipped++
		c.log.Warn("skipping pattern", "base", basePath, "line", w.Line, "pattern", w.Pattern, "reason", w.Message)
	})

	if f.global {
		if err := m.AddGlobalPatterns(); err != nil {
			return nil, 0, err
		}
	}

	files := f.files
	optional := false
	if len(files) == 0 && !f.global {
		files = []string{filepath.Join(f.root, defaultIgnoreFile)}
		optional = true
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if optional && errors.Is(err, os.ErrNotExist) {
			c.log.Debug("no ignore file", "path", file)
			continue
		}
		if err != nil {
			return nil, 0, fmt.Errorf("reading ignore file: %w", err)
		}

		base, err := basePathOf(f.root, file)
		if err != nil {
			return nil, 0, err
		}
		c.log.Debug("loading ignore file", "path", file, "base", base)
		m.AddPatterns(base, content)
	}

	c.log.Debug("rules loaded", "count", m.RuleCount())
	return m, skipped, nil
}

// basePathOf returns the directory of file relative to root in slash form,
// "" for the root itself.
func basePathOf(root, file string) (string, error) {
	rel, err := filepath.Rel(root, filepath.Dir(file))
	if err != nil {
		return "", fmt.Errorf("resolving %s against root %s: %w", file, root, err)
	}
	rel = filepath.ToSlash(rel)
	if rel == "." {
		return "", nil
	}
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("ignore file %s is outside root %s", file, root)
	}
	return rel, nil
}

func printDecisions(w io.Writer, m *globmatch.Matcher, paths []string, isDir bool) error {
	width := 0
	for _, p := range paths {
		width = max(width, len(p))
	}

	for _, p := range paths {
		r := m.MatchWithReason(p, isDir)
		line := ui.FormatResult(p, width, r.Ignored)
		if r.Matched {
			line += " " + ui.Muted(describeRule(r))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func describeRule(r globmatch.MatchResult) string {
	if r.BasePath == "" {
		return fmt.Sprintf("(line %d: %s)", r.Line, r.Rule)
	}
	return fmt.Sprintf("(%s, line %d: %s)", r.BasePath, r.Line, r.Rule)
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
