// Package commands implements the globmatch command line interface.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	globmatch "github.com/Sriram-PR/go-globmatch"
	"github.com/Sriram-PR/go-globmatch/internal/logger"
	"github.com/Sriram-PR/go-globmatch/internal/ui"
)

// cli carries the flags shared by all commands.
type cli struct {
	dotglob    bool
	nocaseglob bool
	verbose    bool
	log        *slog.Logger
}

func (c *cli) options() globmatch.Options {
	return globmatch.Options{
		DotGlob:    c.dotglob,
		NoCaseGlob: c.nocaseglob,
	}
}

// Execute runs the root command with the process arguments.
func Execute(version string) error {
	cmd := NewRootCmd()
	cmd.Version = version
	return cmd.Execute()
}

// NewRootCmd builds the globmatch command tree.
func NewRootCmd() *cobra.Command {
	c := &cli{}
	var kind string

	cmd := &cobra.Command{
		Use:   "globmatch [flags] <string> <pattern>",
		Short: "Match a string against wildcard, glob and gitignore patterns",
		Long: `globmatch tests a string against a pattern with three matchers:

  wildcard   * and ? only, * crosses '/'
  glob       adds [...] classes and \ escapes, * and ? stop at '/'
  gitignore  adds ** and anchoring: a pattern without '/' matches the basename

It prints one Y/N line per matcher.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			c.log = logger.New(cmd.ErrOrStderr(), c.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return cmd.Usage()
			}

			kinds := globmatch.Kinds()
			if kind != "" {
				k, err := globmatch.ParseKind(kind)
				if err != nil {
					return err
				}
				kinds = []globmatch.Kind{k}
			}

			return runMatch(cmd, c, kinds, args[0], args[1])
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVar(&c.dotglob, "dotglob", true, "let *, ? and [...] match a leading '.' of a path segment")
	flags.BoolVar(&c.nocaseglob, "nocaseglob", false, "match case-insensitively")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log debug details to stderr")
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "run only one matcher: wildcard, glob or gitignore")

	cmd.AddCommand(newIgnoreCmd(c))
	return cmd
}

func runMatch(cmd *cobra.Command, c *cli, kinds []globmatch.Kind, text, pattern string) error {
	opts := c.options()
	c.log.Debug("matching", "text", text, "pattern", pattern,
		"dotglob", opts.DotGlob, "nocaseglob", opts.NoCaseGlob)

	width := 0
	for _, k := range kinds {
		width = max(width, len(label(k)))
	}

	out := cmd.OutOrStdout()
	for _, k := range kinds {
		if _, err := fmt.Fprintln(out, ui.FormatResult(label(k), width, opts.Match(k, text, pattern))); err != nil {
			return err
		}
	}
	return nil
}

func label(k globmatch.Kind) string {
	return k.String() + " match"
}
