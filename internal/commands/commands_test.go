package commands_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	globmatch "github.com/Sriram-PR/go-globmatch"
)

var _ = Describe("globmatch", func() {
	Context("without arguments", func() {
		It("prints usage", func() {
			r := run()

			Expect(r.Err).NotTo(HaveOccurred())
			Expect(r.Output).To(ContainSubstring("Usage:"))
			Expect(r.Output).To(ContainSubstring("globmatch [flags] <string> <pattern>"))
		})

		It("prints usage with a single argument", func() {
			r := run("abc")

			Expect(r.Err).NotTo(HaveOccurred())
			Expect(r.Output).To(ContainSubstring("Usage:"))
		})
	})

	Context("with a string and a pattern", func() {
		It("prints one line per matcher", func() {
			r := run("a/b", "a*b")

			Expect(r.Err).NotTo(HaveOccurred())
			Expect(r.Output).To(MatchRegexp(`wildcard match\s+= Y`))
			Expect(r.Output).To(MatchRegexp(`glob match\s+= N`))
			Expect(r.Output).To(MatchRegexp(`gitignore match\s+= N`))
		})

		It("matches basenames with the gitignore matcher", func() {
			r := run("x/y/file.txt", "*.txt")

			Expect(r.Output).To(MatchRegexp(`glob match\s+= N`))
			Expect(r.Output).To(MatchRegexp(`gitignore match\s+= Y`))
		})

		It("hides dotfiles with --dotglob=false", func() {
			Expect(run(".hidden", "*").Output).To(MatchRegexp(`glob match\s+= Y`))
			Expect(run("--dotglob=false", ".hidden", "*").Output).To(MatchRegexp(`glob match\s+= N`))
		})

		It("folds case with --nocaseglob", func() {
			Expect(run("ABC", "abc").Output).To(MatchRegexp(`glob match\s+= N`))
			Expect(run("--nocaseglob", "ABC", "abc").Output).To(MatchRegexp(`glob match\s+= Y`))
		})

		It("rejects extra arguments", func() {
			r := run("a", "b", "c")

			Expect(r.Err).To(HaveOccurred())
		})
	})

	Context("with --kind", func() {
		It("runs only the selected matcher", func() {
			r := run("--kind", "gitignore", "a/c", "a/**/c")

			Expect(r.Err).NotTo(HaveOccurred())
			Expect(r.Output).To(Equal("gitignore match = Y\n"))
		})

		It("rejects unknown kinds", func() {
			r := run("--kind", "regex", "a", "a")

			Expect(r.Err).To(MatchError(globmatch.ErrUnknownKind))
		})
	})

	Context("with --verbose", func() {
		It("logs the match options", func() {
			r := run("-v", "a", "a")

			Expect(r.Output).To(ContainSubstring("msg=matching"))
			Expect(r.Output).To(ContainSubstring("dotglob=true"))
		})
	})
})

var _ = Describe("globmatch ignore", func() {
	var root string

	write := func(rel, content string) string {
		path := filepath.Join(root, rel)
		Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
		return path
	}

	BeforeEach(func() {
		root = GinkgoT().TempDir()
		GinkgoT().Setenv("XDG_CONFIG_HOME", root)
		GinkgoT().Setenv("GIT_CONFIG_GLOBAL", filepath.Join(root, "no-such-config"))
	})

	It("uses <root>/.gitignore by default", func() {
		write(".gitignore", "*.log\n!keep.log\n")

		r := run("ignore", "--root", root, "debug.log", "keep.log", "main.go")

		Expect(r.Err).NotTo(HaveOccurred())
		Expect(r.Output).To(MatchRegexp(`debug.log\s+= Y \(line 1: \*\.log\)`))
		Expect(r.Output).To(MatchRegexp(`keep.log\s+= N \(line 2: !keep\.log\)`))
		Expect(r.Output).To(MatchRegexp(`main.go\s+= N\n`))
	})

	It("succeeds without any ignore file", func() {
		r := run("ignore", "--root", root, "a.txt")

		Expect(r.Err).NotTo(HaveOccurred())
		Expect(r.Output).To(MatchRegexp(`a.txt\s+= N`))
	})

	It("scopes nested files to their directory", func() {
		rootFile := write(".gitignore", "*.tmp\n")
		nested := write("src/.gitignore", "/gen/\n")

		r := run("ignore", "--root", root, "-f", rootFile, "-f", nested,
			"src/gen/x.go", "gen/x.go", "src/a.tmp")

		Expect(r.Err).NotTo(HaveOccurred())
		Expect(r.Output).To(MatchRegexp(`src/gen/x.go\s+= Y \(src, line 1: /gen/\)`))
		Expect(r.Output).To(MatchRegexp(`gen/x.go\s+= N`))
		Expect(r.Output).To(MatchRegexp(`src/a.tmp\s+= Y`))
	})

	It("treats paths as directories with --dir", func() {
		write(".gitignore", "build/\n")

		Expect(run("ignore", "--root", root, "build").Output).To(MatchRegexp(`build\s+= N`))
		Expect(run("ignore", "--root", root, "--dir", "build").Output).To(MatchRegexp(`build\s+= Y`))
	})

	It("loads the global excludes file", func() {
		write("git/ignore", "*.swp\n")

		r := run("ignore", "--root", root, "--global", "notes.swp")

		Expect(r.Err).NotTo(HaveOccurred())
		Expect(r.Output).To(MatchRegexp(`notes.swp\s+= Y`))
	})

	It("warns about skipped patterns", func() {
		write(".gitignore", "*.log\n!\n")

		r := run("ignore", "--root", root, "a.log")

		Expect(r.Err).NotTo(HaveOccurred())
		Expect(r.Output).To(ContainSubstring("skipping pattern"))
		Expect(r.Output).To(ContainSubstring("line=2"))
		Expect(r.Output).To(ContainSubstring("! 1 pattern skipped"))
	})

	It("re-includes nothing below an ignored directory", func() {
		write(".gitignore", "build/\n!*.keep\n")

		r := run("ignore", "--root", root, "build/a.keep", "a.keep")

		Expect(r.Err).NotTo(HaveOccurred())
		Expect(r.Output).To(MatchRegexp(`build/a.keep\s+= Y \(line 1: build/\)`))
		Expect(r.Output).To(MatchRegexp(`a.keep\s+= N`))
	})

	It("fails on a missing explicit file", func() {
		r := run("ignore", "-f", filepath.Join(root, "nope"), "a")

		Expect(r.Err).To(MatchError(os.ErrNotExist))
	})

	It("rejects files outside the root", func() {
		outside := filepath.Join(GinkgoT().TempDir(), ".gitignore")
		Expect(os.WriteFile(outside, []byte("*\n"), 0o644)).To(Succeed())

		r := run("ignore", "--root", root, "-f", outside, "a")

		Expect(r.Err).To(MatchError(ContainSubstring("outside root")))
	})

	It("requires a path", func() {
		Expect(run("ignore").Err).To(HaveOccurred())
	})
})
