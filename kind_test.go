package globmatch

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"wildcard", KindWildcard, false},
		{"glob", KindGlob, false},
		{"gitignore", KindGitignore, false},
		{"GitIgnore", KindGitignore, false},
		{"regex", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownKind) {
				t.Errorf("ParseKind(%q) error = %v, want ErrUnknownKind", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseKind(%q) unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestKind_String(t *testing.T) {
	for _, k := range Kinds() {
		back, err := ParseKind(k.String())
		if err != nil || back != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", k.String(), back, err, k)
		}
	}
	if got := Kind(7).String(); got != "Kind(7)" {
		t.Errorf("Kind(7).String() = %q", got)
	}
}

func TestOptions_Match(t *testing.T) {
	tests := []struct {
		text    string
		pattern string
		want    [3]bool // wildcard, glob, gitignore
	}{
		{"a/b", "a*b", [3]bool{true, false, false}},
		{"x/y/file.txt", "*.txt", [3]bool{true, false, true}},
		{"b", "[a-c]", [3]bool{false, true, true}},
		{"a/b/c", "a/**/c", [3]bool{true, true, true}},
		{"a/c", "a/**/c", [3]bool{false, false, true}},
		{"abc", "abc", [3]bool{true, true, true}},
	}

	opts := DefaultOptions()
	for _, tt := range tests {
		for i, k := range Kinds() {
			got := opts.Match(k, tt.text, tt.pattern)
			if got != tt.want[i] {
				t.Errorf("Match(%v, %q, %q) = %v, want %v", k, tt.text, tt.pattern, got, tt.want[i])
			}
		}
	}

	if opts.Match(Kind(-1), "a", "*") {
		t.Error("unknown kind should never match")
	}
}
