package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/snapmerge/internal/config"
)

func TestConfirm(t *testing.T) {
	cfg := config.DefaultConfig()
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes \n", true},
		{"n\n", false},
		{"maybe\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		if got := confirm(strings.NewReader(tt.input), &out, &cfg); got != tt.want {
			t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "(y/n)") {
			t.Errorf("prompt not shown for %q", tt.input)
		}
	}
}

func TestRootCommand_RejectsQuality(t *testing.T) {
	cmd := newRootCommand(strings.NewReader(""), &bytes.Buffer{})
	cmd.SetArgs([]string{"-q", "150", "--skip-prompt", "--color", "never"})
	if err := cmd.Execute(); !errors.Is(err, config.ErrInvalidQuality) {
		t.Errorf("Execute = %v, want ErrInvalidQuality", err)
	}
}

func TestRootCommand_PreviewWritesNothing(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "memories")
	out := filepath.Join(root, "combined")
	if err := os.MkdirAll(filepath.Join(src, "m1"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a-main.jpg", "a-overlay.png"} {
		if err := os.WriteFile(filepath.Join(src, "m1", name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cmd := newRootCommand(strings.NewReader(""), &bytes.Buffer{})
	cmd.SetArgs([]string{"--source", src, "--output", out, "--skip-prompt", "--color", "never"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("preview created %s", out)
	}
}

func TestRootCommand_DeclinedPrompt(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "combined")
	cmd := newRootCommand(strings.NewReader("n\n"), &bytes.Buffer{})
	cmd.SetArgs([]string{"--source", filepath.Join(root, "src"), "--output", out, "--execute", "--color", "never"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("declined run created %s", out)
	}
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	cmd := newRootCommand(strings.NewReader(""), &bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})
	if err := cmd.Execute(); err == nil {
		t.Error("positional arguments should be rejected")
	}
}
