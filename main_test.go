package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/term"
)

func TestRunRequiresExactlyOneArgument(t *testing.T) {
	t.Setenv("VIEW_LOG", "")
	for _, args := range [][]string{nil, {"a.txt", "b.txt"}} {
		var stderr bytes.Buffer
		if code := run(args, &stderr); code != 2 {
			t.Fatalf("run(%q) = %d, want 2", args, code)
		}
		if !strings.Contains(stderr.String(), usage) {
			t.Fatalf("expected usage on stderr, got %q", stderr.String())
		}
	}
}

func TestRunReportsUnreadableFile(t *testing.T) {
	t.Setenv("VIEW_LOG", "")
	missing := filepath.Join(t.TempDir(), "nope.txt")

	var stderr bytes.Buffer
	if code := run([]string{missing}, &stderr); code != 1 {
		t.Fatalf("run = %d, want 1", code)
	}
	if !strings.HasPrefix(stderr.String(), "view: ") || !strings.Contains(stderr.String(), "nope.txt") {
		t.Fatalf("unexpected diagnostic %q", stderr.String())
	}
}

func TestRunRefusesNonTerminalStdout(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a terminal")
	}
	t.Setenv("VIEW_LOG", filepath.Join(t.TempDir(), "view.log"))
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("hello\n"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var stderr bytes.Buffer
	if code := run([]string{path}, &stderr); code != 1 {
		t.Fatalf("run = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "not a terminal") {
		t.Fatalf("unexpected diagnostic %q", stderr.String())
	}

	data, err := os.ReadFile(os.Getenv("VIEW_LOG"))
	if err != nil {
		t.Fatalf("read log failed: %v", err)
	}
	if !strings.Contains(string(data), "2 lines") {
		t.Fatalf("load was not logged: %q", data)
	}
}
