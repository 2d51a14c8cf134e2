package shim

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLookPathFirstMatchWins(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeExecutable(t, filepath.Join(first, "tool"))
	writeExecutable(t, filepath.Join(second, "tool"))
	t.Setenv("PATH", first+":"+second)

	resolved, found := lookPath("tool")
	if !found {
		t.Fatalf("expected a match")
	}
	if want := filepath.Join(first, "tool"); resolved != want {
		t.Fatalf("search order violated: got %q want %q", resolved, want)
	}
}

func TestLookPathLaterDirectory(t *testing.T) {
	empty := t.TempDir()
	holder := t.TempDir()
	writeExecutable(t, filepath.Join(holder, "tool"))
	t.Setenv("PATH", empty+":"+holder)

	resolved, found := lookPath("tool")
	if !found || resolved != filepath.Join(holder, "tool") {
		t.Fatalf("expected match in second directory, got (%q,%v)", resolved, found)
	}
}

func TestLookPathSkipsNonExecutable(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tool"), []byte("data"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	t.Setenv("PATH", dir)

	if _, found := lookPath("tool"); found {
		t.Fatalf("non-executable file must not match")
	}
}

func TestLookPathNotFoundReturnsBareName(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	resolved, found := lookPath("ghost-tool")
	if found || resolved != "ghost-tool" {
		t.Fatalf("expected bare name back: (%q,%v)", resolved, found)
	}
}

func TestLookPathSeparatorSkipsSearch(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	resolved, found := lookPath("./rel/tool")
	if !found || resolved != "./rel/tool" {
		t.Fatalf("names with a separator bypass the search: (%q,%v)", resolved, found)
	}
}

func TestLookPathDefaultWhenPathUnset(t *testing.T) {
	t.Setenv("PATH", "x") // registers restoration
	os.Unsetenv("PATH")

	resolved, found := lookPath("sh")
	if !found {
		t.Fatalf("sh must resolve via the default search path")
	}
	if resolved != "/usr/bin/sh" && resolved != "/bin/sh" {
		t.Fatalf("expected a default-path match, got %q", resolved)
	}
}

func TestLookPathEmptyEntriesSkipped(t *testing.T) {
	dir := t.TempDir()
	writeExecutable(t, filepath.Join(dir, "tool"))
	t.Setenv("PATH", "::"+dir+":")

	resolved, found := lookPath("tool")
	if !found || resolved != filepath.Join(dir, "tool") {
		t.Fatalf("empty PATH entries must be skipped: (%q,%v)", resolved, found)
	}
}
