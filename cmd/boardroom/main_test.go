package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolvePitchPrefersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pitch.md")
	if err := os.WriteFile(path, []byte("file pitch"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, fromStdin, err := resolvePitch("flag pitch", path, strings.NewReader("stdin pitch"), false)
	if err != nil {
		t.Fatalf("resolvePitch: %v", err)
	}
	if got != "file pitch" {
		t.Fatalf("got %q, want file contents", got)
	}
	if fromStdin {
		t.Fatalf("file source misreported as stdin")
	}
}

func TestResolvePitchUsesFlag(t *testing.T) {
	got, fromStdin, err := resolvePitch("flag pitch", "", strings.NewReader("stdin pitch"), false)
	if err != nil {
		t.Fatalf("resolvePitch: %v", err)
	}
	if got != "flag pitch" || fromStdin {
		t.Fatalf("got %q fromStdin=%v", got, fromStdin)
	}
}

func TestResolvePitchFallsBackToStdin(t *testing.T) {
	got, fromStdin, err := resolvePitch("", "", strings.NewReader("stdin pitch"), false)
	if err != nil {
		t.Fatalf("resolvePitch: %v", err)
	}
	if got != "stdin pitch" {
		t.Fatalf("got %q", got)
	}
	if !fromStdin {
		t.Fatalf("stdin source not reported")
	}
}

func TestResolvePitchMissingFile(t *testing.T) {
	if _, _, err := resolvePitch("", filepath.Join(t.TempDir(), "nope.md"), strings.NewReader(""), false); err == nil {
		t.Fatalf("expected error for missing pitch file")
	}
}

func TestExampleCommandPrintsPitch(t *testing.T) {
	var buf bytes.Buffer
	exampleCmd.SetOut(&buf)
	exampleCmd.Run(exampleCmd, nil)

	out := buf.String()
	if !strings.Contains(out, "Q2 Roadmap: AI-Powered Search") {
		t.Fatalf("example output missing pitch title:\n%s", out)
	}
	if !strings.Contains(out, "boardroom grill --file") {
		t.Fatalf("example output missing usage hint:\n%s", out)
	}
}
