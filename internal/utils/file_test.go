package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"scan.pdf", "scan_cropped.pdf"},
		{"scan.PDF", "scan_cropped.pdf"},
		{"dir/scan.pdf", "dir/scan_cropped.pdf"},
		{"scan", "scan_cropped.pdf"},
		{"scan.v2.pdf", "scan.v2_cropped.pdf"},
		{"archive.tar", "archive.tar_cropped.pdf"},
	}

	for _, tt := range tests {
		if got := DefaultOutputPath(tt.in); got != tt.want {
			t.Errorf("DefaultOutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsPDFFile(t *testing.T) {
	if !IsPDFFile("a.pdf") || !IsPDFFile("a.PDF") {
		t.Error("expected .pdf files to be recognized")
	}
	if IsPDFFile("a.png") || IsPDFFile("pdf") {
		t.Error("expected non-pdf paths to be rejected")
	}
}

func TestEnsureDirAndFileExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir on existing dir failed: %v", err)
	}

	file := filepath.Join(dir, "f.pdf")
	if FileExists(file) {
		t.Error("file should not exist yet")
	}
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(file) {
		t.Error("expected file to exist")
	}
	if FileExists(dir) {
		t.Error("directories must not count as files")
	}
}
