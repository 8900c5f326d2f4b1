package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

// FileExists checks if a file exists and is not a directory
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// IsPDFFile checks if a file has a .pdf extension
func IsPDFFile(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".pdf")
}

// DefaultOutputPath derives the output path for an input file: the ".pdf"
// suffix (any case) is stripped, "_cropped" is appended and the suffix
// restored. "scan.pdf" becomes "scan_cropped.pdf".
func DefaultOutputPath(inputPath string) string {
	base := inputPath
	if IsPDFFile(inputPath) {
		base = inputPath[:len(inputPath)-len(filepath.Ext(inputPath))]
	}
	return base + "_cropped.pdf"
}
