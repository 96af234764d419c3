// Package binary guesses whether a file holds binary data from its name.
//
// The check is a lookup of the file extension in a list of well-known binary
// formats. It never opens the file, so it cannot fail, and it will miss binary
// files with unusual or missing extensions.
package binary

import (
	"path/filepath"
	"strings"
)

// IsBinaryPath reports whether path has a known binary extension.
func IsBinaryPath(path string) bool {
	ext := extension(path)
	if ext == "" {
		return false
	}
	_, ok := extensions[ext]
	return ok
}

// Classifier adapts IsBinaryPath to a type that can be swapped in tests.
type Classifier interface {
	IsBinary(path string) bool
}

// ExtensionClassifier classifies files by extension only.
type ExtensionClassifier struct{}

func (ExtensionClassifier) IsBinary(path string) bool {
	return IsBinaryPath(path)
}

// ClassifierFunc turns a function into a Classifier.
type ClassifierFunc func(path string) bool

func (f ClassifierFunc) IsBinary(path string) bool {
	return f(path)
}

// extension returns the lowercased extension without the dot. A leading dot
// alone does not start an extension, so ".png" has none.
func extension(path string) string {
	base := filepath.Base(filepath.FromSlash(path))
	base = strings.TrimLeft(base, ".")
	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(base[i+1:])
}
