package cli

import (
	"path/filepath"
	"strings"
)

// DeriveOutputPath builds the default output path for inputPath: the input
// stem plus suffix, with the input's extension, in the same directory. An
// input without an extension defaults to ".png".
func DeriveOutputPath(inputPath, suffix string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = ".png"
	}
	return filepath.Join(dir, stem+suffix+ext)
}
