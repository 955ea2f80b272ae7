package processor

import (
	"fmt"
	"path/filepath"
	"strings"

	apperrors "github.com/LoganBrinsmead/DRSB/errors"
)

// SizeMode selects how final output dimensions are resolved.
type SizeMode string

const (
	// ModeOriginal keeps the source dimensions and skips resampling.
	ModeOriginal SizeMode = "original"
	// ModePreset resizes to one of the built-in sizes.
	ModePreset SizeMode = "preset"
	// ModeCustom resizes to caller-supplied dimensions.
	ModeCustom SizeMode = "custom"
)

// SizeDirective determines the final output dimensions of a transform.
// Exactly one directive applies per invocation.
type SizeDirective struct {
	mode   SizeMode
	width  int
	height int
}

// Original returns a directive that keeps the source dimensions.
func Original() SizeDirective {
	return SizeDirective{mode: ModeOriginal}
}

// Preset returns a directive for one of the built-in sizes.
func Preset(width, height int) SizeDirective {
	return SizeDirective{mode: ModePreset, width: width, height: height}
}

// Custom returns a directive for caller-supplied dimensions.
// Both values must be positive.
func Custom(width, height int) (SizeDirective, error) {
	if width <= 0 || height <= 0 {
		return SizeDirective{}, apperrors.NewInvalidSizing("--sizing values must be positive integers")
	}
	return SizeDirective{mode: ModeCustom, width: width, height: height}, nil
}

// Mode returns the directive's size mode.
func (d SizeDirective) Mode() SizeMode {
	return d.mode
}

// IsOriginal reports whether the directive keeps source dimensions.
func (d SizeDirective) IsOriginal() bool {
	return d.mode == ModeOriginal
}

// Resolve returns the final output dimensions for a source of srcWidth x srcHeight.
func (d SizeDirective) Resolve(srcWidth, srcHeight int) (int, int) {
	if d.mode == ModeOriginal {
		return srcWidth, srcHeight
	}
	return d.width, d.height
}

// String implements fmt.Stringer.
func (d SizeDirective) String() string {
	if d.mode == ModeOriginal {
		return string(ModeOriginal)
	}
	return fmt.Sprintf("%s(%dx%d)", d.mode, d.width, d.height)
}

// Format identifies an output image encoding.
type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatGIF  Format = "gif"
)

// FormatFromPath maps an output path's extension to its Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".png":
		return FormatPNG, nil
	case ".gif":
		return FormatGIF, nil
	default:
		return "", apperrors.NewEncode(fmt.Errorf("unsupported output format for %q", path))
	}
}

// Result describes a completed transform.
type Result struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
