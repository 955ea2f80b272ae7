package cli

import (
	"strconv"
	"strings"

	apperrors "github.com/LoganBrinsmead/DRSB/errors"
	"github.com/LoganBrinsmead/DRSB/media/processor"
)

const sizingFormatMsg = "--sizing must be in the form WxH or W,H with integers, e.g., 800x600"

// ParseSizing parses a custom size argument. Accepted forms are "WxH" and
// "W,H" with positive integers; whitespace is tolerated and the separator is
// case-insensitive.
func ParseSizing(s string) (processor.SizeDirective, error) {
	cleaned := strings.ReplaceAll(strings.ToLower(s), " ", "")

	var parts []string
	if strings.Contains(cleaned, "x") {
		parts = strings.Split(cleaned, "x")
	} else {
		parts = strings.Split(cleaned, ",")
	}
	if len(parts) != 2 {
		return processor.SizeDirective{}, apperrors.NewInvalidSizing(sizingFormatMsg)
	}

	width, err := strconv.Atoi(parts[0])
	if err != nil {
		return processor.SizeDirective{}, apperrors.NewInvalidSizing(sizingFormatMsg)
	}
	height, err := strconv.Atoi(parts[1])
	if err != nil {
		return processor.SizeDirective{}, apperrors.NewInvalidSizing(sizingFormatMsg)
	}

	return processor.Custom(width, height)
}
