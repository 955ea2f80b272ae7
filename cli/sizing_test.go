package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/LoganBrinsmead/DRSB/errors"
	"github.com/LoganBrinsmead/DRSB/media/processor"
)

func TestParseSizing(t *testing.T) {
	tests := []struct {
		input         string
		width, height int
	}{
		{"800x600", 800, 600},
		{"800,600", 800, 600},
		{"800X600", 800, 600},
		{" 800 x 600 ", 800, 600},
		{"301x175", 301, 175},
		{"1x1", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			directive, err := ParseSizing(tt.input)
			require.NoError(t, err)
			assert.Equal(t, processor.ModeCustom, directive.Mode())
			w, h := directive.Resolve(0, 0)
			assert.Equal(t, tt.width, w)
			assert.Equal(t, tt.height, h)
		})
	}
}

func TestParseSizingEquivalentSeparators(t *testing.T) {
	a, err := ParseSizing("800x600")
	require.NoError(t, err)
	b, err := ParseSizing("800,600")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseSizingInvalid(t *testing.T) {
	invalid := []string{
		"0x10",
		"10x0",
		"-5x10",
		"abc x10",
		"10",
		"10x20x30",
		"x",
		"",
		"10.5x20",
	}

	for _, input := range invalid {
		t.Run(input, func(t *testing.T) {
			_, err := ParseSizing(input)
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInvalidSizing))
		})
	}
}
