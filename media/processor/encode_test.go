package processor

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/LoganBrinsmead/DRSB/errors"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"out.jpg", FormatJPEG},
		{"out.JPG", FormatJPEG},
		{"out.jpeg", FormatJPEG},
		{"dir/out.png", FormatPNG},
		{"out.gif", FormatGIF},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromPathUnknown(t *testing.T) {
	for _, path := range []string{"out.webp", "out.bmp", "out", "out."} {
		_, err := FormatFromPath(path)
		require.Error(t, err, path)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeEncode))
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	src := testImage(20, 30)

	for _, format := range []Format{FormatJPEG, FormatPNG, FormatGIF} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, src, format, 95))

			decoded, err := Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, 20, decoded.Bounds().Dx())
			assert.Equal(t, 30, decoded.Bounds().Dy())
		})
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not an image")))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeDecode))
}

func TestEncodePNGLossless(t *testing.T) {
	src := testImage(9, 9)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src, FormatPNG, 95))

	decoded, err := Decode(&buf)
	require.NoError(t, err)

	r0, g0, b0, a0 := src.At(3, 4).RGBA()
	r1, g1, b1, a1 := decoded.At(3, 4).RGBA()
	assert.Equal(t, []uint32{r0, g0, b0, a0}, []uint32{r1, g1, b1, a1})
}
