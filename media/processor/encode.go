package processor

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	apperrors "github.com/LoganBrinsmead/DRSB/errors"
)

// Decode reads and decodes an image from r, sniffing the format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, apperrors.NewDecode(err)
	}
	return img, nil
}

// Encode writes img to w in the given format. Quality applies to JPEG on a
// 1-100 scale; PNG uses best compression, GIF the stdlib defaults.
func Encode(w io.Writer, img image.Image, format Format, quality int) error {
	var err error
	switch format {
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case FormatPNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		err = enc.Encode(w, img)
	case FormatGIF:
		err = gif.Encode(w, img, nil)
	default:
		return apperrors.NewEncode(fmt.Errorf("unknown format %q", format))
	}
	if err != nil {
		return apperrors.NewEncode(err)
	}
	return nil
}
