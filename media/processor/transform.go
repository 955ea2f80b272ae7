package processor

import (
	"context"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"go.uber.org/zap"

	"github.com/LoganBrinsmead/DRSB/logging"
)

// Transformer applies the flip/resize/crosshair pipeline to in-memory images.
type Transformer struct {
	log logging.Logger
}

// NewTransformer creates a Transformer.
func NewTransformer() *Transformer {
	return &Transformer{
		log: logging.Global().Named("processor"),
	}
}

// Transform flips src top-bottom then left-right, resamples it to the
// directive's dimensions, and draws a centered crosshair. The two flips stay
// separate operations; together they are a 180 degree rotation.
func (t *Transformer) Transform(ctx context.Context, src image.Image, directive SizeDirective) (*image.NRGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	srcWidth := src.Bounds().Dx()
	srcHeight := src.Bounds().Dy()

	img := imaging.FlipV(src)
	img = imaging.FlipH(img)

	width, height := directive.Resolve(srcWidth, srcHeight)
	if !directive.IsOriginal() {
		// Lanczos3 keeps visual fidelity at arbitrary scale factors.
		resized := resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
		img = imaging.Clone(resized)
	}

	drawCrosshair(img)

	t.log.Debug("transformed image",
		zap.Int("source_width", srcWidth),
		zap.Int("source_height", srcHeight),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Stringer("directive", directive),
	)

	return img, nil
}
