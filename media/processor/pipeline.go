package processor

import (
	"bytes"
	"context"

	"go.uber.org/zap"

	"github.com/LoganBrinsmead/DRSB/logging"
	"github.com/LoganBrinsmead/DRSB/media/storage"
)

// Pipeline runs the full decode/transform/encode/persist sequence for one
// image. It owns the image buffer for the duration of Run; nothing is shared.
type Pipeline struct {
	store       storage.Provider
	transformer *Transformer
	quality     int
	log         logging.Logger
}

// NewPipeline creates a Pipeline writing through store with the given encode
// quality.
func NewPipeline(store storage.Provider, quality int) *Pipeline {
	return &Pipeline{
		store:       store,
		transformer: NewTransformer(),
		quality:     quality,
		log:         logging.Global().Named("pipeline"),
	}
}

// Run processes inputPath into outputPath according to directive and returns
// the saved path with final dimensions. Exactly one file is written.
func (p *Pipeline) Run(ctx context.Context, inputPath, outputPath string, directive SizeDirective) (Result, error) {
	rc, err := p.store.Read(ctx, inputPath)
	if err != nil {
		return Result{}, err
	}
	defer rc.Close()

	src, err := Decode(rc)
	if err != nil {
		return Result{}, err
	}

	format, err := FormatFromPath(outputPath)
	if err != nil {
		return Result{}, err
	}

	img, err := p.transformer.Transform(ctx, src, directive)
	if err != nil {
		return Result{}, err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, format, p.quality); err != nil {
		return Result{}, err
	}

	size, err := p.store.Write(ctx, outputPath, &buf)
	if err != nil {
		return Result{}, err
	}

	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	p.log.Info("saved image",
		zap.String("path", outputPath),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int64("bytes", size),
	)

	return Result{Path: outputPath, Width: width, Height: height}, nil
}
