package processor

import (
	"image"
	"image/color"
)

// drawCrosshair draws 1-pixel black lines through the image center, spanning
// the full width and height. The center uses integer floor division, so for
// odd dimensions the lines sit one pixel off true center. Pixels under the
// lines are overwritten.
func drawCrosshair(img *image.NRGBA) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return
	}

	centerX := width / 2
	centerY := height / 2
	black := color.NRGBA{A: 255}

	for x := 0; x < width; x++ {
		img.SetNRGBA(bounds.Min.X+x, bounds.Min.Y+centerY, black)
	}
	for y := 0; y < height; y++ {
		img.SetNRGBA(bounds.Min.X+centerX, bounds.Min.Y+y, black)
	}
}
