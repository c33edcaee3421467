package snapshot

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// Scale enlarges img by an integer factor with nearest-neighbour sampling
func Scale(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

// Overlay draws lines of debug text on a translucent box in the top-left corner of img
func Overlay(img *image.RGBA, lines []string, textColor color.Color) {
	if len(lines) == 0 {
		return
	}

	dc := gg.NewContextForRGBA(img)
	lineHeight := dc.FontHeight() * 1.4

	width := 0.0
	for _, line := range lines {
		w, _ := dc.MeasureString(line)
		width = max(width, w)
	}

	dc.SetRGBA(0, 0, 0, 0.5)
	dc.DrawRectangle(2, 2, width+8, lineHeight*float64(len(lines))+6)
	dc.Fill()

	dc.SetColor(textColor)
	for i, line := range lines {
		dc.DrawString(line, 6, 4+lineHeight*float64(i+1))
	}
}
