package renderer

import (
	"image"
	"image/color"
)

// PixelBuffer is a row-major RGBA8 buffer with its origin at the bottom-left.
// Pixel (x, y) lives at index y*Width+x and y grows upward.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []color.RGBA
}

// NewPixelBuffer allocates a buffer of the given size
func NewPixelBuffer(width, height int) *PixelBuffer {
	buf := &PixelBuffer{}
	buf.Resize(width, height)
	return buf
}

// Resize reallocates the buffer when the dimensions change and reports whether it did.
// A buffer with unchanged dimensions keeps its contents.
func (b *PixelBuffer) Resize(width, height int) bool {
	width, height = max(width, 0), max(height, 0)
	if b.Pix != nil && width == b.Width && height == b.Height {
		return false
	}
	b.Width = width
	b.Height = height
	b.Pix = make([]color.RGBA, width*height)
	return true
}

// At returns the color of pixel (x, y)
func (b *PixelBuffer) At(x, y int) color.RGBA {
	return b.Pix[y*b.Width+x]
}

// Set stores the color of pixel (x, y)
func (b *PixelBuffer) Set(x, y int, c color.RGBA) {
	b.Pix[y*b.Width+x] = c
}

// Fill sets every pixel to c
func (b *PixelBuffer) Fill(c color.RGBA) {
	for i := range b.Pix {
		b.Pix[i] = c
	}
}

// FillDebugGradient paints red along x and green along y over a dim blue base
func (b *PixelBuffer) FillDebugGradient() {
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			b.Pix[y*b.Width+x] = color.RGBA{
				R: quantize(float64(x) / float64(b.Width) * 255),
				G: quantize(float64(y) / float64(b.Height) * 255),
				B: quantize(0.2 * 255),
				A: 255,
			}
		}
	}
}

// ToImage copies the buffer into a top-left origin image
func (b *PixelBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	b.CopyTo(img.Pix)
	return img
}

// CopyTo writes the buffer as top-left origin RGBA bytes into dst,
// which must hold at least Width*Height*4 bytes
func (b *PixelBuffer) CopyTo(dst []byte) {
	for y := 0; y < b.Height; y++ {
		row := (b.Height - 1 - y) * b.Width * 4
		for x := 0; x < b.Width; x++ {
			c := b.Pix[y*b.Width+x]
			j := row + x*4
			dst[j+0] = c.R
			dst[j+1] = c.G
			dst[j+2] = c.B
			dst[j+3] = c.A
		}
	}
}

// quantize converts a 0..255 channel value to a byte, saturating out of range values.
// NaN maps to 0.
func quantize(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
