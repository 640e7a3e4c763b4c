package renderer

import (
	"image"
	"image/color"
)

// RGB is one 8-bit display pixel
type RGB struct {
	R, G, B uint8
}

// Frame holds rendered pixels row-major with row 0 at the top of the image
type Frame struct {
	Width  int
	Height int
	Pixels []RGB
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]RGB, width*height),
	}
}

// At returns the pixel at column x of image row y
func (f *Frame) At(x, y int) RGB {
	return f.Pixels[y*f.Width+x]
}

// Set stores the pixel at column x of image row y
func (f *Frame) Set(x, y int, c RGB) {
	f.Pixels[y*f.Width+x] = c
}

// Row returns the pixels of image row y. The slice aliases the frame.
func (f *Frame) Row(y int) []RGB {
	return f.Pixels[y*f.Width : (y+1)*f.Width]
}

// PackRGB flattens pixels to consecutive R, G, B bytes
func PackRGB(pixels []RGB) []byte {
	out := make([]byte, 0, len(pixels)*3)
	for _, p := range pixels {
		out = append(out, p.R, p.G, p.B)
	}
	return out
}

// ToImage converts the frame to an opaque RGBA image
func (f *Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			p := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}
