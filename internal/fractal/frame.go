package fractal

import (
	"image"
	"image/color"
)

// Frame is a row-major grid of pixels, top row first.
type Frame struct {
	Width  int
	Height int
	Pix    []color.RGBA
}

func NewFrame(width, height int) (*Frame, error) {
	f := &Frame{}
	if err := f.Resize(width, height); err != nil {
		return nil, err
	}
	return f, nil
}

// Resize sets the frame dimensions, reusing the pixel buffer when it is
// large enough. Pixel contents are undefined afterwards.
func (f *Frame) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrFrameSize
	}
	n := width * height
	if cap(f.Pix) < n {
		f.Pix = make([]color.RGBA, n)
	}
	f.Pix = f.Pix[:n]
	f.Width, f.Height = width, height
	return nil
}

func (f *Frame) At(x, y int) color.RGBA     { return f.Pix[y*f.Width+x] }
func (f *Frame) Set(x, y int, c color.RGBA) { f.Pix[y*f.Width+x] = c }

// Row returns the pixels of row y, sharing the frame's storage.
func (f *Frame) Row(y int) []color.RGBA {
	return f.Pix[y*f.Width : (y+1)*f.Width]
}

// Image copies the frame into a new image.RGBA.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for i, c := range f.Pix {
		o := i * 4
		img.Pix[o] = c.R
		img.Pix[o+1] = c.G
		img.Pix[o+2] = c.B
		img.Pix[o+3] = c.A
	}
	return img
}
