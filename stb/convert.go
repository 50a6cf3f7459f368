package stb

import (
	"fmt"
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"golang.org/x/image/draw"
)

// ToU8 converts img to 8-bit samples so it can be encoded. 16-bit samples
// keep their high byte. Float samples are clamped to [0,1] and scaled.
func ToU8[T Sample](img *Image[T]) *Image[uint8] {
	out := make([]uint8, len(img.buf))
	switch buf := any(img.buf).(type) {
	case []uint8:
		copy(out, buf)
	case []uint16:
		for i, v := range buf {
			out[i] = uint8(v >> 8)
		}
	case []float32:
		for i, v := range buf {
			out[i] = uint8(math32.Round(clamp01(v) * 255))
		}
	}
	return &Image[uint8]{info: img.info, buf: out}
}

func clamp01(v float32) float32 {
	if math32.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ToImage returns img as a standard library image. One component gives an
// *image.Gray; two, three or four give an *image.NRGBA.
func (m *Image[T]) ToImage() (image.Image, error) {
	u8 := any(m)
	img, ok := u8.(*Image[uint8])
	if !ok {
		img = ToU8(m)
	}
	i := img.info
	if len(img.buf) != i.Len() {
		return nil, fmt.Errorf("buffer length %d does not match %s", len(img.buf), i)
	}
	rect := image.Rect(0, 0, i.Width, i.Height)

	switch i.Components {
	case 1:
		out := image.NewGray(rect)
		for y := 0; y < i.Height; y++ {
			copy(out.Pix[y*out.Stride:], img.buf[y*i.Stride():(y+1)*i.Stride()])
		}
		return out, nil
	case 2, 3, 4:
		out := image.NewNRGBA(rect)
		c := i.Components
		for y := 0; y < i.Height; y++ {
			row := img.buf[y*i.Stride():]
			dst := out.Pix[y*out.Stride:]
			for x := 0; x < i.Width; x++ {
				s := row[x*c:]
				d := dst[x*4 : x*4+4]
				switch c {
				case 2:
					d[0], d[1], d[2], d[3] = s[0], s[0], s[0], s[1]
				case 3:
					d[0], d[1], d[2], d[3] = s[0], s[1], s[2], 0xff
				case 4:
					copy(d, s[:4])
				}
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported component count %d", i.Components)
}

// FromImage packs src into an 8-bit Image with the given component count.
// Grey values use the standard library's luminance conversion.
func FromImage(src image.Image, components int) (*Image[uint8], error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	rect := image.Rect(0, 0, w, h)
	info := ImageInfo{Width: w, Height: h, Components: components}

	switch components {
	case 1:
		gray := image.NewGray(rect)
		draw.Draw(gray, rect, src, b.Min, draw.Src)
		buf := make([]uint8, info.Len())
		for y := 0; y < h; y++ {
			copy(buf[y*w:], gray.Pix[y*gray.Stride:y*gray.Stride+w])
		}
		return &Image[uint8]{info: info, buf: buf}, nil
	case 2, 3, 4:
		rgba := image.NewNRGBA(rect)
		draw.Draw(rgba, rect, src, b.Min, draw.Src)
		buf := make([]uint8, info.Len())
		for y := 0; y < h; y++ {
			row := rgba.Pix[y*rgba.Stride:]
			for x := 0; x < w; x++ {
				s := row[x*4 : x*4+4]
				d := buf[(y*w+x)*components:]
				switch components {
				case 2:
					d[0] = color.GrayModel.Convert(color.NRGBA{R: s[0], G: s[1], B: s[2], A: 0xff}).(color.Gray).Y
					d[1] = s[3]
				case 3:
					d[0], d[1], d[2] = s[0], s[1], s[2]
				case 4:
					copy(d, s)
				}
			}
		}
		return &Image[uint8]{info: info, buf: buf}, nil
	}
	return nil, fmt.Errorf("unsupported component count %d", components)
}
