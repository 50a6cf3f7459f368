// Package stb is a safe Go adapter over the stb image library. It decodes
// image files into owned pixel buffers, encodes 8-bit buffers to PNG, JPEG,
// BMP and TGA, and resamples 8-bit buffers.
//
// Pixels are stored interleaved and packed: each row is Width*Components
// samples with no padding.
//
// The native library keeps its last decode failure in a process-wide slot.
// Decode calls are serialized inside this package so the reported reason
// always belongs to the failing call. Encode and resize take no lock.
package stb

import (
	"fmt"
	"unsafe"

	"github.com/nullian/stb-go/internal/native"
)

// surface is swapped out by tests.
var surface native.Surface = native.STB{}

// Sample is a pixel sample type the native decoder produces.
type Sample interface {
	uint8 | uint16 | float32
}

// ImageInfo is the geometry of an Image.
type ImageInfo struct {
	Width      int
	Height     int
	Components int
}

// Len is the number of samples an image with this geometry holds.
func (i ImageInfo) Len() int {
	return i.Width * i.Height * i.Components
}

// Stride is the number of samples in one row.
func (i ImageInfo) Stride() int {
	return i.Width * i.Components
}

func (i ImageInfo) String() string {
	return fmt.Sprintf("%dx%dx%d", i.Width, i.Height, i.Components)
}

// Image is an owned pixel buffer plus its geometry.
// len(Buffer()) == Info().Len() always holds.
type Image[T Sample] struct {
	info ImageInfo
	buf  []T
}

// Build wraps data without copying. It panics if len(data) != w*h*c.
func Build[T Sample](data []T, w, h, c int) *Image[T] {
	info := ImageInfo{Width: w, Height: h, Components: c}
	if len(data) != info.Len() {
		panic(fmt.Sprintf("stb: buffer length %d does not match %s", len(data), info))
	}
	return &Image[T]{info: info, buf: data}
}

// Info returns the image geometry.
func (m *Image[T]) Info() ImageInfo { return m.info }

// Buffer returns the pixel samples. The slice is the image's storage.
func (m *Image[T]) Buffer() []T { return m.buf }

// adopt copies info.Len() samples out of a native allocation and releases
// it. data is freed exactly once, even if the copy panics.
func adopt[T Sample](data unsafe.Pointer, info ImageInfo) *Image[T] {
	defer surface.Free(data)

	buf := make([]T, info.Len())
	copy(buf, unsafe.Slice((*T)(data), len(buf)))
	return &Image[T]{info: info, buf: buf}
}

// bufferPtr returns a pointer to the first element, or nil for an empty
// slice.
func bufferPtr[T Sample](buf []T) unsafe.Pointer {
	if len(buf) == 0 {
		return nil
	}
	return unsafe.Pointer(&buf[0])
}
