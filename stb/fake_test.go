package stb

import (
	"testing"
	"unsafe"

	"github.com/nullian/stb-go/internal/native"
)

// fakeSurface records every native call and serves canned results.
type fakeSurface struct {
	// Load results. pixels keeps the Go memory behind data alive.
	pixels        any
	data          unsafe.Pointer
	w, h, comp    int
	reason        string
	hasReason     bool
	infoOK        bool
	loads         []loadCall
	freed         []unsafe.Pointer
	reasonReads   int
	writeCode     int
	writes        []writeCall
	resizeCode    int
	resizes       []resizeCall
	resizeWritten byte
}

type loadCall struct {
	kind    native.Sample
	path    []byte
	desired int
}

type writeCall struct {
	format     Format
	path       []byte
	w, h, comp int
	data       unsafe.Pointer
	extra      int // stride for PNG, quality for JPEG
}

type resizeCall struct {
	src                   unsafe.Pointer
	srcW, srcH, srcStride int
	dst                   unsafe.Pointer
	dstW, dstH, dstStride int
	comp                  int
}

// useFake installs f as the package surface for the duration of t.
func useFake(t *testing.T, f *fakeSurface) *fakeSurface {
	t.Helper()
	prev := surface
	surface = f
	t.Cleanup(func() { surface = prev })
	return f
}

// withPixels makes the next Load return buf with the given native geometry.
func withPixels[T Sample](f *fakeSurface, buf []T, w, h, comp int) *fakeSurface {
	f.pixels = buf
	f.data = unsafe.Pointer(&buf[0])
	f.w, f.h, f.comp = w, h, comp
	return f
}

func (f *fakeSurface) Load(kind native.Sample, path []byte, desired int) (unsafe.Pointer, int, int, int) {
	f.loads = append(f.loads, loadCall{kind: kind, path: path, desired: desired})
	return f.data, f.w, f.h, f.comp
}

func (f *fakeSurface) Info(path []byte) (int, int, int, bool) {
	return f.w, f.h, f.comp, f.infoOK
}

func (f *fakeSurface) FailureReason() (string, bool) {
	f.reasonReads++
	return f.reason, f.hasReason
}

func (f *fakeSurface) Free(data unsafe.Pointer) {
	f.freed = append(f.freed, data)
}

func (f *fakeSurface) WritePNG(path []byte, w, h, comp int, data unsafe.Pointer, stride int) int {
	f.writes = append(f.writes, writeCall{PNG, path, w, h, comp, data, stride})
	return f.writeCode
}

func (f *fakeSurface) WriteJPG(path []byte, w, h, comp int, data unsafe.Pointer, quality int) int {
	f.writes = append(f.writes, writeCall{JPEG, path, w, h, comp, data, quality})
	return f.writeCode
}

func (f *fakeSurface) WriteBMP(path []byte, w, h, comp int, data unsafe.Pointer) int {
	f.writes = append(f.writes, writeCall{BMP, path, w, h, comp, data, 0})
	return f.writeCode
}

func (f *fakeSurface) WriteTGA(path []byte, w, h, comp int, data unsafe.Pointer) int {
	f.writes = append(f.writes, writeCall{TGA, path, w, h, comp, data, 0})
	return f.writeCode
}

func (f *fakeSurface) ResizeU8(src unsafe.Pointer, srcW, srcH, srcStride int,
	dst unsafe.Pointer, dstW, dstH, dstStride int, comp int) int {
	f.resizes = append(f.resizes, resizeCall{src, srcW, srcH, srcStride, dst, dstW, dstH, dstStride, comp})
	if f.resizeCode == 1 && dst != nil {
		out := unsafe.Slice((*byte)(dst), dstH*dstStride)
		for i := range out {
			out[i] = f.resizeWritten
		}
	}
	return f.resizeCode
}
