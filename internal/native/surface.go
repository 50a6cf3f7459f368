// Package native binds the stb image library (stb_image, stb_image_write,
// stb_image_resize) through cgo.
//
// Nothing here owns memory. Decode calls hand back pointers allocated by
// stb that the caller must release with Free; every other call works on
// caller-provided buffers.
package native

import "unsafe"

// Sample selects which stb decode entry point Load uses.
type Sample int

const (
	U8  Sample = iota // stbi_load
	U16               // stbi_load_16
	F32               // stbi_loadf
)

func (s Sample) String() string {
	switch s {
	case U8:
		return "u8"
	case U16:
		return "u16"
	case F32:
		return "f32"
	default:
		return "unknown"
	}
}

// Surface is the set of native entry points the stb package calls.
//
// Paths are NUL-terminated byte slices. Write and resize calls return the
// native status code: 1 on success, anything else on failure.
type Surface interface {
	// Load decodes the file at path. data is nil on failure, in which case
	// FailureReason describes why.
	Load(kind Sample, path []byte, desired int) (data unsafe.Pointer, w, h, comp int)
	// Info reads image geometry without decoding pixels.
	Info(path []byte) (w, h, comp int, ok bool)
	// FailureReason returns the text stored by the most recent failed
	// decode. ok is false when the library has no reason recorded.
	FailureReason() (reason string, ok bool)
	// Free releases a pointer returned by Load.
	Free(data unsafe.Pointer)

	WritePNG(path []byte, w, h, comp int, data unsafe.Pointer, stride int) int
	WriteJPG(path []byte, w, h, comp int, data unsafe.Pointer, quality int) int
	WriteBMP(path []byte, w, h, comp int, data unsafe.Pointer) int
	WriteTGA(path []byte, w, h, comp int, data unsafe.Pointer) int

	ResizeU8(src unsafe.Pointer, srcW, srcH, srcStride int,
		dst unsafe.Pointer, dstW, dstH, dstStride int, comp int) int
}
