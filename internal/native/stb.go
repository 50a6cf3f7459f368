package native

/*
#cgo pkg-config: stb
#include <stdlib.h>
#include <stb_image.h>
#include <stb_image_write.h>
#include <stb_image_resize.h>

static void *load_image(int kind, const char *path, int *w, int *h, int *comp, int desired) {
    switch (kind) {
    case 0:
        return stbi_load(path, w, h, comp, desired);
    case 1:
        return stbi_load_16(path, w, h, comp, desired);
    case 2:
        return stbi_loadf(path, w, h, comp, desired);
    }
    return NULL;
}
*/
import "C"

import "unsafe"

// STB is the cgo-backed Surface.
type STB struct{}

var _ Surface = STB{}

func cpath(path []byte) *C.char {
	return (*C.char)(unsafe.Pointer(&path[0]))
}

func (STB) Load(kind Sample, path []byte, desired int) (unsafe.Pointer, int, int, int) {
	var w, h, comp C.int
	data := C.load_image(C.int(kind), cpath(path), &w, &h, &comp, C.int(desired))
	return data, int(w), int(h), int(comp)
}

func (STB) Info(path []byte) (int, int, int, bool) {
	var w, h, comp C.int
	ok := C.stbi_info(cpath(path), &w, &h, &comp)
	return int(w), int(h), int(comp), ok == 1
}

func (STB) FailureReason() (string, bool) {
	reason := C.stbi_failure_reason()
	if reason == nil {
		return "", false
	}
	return C.GoString(reason), true
}

func (STB) Free(data unsafe.Pointer) {
	C.stbi_image_free(data)
}

func (STB) WritePNG(path []byte, w, h, comp int, data unsafe.Pointer, stride int) int {
	return int(C.stbi_write_png(cpath(path), C.int(w), C.int(h), C.int(comp), data, C.int(stride)))
}

func (STB) WriteJPG(path []byte, w, h, comp int, data unsafe.Pointer, quality int) int {
	return int(C.stbi_write_jpg(cpath(path), C.int(w), C.int(h), C.int(comp), data, C.int(quality)))
}

func (STB) WriteBMP(path []byte, w, h, comp int, data unsafe.Pointer) int {
	return int(C.stbi_write_bmp(cpath(path), C.int(w), C.int(h), C.int(comp), data))
}

func (STB) WriteTGA(path []byte, w, h, comp int, data unsafe.Pointer) int {
	return int(C.stbi_write_tga(cpath(path), C.int(w), C.int(h), C.int(comp), data))
}

func (STB) ResizeU8(src unsafe.Pointer, srcW, srcH, srcStride int,
	dst unsafe.Pointer, dstW, dstH, dstStride int, comp int) int {
	return int(C.stbir_resize_uint8(
		(*C.uchar)(src), C.int(srcW), C.int(srcH), C.int(srcStride),
		(*C.uchar)(dst), C.int(dstW), C.int(dstH), C.int(dstStride),
		C.int(comp),
	))
}
