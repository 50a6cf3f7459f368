package stb

import (
	"path/filepath"
	"strings"
)

// Format is an output file format.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	BMP  Format = "bmp"
	TGA  Format = "tga"
)

// Formats lists every supported output format.
var Formats = []Format{PNG, JPEG, BMP, TGA}

// ParseFormat maps a format name or file extension (with or without the
// leading dot) to a Format.
func ParseFormat(name string) (Format, bool) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return PNG, true
	case "jpg", "jpeg":
		return JPEG, true
	case "bmp":
		return BMP, true
	case "tga":
		return TGA, true
	}
	return "", false
}

// FormatFromPath picks a Format from the extension of path.
func FormatFromPath(path string) (Format, bool) {
	return ParseFormat(filepath.Ext(path))
}

// WritePNG encodes img as PNG at path, creating or truncating the file.
func WritePNG(path string, img *Image[uint8]) error {
	cpath, err := prepareWrite(path, img)
	if err != nil {
		return err
	}
	i := img.info
	return writeStatus(PNG, surface.WritePNG(cpath, i.Width, i.Height, i.Components, bufferPtr(img.buf), i.Stride()))
}

// WriteJPG encodes img as baseline JPEG with quality in 1..100.
func WriteJPG(path string, img *Image[uint8], quality int) error {
	if quality < 1 || quality > 100 {
		return newError(WriteFailed, "jpeg quality %d out of range 1..100", quality)
	}
	cpath, err := prepareWrite(path, img)
	if err != nil {
		return err
	}
	i := img.info
	return writeStatus(JPEG, surface.WriteJPG(cpath, i.Width, i.Height, i.Components, bufferPtr(img.buf), quality))
}

// WriteBMP encodes img as uncompressed BMP.
func WriteBMP(path string, img *Image[uint8]) error {
	cpath, err := prepareWrite(path, img)
	if err != nil {
		return err
	}
	i := img.info
	return writeStatus(BMP, surface.WriteBMP(cpath, i.Width, i.Height, i.Components, bufferPtr(img.buf)))
}

// WriteTGA encodes img as TGA.
func WriteTGA(path string, img *Image[uint8]) error {
	cpath, err := prepareWrite(path, img)
	if err != nil {
		return err
	}
	i := img.info
	return writeStatus(TGA, surface.WriteTGA(cpath, i.Width, i.Height, i.Components, bufferPtr(img.buf)))
}

// Write encodes img in format f. quality is only used for JPEG.
func Write(path string, img *Image[uint8], f Format, quality int) error {
	switch f {
	case PNG:
		return WritePNG(path, img)
	case JPEG:
		return WriteJPG(path, img, quality)
	case BMP:
		return WriteBMP(path, img)
	case TGA:
		return WriteTGA(path, img)
	}
	return newError(WriteFailed, "unsupported format %q", string(f))
}

// prepareWrite checks that img's geometry describes its buffer and converts
// path for the native encoder.
func prepareWrite(path string, img *Image[uint8]) ([]byte, error) {
	if img == nil {
		return nil, newError(WriteFailed, "nil image")
	}
	i := img.info
	if i.Width <= 0 || i.Height <= 0 {
		return nil, newError(WriteFailed, "invalid dimensions %dx%d", i.Width, i.Height)
	}
	if i.Components < 1 || i.Components > 4 {
		return nil, newError(WriteFailed, "unsupported component count %d", i.Components)
	}
	if len(img.buf) != i.Len() {
		return nil, newError(WriteFailed, "buffer length %d does not match %s", len(img.buf), i)
	}
	return CheckPath(path)
}

func writeStatus(f Format, code int) error {
	if code == 1 {
		return nil
	}
	name := string(f)
	if f == JPEG {
		name = "jpg"
	}
	return newError(WriteFailed, "write %s failed", name)
}
