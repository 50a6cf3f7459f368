package stb

// ResizeU8 resamples src to dstW x dstH, keeping its component count.
//
// Zero dimensions are passed through to the native resizer; callers should
// not rely on the result.
func ResizeU8(src *Image[uint8], dstW, dstH int) (*Image[uint8], error) {
	if src == nil {
		return nil, newError(ResizeFailed, "nil source image")
	}
	if dstW < 0 || dstH < 0 {
		return nil, newError(ResizeFailed, "negative target size %dx%d", dstW, dstH)
	}

	info := ImageInfo{Width: dstW, Height: dstH, Components: src.info.Components}
	buf := make([]uint8, info.Len())

	code := surface.ResizeU8(
		bufferPtr(src.buf), src.info.Width, src.info.Height, src.info.Stride(),
		bufferPtr(buf), info.Width, info.Height, info.Stride(),
		info.Components,
	)
	if code != 1 {
		return nil, newError(ResizeFailed, "resize failed")
	}
	return &Image[uint8]{info: info, buf: buf}, nil
}
