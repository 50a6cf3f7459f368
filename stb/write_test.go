package stb

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePassesPackedGeometry(t *testing.T) {
	f := useFake(t, &fakeSurface{writeCode: 1})
	img := Build(make([]uint8, 5*2*4), 5, 2, 4)

	require.NoError(t, WritePNG("out.png", img))
	require.NoError(t, WriteJPG("out.jpg", img, 90))
	require.NoError(t, WriteBMP("out.bmp", img))
	require.NoError(t, WriteTGA("out.tga", img))

	require.Len(t, f.writes, 4)
	for i, want := range []Format{PNG, JPEG, BMP, TGA} {
		w := f.writes[i]
		assert.Equal(t, want, w.format)
		assert.Equal(t, 5, w.w)
		assert.Equal(t, 2, w.h)
		assert.Equal(t, 4, w.comp)
		assert.Equal(t, unsafe.Pointer(&img.Buffer()[0]), w.data)
	}
	assert.Equal(t, 20, f.writes[0].extra, "png stride is width*components")
	assert.Equal(t, 90, f.writes[1].extra, "jpeg receives the quality")
	assert.Equal(t, append([]byte("out.tga"), 0), f.writes[3].path)
}

func TestWriteFailureCode(t *testing.T) {
	useFake(t, &fakeSurface{writeCode: 0})
	img := Build([]uint8{1, 1, 1}, 1, 1, 3)

	tests := []struct {
		write func() error
		msg   string
	}{
		{func() error { return WritePNG("x.png", img) }, "write png failed"},
		{func() error { return WriteJPG("x.jpg", img, 100) }, "write jpg failed"},
		{func() error { return WriteBMP("x.bmp", img) }, "write bmp failed"},
		{func() error { return WriteTGA("x.tga", img) }, "write tga failed"},
	}
	for _, tt := range tests {
		err := tt.write()
		var stbErr *Error
		require.True(t, errors.As(err, &stbErr))
		assert.Equal(t, WriteFailed, stbErr.Code)
		assert.Equal(t, tt.msg, stbErr.Msg)
	}
}

func TestWriteValidatesBeforeNativeCall(t *testing.T) {
	f := useFake(t, &fakeSurface{writeCode: 1})

	// A short buffer must never reach the encoder.
	short := &Image[uint8]{info: ImageInfo{Width: 2, Height: 2, Components: 3}, buf: make([]uint8, 11)}
	err := WritePNG("x.png", short)
	assert.True(t, errors.Is(err, ErrWriteFailed))

	empty := &Image[uint8]{info: ImageInfo{Width: 0, Height: 2, Components: 3}}
	assert.True(t, errors.Is(WriteBMP("x.bmp", empty), ErrWriteFailed))

	fiveChannels := Build(make([]uint8, 5), 1, 1, 5)
	assert.True(t, errors.Is(WriteTGA("x.tga", fiveChannels), ErrWriteFailed))

	assert.True(t, errors.Is(WritePNG("x.png", nil), ErrWriteFailed))

	ok := Build([]uint8{1, 1, 1}, 1, 1, 3)
	assert.True(t, errors.Is(WriteJPG("x.jpg", ok, 0), ErrWriteFailed))
	assert.True(t, errors.Is(WriteJPG("x.jpg", ok, 101), ErrWriteFailed))
	assert.True(t, errors.Is(WritePNG("x\x00.png", ok), ErrFileNotExist))
	assert.True(t, errors.Is(WriteTGA("\xff.tga", ok), ErrInvalidUtf8))

	assert.Empty(t, f.writes)
}

func TestWriteDispatchesByFormat(t *testing.T) {
	f := useFake(t, &fakeSurface{writeCode: 1})
	img := Build([]uint8{1, 1, 1}, 1, 1, 3)

	for _, format := range Formats {
		require.NoError(t, Write("x", img, format, 75))
	}
	require.Len(t, f.writes, len(Formats))
	for i, format := range Formats {
		assert.Equal(t, format, f.writes[i].format)
	}

	err := Write("x.gif", img, Format("gif"), 75)
	assert.True(t, errors.Is(err, ErrWriteFailed))
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"png":  PNG,
		".PNG": PNG,
		"jpg":  JPEG,
		"jpeg": JPEG,
		".bmp": BMP,
		"TGA":  TGA,
	}
	for in, want := range tests {
		got, ok := ParseFormat(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseFormat("gif")
	assert.False(t, ok)

	got, ok := FormatFromPath("/out/resize_downsample_3.jpg")
	assert.True(t, ok)
	assert.Equal(t, JPEG, got)
	_, ok = FormatFromPath("/out/noext")
	assert.False(t, ok)
}
