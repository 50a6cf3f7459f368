package stb

import (
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/nullian/stb-go/internal/native"
)

// decodeMu serializes native decode calls together with the read of the
// failure reason they may set.
var decodeMu sync.Mutex

// LoadU8 decodes the file at path into 8-bit samples.
//
// desired selects the output channel count: 0 keeps the file's own count,
// 1..4 converts to grey, grey+alpha, RGB or RGBA.
func LoadU8(path string, desired int) (*Image[uint8], error) {
	return load[uint8](native.U8, path, desired)
}

// LoadU16 decodes the file at path into 16-bit samples. 8-bit sources are
// widened, so 0xff becomes 0xffff.
func LoadU16(path string, desired int) (*Image[uint16], error) {
	return load[uint16](native.U16, path, desired)
}

// LoadF32 decodes the file at path into float samples in [0,1] for LDR
// sources.
func LoadF32(path string, desired int) (*Image[float32], error) {
	return load[float32](native.F32, path, desired)
}

func load[T Sample](kind native.Sample, path string, desired int) (*Image[T], error) {
	cpath, err := CheckPath(path)
	if err != nil {
		return nil, err
	}
	if desired < 0 || desired > 4 {
		return nil, newError(LoadFailed, "unsupported channel count %d", desired)
	}

	decodeMu.Lock()
	defer decodeMu.Unlock()

	data, w, h, comp := surface.Load(kind, cpath, desired)
	if data == nil {
		Logger().Info("image buffer is null",
			zap.String("path", path),
			zap.Stringer("sample", kind),
			zap.Int("desired", desired))
		return nil, failure()
	}

	if desired != 0 {
		comp = desired
	}
	return adopt[T](data, ImageInfo{Width: w, Height: h, Components: comp}), nil
}

// Probe reads the geometry of the file at path without decoding pixels.
// Components is the file's own channel count.
func Probe(path string) (ImageInfo, error) {
	cpath, err := CheckPath(path)
	if err != nil {
		return ImageInfo{}, err
	}

	decodeMu.Lock()
	defer decodeMu.Unlock()

	w, h, comp, ok := surface.Info(cpath)
	if !ok {
		return ImageInfo{}, failure()
	}
	return ImageInfo{Width: w, Height: h, Components: comp}, nil
}

// failure turns the native failure reason into a LoadFailed error. Callers
// must hold decodeMu.
func failure() error {
	reason, ok := surface.FailureReason()
	switch {
	case !ok:
		return newError(LoadFailed, "unknown failure")
	case !utf8.ValidString(reason):
		return newError(LoadFailed, "invalid message")
	default:
		return &Error{Code: LoadFailed, Msg: reason}
	}
}
