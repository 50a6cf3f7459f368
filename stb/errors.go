package stb

import "fmt"

// ErrCode categorizes an Error.
type ErrCode int

const (
	// FileNotExist reports a path that cannot be handed to the native
	// library, e.g. one carrying an interior NUL byte.
	FileNotExist ErrCode = iota + 1
	// InvalidUtf8 reports a path that is not valid UTF-8.
	InvalidUtf8
	// LoadFailed reports a decode that returned no buffer.
	LoadFailed
	// WriteFailed reports an encode that returned a failure code, or an
	// image whose geometry does not describe its buffer.
	WriteFailed
	// ResizeFailed reports a resize that returned a failure code.
	ResizeFailed
)

func (c ErrCode) String() string {
	switch c {
	case FileNotExist:
		return "file_not_exist"
	case InvalidUtf8:
		return "invalid_utf8"
	case LoadFailed:
		return "load_failed"
	case WriteFailed:
		return "write_failed"
	case ResizeFailed:
		return "resize_failed"
	default:
		return fmt.Sprintf("ErrCode(%d)", int(c))
	}
}

// Error is returned by every operation in this package.
type Error struct {
	Code ErrCode
	Msg  string
}

func newError(code ErrCode, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "stb: " + e.Code.String()
	}
	return "stb: " + e.Code.String() + ": " + e.Msg
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is.
var (
	ErrFileNotExist = &Error{Code: FileNotExist}
	ErrInvalidUtf8  = &Error{Code: InvalidUtf8}
	ErrLoadFailed   = &Error{Code: LoadFailed}
	ErrWriteFailed  = &Error{Code: WriteFailed}
	ErrResizeFailed = &Error{Code: ResizeFailed}
)
