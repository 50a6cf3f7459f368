package stb

import (
	"strings"
	"unicode/utf8"
)

// CheckPath converts path into the NUL-terminated byte sequence the native
// library expects.
func CheckPath(path string) ([]byte, error) {
	if !utf8.ValidString(path) {
		return nil, newError(InvalidUtf8, "path is not valid utf8")
	}
	if strings.IndexByte(path, 0) >= 0 {
		return nil, newError(FileNotExist, "path contains null character")
	}
	out := make([]byte, len(path)+1)
	copy(out, path)
	return out, nil
}
