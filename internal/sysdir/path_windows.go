package sysdir

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Largest path GetTempPath can return,
// in UTF-16 code units including the terminating NUL.
const _maxPathLen = 32767

func path() (string, error) {
	// GetTempPath consults %TMP%, %TEMP%, %USERPROFILE%,
	// and the Windows directory, in that order.
	// It reports the required buffer size when the result
	// doesn't fit, so at most one retry is needed.
	buf := make([]uint16, windows.MAX_PATH+1)
	for {
		n, err := windows.GetTempPath(uint32(len(buf)), &buf[0])
		switch {
		case err != nil:
			return "", fmt.Errorf("%w: %w", ErrUnexpected, err)

		case n == 0:
			// Zero length with no error code:
			// the API failed without telling us why.
			return "", ErrUnexpected

		case int(n) <= len(buf):
			return trimSeparator(utf16ToString(buf[:n])), nil

		case n > _maxPathLen:
			return "", ErrNameTooLong
		}

		buf = make([]uint16, n)
	}
}

// trimSeparator drops the trailing backslash GetTempPath appends,
// unless the path is a bare drive root such as `C:\`.
func trimSeparator(dir string) string {
	if len(dir) > 3 && dir[len(dir)-1] == '\\' {
		dir = dir[:len(dir)-1]
	}
	return dir
}
