// Package must provides runtime assertions.
// Violation of these assertions indicates a program fault,
// and should cause a crash to prevent operating with invalid data.
package must

import "fmt"

// NotBef panics if b is true.
func NotBef(b bool, format string, args ...any) {
	if b {
		panicErrorf(format, args...)
	}
}

// BeGreaterThanf panics if a <= b.
func BeGreaterThanf[T interface {
	~int | ~int64 | ~uint | ~uint64 | ~float64
}](a, b T, format string, args ...any) {
	if a <= b {
		panicErrorf("%v\nwant a > b\na = %v\nb = %v",
			fmt.Errorf(format, args...), a, b)
	}
}

func panicErrorf(format string, args ...any) {
	panic(fmt.Errorf(format, args...))
}
