//go:build !windows

package sysdir

import "os"

// Replaced in tests to control the observed environment.
var _lookupEnv = os.LookupEnv

func path() (string, error) {
	if dir, ok := _lookupEnv("TMPDIR"); ok && dir != "" {
		return dir, nil
	}
	return "/tmp", nil
}
