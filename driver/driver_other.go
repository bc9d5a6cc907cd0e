//go:build !linux

package driver

import "errors"

// Open is only implemented for linux, where the libEGL/libGLESv2 sonames
// this package looks for are a stable ABI. Other platforms need their own
// loader (a libGLESv2.dll lookup via LoadLibrary on Windows, or an
// EGL/ANGLE bundle path on darwin) which is a straightforward extension of
// the same purego.Dlopen/RegisterLibFunc pattern but is not wired up here.
func Open() (NativeDriver, error) {
	return nil, errors.New("driver: no NativeDriver implementation for this platform")
}
