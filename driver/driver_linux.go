//go:build linux

package driver

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"
)

// eglLibrary and the ES driver sonames this layer looks for, in the order
// libglvnd itself dispatches them (see the glvnd vendor-neutral dispatch
// library: libEGL -> libGLESv2 -> libGLESv1_CM for the ES1 fallback).
const (
	eglLibrary     = "libEGL.so.1"
	glesv2Library  = "libGLESv2.so.2"
	glesv1Library  = "libGLESv1_CM.so.1"
)

type linuxDriver struct {
	eglHandle    uintptr
	glesv2Handle uintptr
	glesv1Handle uintptr

	eglGetProcAddress func(name string) uintptr
	glGetString       func(name uint32) uintptr

	renderer string
}

// Open dlopen's libEGL and the ES driver libraries and registers the one
// EGL entry point the resolver needs directly. It never creates a display
// or context — that remains the host's SurfaceProvider's job.
func Open() (NativeDriver, error) {
	d := &linuxDriver{}

	eglHandle, err := purego.Dlopen(eglLibrary, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("driver: dlopen %s: %w", eglLibrary, err)
	}
	d.eglHandle = eglHandle
	purego.RegisterLibFunc(&d.eglGetProcAddress, eglHandle, "eglGetProcAddress")

	glesv2Handle, err := purego.Dlopen(glesv2Library, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("driver: dlopen %s: %w", glesv2Library, err)
	}
	d.glesv2Handle = glesv2Handle

	// The ES1 common-profile library is optional: some drivers omit it
	// entirely, and step 3 of the resolver simply has one fewer place to
	// look if so.
	if glesv1Handle, err := purego.Dlopen(glesv1Library, purego.RTLD_NOW|purego.RTLD_GLOBAL); err == nil {
		d.glesv1Handle = glesv1Handle
	}

	purego.RegisterLibFunc(&d.glGetString, glesv2Handle, "glGetString")
	if d.glGetString != nil {
		if ptr := d.glGetString(0x1F01); ptr != 0 { // GL_RENDERER
			d.renderer = bytePtrToString((*byte)(unsafe.Pointer(ptr)))
		}
	}

	return d, nil
}

// bytePtrToString reads a NUL-terminated C string starting at p.
func bytePtrToString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(uintptr(unsafe.Pointer(p)) + uintptr(n))) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

func (d *linuxDriver) ProcAddress(name string) uintptr {
	if d.eglGetProcAddress == nil {
		return 0
	}
	return d.eglGetProcAddress(name)
}

func (d *linuxDriver) Symbol(name string) uintptr {
	if d.glesv2Handle != 0 {
		if addr, err := purego.Dlsym(d.glesv2Handle, name); err == nil && addr != 0 {
			return addr
		}
	}
	if d.glesv1Handle != 0 {
		if addr, err := purego.Dlsym(d.glesv1Handle, name); err == nil && addr != 0 {
			return addr
		}
	}
	return 0
}

func (d *linuxDriver) RendererString() string {
	return d.renderer
}

func (d *linuxDriver) Close() error {
	var firstErr error
	for _, h := range []uintptr{d.eglHandle, d.glesv2Handle, d.glesv1Handle} {
		if h == 0 {
			continue
		}
		if err := purego.Dlclose(h); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
