// Package logx is the narrow logging seam every emulation package writes
// its once-per-event warnings through (see the Error Handling Design
// section of the spec: UnresolvedSymbol, EmulationDegradation, and
// FileSystemFailure are all "log and proceed", never a panic or an error
// returned across the FFI boundary). It wraps log15 the same way
// go-ethereum/log wraps it internally, but does so against the real
// upstream package instead of vendoring a fork.
package logx

import (
	"os"

	"github.com/inconshreveable/log15"
)

// Log is the package-wide logger every prismgl subpackage writes through.
// A host replaces its handler with SetHandler; nothing here is guarded by
// a mutex because handler swaps are expected once at startup, on the
// context-owner thread, same as everything else in this layer.
var Log = log15.New("pkg", "prismgl")

func init() {
	Log.SetHandler(log15.LvlFilterHandler(log15.LvlWarn, log15.StreamHandler(os.Stderr, log15.TerminalFormat())))
}

// SetHandler replaces the destination for every warning/error this layer
// emits. Passing nil restores the default stderr handler.
func SetHandler(h log15.Handler) {
	if h == nil {
		Log.SetHandler(log15.LvlFilterHandler(log15.LvlWarn, log15.StreamHandler(os.Stderr, log15.TerminalFormat())))
		return
	}
	Log.SetHandler(h)
}
