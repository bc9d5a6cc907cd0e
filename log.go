package prismgl

import (
	"github.com/inconshreveable/log15"

	"prismgl/logx"
)

// Log is the package-level logger every warning named in the spec's Error
// Handling Design is emitted through. It is the same log15.Logger every
// subpackage writes to via logx.Log; it is aliased here so a host embedding
// prismgl only has one symbol to import, not one per subpackage.
var Log = logx.Log

// SetLogger replaces the destination for every warning/error prismgl (and
// the packages it wraps) emits, the one place this layer touches the
// otherwise out-of-scope logging collaborator named in the spec's Purpose
// & Scope section. Passing nil restores the default stderr handler.
func SetLogger(h log15.Handler) {
	logx.SetHandler(h)
}
