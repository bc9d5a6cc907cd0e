package resolver

import "strings"

// appendSuffixes are the vendor suffixes tried by appending to name.
var appendSuffixes = []string{"OES", "EXT"}

// stripSuffixes are the vendor suffixes tried by stripping from name, when
// name already ends with one.
var stripSuffixes = []string{"EXT", "ARB", "NV", "AMD", "OES"}

// suffixCandidates returns the alternate spellings of name the suffix-retry
// step should try: name+OES, name+EXT, and, for each of EXT/ARB/NV/AMD/OES
// that name already ends with, the bare name with it stripped.
func suffixCandidates(name string) []string {
	var candidates []string
	for _, suffix := range appendSuffixes {
		candidates = append(candidates, name+suffix)
	}
	for _, suffix := range stripSuffixes {
		if strings.HasSuffix(name, suffix) {
			candidates = append(candidates, strings.TrimSuffix(name, suffix))
		}
	}
	return candidates
}

// FloorOverrides lists the entry points the spec requires the static
// override table to always serve, regardless of what the native driver
// reports for them: the immediate-mode emulation surface, the
// fixed-function matrix stack no-ops, the state-shadow-intercepted toggles,
// and glDrawArrays itself, which always routes through the batch queue so
// it can coalesce draws when draw-call batching is enabled. Documented here
// as the contract between this package and the root prismgl package, which
// binds each entry to the immediate, batch and shadow packages via
// RegisterOverride.
var FloorOverrides = []string{
	"glBegin",
	"glEnd",
	"glVertex2f", "glVertex3f", "glVertex4f",
	"glVertex2fv", "glVertex3fv", "glVertex4fv",
	"glVertex3d", "glVertex3dv",
	"glColor3f", "glColor4f", "glColor3fv", "glColor4fv",
	"glColor3ub", "glColor4ub", "glColor4ubv",
	"glColor4d", "glColor4dv",
	"glTexCoord2f", "glTexCoord2fv",
	"glNormal3f", "glNormal3fv", "glNormal3d",
	"glMatrixMode",
	"glLoadIdentity", "glLoadMatrixf", "glMultMatrixf",
	"glPushMatrix", "glPopMatrix",
	"glTranslatef", "glRotatef", "glScalef", "glFrustum", "glOrtho",
	"glEnableClientState", "glDisableClientState",
	"glPushAttrib", "glPopAttrib",
	"glPushClientAttrib", "glPopClientAttrib",
	"glLineWidth", "glPointSize",
	"glLogicOp", "glClampColor",
	"glShadeModel", "glAlphaFunc",
	"glPolygonMode", "glProvokingVertex", "glClipControl",
	"glViewport",
	"glEnable", "glDisable",
	"glGetIntegerv", "glGetFloatv", "glGetBooleanv",
	"glGetString", "glGetStringi",
	"glTexImage1D", "glGetTexImage",
	"glDrawBuffer", "glReadBuffer",
	"glDrawArrays",
	"glGenQueries", "glDeleteQueries", "glBeginQuery", "glEndQuery",
	"glGetQueryObjectuiv", "glGetQueryObjectui64v", "glQueryCounter",
}
