// Package shader rewrites desktop GLSL (110–460, core or compatibility) into
// GLSL ES 3.20 source the ES driver can compile. The rewrite is a fixed
// pipeline of plain text substitutions — never a real lexer/parser — which
// is knowingly approximate (see the Design Notes: a `#define texture2D` or
// an identifier that merely contains one of these substrings can be
// mis-handled). That tradeoff is preserved deliberately rather than pulling
// in a GLSL front end for a shim whose job is "good enough to run the
// common case", not conformance.
package shader

import (
	"fmt"
	"regexp"
	"strings"
)

// Stage is the shader stage being translated; legacy IO rewriting and the
// fragment-only precision prelude both depend on it.
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

// TargetVersion is the GLSL ES version every successful translation emits.
const TargetVersion = 320

// maxSourceBytes bounds translator input; anything larger fails fast rather
// than running an unbounded number of substitutions over it.
const maxSourceBytes = 256 * 1024

// Result is the outcome of a Translate call. Error is populated only when
// Success is false, and is capped at 512 bytes per the spec.
type Result struct {
	Source          string
	Success         bool
	Error           string
	OriginalVersion int
	TargetVersion   int
}

func fail(format string, args ...interface{}) Result {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > 512 {
		msg = msg[:512]
	}
	return Result{Error: msg}
}

var versionDirective = regexp.MustCompile(`(?m)^#version\s+(\d+)\s*(core|compatibility)?\s*$`)

var alreadyESPrefixes = []string{"#version 300 es", "#version 310 es", "#version 320 es"}

// Translate runs the full desktop-to-ES rewrite pipeline described in the
// spec's GLSL source translator component. It never mutates the caller's
// string; it only ever builds new ones.
func Translate(source string, stage Stage) Result {
	if len(source) == 0 {
		return fail("empty shader source")
	}
	if len(source) > maxSourceBytes {
		return fail("shader source exceeds %d bytes (got %d)", maxSourceBytes, len(source))
	}

	for _, prefix := range alreadyESPrefixes {
		if strings.HasPrefix(source, prefix) {
			return Result{
				Source:          source,
				Success:         true,
				OriginalVersion: TargetVersion,
				TargetVersion:   TargetVersion,
			}
		}
	}

	originalVersion := detectVersion(source)

	out := rewriteVersion(source)
	out = rewriteExtensions(out)
	out = insertPrecisionPrelude(out, stage)
	out = rewriteSamplers(out)
	out = rewriteBuiltins(out)
	out = rewriteDoublePrecision(out)
	if originalVersion <= 120 {
		out = rewriteLegacyIO(out, stage)
	}

	return Result{
		Source:          out,
		Success:         true,
		OriginalVersion: originalVersion,
		TargetVersion:   TargetVersion,
	}
}

// detectVersion returns the #version number in source, or 110 (GLSL's
// original default) if no directive is present.
func detectVersion(source string) int {
	m := versionDirective.FindStringSubmatch(source)
	if m == nil {
		return 110
	}
	n := 0
	fmt.Sscanf(m[1], "%d", &n)
	return n
}

func rewriteVersion(source string) string {
	if versionDirective.MatchString(source) {
		return versionDirective.ReplaceAllString(source, "#version 320 es")
	}
	return "#version 320 es\n" + source
}

var extensionDirective = regexp.MustCompile(`(?m)^#extension\s+(\w+)\s*:\s*(\w+)\s*$`)

func rewriteExtensions(source string) string {
	return extensionDirective.ReplaceAllStringFunc(source, func(line string) string {
		m := extensionDirective.FindStringSubmatch(line)
		name, behavior := m[1], m[2]
		rewrite, ok := extensionTable[name]
		if !ok {
			return line
		}
		if rewrite.esEquivalent != "" {
			return fmt.Sprintf("#extension %s : %s", rewrite.esEquivalent, behavior)
		}
		return fmt.Sprintf("// %s removed: %s", name, rewrite.note)
	})
}

// fragmentSamplerPrecisions are the sampler/image types that need an
// explicit `precision highp <type>;` declaration in fragment shaders; the
// vertex stage only needs the two scalar precisions below.
var fragmentSamplerPrecisions = []string{
	"sampler2D", "sampler3D", "samplerCube", "sampler2DArray",
	"sampler2DShadow", "samplerCubeShadow", "sampler2DArrayShadow",
	"isampler2D", "isampler3D", "isamplerCube",
	"usampler2D", "usampler3D", "usamplerCube",
	"image2D", "iimage2D", "uimage2D",
}

func insertPrecisionPrelude(source string, stage Stage) string {
	var b strings.Builder
	b.WriteString("precision highp float;\n")
	b.WriteString("precision highp int;\n")
	if stage == Fragment {
		for _, t := range fragmentSamplerPrecisions {
			b.WriteString("precision highp ")
			b.WriteString(t)
			b.WriteString(";\n")
		}
	}
	prelude := b.String()

	idx := strings.IndexByte(source, '\n')
	if idx == -1 {
		return source + "\n" + prelude
	}
	return source[:idx+1] + prelude + source[idx+1:]
}

var samplerRewrites = [...][2]string{
	{"isampler1D", "isampler2D"},
	{"usampler1D", "usampler2D"},
	{"sampler1D", "sampler2D"},
}

func rewriteSamplers(source string) string {
	for _, r := range samplerRewrites {
		source = strings.ReplaceAll(source, r[0], r[1])
	}
	return source
}

var builtinRewrites = [...][2]string{
	{"texture2DProj(", "textureProj("},
	{"texture2DLod(", "textureLod("},
	{"texture3DLod(", "textureLod("},
	{"textureCubeLod(", "textureLod("},
	{"texture2DGrad(", "textureGrad("},
	{"shadow2DProj(", "textureProj("},
	{"texture2D(", "texture("},
	{"texture3D(", "texture("},
	{"textureCube(", "texture("},
	{"shadow2D(", "texture("},
	{"noperspective ", "/* noperspective */ "},
}

func rewriteBuiltins(source string) string {
	for _, r := range builtinRewrites {
		source = strings.ReplaceAll(source, r[0], r[1])
	}
	return source
}

var (
	dmatRect = regexp.MustCompile(`\bdmat(\d)x(\d)\b`)
	dmatSq   = regexp.MustCompile(`\bdmat(\d)\b`)
	dvec     = regexp.MustCompile(`\bdvec(\d)\b`)
)

func rewriteDoublePrecision(source string) string {
	source = dmatRect.ReplaceAllString(source, "mat$1x$2")
	source = dmatSq.ReplaceAllString(source, "mat$1")
	source = dvec.ReplaceAllString(source, "vec$1")
	return source
}

var (
	attributeWord = regexp.MustCompile(`\battribute\b`)
	varyingWord   = regexp.MustCompile(`\bvarying\b`)
	fragColorWord = regexp.MustCompile(`\bgl_FragColor\b`)
	fragColorDecl = regexp.MustCompile(`\bout\s+vec4\s+prismgl_FragColor\b`)
)

// rewriteLegacyIO handles GLSL <= 1.20's attribute/varying storage
// qualifiers and the implicit gl_FragColor output, which ES 3.x has no
// equivalent for: every fragment shader must declare its own output.
func rewriteLegacyIO(source string, stage Stage) string {
	switch stage {
	case Vertex:
		source = attributeWord.ReplaceAllString(source, "in")
		source = varyingWord.ReplaceAllString(source, "out")
	case Fragment:
		source = varyingWord.ReplaceAllString(source, "in")
		if fragColorWord.MatchString(source) && !fragColorDecl.MatchString(source) {
			source = fragColorWord.ReplaceAllString(source, "prismgl_FragColor")
			source = injectAfterPrecisionPrelude(source, "out vec4 prismgl_FragColor;\n")
		}
	}
	return source
}

// injectAfterPrecisionPrelude inserts text right after the last
// `precision ...;` line at the top of the file, which is always where
// insertPrecisionPrelude leaves off.
func injectAfterPrecisionPrelude(source, text string) string {
	lines := strings.SplitAfter(source, "\n")
	insertAt := 0
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "precision ") {
			insertAt = i + 1
		}
	}
	var b strings.Builder
	for i, line := range lines {
		if i == insertAt {
			b.WriteString(text)
		}
		b.WriteString(line)
	}
	if insertAt >= len(lines) {
		b.WriteString(text)
	}
	return b.String()
}
