package shadow

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"prismgl/glenum"
	"prismgl/logx"
)

// RemapQueryTarget translates a desktop query target that ES 3.2 has no
// direct counterpart for into the nearest ES equivalent. SAMPLES_PASSED
// and PRIMITIVES_GENERATED both become ANY_SAMPLES_PASSED; the latter
// logs a warning since it loses the exact generated-primitive count.
func RemapQueryTarget(target uint32) uint32 {
	switch target {
	case glenum.SamplesPassed:
		return glenum.AnySamplesPassed
	case glenum.PrimitivesGenerated:
		logx.Log.Warn("GL_PRIMITIVES_GENERATED has no ES 3.2 query target; remapped to GL_ANY_SAMPLES_PASSED", "target", target)
		return glenum.AnySamplesPassed
	default:
		return target
	}
}

// GetQueryObjectNoWait emulates GL_QUERY_RESULT_NO_WAIT, which ES has no
// native support for: it polls QUERY_RESULT_AVAILABLE and returns the real
// result only if the query has already completed, 0 otherwise, rather
// than blocking.
func GetQueryObjectNoWait(query uint32) uint64 {
	var available uint32
	gl.GetQueryObjectuiv(query, gl.QUERY_RESULT_AVAILABLE, &available)
	if available == 0 {
		return 0
	}
	var result uint64
	gl.GetQueryObjectui64v(query, gl.QUERY_RESULT, &result)
	return result
}

// QueryCounterTimestamp emulates glQueryCounter(query, GL_TIMESTAMP): ES
// has no timestamp queries, so this logs once and does nothing.
func QueryCounterTimestamp(query uint32) {
	logx.Log.Warn("glQueryCounter(GL_TIMESTAMP) is unsupported on ES; ignored", "query", query)
}
