// Package glenum holds raw desktop-GL token values that the emulation
// layer needs to compare against but that github.com/go-gl/gl's core-profile
// binding does not export (compatibility-only enums like GL_TEXTURE_1D,
// or newer query-object enums a v4.1 binding predates). Values are taken
// verbatim from the Khronos GL/GLES registry so a caller's desktop-GL
// constant compares equal to ours regardless of which header it came from.
package glenum

const (
	// Primitive modes absorbed by the immediate-mode engine.
	Quads     = 0x0007
	QuadStrip = 0x0008
	Polygon   = 0x0009

	// Fixed-function / compatibility-profile tokens the state shadow absorbs.
	Texture1D = 0x0DE0

	// State-shadow toggles with ES-divergent semantics.
	DepthClamp                = 0x864F
	TextureCubeMapSeamless    = 0x884F
	ProgramPointSize          = 0x8642
	PointSprite               = 0x8861
	ClipDistance0             = 0x3000
	ClipDistance1             = 0x3001
	ClipDistance2             = 0x3002
	ClipDistance3             = 0x3003
	ClipDistance4             = 0x3004
	ClipDistance5             = 0x3005
	ClipDistance6             = 0x3006
	ClipDistance7             = 0x3007
	MaxClipDistances          = 0x0D32
	PolygonModeToken          = 0x0B40
	ProvokingVertex           = 0x8E4F
	FirstVertexConvention     = 0x8E4D
	LastVertexConvention      = 0x8E4E
	ClipOrigin                = 0x935C
	ClipDepthMode             = 0x935D
	LowerLeft                 = 0x8CA1
	UpperLeft                 = 0x8CA2
	NegativeOneToOne          = 0x935E
	ZeroToOne                 = 0x935F

	// glPolygonMode fill modes.
	Point = 0x1B00
	Line  = 0x1B01
	Fill  = 0x1B02

	// Draw/read buffer selectors.
	Front     = 0x0404
	FrontLeft = 0x0400
	BackLeft  = 0x0402
	Back      = 0x0405

	// Query-object targets and result modes.
	SamplesPassed        = 0x8914
	AnySamplesPassed     = 0x8C2F
	PrimitivesGenerated  = 0x8C87
	QueryResult          = 0x8866
	QueryResultAvailable = 0x8867
	QueryResultNoWait    = 0x9194
	Timestamp            = 0x8E28

	// Program binary (core since GL 4.1 / ARB_get_program_binary).
	ProgramBinaryLength = 0x8741
	LinkStatus          = 0x8B82
)
