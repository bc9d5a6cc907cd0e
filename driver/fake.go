package driver

// Fake is a NativeDriver double for tests: it serves symbols from two maps,
// standing in for eglGetProcAddress and the ES/ES2 driver libraries, so the
// resolver's suffix-retry logic can be exercised without a real display.
type Fake struct {
	// ProcAddrs simulates what eglGetProcAddress would resolve (step 2).
	ProcAddrs map[string]uintptr
	// Symbols simulates direct symbol lookup in the ES driver libraries
	// (step 3); Fake does not distinguish the primary/secondary library,
	// since the resolver only cares that *some* symbol table answered.
	Symbols map[string]uintptr

	Renderer string
}

func NewFake() *Fake {
	return &Fake{
		ProcAddrs: map[string]uintptr{},
		Symbols:   map[string]uintptr{},
	}
}

func (f *Fake) ProcAddress(name string) uintptr { return f.ProcAddrs[name] }
func (f *Fake) Symbol(name string) uintptr      { return f.Symbols[name] }
func (f *Fake) RendererString() string          { return f.Renderer }
func (f *Fake) Close() error                    { return nil }
