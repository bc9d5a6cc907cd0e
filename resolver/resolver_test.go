package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prismgl/driver"
)

func TestGetProcAddressPrefersOverrideTable(t *testing.T) {
	fake := driver.NewFake()
	fake.ProcAddrs["glBegin"] = 0xAAAA

	r := New(fake)
	r.RegisterOverride("glBegin", 0xBEEF)

	assert.Equal(t, uintptr(0xBEEF), r.GetProcAddress("glBegin"))
}

func TestGetProcAddressFallsBackToEGL(t *testing.T) {
	fake := driver.NewFake()
	fake.ProcAddrs["glDrawElements"] = 0x1234

	r := New(fake)
	assert.Equal(t, uintptr(0x1234), r.GetProcAddress("glDrawElements"))
}

func TestGetProcAddressFallsBackToDirectSymbol(t *testing.T) {
	fake := driver.NewFake()
	fake.Symbols["glClear"] = 0x5678

	r := New(fake)
	assert.Equal(t, uintptr(0x5678), r.GetProcAddress("glClear"))
}

func TestGetProcAddressSuffixRetryAppend(t *testing.T) {
	fake := driver.NewFake()
	fake.Symbols["glDrawArraysInstancedEXT"] = 0x9999

	r := New(fake)
	assert.Equal(t, uintptr(0x9999), r.GetProcAddress("glDrawArraysInstanced"))
}

func TestGetProcAddressSuffixRetryStrip(t *testing.T) {
	fake := driver.NewFake()
	fake.ProcAddrs["glFramebufferTexture2D"] = 0x4242

	r := New(fake)
	assert.Equal(t, uintptr(0x4242), r.GetProcAddress("glFramebufferTexture2DOES"))
}

func TestGetProcAddressUnresolvedReturnsZero(t *testing.T) {
	fake := driver.NewFake()
	r := New(fake)
	assert.Equal(t, uintptr(0), r.GetProcAddress("glNoSuchFunction"))
}

func TestRegisterOverrideIsConcurrencySafe(t *testing.T) {
	fake := driver.NewFake()
	r := New(fake)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			r.RegisterOverride("glBegin", uintptr(i))
		}
		close(done)
	}()
	for i := 0; i < 1000; i++ {
		r.GetProcAddress("glBegin")
	}
	<-done
}
