package mmio

import (
	"runtime"
	"strings"
	"testing"
	"unsafe"
)

func TestClaimRegistry(t *testing.T) {
	if err := claimRange(0x1000, 0x1000); err != nil {
		t.Fatalf("first claim failed: %v", err)
	}
	defer releaseRange(0x1000)

	overlaps := []struct {
		base uintptr
		size uint64
	}{
		{0x1000, 0x1000}, // identical
		{0x0800, 0x1000}, // overlaps the start
		{0x1800, 0x1000}, // overlaps the end
		{0x0800, 0x2000}, // encloses
		{0x1400, 0x0100}, // enclosed
	}
	for _, o := range overlaps {
		err := claimRange(o.base, o.size)
		if err == nil {
			releaseRange(o.base)
			t.Errorf("claim [%#x, %#x) succeeded over a claimed range", o.base, o.base+uintptr(o.size))
			continue
		}
		if !strings.Contains(err.Error(), "overlaps") {
			t.Errorf("claim [%#x, %#x): %v", o.base, o.base+uintptr(o.size), err)
		}
	}

	// Adjacent ranges do not overlap.
	if err := claimRange(0x2000, 0x1000); err != nil {
		t.Errorf("adjacent claim failed: %v", err)
	}
	releaseRange(0x2000)

	// A released range can be claimed again.
	releaseRange(0x1000)
	if err := claimRange(0x1000, 0x1000); err != nil {
		t.Errorf("re-claim after release failed: %v", err)
	}
}

func TestMapRegionValidation(t *testing.T) {
	if _, err := MapRegion(0, 0x1000); err == nil {
		t.Errorf("MapRegion accepted a zero base")
	}
	if _, err := MapRegion(0x1000, 0); err == nil {
		t.Errorf("MapRegion accepted a zero size")
	}
	if _, err := MapRegion(0x1002, 0x1000); err == nil {
		t.Errorf("MapRegion accepted a misaligned base")
	}
}

func TestRegionAccess(t *testing.T) {
	// Ordinary memory stands in for the device mapping; MapRegion does
	// not care what the address points at.
	backing := make([]uint64, 8)
	base := uintptr(unsafe.Pointer(&backing[0]))

	r, err := MapRegion(base, uint64(len(backing)*8))
	if err != nil {
		t.Fatalf("MapRegion failed: %v", err)
	}
	defer releaseRange(base)
	defer runtime.KeepAlive(backing)

	r.Write32(0, 0x12345678)
	r.Write32(4, 0x9abcdef0)
	if got := r.Read32(0); got != 0x12345678 {
		t.Errorf("Read32(0) = %#x, want 0x12345678", got)
	}
	if got := backing[0]; got != 0x9abcdef0_12345678 {
		t.Errorf("backing[0] = %#x, want 0x9abcdef012345678", got)
	}

	r.Write64(8, 0xc0ffee)
	if got := r.Read64(8); got != 0xc0ffee {
		t.Errorf("Read64(8) = %#x, want 0xc0ffee", got)
	}

	mustPanic(t, "misaligned Read32", func() { r.Read32(2) })
	mustPanic(t, "misaligned Read64", func() { r.Read64(4) })
	mustPanic(t, "out-of-bounds Read32", func() { r.Read32(uint64(len(backing) * 8)) })

	// The backing range is claimed while the region lives.
	if _, err := MapRegion(base, 8); err == nil {
		t.Errorf("MapRegion aliased a live region")
	}
}
