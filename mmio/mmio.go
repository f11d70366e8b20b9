// Package mmio provides access to memory-mapped device registers.
//
// A Device is a window of device memory. Every call performs exactly one
// access of the stated width: implementations must never elide, merge or
// reorder accesses, since each may have a side effect or observe
// asynchronous hardware-driven change.
//
// A live Device must not alias another live Device: hardware state
// observed through two handles at once is undefined at the hardware
// level. MapRegion enforces this for physical regions through a
// process-wide claim registry; windows created with Offset deliberately
// share their parent and are documented escape hatches.
package mmio

import "fmt"

// Device is a window of device memory addressed by byte offsets from the
// start of the window.
type Device interface {
	// Read32 performs a single 32-bit read at the given byte offset.
	Read32(offset uint64) uint32
	// Write32 performs a single 32-bit write at the given byte offset.
	Write32(offset uint64, value uint32)
	// Read64 performs a single 64-bit read at the given byte offset,
	// which must be 8-byte aligned.
	Read64(offset uint64) uint64
	// Write64 performs a single 64-bit write at the given byte offset,
	// which must be 8-byte aligned.
	Write64(offset uint64, value uint64)
	// Size returns the length of the window in bytes.
	Size() uint64
}

// window exposes a sub-range of a parent device as its own Device.
type window struct {
	parent Device
	base   uint64
	size   uint64
}

// Offset returns a view of dev covering [base, base+size). The window
// shares the parent device; the caller is responsible for keeping the
// two from being used on the same registers concurrently.
func Offset(dev Device, base, size uint64) Device {
	if base+size < base || base+size > dev.Size() {
		panic(fmt.Sprintf("mmio: window [%#x, %#x) outside device of size %#x", base, base+size, dev.Size()))
	}
	return &window{parent: dev, base: base, size: size}
}

func (w *window) check(offset uint64, width uint64) {
	if offset%width != 0 {
		panic(fmt.Sprintf("mmio: misaligned %d-byte access at offset %#x", width, offset))
	}
	if offset+width > w.size {
		panic(fmt.Sprintf("mmio: access at offset %#x outside window of size %#x", offset, w.size))
	}
}

func (w *window) Read32(offset uint64) uint32 {
	w.check(offset, 4)
	return w.parent.Read32(w.base + offset)
}

func (w *window) Write32(offset uint64, value uint32) {
	w.check(offset, 4)
	w.parent.Write32(w.base+offset, value)
}

func (w *window) Read64(offset uint64) uint64 {
	w.check(offset, 8)
	return w.parent.Read64(w.base + offset)
}

func (w *window) Write64(offset uint64, value uint64) {
	w.check(offset, 8)
	w.parent.Write64(w.base+offset, value)
}

func (w *window) Size() uint64 {
	return w.size
}

var _ Device = (*window)(nil)
