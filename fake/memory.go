// Package fake provides explicitly constructed, instance-scoped test
// doubles for device memory and CPU system registers. Nothing in this
// package is process-global, so concurrent tests do not interfere.
package fake

import (
	"encoding/binary"
	"fmt"

	"github.com/google/arm-gic/mmio"
)

// Memory is an mmio.Device backed by ordinary memory. With a layout
// attached it additionally enforces the block's access modes and reserved
// gaps, independent of any driver logic, and panics on a violation so the
// offending test fails loudly.
//
// Write hooks let a test model hardware-driven behaviour, such as a wake
// handshake acknowledging a request or a write-pending flag clearing.
type Memory struct {
	name      string
	data      []byte
	layout    *mmio.Layout
	writeHook func(m *Memory, offset uint64, width uint32)
}

// NewMemory returns a zeroed Memory of the given size with no layout
// attached.
func NewMemory(name string, size uint64) *Memory {
	return &Memory{name: name, data: make([]byte, size)}
}

// NewMemoryWithLayout returns a zeroed Memory sized and checked by the
// given layout.
func NewMemoryWithLayout(layout *mmio.Layout) *Memory {
	return &Memory{name: layout.Name, data: make([]byte, layout.Size), layout: layout}
}

// SetWriteHook registers fn, invoked after each write lands. The hook may
// adjust stored state with Poke32/Poke64.
func (m *Memory) SetWriteHook(fn func(m *Memory, offset uint64, width uint32)) {
	m.writeHook = fn
}

// Read32 implements mmio.Device.
func (m *Memory) Read32(offset uint64) uint32 {
	if m.layout != nil {
		if err := m.layout.CheckRead(offset, 4); err != nil {
			panic(fmt.Sprintf("fake %s: %v", m.name, err))
		}
	}
	return m.Peek32(offset)
}

// Write32 implements mmio.Device.
func (m *Memory) Write32(offset uint64, value uint32) {
	if m.layout != nil {
		if err := m.layout.CheckWrite(offset, 4); err != nil {
			panic(fmt.Sprintf("fake %s: %v", m.name, err))
		}
	}
	m.Poke32(offset, value)
	if m.writeHook != nil {
		m.writeHook(m, offset, 4)
	}
}

// Read64 implements mmio.Device.
func (m *Memory) Read64(offset uint64) uint64 {
	if m.layout != nil {
		if err := m.layout.CheckRead(offset, 8); err != nil {
			panic(fmt.Sprintf("fake %s: %v", m.name, err))
		}
	}
	return m.Peek64(offset)
}

// Write64 implements mmio.Device.
func (m *Memory) Write64(offset uint64, value uint64) {
	if m.layout != nil {
		if err := m.layout.CheckWrite(offset, 8); err != nil {
			panic(fmt.Sprintf("fake %s: %v", m.name, err))
		}
	}
	m.Poke64(offset, value)
	if m.writeHook != nil {
		m.writeHook(m, offset, 8)
	}
}

// Size implements mmio.Device.
func (m *Memory) Size() uint64 {
	return uint64(len(m.data))
}

// Peek32 reads stored state, bypassing layout checks and hooks. Tests use
// it to assert what the driver wrote.
func (m *Memory) Peek32(offset uint64) uint32 {
	m.bounds(offset, 4)
	return binary.LittleEndian.Uint32(m.data[offset:])
}

// Poke32 sets stored state, bypassing layout checks and hooks. Tests use
// it to arrange hardware state, including read-only registers.
func (m *Memory) Poke32(offset uint64, value uint32) {
	m.bounds(offset, 4)
	binary.LittleEndian.PutUint32(m.data[offset:], value)
}

// Peek64 reads stored state, bypassing layout checks and hooks.
func (m *Memory) Peek64(offset uint64) uint64 {
	m.bounds(offset, 8)
	return binary.LittleEndian.Uint64(m.data[offset:])
}

// Poke64 sets stored state, bypassing layout checks and hooks.
func (m *Memory) Poke64(offset uint64, value uint64) {
	m.bounds(offset, 8)
	binary.LittleEndian.PutUint64(m.data[offset:], value)
}

func (m *Memory) bounds(offset uint64, width uint64) {
	if offset%width != 0 {
		panic(fmt.Sprintf("fake %s: misaligned %d-byte access at offset %#x", m.name, width, offset))
	}
	if offset+width > uint64(len(m.data)) {
		panic(fmt.Sprintf("fake %s: access at offset %#x outside block of size %#x", m.name, offset, len(m.data)))
	}
}

var _ mmio.Device = (*Memory)(nil)
