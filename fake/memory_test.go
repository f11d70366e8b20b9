package fake

import (
	"testing"

	"github.com/google/arm-gic/mmio"
	"github.com/google/arm-gic/sysreg"
)

func testLayout() *mmio.Layout {
	return mmio.NewLayout("test block", 0x40, []mmio.Field{
		{Name: "CTRL", Offset: 0x00, Width: 4, Count: 1, Access: mmio.ReadWrite},
		{Name: "STAT", Offset: 0x08, Width: 4, Count: 1, Access: mmio.ReadOnly},
		{Name: "KICK", Offset: 0x0C, Width: 4, Count: 1, Access: mmio.WriteOnly},
	})
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

func TestMemoryLayoutEnforcement(t *testing.T) {
	m := NewMemoryWithLayout(testLayout())

	m.Write32(0x00, 7)
	if got := m.Read32(0x00); got != 7 {
		t.Errorf("Read32(CTRL) = %d, want 7", got)
	}

	mustPanic(t, "write to read-only register", func() { m.Write32(0x08, 1) })
	mustPanic(t, "read of write-only register", func() { m.Read32(0x0C) })
	mustPanic(t, "access to reserved offset", func() { m.Read32(0x10) })

	// Peek and Poke bypass the layout so tests can arrange and observe
	// any state.
	m.Poke32(0x08, 0xbeef)
	if got := m.Peek32(0x08); got != 0xbeef {
		t.Errorf("Peek32(STAT) = %#x, want 0xbeef", got)
	}
}

func TestMemoryWriteHook(t *testing.T) {
	m := NewMemory("block", 0x40)

	var offsets []uint64
	m.SetWriteHook(func(m *Memory, offset uint64, width uint32) {
		offsets = append(offsets, offset)
		// Model a self-clearing kick bit.
		if offset == 0x0C {
			m.Poke32(0x0C, 0)
		}
	})

	m.Write32(0x00, 1)
	m.Write32(0x0C, 1)
	if len(offsets) != 2 || offsets[0] != 0x00 || offsets[1] != 0x0C {
		t.Errorf("hook saw offsets %v, want [0x0 0xc]", offsets)
	}
	if got := m.Peek32(0x0C); got != 0 {
		t.Errorf("kick register = %d, want 0 after hook cleared it", got)
	}

	// Pokes do not trigger the hook.
	m.Poke32(0x00, 2)
	if len(offsets) != 2 {
		t.Errorf("hook ran on Poke32")
	}
}

func TestMemoryBounds(t *testing.T) {
	m := NewMemory("block", 0x10)
	mustPanic(t, "out-of-bounds read", func() { m.Read32(0x10) })
	mustPanic(t, "misaligned read", func() { m.Read32(0x02) })
	mustPanic(t, "misaligned 64-bit read", func() { m.Read64(0x04) })
}

func TestSystemRegisters(t *testing.T) {
	s := NewSystemRegisters()

	s.Write(sysreg.ICC_PMR_EL1, 0xff)
	s.Write(sysreg.ICC_IGRPEN1_EL1, 1)
	if got := s.Read(sysreg.ICC_PMR_EL1); got != 0xff {
		t.Errorf("Read(ICC_PMR_EL1) = %#x, want 0xff", got)
	}

	writes := s.Writes()
	if len(writes) != 2 {
		t.Fatalf("got %d writes, want 2", len(writes))
	}
	if writes[0].Register != sysreg.ICC_PMR_EL1 || writes[0].Value != 0xff {
		t.Errorf("writes[0] = %v/%#x", writes[0].Register, writes[0].Value)
	}
	if writes[1].Register != sysreg.ICC_IGRPEN1_EL1 || writes[1].Value != 1 {
		t.Errorf("writes[1] = %v/%#x", writes[1].Register, writes[1].Value)
	}

	// Set arranges state without recording a write.
	s.Set(sysreg.ICC_IAR1_EL1, 33)
	if got := s.Read(sysreg.ICC_IAR1_EL1); got != 33 {
		t.Errorf("Read(ICC_IAR1_EL1) = %d, want 33", got)
	}
	if len(s.Writes()) != 2 {
		t.Errorf("Set recorded a write")
	}
}

func TestSystemRegistersReadHook(t *testing.T) {
	s := NewSystemRegisters()

	// Model the acknowledge register returning "no pending interrupt"
	// once the stored value has been read.
	consumed := false
	s.SetReadHook(func(r sysreg.Register, stored uint64) uint64 {
		if r != sysreg.ICC_IAR1_EL1 {
			return stored
		}
		if consumed {
			return 1023
		}
		consumed = true
		return stored
	})

	s.Set(sysreg.ICC_IAR1_EL1, 42)
	if got := s.Read(sysreg.ICC_IAR1_EL1); got != 42 {
		t.Errorf("first read = %d, want 42", got)
	}
	if got := s.Read(sysreg.ICC_IAR1_EL1); got != 1023 {
		t.Errorf("second read = %d, want 1023", got)
	}
	// Get bypasses the hook.
	if got := s.Get(sysreg.ICC_IAR1_EL1); got != 42 {
		t.Errorf("Get = %d, want 42", got)
	}
}
