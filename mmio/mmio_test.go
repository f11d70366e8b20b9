package mmio_test

import (
	"testing"

	"github.com/google/arm-gic/fake"
	"github.com/google/arm-gic/mmio"
)

func TestOffsetWindow(t *testing.T) {
	parent := fake.NewMemory("parent", 0x1000)
	w := mmio.Offset(parent, 0x800, 0x100)

	if w.Size() != 0x100 {
		t.Errorf("window size = %#x, want 0x100", w.Size())
	}

	w.Write32(0x10, 0xcafe)
	if got := parent.Peek32(0x810); got != 0xcafe {
		t.Errorf("parent at 0x810 = %#x, want 0xcafe", got)
	}

	parent.Poke64(0x820, 0xdeadbeef)
	if got := w.Read64(0x20); got != 0xdeadbeef {
		t.Errorf("window Read64(0x20) = %#x, want 0xdeadbeef", got)
	}
}

func TestOffsetWindowBounds(t *testing.T) {
	parent := fake.NewMemory("parent", 0x1000)

	mustPanic(t, "window past parent", func() { mmio.Offset(parent, 0xf00, 0x200) })
	mustPanic(t, "window overflow", func() { mmio.Offset(parent, ^uint64(0), 8) })

	w := mmio.Offset(parent, 0, 0x10)
	mustPanic(t, "access past window", func() { w.Read32(0x10) })
	mustPanic(t, "misaligned access", func() { w.Read32(2) })
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
