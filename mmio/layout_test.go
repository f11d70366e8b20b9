package mmio

import (
	"strings"
	"testing"
)

func testLayout() *Layout {
	return NewLayout("test block", 0x100, []Field{
		{Name: "CTRL", Offset: 0x00, Width: 4, Count: 1, Access: ReadWrite},
		{Name: "TYPE", Offset: 0x08, Width: 8, Count: 1, Access: ReadOnly},
		{Name: "TRIG", Offset: 0x10, Width: 4, Count: 1, Access: WriteOnly},
		{Name: "DATA", Offset: 0x20, Width: 4, Count: 4, Access: ReadWrite},
	})
}

func TestFieldAt(t *testing.T) {
	l := testLayout()

	f, ok := l.FieldAt(0x28)
	if !ok || f.Name != "DATA" {
		t.Errorf("FieldAt(0x28) = %v, %v, want DATA", f, ok)
	}
	if _, ok := l.FieldAt(0x14); ok {
		t.Errorf("FieldAt(0x14) found a field in a reserved gap")
	}
	if _, ok := l.FieldAt(0x30); ok {
		t.Errorf("FieldAt(0x30) found a field past the last one")
	}
}

func TestCheckAccess(t *testing.T) {
	l := testLayout()

	if err := l.CheckRead(0x00, 4); err != nil {
		t.Errorf("read of CTRL failed: %v", err)
	}
	if err := l.CheckWrite(0x2C, 4); err != nil {
		t.Errorf("write of DATA[3] failed: %v", err)
	}

	tests := []struct {
		name  string
		err   error
		wants string
	}{
		{"read write-only", l.CheckRead(0x10, 4), "write-only"},
		{"write read-only", l.CheckWrite(0x08, 8), "read-only"},
		{"reserved gap", l.CheckRead(0x18, 4), "reserved"},
		{"wrong width", l.CheckRead(0x08, 4), "4-byte access to 8-byte register"},
		{"out of bounds", l.CheckRead(0x100, 4), "outside block"},
	}
	for _, tt := range tests {
		if tt.err == nil || !strings.Contains(tt.err.Error(), tt.wants) {
			t.Errorf("%s: got %v, want error containing %q", tt.name, tt.err, tt.wants)
		}
	}
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

func TestNewLayoutRejectsBadTables(t *testing.T) {
	mustPanic(t, "overlapping fields", func() {
		NewLayout("bad", 0x100, []Field{
			{Name: "A", Offset: 0x00, Width: 4, Count: 4, Access: ReadWrite},
			{Name: "B", Offset: 0x08, Width: 4, Count: 1, Access: ReadWrite},
		})
	})
	mustPanic(t, "field past block end", func() {
		NewLayout("bad", 0x10, []Field{
			{Name: "A", Offset: 0x08, Width: 4, Count: 4, Access: ReadWrite},
		})
	})
	mustPanic(t, "misaligned field", func() {
		NewLayout("bad", 0x100, []Field{
			{Name: "A", Offset: 0x04, Width: 8, Count: 1, Access: ReadWrite},
		})
	})
	mustPanic(t, "bad width", func() {
		NewLayout("bad", 0x100, []Field{
			{Name: "A", Offset: 0x00, Width: 2, Count: 1, Access: ReadWrite},
		})
	})
}
