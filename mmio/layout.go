package mmio

import (
	"fmt"
	"sort"
)

// Access is the access mode of a register field.
type Access uint8

const (
	// ReadWrite fields may be both read and written.
	ReadWrite Access = iota
	// ReadOnly fields may only be read.
	ReadOnly
	// WriteOnly fields may only be written.
	WriteOnly
)

func (a Access) String() string {
	switch a {
	case ReadWrite:
		return "read-write"
	case ReadOnly:
		return "read-only"
	case WriteOnly:
		return "write-only"
	default:
		return "invalid"
	}
}

// Field describes one register, or one array of identical registers, in a
// block. Width is the access width in bytes (4 or 8) and Count the number
// of consecutive registers of that width.
type Field struct {
	Name   string
	Offset uint64
	Width  uint32
	Count  uint32
	Access Access
}

// end returns the first offset past the field.
func (f *Field) end() uint64 {
	return f.Offset + uint64(f.Width)*uint64(f.Count)
}

// Layout is the byte-exact structural description of one register block:
// every field's offset, width and access mode, with the gaps between them
// reserved. It is independent of any driver logic so access-mode and
// offset mistakes surface even where the driver is wrong in the same way.
type Layout struct {
	Name   string
	Size   uint64
	Fields []Field
}

// NewLayout validates the field list (sorted, non-overlapping, inside the
// block) and returns the layout.
func NewLayout(name string, size uint64, fields []Field) *Layout {
	sorted := make([]Field, len(fields))
	copy(sorted, fields)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })
	var prevEnd uint64
	for i := range sorted {
		f := &sorted[i]
		if f.Width != 4 && f.Width != 8 {
			panic(fmt.Sprintf("mmio: layout %s: field %s has width %d", name, f.Name, f.Width))
		}
		if f.Offset%uint64(f.Width) != 0 {
			panic(fmt.Sprintf("mmio: layout %s: field %s misaligned at %#x", name, f.Name, f.Offset))
		}
		if f.Offset < prevEnd {
			panic(fmt.Sprintf("mmio: layout %s: field %s overlaps previous field", name, f.Name))
		}
		if f.end() > size {
			panic(fmt.Sprintf("mmio: layout %s: field %s extends past block size %#x", name, f.Name, size))
		}
		prevEnd = f.end()
	}
	return &Layout{Name: name, Size: size, Fields: sorted}
}

// FieldAt returns the field containing the given offset, or false if the
// offset falls in a reserved gap.
func (l *Layout) FieldAt(offset uint64) (*Field, bool) {
	i := sort.Search(len(l.Fields), func(i int) bool { return l.Fields[i].end() > offset })
	if i == len(l.Fields) || offset < l.Fields[i].Offset {
		return nil, false
	}
	return &l.Fields[i], true
}

// CheckRead validates a read of the given width at the given offset
// against the layout.
func (l *Layout) CheckRead(offset uint64, width uint32) error {
	f, err := l.checkAccess(offset, width)
	if err != nil {
		return err
	}
	if f.Access == WriteOnly {
		return fmt.Errorf("%s: read of write-only register %s at offset %#x", l.Name, f.Name, offset)
	}
	return nil
}

// CheckWrite validates a write of the given width at the given offset
// against the layout.
func (l *Layout) CheckWrite(offset uint64, width uint32) error {
	f, err := l.checkAccess(offset, width)
	if err != nil {
		return err
	}
	if f.Access == ReadOnly {
		return fmt.Errorf("%s: write of read-only register %s at offset %#x", l.Name, f.Name, offset)
	}
	return nil
}

func (l *Layout) checkAccess(offset uint64, width uint32) (*Field, error) {
	if offset+uint64(width) > l.Size {
		return nil, fmt.Errorf("%s: access at offset %#x outside block of size %#x", l.Name, offset, l.Size)
	}
	f, ok := l.FieldAt(offset)
	if !ok {
		return nil, fmt.Errorf("%s: access to reserved offset %#x", l.Name, offset)
	}
	if width != f.Width {
		return nil, fmt.Errorf("%s: %d-byte access to %d-byte register %s at offset %#x", l.Name, width, f.Width, f.Name, offset)
	}
	if (offset-f.Offset)%uint64(f.Width) != 0 {
		return nil, fmt.Errorf("%s: misaligned access to register %s at offset %#x", l.Name, f.Name, offset)
	}
	return f, nil
}
