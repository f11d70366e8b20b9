//go:build linux

package mmio

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// DevMem is a Region backed by a mapping of a physical-memory character
// device, typically /dev/mem. It exists for userspace diagnostics on
// systems where the kernel exposes the controller's registers; firmware
// environments use MapRegion directly.
type DevMem struct {
	Region
	physBase uintptr
	data     []byte
	fd       int
}

// OpenDevMem maps size bytes of the physical range starting at base from
// the given memory device and claims the range. The mapping is
// established with O_SYNC so accesses are not cached.
func OpenDevMem(path string, base uintptr, size uint64) (*DevMem, error) {
	pageSize := uint64(unix.Getpagesize())
	if uint64(base)%pageSize != 0 || size%pageSize != 0 {
		return nil, fmt.Errorf("mmio: base %#x and size %#x must be page aligned", base, size)
	}
	if err := claimRange(base, size); err != nil {
		return nil, err
	}

	fd, err := unix.Open(path, unix.O_RDWR|unix.O_SYNC, 0)
	if err != nil {
		releaseRange(base)
		return nil, fmt.Errorf("mmio: open %s: %w", path, err)
	}

	data, err := unix.Mmap(fd, int64(base), int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		releaseRange(base)
		return nil, fmt.Errorf("mmio: mmap %s at %#x: %w", path, base, err)
	}

	return &DevMem{
		Region:   Region{base: unsafe.Pointer(&data[0]), size: size},
		physBase: base,
		data:     data,
		fd:       fd,
	}, nil
}

// Close unmaps the region and releases the claim. The DevMem must not be
// used afterwards.
func (d *DevMem) Close() error {
	releaseRange(d.physBase)
	err := unix.Munmap(d.data)
	if cerr := unix.Close(d.fd); err == nil {
		err = cerr
	}
	return err
}

var _ Device = (*DevMem)(nil)
