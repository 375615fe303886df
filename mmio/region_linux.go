//go:build linux

package mmio

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Region is a mapped register window. It implements regmap.Bus.
type Region struct {
	mapping []byte
	window  []byte
	base    int64
}

// Open maps size bytes starting at physical offset base of the file at path.
// base does not need to be page aligned.
func Open(path string, base int64, size int) (*Region, error) {
	if size <= 0 || size%4 != 0 {
		return nil, fmt.Errorf("invalid window size %d: must be a positive multiple of 4", size)
	}
	if base < 0 || base%4 != 0 {
		return nil, fmt.Errorf("invalid window base 0x%X: must be word aligned", base)
	}

	fd, err := unix.Open(path, unix.O_RDWR|unix.O_SYNC|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = unix.Close(fd) }()

	page := int64(unix.Getpagesize())
	aligned := base &^ (page - 1)
	lead := int(base - aligned)

	mapping, err := unix.Mmap(fd, aligned, lead+size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("failed to map 0x%X+0x%X of %s: %w", base, size, path, err)
	}

	return &Region{
		mapping: mapping,
		window:  mapping[lead : lead+size],
		base:    base,
	}, nil
}

// Read32 implements regmap.Bus.
func (r *Region) Read32(offset uint32) uint32 {
	return atomic.LoadUint32(r.word(offset))
}

// Write32 implements regmap.Bus.
func (r *Region) Write32(offset uint32, value uint32) {
	atomic.StoreUint32(r.word(offset), value)
}

// Base returns the physical offset the window was mapped from.
func (r *Region) Base() int64 {
	return r.base
}

// Size returns the window size in bytes.
func (r *Region) Size() int {
	return len(r.window)
}

// Close unmaps the window. The Region must not be used afterwards.
func (r *Region) Close() error {
	if r.mapping == nil {
		return nil
	}
	err := unix.Munmap(r.mapping)
	r.mapping = nil
	r.window = nil
	if err != nil {
		return fmt.Errorf("failed to unmap window: %w", err)
	}
	return nil
}

func (r *Region) word(offset uint32) *uint32 {
	if offset%4 != 0 || int(offset)+4 > len(r.window) {
		panic(fmt.Sprintf("mmio: access at 0x%X outside window of %d bytes", offset, len(r.window)))
	}
	return (*uint32)(unsafe.Pointer(&r.window[offset]))
}
