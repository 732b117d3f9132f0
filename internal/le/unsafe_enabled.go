// 64-bit little-endian platforms with unrestricted unaligned access.

//go:build (amd64 || arm64 || ppc64le || riscv64) && !nounsafe && !purego && !appengine

package le

import "unsafe"

// Load16 reads a little-endian uint16 from the start of b without a bounds
// check. The caller must guarantee len(b) >= 2.
func Load16(b []byte) uint16 {
	return *(*uint16)(unsafe.Pointer(unsafe.SliceData(b)))
}

// Load32 reads a little-endian uint32 from the start of b without a bounds
// check. The caller must guarantee len(b) >= 4.
func Load32(b []byte) uint32 {
	return *(*uint32)(unsafe.Pointer(unsafe.SliceData(b)))
}

// Load64 reads a little-endian uint64 from the start of b without a bounds
// check. The caller must guarantee len(b) >= 8.
func Load64(b []byte) uint64 {
	return *(*uint64)(unsafe.Pointer(unsafe.SliceData(b)))
}

// Store16 writes v little-endian to the start of b without a bounds check.
// The caller must guarantee len(b) >= 2.
func Store16(b []byte, v uint16) {
	*(*uint16)(unsafe.Pointer(unsafe.SliceData(b))) = v
}

// Store32 writes v little-endian to the start of b without a bounds check.
// The caller must guarantee len(b) >= 4.
func Store32(b []byte, v uint32) {
	*(*uint32)(unsafe.Pointer(unsafe.SliceData(b))) = v
}

// Store64 writes v little-endian to the start of b without a bounds check.
// The caller must guarantee len(b) >= 8.
func Store64(b []byte, v uint64) {
	*(*uint64)(unsafe.Pointer(unsafe.SliceData(b))) = v
}
