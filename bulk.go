package byteorder

import (
	"math/bits"
	"unsafe"
)

// In-place elementwise byte reversal for columnar and wire buffers.

// SwapBytes16s reverses the byte order of every element of s in place.
func SwapBytes16s(s []uint16) {
	if len(s) >= 4 {
		// View the bulk of the slice as [4]uint16 quads so the compiler can
		// elide the per-element bounds checks.
		quads := unsafe.Slice((*[4]uint16)(unsafe.Pointer(unsafe.SliceData(s))), len(s)>>2)
		for i := range quads {
			quads[i][0] = bits.ReverseBytes16(quads[i][0])
			quads[i][1] = bits.ReverseBytes16(quads[i][1])
			quads[i][2] = bits.ReverseBytes16(quads[i][2])
			quads[i][3] = bits.ReverseBytes16(quads[i][3])
		}
	}
	tail := s[len(s)&^3:]
	for i := range tail {
		tail[i] = bits.ReverseBytes16(tail[i])
	}
}

// SwapBytes32s reverses the byte order of every element of s in place.
func SwapBytes32s(s []uint32) {
	if len(s) >= 4 {
		quads := unsafe.Slice((*[4]uint32)(unsafe.Pointer(unsafe.SliceData(s))), len(s)>>2)
		for i := range quads {
			quads[i][0] = bits.ReverseBytes32(quads[i][0])
			quads[i][1] = bits.ReverseBytes32(quads[i][1])
			quads[i][2] = bits.ReverseBytes32(quads[i][2])
			quads[i][3] = bits.ReverseBytes32(quads[i][3])
		}
	}
	tail := s[len(s)&^3:]
	for i := range tail {
		tail[i] = bits.ReverseBytes32(tail[i])
	}
}

// SwapBytes64s reverses the byte order of every element of s in place.
func SwapBytes64s(s []uint64) {
	if len(s) >= 4 {
		quads := unsafe.Slice((*[4]uint64)(unsafe.Pointer(unsafe.SliceData(s))), len(s)>>2)
		for i := range quads {
			quads[i][0] = bits.ReverseBytes64(quads[i][0])
			quads[i][1] = bits.ReverseBytes64(quads[i][1])
			quads[i][2] = bits.ReverseBytes64(quads[i][2])
			quads[i][3] = bits.ReverseBytes64(quads[i][3])
		}
	}
	tail := s[len(s)&^3:]
	for i := range tail {
		tail[i] = bits.ReverseBytes64(tail[i])
	}
}
