package byteorder

import (
	"math/bits"
	"unsafe"
)

// SwapBytes returns v with the order of its bytes reversed.
//
// Byte swapping operates on the bit pattern only: signed values are swapped
// as their same-width unsigned reinterpretation, so the result for a signed
// type is the swapped pattern reinterpreted as signed. A 1-byte value is
// returned unchanged.
func SwapBytes[T Integer](v T) T {
	switch unsafe.Sizeof(v) {
	case 1:
		return v
	case 2:
		return T(bits.ReverseBytes16(uint16(v)))
	case 4:
		return T(bits.ReverseBytes32(uint32(v)))
	default:
		return T(bits.ReverseBytes64(uint64(v)))
	}
}

// SwapBytes8 returns v unchanged; a single byte has no internal order.
func SwapBytes8(v uint8) uint8 { return v }

// SwapBytes16 reverses the byte order of v.
func SwapBytes16(v uint16) uint16 { return bits.ReverseBytes16(v) }

// SwapBytes32 reverses the byte order of v.
func SwapBytes32(v uint32) uint32 { return bits.ReverseBytes32(v) }

// SwapBytes64 reverses the byte order of v.
func SwapBytes64(v uint64) uint64 { return bits.ReverseBytes64(v) }
