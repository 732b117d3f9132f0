package byteorder

import "github.com/hupe1980/byteorder/internal/le"

// Slice entry points for callers holding a []byte instead of a fixed array.
// Each accessor fails fast on a short buffer before any unchecked access; a
// wrong-length slice is a programming error, not a recoverable condition.

// Uint16LE reads a little-endian uint16 from the first 2 bytes of b.
// It panics if len(b) < 2.
func Uint16LE(b []byte) uint16 {
	_ = b[1] // fail fast before the unchecked load
	return le.Load16(b)
}

// Uint32LE reads a little-endian uint32 from the first 4 bytes of b.
// It panics if len(b) < 4.
func Uint32LE(b []byte) uint32 {
	_ = b[3]
	return le.Load32(b)
}

// Uint64LE reads a little-endian uint64 from the first 8 bytes of b.
// It panics if len(b) < 8.
func Uint64LE(b []byte) uint64 {
	_ = b[7]
	return le.Load64(b)
}

// PutUint16LE writes v little-endian into the first 2 bytes of b.
// It panics if len(b) < 2.
func PutUint16LE(b []byte, v uint16) {
	_ = b[1] // fail fast before the unchecked store
	le.Store16(b, v)
}

// PutUint32LE writes v little-endian into the first 4 bytes of b.
// It panics if len(b) < 4.
func PutUint32LE(b []byte, v uint32) {
	_ = b[3]
	le.Store32(b, v)
}

// PutUint64LE writes v little-endian into the first 8 bytes of b.
// It panics if len(b) < 8.
func PutUint64LE(b []byte, v uint64) {
	_ = b[7]
	le.Store64(b, v)
}

// AppendUint16LE appends the little-endian bytes of v to dst.
func AppendUint16LE(dst []byte, v uint16) []byte {
	return append(dst, byte(v), byte(v>>8))
}

// AppendUint32LE appends the little-endian bytes of v to dst.
func AppendUint32LE(dst []byte, v uint32) []byte {
	return append(dst, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// AppendUint64LE appends the little-endian bytes of v to dst.
func AppendUint64LE(dst []byte, v uint64) []byte {
	return append(dst,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56),
	)
}

// Big-endian slice accessors are the little-endian accessors composed with a
// byte swap.

// Uint16BE reads a big-endian uint16 from the first 2 bytes of b.
// It panics if len(b) < 2.
func Uint16BE(b []byte) uint16 { return SwapBytes16(Uint16LE(b)) }

// Uint32BE reads a big-endian uint32 from the first 4 bytes of b.
// It panics if len(b) < 4.
func Uint32BE(b []byte) uint32 { return SwapBytes32(Uint32LE(b)) }

// Uint64BE reads a big-endian uint64 from the first 8 bytes of b.
// It panics if len(b) < 8.
func Uint64BE(b []byte) uint64 { return SwapBytes64(Uint64LE(b)) }

// PutUint16BE writes v big-endian into the first 2 bytes of b.
// It panics if len(b) < 2.
func PutUint16BE(b []byte, v uint16) { PutUint16LE(b, SwapBytes16(v)) }

// PutUint32BE writes v big-endian into the first 4 bytes of b.
// It panics if len(b) < 4.
func PutUint32BE(b []byte, v uint32) { PutUint32LE(b, SwapBytes32(v)) }

// PutUint64BE writes v big-endian into the first 8 bytes of b.
// It panics if len(b) < 8.
func PutUint64BE(b []byte, v uint64) { PutUint64LE(b, SwapBytes64(v)) }

// AppendUint16BE appends the big-endian bytes of v to dst.
func AppendUint16BE(dst []byte, v uint16) []byte {
	return AppendUint16LE(dst, SwapBytes16(v))
}

// AppendUint32BE appends the big-endian bytes of v to dst.
func AppendUint32BE(dst []byte, v uint32) []byte {
	return AppendUint32LE(dst, SwapBytes32(v))
}

// AppendUint64BE appends the big-endian bytes of v to dst.
func AppendUint64BE(dst []byte, v uint64) []byte {
	return AppendUint64LE(dst, SwapBytes64(v))
}
