// Package byteorder provides bit-exact primitives for reversing the byte
// order of fixed-width integers and for converting between integers and
// their little-endian, big-endian, or native byte representations.
//
// These primitives underlie serialization and wire-format encoding in higher
// layers. They are pure functions: no state, no I/O, no allocation beyond the
// fixed-size result, and safe for unbounded concurrent use.
//
// # Fixed-Size Conversions
//
// The array-based conversions encode the byte-sequence length in the type, so
// a wrong-length input cannot be expressed:
//
//	b := byteorder.Uint32ToLE(0x01020304) // [4]byte{0x04, 0x03, 0x02, 0x01}
//	v := byteorder.Uint32FromLE(b)        // 0x01020304
//
// # Byte Swapping
//
//	byteorder.SwapBytes32(0x01020304)      // 0x04030201
//	byteorder.SwapBytes(int16(0x0102))     // int16(0x0201), signedness-agnostic
//
// # Slice Access
//
// For callers holding a []byte, the slice accessors fail fast on short
// buffers and use direct loads/stores on little-endian platforms:
//
//	v := byteorder.Uint64LE(buf)
//	byteorder.PutUint64LE(buf, v)
//	buf = byteorder.AppendUint64LE(buf, v)
//
// Every fast path is pinned against a portable shift/mask reference
// implementation by the package tests; the two always agree bit for bit.
package byteorder
