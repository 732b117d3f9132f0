package byteorder

// Fixed-size conversions between unsigned integers and their byte
// representations. The array types make the exact-length precondition part of
// the signature, so a wrong-length input cannot be expressed.
//
// The shift/OR form below is the portable reference semantics; on
// little-endian targets the compiler combines each function into a single
// load or store, which is the raw-memory fast path. The source array and the
// result are distinct stack values, so the two can never alias.

// Uint8FromLE interprets b as a little-endian unsigned integer.
func Uint8FromLE(b [1]byte) uint8 { return b[0] }

// Uint16FromLE interprets b as a little-endian unsigned integer:
// b[0] is the least-significant byte.
func Uint16FromLE(b [2]byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

// Uint32FromLE interprets b as a little-endian unsigned integer.
func Uint32FromLE(b [4]byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// Uint64FromLE interprets b as a little-endian unsigned integer.
func Uint64FromLE(b [8]byte) uint64 {
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// Uint8ToLE returns the little-endian byte representation of v.
func Uint8ToLE(v uint8) [1]byte { return [1]byte{v} }

// Uint16ToLE returns the little-endian byte representation of v:
// byte i holds (v >> 8i) & 0xff. The 1-byte variant performs no shift at all.
func Uint16ToLE(v uint16) [2]byte {
	return [2]byte{byte(v), byte(v >> 8)}
}

// Uint32ToLE returns the little-endian byte representation of v.
func Uint32ToLE(v uint32) [4]byte {
	return [4]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

// Uint64ToLE returns the little-endian byte representation of v.
func Uint64ToLE(v uint64) [8]byte {
	return [8]byte{
		byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24),
		byte(v >> 32), byte(v >> 40), byte(v >> 48), byte(v >> 56),
	}
}

// Uint8FromBE interprets b as a big-endian unsigned integer.
func Uint8FromBE(b [1]byte) uint8 { return b[0] }

// Uint16FromBE interprets b as a big-endian unsigned integer:
// b[0] is the most-significant byte.
func Uint16FromBE(b [2]byte) uint16 {
	return uint16(b[1]) | uint16(b[0])<<8
}

// Uint32FromBE interprets b as a big-endian unsigned integer.
func Uint32FromBE(b [4]byte) uint32 {
	return uint32(b[3]) | uint32(b[2])<<8 | uint32(b[1])<<16 | uint32(b[0])<<24
}

// Uint64FromBE interprets b as a big-endian unsigned integer.
func Uint64FromBE(b [8]byte) uint64 {
	return uint64(b[7]) | uint64(b[6])<<8 | uint64(b[5])<<16 | uint64(b[4])<<24 |
		uint64(b[3])<<32 | uint64(b[2])<<40 | uint64(b[1])<<48 | uint64(b[0])<<56
}

// Uint8ToBE returns the big-endian byte representation of v.
func Uint8ToBE(v uint8) [1]byte { return [1]byte{v} }

// Uint16ToBE returns the big-endian byte representation of v.
func Uint16ToBE(v uint16) [2]byte {
	return [2]byte{byte(v >> 8), byte(v)}
}

// Uint32ToBE returns the big-endian byte representation of v.
func Uint32ToBE(v uint32) [4]byte {
	return [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// Uint64ToBE returns the big-endian byte representation of v.
func Uint64ToBE(v uint64) [8]byte {
	return [8]byte{
		byte(v >> 56), byte(v >> 48), byte(v >> 40), byte(v >> 32),
		byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v),
	}
}

// Native-endian conversions are the little-endian conversions composed with a
// byte swap on big-endian hosts. IsBigEndian is a constant, so the dead
// branch is eliminated at compile time.

// Uint8FromNative interprets b in the host's byte order.
func Uint8FromNative(b [1]byte) uint8 { return b[0] }

// Uint16FromNative interprets b in the host's byte order.
func Uint16FromNative(b [2]byte) uint16 {
	v := Uint16FromLE(b)
	if IsBigEndian {
		v = SwapBytes16(v)
	}
	return v
}

// Uint32FromNative interprets b in the host's byte order.
func Uint32FromNative(b [4]byte) uint32 {
	v := Uint32FromLE(b)
	if IsBigEndian {
		v = SwapBytes32(v)
	}
	return v
}

// Uint64FromNative interprets b in the host's byte order.
func Uint64FromNative(b [8]byte) uint64 {
	v := Uint64FromLE(b)
	if IsBigEndian {
		v = SwapBytes64(v)
	}
	return v
}

// Uint8ToNative returns the byte representation of v in the host's byte order.
func Uint8ToNative(v uint8) [1]byte { return [1]byte{v} }

// Uint16ToNative returns the byte representation of v in the host's byte order.
func Uint16ToNative(v uint16) [2]byte {
	if IsBigEndian {
		v = SwapBytes16(v)
	}
	return Uint16ToLE(v)
}

// Uint32ToNative returns the byte representation of v in the host's byte order.
func Uint32ToNative(v uint32) [4]byte {
	if IsBigEndian {
		v = SwapBytes32(v)
	}
	return Uint32ToLE(v)
}

// Uint64ToNative returns the byte representation of v in the host's byte order.
func Uint64ToNative(v uint64) [8]byte {
	if IsBigEndian {
		v = SwapBytes64(v)
	}
	return Uint64ToLE(v)
}
