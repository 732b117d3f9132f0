package byteorder

// Signed conversions bridge through the unsigned core: the two's-complement
// bit pattern is converted as-is, so byte order stays signedness-agnostic.

// Int8FromLE interprets b as a little-endian signed integer.
func Int8FromLE(b [1]byte) int8 { return int8(b[0]) }

// Int16FromLE interprets b as a little-endian signed integer.
func Int16FromLE(b [2]byte) int16 { return int16(Uint16FromLE(b)) }

// Int32FromLE interprets b as a little-endian signed integer.
func Int32FromLE(b [4]byte) int32 { return int32(Uint32FromLE(b)) }

// Int64FromLE interprets b as a little-endian signed integer.
func Int64FromLE(b [8]byte) int64 { return int64(Uint64FromLE(b)) }

// Int8ToLE returns the little-endian byte representation of v.
func Int8ToLE(v int8) [1]byte { return [1]byte{byte(v)} }

// Int16ToLE returns the little-endian byte representation of v.
func Int16ToLE(v int16) [2]byte { return Uint16ToLE(uint16(v)) }

// Int32ToLE returns the little-endian byte representation of v.
func Int32ToLE(v int32) [4]byte { return Uint32ToLE(uint32(v)) }

// Int64ToLE returns the little-endian byte representation of v.
func Int64ToLE(v int64) [8]byte { return Uint64ToLE(uint64(v)) }

// Int8FromBE interprets b as a big-endian signed integer.
func Int8FromBE(b [1]byte) int8 { return int8(b[0]) }

// Int16FromBE interprets b as a big-endian signed integer.
func Int16FromBE(b [2]byte) int16 { return int16(Uint16FromBE(b)) }

// Int32FromBE interprets b as a big-endian signed integer.
func Int32FromBE(b [4]byte) int32 { return int32(Uint32FromBE(b)) }

// Int64FromBE interprets b as a big-endian signed integer.
func Int64FromBE(b [8]byte) int64 { return int64(Uint64FromBE(b)) }

// Int8ToBE returns the big-endian byte representation of v.
func Int8ToBE(v int8) [1]byte { return [1]byte{byte(v)} }

// Int16ToBE returns the big-endian byte representation of v.
func Int16ToBE(v int16) [2]byte { return Uint16ToBE(uint16(v)) }

// Int32ToBE returns the big-endian byte representation of v.
func Int32ToBE(v int32) [4]byte { return Uint32ToBE(uint32(v)) }

// Int64ToBE returns the big-endian byte representation of v.
func Int64ToBE(v int64) [8]byte { return Uint64ToBE(uint64(v)) }

// Int8FromNative interprets b in the host's byte order.
func Int8FromNative(b [1]byte) int8 { return int8(b[0]) }

// Int16FromNative interprets b in the host's byte order.
func Int16FromNative(b [2]byte) int16 { return int16(Uint16FromNative(b)) }

// Int32FromNative interprets b in the host's byte order.
func Int32FromNative(b [4]byte) int32 { return int32(Uint32FromNative(b)) }

// Int64FromNative interprets b in the host's byte order.
func Int64FromNative(b [8]byte) int64 { return int64(Uint64FromNative(b)) }

// Int8ToNative returns the byte representation of v in the host's byte order.
func Int8ToNative(v int8) [1]byte { return [1]byte{byte(v)} }

// Int16ToNative returns the byte representation of v in the host's byte order.
func Int16ToNative(v int16) [2]byte { return Uint16ToNative(uint16(v)) }

// Int32ToNative returns the byte representation of v in the host's byte order.
func Int32ToNative(v int32) [4]byte { return Uint32ToNative(uint32(v)) }

// Int64ToNative returns the byte representation of v in the host's byte order.
func Int64ToNative(v int64) [8]byte { return Uint64ToNative(uint64(v)) }
