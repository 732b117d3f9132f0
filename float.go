package byteorder

import "math"

// Float conversions encode the IEEE-754 bit pattern through the unsigned
// core. All patterns round-trip exactly, including NaN payloads.

// Float32FromLE interprets b as a little-endian float32 bit pattern.
func Float32FromLE(b [4]byte) float32 { return math.Float32frombits(Uint32FromLE(b)) }

// Float64FromLE interprets b as a little-endian float64 bit pattern.
func Float64FromLE(b [8]byte) float64 { return math.Float64frombits(Uint64FromLE(b)) }

// Float32ToLE returns the little-endian byte representation of v's bit pattern.
func Float32ToLE(v float32) [4]byte { return Uint32ToLE(math.Float32bits(v)) }

// Float64ToLE returns the little-endian byte representation of v's bit pattern.
func Float64ToLE(v float64) [8]byte { return Uint64ToLE(math.Float64bits(v)) }

// Float32FromBE interprets b as a big-endian float32 bit pattern.
func Float32FromBE(b [4]byte) float32 { return math.Float32frombits(Uint32FromBE(b)) }

// Float64FromBE interprets b as a big-endian float64 bit pattern.
func Float64FromBE(b [8]byte) float64 { return math.Float64frombits(Uint64FromBE(b)) }

// Float32ToBE returns the big-endian byte representation of v's bit pattern.
func Float32ToBE(v float32) [4]byte { return Uint32ToBE(math.Float32bits(v)) }

// Float64ToBE returns the big-endian byte representation of v's bit pattern.
func Float64ToBE(v float64) [8]byte { return Uint64ToBE(math.Float64bits(v)) }

// Float32FromNative interprets b as a float32 bit pattern in the host's byte order.
func Float32FromNative(b [4]byte) float32 { return math.Float32frombits(Uint32FromNative(b)) }

// Float64FromNative interprets b as a float64 bit pattern in the host's byte order.
func Float64FromNative(b [8]byte) float64 { return math.Float64frombits(Uint64FromNative(b)) }

// Float32ToNative returns the byte representation of v's bit pattern in the host's byte order.
func Float32ToNative(v float32) [4]byte { return Uint32ToNative(math.Float32bits(v)) }

// Float64ToNative returns the byte representation of v's bit pattern in the host's byte order.
func Float64ToNative(v float64) [8]byte { return Uint64ToNative(math.Float64bits(v)) }
