package byteorder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/byteorder/util"
)

func TestByteOrderContract(t *testing.T) {
	// The least-significant byte leads in little endian.
	assert.Equal(t, [4]byte{0x04, 0x03, 0x02, 0x01}, Uint32ToLE(0x01020304))
	assert.Equal(t, [2]byte{0x02, 0x01}, Uint16ToLE(0x0102))
	assert.Equal(t, [8]byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, Uint64ToLE(0x0102030405060708))

	assert.Equal(t, [4]byte{0x01, 0x02, 0x03, 0x04}, Uint32ToBE(0x01020304))
	assert.Equal(t, [2]byte{0x01, 0x02}, Uint16ToBE(0x0102))
	assert.Equal(t, [8]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, Uint64ToBE(0x0102030405060708))
}

// Result equals the sum of bytes[i] * 256^i.
func TestFromLittleEndianWeights(t *testing.T) {
	assert.Equal(t, uint32(0x01020304), Uint32FromLE([4]byte{0x04, 0x03, 0x02, 0x01}))
	assert.Equal(t, uint16(0x0102), Uint16FromLE([2]byte{0x02, 0x01}))
	assert.Equal(t, uint64(0x0102030405060708), Uint64FromLE([8]byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}))
	assert.Equal(t, uint8(0x7f), Uint8FromLE([1]byte{0x7f}))

	b := [4]byte{0x9a, 0x02, 0x00, 0xf0}
	want := uint32(b[0]) + uint32(b[1])*256 + uint32(b[2])*256*256 + uint32(b[3])*256*256*256
	assert.Equal(t, want, Uint32FromLE(b))
}

func TestRoundTrip(t *testing.T) {
	samples := append([]uint64{0, 1, math.MaxUint64}, util.NewRNG(4711).Uint64s(1000)...)

	for _, v := range samples {
		assert.Equal(t, uint8(v), Uint8FromLE(Uint8ToLE(uint8(v))))
		assert.Equal(t, uint16(v), Uint16FromLE(Uint16ToLE(uint16(v))))
		assert.Equal(t, uint32(v), Uint32FromLE(Uint32ToLE(uint32(v))))
		assert.Equal(t, v, Uint64FromLE(Uint64ToLE(v)))

		assert.Equal(t, uint16(v), Uint16FromBE(Uint16ToBE(uint16(v))))
		assert.Equal(t, uint32(v), Uint32FromBE(Uint32ToBE(uint32(v))))
		assert.Equal(t, v, Uint64FromBE(Uint64ToBE(v)))

		assert.Equal(t, uint16(v), Uint16FromNative(Uint16ToNative(uint16(v))))
		assert.Equal(t, uint32(v), Uint32FromNative(Uint32ToNative(uint32(v))))
		assert.Equal(t, v, Uint64FromNative(Uint64ToNative(v)))
	}
}

// Big-endian interpretation of a byte sequence is the byte swap of its
// little-endian interpretation.
func TestEndiannessRelation(t *testing.T) {
	for _, v := range util.NewRNG(1337).Uint64s(200) {
		le16 := Uint16ToLE(uint16(v))
		le32 := Uint32ToLE(uint32(v))
		le64 := Uint64ToLE(v)

		assert.Equal(t, SwapBytes16(Uint16FromLE(le16)), Uint16FromBE(le16))
		assert.Equal(t, SwapBytes32(Uint32FromLE(le32)), Uint32FromBE(le32))
		assert.Equal(t, SwapBytes64(Uint64FromLE(le64)), Uint64FromBE(le64))
	}
}

func TestNativeMatchesHostOrder(t *testing.T) {
	b := [4]byte{0x04, 0x03, 0x02, 0x01}

	if IsBigEndian {
		assert.Equal(t, Uint32FromBE(b), Uint32FromNative(b))
		assert.Equal(t, Uint32ToBE(0x01020304), Uint32ToNative(0x01020304))
	} else {
		assert.Equal(t, Uint32FromLE(b), Uint32FromNative(b))
		assert.Equal(t, Uint32ToLE(0x01020304), Uint32ToNative(0x01020304))
	}
}

func TestNativeByteOrder(t *testing.T) {
	var buf [8]byte
	Native().PutUint64(buf[:], 0x0102030405060708)

	assert.Equal(t, Uint64ToNative(0x0102030405060708), buf)
}

func TestSignedConversions(t *testing.T) {
	assert.Equal(t, [4]byte{0xff, 0xff, 0xff, 0xff}, Int32ToLE(-1))
	assert.Equal(t, int32(-1), Int32FromLE([4]byte{0xff, 0xff, 0xff, 0xff}))
	assert.Equal(t, [2]byte{0xfe, 0xff}, Int16ToLE(-2))
	assert.Equal(t, int8(-128), Int8FromLE([1]byte{0x80}))

	vals := []int64{0, 1, -1, math.MinInt64, math.MaxInt64, -4711}
	for _, v := range vals {
		assert.Equal(t, int16(v), Int16FromLE(Int16ToLE(int16(v))))
		assert.Equal(t, int32(v), Int32FromLE(Int32ToLE(int32(v))))
		assert.Equal(t, v, Int64FromLE(Int64ToLE(v)))
		assert.Equal(t, int32(v), Int32FromBE(Int32ToBE(int32(v))))
		assert.Equal(t, v, Int64FromBE(Int64ToBE(v)))
		assert.Equal(t, int32(v), Int32FromNative(Int32ToNative(int32(v))))
		assert.Equal(t, v, Int64FromNative(Int64ToNative(v)))
	}

	// Signed and unsigned conversions see the same bit pattern.
	assert.Equal(t, Uint32ToLE(0x80000001), Int32ToLE(int32(-2147483647)))
}

func TestFloatConversions(t *testing.T) {
	vals := []float64{0, 1, -1, 3.14159, math.Inf(1), math.Inf(-1), math.SmallestNonzeroFloat64, math.MaxFloat64}
	for _, v := range vals {
		assert.Equal(t, v, Float64FromLE(Float64ToLE(v)))
		assert.Equal(t, v, Float64FromBE(Float64ToBE(v)))
		assert.Equal(t, v, Float64FromNative(Float64ToNative(v)))

		f := float32(v)
		assert.Equal(t, f, Float32FromLE(Float32ToLE(f)))
		assert.Equal(t, f, Float32FromBE(Float32ToBE(f)))
		assert.Equal(t, f, Float32FromNative(Float32ToNative(f)))
	}

	// NaN payloads survive as bit patterns.
	nan := math.Float64frombits(0x7ff8deadbeef0001)
	assert.Equal(t, uint64(0x7ff8deadbeef0001), math.Float64bits(Float64FromLE(Float64ToLE(nan))))

	// The bit pattern is laid out like the equivalent integer.
	assert.Equal(t, Uint64ToLE(math.Float64bits(3.5)), Float64ToLE(3.5))
	assert.Equal(t, Uint32ToBE(math.Float32bits(3.5)), Float32ToBE(3.5))
}
