package byteorder

// Portable mask-and-shift byte reversal. These are the reference
// implementations the math/bits fast path is held to by the package tests;
// they never share code with it. Every shift amount is a multiple of 8
// strictly below the operand's bit width.

func swap16(v uint16) uint16 {
	a := (v >> 0) & 0xff
	b := (v >> 8) & 0xff
	return a<<8 | b<<0
}

func swap32(v uint32) uint32 {
	a := (v >> 0) & 0xff
	b := (v >> 8) & 0xff
	c := (v >> 16) & 0xff
	d := (v >> 24) & 0xff
	return a<<24 | b<<16 | c<<8 | d<<0
}

func swap64(v uint64) uint64 {
	a := (v >> 0) & 0xff
	b := (v >> 8) & 0xff
	c := (v >> 16) & 0xff
	d := (v >> 24) & 0xff
	e := (v >> 32) & 0xff
	f := (v >> 40) & 0xff
	g := (v >> 48) & 0xff
	h := (v >> 56) & 0xff
	return a<<56 | b<<48 | c<<40 | d<<32 |
		e<<24 | f<<16 | g<<8 | h<<0
}
