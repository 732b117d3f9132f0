package byteorder

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// IsBigEndian reports whether the host stores integers most-significant byte
// first. It is a compile-time constant, so order-dependent branches on it
// cost nothing at runtime.
const IsBigEndian = cpu.IsBigEndian

// Native returns the host's byte order.
func Native() binary.ByteOrder {
	if IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
