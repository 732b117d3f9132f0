package byteorder

import "golang.org/x/exp/constraints"

// The generic API is constrained to the fixed-width integer types (and their
// named aliases). Go arithmetic never promotes operands, so a shift or mask on
// a 16-bit value stays in 16 bits with the declared signedness; the constraint
// is what rejects non-integral instantiations at compile time.

// Unsigned permits any unsigned integer type.
type Unsigned = constraints.Unsigned

// Signed permits any signed integer type.
type Signed = constraints.Signed

// Integer permits any integer type, signed or unsigned.
type Integer = constraints.Integer
