// Package le provides direct little-endian loads and stores backing the
// slice accessors in the parent package.
//
// On 64-bit little-endian platforms the operations compile to single
// unchecked memory accesses; callers must bounds-check first. Elsewhere, and
// under the nounsafe or purego build tags, they fall back to encoding/binary.
package le
