// Package field abstracts the prime fields the arithmetization layer works
// over. The constraint and witness layers are generic over [Element], so the
// same circuit code runs over any field whose modulus exceeds 2^129.
package field

import (
	"encoding/binary"
	"math/big"

	"github.com/holiman/uint256"
)

// Element is the capability set required from a prime-field scalar: field
// arithmetic, a canonical fixed-width byte representation, and a total
// ordering. The type parameter is the implementing type itself, so that
// operations stay fully typed; the zero value of an implementation must be
// the additive identity.
type Element[E any] interface {
	Zero() E
	One() E
	FromUint64(uint64) E

	Add(E) E
	Sub(E) E
	Mul(E) E
	Neg() E

	IsZero() bool
	Equal(E) bool
	Cmp(E) int

	// Bytes returns the canonical 32-byte little-endian representation.
	// Every element has exactly one such representation.
	Bytes() [32]byte
	// FromBytes parses a canonical 32-byte little-endian representation.
	// It reports false when the bytes do not reduce to a unique element,
	// i.e. when they encode an integer not less than the modulus.
	FromBytes([32]byte) (E, bool)

	// Modulus returns the field modulus as a fresh big.Int.
	Modulus() *big.Int
}

// Lower128 reinterprets the low 16 bytes of the canonical little-endian form
// of x as an unsigned 128-bit integer. Go has no native 128-bit type, so the
// result is returned as a uint256.Int with the upper limbs zero.
func Lower128[E Element[E]](x E) *uint256.Int {
	b := x.Bytes()
	var r uint256.Int
	r[0] = binary.LittleEndian.Uint64(b[0:8])
	r[1] = binary.LittleEndian.Uint64(b[8:16])
	return &r
}

// Lower32 reinterprets the low 4 bytes of the canonical little-endian form
// of x as an unsigned 32-bit integer.
func Lower32[E Element[E]](x E) uint32 {
	b := x.Bytes()
	return binary.LittleEndian.Uint32(b[0:4])
}
