// Package num implements conversions between EVM-level numeric types,
// their canonical byte encodings, and field elements.
package num

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/zkevmgo/plonkish/field"
)

// Word is a 256-bit unsigned integer, the native EVM value width.
type Word = uint256.Int

// ToBeBytes returns the canonical fixed-width big-endian encoding of w.
func ToBeBytes(w *Word) [32]byte {
	return w.Bytes32()
}

// ToLeBytes returns the canonical fixed-width little-endian encoding of w.
func ToLeBytes(w *Word) [32]byte {
	b := w.Bytes32()
	for i, j := 0, 31; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

// ToWord converts a chain-level value to a Word. Booleans map to 0 and 1,
// negative integers wrap around in the 256-bit word space, and addresses are
// zero-padded on the most significant side.
//
// Panics on unsupported types and on negative int values, both programming
// errors of the caller.
func ToWord(v any) *Word {
	switch v := v.(type) {
	case *Word:
		return new(Word).Set(v)
	case Word:
		return new(Word).Set(&v)
	case bool:
		if v {
			return uint256.NewInt(1)
		}
		return uint256.NewInt(0)
	case uint32:
		return uint256.NewInt(uint64(v))
	case uint64:
		return uint256.NewInt(v)
	case int:
		if v < 0 {
			panic("num: negative int cannot index the trace")
		}
		return uint256.NewInt(uint64(v))
	case int32:
		w := uint256.NewInt(uint64(absInt32(v)))
		if v < 0 {
			w.Neg(w)
		}
		return w
	case common.Address:
		return new(Word).SetBytes(v.Bytes())
	case common.Hash:
		return new(Word).SetBytes(v[:])
	default:
		panic(fmt.Sprintf("num: cannot convert %T to Word", v))
	}
}

func absInt32(v int32) uint32 {
	if v < 0 {
		return uint32(-int64(v))
	}
	return uint32(v)
}

// ToScalar converts a Word to a field element. It reports false when the
// value is not less than the field modulus; it never truncates, since two
// chain values sharing a residue must not satisfy the same constraint.
func ToScalar[E field.Element[E]](w *Word) (E, bool) {
	var z E
	return z.FromBytes(ToLeBytes(w))
}

// AddressToScalar converts an address to a field element. An address is 160
// bits, so the conversion cannot overflow a field with a larger modulus, but
// the fallible signature is kept uniform with ToScalar.
func AddressToScalar[E field.Element[E]](a common.Address) (E, bool) {
	return ToScalar[E](ToWord(a))
}

// ToAddress takes the low 20 bytes of the big-endian encoding of w.
func ToAddress(w *Word) common.Address {
	b := ToBeBytes(w)
	return common.BytesToAddress(b[12:])
}

// LoHi splits w into its 128-bit limbs, such that w = lo + hi·2^128.
func LoHi(w *Word) (lo, hi *Word) {
	lo = &Word{w[0], w[1], 0, 0}
	hi = &Word{w[2], w[3], 0, 0}
	return
}

// FromLoHi recombines 128-bit limbs into a Word. The upper halves of both
// limbs must be zero.
func FromLoHi(lo, hi *Word) *Word {
	if lo[2]|lo[3]|hi[2]|hi[3] != 0 {
		panic("num: limb exceeds 128 bits")
	}
	return &Word{lo[0], lo[1], hi[0], hi[1]}
}

// LoHiScalars splits w into 128-bit limbs as field elements. Each limb is
// below 2^128 and hence below the modulus, so the conversion is total.
func LoHiScalars[E field.Element[E]](w *Word) (lo, hi E) {
	wLo, wHi := LoHi(w)
	lo, _ = ToScalar[E](wLo)
	hi, _ = ToScalar[E](wHi)
	return
}
