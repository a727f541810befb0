package circuit

import (
	"fmt"

	"github.com/zkevmgo/plonkish/field"
)

// wordBytes bounds positional byte decompositions: longer sequences are
// ambiguous for the 256-bit word domain.
const wordBytes = 32

// RLCExpr compresses an ordered item sequence, most significant first, into
// a single expression by Horner's rule: acc <- acc*challenge + item. The
// empty sequence compresses to zero.
func RLCExpr[E field.Element[E]](items []Expression[E], challenge Expression[E]) Expression[E] {
	if len(items) == 0 {
		return Num[E](0)
	}
	acc := items[0]
	for _, item := range items[1:] {
		acc = Add(Mul(acc, challenge), item)
	}
	return acc
}

// RLCValue is the witness evaluator matching [RLCExpr]: for equal inputs the
// two agree bit for bit.
func RLCValue[E field.Element[E]](items []E, challenge E) E {
	var acc E
	if len(items) == 0 {
		return acc
	}
	acc = items[0]
	for _, item := range items[1:] {
		acc = acc.Mul(challenge).Add(item)
	}
	return acc
}

// RLCBytes compresses a byte sequence, most significant byte first.
func RLCBytes[E field.Element[E]](bytes []byte, challenge E) E {
	var z E
	items := make([]E, len(bytes))
	for i, b := range bytes {
		items[i] = z.FromUint64(uint64(b))
	}
	return RLCValue(items, challenge)
}

// FromBytesExpr composes little-endian byte expressions positionally:
// value = sum b_i * 256^i.
//
// Panics when given more than 32 bytes, a construction fault.
func FromBytesExpr[E field.Element[E]](bytes []Expression[E]) Expression[E] {
	if len(bytes) > wordBytes {
		panic(fmt.Sprintf("circuit: %d bytes cannot compose a 256-bit word", len(bytes)))
	}
	var z E
	value := Num[E](0)
	multiplier := z.One()
	base := z.FromUint64(256)
	for _, b := range bytes {
		value = Add(value, Scale(b, multiplier))
		multiplier = multiplier.Mul(base)
	}
	return value
}

// FromBytesValue is the witness evaluator matching [FromBytesExpr].
//
// Panics when given more than 32 bytes, a construction fault.
func FromBytesValue[E field.Element[E]](bytes []byte) E {
	if len(bytes) > wordBytes {
		panic(fmt.Sprintf("circuit: %d bytes cannot compose a 256-bit word", len(bytes)))
	}
	var z E
	value := z.Zero()
	multiplier := z.One()
	base := z.FromUint64(256)
	for _, b := range bytes {
		value = value.Add(z.FromUint64(uint64(b)).Mul(multiplier))
		multiplier = multiplier.Mul(base)
	}
	return value
}
