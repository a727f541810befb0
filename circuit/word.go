package circuit

import (
	"github.com/zkevmgo/plonkish/field"
	"github.com/zkevmgo/plonkish/num"
)

// Word is a 256-bit EVM word in expression form, decomposed into two 128-bit
// limbs so that each limb fits a field element without wraparound.
type Word[E field.Element[E]] struct {
	lo, hi Expression[E]
}

// NewWord builds a Word from its limb expressions.
func NewWord[E field.Element[E]](lo, hi Expression[E]) Word[E] {
	return Word[E]{lo: lo, hi: hi}
}

// ZeroWord returns the word with both limbs zero.
func ZeroWord[E field.Element[E]]() Word[E] {
	return Word[E]{lo: Num[E](0), hi: Num[E](0)}
}

// ConstantWord embeds a concrete 256-bit value as a pair of constant limbs.
func ConstantWord[E field.Element[E]](w *num.Word) Word[E] {
	lo, hi := num.LoHiScalars[E](w)
	return Word[E]{lo: Constant(lo), hi: Constant(hi)}
}

// QueryWord builds a Word from two limb columns at the given rotation.
func QueryWord[E field.Element[E]](lo, hi Column, rot Rotation) Word[E] {
	return Word[E]{lo: Query[E](lo, rot), hi: Query[E](hi, rot)}
}

// LoHi returns the limb expressions, such that value = lo + hi·2^128.
func (w Word[E]) LoHi() (lo, hi Expression[E]) {
	return w.lo, w.hi
}

// Degree returns the larger limb degree.
func (w Word[E]) Degree() int {
	return max(w.lo.Degree(), w.hi.Degree())
}
