package circuit

import (
	"fmt"

	"github.com/zkevmgo/plonkish/field"
)

// Expression is a symbolic polynomial over queried trace cells and
// challenges, closed under addition, subtraction, multiplication and scaling
// by a constant.
type Expression[E field.Element[E]] interface {
	// Degree returns the polynomial degree of the expression. Queried cells
	// count as degree one; constants and challenges as degree zero.
	Degree() int
	// Eval evaluates the expression against the concrete cell and challenge
	// values supplied by env.
	Eval(env Env[E]) E
}

// Env supplies concrete values during expression evaluation. A nil accessor
// makes the corresponding query a contract violation.
type Env[E field.Element[E]] struct {
	Advice    func(col Column, rot Rotation) E
	Fixed     func(col Column, rot Rotation) E
	Instance  func(col Column, rot Rotation) E
	Challenge func(id ChallengeID) E
}

type constExpr[E field.Element[E]] struct {
	v E
}

func (e constExpr[E]) Degree() int   { return 0 }
func (e constExpr[E]) Eval(Env[E]) E { return e.v }

type queryExpr[E field.Element[E]] struct {
	col Column
	rot Rotation
}

func (e queryExpr[E]) Degree() int { return 1 }

func (e queryExpr[E]) Eval(env Env[E]) E {
	var f func(Column, Rotation) E
	switch e.col.Role {
	case Advice:
		f = env.Advice
	case Fixed:
		f = env.Fixed
	case Instance:
		f = env.Instance
	}
	if f == nil {
		panic(fmt.Sprintf("circuit: no evaluator for %v column query", e.col.Role))
	}
	return f(e.col, e.rot)
}

type challengeExpr[E field.Element[E]] struct {
	id ChallengeID
}

func (e challengeExpr[E]) Degree() int { return 0 }

func (e challengeExpr[E]) Eval(env Env[E]) E {
	if env.Challenge == nil {
		panic("circuit: no evaluator for challenge query")
	}
	return env.Challenge(e.id)
}

type sumExpr[E field.Element[E]] struct {
	a, b Expression[E]
}

func (e sumExpr[E]) Degree() int       { return max(e.a.Degree(), e.b.Degree()) }
func (e sumExpr[E]) Eval(env Env[E]) E { return e.a.Eval(env).Add(e.b.Eval(env)) }

type prodExpr[E field.Element[E]] struct {
	a, b Expression[E]
}

func (e prodExpr[E]) Degree() int       { return e.a.Degree() + e.b.Degree() }
func (e prodExpr[E]) Eval(env Env[E]) E { return e.a.Eval(env).Mul(e.b.Eval(env)) }

type negExpr[E field.Element[E]] struct {
	a Expression[E]
}

func (e negExpr[E]) Degree() int       { return e.a.Degree() }
func (e negExpr[E]) Eval(env Env[E]) E { return e.a.Eval(env).Neg() }

type scaledExpr[E field.Element[E]] struct {
	a Expression[E]
	k E
}

func (e scaledExpr[E]) Degree() int       { return e.a.Degree() }
func (e scaledExpr[E]) Eval(env Env[E]) E { return e.a.Eval(env).Mul(e.k) }

// Constant returns the expression with the constant value v.
func Constant[E field.Element[E]](v E) Expression[E] {
	return constExpr[E]{v: v}
}

// Num returns the expression with the constant value v.
func Num[E field.Element[E]](v uint64) Expression[E] {
	var z E
	return constExpr[E]{v: z.FromUint64(v)}
}

// Query returns the expression referencing the cell of col at the given
// rotation from the current row.
func Query[E field.Element[E]](col Column, rot Rotation) Expression[E] {
	return queryExpr[E]{col: col, rot: rot}
}

// QueryChallenge returns the symbolic form of a challenge, usable inside
// constraints before the challenge is bound.
func QueryChallenge[E field.Element[E]](id ChallengeID) Expression[E] {
	return challengeExpr[E]{id: id}
}

// Add returns a+b.
func Add[E field.Element[E]](a, b Expression[E]) Expression[E] {
	return sumExpr[E]{a: a, b: b}
}

// Sub returns a-b.
func Sub[E field.Element[E]](a, b Expression[E]) Expression[E] {
	return sumExpr[E]{a: a, b: negExpr[E]{a: b}}
}

// Mul returns a*b.
func Mul[E field.Element[E]](a, b Expression[E]) Expression[E] {
	return prodExpr[E]{a: a, b: b}
}

// Neg returns -a.
func Neg[E field.Element[E]](a Expression[E]) Expression[E] {
	return negExpr[E]{a: a}
}

// Scale returns k*a for a constant k.
func Scale[E field.Element[E]](a Expression[E], k E) Expression[E] {
	return scaledExpr[E]{a: a, k: k}
}

// Sum returns the sum of xs, or the zero constant for no arguments.
func Sum[E field.Element[E]](xs ...Expression[E]) Expression[E] {
	var acc Expression[E] = Num[E](0)
	for _, x := range xs {
		acc = Add(acc, x)
	}
	return acc
}
