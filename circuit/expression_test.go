package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zkevmgo/plonkish/circuit"
	"github.com/zkevmgo/plonkish/field"
)

func TestExpressionDegree(t *testing.T) {
	s := circuit.NewSchema()
	a := s.AdviceColumn(circuit.FirstPhase)
	b := s.AdviceColumn(circuit.FirstPhase)
	ch := s.Challenge(circuit.FirstPhase)

	var z field.Fr

	x := circuit.Query[field.Fr](a, circuit.RotCur)
	y := circuit.Query[field.Fr](b, circuit.RotCur)

	assert.Equal(t, 0, circuit.Num[field.Fr](5).Degree())
	assert.Equal(t, 0, circuit.QueryChallenge[field.Fr](ch).Degree())
	assert.Equal(t, 1, x.Degree())
	assert.Equal(t, 1, circuit.Add(x, y).Degree())
	assert.Equal(t, 2, circuit.Mul(x, y).Degree())
	assert.Equal(t, 3, circuit.Mul(circuit.Mul(x, y), x).Degree())
	assert.Equal(t, 2, circuit.Sub(circuit.Mul(x, y), x).Degree())
	assert.Equal(t, 1, circuit.Neg(x).Degree())
	assert.Equal(t, 1, circuit.Scale(x, z.FromUint64(7)).Degree())
	assert.Equal(t, 2, circuit.Mul(x, circuit.Mul(y, circuit.QueryChallenge[field.Fr](ch))).Degree())
}

func TestExpressionEval(t *testing.T) {
	s := circuit.NewSchema()
	a := s.AdviceColumn(circuit.FirstPhase)
	f := s.FixedColumn()
	ch := s.Challenge(circuit.FirstPhase)

	var z field.Fr

	env := circuit.Env[field.Fr]{
		Advice: func(col circuit.Column, rot circuit.Rotation) field.Fr {
			assert.Equal(t, a.Index, col.Index)
			return z.FromUint64(uint64(3 + int(rot)))
		},
		Fixed: func(col circuit.Column, rot circuit.Rotation) field.Fr {
			return z.FromUint64(10)
		},
		Challenge: func(id circuit.ChallengeID) field.Fr {
			return z.FromUint64(100)
		},
	}

	x := circuit.Query[field.Fr](a, circuit.RotCur)
	xPrev := circuit.Query[field.Fr](a, circuit.RotPrev)
	q := circuit.Query[field.Fr](f, circuit.RotCur)
	r := circuit.QueryChallenge[field.Fr](ch)

	// x + x.prev*q - r = 3 + 2*10 - 100 = -77
	e := circuit.Sub(circuit.Add(x, circuit.Mul(xPrev, q)), r)
	assert.True(t, e.Eval(env).Equal(z.FromUint64(77).Neg()))

	// Scaling and negation.
	assert.True(t, circuit.Scale(x, z.FromUint64(5)).Eval(env).Equal(z.FromUint64(15)))
	assert.True(t, circuit.Neg(x).Eval(env).Add(z.FromUint64(3)).IsZero())

	// Sum of nothing is zero.
	assert.True(t, circuit.Sum[field.Fr]().Eval(env).IsZero())
}

func TestExpressionEvalMissingAccessorPanics(t *testing.T) {
	s := circuit.NewSchema()
	a := s.AdviceColumn(circuit.FirstPhase)

	x := circuit.Query[field.Fr](a, circuit.RotCur)
	assert.Panics(t, func() { x.Eval(circuit.Env[field.Fr]{}) })
}
