package circuit

import (
	"sync"

	"github.com/zkevmgo/plonkish/field"
)

// ChallengeID identifies a declared challenge.
type ChallengeID struct {
	Index      int
	AfterPhase Phase
}

// Challenges holds the two random scalars used for soundness, in one of
// three forms: as [ChallengeID] handles at configuration time, as
// [Expression] inside constraints, or as concrete field elements during
// witness computation.
//
// The keccak input challenge compresses byte sequences fed to the hash
// tables and is usable after the first phase; the lookup input challenge
// compresses lookup tuples and is usable after the second phase.
type Challenges[T any] struct {
	keccakInput T
	lookupInput T
}

// DeclareChallenges allocates the two challenges in their respective phases.
// Called once at configuration time.
func DeclareChallenges(s *Schema) Challenges[ChallengeID] {
	return Challenges[ChallengeID]{
		keccakInput: s.Challenge(FirstPhase),
		lookupInput: s.Challenge(SecondPhase),
	}
}

// NewChallenges wraps two already-produced challenge forms.
func NewChallenges[T any](keccakInput, lookupInput T) Challenges[T] {
	return Challenges[T]{keccakInput: keccakInput, lookupInput: lookupInput}
}

// KeccakInput returns the challenge gated after the first phase.
func (c Challenges[T]) KeccakInput() T {
	return c.keccakInput
}

// LookupInput returns the challenge gated after the second phase.
func (c Challenges[T]) LookupInput() T {
	return c.lookupInput
}

// Indexed returns the challenges by challenge index.
func (c Challenges[T]) Indexed() [2]T {
	return [2]T{c.keccakInput, c.lookupInput}
}

// ChallengeExprs returns the challenges in symbolic form for use inside
// constraints, valid at configuration time.
func ChallengeExprs[E field.Element[E]](c Challenges[ChallengeID]) Challenges[Expression[E]] {
	return Challenges[Expression[E]]{
		keccakInput: QueryChallenge[E](c.keccakInput),
		lookupInput: QueryChallenge[E](c.lookupInput),
	}
}

// Powers returns the ascending powers base^1 .. base^k, computed by repeated
// multiplication.
func Powers[E field.Element[E]](base Expression[E], k int) []Expression[E] {
	powers := make([]Expression[E], k)
	for i := range powers {
		if i == 0 {
			powers[i] = base
		} else {
			powers[i] = Mul(powers[i-1], base)
		}
	}
	return powers
}

// PowerValues returns the ascending powers base^1 .. base^k as concrete
// values.
func PowerValues[E field.Element[E]](base E, k int) []E {
	powers := make([]E, k)
	for i := range powers {
		if i == 0 {
			powers[i] = base
		} else {
			powers[i] = powers[i-1].Mul(base)
		}
	}
	return powers
}

// Binder binds the challenges to concrete values, exactly once per proof
// instance. Binding is a single-writer event: consumers calling Values block
// until the writer has bound.
type Binder[E field.Element[E]] struct {
	mu    sync.Mutex
	done  chan struct{}
	bound bool
	vals  Challenges[E]
}

// NewBinder creates an unbound Binder.
func NewBinder[E field.Element[E]]() *Binder[E] {
	return &Binder[E]{done: make(chan struct{})}
}

// Bind derives both challenge values from the transcript and publishes them.
// The caller must have written all commitments of the gating phases into the
// oracle beforehand; randomness must never be derivable before the values it
// blinds are committed.
//
// Panics when called twice: a proof instance has exactly one binding.
func (b *Binder[E]) Bind(o *Oracle[E]) Challenges[E] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.bound {
		panic("circuit: challenges already bound")
	}

	o.Finalize()
	b.vals = Challenges[E]{
		keccakInput: o.SampleScalar(),
		lookupInput: o.SampleScalar(),
	}
	b.bound = true
	close(b.done)

	return b.vals
}

// Values returns the bound challenge values, blocking until Bind has run.
func (b *Binder[E]) Values() Challenges[E] {
	<-b.done
	return b.vals
}
