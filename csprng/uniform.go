// Package csprng implements cryptographically secure pseudorandom samplers,
// used for deriving transcript challenges and generating test data.
package csprng

import (
	"io"

	"golang.org/x/crypto/blake2b"

	"github.com/zkevmgo/plonkish/field"
)

// UniformSampler is an absorb-then-squeeze entropy source.
// This uses blake2b as an underlying prng: data written into the sampler
// seeds the stream read back out, so two samplers fed the same writes
// produce the same stream.
type UniformSampler struct {
	prngWriter blake2b.XOF
	prngReader blake2b.XOF
}

// NewUniformSampler creates a new UniformSampler with an optional seed.
//
// Panics when blake2b initialization fails.
func NewUniformSampler(seed []byte) *UniformSampler {
	prng, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		panic(err)
	}

	if len(seed) > 0 {
		if _, err = prng.Write(seed); err != nil {
			panic(err)
		}
	}

	return &UniformSampler{
		prngWriter: prng,
		prngReader: prng.Clone(),
	}
}

// Read implements the [io.Reader] interface.
func (s *UniformSampler) Read(p []byte) (n int, err error) {
	return s.prngReader.Read(p)
}

// Write implements the [io.Writer] interface.
func (s *UniformSampler) Write(p []byte) (n int, err error) {
	return s.prngWriter.Write(p)
}

// Reset resets the UniformSampler to its initial state.
func (s *UniformSampler) Reset() {
	s.prngWriter.Reset()
	s.prngReader.Reset()
}

// Finalize finalizes the writes so far, so that subsequent reads depend on
// everything written up to this point.
func (s *UniformSampler) Finalize() {
	s.prngReader = s.prngWriter.Clone()
}

// FieldSampler samples uniformly random field elements from an entropy
// stream, by rejection sampling below the field modulus.
type FieldSampler[E field.Element[E]] struct {
	source io.Reader

	buf     [32]byte
	msbMask byte
}

// NewFieldSampler creates a new FieldSampler reading from source.
func NewFieldSampler[E field.Element[E]](source io.Reader) *FieldSampler[E] {
	var z E
	b := uint(z.Modulus().BitLen() % 8)
	if b == 0 {
		b = 8
	}

	return &FieldSampler[E]{
		source:  source,
		msbMask: byte(1<<b) - 1,
	}
}

// Sample samples a uniformly random field element.
//
// Panics when the underlying source fails.
func (s *FieldSampler[E]) Sample() E {
	var z E
	for {
		if _, err := io.ReadFull(s.source, s.buf[:]); err != nil {
			panic(err)
		}

		// Canonical form is little endian, so the most significant byte is last.
		s.buf[31] &= s.msbMask

		if v, ok := z.FromBytes(s.buf); ok {
			return v
		}
	}
}
