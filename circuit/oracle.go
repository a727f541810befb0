package circuit

import (
	"encoding/binary"

	"github.com/zkevmgo/plonkish/csprng"
	"github.com/zkevmgo/plonkish/field"
)

// Oracle is the Fiat-Shamir transcript that turns committed data into
// challenge values. Both sides of the protocol construct an Oracle, write
// the same commitments in the same order, and derive the same challenges.
type Oracle[E field.Element[E]] struct {
	*csprng.UniformSampler

	sampler *csprng.FieldSampler[E]
}

// NewOracle creates an empty Oracle.
func NewOracle[E field.Element[E]]() *Oracle[E] {
	s := csprng.NewUniformSampler(nil)
	return &Oracle[E]{
		UniformSampler: s,
		sampler:        csprng.NewFieldSampler[E](s),
	}
}

// WriteBytes absorbs an opaque commitment into the transcript.
func (o *Oracle[E]) WriteBytes(p []byte) {
	if _, err := o.Write(p); err != nil {
		panic(err)
	}
}

// WriteScalar absorbs a field element into the transcript in canonical form.
func (o *Oracle[E]) WriteScalar(x E) {
	b := x.Bytes()
	o.WriteBytes(b[:])
}

// WriteUint64 absorbs a length or counter into the transcript.
func (o *Oracle[E]) WriteUint64(x uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], x)
	o.WriteBytes(b[:])
}

// SampleScalar squeezes a uniformly random field element out of the
// transcript. Finalize must have been called after the last write.
func (o *Oracle[E]) SampleScalar() E {
	return o.sampler.Sample()
}
