package csprng

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"

	"github.com/zkevmgo/plonkish/num"
)

// StreamSampler samples values from uniform distribution.
// This uses AES-256 as an underlying prng. It is meant for generating
// test vectors and witnesses, not transcript randomness.
type StreamSampler struct {
	prng cipher.Stream

	buf [32]byte
}

// NewStreamSampler creates a new StreamSampler.
//
// Panics when read from crypto/rand or AES initialization fails.
func NewStreamSampler() *StreamSampler {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic(err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		panic(err)
	}

	iv := make([]byte, block.BlockSize())
	if _, err := rand.Read(iv); err != nil {
		panic(err)
	}

	return &StreamSampler{
		prng: cipher.NewCTR(block, iv),
	}
}

// Read implements the [io.Reader] interface.
func (s *StreamSampler) Read(p []byte) (n int, err error) {
	s.prng.XORKeyStream(p, p)
	return len(p), nil
}

// SampleUint64 uniformly samples a random uint64.
func (s *StreamSampler) SampleUint64() uint64 {
	s.prng.XORKeyStream(s.buf[:8], s.buf[:8])

	var res uint64
	for i := 0; i < 8; i++ {
		res |= uint64(s.buf[i]) << (8 * i)
	}
	return res
}

// SampleWord uniformly samples a random 256-bit Word.
func (s *StreamSampler) SampleWord() *num.Word {
	s.prng.XORKeyStream(s.buf[:], s.buf[:])
	return new(num.Word).SetBytes(s.buf[:])
}
