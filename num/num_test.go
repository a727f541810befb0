package num_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/zkevmgo/plonkish/csprng"
	"github.com/zkevmgo/plonkish/field"
	"github.com/zkevmgo/plonkish/num"
)

func TestToWord(t *testing.T) {
	t.Run("Bool", func(t *testing.T) {
		assert.True(t, num.ToWord(true).Eq(uint256.NewInt(1)))
		assert.True(t, num.ToWord(false).IsZero())
	})

	t.Run("Unsigned", func(t *testing.T) {
		assert.True(t, num.ToWord(uint32(17)).Eq(uint256.NewInt(17)))
		assert.True(t, num.ToWord(uint64(1<<40)).Eq(uint256.NewInt(1<<40)))
		assert.True(t, num.ToWord(int(99)).Eq(uint256.NewInt(99)))
	})

	t.Run("NegativeInt32WrapsAround", func(t *testing.T) {
		// -1 maps to 2^256 - 1, never a raw negative representation.
		expected := new(num.Word).Neg(uint256.NewInt(1))
		assert.True(t, num.ToWord(int32(-1)).Eq(expected))

		expected = new(num.Word).Neg(uint256.NewInt(12345))
		assert.True(t, num.ToWord(int32(-12345)).Eq(expected))

		assert.True(t, num.ToWord(int32(7)).Eq(uint256.NewInt(7)))
	})

	t.Run("AddressZeroPadsHigh", func(t *testing.T) {
		addr := common.HexToAddress("0xffeeddccbbaa99887766554433221100ffeeddcc")
		w := num.ToWord(addr)

		be := num.ToBeBytes(w)
		for i := 0; i < 12; i++ {
			assert.Equal(t, byte(0), be[i])
		}
		assert.Equal(t, addr.Bytes(), be[12:])
	})

	t.Run("Hash", func(t *testing.T) {
		var h common.Hash
		h[0] = 0x01
		h[31] = 0xff
		w := num.ToWord(h)
		be := num.ToBeBytes(w)
		assert.Equal(t, h[:], be[:])
	})

	t.Run("UnsupportedTypePanics", func(t *testing.T) {
		assert.Panics(t, func() { num.ToWord("not a chain value") })
		assert.Panics(t, func() { num.ToWord(int(-1)) })
	})
}

func TestByteEncodings(t *testing.T) {
	w := uint256.NewInt(0x0102)

	be := num.ToBeBytes(w)
	le := num.ToLeBytes(w)

	assert.Equal(t, byte(0x02), be[31])
	assert.Equal(t, byte(0x01), be[30])
	assert.Equal(t, byte(0x02), le[0])
	assert.Equal(t, byte(0x01), le[1])

	// Mutually byte-reversed.
	for i := 0; i < 32; i++ {
		assert.Equal(t, be[i], le[31-i])
	}
}

func TestLimbs(t *testing.T) {
	t.Run("LoHi", func(t *testing.T) {
		// 2^128 + 5 decomposes into lo=5, hi=1.
		w := new(num.Word).Lsh(uint256.NewInt(1), 128)
		w.Add(w, uint256.NewInt(5))

		lo, hi := num.LoHi(w)
		assert.True(t, lo.Eq(uint256.NewInt(5)))
		assert.True(t, hi.Eq(uint256.NewInt(1)))
	})

	t.Run("RoundTrip", func(t *testing.T) {
		sampler := csprng.NewStreamSampler()
		for i := 0; i < 256; i++ {
			w := sampler.SampleWord()
			lo, hi := num.LoHi(w)
			assert.True(t, num.FromLoHi(lo, hi).Eq(w))
		}
	})

	t.Run("OversizedLimbPanics", func(t *testing.T) {
		big := new(num.Word).Lsh(uint256.NewInt(1), 130)
		assert.Panics(t, func() { num.FromLoHi(big, uint256.NewInt(0)) })
	})

	t.Run("LoHiScalars", func(t *testing.T) {
		w := new(num.Word).Lsh(uint256.NewInt(1), 128)
		w.Add(w, uint256.NewInt(5))

		var z field.Fr
		lo, hi := num.LoHiScalars[field.Fr](w)
		assert.True(t, lo.Equal(z.FromUint64(5)))
		assert.True(t, hi.Equal(z.FromUint64(1)))
	})
}

func TestToScalar(t *testing.T) {
	var z field.Fr

	t.Run("SmallValue", func(t *testing.T) {
		s, ok := num.ToScalar[field.Fr](uint256.NewInt(42))
		assert.True(t, ok)
		assert.True(t, s.Equal(z.FromUint64(42)))
	})

	t.Run("BytesMatchWordBytes", func(t *testing.T) {
		w := uint256.NewInt(0xabcdef)
		s, ok := num.ToScalar[field.Fr](w)
		assert.True(t, ok)
		assert.Equal(t, num.ToLeBytes(w), s.Bytes())
	})

	t.Run("ModulusOverflows", func(t *testing.T) {
		mod, overflow := uint256.FromBig(z.Modulus())
		assert.False(t, overflow)

		_, ok := num.ToScalar[field.Fr](mod)
		assert.False(t, ok)

		// The modulus is the smallest non-canonical value.
		belowMod := new(num.Word).Sub(mod, uint256.NewInt(1))
		_, ok = num.ToScalar[field.Fr](belowMod)
		assert.True(t, ok)

		aboveMod := new(num.Word).Add(mod, uint256.NewInt(1))
		_, ok = num.ToScalar[field.Fr](aboveMod)
		assert.False(t, ok)
	})

	t.Run("Address", func(t *testing.T) {
		addr := common.HexToAddress("0x00112233445566778899aabbccddeeff00112233")
		s, ok := num.AddressToScalar[field.Fr](addr)
		assert.True(t, ok)
		assert.Equal(t, num.ToLeBytes(num.ToWord(addr)), s.Bytes())
	})
}

func TestToAddress(t *testing.T) {
	addr := common.HexToAddress("0xffeeddccbbaa99887766554433221100ffeeddcc")
	assert.Equal(t, addr, num.ToAddress(num.ToWord(addr)))

	// High 12 bytes are dropped.
	w := num.ToWord(addr)
	wHigh := new(num.Word).Lsh(uint256.NewInt(0xff), 248)
	w.Or(w, wHigh)
	assert.Equal(t, addr, num.ToAddress(w))
}
