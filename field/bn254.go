package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Fr is the BN254 scalar field, the field proofs are checked over.
type Fr struct {
	v fr.Element
}

// NewFr creates an Fr from a small unsigned integer.
func NewFr(x uint64) Fr {
	var z Fr
	z.v.SetUint64(x)
	return z
}

func (Fr) Zero() Fr {
	return Fr{}
}

func (Fr) One() Fr {
	var z Fr
	z.v.SetOne()
	return z
}

func (Fr) FromUint64(x uint64) Fr {
	var z Fr
	z.v.SetUint64(x)
	return z
}

func (x Fr) Add(y Fr) Fr {
	var z Fr
	z.v.Add(&x.v, &y.v)
	return z
}

func (x Fr) Sub(y Fr) Fr {
	var z Fr
	z.v.Sub(&x.v, &y.v)
	return z
}

func (x Fr) Mul(y Fr) Fr {
	var z Fr
	z.v.Mul(&x.v, &y.v)
	return z
}

func (x Fr) Neg() Fr {
	var z Fr
	z.v.Neg(&x.v)
	return z
}

func (x Fr) IsZero() bool {
	return x.v.IsZero()
}

func (x Fr) Equal(y Fr) bool {
	return x.v.Equal(&y.v)
}

func (x Fr) Cmp(y Fr) int {
	return x.v.Cmp(&y.v)
}

func (x Fr) Bytes() [32]byte {
	return reverse32(x.v.Bytes())
}

func (Fr) FromBytes(b [32]byte) (Fr, bool) {
	var z Fr
	be := reverse32(b)
	if err := z.v.SetBytesCanonical(be[:]); err != nil {
		return Fr{}, false
	}
	return z, true
}

func (Fr) Modulus() *big.Int {
	return fr.Modulus()
}

func (x Fr) String() string {
	return x.v.String()
}

// Fq is the BN254 base field.
type Fq struct {
	v fp.Element
}

// NewFq creates an Fq from a small unsigned integer.
func NewFq(x uint64) Fq {
	var z Fq
	z.v.SetUint64(x)
	return z
}

func (Fq) Zero() Fq {
	return Fq{}
}

func (Fq) One() Fq {
	var z Fq
	z.v.SetOne()
	return z
}

func (Fq) FromUint64(x uint64) Fq {
	var z Fq
	z.v.SetUint64(x)
	return z
}

func (x Fq) Add(y Fq) Fq {
	var z Fq
	z.v.Add(&x.v, &y.v)
	return z
}

func (x Fq) Sub(y Fq) Fq {
	var z Fq
	z.v.Sub(&x.v, &y.v)
	return z
}

func (x Fq) Mul(y Fq) Fq {
	var z Fq
	z.v.Mul(&x.v, &y.v)
	return z
}

func (x Fq) Neg() Fq {
	var z Fq
	z.v.Neg(&x.v)
	return z
}

func (x Fq) IsZero() bool {
	return x.v.IsZero()
}

func (x Fq) Equal(y Fq) bool {
	return x.v.Equal(&y.v)
}

func (x Fq) Cmp(y Fq) int {
	return x.v.Cmp(&y.v)
}

func (x Fq) Bytes() [32]byte {
	return reverse32(x.v.Bytes())
}

func (Fq) FromBytes(b [32]byte) (Fq, bool) {
	var z Fq
	be := reverse32(b)
	if err := z.v.SetBytesCanonical(be[:]); err != nil {
		return Fq{}, false
	}
	return z, true
}

func (Fq) Modulus() *big.Int {
	return fp.Modulus()
}

func (x Fq) String() string {
	return x.v.String()
}

// reverse32 flips between the big-endian form used by gnark-crypto and the
// little-endian canonical form exposed by this package.
func reverse32(b [32]byte) [32]byte {
	for i, j := 0, 31; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}
