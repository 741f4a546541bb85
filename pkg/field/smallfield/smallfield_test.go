package smallfield

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldAdd(t *testing.T) {
	f := New(1<<31-1, "mersenne31")
	//
	for range 10000 {
		a := rand.Uint32N(f.modulus)
		b := rand.Uint32N(f.modulus)
		expected := (uint64(a) + uint64(b)) % uint64(f.modulus)
		//
		res := f.NewElement(uint64(a)).Add(f.NewElement(uint64(b)))
		assert.Equal(t, expected, uint64(res.toUint32()), "%d + %d", a, b)
	}
}

func TestFieldSub(t *testing.T) {
	f := New(1<<31-1, "mersenne31")
	//
	for range 10000 {
		a := rand.Uint32N(f.modulus)
		b := rand.Uint32N(f.modulus)
		expected := (uint64(a) + uint64(f.modulus) - uint64(b)) % uint64(f.modulus)
		//
		res := f.NewElement(uint64(a)).Sub(f.NewElement(uint64(b)))
		assert.Equal(t, expected, uint64(res.toUint32()), "%d - %d", a, b)
	}
}

func TestFieldMul(t *testing.T) {
	var i, j, m big.Int
	//
	f := New(1<<31-1, "mersenne31")
	m.SetUint64(uint64(f.modulus))
	//
	for range 10000 {
		a := rand.Uint32N(f.modulus)
		b := rand.Uint32N(f.modulus)
		i.SetUint64(uint64(a))
		j.SetUint64(uint64(b))
		i.Mul(&i, &j).Mod(&i, &m)
		//
		res := f.NewElement(uint64(a)).Mul(f.NewElement(uint64(b)))
		assert.Equal(t, i.Uint64(), uint64(res.toUint32()), "%d * %d", a, b)
	}
}

func TestFieldInverse(t *testing.T) {
	f := New(1<<31-1, "mersenne31")
	//
	assert.True(t, f.NewElement(0).Inverse().IsZero())
	//
	for range 1000 {
		x := f.NewElement(uint64(rand.Uint32N(f.modulus-1) + 1))
		assert.True(t, x.Mul(x.Inverse()).IsOne(), "inverse of %s", x)
	}
}

func TestFieldNeg(t *testing.T) {
	f := New(13, "f13")
	//
	assert.True(t, f.NewElement(0).Neg().IsZero())
	//
	for v := uint64(1); v < 13; v++ {
		x := f.NewElement(v)
		assert.True(t, x.Add(x.Neg()).IsZero(), "negation of %d", v)
		assert.Equal(t, 13-v, uint64(x.Neg().toUint32()))
	}
}

func TestFieldCompositeModulus(t *testing.T) {
	// a ring, not a field: 3 has no inverse modulo 15
	f := New(15, "z15")
	//
	assert.Panics(t, func() {
		f.NewElement(3).Inverse()
	})
	// but units still invert
	assert.True(t, f.NewElement(7).Mul(f.NewElement(7).Inverse()).IsOne())
}

func TestFieldBadModulus(t *testing.T) {
	assert.Panics(t, func() { New(12, "f12") })
	assert.Panics(t, func() { New(1<<31, "toobig") })
}

func TestFieldElementRoundTrip(t *testing.T) {
	f := New(65537, "f65537")
	//
	for range 1000 {
		x := f.NewElement(uint64(rand.Uint32N(f.modulus)))
		//
		parsed, err := x.SetString(x.String())
		assert.NoError(t, err)
		assert.True(t, x.Equals(parsed), "string round trip of %s", x)
		//
		decoded, err := x.SetBytes(x.Bytes())
		assert.NoError(t, err)
		assert.True(t, x.Equals(decoded), "byte round trip of %s", x)
	}
}
