package smallfield

import (
	"cmp"
	"encoding/binary"
	"math/big"
	"strconv"

	"github.com/consensys/scalarff/pkg/field"
)

// A Field of odd order, less than 2³¹, intended for testing and educational
// use.  The resulting ring is a field exactly when the modulus is prime.
// Elements are represented in Montgomery form to speed up multiplications.
type Field struct {
	name              string
	modulus           uint32
	negModulusInvModR uint32
}

// New constructs a field of the given order.  The modulus must be odd and
// below 2³¹.
func New(modulus uint32, name string) *Field {
	if modulus >= 1<<31 {
		panic("modulus too large") // need at least one bit of "slack"
	}

	if modulus%2 == 0 {
		panic("modulus must be odd") // Montgomery reduction requires it
	}

	m := big.NewInt(int64(modulus))
	m.ModInverse(m, big.NewInt(1<<32))

	return &Field{name: name, modulus: modulus, negModulusInvModR: uint32(1<<32 - m.Uint64())}
}

// NewElement returns the element of f corresponding to the natural number v.
func (f *Field) NewElement(v uint64) Element {
	v %= uint64(f.modulus)
	//
	return Element{f, uint32(v << 32 % uint64(f.modulus))}
}

// montgomeryReduce x -> x.R⁻¹ (mod m)
func (f *Field) montgomeryReduce(x uint64) uint32 {
	// textbook Montgomery reduction
	const R = 1 << 32
	m := (x * uint64(f.negModulusInvModR)) % R // m = x * (-modulus⁻¹) (mod R)

	res := uint32((x + m*uint64(f.modulus)) / R)
	if res >= f.modulus {
		res -= f.modulus
	}

	return res
}

// Element of a Field, carrying a handle to the field it belongs to since the
// modulus is only known at runtime.  The zero value is unusable: elements
// must be created through a Field handle, or derived from an existing
// element.
type Element struct {
	field *Field
	// value in Montgomery form
	value uint32
}

// Add x + y
func (x Element) Add(y Element) Element {
	res := x.value + y.value
	if res >= x.field.modulus {
		res -= x.field.modulus
	}

	return Element{x.field, res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	const negMask uint32 = 1 << 31

	res := x.value - y.value
	if res&negMask != 0 {
		res += x.field.modulus
	}

	return Element{x.field, res}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	return Element{x.field, x.field.montgomeryReduce(uint64(x.value) * uint64(y.value))}
}

// Neg -x
func (x Element) Neg() Element {
	if x.value == 0 {
		return x
	}

	return Element{x.field, x.field.modulus - x.value}
}

// Inverse x⁻¹, or 0 if x = 0.  Panics when the receiver is a nonzero
// non-invertible element, which can only happen in a ring whose modulus is
// not prime.
func (x Element) Inverse() Element {
	if x.value == 0 {
		return x
	}
	//
	inv := new(big.Int).SetUint64(uint64(x.toUint32()))
	if inv.ModInverse(inv, x.Modulus()) == nil {
		panic(&field.InvariantViolation{Field: x.Name(), Msg: "element has no inverse; modulus is not prime"})
	}
	//
	return x.field.NewElement(inv.Uint64())
}

// Cmp compares the numerical values of x and y.
func (x Element) Cmp(y Element) int {
	return cmp.Compare(x.toUint32(), y.toUint32())
}

// Equals implementation for the Element interface
func (x Element) Equals(y Element) bool {
	return x.value == y.value
}

// IsZero implementation for the Element interface
func (x Element) IsZero() bool {
	return x.value == 0
}

// IsOne implementation for the Element interface
func (x Element) IsOne() bool {
	return x.toUint32() == 1
}

// Modulus implementation for the Element interface
func (x Element) Modulus() *big.Int {
	return new(big.Int).SetUint64(uint64(x.field.modulus))
}

// SetUint64 implementation for the Element interface
func (x Element) SetUint64(val uint64) Element {
	return x.field.NewElement(val)
}

// SetString parses a decimal string into an element.
func (x Element) SetString(s string) (Element, error) {
	value, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Element{}, &field.ParseError{Field: x.Name(), Input: s}
	}
	//
	value.Mod(value, x.Modulus())
	//
	return x.field.NewElement(value.Uint64()), nil
}

// Bytes returns the little-endian encoded value of the Element, always
// exactly four bytes wide.
func (x Element) Bytes() []byte {
	var bytes [4]byte
	//
	binary.LittleEndian.PutUint32(bytes[:], x.toUint32())
	//
	return bytes[:]
}

// SetBytes decodes a little-endian encoding, reducing out-of-range values
// modulo the modulus.
func (x Element) SetBytes(bytes []byte) (Element, error) {
	if uint(len(bytes)) > x.ByteWidth() {
		return Element{}, &field.LengthError{Field: x.Name(), Expected: x.ByteWidth(), Got: uint(len(bytes))}
	}
	//
	var padded [4]byte
	copy(padded[:], bytes)
	//
	return x.field.NewElement(uint64(binary.LittleEndian.Uint32(padded[:]))), nil
}

// ByteWidth implementation for the Element interface
func (x Element) ByteWidth() uint {
	return 4
}

// Name implementation for the Element interface
func (x Element) Name() string {
	return x.field.name
}

func (x Element) String() string {
	return strconv.FormatUint(uint64(x.toUint32()), 10)
}

// Text implementation for the Element interface
func (x Element) Text(base int) string {
	return strconv.FormatUint(uint64(x.toUint32()), base)
}

// toUint32 returns the numerical (non-Montgomery) value of x.
func (x Element) toUint32() uint32 {
	return x.field.montgomeryReduce(uint64(x.value))
}
