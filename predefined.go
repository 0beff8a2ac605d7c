package weierstrass

import (
	"fmt"
	"math/big"
	"strings"
	"sync"
)

// CurveParams contains the parameters of a curve y² = x³ + ax + b over 𝔽_p
// together with a generator of its prime-order subgroup.
type CurveParams struct {
	P       *big.Int // the order of the underlying field
	N       *big.Int // the order of the base point
	A       *big.Int // the linear coefficient of the curve equation
	B       *big.Int // the constant of the curve equation
	Gx, Gy  *big.Int // (x,y) of the base point
	BitSize int      // the size of the underlying field
	Name    string   // the canonical name of the curve
}

func (params *CurveParams) clone() CurveParams {
	c := *params
	for _, v := range []**big.Int{&c.P, &c.N, &c.A, &c.B, &c.Gx, &c.Gy} {
		*v = new(big.Int).Set(*v)
	}
	return c
}

// NamedCurve is an immutable handle to a curve and its generator.
type NamedCurve struct {
	params    CurveParams
	curve     *FieldCurve
	generator Point[FieldElement]
}

// NewNamedCurve builds a NamedCurve from params, checking that the field
// modulus is prime and that the generator lies on the curve.
func NewNamedCurve(params *CurveParams) (*NamedCurve, error) {
	if params == nil || params.P == nil || params.N == nil || params.A == nil ||
		params.B == nil || params.Gx == nil || params.Gy == nil {
		return nil, fmt.Errorf("weierstrass: incomplete parameters for curve %q", params.name())
	}
	p := params.clone()

	a, err := NewFieldElement(p.A, p.P)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}
	b, err := NewFieldElement(p.B, p.P)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}
	curve, err := NewFieldCurve(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}
	gx, err := NewFieldElement(p.Gx, p.P)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}
	gy, err := NewFieldElement(p.Gy, p.P)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}
	g, err := NewAffine[FieldElement](curve, gx, gy)
	if err != nil {
		return nil, fmt.Errorf("%s generator: %w", p.Name, err)
	}
	return &NamedCurve{params: p, curve: curve, generator: g}, nil
}

func (params *CurveParams) name() string {
	if params == nil {
		return ""
	}
	return params.Name
}

// Params returns a copy of the parameters of c.
func (c *NamedCurve) Params() *CurveParams {
	p := c.params.clone()
	return &p
}

func (c *NamedCurve) Curve() *FieldCurve {
	return c.curve
}

func (c *NamedCurve) Generator() Point[FieldElement] {
	return c.generator
}

// Order returns the order of the generator.
func (c *NamedCurve) Order() *big.Int {
	return new(big.Int).Set(c.params.N)
}

// ScalarBaseMult returns k·G, where G is the generator of c.
func (c *NamedCurve) ScalarBaseMult(k *big.Int) (Point[FieldElement], error) {
	return c.generator.ScalarMult(k)
}

func (c *NamedCurve) String() string {
	return c.params.Name
}

var initonce sync.Once
var p224 *NamedCurve
var p256 *NamedCurve
var p384 *NamedCurve
var p521 *NamedCurve
var p256k1 *NamedCurve

func initAll() {
	initP224()
	initP256()
	initP384()
	initP521()
	initSecp256k1()
}

func mustInt(s string, base int) *big.Int {
	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		panic("weierstrass: invalid curve constant " + s)
	}
	return n
}

func mustNamedCurve(params *CurveParams) *NamedCurve {
	c, err := NewNamedCurve(params)
	if err != nil {
		panic(err)
	}
	return c
}

func initP224() {
	// See FIPS 186-3, section D.2.2
	p224 = mustNamedCurve(&CurveParams{
		Name:    "P-224",
		P:       mustInt("26959946667150639794667015087019630673557916260026308143510066298881", 10),
		N:       mustInt("26959946667150639794667015087019625940457807714424391721682722368061", 10),
		A:       big.NewInt(-3),
		B:       mustInt("b4050a850c04b3abf54132565044b0b7d7bfd8ba270b39432355ffb4", 16),
		Gx:      mustInt("b70e0cbd6bb4bf7f321390b94a03c1d356c21122343280d6115c1d21", 16),
		Gy:      mustInt("bd376388b5f723fb4c22dfe6cd4375a05a07476444d5819985007e34", 16),
		BitSize: 224,
	})
}

// P224 returns NIST P-224 (FIPS 186-3, section D.2.2), also known as
// secp224r1.
//
// Multiple invocations of this function will return the same value.
func P224() *NamedCurve {
	initonce.Do(initAll)
	return p224
}

func initP256() {
	// See FIPS 186-3, section D.2.3
	p256 = mustNamedCurve(&CurveParams{
		Name:    "P-256",
		P:       mustInt("115792089210356248762697446949407573530086143415290314195533631308867097853951", 10),
		N:       mustInt("115792089210356248762697446949407573529996955224135760342422259061068512044369", 10),
		A:       big.NewInt(-3),
		B:       mustInt("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b", 16),
		Gx:      mustInt("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296", 16),
		Gy:      mustInt("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5", 16),
		BitSize: 256,
	})
}

// P256 returns NIST P-256 (FIPS 186-3, section D.2.3), also known as
// secp256r1 or prime256v1.
//
// Multiple invocations of this function will return the same value.
func P256() *NamedCurve {
	initonce.Do(initAll)
	return p256
}

func initP384() {
	// See FIPS 186-3, section D.2.4
	p384 = mustNamedCurve(&CurveParams{
		Name:    "P-384",
		P:       mustInt("39402006196394479212279040100143613805079739270465446667948293404245721771496870329047266088258938001861606973112319", 10),
		N:       mustInt("39402006196394479212279040100143613805079739270465446667946905279627659399113263569398956308152294913554433653942643", 10),
		A:       big.NewInt(-3),
		B:       mustInt("b3312fa7e23ee7e4988e056be3f82d19181d9c6efe8141120314088f5013875ac656398d8a2ed19d2a85c8edd3ec2aef", 16),
		Gx:      mustInt("aa87ca22be8b05378eb1c71ef320ad746e1d3b628ba79b9859f741e082542a385502f25dbf55296c3a545e3872760ab7", 16),
		Gy:      mustInt("3617de4a96262c6f5d9e98bf9292dc29f8f41dbd289a147ce9da3113b5f0b8c00a60b1ce1d7e819d7a431d7c90ea0e5f", 16),
		BitSize: 384,
	})
}

// P384 returns NIST P-384 (FIPS 186-3, section D.2.4), also known as
// secp384r1.
//
// Multiple invocations of this function will return the same value.
func P384() *NamedCurve {
	initonce.Do(initAll)
	return p384
}

func initP521() {
	// See FIPS 186-3, section D.2.5
	p521 = mustNamedCurve(&CurveParams{
		Name:    "P-521",
		P:       mustInt("6864797660130609714981900799081393217269435300143305409394463459185543183397656052122559640661454554977296311391480858037121987999716643812574028291115057151", 10),
		N:       mustInt("6864797660130609714981900799081393217269435300143305409394463459185543183397655394245057746333217197532963996371363321113864768612440380340372808892707005449", 10),
		A:       big.NewInt(-3),
		B:       mustInt("051953eb9618e1c9a1f929a21a0b68540eea2da725b99b315f3b8b489918ef109e156193951ec7e937b1652c0bd3bb1bf073573df883d2c34f1ef451fd46b503f00", 16),
		Gx:      mustInt("c6858e06b70404e9cd9e3ecb662395b4429c648139053fb521f828af606b4d3dbaa14b5e77efe75928fe1dc127a2ffa8de3348b3c1856a429bf97e7e31c2e5bd66", 16),
		Gy:      mustInt("11839296a789a3bc0045c8a5fb42c7d1bd998f54449579b446817afbd17273e662c97ee72995ef42640c550b9013fad0761353c7086a272c24088be94769fd16650", 16),
		BitSize: 521,
	})
}

// P521 returns NIST P-521 (FIPS 186-3, section D.2.5), also known as
// secp521r1.
//
// Multiple invocations of this function will return the same value.
func P521() *NamedCurve {
	initonce.Do(initAll)
	return p521
}

func initSecp256k1() {
	// See https://www.secg.org/sec2-v2.pdf, section 2.4.1
	// curve equation y² = x³ + 7
	p256k1 = mustNamedCurve(&CurveParams{
		Name:    "secp256k1",
		P:       mustInt("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", 16),
		N:       mustInt("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16),
		A:       big.NewInt(0),
		B:       big.NewInt(7),
		Gx:      mustInt("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798", 16),
		Gy:      mustInt("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8", 16),
		BitSize: 256,
	})
}

// Secp256k1 returns secp256k1 (https://www.secg.org/sec2-v2.pdf, section
// 2.4.1), the curve used by Bitcoin.
//
// Multiple invocations of this function will return the same value.
func Secp256k1() *NamedCurve {
	initonce.Do(initAll)
	return p256k1
}

// Lookup returns the predefined curve with the given name. Both the NIST and
// the SEC 2 names are accepted, case-insensitively.
func Lookup(name string) (*NamedCurve, error) {
	switch strings.ToLower(name) {
	case "p-224", "p224", "secp224r1":
		return P224(), nil
	case "p-256", "p256", "secp256r1", "prime256v1":
		return P256(), nil
	case "p-384", "p384", "secp384r1":
		return P384(), nil
	case "p-521", "p521", "secp521r1":
		return P521(), nil
	case "secp256k1", "p-256k1":
		return Secp256k1(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
}
