package ecelgamal

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
)

// smallFieldBits is the widest field on which point orders are counted.
const smallFieldBits = 20

// Curve is a short Weierstrass curve y^2 = x^3 + a*x + b over the prime field of
// order p, optionally carrying a generator point and its order.
// A Curve is immutable; methods which change parameters return a new Curve.
type Curve struct {
	name string
	p    *big.Int
	a    *big.Int
	b    *big.Int
	g    Point
	n    *big.Int
}

// NewCurve returns the curve y^2 = x^3 + a*x + b mod p. The modulus must be a prime
// greater than 3 and the curve must be non-singular.
func NewCurve(p, a, b *big.Int) (*Curve, error) {
	if p == nil || a == nil || b == nil {
		return nil, fmt.Errorf("curve parameters must not be nil")
	}
	if p.Cmp(three) <= 0 {
		return nil, ErrInvalidModulus
	}
	c := &Curve{
		p: new(big.Int).Set(p),
		a: Mod(a, p),
		b: Mod(b, p),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewCurveInt64 is a shorthand for NewCurve with small parameters.
func NewCurveInt64(p, a, b int64) (*Curve, error) {
	return NewCurve(big.NewInt(p), big.NewInt(a), big.NewInt(b))
}

// Validate checks that the modulus is a prime greater than 3, that the curve is
// non-singular and that the generator, if any, lies on the curve.
func (c *Curve) Validate() error {
	if c.p == nil || c.p.Cmp(three) <= 0 || !c.p.ProbablyPrime(20) {
		return ErrInvalidModulus
	}
	if c.Discriminant().Sign() == 0 {
		return ErrSingularCurve
	}
	if c.g != nil {
		if err := c.checkPoint(c.g); err != nil {
			return fmt.Errorf("invalid generator: %w", err)
		}
	}
	return nil
}

// Discriminant returns 4a^3 + 27b^2 mod p. The curve is singular when it is zero.
func (c *Curve) Discriminant() *big.Int {
	a3 := c.fieldMul(c.fieldSquare(c.a), c.a)
	b2 := c.fieldSquare(c.b)
	return c.fieldAdd(c.fieldMul(big.NewInt(4), a3), c.fieldMul(big.NewInt(27), b2))
}

// WithGenerator returns a copy of the curve with the generator g of order n.
// If n is nil, the order is computed by counting for small fields (p < 2^20),
// and left unknown otherwise.
func (c *Curve) WithGenerator(g Point, n *big.Int) (*Curve, error) {
	if err := c.checkPoint(g); err != nil {
		return nil, fmt.Errorf("invalid generator: %w", err)
	}
	if isIdentity(g) {
		return nil, fmt.Errorf("invalid generator: %w", &InvalidPointError{Reason: "identity"})
	}
	cc := c.clone()
	cc.g = g
	switch {
	case n != nil:
		r, err := c.ScalarMult(n, g)
		if err != nil {
			return nil, err
		}
		if !r.IsIdentity() {
			return nil, fmt.Errorf("%w: %v is not the order of the generator", ErrInvalidScalar, n)
		}
		cc.n = new(big.Int).Set(n)
	case c.p.BitLen() <= smallFieldBits:
		order, err := c.PointOrder(g)
		if err != nil {
			return nil, err
		}
		cc.n = order
	}
	return cc, nil
}

// WithName returns a copy of the curve with the given name.
func (c *Curve) WithName(name string) *Curve {
	cc := c.clone()
	cc.name = name
	return cc
}

func (c *Curve) clone() *Curve {
	cc := *c
	return &cc
}

// Name returns the curve name, or an empty string for unnamed curves.
func (c *Curve) Name() string {
	return c.name
}

// P returns the field modulus.
func (c *Curve) P() *big.Int {
	return new(big.Int).Set(c.p)
}

// A returns the a coefficient, reduced mod p.
func (c *Curve) A() *big.Int {
	return new(big.Int).Set(c.a)
}

// B returns the b coefficient, reduced mod p.
func (c *Curve) B() *big.Int {
	return new(big.Int).Set(c.b)
}

// Generator returns the generator point, or ErrNoGenerator.
func (c *Curve) Generator() (Point, error) {
	if c.g == nil {
		return nil, ErrNoGenerator
	}
	return c.g, nil
}

// N returns the order of the generator, or nil if it is unknown.
func (c *Curve) N() *big.Int {
	if c.n == nil {
		return nil
	}
	return new(big.Int).Set(c.n)
}

// ByteLen returns the length of a serialized field element.
func (c *Curve) ByteLen() int {
	return (c.p.BitLen() + 7) / 8
}

// Equal returns true if both curves have the same equation and generator.
func (c *Curve) Equal(other *Curve) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	if c.p.Cmp(other.p) != 0 || c.a.Cmp(other.a) != 0 || c.b.Cmp(other.b) != 0 {
		return false
	}
	if (c.g == nil) != (other.g == nil) {
		return false
	}
	return c.g == nil || c.g.Equal(other.g)
}

func (c *Curve) String() string {
	if c.name != "" {
		return c.name
	}
	return fmt.Sprintf("y^2 = x^3 + %vx + %v mod %v", c.a, c.b, c.p)
}

// NewPoint returns the affine point (x, y) after checking that the coordinates are
// field elements and that the point lies on the curve.
func (c *Curve) NewPoint(x, y *big.Int) (Point, error) {
	p := NewAffine(x, y)
	if err := c.checkPoint(p); err != nil {
		return nil, err
	}
	return p, nil
}

// checkPoint returns an *InvalidPointError if p is not a point of this curve.
func (c *Curve) checkPoint(p Point) error {
	if isIdentity(p) {
		return nil
	}
	ap, _ := asAffine(p)
	if !c.inField(ap.xv()) || !c.inField(ap.yv()) {
		return &InvalidPointError{X: ap.X(), Y: ap.Y(), Reason: "coordinate out of range"}
	}
	if !c.IsOnCurve(ap) {
		return &InvalidPointError{X: ap.X(), Y: ap.Y(), Reason: "not on curve " + c.String()}
	}
	return nil
}

func (c *Curve) inField(v *big.Int) bool {
	return v.Sign() >= 0 && v.Cmp(c.p) < 0
}

// curveJSON is used to read and write curve definitions. Integers are written in
// hex with a 0x prefix; decimal is accepted on input.
type curveJSON struct {
	Name string `json:"name,omitempty"`
	P    string `json:"p,omitempty"`
	A    string `json:"a,omitempty"`
	B    string `json:"b,omitempty"`
	Gx   string `json:"gx,omitempty"`
	Gy   string `json:"gy,omitempty"`
	N    string `json:"n,omitempty"`
}

// MarshalJSON returns the curve definition as JSON.
func (c *Curve) MarshalJSON() ([]byte, error) {
	cj := curveJSON{
		Name: c.name,
		P:    hexInt(c.p),
		A:    hexInt(c.a),
		B:    hexInt(c.b),
	}
	if g, ok := asAffine(c.g); ok {
		cj.Gx = hexInt(g.xv())
		cj.Gy = hexInt(g.yv())
	}
	if c.n != nil {
		cj.N = hexInt(c.n)
	}
	return json.Marshal(cj)
}

// UnmarshalJSON reads a curve definition. A definition holding only the name of
// a preset curve resolves to that preset.
func (c *Curve) UnmarshalJSON(data []byte) error {
	var cj curveJSON
	if err := json.Unmarshal(data, &cj); err != nil {
		return err
	}
	if cj.P == "" {
		preset := GetCurve(StringToEllipticCurve(cj.Name))
		if preset == nil {
			return ErrUnsupportedCurve
		}
		*c = *preset
		return nil
	}
	var p, a, b *big.Int
	var err error
	if p, err = ParseInt(cj.P); err != nil {
		return fmt.Errorf("invalid p: %w", err)
	}
	if a, err = ParseInt(cj.A); err != nil {
		return fmt.Errorf("invalid a: %w", err)
	}
	if b, err = ParseInt(cj.B); err != nil {
		return fmt.Errorf("invalid b: %w", err)
	}
	curve, err := NewCurve(p, a, b)
	if err != nil {
		return err
	}
	if cj.Gx != "" || cj.Gy != "" {
		gx, err := ParseInt(cj.Gx)
		if err != nil {
			return fmt.Errorf("invalid gx: %w", err)
		}
		gy, err := ParseInt(cj.Gy)
		if err != nil {
			return fmt.Errorf("invalid gy: %w", err)
		}
		var n *big.Int
		if cj.N != "" {
			if n, err = ParseInt(cj.N); err != nil {
				return fmt.Errorf("invalid n: %w", err)
			}
		}
		if curve, err = curve.WithGenerator(NewAffine(gx, gy), n); err != nil {
			return err
		}
	}
	*c = *curve.WithName(cj.Name)
	return nil
}

// LoadCurve reads a JSON curve definition from file.
func LoadCurve(fileName string) (*Curve, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to load curve: %v", err)
	}
	c := new(Curve)
	if err := json.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}
