package main

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/regnull/ecelgamal"
	"github.com/regnull/ecelgamal/internal/logging"
	"gopkg.in/urfave/cli.v1"
)

// env is what every command works with: the selected curve, the output and the logger.
type env struct {
	curve *ecelgamal.Curve
	out   io.Writer
	log   logging.Logger
}

func setup(c *cli.Context) (*env, error) {
	log := logging.New(os.Stderr, c.GlobalBool("verbose")).With("cmd", c.Command.Name)
	curve, err := loadCurve(c)
	if err != nil {
		return nil, err
	}
	log.Debug("curve loaded", "curve", curve.String())
	return &env{curve: curve, out: c.App.Writer, log: log}, nil
}

// loadCurve picks the curve from --curve-file, --prime/--a/--b or --curve, in this order.
func loadCurve(c *cli.Context) (*ecelgamal.Curve, error) {
	if fileName := c.GlobalString("curve-file"); fileName != "" {
		return ecelgamal.LoadCurve(fileName)
	}
	if c.GlobalString("prime") != "" {
		var params [3]*big.Int
		for i, name := range []string{"prime", "a", "b"} {
			v, err := ecelgamal.ParseInt(c.GlobalString(name))
			if err != nil {
				return nil, fmt.Errorf("invalid --%s: %v", name, err)
			}
			params[i] = v
		}
		curve, err := ecelgamal.NewCurve(params[0], params[1], params[2])
		if err != nil {
			return nil, err
		}
		if g := c.GlobalString("generator"); g != "" {
			point, err := parsePoint(g)
			if err != nil {
				return nil, fmt.Errorf("invalid --generator: %v", err)
			}
			return curve.WithGenerator(point, nil)
		}
		return curve, nil
	}
	curve := ecelgamal.GetCurve(ecelgamal.StringToEllipticCurve(c.GlobalString("curve")))
	if curve == nil {
		return nil, fmt.Errorf("%w: %q", ecelgamal.ErrUnsupportedCurve, c.GlobalString("curve"))
	}
	return curve, nil
}

// parsePoint reads "x,y", or "O" / "inf" for the point at infinity. The point is
// not checked against any curve.
func parsePoint(s string) (ecelgamal.Point, error) {
	s = strings.TrimSpace(s)
	if s == "O" || strings.EqualFold(s, "inf") {
		return ecelgamal.Infinity, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected x,y but got %q", s)
	}
	x, err := ecelgamal.ParseInt(parts[0])
	if err != nil {
		return nil, err
	}
	y, err := ecelgamal.ParseInt(parts[1])
	if err != nil {
		return nil, err
	}
	return ecelgamal.NewAffine(x, y), nil
}

func (e *env) pointArg(c *cli.Context, i int) (ecelgamal.Point, error) {
	if c.NArg() <= i {
		return nil, fmt.Errorf("missing point argument, see --help")
	}
	p, err := parsePoint(c.Args().Get(i))
	if err != nil {
		return nil, err
	}
	if !e.curve.IsOnCurve(p) {
		e.log.Info("point is not on the curve", "point", p.String())
	}
	return p, nil
}

func curveAction(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	curve := e.curve
	fmt.Fprintf(e.out, "curve: y^2 = x^3 + %v*x + %v mod %v\n", curve.A(), curve.B(), curve.P())
	fmt.Fprintf(e.out, "discriminant: %v\n", curve.Discriminant())
	if g, err := curve.Generator(); err == nil {
		fmt.Fprintf(e.out, "generator: %v\n", g)
	}
	if n := curve.N(); n != nil {
		fmt.Fprintf(e.out, "order: %v\n", n)
	}
	fmt.Fprintln(e.out, "valid curve")
	return nil
}

func checkAction(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	p, err := e.pointArg(c, 0)
	if err != nil {
		return err
	}
	if a, ok := p.(ecelgamal.Affine); ok {
		curve := e.curve
		x, y := a.X(), a.Y()
		y2 := ecelgamal.Mod(new(big.Int).Mul(y, y), curve.P())
		rhs := new(big.Int).Exp(x, big.NewInt(3), nil)
		rhs.Add(rhs, new(big.Int).Mul(curve.A(), x)).Add(rhs, curve.B())
		fmt.Fprintf(e.out, "y^2 mod p = %v\n", y2)
		fmt.Fprintf(e.out, "x^3 + ax + b mod p = %v\n", ecelgamal.Mod(rhs, curve.P()))
	}
	fmt.Fprintf(e.out, "on curve: %v\n", e.curve.IsOnCurve(p))
	return nil
}

func addAction(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	p, err := e.pointArg(c, 0)
	if err != nil {
		return err
	}
	q, err := e.pointArg(c, 1)
	if err != nil {
		return err
	}
	r, err := e.curve.Add(p, q)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, r)
	return nil
}

func doubleAction(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	p, err := e.pointArg(c, 0)
	if err != nil {
		return err
	}
	r, err := e.curve.Double(p)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, r)
	return nil
}

func mulAction(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	p, err := e.pointArg(c, 0)
	if err != nil {
		return err
	}
	k, err := ecelgamal.ParseInt(c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("invalid scalar: %v", err)
	}
	r, err := e.curve.ScalarMult(k, p)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, r)
	return nil
}

func orderAction(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	p, err := e.pointArg(c, 0)
	if err != nil {
		return err
	}
	n, err := e.curve.PointOrder(p)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, n)
	return nil
}

func demoAction(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	curve := e.curve
	g, err := curve.Generator()
	if err != nil {
		return err
	}
	d, err := ecelgamal.ParseInt(c.String("secret"))
	if err != nil {
		return fmt.Errorf("invalid --secret: %v", err)
	}
	k, err := ecelgamal.ParseInt(c.String("ephemeral"))
	if err != nil {
		return fmt.Errorf("invalid --ephemeral: %v", err)
	}
	m, err := parsePoint(c.String("message"))
	if err != nil {
		return fmt.Errorf("invalid --message: %v", err)
	}
	if !curve.IsOnCurve(m) {
		e.log.Info("message is not on the curve", "message", m.String())
	}
	e.log.Debug("deriving public key", logging.Redacted("secret"))

	q, err := curve.DerivePublicKey(g, d)
	if err != nil {
		return err
	}
	ct, err := curve.Encrypt(m, k, g, q)
	if err != nil {
		return err
	}
	decrypted, err := curve.Decrypt(ct.C1, ct.C2, d)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Q = %v\n", q)
	fmt.Fprintf(e.out, "C1 = %v\n", ct.C1)
	fmt.Fprintf(e.out, "C2 = %v\n", ct.C2)
	fmt.Fprintf(e.out, "M = %v\n", decrypted)
	if !decrypted.Equal(m) {
		return fmt.Errorf("decrypted message %v does not match %v", decrypted, m)
	}
	fmt.Fprintln(e.out, "OK")
	return nil
}

func keygenAction(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	out := c.String("out")
	if out == "" {
		return fmt.Errorf("--out is required")
	}
	key, err := ecelgamal.NewPrivateKey(e.curve, nil)
	if err != nil {
		return err
	}
	if err := key.Save(out, c.String("passphrase")); err != nil {
		return err
	}
	e.log.Info("key saved", "file", out, "kid", key.PublicKey().KeyID(), logging.Redacted("passphrase"))
	fmt.Fprintf(e.out, "public key: %x\n", key.PublicKey().CompressedBytes())
	return nil
}
