// Command ecelgamal runs the curve operations and the ElGamal scheme from the
// command line.
//
//	ecelgamal curve
//	ecelgamal check 10,20
//	ecelgamal --prime 97 --a 2 --b 3 --generator 3,6 mul 3,6 7
//	ecelgamal demo --secret 7 --ephemeral 3 --message 10,20
package main

import (
	"os"

	"github.com/regnull/ecelgamal/internal/logging"
	"gopkg.in/urfave/cli.v1"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "ecelgamal"
	app.Usage = "elliptic curve arithmetic and ElGamal encryption"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "curve", Value: "toy97", Usage: "preset curve: toy97, secp256k1, P-256, P-384, P-521"},
		cli.StringFlag{Name: "curve-file", Usage: "JSON curve definition, overrides --curve"},
		cli.StringFlag{Name: "prime", Usage: "field modulus p of a custom curve, overrides --curve"},
		cli.StringFlag{Name: "a", Value: "0", Usage: "coefficient a of a custom curve"},
		cli.StringFlag{Name: "b", Value: "0", Usage: "coefficient b of a custom curve"},
		cli.StringFlag{Name: "generator", Usage: "generator x,y of a custom curve"},
		cli.BoolFlag{Name: "verbose", Usage: "write debug logs to stderr"},
	}
	app.Commands = []cli.Command{
		{
			Name:   "curve",
			Usage:  "validate the curve and print its parameters",
			Action: curveAction,
		},
		{
			Name:      "check",
			Usage:     "check whether a point is on the curve",
			ArgsUsage: "x,y",
			Action:    checkAction,
		},
		{
			Name:      "add",
			Usage:     "add two points",
			ArgsUsage: "x1,y1 x2,y2",
			Action:    addAction,
		},
		{
			Name:      "double",
			Usage:     "double a point",
			ArgsUsage: "x,y",
			Action:    doubleAction,
		},
		{
			Name:      "mul",
			Usage:     "multiply a point by a scalar",
			ArgsUsage: "x,y k",
			Action:    mulAction,
		},
		{
			Name:      "order",
			Usage:     "compute the order of a point (small curves only)",
			ArgsUsage: "x,y",
			Action:    orderAction,
		},
		{
			Name:  "demo",
			Usage: "derive a key, encrypt a message point and decrypt it",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "secret", Value: "7", Usage: "private scalar d"},
				cli.StringFlag{Name: "ephemeral", Value: "3", Usage: "ephemeral scalar k"},
				cli.StringFlag{Name: "message", Value: "10,20", Usage: "message point x,y"},
			},
			Action: demoAction,
		},
		{
			Name:  "keygen",
			Usage: "generate a private key and save it as JWK",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "out", Usage: "output file"},
				cli.StringFlag{Name: "passphrase", Usage: "encrypt the key file with this passphrase"},
			},
			Action: keygenAction,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logging.New(os.Stderr, false).Error("command failed", "error", err)
		os.Exit(1)
	}
}
