// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ecmul multiplies a point of a named curve by one or more scalars.
//
//	ecmul -curve secp256k1 -k 0x2a,7
//	ecmul -curve P-256 -x 0x6b17... -y 0x4fe3... -k -1
//
// Without -x and -y the generator of the curve is used.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"time"

	logging "github.com/ipfs/go-log/v2"

	"github.com/herczegzsolt/weierstrass"
)

var log = logging.Logger("ecmul")

type config struct {
	curve    string
	scalars  string
	x, y     string
	parallel int
}

func main() {
	var (
		curveName = flag.String("curve", "secp256k1", "Named curve (P-224, P-256, P-384, P-521, secp256k1)")
		scalars   = flag.String("k", "1", "Comma-separated scalars, decimal or 0x-prefixed hex")
		xFlag     = flag.String("x", "", "x coordinate of the base point (defaults to the generator)")
		yFlag     = flag.String("y", "", "y coordinate of the base point (defaults to the generator)")
		parallel  = flag.Int("parallel", 4, "Maximum number of multiplications running at once")
		logLevel  = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	level, err := logging.LevelFromString(*logLevel)
	if err != nil {
		level = logging.LevelInfo
	}
	logging.SetAllLoggers(level)

	cfg := config{
		curve:    *curveName,
		scalars:  *scalars,
		x:        *xFlag,
		y:        *yFlag,
		parallel: *parallel,
	}
	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		log.Errorf("ecmul: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, w io.Writer) error {
	c, err := weierstrass.Lookup(cfg.curve)
	if err != nil {
		return err
	}

	base, err := basePoint(c, cfg.x, cfg.y)
	if err != nil {
		return err
	}

	var ks []*big.Int
	for _, s := range strings.Split(cfg.scalars, ",") {
		k, err := parseInt(s)
		if err != nil {
			return fmt.Errorf("scalar: %w", err)
		}
		ks = append(ks, k)
	}

	log.Debugw("multiplying", "curve", c, "base", base, "scalars", len(ks))
	start := time.Now()
	results, err := weierstrass.ScalarMultAll(ctx, base, ks, cfg.parallel)
	if err != nil {
		return err
	}
	log.Infof("%d multiplications on %s in %v", len(ks), c, time.Since(start))

	for i, q := range results {
		if err := printPoint(w, ks[i], q); err != nil {
			return err
		}
	}
	return nil
}

func basePoint(c *weierstrass.NamedCurve, xs, ys string) (weierstrass.Point[weierstrass.FieldElement], error) {
	if xs == "" && ys == "" {
		return c.Generator(), nil
	}
	var none weierstrass.Point[weierstrass.FieldElement]
	if xs == "" || ys == "" {
		return none, fmt.Errorf("both -x and -y are required")
	}
	xv, err := parseInt(xs)
	if err != nil {
		return none, fmt.Errorf("x: %w", err)
	}
	yv, err := parseInt(ys)
	if err != nil {
		return none, fmt.Errorf("y: %w", err)
	}
	p := c.Curve().Prime()
	x, err := weierstrass.NewFieldElement(xv, p)
	if err != nil {
		return none, err
	}
	y, err := weierstrass.NewFieldElement(yv, p)
	if err != nil {
		return none, err
	}
	return weierstrass.NewAffine[weierstrass.FieldElement](c.Curve(), x, y)
}

func parseInt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return n, nil
}

func printPoint(w io.Writer, k *big.Int, q weierstrass.Point[weierstrass.FieldElement]) error {
	x, y, ok := q.XY()
	if !ok {
		_, err := fmt.Fprintf(w, "%s: infinity\n", k)
		return err
	}
	_, err := fmt.Fprintf(w, "%s: x=0x%x y=0x%x\n", k, x.Num(), y.Num())
	return err
}
