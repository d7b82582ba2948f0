// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.26
//

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	m "github.com/mkhts/golsq"
)

type cmdOpt struct {
	inFn    string
	powers  []float64
	maxCond float64
	noCheck bool
}

func main() {

	// Parse command line arguments
	args, err := parseArgs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "err=%s\n", err.Error())
		flag.Usage()
		os.Exit(1)
	}

	// Run the main application
	if err := runApplication(args); err != nil {
		fmt.Fprintf(os.Stderr, "err=%s\n", err.Error())
		os.Exit(1)
	}
}

// Parse command line arguments
func parseArgs() (cmdOpt, error) {
	var args cmdOpt
	var powers string
	flag.StringVar(&args.inFn, "in", "", "input file of 'x y' sample pairs (default: stdin)")
	flag.StringVar(&powers, "p", "0,1", "comma separated polynomial powers to fit")
	flag.Float64Var(&args.maxCond, "c", m.DefaultMaxCondNum, "condition number threshold for the warning")
	flag.BoolVar(&args.noCheck, "q", false, "skip the condition number check")
	flag.Parse()

	for _, s := range strings.Split(powers, ",") {
		p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return args, fmt.Errorf("invalid power %q: %w", s, err)
		}
		args.powers = append(args.powers, p)
	}
	return args, nil
}

// Main application processing
func runApplication(args cmdOpt) error {

	// Load samples
	xs, ys, err := loadSamples(args.inFn)
	if err != nil {
		return fmt.Errorf("failed to load samples: %w", err)
	}

	// Build the information matrix H[i][j] = x[i]^p[j]
	H := mat.NewDense(len(xs), len(args.powers), nil)
	for i, x := range xs {
		for j, p := range args.powers {
			H.Set(i, j, math.Pow(x, p))
		}
	}
	r := mat.NewVecDense(len(ys), ys)

	// Fit
	opt := m.DefaultOptions()
	opt.CheckCondNum = !args.noCheck
	opt.MaxCondNum = args.maxCond
	coef, N, err := m.Adjust(H, r, nil, nil, &opt)
	if err != nil {
		return fmt.Errorf("fit failed: %w", err)
	}

	// Print coefficients and the normal matrix diagnostic
	for j, p := range args.powers {
		fmt.Printf("x^%-4g %18.10e\n", p, coef.AtVec(j))
	}
	cond, err := m.CondNum(N)
	if err != nil {
		return err
	}
	fmt.Printf("cond   %18.10e\n", cond)
	return nil
}

// Load whitespace separated 'x y' pairs, one per line
func loadSamples(fn string) (xs, ys []float64, err error) {

	// Use stdin if no input file is specified
	var in io.Reader = os.Stdin
	if len(fn) > 0 {
		f, err := os.Open(fn)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		in = f
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 2 {
			return nil, nil, fmt.Errorf("invalid sample line: %q", line)
		}
		x, err := strconv.ParseFloat(f[0], 64)
		if err != nil {
			return nil, nil, err
		}
		y, err := strconv.ParseFloat(f[1], 64)
		if err != nil {
			return nil, nil, err
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	if len(xs) == 0 {
		return nil, nil, fmt.Errorf("no samples")
	}
	return xs, ys, nil
}
