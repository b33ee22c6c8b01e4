package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"strings"

	"github.com/zephyrtronium/ratexpr"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, name, at string
		prec                   int
		maxexp                 int64
		verbose                bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&name, "var", "x", "variable name")
	flag.StringVar(&at, "at", "", "also evaluate each result at this value of the variable")
	flag.StringVar(&verb, "fmt", "%g", "formatting string for -at values")
	flag.IntVar(&prec, "p", 64, "precision of -at values in bits")
	flag.Int64Var(&maxexp, "maxexp", 0, "largest exponent magnitude allowed, or 0 for no limit")
	flag.BoolVar(&verbose, "v", false, "describe errors on stderr")
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}
	if maxexp < 0 {
		log.Fatalf("exponent limit (%d) must not be negative", maxexp)
	}
	if !ratexpr.ValidVar(name) {
		log.Fatalf("invalid variable name %q", name)
	}

	r := runner{
		ctx:     ratexpr.NewContext(ratexpr.Var(name), ratexpr.MaxExponent(maxexp), ratexpr.Prec(uint(prec))),
		out:     bufio.NewWriter(os.Stdout),
		verb:    verb + "\n",
		verbose: verbose,
	}
	defer r.out.Flush()
	if at != "" {
		x, _, err := big.ParseFloat(at, 10, uint(prec), big.ToNearestEven)
		if err != nil {
			log.Fatalf("parsing -at value: %v", err)
		}
		r.at = x
	}

	var ins []io.RuneScanner
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}
	for _, in := range ins {
		if err := r.run(in); err != nil {
			r.out.Flush()
			log.Fatal(err)
		}
	}
}

type runner struct {
	ctx     *ratexpr.Context
	out     *bufio.Writer
	at      *big.Float
	verb    string
	verbose bool
}

// run evaluates every line of in, writing one line of output for each.
func (r *runner) run(in io.RuneScanner) error {
	for {
		e, err := r.ctx.Eval(in)
		if err != nil {
			var ee ratexpr.EvalError
			switch {
			case err == io.EOF:
				return nil
			case errors.As(err, &ee):
				if r.verbose {
					log.Print(ee.Detail())
				}
				fmt.Fprintln(r.out, ee)
				continue
			default:
				return err
			}
		}
		s := r.ctx.Format(e)
		if r.at == nil {
			fmt.Fprintln(r.out, s)
			continue
		}
		v, err := r.ctx.At(e, r.at)
		if err != nil {
			fmt.Fprintf(r.out, "%s\t%v\n", s, err)
			continue
		}
		fmt.Fprintf(r.out, "%s\t"+r.verb, s, v)
	}
}

func infile(inname string, std bool) (io.RuneScanner, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}
