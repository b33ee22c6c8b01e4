package ratexpr

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// At evaluates e at x, to the precision of x or 64 bits if x has none. The
// result is an *UndefinedError if x is infinite or the denominator is zero
// at x.
func (e Expr) At(x *big.Float) (*big.Float, error) {
	if x.IsInf() {
		return nil, &UndefinedError{}
	}
	prec := x.Prec()
	if prec == 0 {
		prec = 64
	}
	d := evalPoly(e.den, x, prec)
	if d.Sign() == 0 {
		return nil, &UndefinedError{}
	}
	n := evalPoly(e.num, x, prec)
	return n.Quo(n, d), nil
}

// evalPoly computes the sum of the terms of p at x.
func evalPoly(p Poly, x *big.Float, prec uint) *big.Float {
	r := new(big.Float).SetPrec(prec)
	ax := new(big.Float).SetPrec(prec).Abs(x)
	var t, k big.Float
	for i, c := range p.c {
		if c == 0 {
			continue
		}
		t.SetPrec(prec)
		monomial(&t, ax, x.Signbit(), i)
		k.SetPrec(prec).SetFloat64(c)
		r.Add(r, t.Mul(&t, &k))
	}
	return r
}

// monomial sets z to x^i, where ax is |x| and neg is whether x is negative.
// bigfloat.Pow is defined only for non-negative bases, so the sign is
// restored afterward.
func monomial(z, ax *big.Float, neg bool, i int) *big.Float {
	switch {
	case i == 0:
		return z.SetInt64(1)
	case ax.Sign() == 0:
		return z.SetInt64(0)
	case i == 1:
		z.Set(ax)
	default:
		var n big.Float
		n.SetInt64(int64(i))
		bigfloat.Pow(z, ax, &n)
	}
	if neg && i%2 == 1 {
		z.Neg(z)
	}
	return z
}
