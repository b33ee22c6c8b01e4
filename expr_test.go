package ratexpr_test

import (
	"reflect"
	"testing"

	"github.com/zephyrtronium/ratexpr"
)

func TestFromToken(t *testing.T) {
	cases := []struct {
		tok      string
		num, den []float64
		err      bool
	}{
		{"x", []float64{0, 1}, []float64{1}, false},
		{"3", []float64{3}, []float64{1}, false},
		{"-0.5e1", []float64{-5}, []float64{1}, false},
		{"y", nil, nil, true},
		{"1e999", nil, nil, true},
		{"+", nil, nil, true},
	}
	for _, c := range cases {
		e, err := ratexpr.FromToken(c.tok)
		if c.err {
			if _, ok := err.(*ratexpr.ParseError); !ok {
				t.Errorf("%q: expected parse error, got %v, %v", c.tok, e, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", c.tok, err)
			continue
		}
		if got := e.Num().Coeffs(); !reflect.DeepEqual(got, c.num) {
			t.Errorf("%q: want numerator %v, got %v", c.tok, c.num, got)
		}
		if got := e.Den().Coeffs(); !reflect.DeepEqual(got, c.den) {
			t.Errorf("%q: want denominator %v, got %v", c.tok, c.den, got)
		}
	}
}

func TestExprExponentNumber(t *testing.T) {
	p := ratexpr.NewPoly
	cases := []struct {
		name string
		e    ratexpr.Expr
		n    float64
		ok   bool
	}{
		{"const", ratexpr.Const(3), 3, true},
		{"quotient", ratexpr.NewExpr(p(6, 1e-9), p(2, 0)), 3, true},
		{"var", ratexpr.X(), 0, false},
		{"var-den", ratexpr.NewExpr(p(1), p(0, 1)), 0, false},
		{"zero-den", ratexpr.NewExpr(p(1), p(1e-7)), 0, false},
	}
	for _, c := range cases {
		n, ok := c.e.ExponentNumber()
		if ok != c.ok || n != c.n {
			t.Errorf("%s: want %g, %t; got %g, %t", c.name, c.n, c.ok, n, ok)
		}
	}
}

func TestExprClean(t *testing.T) {
	p := ratexpr.NewPoly
	cases := []struct {
		name     string
		e        ratexpr.Expr
		num, den []float64
	}{
		{"const-den", ratexpr.NewExpr(p(2e-6, 3, 1e-7, 0), p(4, 1e-8)), []float64{0, 0.75}, []float64{1}},
		{"unit-den", ratexpr.NewExpr(p(1, 2, 0), p(1, 0)), []float64{1, 2}, []float64{1}},
		{"poly-den", ratexpr.NewExpr(p(2, 0), p(0, 2, 0)), []float64{2}, []float64{0, 2}},
		{"zero-den", ratexpr.NewExpr(p(2, 1), p(1e-8, 0)), []float64{2, 1}, []float64{0}},
	}
	for _, c := range cases {
		e := c.e
		e.Clean()
		if got := e.Num().Coeffs(); !reflect.DeepEqual(got, c.num) {
			t.Errorf("%s: want numerator %v, got %v", c.name, c.num, got)
		}
		if got := e.Den().Coeffs(); !reflect.DeepEqual(got, c.den) {
			t.Errorf("%s: want denominator %v, got %v", c.name, c.den, got)
		}
		f := e
		f.Clean()
		if !reflect.DeepEqual(f.Num().Coeffs(), e.Num().Coeffs()) || !reflect.DeepEqual(f.Den().Coeffs(), e.Den().Coeffs()) {
			t.Errorf("%s: second clean changed %v to %v", c.name, e, f)
		}
	}
}

func TestExprPow(t *testing.T) {
	p := ratexpr.NewPoly
	bases := []ratexpr.Expr{
		ratexpr.X(),
		ratexpr.NewExpr(p(1, 1), p(-2, 1)),
		ratexpr.NewExpr(p(0.5), p(1, 0, 3)),
	}
	for _, b := range bases {
		want := ratexpr.OneExpr(1)
		for n := int64(0); n <= 5; n++ {
			if got := b.Pow(n); !got.Equal(want) {
				t.Errorf("(%v)^%d: want %v, got %v", b, n, want, got)
			}
			if n > 0 {
				got := b.Pow(-n).Mul(want)
				if !got.Equal(ratexpr.OneExpr(1)) {
					t.Errorf("(%v)^-%d × (%v)^%d: want 1, got %v", b, n, b, n, got)
				}
			}
			want = want.Mul(b)
		}
	}
}

func TestExprAlgebra(t *testing.T) {
	p := ratexpr.NewPoly
	exprs := []ratexpr.Expr{
		ratexpr.Const(0.5),
		ratexpr.X(),
		ratexpr.NewExpr(p(1, 1), p(-2, 1)),
		ratexpr.NewExpr(p(3), p(0, 0, 1)),
	}
	for _, a := range exprs {
		if d := a.Sub(a); !d.Equal(ratexpr.ZeroExpr(1)) {
			t.Errorf("%v - itself: got %v", a, d)
		}
		for _, b := range exprs {
			if !a.Add(b).Equal(b.Add(a)) {
				t.Errorf("%v + %v is not commutative", a, b)
			}
			if !a.Mul(b).Equal(b.Mul(a)) {
				t.Errorf("%v × %v is not commutative", a, b)
			}
			if q := a.Mul(b).Div(b); !q.Equal(a) {
				t.Errorf("%v × %v / %v: got %v", a, b, b, q)
			}
			for _, c := range exprs {
				l, r := a.Add(b).Add(c), a.Add(b.Add(c))
				l.Clean()
				r.Clean()
				if !l.Equal(r) {
					t.Errorf("(%v + %v) + %v != %v + (%v + %v)", a, b, c, a, b, c)
				}
			}
		}
	}
}

func TestExprD(t *testing.T) {
	p := ratexpr.NewPoly
	cases := []struct {
		name string
		e    ratexpr.Expr
		want ratexpr.Expr
	}{
		{"const", ratexpr.Const(4), ratexpr.ZeroExpr(1)},
		{"x", ratexpr.X(), ratexpr.OneExpr(1)},
		{"cube", ratexpr.NewExpr(p(0, 0, 0, 1), p(1)), ratexpr.NewExpr(p(0, 0, 3), p(1))},
		{"recip", ratexpr.NewExpr(p(1), p(0, 1)), ratexpr.NewExpr(p(-1), p(0, 0, 1))},
		// ((x-1) - (x+1)) / (x-1)^2
		{"quotient", ratexpr.NewExpr(p(1, 1), p(-1, 1)), ratexpr.NewExpr(p(-2), p(1, -2, 1))},
	}
	for _, c := range cases {
		if got := c.e.D(); !got.Equal(c.want) {
			t.Errorf("%s: d(%v): want %v, got %v", c.name, c.e, c.want, got)
		}
	}
}

func TestExprString(t *testing.T) {
	p := ratexpr.NewPoly
	cases := []struct {
		e    ratexpr.Expr
		want string
	}{
		{ratexpr.Const(2), "2"},
		{ratexpr.X(), "x"},
		{ratexpr.NewExpr(p(1), p(0, 1)), "1 x /"},
		{ratexpr.NewExpr(p(0, 3), p(1, 0)), "3 x *"},
		{ratexpr.NewExpr(p(1, 1), p(2)), "1 x + 2 /"},
		{ratexpr.NewExpr(p(1), p(0)), "1 0 /"},
	}
	for _, c := range cases {
		if got := c.e.String(); got != c.want {
			t.Errorf("want %q, got %q", c.want, got)
		}
	}
	if got := ratexpr.NewExpr(p(1), p(0, 1)).Format("t"); got != "1 t /" {
		t.Errorf("Format with t: got %q", got)
	}
}

func TestExprPowLength(t *testing.T) {
	for _, n := range []int64{1 << 20, -(1 << 20), 1<<20 + 1} {
		r := ratexpr.Const(1).Pow(n)
		if r.Num().Len() > 3 || r.Den().Len() > 3 {
			t.Errorf("1^%d: lengths %d/%d grew with the exponent", n, r.Num().Len(), r.Den().Len())
		}
		if !r.Equal(ratexpr.OneExpr(1)) {
			t.Errorf("1^%d: want 1, got %v", n, r)
		}
	}
	r, err := ratexpr.EvalString("1 -1000000 ^ 1 +")
	if err != nil || r != "2" {
		t.Errorf("1^-1000000 + 1: want \"2\", got %q, %v", r, err)
	}
}

func TestExprConstructors(t *testing.T) {
	cases := []struct {
		name     string
		e        ratexpr.Expr
		num, den []float64
	}{
		{"zero1", ratexpr.ZeroExpr(1), []float64{0}, []float64{1}},
		{"zero3", ratexpr.ZeroExpr(3), []float64{0, 0, 0}, []float64{1}},
		{"one1", ratexpr.OneExpr(1), []float64{1}, []float64{1}},
		{"one3", ratexpr.OneExpr(3), []float64{1, 1, 1}, []float64{1}},
	}
	for _, c := range cases {
		if got := c.e.Num().Coeffs(); !reflect.DeepEqual(got, c.num) {
			t.Errorf("%s: want numerator %v, got %v", c.name, c.num, got)
		}
		if got := c.e.Den().Coeffs(); !reflect.DeepEqual(got, c.den) {
			t.Errorf("%s: want denominator %v, got %v", c.name, c.den, got)
		}
	}
	if !ratexpr.ZeroExpr(3).Equal(ratexpr.ZeroExpr(1)) {
		t.Error("ZeroExpr(3) is not zero")
	}
	x := ratexpr.X()
	if !x.Mul(ratexpr.OneExpr(1)).Equal(x) {
		t.Error("OneExpr(1) is not the identity")
	}
	if x.Mul(ratexpr.OneExpr(2)).Equal(x) {
		t.Error("OneExpr(2) behaves as the identity")
	}
	if got := ratexpr.OneExpr(3).String(); got != "1 x + x 2 ^ +" {
		t.Errorf("OneExpr(3): want \"1 x + x 2 ^ +\", got %q", got)
	}
}
