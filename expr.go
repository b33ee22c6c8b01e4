package ratexpr

import (
	"math"
	"strconv"
	"strings"
)

// Expr is a rational function of one variable, the quotient of two
// polynomials. Like Poly, arithmetic on Exprs produces new values, and Clean
// is the only method that modifies its receiver.
//
// No common factors are cancelled, so denominators grow with each operation
// unless Clean reduces them to a constant. The zero value of Expr has a zero
// denominator.
type Expr struct {
	num, den Poly
}

// NewExpr creates the expression num/den.
func NewExpr(num, den Poly) Expr {
	return Expr{num: num, den: den}
}

// ZeroExpr returns ZeroPoly(n) / 1.
func ZeroExpr(n int) Expr {
	return Expr{num: ZeroPoly(n), den: OnePoly(1)}
}

// OneExpr returns OnePoly(n) / 1.
func OneExpr(n int) Expr {
	return Expr{num: OnePoly(n), den: OnePoly(1)}
}

// Const returns the constant expression c.
func Const(c float64) Expr {
	return Expr{num: NewPoly(c), den: OnePoly(1)}
}

// X returns the expression x, the variable itself.
func X() Expr {
	return Expr{num: NewPoly(0, 1), den: OnePoly(1)}
}

// FromToken creates an expression from an operand token, either the variable
// x or a decimal number. Any other token is a *ParseError.
func FromToken(tok string) (Expr, error) {
	return fromToken(tok, "x", 0)
}

func fromToken(tok, name string, col int) (Expr, error) {
	if tok == name {
		return X(), nil
	}
	if !isNumber(tok) {
		return Expr{}, &ParseError{Col: col, Token: tok, Reason: "invalid operand"}
	}
	c, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		// isNumber admits only valid syntax, so this is a range error.
		return Expr{}, &ParseError{Col: col, Token: tok, Reason: "number out of range"}
	}
	return Const(c), nil
}

// Num returns the numerator of e.
func (e Expr) Num() Poly {
	return e.num
}

// Den returns the denominator of e.
func (e Expr) Den() Poly {
	return e.den
}

// IsDenZero returns whether the denominator of e is the zero polynomial.
func (e Expr) IsDenZero() bool {
	return e.den.IsZero()
}

// IsFinite returns whether every coefficient of e is finite.
func (e Expr) IsFinite() bool {
	return e.num.IsFinite() && e.den.IsFinite()
}

// ExponentNumber returns the value of e if it is a constant with a nonzero
// denominator. The second result is false otherwise.
func (e Expr) ExponentNumber() (float64, bool) {
	if !e.num.IsConstant() || !e.den.IsConstant() {
		return 0, false
	}
	d := e.den.Coef(0)
	if math.Abs(d) < Epsilon {
		return 0, false
	}
	return e.num.Coef(0) / d, true
}

// Add returns e + f over the common denominator of the product of both.
func (e Expr) Add(f Expr) Expr {
	return Expr{
		num: e.num.Mul(f.den).Add(e.den.Mul(f.num)),
		den: e.den.Mul(f.den),
	}
}

// Sub returns e - f.
func (e Expr) Sub(f Expr) Expr {
	return e.Add(Expr{num: f.num.Neg(), den: f.den})
}

// Mul returns e × f.
func (e Expr) Mul(f Expr) Expr {
	return Expr{num: e.num.Mul(f.num), den: e.den.Mul(f.den)}
}

// Div returns e / f. The result's denominator is zero if f's numerator is.
func (e Expr) Div(f Expr) Expr {
	return Expr{num: e.num.Mul(f.den), den: e.den.Mul(f.num)}
}

// Square returns e × e.
func (e Expr) Square() Expr {
	return Expr{num: e.num.Square(), den: e.den.Square()}
}

// Pow returns e^n by binary exponentiation. A negative n gives the reciprocal
// of e^-n, so n must not be math.MinInt64.
func (e Expr) Pow(n int64) Expr {
	switch {
	case n == 0:
		return OneExpr(1)
	case n == 1:
		return e
	case n < 0:
		return OneExpr(1).Div(e.Pow(-n))
	}
	r := e.Pow(n / 2).trimmed().Square()
	if n%2 == 1 {
		r = r.trimmed().Mul(e.trimmed())
	}
	return r
}

// trimmed drops exact zero top coefficients from both parts of e.
func (e Expr) trimmed() Expr {
	return Expr{num: e.num.trimmed(), den: e.den.trimmed()}
}

// D returns the derivative of e with respect to its variable by the quotient
// rule.
func (e Expr) D() Expr {
	u, v := e.num, e.den
	return Expr{
		num: v.Mul(u.D()).Sub(u.Mul(v.D())),
		den: v.Square(),
	}
}

// Clean cleans the numerator and denominator of e. If the denominator is then
// a nonzero constant, the numerator is divided by it and the denominator
// becomes 1. A zero denominator is left as it is.
func (e *Expr) Clean() {
	e.num.Clean()
	e.den.Clean()
	if e.den.IsZero() || !e.den.IsConstant() {
		return
	}
	if d := e.den.Coef(0); d != 1 {
		e.num = e.num.Quo(d)
		e.num.Clean()
	}
	e.den = OnePoly(1)
}

// Equal returns whether e and f are the same rational function, comparing
// cross products up to Epsilon.
func (e Expr) Equal(f Expr) bool {
	return e.num.Mul(f.den).Equal(f.num.Mul(e.den))
}

// String formats e in reverse Polish notation using x as the variable.
func (e Expr) String() string {
	return e.Format("x")
}

// Format formats e in reverse Polish notation using name as the variable. If
// the denominator is 1, only the numerator appears.
func (e Expr) Format(name string) string {
	var b strings.Builder
	e.num.format(&b, name)
	if e.den.IsConstant() && math.Abs(e.den.Coef(0)-1) < Epsilon {
		return b.String()
	}
	b.WriteByte(' ')
	e.den.format(&b, name)
	b.WriteString(" /")
	return b.String()
}
