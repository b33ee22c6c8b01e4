package ratexpr

import (
	"math"
	"strconv"
	"strings"
)

// Epsilon is the magnitude below which a coefficient or value is treated as
// zero.
const Epsilon = 1e-6

// Poly is a polynomial in one variable with float64 coefficients. The
// coefficient at index i is that of x^i. A Poly always has at least one
// coefficient; the zero polynomial is [0].
//
// Arithmetic on Polys always produces new values. Clean is the only method
// that modifies its receiver.
type Poly struct {
	c []float64
}

// NewPoly creates a polynomial from coefficients in increasing power order.
// With no coefficients, the result is the zero polynomial.
func NewPoly(coeffs ...float64) Poly {
	if len(coeffs) == 0 {
		return ZeroPoly(1)
	}
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return Poly{c}
}

// ZeroPoly returns a polynomial of n coefficients, all 0. n < 1 is treated
// as 1.
func ZeroPoly(n int) Poly {
	if n < 1 {
		n = 1
	}
	return Poly{make([]float64, n)}
}

// OnePoly returns a polynomial of n coefficients, all 1. Only OnePoly(1) is
// the multiplicative identity.
func OnePoly(n int) Poly {
	p := ZeroPoly(n)
	for i := range p.c {
		p.c[i] = 1
	}
	return p
}

// Len returns the number of coefficients in p, including any trailing zeros.
func (p Poly) Len() int {
	if len(p.c) == 0 {
		// The zero value of Poly is the zero polynomial.
		return 1
	}
	return len(p.c)
}

// Coef returns the coefficient of x^i. It is 0 for any i outside p.
func (p Poly) Coef(i int) float64 {
	if i < 0 || i >= len(p.c) {
		return 0
	}
	return p.c[i]
}

// Coeffs returns a copy of p's coefficients.
func (p Poly) Coeffs() []float64 {
	return p.coeffs()
}

// coeffs returns a copy of the coefficients with at least one element.
func (p Poly) coeffs() []float64 {
	c := make([]float64, p.Len())
	copy(c, p.c)
	return c
}

// With returns a copy of p with the coefficient of x^i set to c. An index
// equal to p.Len() appends a coefficient. Any greater or negative index is
// an *IndexError.
func (p Poly) With(i int, c float64) (Poly, error) {
	n := p.Len()
	if i < 0 || i > n {
		return p, &IndexError{Index: i, Len: n}
	}
	r := p.coeffs()
	if i == n {
		r = append(r, c)
	} else {
		r[i] = c
	}
	return Poly{r}, nil
}

// Degree returns the power of the highest coefficient of p with magnitude
// at least Epsilon, or 0 if p is zero. Products have a trailing zero
// coefficient until they are cleaned, so Degree is generally less than
// p.Len()-1.
func (p Poly) Degree() int {
	for i := len(p.c) - 1; i > 0; i-- {
		if math.Abs(p.c[i]) >= Epsilon {
			return i
		}
	}
	return 0
}

// IsZero returns whether every coefficient of p is within Epsilon of zero.
func (p Poly) IsZero() bool {
	for _, c := range p.c {
		if !(math.Abs(c) < Epsilon) {
			return false
		}
	}
	return true
}

// IsConstant returns whether every coefficient of p above x^0 is within
// Epsilon of zero.
func (p Poly) IsConstant() bool {
	for i := 1; i < len(p.c); i++ {
		if !(math.Abs(p.c[i]) < Epsilon) {
			return false
		}
	}
	return true
}

// Clean zeroes the coefficients of p with magnitude at most Epsilon, then
// drops trailing zero coefficients, keeping at least one. Copies of p made
// before cleaning are not modified.
func (p *Poly) Clean() {
	r := p.coeffs()
	for i, c := range r {
		if math.Abs(c) <= Epsilon {
			r[i] = 0
		}
	}
	n := len(r)
	for n > 1 && r[n-1] == 0 {
		n--
	}
	p.c = r[:n:n]
}

// Add returns p + q. The result has as many coefficients as the longer
// operand.
func (p Poly) Add(q Poly) Poly {
	a, b := p.coeffs(), q.coeffs()
	if len(a) < len(b) {
		a, b = b, a
	}
	for i, c := range b {
		a[i] += c
	}
	return Poly{a}
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p Poly) Neg() Poly {
	r := p.coeffs()
	for i := range r {
		r[i] = -r[i]
	}
	return Poly{r}
}

// Scale returns p with every coefficient multiplied by k.
func (p Poly) Scale(k float64) Poly {
	r := p.coeffs()
	for i := range r {
		r[i] *= k
	}
	return Poly{r}
}

// Quo returns p with every coefficient divided by k.
func (p Poly) Quo(k float64) Poly {
	r := p.coeffs()
	for i := range r {
		r[i] /= k
	}
	return Poly{r}
}

// Mul returns p × q. The result has p.Len() + q.Len() coefficients, one more
// than the degree requires, so its highest coefficient is always zero.
func (p Poly) Mul(q Poly) Poly {
	a, b := p.coeffs(), q.coeffs()
	r := make([]float64, len(a)+len(b))
	for i, x := range a {
		for j, y := range b {
			r[i+j] += x * y
		}
	}
	return Poly{r}
}

// Square returns p × p.
func (p Poly) Square() Poly {
	return p.Mul(p)
}

// Pow returns p^n by binary exponentiation. Panics if n is negative; use
// Expr for reciprocals.
func (p Poly) Pow(n int64) Poly {
	switch {
	case n < 0:
		panic("ratexpr: negative exponent " + strconv.FormatInt(n, 10) + " for polynomial")
	case n == 0:
		return OnePoly(1)
	case n == 1:
		return Poly{p.coeffs()}
	}
	// Intermediate powers drop their exact zero top coefficients so that
	// lengths follow the degree rather than n.
	r := p.Pow(n / 2).trimmed().Square()
	if n%2 == 1 {
		r = r.trimmed().Mul(p.trimmed())
	}
	return r
}

// trimmed returns p without trailing coefficients that are exactly zero,
// keeping at least one. Unlike Clean, it never changes a value.
func (p Poly) trimmed() Poly {
	n := len(p.c)
	for n > 1 && p.c[n-1] == 0 {
		n--
	}
	return Poly{p.c[:n:n]}
}

// D returns the derivative of p with respect to its variable.
func (p Poly) D() Poly {
	if len(p.c) <= 1 {
		return ZeroPoly(1)
	}
	r := make([]float64, len(p.c)-1)
	for i := range r {
		r[i] = float64(i+1) * p.c[i+1]
	}
	return Poly{r}
}

// Equal returns whether p and q have the same coefficients up to Epsilon,
// treating missing coefficients as zero.
func (p Poly) Equal(q Poly) bool {
	n := p.Len()
	if q.Len() > n {
		n = q.Len()
	}
	for i := 0; i < n; i++ {
		if !(math.Abs(p.Coef(i)-q.Coef(i)) < Epsilon) {
			return false
		}
	}
	return true
}

// String formats p in reverse Polish notation using x as the variable.
func (p Poly) String() string {
	return p.Format("x")
}

// Format formats p in reverse Polish notation using name as the variable.
// Terms appear in increasing power order, joined by postfix +. Coefficients
// within Epsilon of zero are omitted; if all are, the result is "0".
func (p Poly) Format(name string) string {
	var b strings.Builder
	p.format(&b, name)
	return b.String()
}

func (p Poly) format(b *strings.Builder, name string) {
	terms := 0
	for i, c := range p.c {
		if !(math.Abs(c) > Epsilon) {
			continue
		}
		if terms > 0 {
			b.WriteByte(' ')
		}
		switch {
		case i == 0:
			b.WriteString(fmtcoef(c))
		case c == 1:
			b.WriteString(name)
			if i > 1 {
				b.WriteString(" " + strconv.Itoa(i) + " ^")
			}
		default:
			b.WriteString(fmtcoef(c) + " " + name)
			if i > 1 {
				b.WriteString(" " + strconv.Itoa(i) + " ^")
			}
			b.WriteString(" *")
		}
		if terms > 0 {
			b.WriteString(" +")
		}
		terms++
	}
	if terms == 0 {
		b.WriteByte('0')
	}
}

// fmtcoef formats a coefficient in the shortest decimal form that reads back
// to the same float64.
func fmtcoef(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}

// IsFinite returns whether every coefficient of p is neither infinite nor
// NaN.
func (p Poly) IsFinite() bool {
	for _, c := range p.c {
		if math.IsInf(c, 0) || math.IsNaN(c) {
			return false
		}
	}
	return true
}
