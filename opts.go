package ratexpr

import (
	"strconv"
	"strings"
	"unicode"
)

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt    string
	maxexpopt int64
	precopt   uint
)

func (varopt) ctxOption()    {}
func (maxexpopt) ctxOption() {}
func (precopt) ctxOption()   {}

// Var sets the name of the variable. The default is x. Panics if the name is
// not valid according to ValidVar.
func Var(name string) ContextOption {
	if !ValidVar(name) {
		panic("ratexpr: invalid variable name " + strconv.Quote(name))
	}
	return varopt(name)
}

// ValidVar returns whether name can be used as a variable. A variable must be
// non-empty and must not contain spaces, be an operator, or be a number.
func ValidVar(name string) bool {
	switch {
	case name == "",
		strings.IndexFunc(name, unicode.IsSpace) >= 0,
		len(name) == 1 && strings.Contains(Operators, name),
		isNumber(name):
		return false
	}
	return true
}

// MaxExponent limits the magnitude of exponents accepted by ^. Larger
// exponents are parse errors. Zero, the default, allows any exponent that
// fits in an int64. Panics if n is negative.
func MaxExponent(n int64) ContextOption {
	if n < 0 {
		panic("ratexpr: negative exponent limit " + strconv.FormatInt(n, 10))
	}
	return maxexpopt(n)
}

// Prec sets the precision in bits of values computed by Context.At. If no
// precision is given, the default is 64.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}
