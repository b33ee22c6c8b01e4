package ratexpr

import (
	"errors"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Context is a context for evaluating lines of RPN. It is not safe to use a
// Context concurrently; use Clone to get a context for another goroutine.
type Context struct {
	stack  []Expr
	name   string
	maxexp int64
	prec   uint
}

// NewContext creates a new evaluation context. If no variable is given, the
// default is x.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{name: "x", prec: 64}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it. Later options
// override earlier ones.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		stack:  make([]Expr, 0, cap(ctx.stack)),
		name:   ctx.name,
		maxexp: ctx.maxexp,
		prec:   ctx.prec,
	}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil:
			continue
		case varopt:
			n.name = string(opt)
		case maxexpopt:
			n.maxexp = int64(opt)
		case precopt:
			n.prec = uint(opt)
		default:
			panic("ratexpr: unknown option type")
		}
	}
	return &n
}

// Var returns the name of the variable in the context.
func (ctx *Context) Var() string {
	return ctx.name
}

// Prec returns the precision to which Context.At computes values.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Eval evaluates one line of RPN read from src, up to a newline or the end of
// the input. Each token is an operand, either the variable or a decimal
// number, or one of the operators + - * / ^ d. Literals such as inf and NaN,
// and numbers too large for a float64, are not operands. The result is the
// single value left on the stack, cleaned.
//
// If the line is not a valid expression, the error is a *ParseError. If any
// value on the line has a zero denominator, the error is an
// *UndefinedError. In either case, the rest of the line is discarded, so the
// next call to Eval reads the next line. If src is already at EOF, the error
// is io.EOF. Errors reading src are returned as they are.
func (ctx *Context) Eval(src io.RuneScanner) (Expr, error) {
	defer ctx.reset()
	l := lex(src, ctx.name)
	r, err := ctx.eval(l)
	if err != nil {
		var ee EvalError
		if errors.As(err, &ee) {
			if err := l.skip(); err != nil {
				return Expr{}, err
			}
		}
		return Expr{}, err
	}
	return r, nil
}

// Calculate evaluates a line of RPN and formats the result. Only text up to
// the first newline in line is evaluated. An empty line is a *ParseError.
func (ctx *Context) Calculate(line string) (string, error) {
	r, err := ctx.Eval(strings.NewReader(line))
	if err != nil {
		if err == io.EOF {
			return "", &ParseError{Col: 1, Reason: "empty line"}
		}
		return "", err
	}
	return r.Format(ctx.name), nil
}

// Format formats e in reverse Polish notation using the context's variable.
func (ctx *Context) Format(e Expr) string {
	return e.Format(ctx.name)
}

// At evaluates e at x to the context's precision.
func (ctx *Context) At(e Expr, x *big.Float) (*big.Float, error) {
	return e.At(new(big.Float).SetPrec(ctx.prec).Set(x))
}

func (ctx *Context) eval(l *lexer) (Expr, error) {
	for {
		tok, err := l.next()
		if err != nil {
			return Expr{}, err
		}
		switch tok.kind {
		case tokenEOF:
			if l.empty() {
				return Expr{}, io.EOF
			}
			return ctx.result(tok.pos)
		case tokenEOL:
			return ctx.result(tok.pos)
		case tokenOp:
			err = ctx.op(tok)
		case tokenName, tokenNum, tokenWord:
			var e Expr
			e, err = fromToken(tok.text, ctx.name, tok.pos)
			if err == nil {
				err = ctx.push(e, tok)
			}
		default:
			panic("ratexpr: invalid token " + tok.String())
		}
		if err != nil {
			return Expr{}, err
		}
	}
}

// op applies an operator to the values on the stack.
func (ctx *Context) op(tok lexToken) error {
	if tok.text == "d" {
		if len(ctx.stack) < 1 {
			return &ParseError{Col: tok.pos, Token: tok.text, Reason: "not enough operands"}
		}
		return ctx.push(ctx.pop().D(), tok)
	}
	if len(ctx.stack) < 2 {
		return &ParseError{Col: tok.pos, Token: tok.text, Reason: "not enough operands"}
	}
	b := ctx.pop()
	a := ctx.pop()
	var r Expr
	switch tok.text {
	case "+":
		r = a.Add(b)
	case "-":
		r = a.Sub(b)
	case "*":
		r = a.Mul(b)
	case "/":
		r = a.Div(b)
	case "^":
		n, err := ctx.exponent(b, tok)
		if err != nil {
			return err
		}
		r = a.Pow(n)
	default:
		panic("ratexpr: unknown operator " + strconv.Quote(tok.text))
	}
	return ctx.push(r, tok)
}

// exponent gets the integer value of the right operand of ^.
func (ctx *Context) exponent(b Expr, tok lexToken) (int64, error) {
	f, ok := b.ExponentNumber()
	if !ok {
		return 0, &ParseError{Col: tok.pos, Token: tok.text, Reason: "exponent is not a number"}
	}
	if math.Floor(f) != math.Ceil(f) {
		return 0, &ParseError{Col: tok.pos, Token: tok.text, Reason: "exponent is not an integer"}
	}
	a := math.Abs(f)
	if a >= 1<<63 || ctx.maxexp > 0 && a > float64(ctx.maxexp) {
		return 0, &ParseError{Col: tok.pos, Token: tok.text, Reason: "exponent out of range"}
	}
	return int64(f), nil
}

// push cleans e and pushes it to the stack. If e is undefined, the result is
// an *UndefinedError blaming tok.
func (ctx *Context) push(e Expr, tok lexToken) error {
	e.Clean()
	if e.IsDenZero() || !e.IsFinite() {
		return &UndefinedError{Col: tok.pos, Token: tok.text}
	}
	ctx.stack = append(ctx.stack, e)
	return nil
}

// pop removes the top from the stack and returns it.
func (ctx *Context) pop() Expr {
	k := len(ctx.stack) - 1
	r := ctx.stack[k]
	ctx.stack[k] = Expr{}
	ctx.stack = ctx.stack[:k]
	return r
}

// result gets the value of a finished line. pos is the position of the end
// of the line.
func (ctx *Context) result(pos int) (Expr, error) {
	if len(ctx.stack) != 1 {
		return Expr{}, &ParseError{Col: pos, Reason: strconv.Itoa(len(ctx.stack)) + " values at end of line"}
	}
	r := ctx.stack[0]
	r.Clean()
	return r, nil
}

// reset empties the stack, keeping its capacity.
func (ctx *Context) reset() {
	for i := range ctx.stack {
		ctx.stack[i] = Expr{}
	}
	ctx.stack = ctx.stack[:0]
}

// Eval is a shortcut to evaluate one line of RPN from src with a new context.
func Eval(src io.RuneScanner, opts ...ContextOption) (Expr, error) {
	return NewContext(opts...).Eval(src)
}

// EvalString is a shortcut to evaluate a line of RPN and format the result.
func EvalString(line string, opts ...ContextOption) (string, error) {
	return NewContext(opts...).Calculate(line)
}
