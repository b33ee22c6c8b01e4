package ratexpr

import "strconv"

// EvalError is an error that ends the evaluation of a line. The only
// implementations are *ParseError and *UndefinedError, so a type switch over
// those two is exhaustive.
type EvalError interface {
	error
	// Pos returns the position of the token that caused the error as the
	// number of runes up to and including its first rune on the line.
	Pos() int
	// Detail describes the error with its position.
	Detail() string

	evalError()
}

// ParseError indicates a line that is not a well-formed RPN expression: an
// invalid operand, an operator without enough operands, an exponent that is
// not an integer, or a number of results other than one. Its Error text is
// always "Parse Error". It implements EvalError.
type ParseError struct {
	// Col is the position of the token that caused the error. For errors
	// about the final stack, it is the position of the end of the line.
	Col int
	// Token is the token that caused the error, if any.
	Token string
	// Reason describes what was wrong.
	Reason string
}

func (err *ParseError) Error() string {
	return "Parse Error"
}

func (err *ParseError) Pos() int {
	return err.Col
}

func (err *ParseError) Detail() string {
	if err.Token == "" {
		return errpos(err.Col, err.Reason)
	}
	return errpos(err.Col, err.Reason+" at "+strconv.Quote(err.Token))
}

func (*ParseError) evalError() {}

// UndefinedError indicates a value whose denominator is zero or whose
// coefficients are not finite. Its Error text is always "NAN". It implements
// EvalError.
type UndefinedError struct {
	// Col is the position of the token that produced the value.
	Col int
	// Token is the token that produced the value.
	Token string
}

func (err *UndefinedError) Error() string {
	return "NAN"
}

func (err *UndefinedError) Pos() int {
	return err.Col
}

func (err *UndefinedError) Detail() string {
	if err.Token == "" {
		return errpos(err.Col, "undefined result")
	}
	return errpos(err.Col, "undefined result from "+strconv.Quote(err.Token))
}

func (*UndefinedError) evalError() {}

// IndexError is an error from setting a polynomial coefficient beyond the
// end of the polynomial.
type IndexError struct {
	// Index is the requested index.
	Index int
	// Len is the number of coefficients in the polynomial.
	Len int
}

func (err *IndexError) Error() string {
	return "coefficient index " + strconv.Itoa(err.Index) + " out of range for length " + strconv.Itoa(err.Len)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ EvalError = (*ParseError)(nil)
	_ EvalError = (*UndefinedError)(nil)
)
