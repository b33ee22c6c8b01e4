package ratexpr

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenEOL indicates the end of a line.
	tokenEOL
	// tokenNum is a decimal number.
	tokenNum
	// tokenName is the variable.
	tokenName
	// tokenOp is an operator.
	tokenOp
	// tokenWord is any other run of non-space runes.
	tokenWord
)

var tokenKinds = [...]string{"None", "EOF", "EOL", "Num", "Name", "Op", "Word"}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKinds) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKinds[k]
}

// Operators contains the operator tokens. Every operator is one byte. All but
// d are binary.
const Operators = "+-*/^d"

type lexer struct {
	src  io.RuneScanner
	name string
	buf  strings.Builder
	rune int
	eol  bool
}

// lex creates a lexer that scans one line from src. name is the variable.
func lex(src io.RuneScanner, name string) *lexer {
	return &lexer{
		src:  src,
		name: name,
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the line. The line ends with an EOL token at
// a newline or an EOF token at the end of the input. After that, the result
// is an empty token with io.EOF.
func (l *lexer) next() (lexToken, error) {
	if l.eol {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				l.eol = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case r == '\n':
			tok.kind = tokenEOL
			l.eol = true
			return tok, nil
		case unicode.IsSpace(r):
			tok.pos++
			continue
		}
		l.buf.WriteRune(r)
		if err := l.scanWord(); err != nil {
			return tok, err
		}
		tok.text = l.buf.String()
		tok.kind = l.classify(tok.text)
		return tok, nil
	}
}

// scanWord scans runes up to the next space or the end of input.
func (l *lexer) scanWord() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if unicode.IsSpace(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// skip discards the rest of the line.
func (l *lexer) skip() error {
	for !l.eol {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if r == '\n' {
			break
		}
	}
	l.eol = true
	return nil
}

func (l *lexer) classify(text string) tokenKind {
	switch {
	case len(text) == 1 && strings.Contains(Operators, text):
		return tokenOp
	case text == l.name:
		return tokenName
	case isNumber(text):
		return tokenNum
	default:
		return tokenWord
	}
}

// isNumber returns whether s is a decimal number: an optional sign, digits
// with at most one decimal point, and an optional exponent with at least one
// digit.
func isNumber(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	var dig, dot, e, le, ed bool
	for _, r := range s {
		switch r {
		case '+', '-':
			// Signs are allowed only immediately after an exponent marker.
			if !le {
				return false
			}
			le = false
		case '.':
			if dot || e {
				return false
			}
			dot = true
			le = false
		case 'e', 'E':
			if !dig || e {
				return false
			}
			e = true
			le = true
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if e {
				ed = true
			} else {
				dig = true
			}
			le = false
		default:
			return false
		}
	}
	return dig && (!e || ed)
}

// empty returns whether the lexer has not read any runes.
func (l *lexer) empty() bool {
	return l.rune == 1
}
