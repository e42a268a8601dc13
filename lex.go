package exactcalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Token is a lexical token of an expression.
type Token struct {
	Kind TokenKind
	// Text is the numeral, the ASCII operator, or the parenthesis.
	Text string
	// Pos is the 1-based rune column where the token starts.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the kind of a token.
type TokenKind int

const (
	TokenNone TokenKind = iota
	// TokenNumber is a numeral of digits and at most one decimal point. Signs
	// are always separate operator tokens.
	TokenNumber
	// TokenOperator is one of + - * /.
	TokenOperator
	// TokenParen is ( or ).
	TokenParen
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNumber:
		return "Number"
	case TokenOperator:
		return "Operator"
	case TokenParen:
		return "Paren"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are tokenized as operators. The last
// three are normalized to their ASCII forms.
const Operators = "+-*/×÷−"

// NormalizeOperator maps the multiplication sign, division sign, and minus
// sign to *, /, and -. Other runes are returned unchanged.
func NormalizeOperator(r rune) rune {
	switch r {
	case '×':
		return '*'
	case '÷':
		return '/'
	case '−':
		return '-'
	default:
		return r
	}
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
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

// next scans the next token from the input. At the end of the input, the
// error is io.EOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	tok := Token{Pos: l.rune}
	for {
		raw, err := l.readRune()
		if err != nil {
			return tok, err
		}
		r := NormalizeOperator(raw)
		switch r {
		case ' ', '\t', '\r', '\n':
			tok.Pos++
			continue
		case '(', ')':
			tok.Text = string(r)
			tok.Kind = TokenParen
			return tok, nil
		case '+', '-', '*', '/':
			tok.Text = string(r)
			tok.Kind = TokenOperator
			return tok, nil
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, l.error(err, CodeMalformedNumber, tok.Pos)
			}
			tok.Text = l.buf.String()
			tok.Kind = TokenNumber
			return tok, nil
		default:
			// Write the raw rune so that it shows up in the error message.
			l.buf.WriteRune(raw)
			return tok, l.error(nil, CodeUnexpectedChar, tok.Pos)
		}
	}
}

var errMalformedNumber = errors.New("malformed number")

// scanNum scans a run of digits with at most one decimal point. A second
// decimal point ends the run and is left for the next token.
func (l *lexer) scanNum() error {
	dot := false
loop:
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		switch r = NormalizeOperator(r); {
		case '0' <= r && r <= '9':
		case r == '.' && !dot:
			dot = true
		default:
			l.unreadRune()
			break loop
		}
		l.buf.WriteRune(r)
	}
	switch l.buf.String() {
	case "", ".", "+.", "-.":
		return errMalformedNumber
	}
	return nil
}

func (l *lexer) error(err error, code Code, col int) error {
	if err != nil && err != errMalformedNumber {
		// Errors from the source are not input errors.
		return err
	}
	return &LexError{
		Code: code,
		Text: l.buf.String(),
		Col:  col,
	}
}

// Tokenize splits an expression into tokens. Whitespace separates tokens and
// is otherwise ignored. An input of only whitespace produces no tokens and no
// error.
func Tokenize(src string) ([]Token, error) {
	scan := lex(strings.NewReader(src))
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}

// LexError indicates an invalid token. It implements InputError and Coder.
type LexError struct {
	// Code is CodeUnexpectedChar or CodeMalformedNumber.
	Code Code
	// Text is the unexpected character or the malformed numeral.
	Text string
	// Col is the column of the start of the invalid token.
	Col int
}

func (err *LexError) Error() string {
	switch err.Code {
	case CodeMalformedNumber:
		return errpos(err.Col, "malformed number "+strconv.Quote(err.Text))
	default:
		return errpos(err.Col, "unexpected character "+strconv.Quote(err.Text))
	}
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) ErrCode() Code {
	return err.Code
}
