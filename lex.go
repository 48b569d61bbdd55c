package calculator

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	// prev is the last token returned, if have is true.
	prev Token
	have bool
}

// lex creates a lexer which reports positions counting from col for the first
// rune of src.
func lex(src io.RuneScanner, col int) *lexer {
	return &lexer{
		src:  src,
		rune: col - 1,
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

// next scans the next token from the input. At the end of input, the error is
// io.EOF.
func (l *lexer) next() (Token, error) {
	tok, err := l.scan()
	if err == nil {
		l.prev, l.have = tok, true
	}
	return tok, err
}

func (l *lexer) scan() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		pos := l.rune
		switch {
		case unicode.IsSpace(r):
			continue
		case isdigit(r):
			l.unreadRune()
			return l.scanNum(pos)
		case r == '-' && l.negok():
			// A minus sign is part of a number only if a digit follows it
			// immediately.
			c, err := l.readRune()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return Token{Kind: KindOp, Op: OpMinus, Pos: pos}, nil
				}
				return Token{}, err
			}
			l.unreadRune()
			if !isdigit(c) {
				return Token{Kind: KindOp, Op: OpMinus, Pos: pos}, nil
			}
			l.buf.WriteRune(r)
			return l.scanNum(pos)
		case unicode.IsLetter(r):
			l.unreadRune()
			return l.scanIdent(pos)
		default:
			if op, ok := operator(r); ok {
				return Token{Kind: KindOp, Op: op, Pos: pos}, nil
			}
			return Token{}, &LexError{Text: string(r), Col: pos}
		}
	}
}

// negok returns whether a minus sign at the current position may begin a
// negative number, i.e. whether it follows nothing or an operator other than
// a close parenthesis.
func (l *lexer) negok() bool {
	if !l.have {
		return true
	}
	return l.prev.Kind == KindOp && l.prev.Op != OpRParen
}

func isdigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// scanNum scans digits and decimal points into a number token. A sign, if
// any, has already been written to the buffer.
func (l *lexer) scanNum(pos int) (Token, error) {
	dots := 0
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Token{}, err
		}
		if r == '.' {
			dots++
		} else if !isdigit(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	text := l.buf.String()
	if dots > 1 {
		return Token{}, &LexError{Text: text, Kind: "number", Col: pos}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// Only digits and one decimal point reach here.
		panic("calculator: invalid number: " + text + " (" + err.Error() + ")")
	}
	return Token{Kind: KindNum, Num: v, Pos: pos}, nil
}

// scanIdent scans a name. If the next non-space rune after the name is an
// open parenthesis, the name must be a function.
func (l *lexer) scanIdent(pos int) (Token, error) {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Token{Kind: KindVar, Name: l.buf.String(), Pos: pos}, nil
			}
			return Token{}, err
		}
		if !unicode.IsLetter(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	name := l.buf.String()
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Token{}, err
		}
		if unicode.IsSpace(r) {
			continue
		}
		// Leave the rune, whether it is ( or not, for the next token.
		l.unreadRune()
		if r != '(' {
			break
		}
		fn, ok := LookupFunc(name)
		if !ok {
			return Token{}, &FunctionError{Col: pos, Name: name}
		}
		return Token{Kind: KindFunc, Func: fn, Pos: pos}, nil
	}
	return Token{Kind: KindVar, Name: name, Pos: pos}, nil
}

// Tokenize splits src into tokens in source order.
func Tokenize(src string) ([]Token, error) {
	return tokenize(src, 1)
}

func tokenize(src string, col int) ([]Token, error) {
	l := lex(strings.NewReader(src), col)
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}
