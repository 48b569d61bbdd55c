package calculator

import (
	"strconv"
	"strings"
)

// Token is a lexical atom of an expression. Exactly one of the payload fields
// is meaningful, selected by Kind. Tokens are values and are never modified
// after the lexer produces them.
type Token struct {
	// Kind selects the payload.
	Kind TokenKind
	// Num is the value of a KindNum token.
	Num float64
	// Op is the operator of a KindOp token.
	Op Operator
	// Func is the function of a KindFunc token.
	Func Function
	// Name is the identifier of a KindVar token.
	Name string
	// Pos is the 1-based rune column where the token starts, or 0 if the
	// token was not produced by the lexer.
	Pos int
}

// TokenKind is the discriminator of a Token.
type TokenKind int8

const (
	kindNone TokenKind = iota
	// KindNum is a numeric literal.
	KindNum
	// KindOp is an operator or parenthesis.
	KindOp
	// KindFunc is a function name which must be followed by a parenthesized
	// argument.
	KindFunc
	// KindVar is a variable name.
	KindVar
)

var kindnames = [...]string{"None", "Num", "Op", "Func", "Var"}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindnames[k]
}

// Num returns a number token.
func Num(v float64) Token {
	return Token{Kind: KindNum, Num: v}
}

// Op returns an operator token.
func Op(op Operator) Token {
	return Token{Kind: KindOp, Op: op}
}

// Func returns a function token.
func Func(fn Function) Token {
	return Token{Kind: KindFunc, Func: fn}
}

// Var returns a variable token.
func Var(name string) Token {
	return Token{Kind: KindVar, Name: name}
}

// Equal reports whether two tokens have the same kind and payload. Positions
// are ignored.
func (t Token) Equal(u Token) bool {
	if t.Kind != u.Kind {
		return false
	}
	switch t.Kind {
	case kindNone:
		return true
	case KindNum:
		return t.Num == u.Num
	case KindOp:
		return t.Op == u.Op
	case KindFunc:
		return t.Func == u.Func
	case KindVar:
		return t.Name == u.Name
	default:
		panic("calculator: invalid token kind " + t.Kind.String())
	}
}

// String formats the token as it would be written in an expression.
func (t Token) String() string {
	switch t.Kind {
	case kindNone:
		return "$"
	case KindNum:
		return FormatResult(t.Num)
	case KindOp:
		return t.Op.String()
	case KindFunc:
		return t.Func.String()
	case KindVar:
		return t.Name
	default:
		panic("calculator: invalid token kind " + t.Kind.String())
	}
}

// isLeftParen reports whether t is an open parenthesis.
func (t Token) isLeftParen() bool {
	return t.Kind == KindOp && t.Op == OpLParen
}

// isRightParen reports whether t is a close parenthesis.
func (t Token) isRightParen() bool {
	return t.Kind == KindOp && t.Op == OpRParen
}

// Operator is an operator, parenthesis, or assignment sign.
type Operator int8

const (
	opNone Operator = iota
	OpPlus
	OpMinus
	OpMul
	OpDiv
	OpPow
	OpLParen
	OpRParen
	OpEquals
)

// Operators contains the runes which are lexed as operators. The operator for
// the rune at byte k is Operator(k+1).
const Operators = "+-*/^()="

func (op Operator) String() string {
	if op <= opNone || int(op) > len(Operators) {
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
	return Operators[op-1 : op]
}

// operator returns the operator spelled by r.
func operator(r rune) (Operator, bool) {
	k := strings.IndexRune(Operators, r)
	if k < 0 {
		return opNone, false
	}
	return Operator(k + 1), true
}

// Precedence returns the binding strength of a binary operator: 2 for + and
// -, 3 for * and /, 4 for ^. The result is false for parentheses and =.
func (op Operator) Precedence() (uint, bool) {
	switch op {
	case OpPlus, OpMinus:
		return 2, true
	case OpMul, OpDiv:
		return 3, true
	case OpPow:
		return 4, true
	default:
		return 0, false
	}
}
