package calculator

import "math"

// LexError indicates a rune or literal the lexer cannot turn into a token. It
// implements InputError.
type LexError struct {
	// Text is the offending rune, or the whole literal if Kind is "number".
	Text string
	// Kind is "number" if the lexer was scanning a numeric literal, otherwise
	// the empty string.
	Kind string
	// Col is the position of the start of Text.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "number" {
		return "multiple decimal points: " + err.Text
	}
	return "unknown character: " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

// FunctionError indicates a parenthesized call of a name which is not a
// function. It implements InputError.
type FunctionError struct {
	// Col is the position of the name.
	Col int
	// Name is the name as written.
	Name string
}

func (err *FunctionError) Error() string {
	return "Unknown function: " + err.Name
}

func (err *FunctionError) Pos() int {
	return err.Col
}

// BracketError indicates an unbalanced parenthesis. It implements InputError.
type BracketError struct {
	// Col is the position of the unpaired parenthesis.
	Col int
	// Left is true if the unpaired parenthesis is an open parenthesis.
	Left bool
}

func (err *BracketError) Error() string {
	if err.Left {
		return "Left parenthesis without a pair found"
	}
	return "Right parenthesis without a pair found"
}

func (err *BracketError) Pos() int {
	return err.Col
}

// SequenceError indicates two operands or two operators next to each other,
// or an operator where no operator may appear. It implements InputError.
type SequenceError struct {
	// Col is the position of the second token of the pair.
	Col int
	// Token is the second token of the pair.
	Token Token
}

func (err *SequenceError) Error() string {
	if err.Token.Kind != KindOp {
		return "Too many numbers in a row"
	}
	if err.Token.Op == OpEquals {
		return "Unexpected operator: " + err.Token.Op.String()
	}
	return "Too many operators in a row"
}

func (err *SequenceError) Pos() int {
	return err.Col
}

// AssignError indicates that the text before the first = of a line is not a
// single variable name. It implements InputError.
type AssignError struct {
	// Col is the position of the =.
	Col int
	// Tokens is the tokens found before the =.
	Tokens []Token
}

func (err *AssignError) Error() string {
	switch len(err.Tokens) {
	case 0:
		return "Variable required before '='"
	case 1:
		return "Malformed input before '='"
	default:
		return "Too many tokens before '='"
	}
}

func (err *AssignError) Pos() int {
	return err.Col
}

// NameError is an error from a lookup for a variable that is missing from the
// environment. It implements InputError.
type NameError struct {
	// Name is the name that was missing.
	Name string
	// Col is the position of the variable.
	Col int
}

func (err *NameError) Error() string {
	return "Undefined variable: " + err.Name
}

func (err *NameError) Pos() int {
	return err.Col
}

// StackError indicates a postfix expression with the wrong number of operands
// for its operators. It implements InputError.
type StackError struct {
	// Col is the position of the token that needed more operands, or 0 if
	// the operand count was wrong at the end of evaluation.
	Col int
	// Token is the operator or function that needed more operands. It is the
	// zero Token if the error was found at the end of evaluation.
	Token Token
	// Left is the number of operands on the stack at the end of evaluation.
	Left int
}

func (err *StackError) Error() string {
	switch {
	case err.Token.Kind == KindFunc:
		return "Too few numbers"
	case err.Left > 1:
		return "Too many numbers!"
	default:
		return "Too many operators"
	}
}

func (err *StackError) Pos() int {
	return err.Col
}

// DomainError is an error returned when an operator is applied to an operand
// outside its domain: a zero divisor, NaN, or an infinity. It implements
// InputError.
type DomainError struct {
	// X is the out-of-domain operand.
	X float64
	// Op is the operator.
	Op Operator
	// Col is the position of the operator.
	Col int
}

func (err *DomainError) Error() string {
	switch {
	case math.IsNaN(err.X):
		return "Operand of " + err.Op.String() + " is not a number (NaN)"
	case err.X == 0 && err.Op == OpDiv:
		return "Trying to divide by zero!"
	default:
		return "Operand " + FormatResult(err.X) + " of " + err.Op.String() + " is infinite"
	}
}

func (err *DomainError) Pos() int {
	return err.Col
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*FunctionError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SequenceError)(nil)
	_ InputError = (*AssignError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*StackError)(nil)
	_ InputError = (*DomainError)(nil)
)
