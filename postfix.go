package calculator

import (
	"strings"
)

// ToPostfix reorders infix tokens into postfix order. Operators of higher
// precedence bind tighter, and operators of equal precedence group to the
// left. Parentheses are removed. A function is emitted after its
// parenthesized argument.
//
// Besides balancing parentheses, ToPostfix rejects two operands in a row, as
// in "1 1", and two operators in a row, as in "1 + + 1".
func ToPostfix(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var ops []Token
	// operand is true when the next token must be an operator.
	operand := false
	for _, tok := range tokens {
		switch tok.Kind {
		case KindNum, KindVar:
			if operand {
				return nil, &SequenceError{Col: tok.Pos, Token: tok}
			}
			operand = true
			out = append(out, tok)
		case KindFunc:
			// The function's argument completes the operand, so the function
			// itself waits below its open parenthesis.
			if operand {
				return nil, &SequenceError{Col: tok.Pos, Token: tok}
			}
			ops = append(ops, tok)
		case KindOp:
			switch tok.Op {
			case OpLParen:
				ops = append(ops, tok)
			case OpRParen:
				found := false
				for len(ops) > 0 {
					top := ops[len(ops)-1]
					ops = ops[:len(ops)-1]
					if top.isLeftParen() {
						found = true
						break
					}
					out = append(out, top)
				}
				if !found {
					return nil, &BracketError{Col: tok.Pos}
				}
				if len(ops) > 0 && ops[len(ops)-1].Kind == KindFunc {
					out = append(out, ops[len(ops)-1])
					ops = ops[:len(ops)-1]
				}
			case OpEquals:
				return nil, &SequenceError{Col: tok.Pos, Token: tok}
			default:
				if !operand {
					return nil, &SequenceError{Col: tok.Pos, Token: tok}
				}
				operand = false
				p, _ := tok.Op.Precedence()
				for len(ops) > 0 {
					top := ops[len(ops)-1]
					if top.Kind != KindOp {
						break
					}
					q, ok := top.Op.Precedence()
					if !ok || q < p {
						break
					}
					out = append(out, top)
					ops = ops[:len(ops)-1]
				}
				ops = append(ops, tok)
			}
		default:
			panic("calculator: invalid token kind " + tok.Kind.String())
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.isLeftParen() {
			return nil, &BracketError{Col: top.Pos, Left: true}
		}
		out = append(out, top)
	}
	return out, nil
}

// Expr is an expression converted to postfix order, ready to evaluate against
// any environment.
type Expr struct {
	// postfix is the tokens in evaluation order.
	postfix []Token
	// names is the list of variable names used in the expression.
	names []string
}

// Parse tokenizes src and converts it to postfix order. src must not contain
// an assignment.
func Parse(src string) (*Expr, error) {
	return parse(src, 1)
}

func parse(src string, col int) (*Expr, error) {
	toks, err := tokenize(src, col)
	if err != nil {
		return nil, err
	}
	post, err := ToPostfix(toks)
	if err != nil {
		return nil, err
	}
	e := Expr{postfix: post}
	seen := make(map[string]bool)
	for _, tok := range post {
		if tok.Kind == KindVar && !seen[tok.Name] {
			seen[tok.Name] = true
			e.names = append(e.names, tok.Name)
		}
	}
	return &e, nil
}

// Eval evaluates the expression against env.
func (e *Expr) Eval(env *Env) (float64, error) {
	return Eval(e.postfix, env)
}

// Vars returns the names of the variables the expression uses, in the order
// they are first evaluated.
func (e *Expr) Vars() []string {
	return append([]string(nil), e.names...)
}

// Postfix returns a copy of the expression's tokens in evaluation order.
func (e *Expr) Postfix() []Token {
	return append([]Token(nil), e.postfix...)
}

// String formats the expression in postfix notation, e.g. "1 2 4 * +".
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.postfix {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}
