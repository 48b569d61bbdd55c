package calculator

import (
	"math"
	"sort"
)

// Env is the set of variables available to expressions. It is not safe to use
// an Env concurrently.
type Env struct {
	names map[string]float64
}

// EnvOption is an option used when creating an environment.
type EnvOption interface {
	envOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
)

func (varopt) envOption()  {}
func (varsopt) envOption() {}

// SetVar sets the value of a variable in the environment.
func SetVar(name string, val float64) EnvOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the environment.
func SetVars(vars map[string]float64) EnvOption {
	return varsopt(vars)
}

// NewEnv creates a new environment. With no options, it is empty.
func NewEnv(opts ...EnvOption) *Env {
	var env Env
	return env.Clone(opts...)
}

// Clone creates a copy of an environment and applies options to it.
func (env *Env) Clone(opts ...EnvOption) *Env {
	n := Env{names: make(map[string]float64, len(env.names))}
	for name, val := range env.names {
		n.names[name] = val
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.names[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				n.names[k] = v
			}
		default:
			panic("calculator: unknown option type")
		}
	}
	return &n
}

// Set sets the value of a variable. Returns env for chaining.
func (env *Env) Set(name string, value float64) *Env {
	if env.names == nil {
		env.names = make(map[string]float64)
	}
	env.names[name] = value
	return env
}

// Lookup returns the value of a variable and whether it is defined.
func (env *Env) Lookup(name string) (float64, bool) {
	if env == nil {
		return 0, false
	}
	v, ok := env.names[name]
	return v, ok
}

// Names returns the names of all defined variables in sorted order.
func (env *Env) Names() []string {
	r := make([]string, 0, len(env.names))
	for name := range env.names {
		r = append(r, name)
	}
	sort.Strings(r)
	return r
}

// Len returns the number of defined variables.
func (env *Env) Len() int {
	return len(env.names)
}

// Eval evaluates a postfix token sequence, such as one returned by ToPostfix,
// against env. env is not modified and may be nil if the expression uses no
// variables.
func Eval(postfix []Token, env *Env) (float64, error) {
	var stack []float64
	pop := func() (float64, bool) {
		if len(stack) == 0 {
			return 0, false
		}
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return r, true
	}
	for _, tok := range postfix {
		switch tok.Kind {
		case KindNum:
			stack = append(stack, tok.Num)
		case KindVar:
			v, ok := env.Lookup(tok.Name)
			if !ok {
				return 0, &NameError{Name: tok.Name, Col: tok.Pos}
			}
			stack = append(stack, v)
		case KindFunc:
			x, ok := pop()
			if !ok {
				return 0, &StackError{Col: tok.Pos, Token: tok}
			}
			stack = append(stack, tok.Func.Apply(x))
		case KindOp:
			switch tok.Op {
			case OpLParen, OpRParen:
				return 0, &BracketError{Col: tok.Pos, Left: tok.Op == OpLParen}
			case OpEquals:
				return 0, &SequenceError{Col: tok.Pos, Token: tok}
			}
			a, ok := pop()
			if !ok {
				return 0, &StackError{Col: tok.Pos, Token: tok}
			}
			b, ok := pop()
			if !ok {
				return 0, &StackError{Col: tok.Pos, Token: tok}
			}
			r, err := operate(b, a, tok)
			if err != nil {
				return 0, err
			}
			stack = append(stack, r)
		default:
			panic("calculator: invalid token kind " + tok.Kind.String())
		}
	}
	r, ok := pop()
	if !ok {
		return 0, &StackError{}
	}
	if len(stack) > 0 {
		return 0, &StackError{Left: len(stack) + 1}
	}
	return r, nil
}

// operate computes b op a.
func operate(b, a float64, tok Token) (float64, error) {
	if err := checkOperands(b, a, tok); err != nil {
		return 0, err
	}
	switch tok.Op {
	case OpPlus:
		return b + a, nil
	case OpMinus:
		return b - a, nil
	case OpMul:
		return b * a, nil
	case OpDiv:
		if a == 0 {
			return 0, &DomainError{X: a, Op: tok.Op, Col: tok.Pos}
		}
		return b / a, nil
	case OpPow:
		return math.Pow(b, a), nil
	default:
		panic("calculator: invalid operator " + tok.Op.String())
	}
}

// checkOperands rejects NaN and infinite operands of a binary operator.
func checkOperands(b, a float64, tok Token) error {
	for _, x := range [2]float64{b, a} {
		if math.IsNaN(x) {
			return &DomainError{X: x, Op: tok.Op, Col: tok.Pos}
		}
	}
	for _, x := range [2]float64{b, a} {
		if math.IsInf(x, 0) {
			return &DomainError{X: x, Op: tok.Op, Col: tok.Pos}
		}
	}
	return nil
}
