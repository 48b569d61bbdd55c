package calculator_test

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"testing"

	"github.com/zephyrtronium/calculator"
)

func TestEval(t *testing.T) {
	type vv struct {
		n string
		v float64
	}
	type vc struct {
		vars []vv
		r    float64
	}
	cases := []struct {
		name string
		src  string
		r    []vc
	}{
		{"num", "1", []vc{{nil, 1}}},
		{"ident", "x", []vc{
			{[]vv{{"x", 4}}, 4},
			{[]vv{{"x", 5}}, 5},
			{[]vv{{"x", 6}}, 6},
		}},
		{"neg", "-4", []vc{{nil, -4}}},
		{"add", "1+1", []vc{{nil, 2}}},
		{"prec", "1 + 2 * 4", []vc{{nil, 9}}},
		{"paren", "(1 + 2) * 3", []vc{{nil, 9}}},
		{"sub", "4-5-6", []vc{{nil, 4 - 5 - 6}}},
		{"div", "8/4/2", []vc{{nil, 1}}},
		{"pow", "2 ^ 3 ^ 2", []vc{{nil, 64}}},
		{"pow-neg", "2^-1", []vc{{nil, 0.5}}},
		{"sub-neg", "2--3", []vc{{nil, 5}}},
		{"paren-sub", "(1+2)-3", []vc{{nil, 0}}},
		{"decimal", "1.5 + 1.5", []vc{{nil, 3}}},
		{"sin", "sin(0)", []vc{{nil, 0}}},
		{"cos", "cos(0)", []vc{{nil, 1}}},
		{"tan", "tan(0)", []vc{{nil, 0}}},
		{"sqrt", "sqrt(16)", []vc{{nil, 4}}},
		{"sqrt-upper", "SQRT(16)", []vc{{nil, 4}}},
		{"func-expr", "sqrt(x * x + 9) - 1", []vc{
			{[]vv{{"x", 4}}, 4},
			{[]vv{{"x", 0}}, 2},
		}},
		{"vars", "x * (y + 2)", []vc{
			{[]vv{{"x", 3}, {"y", 1}}, 9},
			{[]vv{{"x", -1}, {"y", 0}}, -2},
		}},
		{"overflow", "10 ^ 400", []vc{{nil, math.Inf(1)}}},
	}
	env := calculator.NewEnv()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := calculator.Parse(c.src)
			if err != nil {
				t.Fatal(c.src, "failed to parse:", err)
			}
			for _, v := range c.r {
				env := env.Clone()
				for _, x := range v.vars {
					env.Set(x.n, x.v)
				}
				r, err := e.Eval(env)
				if err != nil {
					t.Error("evaluation error:", err)
				}
				if r != v.r {
					t.Errorf("wrong result: want %g, got %g", v.r, r)
				}
			}
		})
	}
}

func TestEvalNaN(t *testing.T) {
	r, err := calculator.New().Calculate("sqrt(-1)")
	if err != nil {
		t.Fatalf("sqrt(-1) gave error %v", err)
	}
	if r != "NaN" {
		t.Errorf("sqrt(-1) gave %s, want NaN", r)
	}
}

func TestEvalUndefNames(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    string
	}{
		{"x", "x", "x"},
		{"add-lhs", "x+1", "x"},
		{"add-rhs", "1+x", "x"},
		{"sub-lhs", "x-1", "x"},
		{"mul-rhs", "1*x", "x"},
		{"div-rhs", "1/x", "x"},
		{"pow-lhs", "x^1", "x"},
		{"call", "sin(x)", "x"},
		{"first", "y * x", "y"},
	}
	re := regexp.MustCompile(`^Undefined variable: `)
	env := calculator.NewEnv()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := calculator.Parse(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if r, err := e.Eval(env); err == nil {
				t.Fatalf("evaluating %q gave no error and result %g", c.src, r)
			} else {
				u, ok := err.(*calculator.NameError)
				if !ok {
					t.Fatalf("error was %#v, not NameError", err)
				}
				if !re.MatchString(u.Error()) {
					t.Errorf("%q doesn't start with %v", u.Error(), re)
				}
				if u.Name != c.r {
					t.Errorf("NameError on %q, want %q", u.Name, c.r)
				}
			}
		})
	}
}

func TestEvalOpError(t *testing.T) {
	cases := []struct {
		name string
		src  string
		msg  string
	}{
		{"div-zero", "1 / 0", "Trying to divide by zero!"},
		{"div-zero-zero", "0/0", "Trying to divide by zero!"},
		{"div-neg-zero", "1 / (1 - 1)", "Trying to divide by zero!"},
		{"nan-lhs", "sqrt(-1) + 1", "Operand of + is not a number (NaN)"},
		{"nan-rhs", "1 * sqrt(-4)", "Operand of * is not a number (NaN)"},
		{"nan-div", "sqrt(-1) / 0", "Operand of / is not a number (NaN)"},
		{"inf-lhs", "10^400 * 0", "Operand +Inf of * is infinite"},
		{"inf-rhs", "1 - -10^401", "Operand -Inf of - is infinite"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := calculator.New().Calculate(c.src)
			if err == nil {
				t.Fatalf("evaluating %q gave no error", c.src)
			}
			var d *calculator.DomainError
			if !errors.As(err, &d) {
				t.Fatalf("%#v is not a *DomainError", err)
			}
			if got := d.Error(); got != c.msg {
				t.Errorf("wrong message: want %q, got %q", c.msg, got)
			}
		})
	}
}

func TestEvalStack(t *testing.T) {
	num := calculator.Num
	op := calculator.Op
	cases := []struct {
		name string
		post []calculator.Token
		msg  string
	}{
		{"empty", nil, "Too many operators"},
		{"op", []calculator.Token{op(calculator.OpPlus)}, "Too many operators"},
		{"op-one", []calculator.Token{num(1), op(calculator.OpPlus)}, "Too many operators"},
		{"op-first", []calculator.Token{op(calculator.OpPlus), num(1), num(2)}, "Too many operators"},
		{"func", []calculator.Token{calculator.Func(calculator.FnSin)}, "Too few numbers"},
		{"nums", []calculator.Token{num(1), num(1)}, "Too many numbers!"},
		{"too-few-ops", []calculator.Token{num(1), num(1), num(1), op(calculator.OpDiv)}, "Too many numbers!"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calculator.Eval(c.post, nil)
			if err == nil {
				t.Fatalf("%v gave no error and result %g", c.post, r)
			}
			var s *calculator.StackError
			if !errors.As(err, &s) {
				t.Fatalf("%#v is not a *StackError", err)
			}
			if got := s.Error(); got != c.msg {
				t.Errorf("wrong message: want %q, got %q", c.msg, got)
			}
		})
	}
}

func TestEnv(t *testing.T) {
	env := calculator.NewEnv(calculator.SetVar("x", 1), calculator.SetVars(map[string]float64{"b": 2, "a": 3}))
	if got, want := env.Names(), []string{"a", "b", "x"}; !reflect.DeepEqual(got, want) {
		t.Errorf("wrong names: want %q, got %q", want, got)
	}
	clone := env.Clone(calculator.SetVar("x", 10))
	clone.Set("y", 4)
	if v, _ := env.Lookup("x"); v != 1 {
		t.Errorf("clone modified original x to %g", v)
	}
	if _, ok := env.Lookup("y"); ok {
		t.Error("clone added y to original")
	}
	if v, ok := clone.Lookup("x"); !ok || v != 10 {
		t.Errorf("clone has x=%g (%t), want 10", v, ok)
	}
	if env.Len() != 3 || clone.Len() != 4 {
		t.Errorf("wrong lengths: original %d, clone %d", env.Len(), clone.Len())
	}
	if _, ok := env.Lookup("X"); ok {
		t.Error("lookup is not case-sensitive")
	}
}
