package calculator

import (
	"math"
	"strconv"
	"strings"
)

// Function is a function of one real argument.
type Function int8

const (
	fnNone Function = iota
	FnSin
	FnCos
	FnTan
	FnSqrt
)

type funcdef struct {
	name string
	f    func(float64) float64
}

// funcs is indexed by Function. Trigonometric functions take radians.
var funcs = [...]funcdef{
	fnNone: {},
	FnSin:  {"sin", math.Sin},
	FnCos:  {"cos", math.Cos},
	FnTan:  {"tan", math.Tan},
	FnSqrt: {"sqrt", math.Sqrt},
}

// LookupFunc returns the function with the given name, ignoring case.
func LookupFunc(name string) (Function, bool) {
	for k := FnSin; int(k) < len(funcs); k++ {
		if strings.EqualFold(funcs[k].name, name) {
			return k, true
		}
	}
	return fnNone, false
}

func (fn Function) valid() bool {
	return fn > fnNone && int(fn) < len(funcs)
}

func (fn Function) String() string {
	if !fn.valid() {
		return "Function(" + strconv.Itoa(int(fn)) + ")"
	}
	return funcs[fn].name
}

// Apply evaluates the function at x. Arguments outside the function's domain
// give NaN, e.g. the square root of a negative number.
func (fn Function) Apply(x float64) float64 {
	if !fn.valid() {
		panic("calculator: invalid function " + fn.String())
	}
	return funcs[fn].f(x)
}
