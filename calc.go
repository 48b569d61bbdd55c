package calculator

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"fortio.org/log"
)

// Calculator evaluates lines of input against a variable environment which
// persists for the Calculator's lifetime. It is not safe to use a Calculator
// concurrently.
type Calculator struct {
	env *Env
}

// New creates a calculator whose environment is created with the given
// options.
func New(opts ...EnvOption) *Calculator {
	return &Calculator{env: NewEnv(opts...)}
}

// Env returns the calculator's environment. Changes to it are visible to
// later calculations.
func (c *Calculator) Env() *Env {
	return c.env
}

// Calculate evaluates one line of input and returns the formatted result. A
// line of the form "name = expr" also assigns the result to name. If an error
// occurs, the environment is unchanged.
func (c *Calculator) Calculate(line string) (string, error) {
	return Evaluate(line, c.env)
}

// Eval is like Calculate but returns the unformatted result.
func (c *Calculator) Eval(line string) (float64, error) {
	r, err := evaluate(line, c.env)
	if err != nil {
		log.LogVf("evaluating %q: %v", line, err)
	}
	return r, err
}

// Evaluate evaluates one line of input against env and returns the result
// formatted with FormatResult. If the line contains =, the text before the
// first = must be a single variable name, and on success the result is
// assigned to it in env. env is not modified if an error occurs.
func Evaluate(line string, env *Env) (string, error) {
	r, err := evaluate(line, env)
	if err != nil {
		log.LogVf("evaluating %q: %v", line, err)
		return "", err
	}
	return FormatResult(r), nil
}

func evaluate(line string, env *Env) (float64, error) {
	src, col := line, 1
	var name string
	if i := strings.IndexByte(line, '='); i >= 0 {
		eq := utf8.RuneCountInString(line[:i]) + 1
		lhs, err := tokenize(line[:i], 1)
		if err != nil {
			return 0, err
		}
		if len(lhs) != 1 || lhs[0].Kind != KindVar {
			return 0, &AssignError{Col: eq, Tokens: lhs}
		}
		name = lhs[0].Name
		src, col = line[i+1:], eq+1
	}
	e, err := parse(src, col)
	if err != nil {
		return 0, err
	}
	log.LogVf("postfix of %q: %v", src, e)
	r, err := e.Eval(env)
	if err != nil {
		return 0, err
	}
	if name != "" {
		log.LogVf("assign %s = %v", name, r)
		env.Set(name, r)
	}
	return r, nil
}

// FormatResult formats a result as the shortest decimal text that represents
// it exactly, without an exponent, e.g. "9" or "0.5".
func FormatResult(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}
