// Package calculator implements an interactive floating-point calculator.
//
// An input line is an arithmetic expression over numbers, the operators
// + - * / ^, parentheses, variables, and the functions sin, cos, tan, and
// sqrt, optionally prefixed with an assignment "name =". Lines are tokenized,
// converted to postfix order with the shunting-yard algorithm, and evaluated
// with a single operand stack against an environment of variables that
// persists between lines.
//
// Operators of equal precedence group to the left, including ^, so "2^3^2"
// is "(2^3)^2". A minus sign directly followed by a digit at the start of an
// expression or after another operator begins a negative number; there is no
// other unary minus.
//
package calculator
