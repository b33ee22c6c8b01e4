// Package ratexpr implements a calculator for rational functions of one
// variable written in reverse Polish notation.
//
// Each line is a sequence of space-separated tokens. Operands are decimal
// numbers or the variable, x by default. The operators + - * / take two
// operands, ^ raises its left operand to an integer power given by its right
// operand, and d differentiates its one operand with respect to the variable.
// "x 3 ^ d" is 3x², which formats back to RPN as "3 x 2 ^ *".
//
// Coefficients are float64. Values whose magnitude is below Epsilon are
// treated as zero, and a denominator that becomes zero makes the line
// undefined. No common factors are cancelled except a constant denominator.
//
package ratexpr
