package example

import "errors"

// ErrDivisionByZero is returned by Calculator.Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero is not allowed")

// Calculator performs basic arithmetic. The zero value is ready to use.
type Calculator struct{}

// Add returns the sum of a and b.
func (Calculator) Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a minus b.
func (Calculator) Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns the product of a and b.
func (Calculator) Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a divided by b, or ErrDivisionByZero when b is zero.
func (Calculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}
