// Package arith provides trivial integer arithmetic helpers.
package arith

// Add returns a + b.
func Add(a, b int) int {
	return a + b
}

// Multiply returns a * b.
func Multiply(a, b int) int {
	return a * b
}

// Subtract returns a - b.
func Subtract(a, b int) int {
	return a - b
}

// Divide returns a / b. Division by zero returns 0.
func Divide(a, b int) int {
	if b == 0 {
		return 0
	}
	return a / b
}
