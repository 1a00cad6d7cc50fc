// Package calculator provides the arithmetic used by the sum endpoint.
package calculator

// Calculator adds two integers.
type Calculator interface {
	// Add returns a + b. It is total: no range checks, no errors.
	Add(a, b int) int
}

// Basic is the stateless Calculator used in production.
type Basic struct{}

// New creates a Basic calculator.
func New() *Basic {
	return &Basic{}
}

// Add returns the sum of a and b.
func (*Basic) Add(a, b int) int {
	return a + b
}
