// Package model contains domain models passed between layers.
package model

import "strconv"

// Pair holds the two operands drawn for one request.
type Pair struct {
	Left  int
	Right int
}

// Result is a drawn pair together with its sum.
type Result struct {
	Pair
	Sum int
}

// String renders the result as "{left} + {right} = {sum}".
func (r Result) String() string {
	b := make([]byte, 0, 32)
	b = strconv.AppendInt(b, int64(r.Left), 10)
	b = append(b, " + "...)
	b = strconv.AppendInt(b, int64(r.Right), 10)
	b = append(b, " = "...)
	b = strconv.AppendInt(b, int64(r.Sum), 10)
	return string(b)
}
