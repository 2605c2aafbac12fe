// Package compound shows Go's fixed-size value aggregates: a struct standing in
// for a three-element tuple, and a five-element array.
package compound

import (
	"fmt"
	"io"
)

// Tuple is a fixed heterogeneous triple, decomposed by position with Unpack.
type Tuple struct {
	X int32
	Y float64
	Z uint8
}

// NewTuple builds a Tuple from its three positional values.
func NewTuple(x int32, y float64, z uint8) Tuple {
	return Tuple{X: x, Y: y, Z: z}
}

// Unpack returns the elements in order.
func (t Tuple) Unpack() (int32, float64, uint8) {
	return t.X, t.Y, t.Z
}

// Array is a fixed-length homogeneous sequence. Indexing it with a constant out
// of range is a compile error.
type Array [5]int32

// Demo prints selected tuple and array elements, one per line.
func Demo(w io.Writer) error {
	tup := NewTuple(500, 6.4, 1)
	_, y, _ := tup.Unpack()
	if _, err := fmt.Fprintf(w, "The value of y is: %v\n", y); err != nil {
		return err
	}

	// untyped constants: the third element defaults to int
	tup2 := struct {
		a int
		b float64
		c int
	}{500, 6.4, 1}
	if _, err := fmt.Fprintf(w, "The third value is: %v\n", tup2.c); err != nil {
		return err
	}

	lst := Array{1, 2, 3, 4, 5}
	first := lst[0]
	if _, err := fmt.Fprintf(w, "The first element of the array is: %v\n", first); err != nil {
		return err
	}

	lst2 := [...]int{1, 2, 3, 4, 5}
	_, err := fmt.Fprintf(w, "The second element of lst2 is: %v\n", lst2[1])
	return err
}
