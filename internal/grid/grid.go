// Package grid computes the parity checkerboard.
package grid

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// DefaultSize is the number of rows and columns printed by the program.
const DefaultSize = 8

// Value returns the cell value at column x and row y. It is 1 when x and y
// have different parities and 0 otherwise.
func Value(x, y int) int {
	return (x & 1) ^ (y & 1)
}

// Row returns the n cell values of row y.
func Row(n, y int) []int {
	if n <= 0 {
		return nil
	}
	row := make([]int, n)
	for x := range row {
		row[x] = Value(x, y)
	}
	return row
}

// Rows yields the row index and cell values of all n rows in ascending order.
// Nothing is yielded for n <= 0.
func Rows(n int) iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		for y := 0; y < n; y++ {
			if !yield(y, Row(n, y)) {
				return
			}
		}
	}
}

// Format joins the cell values of a row by single spaces.
func Format(row []int) string {
	var sb strings.Builder
	for i, v := range row {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// Print writes the n×n grid to w, one row per line.
func Print(w io.Writer, n int) error {
	for y, row := range Rows(n) {
		if _, err := fmt.Fprintln(w, Format(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", y, err)
		}
	}
	return nil
}
