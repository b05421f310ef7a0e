// Package writer implements rendering of grid rows to an output stream.
package writer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/paritygrid/internal/grid"
)

// Style defines how a cell value is rendered.
type Style string

// Supported styles.
const (
	Digits Style = "digits" // 0 and 1
	Board  Style = "board"  // blank light squares, # for dark squares
	Framed Style = "framed" // board squares inside a border with rank and file labels
)

// Styles lists all supported styles in the order they are shown to the user.
var Styles = []Style{Digits, Board, Framed}

// ErrUnknownStyle is returned for a style name that is not supported.
var ErrUnknownStyle = errors.New("unknown style")

// ParseStyle returns the style matching the case-insensitive name.
func ParseStyle(name string) (Style, error) {
	style := Style(strings.ToLower(strings.TrimSpace(name)))
	for _, s := range Styles {
		if s == style {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w '%s'", ErrUnknownStyle, name)
}

// StyleNames returns the names of all supported styles.
func StyleNames() []string {
	names := make([]string, len(Styles))
	for i, s := range Styles {
		names[i] = string(s)
	}
	return names
}

// Writer writes grid rows line by line.
type Writer struct {
	style  Style
	writer io.Writer
}

// New creates a new writer. An empty style selects Digits.
func New(w io.Writer, style Style) *Writer {
	if style == "" {
		style = Digits
	}
	return &Writer{
		style:  style,
		writer: w,
	}
}

// WriteRow writes the cells of a row as one line.
func (w *Writer) WriteRow(row []int) error {
	return w.writeLine(w.formatRow(row))
}

// WriteGrid writes all rows of an n×n grid. The context is checked before
// each row so that a cancellation never leaves a partial line behind.
func (w *Writer) WriteGrid(ctx context.Context, n int) error {
	if w.style == Framed {
		return w.writeFramed(ctx, n)
	}

	for y, row := range grid.Rows(n) {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("writing row %d: %w", y, err)
		}
		if err := w.WriteRow(row); err != nil {
			return fmt.Errorf("writing row %d: %w", y, err)
		}
	}
	return nil
}

func (w *Writer) formatRow(row []int) string {
	if w.style == Digits {
		return grid.Format(row)
	}

	cells := make([]string, len(row))
	for i, v := range row {
		cells[i] = boardCell(v)
	}
	return strings.Join(cells, " ")
}

func (w *Writer) writeLine(line string) error {
	if _, err := fmt.Fprintln(w.writer, line); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

func boardCell(value int) string {
	if value == 0 {
		return " "
	}
	return "#"
}
