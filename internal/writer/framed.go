package writer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/retroenv/paritygrid/internal/grid"
)

// MaxFramedSize is the largest grid that has a single letter for every file.
const MaxFramedSize = 26

// ErrGridTooLarge is returned when a framed grid has more files than letters.
var ErrGridTooLarge = errors.New("grid too large for framed style")

// writeFramed draws the grid as a board: the highest rank first, every row
// prefixed by its rank number, a border around the squares and the file
// letters below.
func (w *Writer) writeFramed(ctx context.Context, n int) error {
	if n <= 0 {
		return nil
	}
	if n > MaxFramedSize {
		return fmt.Errorf("%w: %d > %d", ErrGridTooLarge, n, MaxFramedSize)
	}

	labelWidth := len(strconv.Itoa(n))
	indent := strings.Repeat(" ", labelWidth+1)
	border := strings.Repeat("═", 2*n+1)

	if err := w.writeLine(indent + "╔" + border + "╗"); err != nil {
		return fmt.Errorf("writing top border: %w", err)
	}

	for rank := n - 1; rank >= 0; rank-- {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("writing rank %d: %w", rank+1, err)
		}
		line := fmt.Sprintf("%*d ║ %s ║", labelWidth, rank+1, w.formatRow(grid.Row(n, rank)))
		if err := w.writeLine(line); err != nil {
			return fmt.Errorf("writing rank %d: %w", rank+1, err)
		}
	}

	if err := w.writeLine(indent + "╚" + border + "╝"); err != nil {
		return fmt.Errorf("writing bottom border: %w", err)
	}

	files := make([]string, n)
	for x := range files {
		files[x] = string(rune('A' + x))
	}
	if err := w.writeLine(indent + "  " + strings.Join(files, " ")); err != nil {
		return fmt.Errorf("writing file legend: %w", err)
	}
	return nil
}
