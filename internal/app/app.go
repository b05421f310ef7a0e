// Package app provides the main application helpers for the grid printer.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/paritygrid/internal/config"
	"github.com/retroenv/paritygrid/internal/grid"
	"github.com/retroenv/paritygrid/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// PrintBanner logs the application version information. Standard output is
// reserved for the grid, so the banner is only visible with debug logging.
func PrintBanner(logger *log.Logger, opts options.Program, version string) {
	if opts.Quiet {
		return
	}
	logger.Debug("paritygrid - parity checkerboard printer", log.String("version", version))
}

// Run prints the grid of the default size to w using the options.
func Run(ctx context.Context, logger *log.Logger, opts options.Program, w io.Writer) error {
	rows, err := config.CreateWriter(w, opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}

	logger.Debug("Printing grid",
		log.Int("size", grid.DefaultSize),
		log.String("style", opts.Style),
	)

	if err := rows.WriteGrid(ctx, grid.DefaultSize); err != nil {
		return fmt.Errorf("printing grid: %w", err)
	}
	return nil
}
