// Package options contains the program options.
package options

// Flags contains behavior options.
type Flags struct {
	Style string `flag:"style" usage:"cell style of the printed grid (digits/board/framed)" default:"digits"`
	Debug bool   `flag:"debug" usage:"enable debugging options for extended logging"`
	Quiet bool   `flag:"q" usage:"perform operations quietly"`
}

// Program options of the grid printer.
type Program struct {
	Flags
}
