package grid

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

var errWrite = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestValue(t *testing.T) {
	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{0, 1, 1},
		{1, 1, 0},
		{6, 3, 1},
		{7, 7, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Value(tt.x, tt.y))
		assert.Equal(t, (tt.x+tt.y)%2, Value(tt.x, tt.y))
	}
}

func TestValueSymmetry(t *testing.T) {
	for y := range DefaultSize {
		for x := range DefaultSize {
			assert.Equal(t, Value(x, y), Value(y, x))
			if x+1 < DefaultSize && y+1 < DefaultSize {
				assert.Equal(t, Value(x, y), Value(x+1, y+1))
			}
		}
	}
}

func TestPrint(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want string
	}{
		{name: "negative", n: -3, want: ""},
		{name: "empty", n: 0, want: ""},
		{name: "single", n: 1, want: "0\n"},
		{name: "two", n: 2, want: "0 1\n1 0\n"},
		{name: "four", n: 4, want: "0 1 0 1\n1 0 1 0\n0 1 0 1\n1 0 1 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.NoError(t, Print(&buf, tt.n))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintDefaultSize(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Print(&buf, DefaultSize))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, DefaultSize)

	for y, line := range lines {
		tokens := strings.Split(line, " ")
		assert.Len(t, tokens, DefaultSize)
		for x, token := range tokens {
			assert.Equal(t, Format([]int{Value(x, y)}), token)
		}

		if y%2 == 0 {
			assert.Equal(t, "0 1 0 1 0 1 0 1", line)
		} else {
			assert.Equal(t, "1 0 1 0 1 0 1 0", line)
		}
	}
}

func TestPrintIdempotent(t *testing.T) {
	var first, second bytes.Buffer
	assert.NoError(t, Print(&first, DefaultSize))
	assert.NoError(t, Print(&second, DefaultSize))
	assert.Equal(t, first.String(), second.String())
}

func TestPrintWriteError(t *testing.T) {
	err := Print(failingWriter{}, 2)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, errWrite))
	assert.ErrorContains(t, err, "writing row 0")
}

func TestRowsStopsEarly(t *testing.T) {
	var seen []int
	for y := range Rows(DefaultSize) {
		seen = append(seen, y)
		if y == 2 {
			break
		}
	}
	assert.Len(t, seen, 3)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "", Format(nil))
	assert.Equal(t, "1", Format([]int{1}))
	assert.Equal(t, "0 1 0", Format(Row(3, 0)))
	assert.True(t, Row(0, 0) == nil)
}
