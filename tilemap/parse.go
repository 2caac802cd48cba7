package tilemap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds a single map row.
const maxLineBytes = 16 << 20

// Parse reads an ASCII map, one row per line. '-', '.' and '0' are walkable;
// 'X', '#' and '1' are blocked. Blank lines and trailing '\r' are ignored.
// Returns ErrBadGlyph for any other character and the Grid constructor
// errors for empty or ragged input.
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		row := make([]int, 0, len(text))
		for col, ch := range text {
			switch ch {
			case '-', '.', '0':
				row = append(row, 0)
			case 'X', '#', '1':
				row = append(row, 1)
			default:
				return nil, fmt.Errorf("%w: %q at line %d, column %d", ErrBadGlyph, ch, line, col+1)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tilemap: read map: %w", err)
	}

	return NewGrid(rows)
}

// ParseString is Parse over an in-memory map.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// ParseRows is Parse over pre-split rows, as received in JSON requests.
func ParseRows(rows []string) (*Grid, error) {
	return ParseString(strings.Join(rows, "\n"))
}
