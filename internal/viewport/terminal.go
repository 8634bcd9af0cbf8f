package viewport

import (
	"golang.org/x/term"

	apperrors "github.com/alexisbeaulieu97/viewkit/pkg/errors"
)

// DefaultCellWidth approximates the pixel width of one terminal column.
const DefaultCellWidth = 8

// TerminalWidth returns the width of the terminal on fd in viewport pixels
// (columns × cellWidth). It fails with an EnvironmentError when fd is not an
// interactive terminal.
func TerminalWidth(fd int, cellWidth int) (int, error) {
	if !term.IsTerminal(fd) {
		return 0, apperrors.NewEnvironmentError("terminal", "output is not an interactive terminal", nil)
	}
	cols, _, err := term.GetSize(fd)
	if err != nil {
		return 0, apperrors.NewEnvironmentError("terminal", "cannot read terminal size", err)
	}
	return ColumnsToWidth(cols, cellWidth), nil
}

// ColumnsToWidth converts a column count to viewport pixels.
func ColumnsToWidth(cols, cellWidth int) int {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	if cols < 0 {
		cols = 0
	}
	return cols * cellWidth
}
