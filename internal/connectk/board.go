package connectk

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/connectk-backend/internal/apperror"
	"github.com/rocketscienceinc/connectk-backend/internal/entity"
)

// direction is a (row, col) step. Row 0 is the top edge, so "up" decreases the row index.
type direction struct {
	dRow, dCol int
}

// Scan order used by TerminalState and the heuristic windows.
var directions = [4]direction{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{-1, 1}, // up-diagonal
	{1, 1},  // down-diagonal
}

// Board is a rows x cols grid stored row-major in a single slice.
type Board struct {
	rows      int
	cols      int
	winLength int
	cells     []entity.Cell
}

// New - creates an empty board.
func New(rows, cols, winLength int) (*Board, error) {
	if err := ValidateDimensions(rows, cols, winLength); err != nil {
		return nil, err
	}

	return &Board{
		rows:      rows,
		cols:      cols,
		winLength: winLength,
		cells:     make([]entity.Cell, rows*cols),
	}, nil
}

// ValidateDimensions - checks 1 <= winLength <= min(rows, cols) for positive dimensions.
func ValidateDimensions(rows, cols, winLength int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: %dx%d board", apperror.ErrInvalidConfiguration, rows, cols)
	}

	if winLength < 1 || winLength > min(rows, cols) {
		return fmt.Errorf("%w: win length %d on %dx%d board", apperror.ErrInvalidConfiguration, winLength, rows, cols)
	}

	return nil
}

// Rows - number of rows; row 0 is the top edge.
func (that *Board) Rows() int { return that.rows }

// Cols - number of columns.
func (that *Board) Cols() int { return that.cols }

// WinLength - run length needed to win.
func (that *Board) WinLength() int { return that.winLength }

// Resize - reallocates the grid only when rows or cols change; winLength is updated independently.
func (that *Board) Resize(rows, cols, winLength int) error {
	if err := ValidateDimensions(rows, cols, winLength); err != nil {
		return err
	}

	if that.rows != rows || that.cols != cols {
		that.rows = rows
		that.cols = cols
		that.cells = make([]entity.Cell, rows*cols)
	}

	that.winLength = winLength

	return nil
}

// Reset - clears every cell, keeping dimensions.
func (that *Board) Reset() {
	clear(that.cells)
}

// Clone - returns an independent copy.
func (that *Board) Clone() *Board {
	clone := *that
	clone.cells = make([]entity.Cell, len(that.cells))
	copy(clone.cells, that.cells)

	return &clone
}

// At - returns the cell at (row, col).
func (that *Board) At(row, col int) (entity.Cell, error) {
	if !that.inside(row, col) {
		return entity.Empty, fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidColumn, row, col)
	}

	return that.at(row, col), nil
}

// Place - drops the piece of turn into the lowest empty cell of column.
// The board is unchanged when an error is returned.
func (that *Board) Place(column int, turn entity.Turn) error {
	if column < 0 || column >= that.cols {
		return fmt.Errorf("%w: column %d", apperror.ErrInvalidColumn, column)
	}

	for row := that.rows - 1; row >= 0; row-- {
		if that.at(row, column) == entity.Empty {
			that.cells[that.index(row, column)] = turn.Piece()
			return nil
		}
	}

	return fmt.Errorf("%w: column %d", apperror.ErrColumnFull, column)
}

// Moves - returns the columns whose top cell is empty, ascending.
func (that *Board) Moves() []int {
	moves := make([]int, 0, that.cols)
	for col := 0; col < that.cols; col++ {
		if that.cells[col] == entity.Empty {
			moves = append(moves, col)
		}
	}

	return moves
}

// Occupied - counts non-empty cells.
func (that *Board) Occupied() int {
	count := 0
	for _, cell := range that.cells {
		if cell != entity.Empty {
			count++
		}
	}

	return count
}

// IsFull - reports whether every column's top cell is occupied.
func (that *Board) IsFull() bool {
	for col := 0; col < that.cols; col++ {
		if that.cells[col] == entity.Empty {
			return false
		}
	}

	return true
}

// TerminalState - classifies the board. Cells are scanned row-major and, per cell,
// directions in horizontal, vertical, up-diagonal, down-diagonal order; the first run
// of winLength found decides the winner.
func (that *Board) TerminalState() entity.Outcome {
	for row := 0; row < that.rows; row++ {
		for col := 0; col < that.cols; col++ {
			piece := that.at(row, col)
			if piece == entity.Empty {
				continue
			}

			for _, dir := range directions {
				if that.runFrom(row, col, dir) >= that.winLength {
					return entity.WinnerOf(piece)
				}
			}
		}
	}

	if that.IsFull() {
		return entity.Draw
	}

	return entity.InProgress
}

// runFrom - counts identical pieces starting at (row, col) along dir.
// Returns 0 when a winLength run starting there would leave the board.
func (that *Board) runFrom(row, col int, dir direction) int {
	if !that.fits(row, col, dir) {
		return 0
	}

	piece := that.at(row, col)
	count := 1
	for r, c := row+dir.dRow, col+dir.dCol; that.inside(r, c); r, c = r+dir.dRow, c+dir.dCol {
		if that.at(r, c) != piece {
			break
		}
		count++
	}

	return count
}

// fits - reports whether winLength cells starting at (row, col) along dir stay on the board.
// The last cell sits at (row + (K-1)*dRow, col + (K-1)*dCol).
func (that *Board) fits(row, col int, dir direction) bool {
	span := that.winLength - 1
	return that.inside(row+span*dir.dRow, col+span*dir.dCol)
}

// Key - canonical encoding of dimensions and contents.
func (that *Board) Key() string {
	var sb strings.Builder
	sb.Grow(len(that.cells) + 16)
	fmt.Fprintf(&sb, "%dx%dk%d:", that.rows, that.cols, that.winLength)
	for _, cell := range that.cells {
		sb.WriteByte('0' + byte(cell))
	}

	return sb.String()
}

// String - plain text dump, top row first, with column numbers underneath.
func (that *Board) String() string {
	var sb strings.Builder
	for row := 0; row < that.rows; row++ {
		for col := 0; col < that.cols; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(that.at(row, col).String())
		}
		sb.WriteByte('\n')
	}

	for col := 0; col < that.cols; col++ {
		if col > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprint(col % 10))
	}
	sb.WriteByte('\n')

	return sb.String()
}

func (that *Board) inside(row, col int) bool {
	return row >= 0 && row < that.rows && col >= 0 && col < that.cols
}

func (that *Board) index(row, col int) int {
	return row*that.cols + col
}

func (that *Board) at(row, col int) entity.Cell {
	return that.cells[that.index(row, col)]
}

// FromRows - builds a board from text rows, top row first, using the characters
// printed by String ('.', 'X', 'O'). Floating pieces are rejected.
func FromRows(winLength int, rows ...string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", apperror.ErrInvalidConfiguration)
	}

	board, err := New(len(rows), len(rows[0]), winLength)
	if err != nil {
		return nil, err
	}

	for row, line := range rows {
		if len(line) != board.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", apperror.ErrInvalidConfiguration, row, len(line), board.cols)
		}

		for col, ch := range []byte(line) {
			cell, ok := cellFromChar(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unknown cell %q at (%d, %d)", apperror.ErrInvalidConfiguration, ch, row, col)
			}
			board.cells[board.index(row, col)] = cell
		}
	}

	for col := 0; col < board.cols; col++ {
		for row := 0; row < board.rows-1; row++ {
			if board.at(row, col) != entity.Empty && board.at(row+1, col) == entity.Empty {
				return nil, fmt.Errorf("%w: floating piece at (%d, %d)", apperror.ErrInvalidConfiguration, row, col)
			}
		}
	}

	return board, nil
}

func cellFromChar(ch byte) (entity.Cell, bool) {
	switch ch {
	case '.':
		return entity.Empty, true
	case 'X':
		return entity.Player1, true
	case 'O':
		return entity.Player2, true
	default:
		return entity.Empty, false
	}
}
