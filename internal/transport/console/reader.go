package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/connectk-backend/internal/connectk"
	"github.com/rocketscienceinc/connectk-backend/internal/entity"
)

var ErrInputClosed = errors.New("input closed")

type line struct {
	text string
	err  error
}

// Reader resolves human columns from a line-oriented text stream.
// Lines are read by a background goroutine so that a waiting prompt can be
// interrupted through the context; that goroutine ends with the input.
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer

	once  sync.Once
	lines chan line
}

// NewReader - prompts are written to out, answers read from in.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(in),
		out:     out,
		lines:   make(chan line),
	}
}

func (that *Reader) scan() {
	defer close(that.lines)

	for that.scanner.Scan() {
		that.lines <- line{text: that.scanner.Text()}
	}

	if err := that.scanner.Err(); err != nil {
		that.lines <- line{err: err}
	}
}

// readLine - waits for the next line or for ctx to be done.
func (that *Reader) readLine(ctx context.Context) (string, error) {
	that.once.Do(func() { go that.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case next, ok := <-that.lines:
		if !ok {
			return "", ErrInputClosed
		}
		if next.err != nil {
			return "", fmt.Errorf("failed to read column: %w", next.err)
		}
		return next.text, nil
	}
}

// NextColumn - prints the board and prompts until a line holding an integer is read.
// Range checking is left to the board.
func (that *Reader) NextColumn(ctx context.Context, board *connectk.Board, turn entity.Turn) (int, error) {
	if _, err := fmt.Fprint(that.out, board.String()); err != nil {
		return entity.NoColumn, fmt.Errorf("failed to write board: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return entity.NoColumn, err
		}

		if _, err := fmt.Fprintf(that.out, "%s (%s), column: ", turn, turn.Piece()); err != nil {
			return entity.NoColumn, fmt.Errorf("failed to write prompt: %w", err)
		}

		text, err := that.readLine(ctx)
		if err != nil {
			return entity.NoColumn, err
		}

		column, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			if _, err = fmt.Fprintln(that.out, "not a number"); err != nil {
				return entity.NoColumn, fmt.Errorf("failed to write prompt: %w", err)
			}
			continue
		}

		return column, nil
	}
}
