package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/connectk-backend/internal/apperror"
	"github.com/rocketscienceinc/connectk-backend/internal/connectk"
	"github.com/rocketscienceinc/connectk-backend/internal/entity"
	"github.com/rocketscienceinc/connectk-backend/internal/repository"
)

var ErrNoHintSource = errors.New("human seat without an input source")

type moveChooser interface {
	ChooseMove(board *connectk.Board, turn entity.Turn, agent entity.Agent, hint int) (int, bool)
}

type hintSource interface {
	NextColumn(ctx context.Context, board *connectk.Board, turn entity.Turn) (int, error)
}

type moveBook interface {
	Get(ctx context.Context, key string) (int, error)
	Put(ctx context.Context, key string, column int) error
}

// MatchRunner owns a board and drives one game at a time between two seats.
type MatchRunner struct {
	logger *slog.Logger

	board   *connectk.Board
	chooser moveChooser
	hints   hintSource
	book    moveBook
}

// NewMatchRunner - hints and book are optional and may be nil.
func NewMatchRunner(logger *slog.Logger, board *connectk.Board, chooser moveChooser, hints hintSource, book moveBook) *MatchRunner {
	return &MatchRunner{
		logger: logger.With("component", "match_runner"),

		board:   board,
		chooser: chooser,
		hints:   hints,
		book:    book,
	}
}

// Play - resets the board and plays until a terminal state. The turn advances
// only after a successful placement. The context is checked between moves.
func (that *MatchRunner) Play(ctx context.Context, seats [2]entity.Agent) (*entity.Match, error) {
	that.board.Reset()

	match := &entity.Match{
		ID:    uuid.NewString(),
		Seats: seats,
		Moves: make([]int, 0, that.board.Rows()*that.board.Cols()),
	}

	log := that.logger.With("method", "Play", "matchID", match.ID)
	log.Debug("match started", "player1", seats[0].String(), "player2", seats[1].String())

	start := time.Now()
	turn := entity.TurnPlayer1

	for {
		if err := ctx.Err(); err != nil {
			return match, fmt.Errorf("match %s interrupted: %w", match.ID, err)
		}

		agent := seats[turn.Seat()]

		column, ok, err := that.nextColumn(ctx, turn, agent)
		if err != nil {
			return match, fmt.Errorf("failed to choose move for %s: %w", turn, err)
		}

		if !ok {
			if agent.IsHuman() {
				continue
			}
			return match, fmt.Errorf("%w: %s returned no move", apperror.ErrNoLegalMoves, agent)
		}

		if err = that.board.Place(column, turn); err != nil {
			if agent.IsHuman() {
				log.Info("move rejected", "turn", turn.String(), "column", column, "error", err)
				continue
			}
			return match, fmt.Errorf("%s chose an illegal move: %w", agent, err)
		}

		match.Moves = append(match.Moves, column)
		log.Debug("move played", "turn", turn.String(), "column", column)

		if outcome := that.board.TerminalState(); outcome.IsOver() {
			match.Outcome = outcome
			match.Duration = time.Since(start)

			log.Info("match finished", "outcome", outcome.String(), "moves", len(match.Moves), "duration", match.Duration)

			return match, nil
		}

		turn = turn.Opponent()
	}
}

// nextColumn - resolves the column for one tick.
func (that *MatchRunner) nextColumn(ctx context.Context, turn entity.Turn, agent entity.Agent) (int, bool, error) {
	hint := entity.NoColumn

	switch agent.Kind {
	case entity.HumanAgent:
		if that.hints == nil {
			return entity.NoColumn, false, ErrNoHintSource
		}

		column, err := that.hints.NextColumn(ctx, that.board, turn)
		if err != nil {
			return entity.NoColumn, false, fmt.Errorf("failed to read column: %w", err)
		}
		hint = column
	case entity.AlphaBetaAgent:
		if column, ok := that.lookupBook(ctx, turn, agent); ok {
			return column, true, nil
		}
	}

	column, ok := that.chooser.ChooseMove(that.board, turn, agent, hint)

	if ok && agent.Kind == entity.AlphaBetaAgent {
		that.storeBook(ctx, turn, agent, column)
	}

	return column, ok, nil
}

func (that *MatchRunner) lookupBook(ctx context.Context, turn entity.Turn, agent entity.Agent) (int, bool) {
	if that.book == nil {
		return entity.NoColumn, false
	}

	column, err := that.book.Get(ctx, repository.BookKey(that.board.Key(), agent.SearchDepth(), turn))
	if err != nil {
		if !errors.Is(err, repository.ErrBookMiss) {
			that.logger.Warn("book lookup failed", "error", err)
		}
		return entity.NoColumn, false
	}

	if !slices.Contains(that.board.Moves(), column) {
		that.logger.Warn("book returned an unplayable column", "column", column)
		return entity.NoColumn, false
	}

	return column, true
}

func (that *MatchRunner) storeBook(ctx context.Context, turn entity.Turn, agent entity.Agent, column int) {
	if that.book == nil {
		return
	}

	key := repository.BookKey(that.board.Key(), agent.SearchDepth(), turn)
	if err := that.book.Put(ctx, key, column); err != nil {
		that.logger.Warn("book store failed", "error", err)
	}
}
