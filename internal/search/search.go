package search

import (
	"log/slog"
	"math"

	"lukechampine.com/frand"

	"github.com/rocketscienceinc/connectk-backend/internal/connectk"
	"github.com/rocketscienceinc/connectk-backend/internal/entity"
)

// Infinity is the value of a won position; -Infinity of a lost one.
const Infinity = math.MaxInt32

// Rand is the source used for tie-breaks and random moves.
// *frand.RNG satisfies it; tests inject fixed sequences.
type Rand interface {
	Intn(n int) int
}

// Result of a search call. Column is entity.NoColumn when no move was chosen.
type Result struct {
	Column int
	Value  int
}

// HasMove - reports whether a column was chosen.
func (that Result) HasMove() bool {
	return that.Column != entity.NoColumn
}

// Engine runs depth-limited minimax with alpha-beta pruning over board clones.
// An Engine is not safe for concurrent use when its Rand is not.
type Engine struct {
	logger *slog.Logger
	rng    Rand
}

// NewEngine - rng may be nil, in which case a fresh frand generator is used.
func NewEngine(logger *slog.Logger, rng Rand) *Engine {
	if rng == nil {
		rng = frand.New()
	}

	return &Engine{
		logger: logger.With("component", "search"),
		rng:    rng,
	}
}

// BestMove - searches from the root with a full window on behalf of turn.
func (that *Engine) BestMove(board *connectk.Board, turn entity.Turn, depth int) Result {
	return that.Search(board, depth, -Infinity, Infinity, true, turn)
}

// Search - minimax with alpha-beta pruning. Values are always relative to rootTurn:
// a rootTurn win is +Infinity, an opponent win -Infinity, a draw 0. Among children
// of equal value the chosen column is replaced with probability 1/n (reservoir
// sampling), so every equally-best column is equally likely. A depth below one
// returns the heuristic value of board without searching.
func (that *Engine) Search(board *connectk.Board, depth, alpha, beta int, maximizing bool, rootTurn entity.Turn) Result {
	if depth <= 0 {
		return Result{Column: entity.NoColumn, Value: connectk.ScorePosition(board, rootTurn)}
	}

	switch outcome := board.TerminalState(); outcome {
	case entity.InProgress:
	case entity.Draw:
		return Result{Column: entity.NoColumn, Value: 0}
	default:
		if winner, _ := outcome.Winner(); winner == rootTurn {
			return Result{Column: entity.NoColumn, Value: Infinity}
		}
		return Result{Column: entity.NoColumn, Value: -Infinity}
	}

	legal := board.Moves()
	if len(legal) == 0 {
		that.logger.Warn("no legal moves on a board that is not terminal", "board", board.Key())
		return Result{Column: entity.NoColumn, Value: 0}
	}

	mover := rootTurn
	value := -Infinity
	if !maximizing {
		mover = rootTurn.Opponent()
		value = Infinity
	}

	chosen := entity.NoColumn
	ties := 0

	for _, column := range legal {
		child := board.Clone()
		if err := child.Place(column, mover); err != nil {
			// unreachable: legal columns have an empty top cell
			continue
		}

		// The window is one wider on the side being improved, so a child equal to the
		// current best is an exact value and not a cutoff bound.
		childAlpha, childBeta := alpha, beta
		if maximizing && alpha > -Infinity {
			childAlpha = alpha - 1
		}
		if !maximizing && beta < Infinity {
			childBeta = beta + 1
		}

		childValue := that.Search(child, depth-1, childAlpha, childBeta, !maximizing, rootTurn).Value

		better := childValue > value
		if !maximizing {
			better = childValue < value
		}

		switch {
		case chosen == entity.NoColumn || better:
			value = childValue
			chosen = column
			ties = 1
		case childValue == value:
			ties++
			if that.rng.Intn(ties) == 0 {
				chosen = column
			}
		}

		if maximizing {
			alpha = max(alpha, value)
		} else {
			beta = min(beta, value)
		}

		if alpha >= beta {
			break
		}
	}

	return Result{Column: chosen, Value: value}
}

// RandomMove - a uniformly random legal column, false when the board has none.
func (that *Engine) RandomMove(board *connectk.Board) (int, bool) {
	legal := board.Moves()
	if len(legal) == 0 {
		return entity.NoColumn, false
	}

	return legal[that.rng.Intn(len(legal))], true
}
