package service

import (
	"github.com/rocketscienceinc/connectk-backend/internal/connectk"
	"github.com/rocketscienceinc/connectk-backend/internal/entity"
	"github.com/rocketscienceinc/connectk-backend/internal/search"
)

type moveSearcher interface {
	BestMove(board *connectk.Board, turn entity.Turn, depth int) search.Result
	RandomMove(board *connectk.Board) (int, bool)
}

// Dispatcher picks the move source for a seat. It never mutates the board.
type Dispatcher struct {
	searcher moveSearcher
}

func NewDispatcher(searcher moveSearcher) *Dispatcher {
	return &Dispatcher{
		searcher: searcher,
	}
}

// ChooseMove - returns the column proposed by agent for turn, false when the agent has none.
// Human seats return hint unmodified; a negative hint means no input yet.
func (that *Dispatcher) ChooseMove(board *connectk.Board, turn entity.Turn, agent entity.Agent, hint int) (int, bool) {
	switch agent.Kind {
	case entity.HumanAgent:
		if hint < 0 {
			return entity.NoColumn, false
		}
		return hint, true
	case entity.RandomAgent:
		return that.searcher.RandomMove(board)
	case entity.AlphaBetaAgent:
		result := that.searcher.BestMove(board, turn, agent.SearchDepth())
		return result.Column, result.HasMove()
	default:
		return entity.NoColumn, false
	}
}
