package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/connectk-backend/internal/entity"
)

// RunnerFactory builds an independent runner (own board, own random stream) for match index.
type RunnerFactory func(index int) (*MatchRunner, error)

// Series plays a number of independent matches with the same seats.
type Series struct {
	logger *slog.Logger

	seats     [2]entity.Agent
	parallel  int
	newRunner RunnerFactory
}

// NewSeries - parallel below one runs matches one at a time.
func NewSeries(logger *slog.Logger, seats [2]entity.Agent, parallel int, newRunner RunnerFactory) *Series {
	return &Series{
		logger: logger.With("component", "series"),

		seats:     seats,
		parallel:  max(parallel, 1),
		newRunner: newRunner,
	}
}

// Run - plays n matches, at most parallel at a time, and tallies the outcomes.
// The first failing match cancels the rest.
func (that *Series) Run(ctx context.Context, n int) (entity.Tally, []*entity.Match, error) {
	matches := make([]*entity.Match, n)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(that.parallel)

	for i := 0; i < n; i++ {
		group.Go(func() error {
			runner, err := that.newRunner(i)
			if err != nil {
				return fmt.Errorf("failed to build runner for match %d: %w", i, err)
			}

			match, err := runner.Play(groupCtx, that.seats)
			if err != nil {
				return fmt.Errorf("match %d failed: %w", i, err)
			}

			matches[i] = match

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return entity.Tally{}, nil, err
	}

	var tally entity.Tally
	for _, match := range matches {
		tally.Add(match.Outcome)
	}

	that.logger.Info("series finished",
		"matches", tally.Total(),
		"player1_wins", tally.Player1Wins,
		"player2_wins", tally.Player2Wins,
		"draws", tally.Draws,
	)

	return tally, matches, nil
}
