package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectk-backend/internal/apperror"
	"github.com/rocketscienceinc/connectk-backend/internal/connectk"
	"github.com/rocketscienceinc/connectk-backend/internal/entity"
	"github.com/rocketscienceinc/connectk-backend/internal/search"
	"github.com/rocketscienceinc/connectk-backend/internal/service"
)

var errFactory = errors.New("factory failed")

func randomRunners(t *testing.T, seed string) RunnerFactory {
	t.Helper()

	return func(index int) (*MatchRunner, error) {
		board, err := connectk.New(5, 5, 4)
		if err != nil {
			return nil, err
		}

		dispatcher := service.NewDispatcher(search.NewEngine(discardLogger(), search.NewRand(seed, index)))

		return NewMatchRunner(discardLogger(), board, dispatcher, nil, nil), nil
	}
}

func TestSeries_Run(t *testing.T) {
	ctx := context.Background()
	seats := [2]entity.Agent{random, {Kind: entity.AlphaBetaAgent, Depth: 1}}

	t.Run("Every match is tallied", func(t *testing.T) {
		// Given: a series of 12 matches, 4 at a time
		series := NewSeries(discardLogger(), seats, 4, randomRunners(t, "series"))

		// When: the series is run
		tally, matches, err := series.Run(ctx, 12)

		// Then: each match finished and counted once
		require.NoError(t, err)
		assert.Equal(t, 12, tally.Total())
		require.Len(t, matches, 12)

		ids := map[string]struct{}{}
		var recount entity.Tally
		for _, match := range matches {
			require.NotNil(t, match)
			assert.True(t, match.Outcome.IsOver())
			ids[match.ID] = struct{}{}
			recount.Add(match.Outcome)
		}
		assert.Len(t, ids, 12)
		assert.Equal(t, tally, recount)
	})

	t.Run("Zero parallelism runs sequentially", func(t *testing.T) {
		series := NewSeries(discardLogger(), seats, 0, randomRunners(t, "sequential"))

		tally, _, err := series.Run(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, 3, tally.Total())
	})

	t.Run("Factory errors fail the series", func(t *testing.T) {
		// Given: a factory that fails on the third match
		healthy := randomRunners(t, "factory")
		series := NewSeries(discardLogger(), seats, 1, func(index int) (*MatchRunner, error) {
			if index == 2 {
				return nil, errFactory
			}
			return healthy(index)
		})

		// When: the series is run
		tally, matches, err := series.Run(ctx, 5)

		// Then: the error is returned and nothing is tallied
		require.ErrorIs(t, err, errFactory)
		assert.Zero(t, tally.Total())
		assert.Nil(t, matches)
	})

	t.Run("Match errors fail the series", func(t *testing.T) {
		// Given: a human seat without an input source
		series := NewSeries(discardLogger(), [2]entity.Agent{random, human}, 2, randomRunners(t, "human"))

		// When: the series is run
		_, _, err := series.Run(ctx, 4)

		// Then: the match error is returned
		require.ErrorIs(t, err, ErrNoHintSource)
	})

	t.Run("Invalid boards surface from the factory", func(t *testing.T) {
		series := NewSeries(discardLogger(), seats, 2, func(int) (*MatchRunner, error) {
			_, err := connectk.New(3, 3, 4)
			return nil, err
		})

		_, _, err := series.Run(ctx, 2)

		require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
	})

	t.Run("Canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		series := NewSeries(discardLogger(), seats, 2, randomRunners(t, "cancel"))

		_, _, err := series.Run(canceled, 3)

		require.ErrorIs(t, err, context.Canceled)
	})
}
