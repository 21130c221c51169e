package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/connectk-backend/internal/config"
	"github.com/rocketscienceinc/connectk-backend/internal/connectk"
	"github.com/rocketscienceinc/connectk-backend/internal/repository"
	"github.com/rocketscienceinc/connectk-backend/internal/repository/storage"
	"github.com/rocketscienceinc/connectk-backend/internal/search"
	"github.com/rocketscienceinc/connectk-backend/internal/service"
	"github.com/rocketscienceinc/connectk-backend/internal/transport/console"
	"github.com/rocketscienceinc/connectk-backend/internal/usecase"
)

// RunApp - runs the configured match series.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	seats, err := conf.Players.Seats()
	if err != nil {
		return fmt.Errorf("invalid players: %w", err)
	}

	var book repository.MoveBook
	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		book = repository.NewMoveBook(redisStorage.Connection, conf.Redis.TTL)
		log.Info("opening book enabled", "addr", conf.Redis.GetRedisAddr())
	}

	hints := console.NewReader(os.Stdin, os.Stdout)

	newRunner := func(index int) (*usecase.MatchRunner, error) {
		board, err := connectk.New(conf.Board.Rows, conf.Board.Cols, conf.Board.WinLength)
		if err != nil {
			return nil, fmt.Errorf("failed to create board: %w", err)
		}

		engine := search.NewEngine(logger, search.NewRand(conf.Series.Seed, index))
		dispatcher := service.NewDispatcher(engine)

		return usecase.NewMatchRunner(logger, board, dispatcher, hints, book), nil
	}

	log.Info("starting series",
		"rows", conf.Board.Rows,
		"cols", conf.Board.Cols,
		"winLength", conf.Board.WinLength,
		"player1", seats[0].String(),
		"player2", seats[1].String(),
		"matches", conf.Series.Matches,
	)

	series := usecase.NewSeries(logger, seats, conf.Series.Parallel, newRunner)

	tally, _, err := series.Run(ctx, conf.Series.Matches)
	if err != nil {
		return fmt.Errorf("series failed: %w", err)
	}

	fmt.Fprintf(os.Stdout, "player1 wins: %d, player2 wins: %d, draws: %d\n", tally.Player1Wins, tally.Player2Wins, tally.Draws)

	return nil
}
