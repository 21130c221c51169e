package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/connectk-backend/internal/apperror"
	"github.com/rocketscienceinc/connectk-backend/internal/connectk"
	"github.com/rocketscienceinc/connectk-backend/internal/entity"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Board    Board   `yaml:"board"`
	Players  Players `yaml:"players"`
	Series   Series  `yaml:"series"`
	Redis    Redis   `yaml:"redis"`
}

type Board struct {
	Rows      int `yaml:"rows" env:"BOARD_ROWS" env-default:"6"`
	Cols      int `yaml:"cols" env:"BOARD_COLS" env-default:"7"`
	WinLength int `yaml:"win-length" env:"BOARD_WIN_LENGTH" env-default:"4"`
}

type Players struct {
	One Player `yaml:"one" env-prefix:"PLAYER_ONE_"`
	Two Player `yaml:"two" env-prefix:"PLAYER_TWO_"`
}

type Player struct {
	Kind  string `yaml:"kind" env:"KIND" env-default:"human"`
	Depth int    `yaml:"depth" env:"DEPTH" env-default:"5"`
}

type Series struct {
	Matches  int    `yaml:"matches" env:"SERIES_MATCHES" env-default:"1"`
	Parallel int    `yaml:"parallel" env:"SERIES_PARALLEL" env-default:"1"`
	Seed     string `yaml:"seed" env:"SERIES_SEED"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads path, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate - checks board dimensions, agent kinds and series settings.
func (that *Config) Validate() error {
	if err := connectk.ValidateDimensions(that.Board.Rows, that.Board.Cols, that.Board.WinLength); err != nil {
		return err
	}

	seats, err := that.Players.Seats()
	if err != nil {
		return err
	}

	if that.Series.Matches < 1 {
		return fmt.Errorf("%w: series needs at least one match", apperror.ErrInvalidConfiguration)
	}

	if that.Series.Parallel > 1 && (seats[0].IsHuman() || seats[1].IsHuman()) {
		return fmt.Errorf("%w: human seats cannot play parallel matches", apperror.ErrInvalidConfiguration)
	}

	return nil
}

// Seats - the configured agents, player one first.
func (that *Players) Seats() ([2]entity.Agent, error) {
	one, err := that.One.Agent()
	if err != nil {
		return [2]entity.Agent{}, fmt.Errorf("player one: %w", err)
	}

	two, err := that.Two.Agent()
	if err != nil {
		return [2]entity.Agent{}, fmt.Errorf("player two: %w", err)
	}

	return [2]entity.Agent{one, two}, nil
}

func (that *Player) Agent() (entity.Agent, error) {
	kind, err := entity.ParseAgentKind(that.Kind)
	if err != nil {
		return entity.Agent{}, err
	}

	return entity.Agent{Kind: kind, Depth: that.Depth}, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
