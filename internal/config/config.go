package config

import (
	"fmt"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

const (
	DefaultSize       = 9
	DefaultLogMaxSize = 10 // megabytes

	// AskMines makes the prompt ask the player for the mine count.
	AskMines = -1
)

type Config struct {
	Size        int
	Mines       int
	Seed        uint64
	Development bool
	LogFile     string
	LogMaxSize  int
}

// Load reads flags from args and falls back to MINES_* environment
// variables for anything not given on the command line.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("mines", pflag.ContinueOnError)
	fs.Int("size", DefaultSize, "side length of the square board")
	fs.Int("mines", AskMines, "number of mines (ask when negative)")
	fs.String("board", "", `board as "size:mines", overrides --size and --mines`)
	fs.Uint64("seed", 0, "random seed for mine placement (0 picks one)")
	fs.Bool("development", false, "human-readable debug logging")
	fs.String("log-file", "", "also write engine logs to this rotating file")
	fs.Int("log-max-size", DefaultLogMaxSize, "log file size in megabytes before rotation")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("MINES")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("development", "MINES_DEVELOPMENT", "DEVELOPMENT"); err != nil {
		return nil, err
	}
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("unable to bind flags: %w", err)
	}

	cfg := &Config{
		Size:        v.GetInt("size"),
		Mines:       v.GetInt("mines"),
		Seed:        v.GetUint64("seed"),
		Development: v.GetBool("development"),
		LogFile:     v.GetString("log-file"),
		LogMaxSize:  v.GetInt("log-max-size"),
	}

	if board := v.GetString("board"); board != "" {
		params, err := mines.ParseSeed(board)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", mines.ErrInvalidConfiguration, err)
		}
		if err := params.Validate(); err != nil {
			return nil, err
		}
		cfg.Size, cfg.Mines = params.Size, params.MineCount
	}

	if cfg.Size < 1 || cfg.Size > mines.MaxSize {
		return nil, fmt.Errorf("%w: size must be in [1, %d] (size = %d)",
			mines.ErrInvalidConfiguration, mines.MaxSize, cfg.Size)
	}
	if !cfg.AskMines() {
		if err := cfg.Params().Validate(); err != nil {
			return nil, err
		}
	}
	if cfg.LogMaxSize < 1 {
		cfg.LogMaxSize = DefaultLogMaxSize
	}

	return cfg, nil
}

func (c Config) AskMines() bool {
	return c.Mines < 0
}

func (c Config) Params() mines.Params {
	return mines.Params{Size: c.Size, MineCount: c.Mines}
}

func (c Config) WithMines(n int) Config {
	c.Mines = n
	return c
}

// Rand returns a PCG source seeded from Seed, or from the runtime's hash
// seed when Seed is zero.
func (c Config) Rand() *rand.Rand {
	if c.Seed != 0 {
		return rand.New(rand.NewPCG(c.Seed, c.Seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// [Config] implements [slog.LogValuer]
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("size", c.Size),
		slog.Int("mines", c.Mines),
		slog.Uint64("seed", c.Seed),
		slog.Bool("development", c.Development),
		slog.String("log_file", c.LogFile),
		slog.Int("log_max_size", c.LogMaxSize),
	)
}
