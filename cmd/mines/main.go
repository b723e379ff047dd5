package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-cli/internal/config"
	"github.com/vancomm/minesweeper-cli/internal/mines"
	"github.com/vancomm/minesweeper-cli/internal/prompt"
)

func run(ctx context.Context, cfg *config.Config, session *prompt.Session) error {
	defer session.Close()

	params := cfg.Params()
	if cfg.AskMines() {
		n, err := session.AskMineCount(ctx, cfg.Size)
		if err != nil {
			return err
		}
		params = cfg.WithMines(n).Params()
	}

	board, err := mines.New(params, cfg.Rand())
	if err != nil {
		return fmt.Errorf("unable to generate a board: %w", err)
	}

	return session.Play(ctx, board)
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "unable to set up logging:", err)
		os.Exit(1)
	}
	logger.Debug("config", slog.Any("config", cfg))

	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	session := prompt.NewSession(logger, os.Stdin, os.Stdout)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		defer stop()
		return run(gCtx, cfg, session)
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Debug("shutting down", slog.String("game_id", session.ID.String()))
		return nil
	})

	err = g.Wait()
	switch {
	case err == nil,
		errors.Is(err, context.Canceled),
		errors.Is(err, prompt.ErrInputClosed):
		return
	default:
		logger.Error("exit reason", slog.Any("error", err))
		os.Exit(1)
	}
}
