package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-cli/internal/config"
	"github.com/vancomm/minesweeper-cli/internal/mines"
)

// stderr shares the terminal with the board, so outside development only
// warnings reach it.
func setupLogging(cfg *config.Config) (*slog.Logger, error) {
	var logger *slog.Logger
	if cfg.Development {
		logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}))
		mines.Log.SetLevel(logrus.DebugLevel)
		mines.Log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))
		mines.Log.SetLevel(logrus.WarnLevel)
		mines.Log.SetFormatter(&logrus.JSONFormatter{})
	}

	if cfg.LogFile == "" {
		return logger, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: 3,
		MaxAge:     28,
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return nil, err
	}
	mines.Log.AddHook(hook)
	mines.Log.SetLevel(logrus.DebugLevel)
	if !cfg.Development {
		mines.Log.SetOutput(io.Discard)
	}

	return logger, nil
}
