// numguess is a console number-guessing game with saved statistics, a
// bisection bot demo and an optional HTTP mode.
//
// Usage:
//
//	numguess         interactive menu
//	numguess serve   HTTP API on $PORT
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numguess/assets"
	"github.com/robalobadob/numguess/internal/cli"
	"github.com/robalobadob/numguess/internal/config"
	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/history"
	"github.com/robalobadob/numguess/internal/httpserver"
	"github.com/robalobadob/numguess/internal/stats"
	"github.com/robalobadob/numguess/internal/store"
)

func main() {
	cfg := config.Load()
	serve := len(os.Args) > 1 && os.Args[1] == "serve"

	if serve {
		zerolog.SetGlobalLevel(cfg.Level(zerolog.InfoLevel))
	} else {
		// keep log lines off stdout and out of the way of the menu
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(cfg.Level(zerolog.WarnLevel))
	}

	hist := openHistory(cfg.HistoryPath())
	st := stats.New()

	if serve {
		if err := st.Load(cfg.SaveFile); err != nil && !errors.Is(err, stats.ErrNotFound) {
			log.Warn().Err(err).Str("path", cfg.SaveFile).Msg("ignoring unusable save file")
		}
		srv := httpserver.New(httpserver.Options{
			Store:        store.NewMemoryStore(),
			Stats:        st,
			History:      hist,
			SavePath:     cfg.SaveFile,
			DailySalt:    cfg.DailySalt,
			ClientOrigin: cfg.ClientOrigin,
		})
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		log.Info().Str("port", cfg.Port).Msg("starting numguess server")
		if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server exited")
		}
		return
	}

	d, err := game.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		log.Warn().Err(err).Msg("falling back to easy")
		d = game.Easy
	}
	app := cli.New(cli.Options{
		In:         os.Stdin,
		Out:        os.Stdout,
		Stats:      st,
		History:    hist,
		SavePath:   cfg.SaveFile,
		Difficulty: d,
		DailySalt:  cfg.DailySalt,
	})
	// Ctrl-C keeps its default behavior here; the menu blocks on stdin.
	if err := app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}

// openHistory opens and migrates the history database. Failures are logged
// and the game runs without history.
func openHistory(path string) *history.Store {
	if path == "" {
		return nil
	}
	db, err := history.Open(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("history disabled")
		return nil
	}
	if err := history.Migrate(db, assets.Migrations); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("history disabled")
		_ = db.Close()
		return nil
	}
	return history.NewStore(db)
}
