package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numguess/internal/bot"
	"github.com/robalobadob/numguess/internal/console"
	"github.com/robalobadob/numguess/internal/daily"
	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/history"
)

// simulate asks for a range, hides a random target in it and shows how the
// bot hunts for it.
func (a *App) simulate() error {
	lowStr, err := a.prompt("Enter the lowest value for the sim: ")
	if err != nil {
		return err
	}
	highStr, err := a.prompt("Enter the highest value for the sim: ")
	if err != nil {
		return err
	}
	a.println("")

	low, errLow := strconv.Atoi(strings.TrimSpace(lowStr))
	high, errHigh := strconv.Atoi(strings.TrimSpace(highStr))
	if errLow != nil || errHigh != nil {
		a.println("Both inputs need to be numbers! Try again.")
		return nil
	}
	if low >= high {
		a.println("Cannot simulate between the given range of numbers!")
		a.println("The starting number must be less than the end!\n")
		return nil
	}

	target := a.pick(low, high)
	a.printf("The bot is looking for %d.\n", target)

	guesses, err := bot.Simulate(low, high, target)
	switch {
	case err == nil:
		a.printf("The bot guessed the correct answer in %d guesses.\n\n", len(guesses))
	case errors.Is(err, bot.ErrStalled):
		log.Debug().Err(err).Msg("simulation stalled")
		a.printf("The bot got stuck after %d guesses without finding %d.\n\n", len(guesses), target)
	default:
		return err
	}
	a.printf("Its guess order is: %v\n\n", guesses)
	return nil
}

// playDaily plays today's shared number on medium. With history enabled each
// date can only be finished once.
func (a *App) playDaily(ctx context.Context) error {
	now := a.now()
	date := daily.DateKey(now)

	if a.history != nil {
		played, err := a.history.PlayedDaily(ctx, date)
		if err != nil {
			log.Warn().Err(err).Str("date", date).Msg("check daily")
		} else if played {
			a.println("You have already played today's challenge. Come back tomorrow!")
			return nil
		}
	}

	s := game.Medium.Settings()
	r := game.New(game.Medium, daily.Answer(now, a.salt, s.Low, s.High))
	r.Daily = date
	a.printf("Daily challenge for %s\n", date)
	return a.play(ctx, r)
}

// recent lists the latest finished rounds.
func (a *App) recent(ctx context.Context) error {
	if a.history == nil {
		a.println("Game history is not enabled.")
		return nil
	}
	entries, err := a.history.Recent(ctx, history.DefaultLimit)
	if err != nil {
		log.Error().Err(err).Msg("read history")
		a.println("Could not read game history!")
		return nil
	}
	if len(entries) == 0 {
		a.println("No games played yet.")
		return nil
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, formatEntry(e))
	}
	a.println("\nRecent games")
	return console.PrintWithBorder(a.out, strings.Join(lines, "\n"))
}

func formatEntry(e history.Entry) string {
	outcome := "lost"
	if e.Won {
		outcome = fmt.Sprintf("won in %d", e.Guesses)
	}
	mode := e.Difficulty
	if e.Daily != "" {
		mode = "daily"
	}
	return fmt.Sprintf("%s  %-6s  %-9s  answer %d",
		e.FinishedAt.Local().Format("2006-01-02 15:04"), mode, outcome, e.Answer)
}
