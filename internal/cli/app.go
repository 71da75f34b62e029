// internal/cli/app.go
//
// Menu-driven console front end.
// Responsibilities:
//   - Render the main menu and dispatch choices.
//   - Run rounds against the game engine, reporting every guess to stats.
//   - Save stats after every finished round and on request; load on request.
//   - Run the bot simulation, the daily challenge and the history listing.
//
// Notes:
//   - "Load save data" is only offered while a usable save file exists.
//   - End of input exits quietly, the same as choosing Quit.

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numguess/internal/console"
	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/history"
	"github.com/robalobadob/numguess/internal/stats"
)

var (
	errQuit          = errors.New("quit")
	errInvalidOption = errors.New("invalid option")
)

// Menu keys.
const (
	optPlay       = 1
	optSave       = 2
	optLoad       = 3
	optStats      = 4
	optDifficulty = 5
	optSimulate   = 6
	optDaily      = 7
	optRecent     = 8
	optQuit       = 9
)

var menu = []struct {
	key   int
	label string
}{
	{optPlay, "Play"},
	{optSave, "Save data (Creates local file in game directory)"},
	{optLoad, "Load save data"},
	{optStats, "Statistics"},
	{optDifficulty, "Choose difficulty"},
	{optSimulate, "Simulate optimal game"},
	{optDaily, "Daily challenge"},
	{optRecent, "Recent games"},
	{optQuit, "Quit"},
}

// Options configures an App. Only In, Out and Stats are required.
type Options struct {
	In         io.Reader
	Out        io.Writer
	Stats      *stats.Manager
	History    *history.Store // nil disables history and daily tracking
	SavePath   string
	Difficulty game.Difficulty
	DailySalt  string
	Pick       func(low, high int) int // secret number source; defaults to game.RandomInt
	Now        func() time.Time
}

// App is one interactive session.
type App struct {
	in         *bufio.Scanner
	out        io.Writer
	stats      *stats.Manager
	rec        game.Recorder
	history    *history.Store
	savePath   string
	hasSave    bool
	difficulty game.Difficulty
	salt       string
	pick       func(low, high int) int
	now        func() time.Time
}

// New builds an App from o, filling in defaults.
func New(o Options) *App {
	if o.SavePath == "" {
		o.SavePath = stats.DefaultPath
	}
	if o.Difficulty == "" {
		o.Difficulty = game.Easy
	}
	if o.Pick == nil {
		o.Pick = game.RandomInt
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return &App{
		in:         bufio.NewScanner(o.In),
		out:        o.Out,
		stats:      o.Stats,
		rec:        game.Recorder{Stats: o.Stats},
		history:    o.History,
		savePath:   o.SavePath,
		hasSave:    fileExists(o.SavePath),
		difficulty: o.Difficulty,
		salt:       o.DailySalt,
		pick:       o.Pick,
		now:        o.Now,
	}
}

// Run shows the menu until the player quits, input ends, or ctx is done.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.printMenu()
		line, err := a.prompt("Please select an option from above: ")
		if err != nil {
			return ignoreEOF(err)
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil {
			err = a.handle(ctx, choice)
		} else {
			err = errInvalidOption
		}

		switch {
		case err == nil:
		case errors.Is(err, errInvalidOption):
			a.println("You did not enter a valid option. Please try again.\n")
		case errors.Is(err, errQuit):
			a.println("Exiting program...")
			return nil
		default:
			return ignoreEOF(err)
		}
	}
}

func (a *App) handle(ctx context.Context, choice int) error {
	switch choice {
	case optPlay:
		s := a.difficulty.Settings()
		return a.play(ctx, game.New(a.difficulty, a.pick(s.Low, s.High)))
	case optSave:
		a.println("Saving data...")
		a.save()
	case optLoad:
		if !a.hasSave {
			return errInvalidOption
		}
		a.load()
	case optStats:
		return a.stats.PrettyPrint(a.out)
	case optDifficulty:
		return a.chooseDifficulty()
	case optSimulate:
		return a.simulate()
	case optDaily:
		return a.playDaily(ctx)
	case optRecent:
		return a.recent(ctx)
	case optQuit:
		return errQuit
	default:
		return errInvalidOption
	}
	return nil
}

func (a *App) printMenu() {
	var lines []string
	for _, o := range menu {
		if o.key == optLoad && !a.hasSave {
			continue
		}
		lines = append(lines, fmt.Sprintf("%d -- %s", o.key, o.label))
	}
	_ = console.PrintWithBorder(a.out, strings.Join(lines, "\n"))
}

// ---------------------------------- play -----------------------------------

// play runs r to completion, then records, saves and logs the outcome.
func (a *App) play(ctx context.Context, r *game.Round) error {
	for !r.Finished {
		if r.TriesLeft() < r.Chances {
			a.printGuessHistory(r)
		}
		line, err := a.prompt(fmt.Sprintf("Enter a number between %d and %d, inclusive: ", r.Low, r.High))
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			a.println("You did not enter an integer in the given range!")
			continue
		}
		res, _, err := r.ApplyGuess(n)
		if err != nil {
			a.println("You did not enter an integer in the given range!")
			continue
		}
		a.rec.Guess()

		switch res {
		case game.ResultCorrect:
			if r.FirstTry() {
				a.println("You guessed it on the first try!")
			} else {
				a.println("You guessed it!")
			}
		case game.ResultHigher:
			a.println("Your guess was higher than the answer.\n")
		case game.ResultLower:
			a.println("Your guess was lower than the answer.\n")
		}
		if r.Finished && !r.Won {
			a.println("You are out of guesses.")
		}
	}

	a.rec.Finish(r)
	a.printf("The number was %d. Thanks for playing!\n", r.Answer)
	a.save()
	a.addHistory(ctx, r)
	return nil
}

func (a *App) printGuessHistory(r *game.Round) {
	used := len(r.Guesses)
	if used > 1 {
		a.printf("In %d guesses you have tried: \n", used)
	} else {
		a.printf("In %d guess you have tried: \n", used)
	}
	a.printf("Lower: %v\n", r.Lower)
	a.printf("Higher: %v\n", r.Higher)
	a.printf("Guesses remaining: %d\n\n", r.TriesLeft())
}

func (a *App) chooseDifficulty() error {
	line, err := a.prompt("Enter difficulty (easy, medium, hard): ")
	if err != nil {
		return err
	}
	d, err := game.ParseDifficulty(strings.TrimSuffix(line, "\r"))
	if err != nil {
		a.println("Invalid difficulty level entered!")
		return nil
	}
	a.difficulty = d
	a.printf("Difficulty has been set to %s\n", d)
	a.printf("This mode gives you %d chances\n", d.Settings().Chances)
	return nil
}

// ------------------------------ persistence --------------------------------

func (a *App) save() {
	if err := a.stats.Save(a.savePath); err != nil {
		log.Error().Err(err).Str("path", a.savePath).Msg("save stats")
		a.println("Could not save data!")
		return
	}
	a.hasSave = true
	log.Info().Str("path", a.savePath).Msg("stats saved")
}

func (a *App) load() {
	err := a.stats.Load(a.savePath)
	switch {
	case err == nil:
		log.Info().Str("path", a.savePath).Msg("stats loaded")
		a.println("Save data loaded!")
	case errors.Is(err, stats.ErrNotFound):
		log.Warn().Err(err).Msg("load stats")
		a.println("No save file found!")
		a.hasSave = false
	case errors.Is(err, stats.ErrMalformed), errors.Is(err, stats.ErrInvalidSchema):
		log.Warn().Err(err).Msg("load stats")
		a.println("Error loading save file!")
		a.println("Make a new one by saving or completing a game!")
		a.hasSave = false
	default:
		log.Error().Err(err).Msg("load stats")
		a.println("Error loading save file!")
	}
}

func (a *App) addHistory(ctx context.Context, r *game.Round) {
	if a.history == nil {
		return
	}
	if err := a.history.Insert(ctx, history.FromRound(r, a.now())); err != nil {
		log.Warn().Err(err).Str("round", r.ID).Msg("insert history")
	}
}

// --------------------------------- helpers ---------------------------------

// prompt writes msg and reads one line. io.EOF means input is exhausted.
func (a *App) prompt(msg string) (string, error) {
	fmt.Fprint(a.out, msg)
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return a.in.Text(), nil
}

func (a *App) println(s string)                 { fmt.Fprintln(a.out, s) }
func (a *App) printf(format string, args ...any) { fmt.Fprintf(a.out, format, args...) }

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
