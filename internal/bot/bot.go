// internal/bot/bot.go
//
// GuessBot: the "optimal game" demonstration.
//
// The bot always guesses half of its current upper bound. This is not the
// textbook midpoint of [lower, upper]; it is kept as-is because every
// released version of the game guesses this way, and the simulation output
// players see depends on it. See Simulate for how the driver copes with the
// cases where the rule cannot make progress.

package bot

import "fmt"

// GuessBot narrows a closed range of integers one guess at a time.
type GuessBot struct {
	Lower int
	Upper int
}

// New returns a bot searching [lower, upper]. No validation is done.
func New(lower, upper int) *GuessBot {
	return &GuessBot{Lower: lower, Upper: upper}
}

// NextGuess returns floor(Upper / 2). Lower does not take part.
func (b *GuessBot) NextGuess() int {
	return floorHalf(b.Upper)
}

// SetUpperBound overwrites the upper bound unconditionally.
func (b *GuessBot) SetUpperBound(v int) { b.Upper = v }

// SetLowerBound overwrites the lower bound unconditionally.
func (b *GuessBot) SetLowerBound(v int) { b.Lower = v }

func (b *GuessBot) String() string {
	return fmt.Sprintf("Bot guessing in the range of %d to %d", b.Lower, b.Upper)
}

// floorHalf divides by two rounding toward negative infinity; Go's / truncates.
func floorHalf(n int) int {
	q := n / 2
	if n < 0 && n%2 != 0 {
		q--
	}
	return q
}
