package bot

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange means lower > upper.
	ErrInvalidRange = errors.New("bot: lower bound is above upper bound")
	// ErrTargetOutOfRange means the target lies outside [lower, upper].
	ErrTargetOutOfRange = errors.New("bot: target outside of range")
	// ErrStalled means the next guess would repeat the previous one, so the
	// halving rule can no longer reach the target.
	ErrStalled = errors.New("bot: guessing stalled")
)

// Simulate drives a bot over [lower, upper] until it guesses target.
//
// After each miss the bound on the wrong side is moved past the guess
// (upper = guess-1 when too high, lower = guess+1 when too low). Because
// NextGuess only looks at the upper bound, a "too low" answer leaves the next
// guess unchanged; Simulate stops there with ErrStalled instead of looping.
//
// The returned slice always holds every guess made, including on error.
func Simulate(lower, upper, target int) ([]int, error) {
	if lower > upper {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, lower, upper)
	}
	if target < lower || target > upper {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrTargetOutOfRange, target, lower, upper)
	}

	b := New(lower, upper)
	guess := b.NextGuess()
	guesses := []int{guess}

	for guess != target {
		if guess > target {
			b.SetUpperBound(guess - 1)
		} else {
			b.SetLowerBound(guess + 1)
		}

		next := b.NextGuess()
		if next == guess {
			return guesses, fmt.Errorf("%w: stuck on %d while looking for %d (%s)", ErrStalled, guess, target, b)
		}
		guess = next
		guesses = append(guesses, guess)
	}
	return guesses, nil
}
