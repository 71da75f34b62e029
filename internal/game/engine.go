// internal/game/engine.go
//
// Core engine for a single number-guessing round.
// Responsibilities:
//   - Create rounds from a difficulty preset with a fixed or random answer.
//   - Validate and apply guesses (range, finished state).
//   - Track guess history split into lower/higher lists.
//   - Track state transitions: playing → won/lost.

package game

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/google/uuid"
)

var (
	ErrFinished   = errors.New("round finished")
	ErrOutOfRange = errors.New("guess out of range")
)

// New constructs a round for difficulty d.
// If answer is 0, a random answer in the difficulty's range is chosen.
func New(d Difficulty, answer int) *Round {
	s := d.Settings()
	if _, ok := presets[d]; !ok {
		d = Easy
	}
	if answer == 0 {
		answer = RandomInt(s.Low, s.High)
	}
	return &Round{
		ID:         uuid.NewString(),
		Difficulty: d,
		Low:        s.Low,
		High:       s.High,
		Chances:    s.Chances,
		Answer:     answer,
		Guesses:    []int{},
		Lower:      []int{},
		Higher:     []int{},
	}
}

// ApplyGuess checks n against the answer, mutating the round state.
// Returns the result, the new state ("playing"/"won"/"lost"), or an error.
//
// Rejected guesses (finished round, out of range) do not use up a chance.
//
// State transitions:
//   - Correct guess → Finished = true, Won = true.
//   - Else if no chances remain → Finished = true (loss).
func (r *Round) ApplyGuess(n int) (Result, string, error) {
	if r.Finished {
		return "", r.State(), ErrFinished
	}
	if n < r.Low || n > r.High {
		return "", r.State(), ErrOutOfRange
	}

	r.Guesses = append(r.Guesses, n)
	var res Result
	switch {
	case n == r.Answer:
		res = ResultCorrect
		r.Finished, r.Won = true, true
	case n > r.Answer:
		res = ResultHigher
		r.Higher = append(r.Higher, n)
	default:
		res = ResultLower
		r.Lower = append(r.Lower, n)
	}

	if !r.Finished && r.TriesLeft() == 0 {
		r.Finished = true
	}
	return res, r.State(), nil
}

// State reports "playing", "won" or "lost".
func (r *Round) State() string {
	if r.Finished {
		if r.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// TriesLeft is the number of guesses still allowed.
func (r *Round) TriesLeft() int { return r.Chances - len(r.Guesses) }

// FirstTry reports whether the round was won on the first guess.
func (r *Round) FirstTry() bool { return r.Won && len(r.Guesses) == 1 }

// RandomInt returns a cryptographically random integer in [low, high].
// If high < low, low is returned. The full int range is supported.
func RandomInt(low, high int) int {
	if high <= low {
		return low
	}
	span := new(big.Int).Sub(big.NewInt(int64(high)), big.NewInt(int64(low)))
	span.Add(span, big.NewInt(1))
	n, _ := rand.Int(rand.Reader, span)
	return int(n.Add(n, big.NewInt(int64(low))).Int64())
}
