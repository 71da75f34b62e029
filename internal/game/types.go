// internal/game/types.go
//
// Core type definitions for the number-guessing engine.
// Defines:
//   - Difficulty: named preset controlling range and chances.
//   - Result: outcome of a single guess (lower/higher/correct).
//   - Round: state for a single in-progress or finished round.

package game

// Difficulty selects the answer range and number of chances.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Result describes a guess relative to the answer.
//   - "lower":   the guess was below the answer.
//   - "higher":  the guess was above the answer.
//   - "correct": the guess was the answer.
type Result string

const (
	ResultLower   Result = "lower"
	ResultHigher  Result = "higher"
	ResultCorrect Result = "correct"
)

// Round states as reported by State.
const (
	StatePlaying = "playing"
	StateWon     = "won"
	StateLost    = "lost"
)

// Round holds the state of a single game.
type Round struct {
	ID         string     // Unique round identifier (UUID).
	Difficulty Difficulty // Preset the round was started with.
	Low        int        // Smallest possible answer (inclusive).
	High       int        // Largest possible answer (inclusive).
	Chances    int        // Guesses allowed.
	Answer     int        // The secret number.
	Guesses    []int      // Every accepted guess, in order.
	Lower      []int      // Guesses that were below the answer.
	Higher     []int      // Guesses that were above the answer.
	Finished   bool       // True once the round is won or lost.
	Won        bool       // True if the round finished with a correct guess.
	Daily      string     // Date key (YYYY-MM-DD) for daily challenge rounds.
}
