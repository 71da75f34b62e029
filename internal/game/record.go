package game

import "github.com/robalobadob/numguess/internal/stats"

// Recorder applies game events to a stats record. Every method bumps each
// affected counter by exactly one.
type Recorder struct {
	Stats *stats.Manager
}

// Guess counts one accepted guess.
func (rc Recorder) Guess() { rc.Stats.NumGuesses++ }

// Win counts a win on difficulty d.
func (rc Recorder) Win(d Difficulty, firstTry bool) {
	rc.Stats.Wins++
	if firstTry {
		rc.Stats.NumFirstCorrect++
	}
	switch d {
	case Easy:
		rc.Stats.NumEasyWins++
	case Medium:
		rc.Stats.NumMedWins++
	default:
		rc.Stats.NumHardWins++
	}
}

// Lose counts a loss.
func (rc Recorder) Lose() { rc.Stats.Losses++ }

// Finish counts the outcome of a finished round. Guesses are not counted
// here; callers report them through Guess as they happen.
func (rc Recorder) Finish(r *Round) {
	if !r.Finished {
		return
	}
	if r.Won {
		rc.Win(r.Difficulty, r.FirstTry())
		return
	}
	rc.Lose()
}
