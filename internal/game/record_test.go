package game_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/stats"
)

func TestRecorder_WinIncrementsByOne(t *testing.T) {
	st := stats.New()
	rc := game.Recorder{Stats: st}
	for i := 1; i <= 1000; i++ {
		rc.Win(game.Easy, false)
		assert.Equal(t, i, st.Wins)
	}
	assert.Equal(t, 0, st.NumFirstCorrect)
}

func TestRecorder_LoseIncrementsByOne(t *testing.T) {
	st := stats.New()
	rc := game.Recorder{Stats: st}
	for i := 1; i <= 1000; i++ {
		rc.Lose()
		assert.Equal(t, i, st.Losses)
	}
	assert.Equal(t, 0, st.Wins)
}

func TestRecorder_PerDifficultyWins(t *testing.T) {
	st := stats.New()
	rc := game.Recorder{Stats: st}
	rng := rand.New(rand.NewSource(42))
	want := map[game.Difficulty]int{}
	first := 0

	for i := 0; i < 300; i++ {
		d := game.Difficulties()[rng.Intn(3)]
		ft := rng.Intn(2) == 0
		rc.Win(d, ft)
		want[d]++
		if ft {
			first++
		}
	}

	assert.Equal(t, want[game.Easy], st.NumEasyWins)
	assert.Equal(t, want[game.Medium], st.NumMedWins)
	assert.Equal(t, want[game.Hard], st.NumHardWins)
	assert.Equal(t, 300, st.Wins)
	assert.Equal(t, first, st.NumFirstCorrect)
	assert.GreaterOrEqual(t, st.Wins, st.NumFirstCorrect)
}

func TestRecorder_Finish(t *testing.T) {
	st := stats.New()
	rc := game.Recorder{Stats: st}

	won := game.New(game.Medium, 40)
	_, _, _ = won.ApplyGuess(40)
	rc.Finish(won)

	lost := game.New(game.Easy, 10)
	for i := 1; i <= 5; i++ {
		_, _, _ = lost.ApplyGuess(i)
	}
	rc.Finish(lost)

	playing := game.New(game.Hard, 10)
	rc.Finish(playing)

	assert.Equal(t, stats.Manager{Wins: 1, Losses: 1, NumFirstCorrect: 1, NumMedWins: 1}, *st)
}

func TestRecorder_Guess(t *testing.T) {
	st := stats.New()
	rc := game.Recorder{Stats: st}
	rc.Guess()
	rc.Guess()
	assert.Equal(t, 2, st.NumGuesses)
}
