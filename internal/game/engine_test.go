package game_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/numguess/internal/game"
)

func TestNew_UsesDifficultyPreset(t *testing.T) {
	cases := []struct {
		d                  game.Difficulty
		low, high, chances int
	}{
		{game.Easy, 1, 10, 5},
		{game.Medium, 1, 100, 7},
		{game.Hard, 1, 1000, 10},
	}
	for _, c := range cases {
		r := game.New(c.d, 0)
		assert.Equal(t, c.d, r.Difficulty)
		assert.Equal(t, c.low, r.Low)
		assert.Equal(t, c.high, r.High)
		assert.Equal(t, c.chances, r.Chances)
		assert.GreaterOrEqual(t, r.Answer, c.low)
		assert.LessOrEqual(t, r.Answer, c.high)
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, game.StatePlaying, r.State())
	}
}

func TestNew_UnknownDifficultyFallsBackToEasy(t *testing.T) {
	r := game.New("nightmare", 3)
	assert.Equal(t, game.Easy, r.Difficulty)
	assert.Equal(t, 10, r.High)
}

func TestApplyGuess_HigherLowerCorrect(t *testing.T) {
	r := game.New(game.Easy, 6)

	res, state, err := r.ApplyGuess(9)
	require.NoError(t, err)
	assert.Equal(t, game.ResultHigher, res)
	assert.Equal(t, game.StatePlaying, state)

	res, _, err = r.ApplyGuess(2)
	require.NoError(t, err)
	assert.Equal(t, game.ResultLower, res)

	res, state, err = r.ApplyGuess(6)
	require.NoError(t, err)
	assert.Equal(t, game.ResultCorrect, res)
	assert.Equal(t, game.StateWon, state)

	assert.Equal(t, []int{9, 2, 6}, r.Guesses)
	assert.Equal(t, []int{9}, r.Higher)
	assert.Equal(t, []int{2}, r.Lower)
	assert.False(t, r.FirstTry())
}

func TestApplyGuess_OutOfRangeDoesNotUseChance(t *testing.T) {
	r := game.New(game.Easy, 6)
	for _, n := range []int{0, 11, -5} {
		_, _, err := r.ApplyGuess(n)
		require.ErrorIs(t, err, game.ErrOutOfRange)
	}
	assert.Equal(t, 5, r.TriesLeft())
	assert.Empty(t, r.Guesses)
}

func TestApplyGuess_LosesWhenOutOfChances(t *testing.T) {
	r := game.New(game.Easy, 10)
	for i := 1; i <= 5; i++ {
		_, state, err := r.ApplyGuess(i)
		require.NoError(t, err)
		if i < 5 {
			assert.Equal(t, game.StatePlaying, state)
		} else {
			assert.Equal(t, game.StateLost, state)
		}
	}
	assert.True(t, r.Finished)
	assert.False(t, r.Won)
	assert.Equal(t, 0, r.TriesLeft())

	_, _, err := r.ApplyGuess(10)
	require.ErrorIs(t, err, game.ErrFinished)
}

func TestApplyGuess_WinOnLastChance(t *testing.T) {
	r := game.New(game.Easy, 5)
	for _, n := range []int{1, 2, 3, 4} {
		_, _, err := r.ApplyGuess(n)
		require.NoError(t, err)
	}
	_, state, err := r.ApplyGuess(5)
	require.NoError(t, err)
	assert.Equal(t, game.StateWon, state)
}

func TestFirstTry(t *testing.T) {
	r := game.New(game.Hard, 777)
	_, _, err := r.ApplyGuess(777)
	require.NoError(t, err)
	assert.True(t, r.FirstTry())
}

func TestRandomInt_StaysInRange(t *testing.T) {
	for i := 0; i < 500; i++ {
		n := game.RandomInt(3, 7)
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 7)
	}
	assert.Equal(t, 4, game.RandomInt(4, 4))
	assert.Equal(t, 9, game.RandomInt(9, 2))
}

func TestRandomInt_WideRange(t *testing.T) {
	cases := [][2]int{
		{-5_000_000_000_000_000_000, 5_000_000_000_000_000_000},
		{math.MinInt, math.MaxInt},
		{math.MinInt, 0},
		{0, math.MaxInt},
	}
	for _, c := range cases {
		var n int
		require.NotPanics(t, func() { n = game.RandomInt(c[0], c[1]) }, "range %v", c)
		assert.GreaterOrEqual(t, n, c[0])
		assert.LessOrEqual(t, n, c[1])
	}
}
