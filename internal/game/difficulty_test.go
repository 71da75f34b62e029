package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/numguess/internal/game"
)

func TestParseDifficulty(t *testing.T) {
	for _, d := range game.Difficulties() {
		got, err := game.ParseDifficulty(string(d))
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	for _, bad := range []string{"", "Easy", "HARD", "med", "xyz", " hard", "hard\n", "easy "} {
		_, err := game.ParseDifficulty(bad)
		require.ErrorIs(t, err, game.ErrUnknownDifficulty, "input %q", bad)
	}
}
