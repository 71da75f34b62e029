package stats_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/numguess/internal/stats"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func sample() *stats.Manager {
	return &stats.Manager{
		Wins:            9,
		Losses:          4,
		NumGuesses:      51,
		NumFirstCorrect: 2,
		NumEasyWins:     5,
		NumMedWins:      3,
		NumHardWins:     1,
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persistent")
	orig := sample()
	require.NoError(t, orig.Save(path))

	loaded := stats.New()
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, *orig, *loaded)
}

func TestSave_DefaultRecordKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persistent")
	require.NoError(t, stats.New().Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]int
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, map[string]int{
		"wins": 0, "losses": 0, "num_guesses": 0, "num_first_correct": 0,
		"num_easy_wins": 0, "num_med_wins": 0, "num_hard_wins": 0,
	}, doc)
}

func TestSave_OverwritesExistingFile(t *testing.T) {
	path := writeFile(t, "persistent", strings.Repeat("garbage ", 200))
	require.NoError(t, sample().Save(path))

	loaded := stats.New()
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, *sample(), *loaded)
}

func TestSave_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "persistent")
	err := stats.New().Save(path)
	require.Error(t, err)
}

func TestLoad_NotFound(t *testing.T) {
	m := sample()
	err := m.Load(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, stats.ErrNotFound)
	assert.Equal(t, *sample(), *m)
}

func TestLoad_CaseSensitivePath(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("case-insensitive filesystem")
	}
	dir := t.TempDir()
	require.NoError(t, sample().Save(filepath.Join(dir, "Test.json")))

	err := stats.New().Load(filepath.Join(dir, "TEST.JSON"))
	require.ErrorIs(t, err, stats.ErrNotFound)
}

func TestLoad_Malformed(t *testing.T) {
	cases := map[string]string{
		"plain text":    "I am not a save file",
		"empty":         "",
		"truncated":     `{"wins": 1,`,
		"two documents": `{} {}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			m := sample()
			err := m.Load(writeFile(t, "persistent", content))
			require.ErrorIs(t, err, stats.ErrMalformed)
			assert.Equal(t, *sample(), *m)
		})
	}
}

func TestLoad_InvalidSchema(t *testing.T) {
	full := `"wins": 1, "losses": 2, "num_guesses": 3, "num_first_correct": 0, "num_easy_wins": 1, "num_med_wins": 0`
	cases := map[string]string{
		"missing key":       `{` + full + `}`,
		"extra key":         `{` + full + `, "num_hard_wins": 0, "fastest_win_in_turns": -1}`,
		"extra wrong type":  `{` + full + `, "num_hard_wins": 0, "highest_difficulty_beaten": ""}`,
		"string value":      `{` + full + `, "num_hard_wins": "0"}`,
		"float value":       `{` + full + `, "num_hard_wins": 1.5}`,
		"bool value":        `{` + full + `, "num_hard_wins": true}`,
		"null value":        `{` + full + `, "num_hard_wins": null}`,
		"negative value":    `{` + full + `, "num_hard_wins": -1}`,
		"array document":    `[1, 2, 3]`,
		"number document":   `42`,
		"empty object":      `{}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			m := sample()
			err := m.Load(writeFile(t, "persistent", content))
			require.ErrorIs(t, err, stats.ErrInvalidSchema)
			assert.Equal(t, *sample(), *m, "failed load must not modify the record")
		})
	}
}

func TestLoad_ReplacesWholeRecord(t *testing.T) {
	path := writeFile(t, "persistent", `{
		"wins": 3, "losses": 1, "num_guesses": 10, "num_first_correct": 1,
		"num_easy_wins": 3, "num_med_wins": 0, "num_hard_wins": 0
	}`)
	m := sample()
	require.NoError(t, m.Load(path))
	assert.Equal(t, stats.Manager{
		Wins: 3, Losses: 1, NumGuesses: 10, NumFirstCorrect: 1, NumEasyWins: 3,
	}, *m)
}

func TestLoad_ValidationIgnoresCurrentState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persistent")
	require.NoError(t, stats.New().Save(path))

	m := sample()
	m.Wins += 100
	require.NoError(t, m.Load(path))
	assert.Equal(t, stats.Manager{}, *m)
}

func TestPrettyPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sample().PrettyPrint(&buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\nYour game statistics\n+"))
	for _, line := range []string{
		"| Wins: 9 ", "| Losses: 4 ", "| Total guesses: 51 ", "| First guess wins: 2 ",
		"| Easy wins: 5 ", "| Medium wins: 3 ", "| Hard wins: 1 ",
	} {
		assert.Contains(t, out, line)
	}
}

func TestSchema_CoversEveryJSONField(t *testing.T) {
	data, err := json.Marshal(stats.New())
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Len(t, stats.Schema, len(doc))
	for _, f := range stats.Schema {
		assert.Contains(t, doc, f.Key)
	}
}
