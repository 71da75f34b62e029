// internal/stats/stats.go
//
// Persistent player statistics.
// Responsibilities:
//   - Hold the lifetime counters (wins, losses, guesses, per-difficulty wins).
//   - Save them as a JSON object to a caller-supplied path.
//   - Load and validate a saved file, replacing the record only on success.
//
// Notes:
//   - Counters are bumped by the game controller; this package never decides
//     when a counter changes.
//   - Validation is driven by the static Schema descriptor in schema.go.

package stats

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// DefaultPath is the save file used when no SAVE_FILE is configured.
const DefaultPath = "./persistent"

var (
	// ErrNotFound is returned by Load when the save file does not exist.
	ErrNotFound = errors.New("stats: save file not found")
	// ErrMalformed is returned by Load when the file is not valid JSON.
	ErrMalformed = errors.New("stats: malformed save file")
	// ErrInvalidSchema is returned by Load when the JSON does not match Schema.
	ErrInvalidSchema = errors.New("stats: invalid save format")
)

// Manager holds the counters for a single player.
// The zero value is a fresh record with every counter at 0.
type Manager struct {
	Wins            int `json:"wins"`
	Losses          int `json:"losses"`
	NumGuesses      int `json:"num_guesses"`
	NumFirstCorrect int `json:"num_first_correct"`
	NumEasyWins     int `json:"num_easy_wins"`
	NumMedWins      int `json:"num_med_wins"`
	NumHardWins     int `json:"num_hard_wins"`
}

// New returns a fresh record.
func New() *Manager { return &Manager{} }

// Save writes every counter to path, replacing any existing content.
func (m *Manager) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Load reads path and replaces every counter with the saved values.
//
// Errors:
//   - ErrNotFound if path does not exist (lookups are case-sensitive).
//   - ErrMalformed if the content is not JSON.
//   - ErrInvalidSchema if the JSON is not exactly the Schema field set with
//     integer values.
//
// On any error m is left untouched.
func (m *Manager) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	candidate, err := Decode(data)
	if err != nil {
		return err
	}
	*m = candidate
	return nil
}

// Decode parses a saved document into a new record without touching any
// existing one.
func Decode(data []byte) (Manager, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return Manager{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	// Anything after the first value means this is not a single document.
	if _, err := dec.Token(); err != io.EOF {
		return Manager{}, fmt.Errorf("%w: trailing data", ErrMalformed)
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return Manager{}, fmt.Errorf("%w: expected a JSON object", ErrInvalidSchema)
	}
	return fromObject(obj)
}
