package game

import (
	"errors"
	"fmt"
)

// ErrUnknownDifficulty is returned by ParseDifficulty for anything other than
// easy, medium or hard.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Settings are the range and chances a difficulty plays with.
type Settings struct {
	Low     int
	High    int
	Chances int
}

var presets = map[Difficulty]Settings{
	Easy:   {Low: 1, High: 10, Chances: 5},
	Medium: {Low: 1, High: 100, Chances: 7},
	Hard:   {Low: 1, High: 1000, Chances: 10},
}

// Difficulties lists the presets from easiest to hardest.
func Difficulties() []Difficulty { return []Difficulty{Easy, Medium, Hard} }

// ParseDifficulty matches s exactly against the preset names.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if _, ok := presets[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
	return d, nil
}

// Settings returns the preset for d. Unknown values fall back to Easy.
func (d Difficulty) Settings() Settings {
	if s, ok := presets[d]; ok {
		return s
	}
	return presets[Easy]
}
