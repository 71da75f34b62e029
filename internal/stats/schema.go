package stats

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Kind is the JSON value type a saved field must hold.
type Kind int

const (
	KindInt Kind = iota
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	}
	return "unknown"
}

// Field describes one persisted counter.
type Field struct {
	Key   string // JSON key in the save file
	Label string // display name used by PrettyPrint
	Kind  Kind
	ref   func(*Manager) *int
}

// Schema is the exact field set a save file must contain, in display order.
var Schema = []Field{
	{Key: "wins", Label: "Wins", Kind: KindInt, ref: func(m *Manager) *int { return &m.Wins }},
	{Key: "losses", Label: "Losses", Kind: KindInt, ref: func(m *Manager) *int { return &m.Losses }},
	{Key: "num_guesses", Label: "Total guesses", Kind: KindInt, ref: func(m *Manager) *int { return &m.NumGuesses }},
	{Key: "num_first_correct", Label: "First guess wins", Kind: KindInt, ref: func(m *Manager) *int { return &m.NumFirstCorrect }},
	{Key: "num_easy_wins", Label: "Easy wins", Kind: KindInt, ref: func(m *Manager) *int { return &m.NumEasyWins }},
	{Key: "num_med_wins", Label: "Medium wins", Kind: KindInt, ref: func(m *Manager) *int { return &m.NumMedWins }},
	{Key: "num_hard_wins", Label: "Hard wins", Kind: KindInt, ref: func(m *Manager) *int { return &m.NumHardWins }},
}

// Value returns the counter f describes.
func (f Field) Value(m *Manager) int { return *f.ref(m) }

// fromObject validates a decoded JSON object against Schema and builds a
// record from it.
func fromObject(obj map[string]any) (Manager, error) {
	known := make(map[string]struct{}, len(Schema))
	for _, f := range Schema {
		known[f.Key] = struct{}{}
	}

	var extra []string
	for k := range obj {
		if _, ok := known[k]; !ok {
			extra = append(extra, k)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return Manager{}, fmt.Errorf("%w: unexpected keys %s", ErrInvalidSchema, strings.Join(extra, ", "))
	}

	var out Manager
	for _, f := range Schema {
		raw, ok := obj[f.Key]
		if !ok {
			return Manager{}, fmt.Errorf("%w: missing key %q", ErrInvalidSchema, f.Key)
		}
		n, err := asInt(raw)
		if err != nil {
			return Manager{}, fmt.Errorf("%w: %q must be a non-negative %s: %v", ErrInvalidSchema, f.Key, f.Kind, err)
		}
		*f.ref(&out) = n
	}
	return out, nil
}

// asInt accepts only whole, non-negative JSON numbers.
func asInt(v any) (int, error) {
	num, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("got %T", v)
	}
	n, err := num.Int64()
	if err != nil {
		return 0, fmt.Errorf("got %s", num.String())
	}
	if n < 0 {
		return 0, fmt.Errorf("got %d", n)
	}
	if int64(int(n)) != n {
		return 0, fmt.Errorf("%d overflows int", n)
	}
	return int(n), nil
}
