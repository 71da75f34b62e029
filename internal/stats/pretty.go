package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/numguess/internal/console"
)

// String renders one "Label: value" line per Schema field.
func (m *Manager) String() string {
	lines := make([]string, 0, len(Schema))
	for _, f := range Schema {
		lines = append(lines, fmt.Sprintf("%s: %d", f.Label, f.Value(m)))
	}
	return strings.Join(lines, "\n")
}

// PrettyPrint writes a titled, bordered block of every counter to w.
func (m *Manager) PrettyPrint(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "\nYour game statistics"); err != nil {
		return err
	}
	return console.PrintWithBorder(w, m.String())
}
