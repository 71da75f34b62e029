// Package console renders the framed text blocks used by the menu and the
// statistics screen.
package console

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Border frames text in a box sized to its widest line:
//
//	+-------+
//	| hello |
//	+-------+
func Border(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	width := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > width {
			width = n
		}
	}

	edge := "+" + strings.Repeat("-", width+2) + "+"
	var b strings.Builder
	b.WriteString(edge)
	b.WriteByte('\n')
	for _, l := range lines {
		pad := width - utf8.RuneCountInString(l)
		b.WriteString("| ")
		b.WriteString(l)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(" |\n")
	}
	b.WriteString(edge)
	b.WriteByte('\n')
	return b.String()
}

// PrintWithBorder writes Border(text) to w.
func PrintWithBorder(w io.Writer, text string) error {
	_, err := fmt.Fprint(w, Border(text))
	return err
}
