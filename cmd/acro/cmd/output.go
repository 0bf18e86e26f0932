package cmd

import (
	"fmt"
	"strings"

	"github.com/corey/acro/internal/domain/acronym"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// palette holds the colors for result output. Disabled colors print plain text.
type palette struct {
	header *color.Color
	word   *color.Color
	dim    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		header: color.New(color.Bold),
		word:   color.New(color.FgCyan),
		dim:    color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.header, p.word, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// formatResults renders results grouped by word length:
//
//	3 LETTERS
//	for : Free Online Radio
//
//	4 LETTERS
//	fort : Free Online Radio T..
func formatResults(results []acronym.Result, useColor bool) string {
	if len(results) == 0 {
		return "No results found.\n"
	}
	p := newPalette(useColor)

	var sb strings.Builder
	prev := -1
	for _, r := range results {
		n := len(r.Word)
		if n > prev {
			if prev >= 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(p.header.Sprintf("%d LETTERS", n))
			sb.WriteString("\n")
			prev = n
		}
		sb.WriteString(p.word.Sprint(r.Word))
		sb.WriteString(p.dim.Sprint(" : "))
		sb.WriteString(r.PhraseInfo())
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatFlat renders one line per result with the words left-aligned in a
// column as wide as the longest word.
func formatFlat(results []acronym.Result, useColor bool) string {
	if len(results) == 0 {
		return "No results found.\n"
	}
	p := newPalette(useColor)

	width := 0
	for _, r := range results {
		width = max(width, runewidth.StringWidth(r.Word))
	}

	var sb strings.Builder
	for _, r := range results {
		sb.WriteString(p.word.Sprint(runewidth.FillRight(r.Word, width)))
		sb.WriteString(p.dim.Sprint(" : "))
		sb.WriteString(r.PhraseInfo())
		sb.WriteString("\n")
	}
	sb.WriteString(p.header.Sprintf("%d results", len(results)))
	sb.WriteString("\n")
	return sb.String()
}

// formatConfigLine renders one "  Label:  value" row of `acro config`.
func formatConfigLine(p palette, label, value string) string {
	return fmt.Sprintf("  %-14s %s\n", label+":", p.word.Sprint(value))
}
