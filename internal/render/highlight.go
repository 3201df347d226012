// Package render colorizes doctest source for terminal display.
package render

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

var (
	goLexer = chroma.Coalesce(lexers.Get("go"))
	goStyle = mustStyle("monokai")
)

func mustStyle(name string) *chroma.Style {
	if s := styles.Get(name); s != nil {
		return s
	}
	return styles.Fallback
}

// Highlight applies Go syntax colors to s, returning ANSI-escaped text. Any
// tokenizer failure falls back to s unchanged, since highlighting is
// display-only and must never block a rendering (spec.md Non-goals:
// "tokenizing or highlighting source" is never load-bearing for parsing).
func Highlight(s string) string {
	iter, err := goLexer.Tokenise(nil, s)
	if err != nil {
		return s
	}

	var buf strings.Builder
	formatter := noBgFormatter{style: goStyle}
	if err := formatter.format(&buf, iter); err != nil {
		return s
	}
	return buf.String()
}

// noBgFormatter renders chroma tokens with foreground-only ANSI codes, the
// same shape as the pack's terminal-diff highlighter, minus its background
// and cursor-column bookkeeping (this package never overlays a cursor).
type noBgFormatter struct {
	style *chroma.Style
}

func (f noBgFormatter) format(w *strings.Builder, iter chroma.Iterator) error {
	for token := iter(); token != chroma.EOF; token = iter() {
		value := token.Value
		if value == "" {
			continue
		}

		entry := f.style.Get(token.Type)
		var codes []string
		if entry.Colour.IsSet() {
			codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()))
		}
		if entry.Bold == chroma.Yes {
			codes = append(codes, "1")
		}
		if entry.Italic == chroma.Yes {
			codes = append(codes, "3")
		}
		if entry.Underline == chroma.Yes {
			codes = append(codes, "4")
		}

		if len(codes) > 0 {
			fmt.Fprintf(w, "\x1b[%sm%s\x1b[0m", strings.Join(codes, ";"), value)
		} else {
			w.WriteString(value)
		}
	}
	return nil
}
