package main

import (
	"flag"
	"fmt"
	"html"
	"io"
	"io/ioutil"
	"strings"

	"github.com/google/renameio"
	"github.com/russross/blackfriday"

	"github.com/jcorbin/godoctest/doctest"
	"github.com/jcorbin/godoctest/internal/socutil"
)

// runRender reads a raw docstring from in, parses it, and renders the
// result to stdout (or --out, written atomically) as plain text, ANSI
// colored text, or an HTML fragment.
func runRender(args []string, in io.Reader, w io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	var (
		color bool
		html  bool
		out   string
	)
	fs.BoolVar(&color, "color", false, "colorize source with syntax highlighting")
	fs.BoolVar(&html, "html", false, "render as an HTML fragment")
	fs.StringVar(&out, "out", "", "write to this file atomically instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	docstring, err := ioutil.ReadAll(in)
	if err != nil {
		return err
	}

	items, err := doctest.Parse(string(docstring), nil)
	if err != nil {
		return err
	}

	dest := w
	if out != "" {
		pf, err := renameio.TempFile("", out)
		if err != nil {
			return err
		}
		defer pf.Cleanup() //nolint:errcheck
		dest = pf

		if err := renderItems(items, dest, color, html); err != nil {
			return err
		}
		return pf.CloseAtomicallyReplace()
	}

	return renderItems(items, dest, color, html)
}

// renderItems writes every item to w, stopping at (and returning) the first
// write error rather than ignoring one mid-stream via ErrWriter.
func renderItems(items []doctest.Item, w io.Writer, color, asHTML bool) error {
	ew := &socutil.ErrWriter{Writer: w}
	for _, it := range items {
		if it.IsText() {
			renderText(ew, it.Text, asHTML)
			continue
		}

		rendered := it.Part.Format(false, true, 0, 1, color)
		if asHTML {
			fmt.Fprint(ew, "<pre>")
			fmt.Fprint(ew, html.EscapeString(rendered))
			fmt.Fprint(ew, "</pre>\n")
		} else {
			fmt.Fprint(ew, rendered)
		}
	}
	return ew.Err
}

// renderText prints a narrative text run. In HTML mode the run is fed
// through blackfriday, matching cmd/poc/main.go's own choice of blackfriday
// for all markdown handling rather than a second Markdown-to-HTML library.
func renderText(w io.Writer, lines []string, asHTML bool) {
	if !asHTML {
		for _, l := range lines {
			fmt.Fprintln(w, l)
		}
		return
	}
	md := strings.Join(lines, "\n")
	fmt.Fprint(w, string(blackfriday.Run([]byte(md))))
}
