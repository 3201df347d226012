package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/jcorbin/godoctest/doctest"
	"github.com/jcorbin/godoctest/internal/docsource"
)

// runExtract walks each path, pulling doctest-shaped text out of .go doc
// comments and .md/.markdown fenced blocks, parsing each with doctest.Parse,
// and printing the resulting Parts to w.
func runExtract(paths []string, w io.Writer) error {
	if len(paths) == 0 {
		return fmt.Errorf("extract: no paths given")
	}
	for _, path := range paths {
		if err := extractPath(path, w); err != nil {
			return fmt.Errorf("extract %s: %w", path, err)
		}
	}
	return nil
}

func extractPath(path string, w io.Writer) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".go":
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		comments, err := docsource.ExtractGo(path, src)
		if err != nil {
			return err
		}
		for _, c := range comments {
			if err := printDoctest(w, path, c.Line, c.Doc); err != nil {
				return err
			}
		}

	case ".md", ".markdown":
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		blocks, err := docsource.ExtractMarkdown(path, f)
		if err != nil {
			return err
		}
		for _, b := range blocks {
			if err := printDoctest(w, path, b.Line, b.Text); err != nil {
				return err
			}
		}

	default:
		// not a recognized doctest source; silently skip
	}
	return nil
}

func printDoctest(w io.Writer, path string, startLine int, text string) error {
	items, err := doctest.Parse(text, path)
	if err != nil {
		return err
	}

	nLines := 0
	for _, it := range items {
		if it.Part != nil {
			nLines += it.Part.NLines()
		} else {
			nLines += len(it.Text)
		}
	}
	nDigits := digitWidth(startLine + nLines)

	for _, it := range items {
		if it.IsText() {
			continue
		}
		fmt.Fprint(w, it.Part.Format(true, true, startLine, nDigits, false))
	}
	return nil
}

// digitWidth returns ceil(log10(n)), at least 1: the column width needed to
// print any decimal line number below n (spec.md §6.2).
func digitWidth(n int) int {
	if n < 10 {
		return 1
	}
	return int(math.Ceil(math.Log10(float64(n))))
}
