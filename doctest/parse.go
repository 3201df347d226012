package doctest

// Item is one element of a Parse result: either a Part (a code block plus
// its optional want) or a run of plain narrative text (spec.md §6.2: "Part |
// text-string").
type Item struct {
	Part *Part
	Text []string // non-nil iff Part == nil
}

// IsText reports whether this Item is a narrative text run rather than a
// Part.
func (it Item) IsText() bool { return it.Part == nil }

// Parser runs the three-stage pipeline against a chosen Dialect. The zero
// Parser is invalid; use Go as the default, or build one with a custom
// Dialect for a host language other than Go.
type Parser struct {
	Dialect Dialect
}

// Parse decomposes docstring into its Items, in document order (spec.md
// §2–§4). info is opaque caller context attached to any returned
// *ParseError.
func (p Parser) Parse(docstring string, info interface{}) ([]Item, error) {
	clean := dedent(docstring)

	labeled, err := label(clean, p.Dialect)
	if err != nil {
		return nil, parseError(docstring, info, err)
	}

	chunks := groupLines(labeled)

	var items []Item
	offset := 0
	for _, c := range chunks {
		if c.isText() {
			items = append(items, Item{Text: append([]string(nil), c.text...)})
			offset += len(c.text)
			continue
		}

		parts, err := packageChunk(c, p.Dialect, offset)
		if err != nil {
			return nil, parseError(docstring, info, err)
		}
		for _, part := range parts {
			items = append(items, Item{Part: part})
		}
		offset += len(c.src) + len(c.want)
	}

	return items, nil
}

// Parse decomposes docstring using the Go dialect (spec.md §6.2). info is
// opaque caller context attached to any returned *ParseError.
func Parse(docstring string, info interface{}) ([]Item, error) {
	return Parser{Dialect: Go}.Parse(docstring, info)
}
