package doctest

// chunk is the Grouper's output unit (spec.md §4.2, "Group" in §3): either
// a pure text run, or a source run paired with its (possibly empty) want
// run.
type chunk struct {
	text []string // non-nil => this is a pure text chunk; src/want unused

	src  []string
	want []string // nil => no want lines for this source run
}

func (c chunk) isText() bool { return c.text != nil }

// groupLines run-length-compresses labeled lines into text chunks and
// (source, want) chunks, in order (spec.md §4.2).
func groupLines(lines []labeledLine) []chunk {
	var (
		chunks     []chunk
		pendingSrc []string // a source run seen, awaiting a possible want run
	)

	flushPendingSrc := func() {
		if pendingSrc != nil {
			chunks = append(chunks, chunk{src: pendingSrc})
			pendingSrc = nil
		}
	}

	i := 0
	for i < len(lines) {
		k := lines[i].kind
		j := i
		var run []string
		for j < len(lines) && lines[j].kind == k {
			run = append(run, lines[j].line)
			j++
		}

		switch k {
		case kindText:
			flushPendingSrc()
			chunks = append(chunks, chunk{text: run})

		case kindWant:
			// The labeler guarantees a WANT run is always preceded by a
			// SRC run (spec.md §4.2: "two SRC runs never appear
			// consecutive"), so pendingSrc must be set here.
			chunks = append(chunks, chunk{src: pendingSrc, want: run})
			pendingSrc = nil

		case kindSrc:
			pendingSrc = run
		}

		i = j
	}

	flushPendingSrc()
	return chunks
}
