package scandown

// TODO proper handling of virtual space, esp wrt tabs after a fence's indent

import (
	"bytes"
	"fmt"
)

// BlockStack tracks state for a doctest-scoped Phase 1 block scan: it only
// distinguishes blank runs, prose paragraphs, and fenced/indented code
// blocks, nested one level under an implicit Document. Headings, rulers,
// lists, block quotes, and HTML blocks never carry a ">>> " prompt, so
// ExtractMarkdown never needs to tell them apart from a paragraph — leaving
// them out keeps the stack at most two deep (Document, plus the one leaf
// currently being accumulated) instead of tracking arbitrary container
// nesting.
//
// It is not safe to use BlockStack from parallel goroutines, as its primary
// use case is within a synchronous bufio.Scanner loop.
//
// Minimal usage example:
// 	var blocks scandown.BlockStack
// 	sc := bufio.NewScanner(os.Stdin)
// 	sc.Split(blocks.Scan)
// 	for sc.Scan() {
// 		fmt.Printf("scanned %v %q\n", blocks, sc.Bytes())
// 	}
type BlockStack struct {
	offset []int   // within current scan window
	block  []Block // block info
	id     []int   // block id
	nextID int     // next block id
}

// Block represents some piece of parsed Markdown block structure.
type Block struct {
	Type BlockType

	// Delim holds the fence byte for a Codefence: '`' or '~'.
	Delim byte

	// Width counts how many fence Delim bytes opened a Codefence.
	Width int

	// Indent tracks how far a Codefence or Codeblock was indented, used to
	// trim that same indent from its following content lines.
	Indent int
}

// BlockType is to determine the semantic meaning of a Block.
type BlockType int

// BlockType constants for the block shapes BlockStack recognizes.
const (
	noBlock BlockType = iota // 0 value should never be seen by user
	Blank
	Document
	Paragraph
	Codefence
	Codeblock
)

// Scan consumes lines (explicitly terminated) from the data buffer, matching
// against and updating the receiver block stack state. If atEOF is true, it
// also consumes a final unterminated line, and then closes any open blocks.
//
// The returned advance is how many prefix data bytes MUST be discarded before
// the next Scan. This prefix MAY ( but does not currently ) include any token
// bytes.
//
// The returned token MAY be a window within data, so must not be retained
// between calls to Scan, and becomes invalid once the caller advance-s data.
//
// Any non-nil error returned SHOULD cause the caller to halt its scan loop,
// and not not call Scan again.
//
// In other words, it implements a bufio.SplitFunc to tokenize input.
func (blocks *BlockStack) Scan(data []byte, atEOF bool) (advance int, token []byte, err error) {
	// decrement block offsets by final advance
	defer func() {
		if advance > 0 {
			for i := 0; i < len(blocks.offset); i++ {
				blocks.offset[i] -= advance
			}
		}
	}()

	for i := len(blocks.offset) - 1; ; i-- {
		// (re)initialize empty blocks
		if i < 0 {
			blocks.offset = append(blocks.offset[:0], -1)
			blocks.block = append(blocks.block[:0], Block{Document, 0, 0, 0})
			blocks.id = append(blocks.id[:0], 0)
			blocks.nextID = 1
			break
		}

		// pop all blocks ended by a prior Scan
		end := blocks.offset[i]
		if end < 0 {
			i++
			blocks.offset = blocks.offset[:i]
			blocks.block = blocks.block[:i]
			blocks.id = blocks.id[:i]
			break
		}

		// advance past any prior consumed bytes
		if end > advance {
			advance = end
		}
	}

	// line consumption loop state
	var (
		start, end = advance, -1 // proto-token offsets withing the data buffer
		sol        = start       // offset of the current line being consumed
		line       []byte        // its bytes within the data buffer
	)
	defer func() {
		// construct token when returning nil-error and non-negative end
		if err == nil && end >= start {
			token = data[start:end]
		}
	}()

	// line consumption loop:
	// - scans the next token of block structure
	// - a leaf token spans, potentially many, lines
	// - an interstitial blank token is attributed to the deepest block possible
consumeLine: // labeled to clarify `continue` sites, some lines hence
	for {
		// start out a(nother) line after after the last one
		sol += len(line)
		line = data[sol:]

		// scan all bytes until newline or EOF
		if eol := bytes.IndexByte(line, '\n'); eol >= 0 {
			line = line[:eol+1]
		} else if !atEOF {
			return
		} else if len(line) == 0 {
			if i := len(blocks.offset) - 1; i == 0 {
				blocks.offset = append(blocks.offset, sol)
			} else {
				end = sol
				blocks.offset[i] = end
			}
			return
		}

		// consume line bytes, matching prior blocks
		var (
			tail   = trimNewline(line)
			priori int
			prior  Block
		)
	matchPrior:
		for priori = 0; priori < len(blocks.block); priori++ {
			switch prior = blocks.block[priori]; prior.Type {
			case Document:
				// any line continues the document

			case Blank:
				// blank line runs are continued only by blank lines short
				// enough to not open an indented codeblock
				if indent, cont := trimIndent(tail, 0, 4); indent == 4 || len(cont) > 0 {
					break matchPrior
				}

			case Paragraph:
				// must check for an interrupting fence/codeblock/blank line
				// before deciding if a paragraph has been continued or
				// terminated
				break matchPrior

			case Codefence:
				// fenced code blocks are continued until their ending fence
				_, tail = trimIndent(tail, 0, prior.Indent)
				if _, cont := trimIndent(tail, 0, 3); len(cont) > 0 {
					delim, _, cont := fence(cont, prior.Width, prior.Delim)
					if delim != 0 && len(bytes.Trim(cont, " ")) == 0 {
						end = sol + len(line)
						break matchPrior
					}
				}

			case Codeblock:
				// indented codeblocks are continued by sufficient indent and blank lines
				if indent, cont := trimIndent(tail, 0, prior.Indent); indent < prior.Indent && len(bytes.TrimSpace(cont)) != 0 {
					break matchPrior
				} else {
					tail = cont
				}

			default:
				err = fmt.Errorf("unimplemented match prior[%v]: %v", priori, prior)
				return
			}
		}

		// recognize remaining line bytes, finalizing any paragraph continuation match from above
		// - may terminate a leaf suffix unmatched above
		// - may interrupt prior paragraph with a fence or indented codeblock
		// - may terminate a paragraph on blank line
		// - may open a paragraph or blank leaf
		// - may lazily continue a head paragraph, despite an unmatched prior
		var opened Block
		if priori < len(blocks.id) || prior.Type == Document {
			indent, cont := trimIndent(tail, 0, 4)
			if prior.Type != Paragraph && indent == 4 {
				opened = Block{Codeblock, 0, 0, indent}
			} else if len(bytes.TrimSpace(cont)) == 0 {
				opened = Block{Blank, 0, 0, 0}
			} else if delim, width, _ := fence(cont, 3, '`', '~'); delim != 0 {
				opened = Block{Codefence, delim, width, indent}
			} else if prior.Type == Paragraph {
				priori++
			} else if n := len(blocks.id); blocks.block[n-1].Type == Paragraph {
				priori = n
			} else {
				opened = Block{Paragraph, 0, 0, indent}
			}
		}

		// close the head block if unmatched
		if priori < len(blocks.id) {
			if end < start {
				end = sol
			}
			blocks.offset[len(blocks.offset)-1] = end
			return
		}

		// continue scan until a block open
		if opened.Type == 0 {
			continue consumeLine
		}

		// finally ready to open a block
		if i := len(blocks.id); i < len(blocks.offset) {
			blocks.offset[i] = end
		} else {
			blocks.offset = append(blocks.offset, end)
		}
		blocks.block = append(blocks.block, opened)
		blocks.id = append(blocks.id, blocks.nextID)
		blocks.nextID++

		// continue consumeLine // implicit since this is loop tail
	}
}

// Offset returns the current scanned stream offset, where the currently
// scanned token starts.
func (blocks *BlockStack) Offset() (n int) {
	// the Document node tracks total stream offset
	if len(blocks.block) > 0 && blocks.block[0].Type == Document {
		if docOffset := blocks.offset[0]; docOffset < 0 {
			n += -(docOffset + 1)
		}
	}
	// any final non-negative offsets is about to be pruned
	if len(blocks.offset) > 0 {
		if offset := blocks.offset[0]; offset >= 0 {
			n += offset
		}
	}
	return n
}

// Len returns how many blocks are currently on the stack.
func (blocks *BlockStack) Len() int {
	return len(blocks.id)
}

// Block returns the data for a single block on the stack, including a unique
// id number, Block definition data, and whether the block is still open
// (true), or has been closed (false). Panics if i >= Len().
func (blocks *BlockStack) Block(i int) (id int, b Block, open bool) {
	return blocks.id[i], blocks.block[i], blocks.offset[i] < 0
}

// Head is a convenience for Block(Len()-1).
func (blocks *BlockStack) Head() (id int, b Block, open bool) {
	return blocks.Block(len(blocks.id) - 1)
}

func fence(line []byte, min int, marks ...byte) (fenceByte byte, width int, tail []byte) {
	if fenceByte = line[0]; !isByte(fenceByte, marks...) {
		return 0, 0, nil
	}
	width++

	for ; width < len(line); width++ {
		if line[width] != fenceByte {
			break
		}
	}

	if width < min {
		return 0, 0, nil
	}

	return fenceByte, width, line[width:]
}

func isByte(b byte, any ...byte) bool {
	for _, ab := range any {
		if b == ab {
			return true
		}
	}
	return false
}

func trimNewline(line []byte) []byte {
	i := len(line) - 1
	if i < 0 {
		return line
	}
	for i >= 0 {
		switch line[i] {
		case '\r', '\n':
			i--
		default:
			return line[:i+1]
		}
	}
	return line[:0]
}

func trimIndent(line []byte, prior, limit int) (n int, tail []byte) {
	for tail = line; n < limit && len(tail) > 0; tail = tail[1:] {
		if c := tail[0]; c == ' ' {
			n++
		} else if c == '\t' {
			if m := n + 4 - prior; m > limit {
				return n, tail
			} else if m == limit {
				return m, tail
			}
			prior = 0
		} else {
			break
		}
	}
	return n, tail
}
