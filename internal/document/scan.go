package document

import (
	"strings"

	"github.com/cleared-dev/acjournal/internal/render"
)

// Info strings of the fenced blocks this package renders.
const (
	InfoJournal = "acj"
	InfoModern  = "acjm"
	InfoLedger  = "acl"
)

var infoKinds = map[string]render.Kind{
	InfoJournal: render.KindJournal,
	InfoModern:  render.KindModern,
	InfoLedger:  render.KindLedger,
}

// KindForInfo maps a fence info string to the table it renders.
func KindForInfo(info string) (render.Kind, bool) {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return "", false
	}
	k, ok := infoKinds[fields[0]]
	return k, ok
}

// Block is one fenced block found in a document.
type Block struct {
	Kind   render.Kind
	Source string // text between the fences
	Start  int    // byte offset of the opening fence
	End    int    // byte offset just past the closing fence line
	Line   int    // 1-based line of the opening fence
}

type fence struct {
	char      byte
	size      int
	info      string
	start     int
	bodyStart int
	line      int
}

// Scan finds every closed acj, acjm and acl fenced block in text, in
// document order. Blocks nested inside other fences are not matched.
func Scan(text string) []Block {
	var blocks []Block
	var open *fence

	lineNo := 0
	for off := 0; off < len(text); {
		next := len(text)
		if i := strings.IndexByte(text[off:], '\n'); i >= 0 {
			next = off + i + 1
		}
		line := strings.TrimRight(text[off:next], "\r\n")
		lineNo++

		switch {
		case open == nil:
			if f, ok := openingFence(line); ok {
				f.start, f.bodyStart, f.line = off, next, lineNo
				open = &f
			}
		case open.closedBy(line):
			if kind, ok := KindForInfo(open.info); ok {
				blocks = append(blocks, Block{
					Kind:   kind,
					Source: text[open.bodyStart:off],
					Start:  open.start,
					End:    next,
					Line:   open.line,
				})
			}
			open = nil
		}
		off = next
	}
	return blocks
}

// unindent strips up to three leading spaces. ok is false for deeper indents.
func unindent(line string) (string, bool) {
	for i := 0; i < 4; i++ {
		if i == len(line) || line[i] != ' ' {
			return line[i:], true
		}
	}
	return "", false
}

func fenceRun(s string) (byte, int) {
	if s == "" || (s[0] != '`' && s[0] != '~') {
		return 0, 0
	}
	n := 0
	for n < len(s) && s[n] == s[0] {
		n++
	}
	return s[0], n
}

func openingFence(line string) (fence, bool) {
	s, ok := unindent(line)
	if !ok {
		return fence{}, false
	}
	char, n := fenceRun(s)
	if n < 3 {
		return fence{}, false
	}
	info := strings.TrimSpace(s[n:])
	if char == '`' && strings.ContainsRune(info, '`') {
		return fence{}, false
	}
	return fence{char: char, size: n, info: info}, true
}

func (f *fence) closedBy(line string) bool {
	s, ok := unindent(line)
	if !ok {
		return false
	}
	char, n := fenceRun(s)
	return char == f.char && n >= f.size && strings.TrimSpace(s[n:]) == ""
}
