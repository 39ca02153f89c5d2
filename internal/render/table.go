package render

import "slices"

// Kind identifies which projection produced a table.
type Kind string

const (
	KindJournal Kind = "journal"
	KindModern  Kind = "journal-modern"
	KindLedger  Kind = "ledger"
)

// Style tags. Output surfaces map them to classes or cell styles.
const (
	TagCenter      = "center"
	TagNumber      = "number"
	TagName        = "name"
	TagSeparator   = "separator"
	TagIndent      = "indent"
	TagNotBalanced = "not-balanced"
)

// Cell is one table cell. Span is at least 1.
type Cell struct {
	Text string   `json:"text"`
	Span int      `json:"span"`
	Tags []string `json:"tags,omitempty"`
}

// HasTag reports whether the cell carries tag.
func (c Cell) HasTag(tag string) bool {
	return slices.Contains(c.Tags, tag)
}

// Row is an ordered list of cells. Header rows belong to the table head.
type Row struct {
	Header bool   `json:"header,omitempty"`
	Cells  []Cell `json:"cells"`
}

// Width is the number of columns the row covers.
func (r Row) Width() int {
	w := 0
	for _, c := range r.Cells {
		w += c.Span
	}
	return w
}

// Table is the renderer's output: rows of styled cells with no knowledge of
// any UI toolkit.
type Table struct {
	Kind Kind     `json:"kind"`
	Tags []string `json:"tags,omitempty"`
	Rows []Row    `json:"rows"`
}

// HasTag reports whether the table carries tag.
func (t Table) HasTag(tag string) bool {
	return slices.Contains(t.Tags, tag)
}

// Width is the widest row's column count.
func (t Table) Width() int {
	w := 0
	for _, r := range t.Rows {
		w = max(w, r.Width())
	}
	return w
}

func cell(text string, tags ...string) Cell {
	return Cell{Text: text, Span: 1, Tags: tags}
}

func spanCell(text string, span int, tags ...string) Cell {
	return Cell{Text: text, Span: max(span, 1), Tags: tags}
}
