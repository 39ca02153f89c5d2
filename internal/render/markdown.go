package render

import (
	"io"
	"strings"
)

// WriteMarkdown writes the table as a pipe table. The first row becomes the
// Markdown header; spans are padded with empty cells.
func WriteMarkdown(w io.Writer, t Table) error {
	width := t.Width()
	if width == 0 || len(t.Rows) == 0 {
		return nil
	}

	var b strings.Builder
	writeMarkdownRow(&b, t.Rows[0], width)

	b.WriteString("|")
	for i := 0; i < width; i++ {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	for _, r := range t.Rows[1:] {
		writeMarkdownRow(&b, r, width)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeMarkdownRow(b *strings.Builder, r Row, width int) {
	b.WriteString("|")
	cols := 0
	for _, c := range r.Cells {
		b.WriteString(" ")
		b.WriteString(escapeMarkdown(c.Text))
		b.WriteString(" |")
		for i := 0; i < c.Span-1; i++ {
			b.WriteString("  |")
		}
		cols += c.Span
	}
	for ; cols < width; cols++ {
		b.WriteString("  |")
	}
	b.WriteString("\n")
}

var markdownEscaper = strings.NewReplacer("|", `\|`, "\n", " ", "\r", "")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
