package render

import (
	"fmt"
	"html"
	"io"
	"strings"
)

const classPrefix = "acj-"

// WriteHTML writes the table as an HTML <table>. Tags become "acj-" classes.
func WriteHTML(w io.Writer, t Table) error {
	var b strings.Builder

	fmt.Fprintf(&b, "<table class=%q>\n", classes(append([]string{"table", string(t.Kind)}, t.Tags...)))

	var head, body []Row
	for _, r := range t.Rows {
		if r.Header {
			head = append(head, r)
		} else {
			body = append(body, r)
		}
	}
	writeSection(&b, "thead", head)
	writeSection(&b, "tbody", body)
	b.WriteString("</table>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSection(b *strings.Builder, tag string, rows []Row) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(b, "<%s>\n", tag)
	for _, r := range rows {
		b.WriteString("<tr>")
		for _, c := range r.Cells {
			b.WriteString("<td")
			if c.Span > 1 {
				fmt.Fprintf(b, ` colspan="%d"`, c.Span)
			}
			if len(c.Tags) > 0 {
				fmt.Fprintf(b, " class=%q", classes(c.Tags))
			}
			b.WriteString(">")
			b.WriteString(html.EscapeString(c.Text))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}
	fmt.Fprintf(b, "</%s>\n", tag)
}

func classes(tags []string) string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = classPrefix + html.EscapeString(t)
	}
	return strings.Join(out, " ")
}
