package render

import (
	"fmt"
	"html"
	"io"
)

// ErrorMessage is the text shown in place of a table when a block fails.
func ErrorMessage(kind Kind, err error) string {
	what := "journal entries"
	if kind == KindLedger {
		what = "ledger entries"
	}
	return fmt.Sprintf("Error generating %s: %v", what, err)
}

// WriteErrorHTML writes the error placeholder as a <div>.
func WriteErrorHTML(w io.Writer, kind Kind, err error) error {
	_, werr := fmt.Fprintf(w, "<div class=\"%serror\">%s</div>\n", classPrefix, html.EscapeString(ErrorMessage(kind, err)))
	return werr
}

// WriteErrorMarkdown writes the error placeholder as a blockquote.
func WriteErrorMarkdown(w io.Writer, kind Kind, err error) error {
	_, werr := fmt.Fprintf(w, "> **%s**\n", escapeMarkdown(ErrorMessage(kind, err)))
	return werr
}
