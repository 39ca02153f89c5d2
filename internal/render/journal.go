package render

import (
	"github.com/cleared-dev/acjournal/internal/amount"
	"github.com/cleared-dev/acjournal/internal/model"
)

const (
	classicColumns = 5
	modernColumns  = 4
)

// Classic renders the five-column journal:
//
//	debit amount | debit account | separator | credit account | credit amount
//
// framed by a date row and a description row.
func Classic(doc *model.JournalDocument, commaDecimal bool, separator string) Table {
	t := Table{Kind: KindJournal, Tags: balanceTags(doc)}
	t.Rows = append(t.Rows, Row{
		Header: true,
		Cells:  []Cell{spanCell(doc.Date, classicColumns, TagCenter)},
	})

	for _, e := range doc.Entries {
		for i, n := 0, e.Rows(); i < n; i++ {
			debit := lineAt(e.Debits, i)
			credit := lineAt(e.Credits, i)
			t.Rows = append(t.Rows, Row{Cells: []Cell{
				cell(lineAmount(debit, commaDecimal), TagNumber),
				cell(lineLabel(debit), TagName),
				cell(separator, TagSeparator, TagCenter),
				cell(lineLabel(credit), TagName),
				cell(lineAmount(credit, commaDecimal), TagNumber),
			}})
		}
	}

	t.Rows = append(t.Rows, Row{Cells: []Cell{spanCell(doc.Description, classicColumns, TagCenter)}})
	return t
}

// Modern renders the Particulars/Ref/Debit/Credit journal. Every entry gets
// its own date row, its debit rows, its credit rows and a description row.
func Modern(doc *model.JournalDocument, commaDecimal bool) Table {
	t := Table{Kind: KindModern, Tags: balanceTags(doc)}
	t.Rows = append(t.Rows, Row{
		Header: true,
		Cells: []Cell{
			cell("Particulars", TagCenter),
			cell("Ref", TagCenter),
			cell("Debit", TagCenter),
			cell("Credit", TagCenter),
		},
	})

	for _, e := range doc.Entries {
		t.Rows = append(t.Rows, Row{Cells: []Cell{spanCell(doc.Date, modernColumns)}})
		for _, l := range e.Debits {
			particulars, ref := modernAccount(l, false)
			t.Rows = append(t.Rows, Row{Cells: []Cell{
				particulars,
				ref,
				cell(amount.Format(l.Amount, commaDecimal), TagNumber),
				cell("", TagNumber),
			}})
		}
		for _, l := range e.Credits {
			particulars, ref := modernAccount(l, true)
			t.Rows = append(t.Rows, Row{Cells: []Cell{
				particulars,
				ref,
				cell("", TagNumber),
				cell(amount.Format(l.Amount, commaDecimal), TagNumber),
			}})
		}
		t.Rows = append(t.Rows, Row{Cells: []Cell{spanCell(doc.Description, modernColumns, TagCenter)}})
	}
	return t
}

// modernAccount puts the name in Particulars and the code in Ref, or the bare
// code in Particulars when there is no name. Credit accounts are indented.
func modernAccount(l model.JournalLine, credit bool) (Cell, Cell) {
	tags := []string{TagName}
	if credit {
		tags = append(tags, TagIndent)
	}
	if l.AccountName != "" {
		return cell(l.AccountName, tags...), cell(l.AccountCode, TagName, TagCenter)
	}
	return cell(l.AccountCode, tags...), cell("", TagName, TagCenter)
}

func balanceTags(doc *model.JournalDocument) []string {
	if doc.Balanced {
		return nil
	}
	return []string{TagNotBalanced}
}

func lineAt(lines []model.JournalLine, i int) *model.JournalLine {
	if i < len(lines) {
		return &lines[i]
	}
	return nil
}

func lineAmount(l *model.JournalLine, commaDecimal bool) string {
	if l == nil {
		return ""
	}
	return amount.FormatOptional(&l.Amount, commaDecimal)
}

func lineLabel(l *model.JournalLine) string {
	if l == nil {
		return ""
	}
	return l.Label()
}
