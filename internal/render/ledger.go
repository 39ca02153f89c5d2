package render

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/acjournal/internal/amount"
	"github.com/cleared-dev/acjournal/internal/model"
)

const ledgerColumns = 2

// Ledger renders a T-account. Debits and credits are paired by position; the
// shorter side is padded with zero, not blanks. A blank row always closes the
// table.
func Ledger(entry *model.LedgerEntry, commaDecimal bool) Table {
	t := Table{Kind: KindLedger}
	t.Rows = append(t.Rows, Row{
		Header: true,
		Cells:  []Cell{spanCell(entry.Label(), ledgerColumns, TagCenter)},
	})

	for i, n := 0, entry.Rows(); i < n; i++ {
		t.Rows = append(t.Rows, Row{Cells: []Cell{
			cell(amount.Format(valueAt(entry.Debits, i), commaDecimal), TagNumber),
			cell(amount.Format(valueAt(entry.Credits, i), commaDecimal), TagNumber),
		}})
	}

	t.Rows = append(t.Rows, Row{Cells: []Cell{cell("", TagNumber), cell("", TagNumber)}})
	return t
}

func valueAt(values []decimal.Decimal, i int) decimal.Decimal {
	if i < len(values) {
		return values[i]
	}
	return decimal.Zero
}
