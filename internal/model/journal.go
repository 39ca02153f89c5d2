package model

import (
	"github.com/shopspring/decimal"
)

// JournalLine is one account/amount row on either side of an entry.
type JournalLine struct {
	Amount      decimal.Decimal // never negative
	AccountCode string
	AccountName string // empty when the code has no equivalence
}

// Label returns "(code) Name" when a name is known, otherwise the bare code.
func (l JournalLine) Label() string {
	return accountLabel(l.AccountCode, l.AccountName)
}

// JournalEntry is one debit/credit block of a journal document.
type JournalEntry struct {
	Debits  []JournalLine
	Credits []JournalLine
}

// DebitTotal sums the debit side.
func (e JournalEntry) DebitTotal() decimal.Decimal {
	return sumLines(e.Debits)
}

// CreditTotal sums the credit side.
func (e JournalEntry) CreditTotal() decimal.Decimal {
	return sumLines(e.Credits)
}

// Balanced reports whether both sides sum to exactly the same amount.
func (e JournalEntry) Balanced() bool {
	return e.DebitTotal().Equal(e.CreditTotal())
}

// Rows is the number of table rows needed to show both sides side by side.
func (e JournalEntry) Rows() int {
	return max(len(e.Debits), len(e.Credits))
}

// JournalDocument is a parsed journal block.
type JournalDocument struct {
	Date        string
	Description string
	Entries     []JournalEntry
	// Balanced is false once any entry fails its balance check.
	Balanced bool
}

func sumLines(lines []JournalLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total
}

func accountLabel(code, name string) string {
	if name == "" {
		return code
	}
	return "(" + code + ") " + name
}
