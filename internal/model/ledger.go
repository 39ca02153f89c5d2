package model

import "github.com/shopspring/decimal"

// LedgerEntry is a single account shown T-account style.
type LedgerEntry struct {
	AccountCode string
	AccountName string
	Debits      []decimal.Decimal
	Credits     []decimal.Decimal
	// NetSum is sum(Credits) - sum(Debits). Nothing renders it.
	NetSum decimal.Decimal
}

// Label returns the header text for the account.
func (l LedgerEntry) Label() string {
	return accountLabel(l.AccountCode, l.AccountName)
}

// Rows is the number of paired debit/credit rows.
func (l LedgerEntry) Rows() int {
	return max(len(l.Debits), len(l.Credits))
}
