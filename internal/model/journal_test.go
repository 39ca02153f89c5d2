package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(code, name, amount string) JournalLine {
	return JournalLine{AccountCode: code, AccountName: name, Amount: decimal.RequireFromString(amount)}
}

func TestJournalLineLabel(t *testing.T) {
	tests := []struct {
		code, name string
		want       string
	}{
		{"570", "Caja", "(570) Caja"},
		{"570", "", "570"},
		{"Rent", "", "Rent"},
	}
	for _, tt := range tests {
		l := JournalLine{AccountCode: tt.code, AccountName: tt.name}
		assert.Equal(t, tt.want, l.Label(), "Label(%q, %q)", tt.code, tt.name)
	}
}

func TestJournalEntryBalanced(t *testing.T) {
	entry := JournalEntry{
		Debits:  []JournalLine{line("600", "", "60.10"), line("472", "", "39.90")},
		Credits: []JournalLine{line("570", "", "100")},
	}
	assert.True(t, entry.DebitTotal().Equal(decimal.NewFromInt(100)))
	assert.True(t, entry.Balanced())
	assert.Equal(t, 2, entry.Rows())

	entry.Credits[0].Amount = decimal.RequireFromString("100.01")
	assert.False(t, entry.Balanced())
}

func TestJournalEntryBalanced_ExactDecimals(t *testing.T) {
	// 0.1 + 0.2 is exactly 0.3 with decimal amounts.
	entry := JournalEntry{
		Debits:  []JournalLine{line("600", "", "0.1"), line("600", "", "0.2")},
		Credits: []JournalLine{line("570", "", "0.3")},
	}
	assert.True(t, entry.Balanced())
}

func TestLedgerEntryLabel(t *testing.T) {
	assert.Equal(t, "(570) Caja", LedgerEntry{AccountCode: "570", AccountName: "Caja"}.Label())
	assert.Equal(t, "570", LedgerEntry{AccountCode: "570"}.Label())
}

func TestLedgerEntryRows(t *testing.T) {
	l := LedgerEntry{
		Debits:  []decimal.Decimal{decimal.NewFromInt(1)},
		Credits: []decimal.Decimal{decimal.NewFromInt(1), decimal.NewFromInt(2), decimal.NewFromInt(3)},
	}
	assert.Equal(t, 3, l.Rows())
	assert.Equal(t, 0, LedgerEntry{}.Rows())
}
