package journal

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/acjournal/internal/model"
)

// balanceState is threaded through the entries of a document. Once balanced
// turns false it stays false and later entries are no longer summed.
type balanceState struct {
	debit    decimal.Decimal
	credit   decimal.Decimal
	balanced bool
}

func newBalanceState() balanceState {
	return balanceState{debit: decimal.Zero, credit: decimal.Zero, balanced: true}
}

// step folds one entry into the state.
func (s balanceState) step(entry model.JournalEntry) balanceState {
	if !s.balanced {
		return s
	}
	for _, l := range entry.Debits {
		s.debit = s.debit.Add(l.Amount)
	}
	for _, l := range entry.Credits {
		s.credit = s.credit.Add(l.Amount)
	}
	return balanceState{
		debit:    decimal.Zero,
		credit:   decimal.Zero,
		balanced: s.debit.Equal(s.credit),
	}
}

// foldBalance reports whether every entry balances, stopping at the first
// that does not.
func foldBalance(entries []model.JournalEntry) bool {
	state := newBalanceState()
	for _, e := range entries {
		state = state.step(e)
	}
	return state.balanced
}
