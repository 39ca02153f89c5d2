package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cleared-dev/acjournal/internal/model"
)

func entry(debits, credits []string) model.JournalEntry {
	var e model.JournalEntry
	for _, d := range debits {
		e.Debits = append(e.Debits, model.JournalLine{AccountCode: "600", Amount: dec(d)})
	}
	for _, c := range credits {
		e.Credits = append(e.Credits, model.JournalLine{AccountCode: "570", Amount: dec(c)})
	}
	return e
}

func TestBalanceStep(t *testing.T) {
	s := newBalanceState().step(entry([]string{"60", "40"}, []string{"100"}))
	assert.True(t, s.balanced)
	assert.True(t, s.debit.IsZero(), "sums reset after each entry")
	assert.True(t, s.credit.IsZero())

	s = s.step(entry([]string{"1"}, []string{"2"}))
	assert.False(t, s.balanced)

	s = s.step(entry([]string{"5"}, []string{"5"}))
	assert.False(t, s.balanced, "unbalanced is terminal")
}

func TestFoldBalance(t *testing.T) {
	tests := []struct {
		name    string
		entries []model.JournalEntry
		want    bool
	}{
		{"no entries", nil, true},
		{"one balanced", []model.JournalEntry{entry([]string{"10"}, []string{"10"})}, true},
		{"one unbalanced", []model.JournalEntry{entry([]string{"10"}, []string{"9.99"})}, false},
		{"exact decimals", []model.JournalEntry{entry([]string{"0.1", "0.2"}, []string{"0.3"})}, true},
		{"unbalanced then balanced", []model.JournalEntry{
			entry([]string{"1"}, []string{"2"}),
			entry([]string{"3"}, []string{"3"}),
		}, false},
		{"balanced then unbalanced", []model.JournalEntry{
			entry([]string{"3"}, []string{"3"}),
			entry([]string{"1"}, []string{"2"}),
		}, false},
		{"sides with no lines", []model.JournalEntry{entry(nil, nil)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, foldBalance(tt.entries))
		})
	}
}
