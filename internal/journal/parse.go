package journal

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/acjournal/internal/accounts"
	"github.com/cleared-dev/acjournal/internal/amount"
	"github.com/cleared-dev/acjournal/internal/model"
)

// ParseJournal parses a journal block:
//
//	<date>,<description>
//	<account>-<amount>      debit lines
//	---
//	<account>-<amount>      credit lines
//	===                     next entry
//
// Any failure aborts the whole block with a *ParseError.
func ParseJournal(text string, table accounts.Table) (*model.JournalDocument, error) {
	src := block(text)

	headerLine, body := src.header()
	date, description, ok := strings.Cut(headerLine, ",")
	date = strings.TrimSpace(date)
	description = strings.TrimSpace(description)
	if !ok || date == "" || description == "" {
		return nil, malformedHeader(1, strings.TrimSpace(headerLine))
	}

	var entries []model.JournalEntry
	for _, seg := range body.split(entrySeparator) {
		if t, _ := seg.trimmed(); t == "" {
			continue
		}
		entry, err := parseEntry(src, seg, table)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return &model.JournalDocument{
		Date:        date,
		Description: description,
		Entries:     entries,
		Balanced:    foldBalance(entries),
	}, nil
}

func parseEntry(src block, seg segment, table accounts.Table) (model.JournalEntry, error) {
	sides := seg.split(sideSeparator)
	if len(sides) != 2 {
		_, start := seg.trimmed()
		return model.JournalEntry{}, malformedEntrySeparator(src.lineAt(start), len(sides))
	}

	debits, err := parseSide(src, sides[0], table)
	if err != nil {
		return model.JournalEntry{}, err
	}
	credits, err := parseSide(src, sides[1], table)
	if err != nil {
		return model.JournalEntry{}, err
	}
	return model.JournalEntry{Debits: debits, Credits: credits}, nil
}

func parseSide(src block, seg segment, table accounts.Table) ([]model.JournalLine, error) {
	var lines []model.JournalLine
	for _, l := range seg.lines() {
		jl, err := parseLine(src.lineAt(l.offset), l.text, table)
		if err != nil {
			return nil, err
		}
		lines = append(lines, jl)
	}
	return lines, nil
}

// parseLine reads "<account>-<amount>", splitting on the first '-'.
func parseLine(lineNo int, text string, table accounts.Table) (model.JournalLine, error) {
	code, raw, found := strings.Cut(text, "-")
	code = strings.TrimSpace(code)
	raw = strings.TrimSpace(raw)
	if !found || code == "" || raw == "" {
		return model.JournalLine{}, malformedLine(lineNo, text)
	}

	value, err := amount.Parse(unwrapParens(raw))
	if err != nil {
		return model.JournalLine{}, invalidAmount(lineNo, raw, err)
	}
	if value.IsNegative() {
		return model.JournalLine{}, negativeAmount(lineNo, raw)
	}

	name, _ := table.Resolve(code)
	return model.JournalLine{Amount: value, AccountCode: code, AccountName: name}, nil
}

// unwrapParens strips one pair of enclosing parentheses: "(-50)" -> "-50".
func unwrapParens(s string) string {
	if len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		return strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// ParseLedger parses a ledger block:
//
//	<account>
//	<amount>   one debit per line
//	---
//	<amount>   one credit per line
//
// Blank sections are dropped before the sides are counted, so each side
// needs at least one amount and repeated separators collapse.
func ParseLedger(text string, table accounts.Table) (*model.LedgerEntry, error) {
	src := block(text)

	headerLine, body := src.header()
	code := strings.TrimSpace(headerLine)
	if code == "" {
		return nil, missingAccount()
	}

	var sides []segment
	for _, seg := range body.split(sideSeparator) {
		if t, _ := seg.trimmed(); t != "" {
			sides = append(sides, seg)
		}
	}
	if len(sides) != 2 {
		return nil, malformedLedgerSeparator(src.lineAt(body.offset), len(sides))
	}

	debits, err := parseAmounts(src, sides[0])
	if err != nil {
		return nil, err
	}
	credits, err := parseAmounts(src, sides[1])
	if err != nil {
		return nil, err
	}

	name, _ := table.Resolve(code)
	return &model.LedgerEntry{
		AccountCode: code,
		AccountName: name,
		Debits:      debits,
		Credits:     credits,
		NetSum:      sum(credits).Sub(sum(debits)),
	}, nil
}

func parseAmounts(src block, seg segment) ([]decimal.Decimal, error) {
	var values []decimal.Decimal
	for _, l := range seg.lines() {
		v, err := amount.Parse(l.text)
		if err != nil {
			return nil, invalidAmount(src.lineAt(l.offset), l.text, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
