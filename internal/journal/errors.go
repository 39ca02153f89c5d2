package journal

import (
	"errors"
	"fmt"
)

// Kind classifies a parse failure.
type Kind string

const (
	KindMalformedHeader          Kind = "MalformedHeader"
	KindMalformedEntrySeparator  Kind = "MalformedEntrySeparator"
	KindMalformedLedgerSeparator Kind = "MalformedLedgerSeparator"
	KindMalformedLine            Kind = "MalformedLine"
	KindInvalidAmount            Kind = "InvalidAmount"
	KindNegativeAmount           Kind = "NegativeAmount"
	KindMissingAccount           Kind = "MissingAccount"
)

// Sentinels matched by errors.Is against a *ParseError of the same kind.
var (
	ErrMalformedHeader          = errors.New("malformed header")
	ErrMalformedEntrySeparator  = errors.New("malformed entry separator")
	ErrMalformedLedgerSeparator = errors.New("malformed ledger separator")
	ErrMalformedLine            = errors.New("malformed line")
	ErrInvalidAmount            = errors.New("invalid amount")
	ErrNegativeAmount           = errors.New("negative amount")
	ErrMissingAccount           = errors.New("missing account")
)

var sentinels = map[Kind]error{
	KindMalformedHeader:          ErrMalformedHeader,
	KindMalformedEntrySeparator:  ErrMalformedEntrySeparator,
	KindMalformedLedgerSeparator: ErrMalformedLedgerSeparator,
	KindMalformedLine:            ErrMalformedLine,
	KindInvalidAmount:            ErrInvalidAmount,
	KindNegativeAmount:           ErrNegativeAmount,
	KindMissingAccount:           ErrMissingAccount,
}

// ParseError is the single error a failed parse returns.
type ParseError struct {
	Kind   Kind
	Line   int    // 1-based line in the block, 0 if unknown
	Input  string // offending text, if any
	Detail string
	Err    error // underlying cause, if any
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Detail)
	}
	return e.Detail
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *ParseError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s, ok := sentinels[e.Kind]; ok {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func malformedHeader(line int, input string) *ParseError {
	return &ParseError{
		Kind:   KindMalformedHeader,
		Line:   line,
		Input:  input,
		Detail: "invalid journal header: the first line must contain the date and the description separated by a comma",
	}
}

func malformedEntrySeparator(line, parts int) *ParseError {
	return &ParseError{
		Kind:   KindMalformedEntrySeparator,
		Line:   line,
		Detail: fmt.Sprintf("invalid journal entry: expected a debit and a credit section separated by '---', found %d section(s)", parts),
	}
}

func malformedLedgerSeparator(line, parts int) *ParseError {
	return &ParseError{
		Kind:   KindMalformedLedgerSeparator,
		Line:   line,
		Detail: fmt.Sprintf("invalid ledger: expected debit and credit amounts separated by '---', found %d section(s)", parts),
	}
}

func malformedLine(line int, input string) *ParseError {
	return &ParseError{
		Kind:   KindMalformedLine,
		Line:   line,
		Input:  input,
		Detail: fmt.Sprintf("invalid journal line %q: expected an account code and an amount separated by '-'", input),
	}
}

func invalidAmount(line int, input string, cause error) *ParseError {
	return &ParseError{
		Kind:   KindInvalidAmount,
		Line:   line,
		Input:  input,
		Detail: fmt.Sprintf("invalid amount %q: use '.' or ',' as the decimal separator and no thousands separator", input),
		Err:    cause,
	}
}

func negativeAmount(line int, input string) *ParseError {
	return &ParseError{
		Kind:   KindNegativeAmount,
		Line:   line,
		Input:  input,
		Detail: fmt.Sprintf("negative amount %q: journal amounts must be positive", input),
	}
}

func missingAccount() *ParseError {
	return &ParseError{
		Kind:   KindMissingAccount,
		Line:   1,
		Detail: "invalid ledger: the first line must contain the account code",
	}
}
