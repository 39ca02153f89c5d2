package accounts

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	numFields = 2
	colCode   = 0
	colName   = 1
)

// LoadError reports an unreadable or malformed equivalence source.
type LoadError struct {
	Path string
	Line int // 0 when the failure is not tied to a line
	Err  error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("loading account equivalences")
	if e.Path != "" {
		b.WriteString(" from ")
		b.WriteString(e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

var (
	errFieldCount = errors.New("each line must have exactly two columns")
	errEmptyField = errors.New("neither column can be empty")
)

// ReadEquivalences reads "code,name" lines with no header. Blank lines are
// skipped and both fields are trimmed. A name may be double-quoted so that
// it can hold commas, which is how WriteEquivalences emits such names.
func ReadEquivalences(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	table := make(Table)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &LoadError{Line: pe.Line, Err: pe.Err}
			}
			return nil, &LoadError{Err: err}
		}

		line, _ := cr.FieldPos(0)
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		code, name, err := UnmarshalEquivalence(rec)
		if err != nil {
			return nil, &LoadError{Line: line, Err: err}
		}
		table[code] = name
	}
	return table, nil
}

// WriteEquivalences writes the table as "code,name" lines sorted by code.
func WriteEquivalences(w io.Writer, table Table) error {
	cw := csv.NewWriter(w)
	for _, code := range table.Codes() {
		if err := cw.Write(MarshalEquivalence(code, table[code])); err != nil {
			return fmt.Errorf("writing account %s: %w", code, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalEquivalence converts one table entry to a CSV row.
func MarshalEquivalence(code, name string) []string {
	row := make([]string, numFields)
	row[colCode] = code
	row[colName] = name
	return row
}

// UnmarshalEquivalence converts a CSV row to a code and name.
func UnmarshalEquivalence(record []string) (string, string, error) {
	if len(record) != numFields {
		return "", "", fmt.Errorf("%w, got %d", errFieldCount, len(record))
	}
	code := strings.TrimSpace(record[colCode])
	name := strings.TrimSpace(record[colName])
	if code == "" || name == "" {
		return "", "", errEmptyField
	}
	return code, name, nil
}

// LoadFile reads an equivalence CSV from disk.
func LoadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	table, err := ReadEquivalences(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	return table, nil
}

// SaveFile writes the table to path, replacing any existing file.
func SaveFile(path string, table Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating equivalence file: %w", err)
	}
	defer f.Close()

	if err := WriteEquivalences(f, table); err != nil {
		return fmt.Errorf("writing equivalence file: %w", err)
	}
	return nil
}
