package accounts

import (
	"sort"
	"strings"
)

// Table maps account codes to display names. A nil Table is valid and
// resolves nothing.
type Table map[string]string

// Resolve returns the display name for code. The code is trimmed; no other
// normalization is applied.
func (t Table) Resolve(code string) (string, bool) {
	name, ok := t[strings.TrimSpace(code)]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// Codes returns all codes in ascending order.
func (t Table) Codes() []string {
	codes := make([]string, 0, len(t))
	for code := range t {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
