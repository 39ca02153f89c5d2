// Package options resolves per-block rendering options from an ordered list
// of optional sources: document override, global setting, built-in default.
package options

import "strings"

// Built-in defaults used when neither the document nor the settings provide a value.
const (
	DefaultCommaDecimal = false
	DefaultSeparator    = "-"
	DefaultEquivalence  = ""
)

// Value is an optional value.
type Value[T any] struct {
	v  T
	ok bool
}

// Some returns a present value.
func Some[T any](v T) Value[T] {
	return Value[T]{v: v, ok: true}
}

// None returns an absent value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// NonEmpty is Some(s) unless s is blank.
func NonEmpty(s string) Value[string] {
	if strings.TrimSpace(s) == "" {
		return None[string]()
	}
	return Some(s)
}

// Get returns the value and whether it is present.
func (v Value[T]) Get() (T, bool) {
	return v.v, v.ok
}

// First returns the first present value, or fallback when none is.
func First[T any](fallback T, sources ...Value[T]) T {
	for _, s := range sources {
		if v, ok := s.Get(); ok {
			return v
		}
	}
	return fallback
}

// Overrides is one source of option values. Absent fields defer to the next source.
type Overrides struct {
	CommaDecimal    Value[bool]
	Separator       Value[string]
	EquivalencePath Value[string]
}

// Block holds the resolved options for rendering one document's blocks.
type Block struct {
	CommaDecimal    bool
	Separator       string
	EquivalencePath string // "" selects the built-in table
}

// Resolve picks each option from the first source that has it, in order.
func Resolve(sources ...Overrides) Block {
	comma := make([]Value[bool], len(sources))
	sep := make([]Value[string], len(sources))
	path := make([]Value[string], len(sources))
	for i, s := range sources {
		comma[i] = s.CommaDecimal
		sep[i] = s.Separator
		path[i] = s.EquivalencePath
	}
	return Block{
		CommaDecimal:    First(DefaultCommaDecimal, comma...),
		Separator:       First(DefaultSeparator, sep...),
		EquivalencePath: First(DefaultEquivalence, path...),
	}
}
