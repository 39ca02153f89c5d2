package document

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/acjournal/internal/options"
)

const frontmatterFence = "---"

// Frontmatter holds the per-document overrides read from a leading YAML block.
// Nil fields were not set by the document.
type Frontmatter struct {
	CommaAsDecimal     *bool   `yaml:"acj-commaAsDecimal"`
	JournalSeparator   *string `yaml:"acj-journalSeparator"`
	AccountEquivalence *string `yaml:"acj-accountEquivalence"`
}

// Overrides exposes the frontmatter as the highest-priority option source.
func (f Frontmatter) Overrides() options.Overrides {
	var o options.Overrides
	if f.CommaAsDecimal != nil {
		o.CommaDecimal = options.Some(*f.CommaAsDecimal)
	}
	if f.JournalSeparator != nil {
		o.Separator = options.NonEmpty(*f.JournalSeparator)
	}
	if f.AccountEquivalence != nil {
		o.EquivalencePath = options.NonEmpty(*f.AccountEquivalence)
	}
	return o
}

// splitFrontmatter returns the raw YAML between a leading pair of "---"
// lines. ok is false when the document does not start with one.
func splitFrontmatter(text string) (raw string, ok bool) {
	first, rest, found := strings.Cut(text, "\n")
	if !found || strings.TrimRight(first, " \t\r") != frontmatterFence {
		return "", false
	}
	var b strings.Builder
	for {
		line, tail, more := strings.Cut(rest, "\n")
		if strings.TrimRight(line, " \t\r") == frontmatterFence {
			return b.String(), true
		}
		if !more {
			return "", false
		}
		b.WriteString(line)
		b.WriteByte('\n')
		rest = tail
	}
}

// ParseFrontmatter decodes the document's frontmatter. A document without
// frontmatter yields an empty Frontmatter and no error.
func ParseFrontmatter(text string) (Frontmatter, error) {
	var f Frontmatter
	raw, ok := splitFrontmatter(text)
	if !ok || strings.TrimSpace(raw) == "" {
		return f, nil
	}
	if err := yaml.Unmarshal([]byte(raw), &f); err != nil {
		return Frontmatter{}, err
	}
	return f, nil
}
