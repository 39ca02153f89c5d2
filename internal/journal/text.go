package journal

import (
	"regexp"
	"strings"
)

var (
	entrySeparator = regexp.MustCompile(`={3,}`)
	sideSeparator  = regexp.MustCompile(`-{3,}`)
)

// segment is a slice of the block text that remembers where it started, so
// errors can point at a line.
type segment struct {
	text   string
	offset int
}

// block is the raw text of one code block.
type block string

// lineAt returns the 1-based line containing offset.
func (b block) lineAt(offset int) int {
	if offset > len(b) {
		offset = len(b)
	}
	return 1 + strings.Count(string(b[:offset]), "\n")
}

// header splits off the first line. Without a newline the whole text is the header.
func (b block) header() (string, segment) {
	s := string(b)
	i := strings.IndexByte(s, '\n')
	if i < 0 {
		return s, segment{offset: len(s)}
	}
	return s[:i], segment{text: s[i+1:], offset: i + 1}
}

// split cuts the segment at every match of re.
func (s segment) split(re *regexp.Regexp) []segment {
	locs := re.FindAllStringIndex(s.text, -1)
	parts := make([]segment, 0, len(locs)+1)
	start := 0
	for _, loc := range locs {
		parts = append(parts, segment{text: s.text[start:loc[0]], offset: s.offset + start})
		start = loc[1]
	}
	return append(parts, segment{text: s.text[start:], offset: s.offset + start})
}

// trimmed returns the trimmed text and the offset of its first non-space byte.
func (s segment) trimmed() (string, int) {
	t := strings.TrimLeft(s.text, " \t\r\n")
	return strings.TrimSpace(t), s.offset + len(s.text) - len(t)
}

// lines returns the non-blank lines of the segment, trimmed.
func (s segment) lines() []segment {
	var out []segment
	start := 0
	for start <= len(s.text) {
		end := strings.IndexByte(s.text[start:], '\n')
		if end < 0 {
			end = len(s.text)
		} else {
			end += start
		}
		if l := strings.TrimSpace(s.text[start:end]); l != "" {
			out = append(out, segment{text: l, offset: s.offset + start})
		}
		start = end + 1
	}
	return out
}
