// Package document finds accounting blocks in Markdown documents and turns
// them into tables, resolving per-document options from frontmatter.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/cleared-dev/acjournal/internal/accounts"
	"github.com/cleared-dev/acjournal/internal/journal"
	"github.com/cleared-dev/acjournal/internal/options"
	"github.com/cleared-dev/acjournal/internal/render"
)

// Format selects the serialization used when rewriting blocks.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatHTML, FormatMarkdown:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want html or markdown)", s)
}

// Project parses a block's source and projects it into a table.
func Project(kind render.Kind, source string, table accounts.Table, opts options.Block) (render.Table, error) {
	switch kind {
	case render.KindJournal, render.KindModern:
		doc, err := journal.ParseJournal(source, table)
		if err != nil {
			return render.Table{}, err
		}
		if kind == render.KindModern {
			return render.Modern(doc, opts.CommaDecimal), nil
		}
		return render.Classic(doc, opts.CommaDecimal, opts.Separator), nil
	case render.KindLedger:
		entry, err := journal.ParseLedger(source, table)
		if err != nil {
			return render.Table{}, err
		}
		return render.Ledger(entry, opts.CommaDecimal), nil
	}
	return render.Table{}, fmt.Errorf("unknown block kind %q", kind)
}

// Result is the outcome of rendering one block: a table or the block's error.
type Result struct {
	Block Block
	Table render.Table
	Err   error
}

// Stats summarizes a rewrite.
type Stats struct {
	Blocks   int
	Rendered int
	Failed   int
}

// Pipeline renders the blocks of documents.
type Pipeline struct {
	Tables TableLoader
	Global options.Overrides
	Logger *zap.Logger

	mu     sync.Mutex
	warned map[string]bool
}

// NewPipeline returns a pipeline using global as the settings option source.
func NewPipeline(tables TableLoader, global options.Overrides, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{Tables: tables, Global: global, Logger: logger}
}

// Options resolves the rendering options for a document: frontmatter first,
// then the global settings, then the built-in defaults. Unreadable
// frontmatter counts as no overrides.
func (p *Pipeline) Options(text string) options.Block {
	front, err := ParseFrontmatter(text)
	if err != nil {
		p.Logger.Warn("ignoring invalid frontmatter", zap.Error(err))
	}
	return options.Resolve(front.Overrides(), p.Global)
}

// table loads the equivalence table at path, falling back to the built-in
// table when the file cannot be loaded.
func (p *Pipeline) table(path string) accounts.Table {
	table, err := p.Tables.Load(path)
	if err == nil {
		return table
	}

	p.mu.Lock()
	first := !p.warned[path]
	if p.warned == nil {
		p.warned = make(map[string]bool)
	}
	p.warned[path] = true
	p.mu.Unlock()

	if first {
		var le *accounts.LoadError
		if errors.As(err, &le) {
			p.Logger.Warn("using built-in account table", zap.String("path", le.Path), zap.Int("line", le.Line), zap.Error(le.Err))
		} else {
			p.Logger.Warn("using built-in account table", zap.String("path", path), zap.Error(err))
		}
	}
	return accounts.DefaultTable()
}

// RenderBlock renders one block with the given options. A failure is
// logged once and returned in the Result.
func (p *Pipeline) RenderBlock(b Block, opts options.Block) Result {
	t, err := Project(b.Kind, b.Source, p.table(opts.EquivalencePath), opts)
	if err != nil {
		fields := []zap.Field{
			zap.String("kind", string(b.Kind)),
			zap.Int("block_line", b.Line),
			zap.Error(err),
		}
		var pe *journal.ParseError
		if errors.As(err, &pe) {
			fields = append(fields, zap.String("error_kind", string(pe.Kind)))
			if pe.Line > 0 {
				fields = append(fields, zap.Int("line", b.Line+pe.Line))
			}
		}
		p.Logger.Error("rendering block", fields...)
		return Result{Block: b, Err: err}
	}
	return Result{Block: b, Table: t}
}

// Render renders every block in the document.
func (p *Pipeline) Render(text string) []Result {
	opts := p.Options(text)
	blocks := Scan(text)
	results := make([]Result, 0, len(blocks))
	for _, b := range blocks {
		results = append(results, p.RenderBlock(b, opts))
	}
	return results
}

// Rewrite replaces every block in text with its serialized table, or with an
// error placeholder when the block fails. Text outside blocks is kept as is.
func (p *Pipeline) Rewrite(text string, format Format) (string, Stats, error) {
	results := p.Render(text)
	stats := Stats{Blocks: len(results)}

	var out strings.Builder
	last := 0
	for _, r := range results {
		out.WriteString(text[last:r.Block.Start])

		var buf bytes.Buffer
		if err := writeResult(&buf, r, format); err != nil {
			return "", stats, fmt.Errorf("writing block at line %d: %w", r.Block.Line, err)
		}
		out.Write(buf.Bytes())

		if r.Err != nil {
			stats.Failed++
		} else {
			stats.Rendered++
		}
		last = r.Block.End
	}
	out.WriteString(text[last:])
	return out.String(), stats, nil
}

func writeResult(buf *bytes.Buffer, r Result, format Format) error {
	switch format {
	case FormatHTML:
		if r.Err != nil {
			return render.WriteErrorHTML(buf, r.Block.Kind, r.Err)
		}
		return render.WriteHTML(buf, r.Table)
	case FormatMarkdown:
		if r.Err != nil {
			return render.WriteErrorMarkdown(buf, r.Block.Kind, r.Err)
		}
		return render.WriteMarkdown(buf, r.Table)
	}
	return fmt.Errorf("unknown format %q", format)
}
