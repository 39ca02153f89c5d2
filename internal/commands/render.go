package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/acjournal/internal/document"
	"github.com/cleared-dev/acjournal/internal/render"
)

const formatJSON = "json"

// blockJSON is one block in `render --format json` output.
type blockJSON struct {
	Line  int           `json:"line"`
	Kind  render.Kind   `json:"kind"`
	Table *render.Table `json:"table,omitempty"`
	Error string        `json:"error,omitempty"`
}

func newRenderCommand(a *app) *cobra.Command {
	var format string
	var strict bool

	cmd := &cobra.Command{
		Use:   "render <file.md>",
		Short: "Print the tables for every block in a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading document: %w", err)
			}

			results := a.pipeline().Render(string(data))
			if err := writeResults(cmd.OutOrStdout(), results, format); err != nil {
				return err
			}

			if failed := countFailed(results); strict && failed > 0 {
				return fmt.Errorf("%d of %d blocks failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", string(document.FormatMarkdown), "output format: html, markdown or json")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when any block fails")

	return cmd
}

func writeResults(w io.Writer, results []document.Result, format string) error {
	if format == formatJSON {
		out := make([]blockJSON, len(results))
		for i, r := range results {
			out[i] = blockJSON{Line: r.Block.Line, Kind: r.Block.Kind}
			if r.Err != nil {
				out[i].Error = r.Err.Error()
			} else {
				out[i].Table = &results[i].Table
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	f, err := document.ParseFormat(format)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	for i, r := range results {
		if i > 0 {
			buf.WriteString("\n")
		}
		switch {
		case f == document.FormatHTML && r.Err != nil:
			err = render.WriteErrorHTML(&buf, r.Block.Kind, r.Err)
		case f == document.FormatHTML:
			err = render.WriteHTML(&buf, r.Table)
		case r.Err != nil:
			err = render.WriteErrorMarkdown(&buf, r.Block.Kind, r.Err)
		default:
			err = render.WriteMarkdown(&buf, r.Table)
		}
		if err != nil {
			return err
		}
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func countFailed(results []document.Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
