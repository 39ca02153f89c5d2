package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/acjournal/internal/document"
	"github.com/cleared-dev/acjournal/internal/render"
)

func newExportCommand(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <file.md>",
		Short: "Export every block of a document to an XLSX workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading document: %w", err)
			}

			results := a.pipeline().Render(string(data))
			tables := make([]render.NamedTable, 0, len(results))
			for _, r := range results {
				if r.Err != nil {
					a.logger.Warn("skipping failed block", zap.Int("block_line", r.Block.Line))
					continue
				}
				tables = append(tables, render.NamedTable{Name: sheetTitle(r), Table: r.Table})
			}
			if len(tables) == 0 {
				return fmt.Errorf("no blocks to export in %s", args[0])
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			defer f.Close()

			if err := render.WriteXLSX(f, tables); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tables to %s\n", len(tables), output)
			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "journal.xlsx", "workbook to write")

	return cmd
}

// sheetTitle names a sheet after the block's date or account.
func sheetTitle(r document.Result) string {
	rows := r.Table.Rows
	switch r.Block.Kind {
	case render.KindModern:
		// The header row holds column titles; the first date row follows.
		if len(rows) > 1 && len(rows[1].Cells) > 0 {
			return rows[1].Cells[0].Text
		}
	default:
		if len(rows) > 0 && len(rows[0].Cells) > 0 {
			return rows[0].Cells[0].Text
		}
	}
	return fmt.Sprintf("Line %d", r.Block.Line)
}
