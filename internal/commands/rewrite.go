package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/acjournal/internal/document"
	"github.com/cleared-dev/acjournal/internal/gitops"
)

func newRewriteCommand(a *app) *cobra.Command {
	var format string
	var commit bool

	cmd := &cobra.Command{
		Use:   "rewrite <file.md>...",
		Short: "Replace every block in the documents with its rendered table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := document.ParseFormat(format)
			if err != nil {
				return err
			}
			return runRewrite(cmd.OutOrStdout(), a, args, f, commit)
		},
	}

	cmd.Flags().StringVar(&format, "format", string(document.FormatHTML), "output format: html or markdown")
	cmd.Flags().BoolVar(&commit, "commit", false, "commit the rewritten files to git")

	return cmd
}

func runRewrite(out io.Writer, a *app, paths []string, format document.Format, commit bool) error {
	p := a.pipeline()

	var changed []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		text, stats, err := p.Rewrite(string(data), format)
		if err != nil {
			return fmt.Errorf("rewriting %s: %w", path, err)
		}
		fmt.Fprintf(out, "%s: %d blocks, %d failed\n", path, stats.Blocks, stats.Failed)
		if stats.Blocks == 0 {
			continue
		}

		if err := os.WriteFile(path, []byte(text), info.Mode().Perm()); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		changed = append(changed, path)
	}

	if !commit || len(changed) == 0 {
		return nil
	}
	return commitRewritten(out, a.logger, changed)
}

func commitRewritten(out io.Writer, logger *zap.Logger, paths []string) error {
	abs := make([]string, len(paths))
	for i, p := range paths {
		a, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", p, err)
		}
		// git reports the top level with symlinks resolved.
		if r, err := filepath.EvalSymlinks(a); err == nil {
			a = r
		}
		abs[i] = a
	}

	root, err := gitops.Root(filepath.Dir(abs[0]))
	if err != nil {
		return fmt.Errorf("--commit: %s is not inside a git repository", paths[0])
	}

	msg := fmt.Sprintf("rewrite: %d documents", len(paths))
	if len(paths) == 1 {
		msg = "rewrite: " + filepath.Base(paths[0])
	}

	hash, err := gitops.CommitFiles(root, abs, msg, gitops.DefaultAuthor)
	if errors.Is(err, gitops.ErrNothingToCommit) {
		logger.Info("rewritten files unchanged, nothing committed")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Committed %d files (%s)\n", len(paths), hash)
	return nil
}
