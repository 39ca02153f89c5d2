package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/acjournal/internal/accounts"
	"github.com/cleared-dev/acjournal/internal/config"
	"github.com/cleared-dev/acjournal/internal/gitops"
)

const equivalenceFile = "accounts.csv"

const sampleDocument = "# Sample\n\n" +
	"```acj\n" +
	"2024-01-01,Purchase of goods\n" +
	"600-1000\n" +
	"472-210\n" +
	"---\n" +
	"400-1210\n" +
	"```\n\n" +
	"```acl\n" +
	"570\n" +
	"1000\n" +
	"---\n" +
	"250\n" +
	"```\n"

func newInitCommand(a *app) *cobra.Command {
	var withGit bool
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write default settings and account table to a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, a.locale, withGit, force)
		},
	}

	cmd.Flags().BoolVar(&withGit, "git", false, "initialize a git repository and commit the files")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")

	return cmd
}

func runInit(out io.Writer, dir, locale string, withGit, force bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", cfgPath, err)
	}

	// Write acjournal.yaml.
	cfg := config.Default()
	cfg.AccountEquivalence = equivalenceFile
	if locale != "" {
		if err := cfg.SetLocale(locale); err != nil {
			return err
		}
	}
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the built-in account table so it can be edited.
	if err := accounts.SaveFile(filepath.Join(dir, equivalenceFile), accounts.DefaultTable()); err != nil {
		return fmt.Errorf("writing account table: %w", err)
	}

	samplePath := filepath.Join(dir, "sample.md")
	if err := os.WriteFile(samplePath, []byte(sampleDocument), 0o644); err != nil {
		return fmt.Errorf("writing sample: %w", err)
	}

	if !withGit {
		fmt.Fprintf(out, "Initialized acjournal settings at %s\n", dir)
		return nil
	}

	if !gitops.IsRepo(dir) {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
	}
	hash, err := gitops.CommitFiles(dir, []string{config.FileName, equivalenceFile, "sample.md"}, "init: acjournal settings", gitops.DefaultAuthor)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Fprintf(out, "Initialized acjournal settings at %s (%s)\n", dir, hash)
	return nil
}
