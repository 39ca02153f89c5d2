// Package gitops records rewritten documents in the surrounding git repository.
package gitops

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNothingToCommit is returned when none of the paths changed.
var ErrNothingToCommit = errors.New("nothing to commit")

// Author identifies who commits.
type Author struct {
	Name  string
	Email string
}

// DefaultAuthor is used when the caller has no better identity.
var DefaultAuthor = Author{Name: "acjournal", Email: "acjournal@localhost"}

func (a Author) String() string {
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

func (a Author) env() []string {
	return append(os.Environ(),
		"GIT_AUTHOR_NAME="+a.Name,
		"GIT_AUTHOR_EMAIL="+a.Email,
		"GIT_COMMITTER_NAME="+a.Name,
		"GIT_COMMITTER_EMAIL="+a.Email,
	)
}

func git(dir string, env []string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %s: %w", args[0], strings.TrimSpace(string(out)), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Init initializes a new git repository at dir.
func Init(dir string) error {
	_, err := git(dir, nil, "init", "-q")
	return err
}

// Root returns the top-level directory of the repository containing dir.
func Root(dir string) (string, error) {
	return git(dir, nil, "rev-parse", "--show-toplevel")
}

// IsRepo reports whether dir is inside a git repository.
func IsRepo(dir string) bool {
	_, err := Root(dir)
	return err == nil
}

// CommitFiles stages and commits only the given paths. Returns the short
// commit hash, or ErrNothingToCommit when the paths are unchanged.
func CommitFiles(dir string, paths []string, message string, author Author) (string, error) {
	if len(paths) == 0 {
		return "", ErrNothingToCommit
	}
	env := author.env()

	rel := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) {
			r, err := filepath.Rel(dir, p)
			if err != nil {
				return "", fmt.Errorf("resolving %s: %w", p, err)
			}
			p = r
		}
		rel[i] = p
	}

	if _, err := git(dir, env, append([]string{"add", "--"}, rel...)...); err != nil {
		return "", err
	}

	// diff --quiet exits 1 when something is staged.
	diff := exec.Command("git", append([]string{"diff", "--cached", "--quiet", "--"}, rel...)...)
	diff.Dir = dir
	if err := diff.Run(); err == nil {
		return "", ErrNothingToCommit
	}

	args := append([]string{"commit", "-q", "-m", message, "--author", author.String(), "--"}, rel...)
	if _, err := git(dir, env, args...); err != nil {
		return "", err
	}
	return git(dir, env, "rev-parse", "--short", "HEAD")
}
