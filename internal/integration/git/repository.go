package git

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultRemote is the remote used for web URLs.
const DefaultRemote = "origin"

// Repository is a git working tree.
type Repository struct {
	path   string
	gitDir string
}

// Discover finds the repository containing path.
func Discover(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}

	current := absPath
	for {
		if gitDir, ok := resolveGitDir(current); ok {
			return &Repository{path: current, gitDir: gitDir}, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return nil, ErrNotRepository
		}
		current = parent
	}
}

// resolveGitDir returns the git directory of a working tree root. .git can
// be a directory or a "gitdir:" file for worktrees.
func resolveGitDir(root string) (string, bool) {
	gitDir := filepath.Join(root, ".git")
	info, err := os.Stat(gitDir)
	if err != nil {
		return "", false
	}
	if info.IsDir() {
		return gitDir, true
	}

	content, err := os.ReadFile(gitDir)
	if err != nil || !bytes.HasPrefix(content, []byte("gitdir:")) {
		return "", false
	}
	dir := strings.TrimSpace(string(content[len("gitdir:"):]))
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	return dir, true
}

// Path returns the repository root path.
func (r *Repository) Path() string {
	return r.path
}

// Branch returns the checked out branch name, or the short commit hash
// when HEAD is detached.
func (r *Repository) Branch() (string, error) {
	content, err := os.ReadFile(filepath.Join(r.gitDir, "HEAD"))
	if err != nil {
		return "", fmt.Errorf("read HEAD: %w", err)
	}
	content = bytes.TrimSpace(content)

	if ref, ok := bytes.CutPrefix(content, []byte("ref: ")); ok {
		return strings.TrimPrefix(string(ref), "refs/heads/"), nil
	}
	hash := string(content)
	if len(hash) > 7 {
		hash = hash[:7]
	}
	return hash, nil
}

// HeadCommit returns the full hash HEAD points at.
func (r *Repository) HeadCommit() (string, error) {
	out, err := r.git("rev-parse", "--verify", "--quiet", "HEAD")
	if err != nil {
		return "", ErrNoHead
	}
	return strings.TrimSpace(out), nil
}

// RemoteURL returns the configured fetch URL of a remote.
func (r *Repository) RemoteURL(name string) (string, error) {
	out, err := r.git("remote", "get-url", name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrRemoteNotFound, name)
	}
	return strings.TrimSpace(out), nil
}

// RelativePath returns path relative to the repository root, with forward
// slashes.
func (r *Repository) RelativePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	root, err := filepath.EvalSymlinks(r.path)
	if err != nil {
		root = r.path
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.New("path outside repository")
	}
	return filepath.ToSlash(rel), nil
}

// FileURL returns the web URL of lines first..last (1-based, inclusive) of
// a file at the current HEAD commit on the default remote.
func (r *Repository) FileURL(path string, first, last int) (string, error) {
	remote, err := r.RemoteURL(DefaultRemote)
	if err != nil {
		return "", err
	}
	base, err := WebURL(remote)
	if err != nil {
		return "", err
	}
	commit, err := r.HeadCommit()
	if err != nil {
		return "", err
	}
	rel, err := r.RelativePath(path)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/blob/%s/%s#L%d", base, commit, rel, first)
	if last > first {
		url += fmt.Sprintf("-L%d", last)
	}
	return url, nil
}

// WebURL converts a remote URL to its https form, dropping credentials
// and any ".git" suffix. It accepts scp-like ssh remotes
// (git@host:owner/repo.git) and ssh://, git:// and http(s):// URLs.
func WebURL(remote string) (string, error) {
	remote = strings.TrimSpace(remote)
	var host, path string

	if scheme, rest, ok := strings.Cut(remote, "://"); ok {
		switch scheme {
		case "ssh", "git", "http", "https":
		default:
			return "", fmt.Errorf("%w: %s", ErrUnsupportedRemote, remote)
		}
		host, path, ok = strings.Cut(rest, "/")
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedRemote, remote)
		}
		if _, h, found := strings.Cut(host, "@"); found {
			host = h
		}
		if scheme == "ssh" || scheme == "git" {
			if h, _, found := strings.Cut(host, ":"); found {
				host = h
			}
		}
	} else {
		at := strings.Index(remote, "@")
		colon := strings.Index(remote, ":")
		if colon < 0 || colon < at {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedRemote, remote)
		}
		host, path = remote[at+1:colon], remote[colon+1:]
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	if host == "" || path == "" {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedRemote, remote)
	}
	return "https://" + host + "/" + path, nil
}

// git runs a git command in the repository root.
func (r *Repository) git(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.path

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
