package git

import "errors"

var (
	// ErrNotRepository is returned by Discover when no enclosing directory
	// holds a .git. Callers treat it as "no repository", not a failure.
	ErrNotRepository = errors.New("not a git repository")

	// ErrNoHead: the branch cannot be named before the first commit.
	ErrNoHead = errors.New("repository has no HEAD")

	ErrRemoteNotFound    = errors.New("remote not found")
	ErrUnsupportedRemote = errors.New("remote URL has no web form")
)
