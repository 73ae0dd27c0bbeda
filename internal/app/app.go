// Package app holds the editor's state: the open buffers, the current
// mode, the view and its scroll offsets, and the services commands use.
package app

import (
	"errors"
	"os"

	"github.com/dshills/quill/internal/config"
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/input/mode"
	"github.com/dshills/quill/internal/integration/git"
	"github.com/dshills/quill/internal/project/index"
	"github.com/dshills/quill/internal/project/workspace"
	"github.com/dshills/quill/internal/renderer"
	"github.com/dshills/quill/internal/renderer/backend"
	"github.com/dshills/quill/internal/renderer/highlight"
	"github.com/dshills/quill/internal/renderer/viewport"
)

// Application is the state shared by commands and presenters.
// It is used from a single goroutine.
type Application struct {
	Mode      mode.Mode
	Workspace *workspace.Workspace
	View      *renderer.View
	Region    *viewport.Region
	Tokenizer *highlight.Tokenizer
	Clipboard *Clipboard
	Config    *config.Config
	Logger    *Logger

	// Repository is nil outside a git repository.
	Repository *git.Repository

	// SearchQuery is the last query accepted in search mode.
	SearchQuery string

	index *index.Index
}

// Options configures the application.
type Options struct {
	// Files are opened in order; the last one becomes current.
	Files []string

	// WorkingDir defaults to the process working directory.
	WorkingDir string

	Config    *config.Config
	Logger    *Logger
	Backend   backend.Backend
	Clipboard SystemClipboard
}

// New creates the application. Failing to determine the working
// directory or to open one of the files is fatal; not being inside a git
// repository is not.
func New(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger()
	}
	b := opts.Backend
	if b == nil {
		b = backend.NewNullBackend(80, 24)
	}

	dir := opts.WorkingDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, NewOperationError("read", "working directory", err)
		}
		dir = wd
	}

	theme := highlight.NewTheme(cfg.Theme)
	view := renderer.NewView(b, theme, renderer.Options{
		TabWidth:        cfg.TabWidth,
		LineLengthGuide: cfg.LineLengthGuide,
	})

	a := &Application{
		Mode:      &mode.Normal{},
		Workspace: workspace.New(dir),
		View:      view,
		Region:    viewport.NewRegion(view.ContentHeight()),
		Tokenizer: highlight.NewTokenizer(),
		Clipboard: NewClipboard(opts.Clipboard),
		Config:    cfg,
		Logger:    logger,
	}
	a.Workspace.OnClose(func(buf *buffer.Buffer) {
		a.Region.Forget(buf.ID)
	})

	for _, path := range opts.Files {
		buf, err := a.Workspace.Open(path)
		if err != nil {
			return nil, NewOperationError("open", path, err)
		}
		logger.Info("opened buffer", "path", buf.Path(), "lines", buf.LineCount())
	}

	repo, err := git.Discover(dir)
	switch {
	case err == nil:
		a.Repository = repo
		logger.Debug("repository found", "path", repo.Path())
	case errors.Is(err, git.ErrNotRepository):
		// Not being in a repository is normal.
	default:
		logger.Warn("repository discovery failed", "error", err)
	}

	return a, nil
}

// CurrentBuffer returns the current buffer, or nil when none is open.
func (a *Application) CurrentBuffer() *buffer.Buffer {
	return a.Workspace.Current()
}

// SwitchMode replaces the current mode.
func (a *Application) SwitchMode(m mode.Mode) {
	a.Logger.Debug("mode changed", "from", a.Mode.Name(), "to", m.Name())
	a.Mode = m
}

// Exited reports whether the exit mode has been entered.
func (a *Application) Exited() bool {
	_, ok := a.Mode.(*mode.Exit)
	return ok
}

// Resize fits the scrollable region to the view.
func (a *Application) Resize() {
	a.Region.SetHeight(a.View.ContentHeight())
}

// ScrollToCursor keeps the current buffer's cursor inside the window.
func (a *Application) ScrollToCursor() {
	if buf := a.CurrentBuffer(); buf != nil {
		a.Region.ScrollToCursor(buf.ID, buf.Cursor().Line())
	}
}

// Index returns the project path index, building it on first use.
// A partial index is kept when the file limit is reached.
func (a *Application) Index() *index.Index {
	if a.index == nil {
		ix := index.New(a.Workspace.Root())
		if err := ix.Build(); err != nil {
			a.Logger.Warn("project index incomplete", "root", ix.Root(), "error", err)
		}
		a.index = ix
	}
	return a.index
}

// RefreshIndex drops the path index so the next use rebuilds it.
func (a *Application) RefreshIndex() {
	a.index = nil
}
