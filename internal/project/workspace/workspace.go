// Package workspace tracks the open buffers of a project and which one is
// current.
package workspace

import (
	"path/filepath"
	"strings"

	"github.com/dshills/quill/internal/engine/buffer"
)

// Workspace is an ordered set of open buffers rooted at a directory.
type Workspace struct {
	root    string
	buffers []*buffer.Buffer
	current int

	// Callbacks
	onClose []func(*buffer.Buffer)
}

// New creates an empty workspace rooted at root.
func New(root string) *Workspace {
	return &Workspace{root: root}
}

// Root returns the workspace directory.
func (w *Workspace) Root() string {
	return w.root
}

// Len returns the number of open buffers.
func (w *Workspace) Len() int {
	return len(w.buffers)
}

// Current returns the current buffer, or nil when nothing is open.
func (w *Workspace) Current() *buffer.Buffer {
	if len(w.buffers) == 0 {
		return nil
	}
	return w.buffers[w.current]
}

// Add appends buf and makes it current. A buffer with the same path that
// is already open is selected instead and returned.
func (w *Workspace) Add(buf *buffer.Buffer) *buffer.Buffer {
	if buf.Path() != "" {
		if i := w.indexOf(buf.Path()); i >= 0 {
			w.current = i
			return w.buffers[i]
		}
	}
	w.buffers = append(w.buffers, buf)
	w.current = len(w.buffers) - 1
	return buf
}

// Open opens path, relative to the root unless absolute, and makes it
// current. Already open files are selected rather than read again.
func (w *Workspace) Open(path string) (*buffer.Buffer, error) {
	path = w.Resolve(path)
	if i := w.indexOf(path); i >= 0 {
		w.current = i
		return w.buffers[i], nil
	}

	buf, err := buffer.Open(path)
	if err != nil {
		return nil, err
	}
	return w.Add(buf), nil
}

// Resolve returns path as a clean absolute path under the root.
func (w *Workspace) Resolve(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(w.root, path)
	}
	return filepath.Clean(path)
}

// RelativePath returns path relative to the root when it lies inside it.
func (w *Workspace) RelativePath(path string) string {
	if path == "" {
		return ""
	}
	rel, err := filepath.Rel(w.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

// Next selects the following buffer, wrapping around.
func (w *Workspace) Next() {
	if len(w.buffers) == 0 {
		return
	}
	w.current = (w.current + 1) % len(w.buffers)
}

// Previous selects the preceding buffer, wrapping around.
func (w *Workspace) Previous() {
	if len(w.buffers) == 0 {
		return
	}
	w.current = (w.current - 1 + len(w.buffers)) % len(w.buffers)
}

// CloseCurrent removes the current buffer and selects its predecessor.
// Close callbacks run with the removed buffer.
func (w *Workspace) CloseCurrent() {
	buf := w.Current()
	if buf == nil {
		return
	}

	w.buffers = append(w.buffers[:w.current], w.buffers[w.current+1:]...)
	if w.current > 0 {
		w.current--
	}

	for _, fn := range w.onClose {
		fn(buf)
	}
}

// OnClose registers a callback for closed buffers.
func (w *Workspace) OnClose(fn func(*buffer.Buffer)) {
	w.onClose = append(w.onClose, fn)
}

func (w *Workspace) indexOf(path string) int {
	path = w.Resolve(path)
	for i, b := range w.buffers {
		if b.Path() != "" && w.Resolve(b.Path()) == path {
			return i
		}
	}
	return -1
}
