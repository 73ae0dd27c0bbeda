// Package editor runs the main loop: present the current mode, wait for a
// key, dispatch it, and run the resulting command.
package editor

import (
	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/input"
	"github.com/dshills/quill/internal/input/key"
	"github.com/dshills/quill/internal/presenter"
	"github.com/dshills/quill/internal/renderer/backend"
)

// Editor drives an application from a backend's events.
type Editor struct {
	app        *app.Application
	backend    backend.Backend
	dispatcher *input.Dispatcher
}

// New creates an editor. b must be the backend the application draws on.
func New(a *app.Application, b backend.Backend, d *input.Dispatcher) *Editor {
	return &Editor{app: a, backend: b, dispatcher: d}
}

// Run loops until a command enters the exit mode, returning app.ErrQuit,
// or the backend closes, returning nil.
func (e *Editor) Run() error {
	log := e.app.Logger.WithComponent("editor")
	log.Info("main loop started")

	for {
		e.app.View.Draw(presenter.Present(e.app))

		ev := e.backend.PollEvent()
		switch ev.Type {
		case backend.EventClosed:
			log.Info("backend closed")
			return nil

		case backend.EventResize:
			e.app.Resize()
			e.app.ScrollToCursor()

		case backend.EventKey:
			kev := convertKeyEvent(ev)
			cmd := e.dispatcher.Dispatch(e.app.Mode, kev)
			if cmd == nil {
				continue
			}
			if action, ok := e.dispatcher.Action(e.app.Mode, kev); ok {
				log.Debug("dispatch", "mode", e.app.Mode.Name(), "key", kev.String(), "action", action)
			}
			cmd(e.app)

			if e.app.Exited() {
				log.Info("exit requested")
				return app.ErrQuit
			}
		}
	}
}

// keyMap maps backend keys to input keys.
var keyMap = map[backend.Key]key.Key{
	backend.KeyEscape:    key.KeyEscape,
	backend.KeyEnter:     key.KeyEnter,
	backend.KeyTab:       key.KeyTab,
	backend.KeyBackspace: key.KeyBackspace,
	backend.KeyDelete:    key.KeyDelete,
	backend.KeyHome:      key.KeyHome,
	backend.KeyEnd:       key.KeyEnd,
	backend.KeyPageUp:    key.KeyPageUp,
	backend.KeyPageDown:  key.KeyPageDown,
	backend.KeyUp:        key.KeyUp,
	backend.KeyDown:      key.KeyDown,
	backend.KeyLeft:      key.KeyLeft,
	backend.KeyRight:     key.KeyRight,
}

// convertKeyEvent converts a backend key event to an input key event.
func convertKeyEvent(ev backend.Event) key.Event {
	mods := key.ModNone
	if ev.Mod.Has(backend.ModCtrl) {
		mods = mods.With(key.ModCtrl)
	}
	if ev.Mod.Has(backend.ModAlt) {
		mods = mods.With(key.ModAlt)
	}
	if ev.Mod.Has(backend.ModShift) {
		mods = mods.With(key.ModShift)
	}
	if ev.Mod.Has(backend.ModMeta) {
		mods = mods.With(key.ModMeta)
	}

	switch ev.Key {
	case backend.KeyRune:
		return key.NewRuneEvent(ev.Rune, mods)
	case backend.KeyBacktab:
		return key.NewSpecialEvent(key.KeyTab, mods.With(key.ModShift))
	}
	if k, ok := keyMap[ev.Key]; ok {
		return key.NewSpecialEvent(k, mods)
	}
	return key.NewSpecialEvent(key.KeyNone, mods)
}
