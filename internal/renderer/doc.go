// Package renderer paints frames onto a terminal backend.
//
// A Frame is assembled by the presenter from application state and holds
// everything the View needs: visible tokens, the relative cursor and
// highlight, jump tag overlays, full-width overlay lines and the status
// line segments. The View never reads the buffer itself.
//
//	┌─────────────────────────────────────────┐
//	│        Presenter (per mode)             │
//	├─────────────────────────────────────────┤
//	│  Frame │ Gutter │ StatusLine │ Theme    │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell) │ NullBackend         │
//	└─────────────────────────────────────────┘
package renderer
