// Package commands implements the editor's named commands.
//
// A Command is a plain function over the application. Commands never
// fail: a missing buffer or a mode the command does not apply to makes it
// a no-op, and errors worth knowing about (a failed save) are logged.
// Commands compose by calling each other.
//
// Commands are looked up by name through Catalog, using dotted names
// grouped by namespace, e.g. "cursor.move_down" or "buffer.save".
package commands
