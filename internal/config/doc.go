// Package config loads editor settings.
//
// Settings come from three layers, later layers overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A user file, TOML or YAML by extension (DefaultPath when unset)
//  3. QUILL_* environment variables
//
// A missing user file is not an error. Unknown keys in a file are.
//
// Example TOML:
//
//	theme = "monokai"
//	tab_width = 4
//
//	[log]
//	level = "debug"
//	file = "/tmp/quill.log"
//
//	[keys.normal]
//	"C-s" = "buffer.save"
package config
