// Package mode defines the editor's modes and the transient state each one
// carries.
//
// Mode is a closed set: Normal, Insert, Jump, LineJump, SymbolJump, Open,
// Select, SelectLine, SearchInsert, and Exit. Exactly one mode is active at a
// time. Switching modes replaces the value entirely, so per-mode state (a
// search query, a selection anchor, jump tags) lives only as long as its mode.
//
// Only Normal and Insert permit buffer text changes; the other modes may move
// the cursor but never edit. Exit ends the main loop.
package mode
