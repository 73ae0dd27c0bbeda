// Package history provides undo/redo bookkeeping for buffer edits.
//
// Every edit is recorded as a Change that knows how to apply and revert
// itself. Changes recorded between BeginGroup and EndGroup form one undo unit,
// so a compound editing command is undone in a single step.
//
//	h := history.New(0)
//	h.BeginGroup()
//	h.Record(change1)
//	h.Record(change2)
//	h.EndGroup()
//	h.Undo() // reverts change2, then change1
package history
