package commands

// Catalog returns every named command. Key tables and configuration
// refer to commands by these names.
func Catalog() map[string]Command {
	return map[string]Command{
		"application.exit":                         Exit,
		"application.switch_to_normal_mode":        SwitchToNormalMode,
		"application.switch_to_insert_mode":        SwitchToInsertMode,
		"application.switch_to_jump_mode":          SwitchToJumpMode,
		"application.switch_to_line_jump_mode":     SwitchToLineJumpMode,
		"application.switch_to_symbol_jump_mode":   SwitchToSymbolJumpMode,
		"application.switch_to_open_mode":          SwitchToOpenMode,
		"application.switch_to_select_mode":        SwitchToSelectMode,
		"application.switch_to_select_line_mode":   SwitchToSelectLineMode,
		"application.switch_to_search_insert_mode": SwitchToSearchInsertMode,

		"buffer.start_command_group": StartCommandGroup,
		"buffer.end_command_group":   EndCommandGroup,
		"buffer.insert_newline":      InsertNewline,
		"buffer.insert_tab":          InsertTab,
		"buffer.backspace":           Backspace,
		"buffer.delete":              Delete,
		"buffer.delete_line":         DeleteLine,
		"buffer.indent_line":         IndentLine,
		"buffer.outdent_line":        OutdentLine,
		"buffer.paste":               Paste,
		"buffer.undo":                Undo,
		"buffer.redo":                Redo,
		"buffer.save":                Save,
		"buffer.close":               Close,
		"buffer.reload":              Reload,

		"cursor.move_up":                         MoveUp,
		"cursor.move_down":                       MoveDown,
		"cursor.move_left":                       MoveLeft,
		"cursor.move_right":                      MoveRight,
		"cursor.move_to_start_of_line":           MoveToStartOfLine,
		"cursor.move_to_end_of_line":             MoveToEndOfLine,
		"cursor.move_to_first_line":              MoveToFirstLine,
		"cursor.move_to_last_line":               MoveToLastLine,
		"cursor.move_to_first_word_of_line":      MoveToFirstWordOfLine,
		"cursor.move_to_start_of_previous_token": MoveToStartOfPreviousToken,
		"cursor.move_to_start_of_next_token":     MoveToStartOfNextToken,
		"cursor.move_to_end_of_current_token":    MoveToEndOfCurrentToken,
		"cursor.append_to_current_token":         AppendToCurrentToken,
		"cursor.insert_at_end_of_line":           InsertAtEndOfLine,
		"cursor.insert_at_first_word_of_line":    InsertAtFirstWordOfLine,
		"cursor.insert_with_newline":             InsertWithNewline,
		"cursor.insert_with_newline_above":       InsertWithNewlineAbove,

		"selection.copy":            CopySelection,
		"selection.copy_and_delete": CopyAndDeleteSelection,
		"selection.change":          ChangeSelection,

		"view.scroll_up":        ScrollUp,
		"view.scroll_down":      ScrollDown,
		"view.scroll_to_cursor": ScrollToCursor,

		"workspace.next_buffer":     NextBuffer,
		"workspace.previous_buffer": PreviousBuffer,

		"open_mode.open":                 OpenSelectedPath,
		"open_mode.search":               OpenModeSearch,
		"open_mode.select_next_path":     SelectNextPath,
		"open_mode.select_previous_path": SelectPreviousPath,

		"jump_mode.cancel":                   CancelJump,
		"line_jump.accept":                   LineJumpAccept,
		"symbol_jump.accept":                 SymbolJumpAccept,
		"symbol_jump.search":                 SymbolJumpSearch,
		"symbol_jump.select_next_symbol":     SelectNextSymbol,
		"symbol_jump.select_previous_symbol": SelectPreviousSymbol,

		"search.accept":                 SearchAccept,
		"search.move_to_next_match":     MoveToNextMatch,
		"search.move_to_previous_match": MoveToPreviousMatch,

		"prompt.backspace": PromptBackspace,

		"git.copy_remote_url": CopyRemoteURL,
	}
}
