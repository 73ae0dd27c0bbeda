package presenter

import (
	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/input/mode"
	"github.com/dshills/quill/internal/renderer"
	"github.com/dshills/quill/internal/renderer/core"
	"github.com/dshills/quill/internal/renderer/statusline"
)

// InputStyle is the style of the prompt row in list modes.
var InputStyle = core.DefaultStyle().
	WithForeground(core.ColorBlack).
	WithBackground(core.ColorWhite).
	Bold()

// presentPrompt shows input typed into the status line after the mode
// label, with the cursor at its end.
func presentPrompt(a *app.Application, m mode.Mode, input string) renderer.Frame {
	label := statusline.ModeSegment(m.DisplayName())
	prompt := statusline.Segment{Content: " " + input, Style: statusline.BarStyle}

	_, height := a.View.Size()
	return renderer.Frame{
		Buffer: bufferData(a, nil),
		Status: []statusline.Segment{label, prompt},
		Cursor: &core.ScreenPos{
			Row: height - 1,
			Col: core.StringWidth(label.Content) + core.StringWidth(prompt.Content),
		},
		CursorStyle: cursorStyle(m),
	}
}

// presentList draws a result list over the top rows with the input on the
// row below it. The selected entry uses the line highlight background.
func presentList(a *app.Application, m mode.Mode, entries []string, selected int, input string) renderer.Frame {
	f := presentEditing(a, m)

	itemStyle := core.DefaultStyle()
	selectedStyle := itemStyle.WithBackground(a.View.Theme().LineHighlight)
	for row := 0; row < mode.MaxResults; row++ {
		var content string
		style := itemStyle
		if row < len(entries) {
			content = entries[row]
			if row == selected {
				style = selectedStyle
			}
		}
		f.Overlays = append(f.Overlays, renderer.OverlayLine{Row: row, Content: content, Style: style})
	}

	f.Overlays = append(f.Overlays, renderer.OverlayLine{Row: mode.MaxResults, Content: input, Style: InputStyle})
	f.Cursor = &core.ScreenPos{Row: mode.MaxResults, Col: core.StringWidth(input)}

	// The list covers the buffer cursor and selection.
	if f.Buffer != nil {
		f.Buffer.Cursor = nil
		f.Buffer.Highlight = nil
	}
	return f
}

func presentOpen(a *app.Application, m *mode.Open) renderer.Frame {
	return presentList(a, m, m.Results.Items(), m.Results.Index(), m.Input)
}

func presentSymbolJump(a *app.Application, m *mode.SymbolJump) renderer.Frame {
	symbols := m.Results.Items()
	entries := make([]string, len(symbols))
	for i, s := range symbols {
		entries[i] = s.Name
	}
	return presentList(a, m, entries, m.Results.Index(), m.Input)
}
