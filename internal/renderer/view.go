package renderer

import (
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/renderer/backend"
	"github.com/dshills/quill/internal/renderer/core"
	"github.com/dshills/quill/internal/renderer/gutter"
	"github.com/dshills/quill/internal/renderer/highlight"
	"github.com/dshills/quill/internal/renderer/statusline"
)

// Options configures drawing.
type Options struct {
	// TabWidth is the number of columns a tab stop spans.
	TabWidth int

	// LineLengthGuide is the content column that gets the guide
	// background. Zero disables the guide.
	LineLengthGuide int
}

// DefaultOptions returns default drawing options.
func DefaultOptions() Options {
	return Options{
		TabWidth:        4,
		LineLengthGuide: 80,
	}
}

// TagStyle is the style of jump tag labels.
var TagStyle = core.DefaultStyle().WithForeground(core.ColorRed).Bold()

// View draws frames onto a backend.
type View struct {
	backend backend.Backend
	theme   *highlight.Theme
	opts    Options
}

// NewView creates a view drawing onto b.
func NewView(b backend.Backend, theme *highlight.Theme, opts Options) *View {
	if theme == nil {
		theme = highlight.NewTheme(highlight.DefaultThemeName)
	}
	if opts.TabWidth <= 0 {
		opts.TabWidth = DefaultOptions().TabWidth
	}
	return &View{backend: b, theme: theme, opts: opts}
}

// Size returns the backend dimensions.
func (v *View) Size() (width, height int) {
	return v.backend.Size()
}

// ContentHeight returns the rows available for buffer content; the last
// row belongs to the status line.
func (v *View) ContentHeight() int {
	_, h := v.backend.Size()
	if h <= 1 {
		return 1
	}
	return h - 1
}

// Theme returns the theme used for token styles.
func (v *View) Theme() *highlight.Theme {
	return v.theme
}

// Draw paints f and flushes it to the backend.
func (v *View) Draw(f Frame) {
	width, height := v.backend.Size()
	v.backend.Clear()

	var cursor *core.ScreenPos
	if f.Buffer != nil {
		cols := v.drawBuffer(f.Buffer, width, v.ContentHeight())
		v.drawTags(f.Tags, cols, width)
		if c := f.Buffer.Cursor; c != nil {
			if col, ok := cols[*c]; ok {
				cursor = &core.ScreenPos{Row: c.Line, Col: col}
			}
		}
	}

	for _, o := range f.Overlays {
		v.drawRow(o.Row, o.Content, o.Style, width)
	}

	if height > 0 && len(f.Status) > 0 {
		row := height - 1
		for x, cell := range statusline.Render(f.Status, width) {
			v.backend.SetCell(x, row, cell)
		}
	}

	if f.Cursor != nil {
		cursor = f.Cursor
	}
	if cursor != nil && f.CursorStyle != backend.CursorHidden {
		v.backend.SetCursorStyle(f.CursorStyle)
		v.backend.ShowCursor(cursor.Col, cursor.Row)
	} else {
		v.backend.HideCursor()
	}

	v.backend.Show()
}

// drawBuffer paints the gutter and tokens. It returns the screen column of
// every drawn window position, including line ends.
func (v *View) drawBuffer(data *BufferData, width, height int) map[buffer.Position]int {
	cols := make(map[buffer.Position]int)
	current := -1
	if data.Cursor != nil {
		current = data.Cursor.Line
	}

	for row := 0; row < height; row++ {
		v.drawGutter(data, row, row == current, width)
	}

	row, offset, col := 0, 0, data.GutterWidth
	for _, tok := range data.Tokens {
		base := v.theme.StyleFor(tok.Type)
		for _, r := range tok.Lexeme {
			if row >= height {
				return cols
			}
			pos := buffer.Position{Line: row, Offset: offset}
			cols[pos] = col

			if r == '\n' {
				row++
				offset = 0
				col = data.GutterWidth
				continue
			}

			style := base.WithBackground(v.background(row == current, col-data.GutterWidth))
			if data.Highlight != nil && data.Highlight.Includes(pos) {
				style = style.Reverse()
			}

			if r == '\t' {
				n := v.opts.TabWidth - (col-data.GutterWidth)%v.opts.TabWidth
				for i := 0; i < n; i++ {
					v.setCell(col+i, row, ' ', style, width)
				}
				col += n
			} else {
				col += v.setCell(col, row, r, style, width)
			}
			offset++
		}
	}
	if row < height {
		cols[buffer.Position{Line: row, Offset: offset}] = col
	}
	return cols
}

// drawGutter paints the line number and row background for one row.
func (v *View) drawGutter(data *BufferData, row int, current bool, width int) {
	for x := data.GutterWidth; x < width; x++ {
		bg := v.background(current, x-data.GutterWidth)
		if !bg.IsDefault() {
			v.backend.SetCell(x, row, core.NewStyledCell(' ', core.DefaultStyle().WithBackground(bg)))
		}
	}

	line := row + data.ScrollOffset
	if line >= data.LineCount {
		return
	}
	style := core.DefaultStyle()
	if current {
		style = style.WithBackground(v.theme.LineHighlight).Bold()
	}
	x := 0
	for _, r := range gutter.Format(line+1, data.GutterWidth) {
		x += v.setCell(x, row, r, style, width)
	}
}

// background returns the background of content column col.
func (v *View) background(current bool, col int) core.Color {
	if current {
		return v.theme.LineHighlight
	}
	if v.opts.LineLengthGuide > 0 && col == v.opts.LineLengthGuide {
		return v.theme.Guide
	}
	return core.ColorDefault
}

func (v *View) drawTags(tags []JumpTag, cols map[buffer.Position]int, width int) {
	for _, tag := range tags {
		col, ok := cols[tag.Position]
		if !ok {
			continue
		}
		for _, r := range tag.Label {
			col += v.setCell(col, tag.Position.Line, r, TagStyle, width)
		}
	}
}

// drawRow fills a full row with style and writes content from the left.
func (v *View) drawRow(row int, content string, style core.Style, width int) {
	col := 0
	for _, r := range content {
		col += v.setCell(col, row, r, style, width)
	}
	for ; col < width; col++ {
		v.backend.SetCell(col, row, core.NewStyledCell(' ', style))
	}
}

// setCell writes r at (col, row) unless it would cross the right edge and
// returns the columns it occupies.
func (v *View) setCell(col, row int, r rune, style core.Style, width int) int {
	cell := core.NewStyledCell(r, style)
	if col+cell.Width > width {
		return cell.Width
	}
	v.backend.SetCell(col, row, cell)
	if cell.Width == 2 {
		v.backend.SetCell(col+1, row, core.Cell{Width: 0, Style: style})
	}
	return cell.Width
}
