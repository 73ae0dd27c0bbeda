package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/quill/internal/renderer/core"
)

// Terminal draws onto the controlling tty through a tcell.Screen.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal allocates the tcell screen. The tty is not touched until Init.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error         { return t.screen.Init() }
func (t *Terminal) Shutdown()           { t.screen.Fini() }
func (t *Terminal) Size() (int, int)    { return t.screen.Size() }
func (t *Terminal) Clear()              { t.screen.Clear() }
func (t *Terminal) Show()               { t.screen.Show() }
func (t *Terminal) ShowCursor(x, y int) { t.screen.ShowCursor(x, y) }
func (t *Terminal) HideCursor()         { t.screen.HideCursor() }
func (t *Terminal) PollEvent() Event    { return fromTcell(t.screen.PollEvent()) }

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	// Width 0 marks the right half of a wide rune, which tcell paints itself.
	if cell.Width == 0 {
		return
	}
	t.screen.SetContent(x, y, cell.Rune, nil, tcellStyle(cell.Style))
}

func (t *Terminal) SetCursorStyle(style CursorStyle) {
	switch style {
	case CursorHidden:
		t.screen.HideCursor()
	case CursorBar:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBar)
	default:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	}
}

// PostEvent only forwards key events; the queue drops them when full.
func (t *Terminal) PostEvent(ev Event) {
	if ev.Type != EventKey {
		return
	}
	k, ok := toTcellKey[ev.Key]
	if !ok {
		k = tcell.KeyRune
	}
	_ = t.screen.PostEvent(tcell.NewEventKey(k, ev.Rune, toTcellMods(ev.Mod)))
}

// keyPairs lists every named key once; both lookup tables derive from it.
var keyPairs = []struct {
	ours  Key
	tcell tcell.Key
}{
	{KeyEscape, tcell.KeyEscape},
	{KeyEnter, tcell.KeyEnter},
	{KeyTab, tcell.KeyTab},
	{KeyBacktab, tcell.KeyBacktab},
	{KeyBackspace, tcell.KeyBackspace2},
	{KeyDelete, tcell.KeyDelete},
	{KeyHome, tcell.KeyHome},
	{KeyEnd, tcell.KeyEnd},
	{KeyPageUp, tcell.KeyPgUp},
	{KeyPageDown, tcell.KeyPgDn},
	{KeyUp, tcell.KeyUp},
	{KeyDown, tcell.KeyDown},
	{KeyLeft, tcell.KeyLeft},
	{KeyRight, tcell.KeyRight},
}

var (
	toTcellKey   = make(map[Key]tcell.Key, len(keyPairs))
	fromTcellKey = make(map[tcell.Key]Key, len(keyPairs)+1)
)

func init() {
	for _, p := range keyPairs {
		toTcellKey[p.ours] = p.tcell
		fromTcellKey[p.tcell] = p.ours
	}
	// Some terminals send DEL (0x7f), others BS (0x08).
	fromTcellKey[tcell.KeyBackspace] = KeyBackspace
}

var modPairs = []struct {
	ours  ModMask
	tcell tcell.ModMask
}{
	{ModShift, tcell.ModShift},
	{ModCtrl, tcell.ModCtrl},
	{ModAlt, tcell.ModAlt},
	{ModMeta, tcell.ModMeta},
}

func fromTcellMods(m tcell.ModMask) ModMask {
	var out ModMask
	for _, p := range modPairs {
		if m&p.tcell != 0 {
			out |= p.ours
		}
	}
	return out
}

func toTcellMods(m ModMask) tcell.ModMask {
	var out tcell.ModMask
	for _, p := range modPairs {
		if m.Has(p.ours) {
			out |= p.tcell
		}
	}
	return out
}

// fromTcell translates one tcell event. tcell returns nil once the screen
// has been finalized.
func fromTcell(ev tcell.Event) Event {
	switch e := ev.(type) {
	case nil:
		return Event{Type: EventClosed}
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventKey:
		return fromTcellKeyEvent(e)
	}
	return Event{Type: EventNone}
}

func fromTcellKeyEvent(e *tcell.EventKey) Event {
	ev := Event{Type: EventKey, Mod: fromTcellMods(e.Modifiers())}
	k := e.Key()
	if k == tcell.KeyRune {
		ev.Key, ev.Rune = KeyRune, e.Rune()
		return ev
	}
	if named, ok := fromTcellKey[k]; ok {
		ev.Key = named
		return ev
	}
	// C-a..C-z arrive as control codes; report them as the letter plus Ctrl.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		ev.Key, ev.Rune = KeyRune, 'a'+rune(k-tcell.KeyCtrlA)
		ev.Mod |= ModCtrl
	}
	return ev
}

func tcellStyle(s core.Style) tcell.Style {
	st := tcell.StyleDefault
	if !s.Foreground.IsDefault() {
		st = st.Foreground(tcellColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		st = st.Background(tcellColor(s.Background))
	}
	return st.
		Bold(s.Attributes.Has(core.AttrBold)).
		Dim(s.Attributes.Has(core.AttrDim)).
		Underline(s.Attributes.Has(core.AttrUnderline)).
		Reverse(s.Attributes.Has(core.AttrReverse))
}

func tcellColor(c core.Color) tcell.Color {
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
