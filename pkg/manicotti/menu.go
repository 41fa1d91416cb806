package manicotti

import (
	"github.com/BrandonKowalski/manicotti/pkg/manicotti/constants"
	"github.com/BrandonKowalski/manicotti/pkg/manicotti/internal"
	"github.com/BrandonKowalski/manicotti/pkg/manicotti/navigation"
	"github.com/veandco/go-sdl2/sdl"
)

// MenuItem is a single selectable entry in a Menu.
type MenuItem struct {
	Text     string
	Metadata any // Caller data handed back through OnSelect
}

// Menu is a vertically scrolling list screen, the workhorse view for
// launcher-style applications. It satisfies View, so it can be pushed onto a
// Router directly, and an unconsumed B press falls through to the surface as
// a back gesture.
type Menu struct {
	title    string
	items    []MenuItem
	focused  int
	firstRow int

	// OnSelect is invoked when the user confirms the focused item.
	OnSelect func(index int, item MenuItem)
}

// NewMenu creates a menu screen with the given header title and items.
func NewMenu(title string, items []MenuItem) *Menu {
	return &Menu{title: title, items: items}
}

func (m *Menu) ToPresent() navigation.Screen { return m }
func (m *Menu) ScreenTitle() string          { return m.title }

// FocusedIndex returns the index of the currently focused item.
func (m *Menu) FocusedIndex() int {
	return m.focused
}

// SetFocusedIndex moves focus, clamped to the item range.
func (m *Menu) SetFocusedIndex(index int) {
	if len(m.items) == 0 {
		m.focused = 0
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(m.items) {
		index = len(m.items) - 1
	}
	m.focused = index
}

// HandleInput moves focus with up/down, wrapping at the ends, and confirms
// with A. B is left unconsumed so the surface treats it as back.
func (m *Menu) HandleInput(button constants.VirtualButton) bool {
	if len(m.items) == 0 {
		return false
	}

	switch button {
	case constants.VirtualButtonUp:
		m.focused--
		if m.focused < 0 {
			m.focused = len(m.items) - 1
		}
		return true
	case constants.VirtualButtonDown:
		m.focused++
		if m.focused >= len(m.items) {
			m.focused = 0
		}
		return true
	case constants.VirtualButtonA:
		if m.OnSelect != nil {
			m.OnSelect(m.focused, m.items[m.focused])
		}
		return true
	}
	return false
}

// Draw renders the visible window of items below the header chrome.
func (m *Menu) Draw(w *internal.Window) {
	font := internal.Fonts.MediumFont
	if font == nil || len(m.items) == 0 {
		return
	}

	theme := internal.GetTheme()
	rowHeight := int32(font.Height()) + 16
	top := constants.DefaultHeaderHeight + 8
	visible := int((w.GetHeight() - top) / rowHeight)
	if visible < 1 {
		visible = 1
	}

	// Keep the focused row inside the visible window.
	if m.focused < m.firstRow {
		m.firstRow = m.focused
	}
	if m.focused >= m.firstRow+visible {
		m.firstRow = m.focused - visible + 1
	}

	for row := 0; row < visible && m.firstRow+row < len(m.items); row++ {
		index := m.firstRow + row
		item := m.items[index]
		y := top + int32(row)*rowHeight
		color := theme.TextColor

		if index == m.focused {
			hl := theme.HighlightColor
			w.Renderer.SetDrawColor(hl.R, hl.G, hl.B, hl.A)
			w.Renderer.FillRect(&sdl.Rect{X: 8, Y: y, W: w.GetWidth() - 16, H: rowHeight})
			color = theme.HighlightedTextColor
		}

		internal.RenderTextAt(w.Renderer, font, item.Text, 24, y+8, color)
	}
}
