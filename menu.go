package ssd1306gfx

import (
	"periph.io/x/devices/v3/ssd1306gfx/font"
)

// Menu is a scrollable vertical list of selectable text items with a
// highlighted selection, rendered inside a rectangular frame.
//
// The item strings are referenced, not copied; the caller must keep the
// slice alive and unmodified for the menu's lifetime. All navigation and
// rendering keep the invariant that the selection stays within the visible
// window.
type Menu struct {
	items          []string
	selection      int
	oldSelection   int // As of the last render
	scrollPosition int // Index of the first visible item
	oldScroll      int // As of the last render
}

// NewMenu returns a menu over the given items with the first item selected.
func NewMenu(items []string) *Menu {
	return &Menu{items: items}
}

// Selection returns the index of the currently selected item.
func (m *Menu) Selection() int {
	return m.selection
}

// scrollFor returns the scroll position that keeps the selection within a
// window of rows visible items, moving the window as little as possible.
func (m *Menu) scrollFor(rows int) int {
	if m.selection < m.scrollPosition {
		return m.selection
	}
	if m.selection-m.scrollPosition > rows-1 {
		return m.selection - rows + 1
	}
	return m.scrollPosition
}

// menuRows returns how many item rows fit between the frame's top and
// bottom page rows.
func (d *Dev) menuRows() int {
	rows := d.pages - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

// MenuDown moves the selection to the next item, scrolling the window down
// when the selection would leave it and wrapping from the last item to the
// first (which rewinds the scroll to the top).
func (d *Dev) MenuDown(m *Menu) {
	if len(m.items) == 0 {
		return
	}
	if m.selection < len(m.items)-1 {
		m.selection++
	} else {
		m.selection = 0
	}
	m.scrollPosition = m.scrollFor(d.menuRows())
}

// MenuUp moves the selection to the previous item, scrolling the window up
// when the selection would leave it and wrapping from the first item to the
// last (which scrolls to show the tail of the list).
func (d *Dev) MenuUp(m *Menu) {
	if len(m.items) == 0 {
		return
	}
	if m.selection > 0 {
		m.selection--
	} else {
		m.selection = len(m.items) - 1
	}
	m.scrollPosition = m.scrollFor(d.menuRows())
}

// drawMenuItem renders one item row, highlighting the selected row by
// printing it in Negative mode so the field erase fills the row with a lit
// bar around inverted glyphs.
func (d *Dev) drawMenuItem(m *Menu, index int) error {
	if index == m.selection {
		d.SetDrawMode(Negative)
	} else {
		d.SetDrawMode(Positive)
	}
	_, err := d.PrintFixedField(8, (index-m.scrollPosition+1)*8, m.items[index],
		font.StyleNormal, d.rect.Dx()-8)
	d.SetDrawMode(Positive)
	return err
}

// ShowMenu fully redraws the menu: frame, every visible row, and the
// selection highlight. The scroll position is recomputed first so a
// selection mutated since the last render is brought back into view.
func (d *Dev) ShowMenu(m *Menu) error {
	saved := d.mode
	d.SetDrawMode(Positive)
	defer d.SetDrawMode(saved)

	if err := d.DrawRect(4, 4, d.rect.Dx()-5, d.rect.Dy()-5); err != nil {
		return err
	}
	rows := d.menuRows()
	m.scrollPosition = m.scrollFor(rows)
	last := m.scrollPosition + rows
	if last > len(m.items) {
		last = len(m.items)
	}
	for i := m.scrollPosition; i < last; i++ {
		if err := d.drawMenuItem(m, i); err != nil {
			return err
		}
	}
	m.oldSelection = m.selection
	m.oldScroll = m.scrollPosition
	return nil
}

// UpdateMenu redraws what changed since the last render: nothing when the
// selection is unchanged, the two affected rows when only the selection
// moved, or the whole menu (after clearing the display) when the window
// scrolled.
func (d *Dev) UpdateMenu(m *Menu) error {
	if m.selection == m.oldSelection {
		return nil
	}
	if m.scrollPosition != m.oldScroll {
		saved := d.mode
		d.SetDrawMode(Positive)
		if err := d.Clear(); err != nil {
			d.SetDrawMode(saved)
			return err
		}
		d.SetDrawMode(saved)
		return d.ShowMenu(m)
	}

	saved := d.mode
	d.SetDrawMode(Positive)
	defer d.SetDrawMode(saved)
	if err := d.drawMenuItem(m, m.oldSelection); err != nil {
		return err
	}
	if err := d.drawMenuItem(m, m.selection); err != nil {
		return err
	}
	m.oldSelection = m.selection
	return nil
}
