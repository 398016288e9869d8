package ssd1306gfx

// Sprite is a movable bitmap, 8 pixels tall, rendered directly to the
// display. Data holds one column byte per pixel of width (bit 0 = top).
//
// The display cannot be read back, so moving a sprite cleanly depends on
// the last-rendered position the sprite records: EraseTrace clears exactly
// the region the previous rendering covered that the current position no
// longer covers. DrawSprite keeps the record; use MoveSprite for the whole
// erase/move/redraw sequence.
//
// The rendered Y position snaps down to a page boundary, like all
// page-addressed blits.
type Sprite struct {
	X, Y int    // Current top-left position in pixels
	W    int    // Width in pixels; height is fixed at 8
	Data []byte // One column byte per pixel of width

	prevX, prevY int // Last-rendered position, updated by DrawSprite
}

// NewSprite returns a sprite at (x, y) with the given width and image data.
// The data is referenced, not copied. The new sprite has no prior trace:
// its last-rendered position starts at (x, y).
func NewSprite(x, y, w int, data []byte) *Sprite {
	return &Sprite{X: x, Y: y, W: w, Data: data, prevX: x, prevY: y}
}

// Replace swaps the sprite's image data. The new image must have the
// sprite's width; this is not checked here, but DrawSprite fails on a
// short buffer.
func (s *Sprite) Replace(data []byte) {
	s.Data = data
}

// DrawSprite blits the sprite at its current position and records that
// position as last-rendered for subsequent EraseTrace calls.
func (d *Dev) DrawSprite(s *Sprite) error {
	if err := d.DrawBuffer(s.X, s.Y>>3, s.W, 8, s.Data); err != nil {
		return err
	}
	s.prevX, s.prevY = s.X, s.Y
	return nil
}

// EraseSprite clears the 8-pixel-tall block at the sprite's current
// position.
func (d *Dev) EraseSprite(s *Sprite) error {
	return d.ClearBlock(s.X, s.Y>>3, s.W, 8)
}

// EraseTrace clears the part of the sprite's last rendering that its
// current position has vacated: the full old footprint when the page row
// changed or the horizontal move exceeds the sprite width, otherwise just
// the uncovered column strip. Call it after updating X/Y and before
// DrawSprite, or use MoveSprite which sequences all three.
func (d *Dev) EraseTrace(s *Sprite) error {
	oldPage := s.prevY >> 3
	dx := s.X - s.prevX
	if dx < 0 {
		dx = -dx
	}
	if oldPage != s.Y>>3 || dx >= s.W {
		// The footprints are disjoint: the whole old block is vacated.
		return d.ClearBlock(s.prevX, oldPage, s.W, 8)
	}
	switch {
	case s.X > s.prevX:
		return d.ClearBlock(s.prevX, oldPage, dx, 8)
	case s.X < s.prevX:
		return d.ClearBlock(s.X+s.W, oldPage, dx, 8)
	}
	return nil
}

// MoveSprite repositions the sprite to (x, y), erases the vacated part of
// its previous rendering and redraws it, as one operation.
func (d *Dev) MoveSprite(s *Sprite, x, y int) error {
	s.X, s.Y = x, y
	if err := d.EraseTrace(s); err != nil {
		return err
	}
	return d.DrawSprite(s)
}
