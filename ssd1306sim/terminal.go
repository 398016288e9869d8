package ssd1306sim

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Terminal renders a simulated Device into a terminal window using tcell,
// two display pixels per character cell via half-block runes. It is the
// demo-facing face of the simulator; tests read the Device directly.
type Terminal struct {
	dev    *Device
	screen tcell.Screen
}

// NewTerminal opens a terminal screen showing dev. Call Close when done to
// restore the terminal.
func NewTerminal(dev *Device) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newTerminal(dev, screen)
}

func newTerminal(dev *Device, screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	screen.Clear()
	return &Terminal{dev: dev, screen: screen}, nil
}

// Run refreshes the view at ~30 frames per second and dispatches key events
// to handler until it returns false. Ctrl-C always exits. handler may be
// nil, leaving Ctrl-C as the only exit.
func (t *Terminal) Run(handler func(*tcell.EventKey) bool) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				// Screen finalized.
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	t.render()
	for {
		select {
		case <-ticker.C:
			t.render()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				t.screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if handler != nil && !handler(ev) {
					return nil
				}
			}
		}
	}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// render paints the panel into the screen, one character cell per 1x2
// pixel pair, inside a thin frame.
func (t *Terminal) render() {
	img := t.dev.Snapshot()
	on := t.dev.DisplayOn()
	inverted := t.dev.Inverted()

	w, h := img.Rect.Dx(), img.Rect.Dy()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	frame := tcell.StyleDefault.Foreground(tcell.ColorGray)

	rows := (h + 1) / 2
	for x := 0; x <= w+1; x++ {
		t.screen.SetContent(x, 0, '─', nil, frame)
		t.screen.SetContent(x, rows+1, '─', nil, frame)
	}
	for y := 0; y <= rows+1; y++ {
		t.screen.SetContent(0, y, '│', nil, frame)
		t.screen.SetContent(w+1, y, '│', nil, frame)
	}
	t.screen.SetContent(0, 0, '┌', nil, frame)
	t.screen.SetContent(w+1, 0, '┐', nil, frame)
	t.screen.SetContent(0, rows+1, '└', nil, frame)
	t.screen.SetContent(w+1, rows+1, '┘', nil, frame)

	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			top := bool(img.BitAt(x, y))
			bot := bool(img.BitAt(x, y+1))
			if !on {
				top, bot = false, false
			} else if inverted {
				top, bot = !top, !bot
			}
			var r rune
			switch {
			case top && bot:
				r = '█'
			case top:
				r = '▀'
			case bot:
				r = '▄'
			default:
				r = ' '
			}
			t.screen.SetContent(x+1, y/2+1, r, nil, style)
		}
	}
	t.screen.Show()
}
