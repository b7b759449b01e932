package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/bouncer/core"
	"github.com/lixenwraith/bouncer/engine"
	"github.com/lixenwraith/bouncer/input"
	"github.com/lixenwraith/bouncer/parameter"
	"github.com/lixenwraith/bouncer/status"
)

var (
	// ErrNotTerminal is returned when stdout is not attached to a terminal
	ErrNotTerminal = errors.New("stdout is not a terminal")
	// ErrClosed is returned by Present after the screen was closed
	ErrClosed = errors.New("screen closed")
	// ErrFrameSize is returned when the pixel slice does not match width x height
	ErrFrameSize = errors.New("frame size mismatch")
)

// Screen is a tcell-backed engine surface
// Terminals report presses and auto-repeats but no releases, so a key counts as
// depressed until its hold deadline passes
type Screen struct {
	screen  tcell.Screen
	title   string
	metrics *status.Registry
	now     func() time.Time

	mu   sync.Mutex
	held map[input.Key]time.Time

	open      atomic.Bool
	resized   atomic.Bool
	done      chan struct{}
	closeOnce sync.Once

	minInterval time.Duration
	lastShow    time.Time
}

// New opens the controlling terminal
func New(title string, metrics *status.Registry) (*Screen, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotTerminal
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(s, title, metrics)
}

// NewWithScreen initializes s and starts event polling
// metrics may be nil, in which case no status line is drawn
func NewWithScreen(s tcell.Screen, title string, metrics *status.Registry) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.SetTitle(title)
	s.HideCursor()
	s.Clear()

	scr := &Screen{
		screen:  s,
		title:   title,
		metrics: metrics,
		now:     time.Now,
		held:    make(map[input.Key]time.Time),
		done:    make(chan struct{}),
	}
	scr.open.Store(true)

	go scr.poll()
	return scr, nil
}

// Opener returns an engine.SurfaceOpener creating terminal screens
func Opener(metrics *status.Registry) engine.SurfaceOpener {
	return func(title string, _ core.ViewportSize) (engine.Surface, error) {
		return New(title, metrics)
	}
}

// poll drains tcell events until the screen is finalized
func (s *Screen) poll() {
	defer close(s.done)
	for {
		ev := s.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			s.open.Store(false)
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				s.open.Store(false)
			}
			if k := translateKey(ev); k != input.KeyNone {
				s.press(k)
			}
		case *tcell.EventResize:
			s.resized.Store(true)
		}
	}
}

// press marks k held; repeats inside the hold window extend it by the repeat interval
func (s *Screen) press(k input.Key) {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	if until, ok := s.held[k]; ok && now.Before(until) {
		s.held[k] = maxTime(until, now.Add(parameter.KeyHoldRepeat))
		return
	}
	s.held[k] = now.Add(parameter.KeyHoldInitial)
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

// IsOpen reports whether the terminal is still usable
func (s *Screen) IsOpen() bool {
	return s.open.Load()
}

// DepressedKeys returns the keys whose hold deadline has not passed
func (s *Screen) DepressedKeys() input.KeySet {
	now := s.now()
	keys := make(input.KeySet)

	s.mu.Lock()
	defer s.mu.Unlock()
	for k, until := range s.held {
		if now.Before(until) {
			keys[k] = struct{}{}
		} else {
			delete(s.held, k)
		}
	}
	return keys
}

// LimitUpdateRate sets the minimum interval between terminal redraws
func (s *Screen) LimitUpdateRate(d time.Duration) {
	s.minInterval = max(d, parameter.TerminalMinFrameInterval)
}

// Present draws a width x height pixel buffer scaled onto the terminal grid
// Frames arriving faster than the update rate limit are dropped
func (s *Screen) Present(pixels []core.Pixel, width, height int) error {
	if !s.IsOpen() {
		return ErrClosed
	}
	if width <= 0 || height <= 0 || len(pixels) != width*height {
		return fmt.Errorf("%w: %d pixels for %dx%d", ErrFrameSize, len(pixels), width, height)
	}

	now := s.now()
	if s.minInterval > 0 && !s.lastShow.IsZero() && now.Sub(s.lastShow) < s.minInterval {
		return nil
	}
	s.lastShow = now

	if s.resized.Swap(false) {
		s.screen.Sync()
	}

	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}
	drawFrame(s.screen, pixels, width, height, cols, rows)
	s.drawStatus(pixels, width, height, cols, rows)
	s.screen.Show()
	return nil
}

// drawStatus writes the title and, once the loop publishes it, the smoothed frame rate over the top row
func (s *Screen) drawStatus(pixels []core.Pixel, width, height, cols, rows int) {
	if s.metrics == nil {
		return
	}
	text := " " + s.title + " "
	if fps, ok := s.metrics.Floats.Lookup(status.KeyFPS); ok {
		text += fmt.Sprintf(" %.0f fps ", fps.Get())
	}

	y := sample(0, rows*2, height) * width
	x := 0
	for _, r := range text {
		if x >= cols {
			break
		}
		bg := pixels[y+sample(x, cols, width)].RGB().Scale(parameter.OverlayDimFactor).Pixel()
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(color(bg))
		s.screen.SetContent(x, 0, r, nil, style)
		x++
	}
}

// Close finalizes the terminal and waits briefly for the poll goroutine
func (s *Screen) Close() error {
	s.closeOnce.Do(func() {
		s.open.Store(false)
		s.screen.Fini()

		select {
		case <-s.done:
		case <-time.After(parameter.TerminalCloseTimeout):
		}
	})
	return nil
}
