package parameter

import "time"

// Terminal key hold emulation
// Terminals report presses and auto-repeats but never releases
const (
	// KeyHoldInitial keeps a fresh press held until the terminal's auto-repeat delay has passed
	KeyHoldInitial = 500 * time.Millisecond

	// KeyHoldRepeat keeps a repeating key held between repeat events
	KeyHoldRepeat = 100 * time.Millisecond
)

// Terminal output
const (
	// TerminalMinFrameInterval caps terminal redraws; frames arriving sooner are simulated but not shown
	TerminalMinFrameInterval = time.Second / 60

	// TerminalCloseTimeout bounds the wait for the event poller after Fini
	TerminalCloseTimeout = 200 * time.Millisecond
)

// Overlay
const (
	// OverlayDimFactor darkens the pixels behind the status line text
	OverlayDimFactor = 0.35
)
