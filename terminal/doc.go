// Package terminal presents the simulation frame buffer in a terminal through tcell.
//
// Features:
//   - Upper/lower half-block cells, two vertical pixels per cell
//   - Nearest-neighbour stretch of the fixed viewport onto the current grid
//   - Held-key emulation from press and auto-repeat events
//   - Title and FPS status line
//   - Clean terminal restoration on exit/panic
package terminal
