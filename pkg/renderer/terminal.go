package renderer

import (
	"fmt"
	"strings"

	"github.com/benjialonso/snake/pkg/config"
	"github.com/benjialonso/snake/pkg/game"
)

// TerminalRenderer handles terminal-based rendering
type TerminalRenderer struct {
	board  [][]int
	buffer strings.Builder
}

// Cell types for the board
const (
	cellEmpty = iota
	cellWall
	cellHead
	cellBody
	cellFood
	cellCrash
)

// NewTerminalRenderer creates a renderer for a width x height playfield.
// The drawn board adds a one-cell wall border around the field.
func NewTerminalRenderer(width, height int) *TerminalRenderer {
	// Pre-allocate board to reduce GC pressure
	board := make([][]int, height+2)
	for i := range board {
		board[i] = make([]int, width+2)
	}

	return &TerminalRenderer{
		board: board,
	}
}

// clearScreen clears the terminal using ANSI escape codes
func (r *TerminalRenderer) clearScreen() {
	fmt.Print("\033[H\033[2J\033[3J")
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Print("\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	fmt.Print("\033[?25l")
}

// Render draws a snapshot to the terminal.
func (r *TerminalRenderer) Render(s game.Snapshot, paused, autopilot bool) {
	r.clearScreen()
	fmt.Print(r.buildFrame(s, paused, autopilot))
}

// buildFrame assembles the full frame for a snapshot.
func (r *TerminalRenderer) buildFrame(s game.Snapshot, paused, autopilot bool) string {
	r.buffer.Reset()

	// Reset board
	for y := range r.board {
		for x := range r.board[y] {
			r.board[y][x] = cellEmpty
		}
	}

	// Walls form the border; playfield cells shift by one.
	bw, bh := s.Width+2, s.Height+2
	for x := 0; x < bw; x++ {
		r.board[0][x] = cellWall
		r.board[bh-1][x] = cellWall
	}
	for y := 0; y < bh; y++ {
		r.board[y][0] = cellWall
		r.board[y][bw-1] = cellWall
	}

	if s.HasFood() {
		r.board[s.Food.Y+1][s.Food.X+1] = cellFood
	}

	for i, p := range s.Entity {
		if i == 0 {
			r.board[p.Y+1][p.X+1] = cellHead
		} else {
			r.board[p.Y+1][p.X+1] = cellBody
		}
	}

	// The crash cell may sit on the wall border, which the shifted board
	// always covers.
	if s.GameOver && s.CrashCell != nil {
		r.board[s.CrashCell.Y+1][s.CrashCell.X+1] = cellCrash
	}

	// Build output using string builder
	r.buffer.WriteString("\n  🐍 SNAKE 🐍\n")

	modeStr := ""
	if autopilot {
		modeStr = "  |  🤖 AUTOPILOT"
	}
	r.buffer.WriteString(fmt.Sprintf("  Score: %d  |  Level: %d  |  Speed: %dms  |  Length: %d%s\n\n",
		s.Score, s.Level, s.TickIntervalMs, len(s.Entity), modeStr))

	// Render board
	for _, row := range r.board {
		r.buffer.WriteString("  ")
		for _, cell := range row {
			switch cell {
			case cellEmpty:
				r.buffer.WriteString(config.CharEmpty)
			case cellWall:
				r.buffer.WriteString(config.CharWall)
			case cellHead:
				r.buffer.WriteString(config.CharHead)
			case cellBody:
				r.buffer.WriteString(config.CharBody)
			case cellFood:
				r.buffer.WriteString(config.CharFood)
			case cellCrash:
				r.buffer.WriteString(config.CharCrash)
			}
		}
		r.buffer.WriteString("\n")
	}

	r.buffer.WriteString("\n  Use WASD or Arrow keys to move, O for autopilot\n")
	r.buffer.WriteString("  P to pause, Q to quit\n")

	if paused {
		r.buffer.WriteString("\n  ⏸️  PAUSED - Press P to continue\n")
	}

	if s.GameOver {
		r.buffer.WriteString(fmt.Sprintf("\n  💀 GAME OVER (%s)! Press R to restart or Q to quit\n", s.CrashCause))
	}

	return r.buffer.String()
}
