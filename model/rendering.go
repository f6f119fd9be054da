package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearScreen = "\033[2J\033[H"

	// DefaultAliveColor and DefaultDeadColor mirror the green on black of the window renderer
	DefaultAliveColor = "#00cc00"
	DefaultDeadColor  = "#000000"
)

// TerminalRenderer draws a board as two terminal columns per cell
type TerminalRenderer struct {
	alive lipgloss.Style
	dead  lipgloss.Style
}

// NewTerminalRenderer creates a renderer with the given lipgloss colors
func NewTerminalRenderer(aliveColor, deadColor string) *TerminalRenderer {
	return &TerminalRenderer{
		alive: lipgloss.NewStyle().Foreground(lipgloss.Color(aliveColor)),
		dead:  lipgloss.NewStyle().Background(lipgloss.Color(deadColor)),
	}
}

// Render returns the board as newline-terminated rows
func (r *TerminalRenderer) Render(b *Board) string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.cols*len(gridPosBlock) + 1))

	for row := 0; row < b.rows; row++ {
		line := b.cells[row*b.cols : (row+1)*b.cols]
		// Style runs of equal cells at once rather than every cell
		for start := 0; start < len(line); {
			end := start + 1
			for end < len(line) && line[end] == line[start] {
				end++
			}
			if line[start] {
				sb.WriteString(r.alive.Render(strings.Repeat(gridPosBlock, end-start)))
			} else {
				sb.WriteString(r.dead.Render(strings.Repeat(gridPosEmpty, end-start)))
			}
			start = end
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Display writes the rendered board to w
func (r *TerminalRenderer) Display(w io.Writer, b *Board) error {
	_, err := io.WriteString(w, r.Render(b))
	return err
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear(w io.Writer) {
	fmt.Fprint(w, clearScreen)
}
