package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/utils"
)

const minTick = time.Millisecond

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ffff"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))
	valueStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff"))
	runningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	pausedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
	hintStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#666688"))
)

// TickMsg drives one generation
type TickMsg time.Time

// Model is the bubbletea model for the live view
type Model struct {
	sim      *model.Simulation
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	config   utils.Config

	paused    bool
	done      bool
	notice    string
	lastFrame time.Time
	err       error
}

// New creates the live view around an already seeded simulation
func New(sim *model.Simulation, renderer *model.TerminalRenderer, stats *utils.Stats, config utils.Config) Model {
	return Model{
		sim:       sim,
		renderer:  renderer,
		stats:     stats,
		config:    config,
		lastFrame: time.Now(),
	}
}

// Err returns the error that stopped the view, if any
func (m Model) Err() error { return m.err }

// Paused reports whether ticks are currently ignored
func (m Model) Paused() bool { return m.paused }

func (m Model) tick() tea.Cmd {
	return tea.Tick(max(m.config.FrameRate.Std(), minTick), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		if m.done {
			return m, nil
		}
		if !m.paused {
			if cmd := m.advance(); cmd != nil {
				return m, cmd
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.done = true
		return m, tea.Quit
	case " ", "p":
		m.paused = !m.paused
	case "n":
		if m.paused {
			if cmd := m.advance(); cmd != nil {
				return m, cmd
			}
		}
	case "r":
		m.sim.Reseed()
		m.stats.Restarts++
		m.notice = "reseeded"
	}
	return m, nil
}

// advance steps the simulation once. A non-nil command ends the program.
func (m *Model) advance() tea.Cmd {
	if m.config.MaxGenerations > 0 && m.sim.Generation() >= m.config.MaxGenerations {
		m.done = true
		return tea.Quit
	}

	if reason := m.sim.RestartReason(m.config.StagnationThreshold); reason != "" && m.config.AutoRestart {
		m.sim.Reseed()
		m.stats.Restarts++
		m.notice = "restarted: " + reason
	}

	if err := m.sim.Step(); err != nil {
		m.err = err
		m.done = true
		return tea.Quit
	}

	now := time.Now()
	m.stats.Update(m.sim.Generation(), m.sim.Board().CountLivingCells(), now.Sub(m.lastFrame))
	m.lastFrame = now
	return nil
}

func (m Model) View() string {
	if m.done {
		return ""
	}

	board := m.sim.Board()
	living := board.CountLivingCells()

	state := runningStyle.Render("RUNNING")
	if m.paused {
		state = pausedStyle.Render("PAUSED")
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("torus life"))
	sb.WriteString("  ")
	sb.WriteString(state)
	if m.notice != "" {
		sb.WriteString("  ")
		sb.WriteString(labelStyle.Render(m.notice))
	}
	sb.WriteString("\n")

	sb.WriteString(stat("gen", fmt.Sprintf("%d", m.sim.Generation())))
	sb.WriteString(stat("living", fmt.Sprintf("%d", living)))
	sb.WriteString(stat("density", fmt.Sprintf("%.1f%%", float64(living)/float64(board.Rows()*board.Cols())*100)))
	sb.WriteString(stat("gen/s", fmt.Sprintf("%.1f", m.stats.GenerationsPerSecond)))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderer.Render(board))
	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("space pause  n step  r reseed  q quit"))
	return sb.String()
}

func stat(label, value string) string {
	return labelStyle.Render(label+" ") + valueStyle.Render(value) + "  "
}
