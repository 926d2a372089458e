package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hopper/internal/core"
	"github.com/vovakirdan/hopper/internal/registry"
	"github.com/vovakirdan/hopper/internal/storage"
)

// footerHeight is the number of rows kept below the game for the help bar.
const footerHeight = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	best       int // Most steps in a saved run
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 1)),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
		help:       help.New(),
		logger:     log.Default().WithPrefix("tui"),
	}
	m.help.Width = cfg.ScreenW

	if store != nil {
		if best, err := store.BestSteps(game.ID()); err == nil {
			m.best = best
		} else {
			m.logger.Warn("could not read best run", "err", err)
		}
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Shot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inputFrame.Has(core.ActionHelp) {
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleResize resizes the screen buffer. The game keeps its state; only
// the view changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-m.footerRows(), 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Finished != nil {
		m.saveRun(*result.Finished)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun records a finished run. Storage failures never interrupt play.
func (m *Model) saveRun(run core.RunResult) {
	m.logger.Info("run finished", "steps", run.Steps, "elapsed", run.Elapsed, "outcome", run.Outcome)
	if run.Steps > m.best {
		m.best = run.Steps
	}
	if m.store == nil {
		return
	}
	id, err := m.store.SaveRun(m.game.ID(), run)
	if err != nil {
		m.logger.Error("could not save run", "err", err)
		return
	}
	m.logger.Debug("run saved", "id", id)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	timestamp := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path, err := xdg.StateFile(filepath.Join("hopper", "screenshots", name))
	if err != nil {
		m.logger.Warn("could not create screenshot directory", "err", err)
		return
	}

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// footerRows is the height of the help bar, which grows when expanded.
func (m Model) footerRows() int {
	if m.help.ShowAll {
		return 4
	}
	return footerHeight
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	rows := max(m.config.ScreenH-m.footerRows(), 1)
	if m.screen.Height() != rows {
		m.screen.Resize(m.config.ScreenW, rows)
	}
	m.game.Render(m.screen)

	footer := m.help.View(m.keys.Keys())
	if m.best > 0 {
		footer += footerStyle.Render(fmt.Sprintf("  best: %d", m.best))
	}
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local session.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewSessionModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks hop too
	)

	_, err := p.Run()
	return err
}
