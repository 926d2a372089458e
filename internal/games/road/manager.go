package road

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hopper/internal/core"
)

// GameState is the top-level phase of the game.
type GameState int

const (
	StateInit    GameState = iota // Title screen, fresh road
	StatePlaying                  // Run in progress
	StateEnd                      // Fell into a gap, summary shown
)

// String returns the state name used in logs.
func (s GameState) String() string {
	switch s {
	case StateInit:
		return "init"
	case StatePlaying:
		return "playing"
	case StateEnd:
		return "end"
	default:
		return "unknown"
	}
}

// RoadRenderer places tile visuals in the world.
type RoadRenderer interface {
	// Clear removes every placed visual.
	Clear()
	// Spawn places the visual for the tile at a road index.
	Spawn(index int, tile Tile, pos core.Vec2)
}

// PlayerMotion is what the manager needs from the player.
type PlayerMotion interface {
	SetInputActive(active bool)
	SetPosition(pos core.Vec2)
	Reset()
	OnJumpEnd(fn func(moveIndex int))
}

// ManagerConfig holds the fixed settings of a manager.
type ManagerConfig struct {
	RoadLength  int
	TileWidth   float64
	TileOffsetY float64
	InputDelay  time.Duration // Wait between Start and enabling hops
}

// ManagerDeps holds collaborators. Only Scheduler and Rand are required;
// the rest may be nil and are skipped.
type ManagerDeps struct {
	Scheduler *core.Scheduler
	Rand      *rand.Rand
	Renderer  RoadRenderer
	Player    PlayerMotion
	HUD       *HUD
	Logger    *log.Logger
}

// Manager owns the game state, the road and the run counters.
type Manager struct {
	cfg      ManagerConfig
	sched    *core.Scheduler
	rng      *rand.Rand
	renderer RoadRenderer
	player   PlayerMotion
	hud      *HUD
	logger   *log.Logger

	road    Road
	state   GameState
	steps   int
	elapsed float64

	inputTimer core.TimerID
	finished   *core.RunResult
}

// NewManager creates a manager. Call Start before the first Update.
func NewManager(cfg ManagerConfig, deps ManagerDeps) *Manager {
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		cfg:      cfg,
		sched:    deps.Scheduler,
		rng:      deps.Rand,
		renderer: deps.Renderer,
		player:   deps.Player,
		hud:      deps.HUD,
		logger:   logger,
	}
}

// Start enters Init and subscribes to the player's landings.
func (m *Manager) Start() {
	m.SetState(StateInit)
	if m.player != nil {
		m.player.OnJumpEnd(m.OnPlayerJumpEnd)
	}
}

// StartGame begins a run. It only acts on the title screen.
func (m *Manager) StartGame() {
	if m.state != StateInit {
		m.logger.Debug("start ignored", "state", m.state)
		return
	}
	m.SetState(StatePlaying)
}

// Replay returns to the title screen with a new road.
func (m *Manager) Replay() {
	m.SetState(StateInit)
}

// Update advances the run clock by dt seconds.
func (m *Manager) Update(dt float64) {
	if m.state != StatePlaying {
		return
	}
	m.elapsed += dt
	m.hud.setTimer(formatSeconds(m.elapsed), true)
}

// OnPlayerJumpEnd counts the hop and resolves where it landed.
func (m *Manager) OnPlayerJumpEnd(moveIndex int) {
	m.steps++
	m.hud.setSteps(strconv.Itoa(m.steps))
	m.CheckResult(moveIndex)
}

// CheckResult resolves a landing on the given cumulative tile index.
// Landing on a gap ends the run; landing past the last tile restarts.
func (m *Manager) CheckResult(moveIndex int) {
	if moveIndex < 0 {
		m.logger.Warn("landing index out of range", "index", moveIndex)
		return
	}

	if moveIndex >= m.road.Len() {
		m.logger.Info("road cleared", "steps", m.steps, "elapsed", formatSeconds(m.elapsed))
		m.finish(core.OutcomeCleared)
		m.SetState(StateInit)
		return
	}

	if tile, _ := m.road.At(moveIndex); tile == TileEmpty {
		m.logger.Info("fell", "index", moveIndex, "steps", m.steps)
		m.finish(core.OutcomeFell)
		m.SetState(StateEnd)
	}
}

func (m *Manager) finish(outcome core.Outcome) {
	m.finished = &core.RunResult{
		Steps:   m.steps,
		Elapsed: time.Duration(m.elapsed * float64(time.Second)),
		Outcome: outcome,
	}
}

// SetState enters a state and applies its full UI and input configuration.
// Entering the same state twice leaves the same configuration.
func (m *Manager) SetState(s GameState) {
	// A pending input enable belongs to the state being left.
	if m.inputTimer != 0 {
		m.sched.Cancel(m.inputTimer)
		m.inputTimer = 0
	}

	prev := m.state
	m.state = s

	switch s {
	case StateInit:
		m.hud.setEndMenu(false)
		m.hud.setStartMenu(true)
		m.hud.setTimer(formatSeconds(m.elapsed), false)
		m.generateRoad()
		m.resetPlayer()

	case StatePlaying:
		m.hud.setStartMenu(false)
		m.steps = 0
		m.hud.setSteps("0")
		m.elapsed = 0
		m.hud.setTimer("0", true)
		m.inputTimer = m.sched.After(m.cfg.InputDelay, m.enableInput)

	case StateEnd:
		m.hud.setSummary(summaryText(m.steps, m.elapsed))
		m.hud.setEndMenu(true)
		m.hud.setSteps("")
		m.resetPlayer()
		m.hud.setTimer(formatSeconds(m.elapsed), false)
	}

	m.logger.Debug("state changed", "from", prev, "to", s)
}

func (m *Manager) enableInput() {
	m.inputTimer = 0
	if m.player != nil {
		m.player.SetInputActive(true)
	}
}

func (m *Manager) resetPlayer() {
	if m.player == nil {
		return
	}
	m.player.SetInputActive(false)
	m.player.SetPosition(core.Vec2{})
	m.player.Reset()
}

// generateRoad builds a fresh road and re-places every tile visual.
func (m *Manager) generateRoad() {
	if m.renderer != nil {
		m.renderer.Clear()
	}

	m.road = Generate(m.cfg.RoadLength, m.rng)

	if m.renderer == nil {
		return
	}
	for i, tile := range m.road {
		pos := core.Vec2{X: float64(i) * m.cfg.TileWidth, Y: m.cfg.TileOffsetY}
		m.renderer.Spawn(i, tile, pos)
	}
}

// TakeFinished returns the run that concluded since the last call, if any.
func (m *Manager) TakeFinished() *core.RunResult {
	r := m.finished
	m.finished = nil
	return r
}

// State returns the current game state.
func (m *Manager) State() GameState {
	return m.state
}

// Road returns the current road. Callers must not modify it.
func (m *Manager) Road() Road {
	return m.road
}

// Steps returns the hops counted in the current run.
func (m *Manager) Steps() int {
	return m.steps
}

// Elapsed returns the seconds spent in the current run.
func (m *Manager) Elapsed() float64 {
	return m.elapsed
}

// setRoad replaces the road without touching visuals or state. Used by tests
// that need a fixed layout.
func (m *Manager) setRoad(r Road) {
	m.road = r
}
