package road

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hopper/internal/config"
	"github.com/vovakirdan/hopper/internal/core"
	"github.com/vovakirdan/hopper/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "road"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game wires the road, player and manager behind the registry interface.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.RoadConfig
	logger  *log.Logger

	sched   *core.Scheduler
	clips   *ClipSet
	player  *Player
	arena   *TileArena
	hud     *HUD
	manager *Manager
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Hopper"
}

// Reset loads the configuration, rebuilds every component and enters the
// title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.logger = log.Default().WithPrefix(GameID)

	cfg, err := config.LoadRoad(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultRoadConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRoadPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	if g.sched == nil {
		g.sched = core.NewScheduler()
	} else {
		g.sched.Reset()
	}
	g.clips = NewClipSet(cfg.Player.Clips)
	g.player = NewPlayer(cfg.Road.TileWidth, cfg.Player.DefaultJumpTime, g.clips)
	g.arena = NewTileArena(&DefaultTileSprite)
	g.hud = NewHUD()
	g.manager = NewManager(ManagerConfig{
		RoadLength:  cfg.Road.Length,
		TileWidth:   cfg.Road.TileWidth,
		TileOffsetY: cfg.Road.TileOffsetY,
		InputDelay:  time.Duration(cfg.Flow.InputDelay * float64(time.Second)),
	}, ManagerDeps{
		Scheduler: g.sched,
		Rand:      rand.New(rand.NewSource(runtime.Seed)),
		Renderer:  g.arena,
		Player:    g.player,
		HUD:       g.hud,
		Logger:    g.logger,
	})
	g.manager.Start()

	g.logger.Debug("reset", "seed", runtime.Seed, "length", cfg.Road.Length, "difficulty", difficultyPreset)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionStart) && g.hud.StartMenu.Visible {
		g.manager.StartGame()
	}
	if in.Has(core.ActionReplay) && g.hud.EndMenu.Visible {
		g.manager.Replay()
	}
	for _, b := range in.Released {
		g.player.HandleInput(b)
	}

	dt := g.runtime.TickDelta()
	g.sched.Advance(dt)
	g.player.Update(dt.Seconds())
	g.manager.Update(dt.Seconds())

	return core.StepResult{
		State:    g.State(),
		Finished: g.manager.TakeFinished(),
	}
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	if g.manager == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.manager.Steps(),
		GameOver: g.manager.State() == StateEnd,
	}
}

// Manager exposes the state machine.
func (g *Game) Manager() *Manager {
	return g.manager
}

// Player exposes the player.
func (g *Game) Player() *Player {
	return g.player
}

// HUD exposes the overlays.
func (g *Game) HUD() *HUD {
	return g.hud
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
