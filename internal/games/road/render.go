package road

import (
	"math"
	"strings"

	"github.com/vovakirdan/hopper/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '●'
	FinishChar = '⚑'
	SoilChar   = '▀'
)

// Minimum screen size the game can draw in.
const (
	MinScreenW = 24
	MinScreenH = 10
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.manager == nil {
		return
	}
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	groundY := dst.Height() * 2 / 3
	cpt := max(g.cfg.View.CellsPerTile, 2)
	column := g.camera(cpt)

	// Road
	g.arena.Each(func(_ int, pos core.Vec2, sprite TileSprite) {
		x := column(pos.X)
		dst.DrawHLine(x, groundY, cpt-1, sprite.Glyph, sprite.Color)
		dst.DrawHLine(x, groundY+1, cpt-1, SoilChar, core.ColorSoil)
	})

	// Finish flag sits one tile past the last one
	finish := column(float64(g.manager.Road().Len()) * g.cfg.Road.TileWidth)
	dst.SetColor(finish+(cpt-1)/2, groundY-1, FinishChar, core.ColorFinish)

	// Player
	lift := 0
	if g.player.State() == MoveJumping {
		arc := math.Sin(math.Pi * g.player.Progress())
		lift = int(math.Round(float64(g.hopPeak()) * arc))
	}
	px := column(g.player.Position().X) + (cpt-1)/2
	dst.SetColor(px, groundY-1-lift, PlayerChar, core.ColorPlayer)

	g.renderHUD(dst)

	if g.hud.StartMenu.Visible {
		drawPanel(dst, []string{
			"H O P P E R",
			"",
			"ENTER      start",
			"1 / space  hop one tile",
			"2 / j      hop two tiles",
		}, core.ColorStartMenu)
	}
	if g.hud.EndMenu.Visible {
		lines := strings.Split(g.hud.Summary.Text, "\n")
		lines = append(lines, "", "R  play again")
		drawPanel(dst, lines, core.ColorEndMenu)
	}
}

// hopPeak is the arc height in rows of the clip being played. Single-tile
// hops reach half the configured height.
func (g *Game) hopPeak() int {
	peak := g.cfg.View.JumpHeight
	if g.clips.Playing() == ClipOneStep {
		peak = max(peak/2, 1)
	}
	return peak
}

// camera returns a function mapping world X to a screen column. The view
// follows the player, keeping LeadTiles tiles visible behind it.
func (g *Game) camera(cellsPerTile int) func(x float64) int {
	tw := g.cfg.Road.TileWidth
	origin := g.player.Position().X/tw - float64(g.cfg.View.LeadTiles)
	return func(x float64) int {
		return int(math.Floor((x/tw - origin) * float64(cellsPerTile)))
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	if g.hud.Steps.Visible && g.hud.Steps.Text != "" {
		dst.DrawTextColor(2, 0, "Steps: "+g.hud.Steps.Text, core.ColorSteps)
	}
	if g.hud.Timer.Visible {
		text := g.hud.Timer.Text + "s"
		dst.DrawTextColor(dst.Width()-len(text)-2, 0, text, core.ColorTimer)
	}
}

// drawPanel draws a framed block of centered lines in the middle of the screen.
func drawPanel(dst *core.Screen, lines []string, c core.Color) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, len([]rune(l)))
	}
	w := inner + 4
	h := len(lines) + 2
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, w-2, h-2), ' ')
	dst.DrawBox(box, c)
	for i, l := range lines {
		x := box.X + (w-len([]rune(l)))/2
		dst.DrawTextColor(x, box.Y+1+i, l, c)
	}
}
