package road

import "github.com/vovakirdan/hopper/internal/core"

// MoveState is the player's movement phase.
type MoveState int

const (
	MoveIdle MoveState = iota
	MoveJumping
)

// Player moves the character along the X axis in timed hops.
//
// A hop of n tiles takes the duration of the matching animation clip and
// moves n*tileWidth at constant speed; when it completes the position is
// snapped to the exact target and jump-end listeners receive the cumulative
// tile index.
type Player struct {
	tileWidth       float64
	defaultJumpTime float64
	anim            Animator

	pos         core.Vec2
	state       MoveState
	inputActive bool

	step      int
	elapsed   float64
	duration  float64
	speed     float64
	target    core.Vec2
	moveIndex int

	listeners []func(moveIndex int)
}

// NewPlayer creates an idle player at the origin with input disabled.
// anim may be nil, in which case every hop lasts defaultJumpTime.
func NewPlayer(tileWidth, defaultJumpTime float64, anim Animator) *Player {
	return &Player{
		tileWidth:       tileWidth,
		defaultJumpTime: defaultJumpTime,
		anim:            anim,
	}
}

// OnJumpEnd registers a listener for hop completion.
func (p *Player) OnJumpEnd(fn func(moveIndex int)) {
	p.listeners = append(p.listeners, fn)
}

// HandleInput maps a released button to a hop. The primary button hops one
// tile, the secondary button two; other buttons and input while disabled are
// ignored.
func (p *Player) HandleInput(b core.Button) {
	if !p.inputActive {
		return
	}
	switch b {
	case core.ButtonPrimary:
		p.JumpByStep(1)
	case core.ButtonSecondary:
		p.JumpByStep(2)
	}
}

// JumpByStep starts a hop of 1 or 2 tiles. It reports whether the hop was
// accepted: hops are refused while another hop is in flight.
func (p *Player) JumpByStep(step int) bool {
	if p.state == MoveJumping || (step != 1 && step != 2) {
		return false
	}

	clip := ClipOneStep
	if step == 2 {
		clip = ClipTwoStep
	}

	duration := p.defaultJumpTime
	if p.anim != nil {
		if d, ok := p.anim.ClipDuration(clip); ok && d > 0 {
			duration = d
		}
	}

	p.state = MoveJumping
	p.step = step
	p.elapsed = 0
	p.duration = duration
	p.speed = float64(step) * p.tileWidth / duration
	p.target = p.pos.Add(core.Vec2{X: float64(step) * p.tileWidth})
	p.moveIndex += step

	if p.anim != nil {
		p.anim.Play(clip)
	}
	return true
}

// Update advances an in-flight hop by dt seconds.
func (p *Player) Update(dt float64) {
	if p.state != MoveJumping {
		return
	}

	p.elapsed += dt
	if p.elapsed > p.duration {
		p.pos = p.target
		p.state = MoveIdle
		p.notifyJumpEnd()
		return
	}
	p.pos.X += p.speed * dt
}

func (p *Player) notifyJumpEnd() {
	index := p.moveIndex
	for _, fn := range p.listeners {
		fn(index)
	}
}

// SetInputActive enables or disables button handling.
func (p *Player) SetInputActive(active bool) {
	p.inputActive = active
}

// InputActive reports whether buttons are handled.
func (p *Player) InputActive() bool {
	return p.inputActive
}

// SetPosition moves the player without animation.
func (p *Player) SetPosition(pos core.Vec2) {
	p.pos = pos
}

// Position returns the current world position.
func (p *Player) Position() core.Vec2 {
	return p.pos
}

// Reset zeroes the cumulative tile index and abandons any hop in flight.
// Listeners stay registered.
func (p *Player) Reset() {
	p.moveIndex = 0
	p.state = MoveIdle
	p.step = 0
	p.elapsed = 0
	p.duration = 0
	p.speed = 0
}

// MoveIndex returns the cumulative tile index.
func (p *Player) MoveIndex() int {
	return p.moveIndex
}

// State returns the movement phase.
func (p *Player) State() MoveState {
	return p.state
}

// Target returns the landing position of the current hop.
func (p *Player) Target() core.Vec2 {
	return p.target
}

// Progress returns how far the current hop is, from 0 to 1. Idle players report 0.
func (p *Player) Progress() float64 {
	if p.state != MoveJumping || p.duration <= 0 {
		return 0
	}
	return core.ClampF(p.elapsed/p.duration, 0, 1)
}
