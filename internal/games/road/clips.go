package road

import "github.com/vovakirdan/hopper/internal/config"

// Animation clip names for the two hop lengths.
const (
	ClipOneStep = "oneStep"
	ClipTwoStep = "twoStep"
)

// Animator looks up and plays named animation clips.
type Animator interface {
	// ClipDuration returns the length of a clip in seconds.
	ClipDuration(name string) (float64, bool)
	// Play starts the named clip.
	Play(name string)
}

// ClipSet is an Animator backed by configured clip durations.
// It has no visuals of its own; the renderer reads the jump progress instead.
type ClipSet struct {
	durations map[string]float64
	playing   string
	plays     int
}

// NewClipSet creates a clip set from config. Clips with a zero duration are
// left out so that the player falls back to its default jump time.
func NewClipSet(cfg config.ClipSettings) *ClipSet {
	c := &ClipSet{durations: make(map[string]float64, 2)}
	if cfg.OneStep > 0 {
		c.durations[ClipOneStep] = cfg.OneStep
	}
	if cfg.TwoStep > 0 {
		c.durations[ClipTwoStep] = cfg.TwoStep
	}
	return c
}

// ClipDuration implements Animator.
func (c *ClipSet) ClipDuration(name string) (float64, bool) {
	d, ok := c.durations[name]
	return d, ok
}

// Play implements Animator.
func (c *ClipSet) Play(name string) {
	c.playing = name
	c.plays++
}

// Playing returns the last clip started.
func (c *ClipSet) Playing() string {
	return c.playing
}
