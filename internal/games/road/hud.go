package road

import (
	"strconv"
	"strings"
)

// Panel is a screen overlay that can be shown or hidden.
type Panel struct {
	Visible bool
}

// Label is a line of HUD text.
type Label struct {
	Text    string
	Visible bool
}

// HUD groups the overlays and labels the manager drives.
// Any field may be nil; the manager skips what is missing.
type HUD struct {
	StartMenu *Panel
	EndMenu   *Panel
	Steps     *Label // Jump counter
	Summary   *Label // End-of-run message inside the end menu
	Timer     *Label // Elapsed seconds
}

// NewHUD creates a HUD with every element present.
func NewHUD() *HUD {
	return &HUD{
		StartMenu: &Panel{},
		EndMenu:   &Panel{},
		Steps:     &Label{Visible: true},
		Summary:   &Label{Visible: true},
		Timer:     &Label{},
	}
}

func (h *HUD) setStartMenu(visible bool) {
	if h != nil && h.StartMenu != nil {
		h.StartMenu.Visible = visible
	}
}

func (h *HUD) setEndMenu(visible bool) {
	if h != nil && h.EndMenu != nil {
		h.EndMenu.Visible = visible
	}
}

func (h *HUD) setSteps(text string) {
	if h != nil && h.Steps != nil {
		h.Steps.Text = text
	}
}

func (h *HUD) setSummary(text string) {
	if h != nil && h.Summary != nil {
		h.Summary.Text = text
	}
}

func (h *HUD) setTimer(text string, visible bool) {
	if h != nil && h.Timer != nil {
		h.Timer.Text = text
		h.Timer.Visible = visible
	}
}

// formatSeconds renders seconds in the shortest float form, truncated to at
// most two decimals; no trailing zeros are added: 3 -> "3", 1.5 -> "1.5",
// 2.379 -> "2.37", 0.30000000000000004 -> "0.30".
func formatSeconds(sec float64) string {
	s := strconv.FormatFloat(sec, 'f', -1, 64)
	if dot := strings.IndexByte(s, '.'); dot >= 0 && len(s) > dot+3 {
		s = s[:dot+3]
	}
	return s
}

// summaryText is the end-of-run message.
func summaryText(steps int, elapsed float64) string {
	return "You jumped " + strconv.Itoa(steps) + " times\nin " + formatSeconds(elapsed) + " seconds"
}
