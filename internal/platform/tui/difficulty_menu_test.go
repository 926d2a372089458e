package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hopper/internal/config"
)

func TestDifficultyPicker(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want config.DifficultyPreset
		ok   bool
	}{
		{"default is normal", []tea.KeyMsg{{Type: tea.KeyEnter}}, config.DifficultyNormal, true},
		{"up picks easy", []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyEnter}}, config.DifficultyEasy, true},
		{"down picks hard", []tea.KeyMsg{runeKey('j'), {Type: tea.KeyEnter}}, config.DifficultyHard, true},
		{"cursor stops at the end", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, config.DifficultyHard, true},
		{"quit", []tea.KeyMsg{runeKey('q')}, "", false},
		{"esc", []tea.KeyMsg{{Type: tea.KeyEsc}}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = NewDifficultyModel(60, 20)
			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}

			got, ok := m.(DifficultyModel).Selected()
			if ok != tt.ok || got != tt.want {
				t.Errorf("Selected() = %q, %v; expected %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDifficultyPickerView(t *testing.T) {
	view := NewDifficultyModel(60, 20).View()
	for _, want := range []string{"Easy", " 25 tiles", "> Normal", "100 tiles"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}
