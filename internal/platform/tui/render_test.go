package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/sim"
)

func TestKeyMapperBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"left", ActionMoveLeft},
		{"a", ActionMoveLeft},
		{"right", ActionMoveRight},
		{"d", ActionMoveRight},
		{" ", ActionJump},
		{"up", ActionJump},
		{"enter", ActionConfirm},
		{"r", ActionRestart},
		{"p", ActionPause},
		{"x", ActionNone},
	}

	for _, tc := range tests {
		var msg tea.KeyMsg
		switch tc.key {
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tc.key)}
		}

		if got := km.MapKey(msg); got != tc.expected {
			t.Errorf("MapKey(%q) = %v, expected %v", tc.key, got, tc.expected)
		}
	}
}

func drawFrame(t *testing.T, w *sim.World, info hudInfo) *Screen {
	t.Helper()
	s := NewScreen(80, 24)
	r := newWorldRenderer(config.DefaultRunnerConfig().Track)
	r.Draw(s, w.Snapshot(), info)
	return s
}

func TestRendererMenuOverlay(t *testing.T) {
	w := sim.New(config.DefaultRunnerConfig(), 1, nil)

	s := drawFrame(t, w, hudInfo{HighScore: 42})
	out := s.String()

	if !strings.Contains(out, "N E O N   R U S H") {
		t.Error("menu overlay should show the title")
	}
	if !strings.Contains(out, "press enter to start") {
		t.Error("menu overlay should show the start prompt")
	}
	if !strings.Contains(out, "best run: 42") {
		t.Error("menu overlay should show the stored high score")
	}
}

func TestRendererHUD(t *testing.T) {
	w := sim.New(config.DefaultRunnerConfig(), 1, nil)
	w.Start()

	s := drawFrame(t, w, hudInfo{HighScore: 7})
	out := s.String()

	if !strings.Contains(out, "SCORE 0") {
		t.Error("HUD should show the score")
	}
	if !strings.Contains(out, "HI 7") {
		t.Error("HUD should show the high score")
	}
	if !strings.Contains(out, "LVL 0.0") {
		t.Error("HUD should show the difficulty")
	}
}

func TestRendererGameOverOverlay(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	w := sim.New(cfg, 1, nil)
	w.Start()

	// Let the world idle to a game over by parking an obstacle on the
	// player through the public API: run until a natural collision.
	for i := 0; i < 20000 && w.Phase() != sim.GameOver; i++ {
		w.Advance(0.05)
	}
	if w.Phase() != sim.GameOver {
		t.Skip("no collision reached; player spawn happens to dodge this seed")
	}

	s := drawFrame(t, w, hudInfo{NewHigh: true})
	out := s.String()

	if !strings.Contains(out, "G A M E   O V E R") {
		t.Error("game over overlay missing")
	}
	if !strings.Contains(out, "new high score!") {
		t.Error("new-high banner missing")
	}
}

func TestRendererPlayerVisible(t *testing.T) {
	w := sim.New(config.DefaultRunnerConfig(), 1, nil)
	w.Start()

	s := drawFrame(t, w, hudInfo{})

	found := false
	for y := 0; y < s.Height(); y++ {
		if strings.ContainsRune(s.Row(y), '█') {
			found = true
			break
		}
	}
	if !found {
		t.Error("player glyph not drawn")
	}
}

func TestRenderScreenGroupsColors(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawTextColored(0, 0, "AAA", sim.ColorCyan)
	s.DrawTextColored(3, 0, "BBB", sim.ColorRed)

	out := RenderScreen(s)
	if !strings.Contains(out, "AAA") || !strings.Contains(out, "BBB") {
		t.Errorf("styled output lost content: %q", out)
	}
}
