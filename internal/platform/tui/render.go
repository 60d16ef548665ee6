package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/sim"
)

// colorStyles maps sim.ColorTag to lipgloss styles. The palette leans on
// 256-color neon tones; terminals without 256-color support degrade
// gracefully through lipgloss.
var colorStyles = map[sim.ColorTag]lipgloss.Style{
	sim.ColorNone:    lipgloss.NewStyle(),
	sim.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	sim.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
	sim.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	sim.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	sim.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	sim.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	sim.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with the same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[sim.ColorNone]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// hudInfo carries host-side state the renderer needs beyond the snapshot.
type hudInfo struct {
	HighScore int
	NewHigh   bool
	Paused    bool
}

// Playfield layout constants.
const (
	hudRows  = 2    // Rows reserved for the HUD at the top
	farScale = 0.30 // Lateral compression at the spawn plane
)

// worldRenderer projects the 3D track onto the screen buffer. The far
// plane maps to the top of the playfield, the player plane to the bottom,
// with lateral positions squeezed toward the center at depth.
type worldRenderer struct {
	track config.TrackConfig
}

func newWorldRenderer(track config.TrackConfig) worldRenderer {
	return worldRenderer{track: track}
}

// depthFrac maps a world z to [0, 1]: 0 at the spawn plane, 1 at the
// player plane.
func (r worldRenderer) depthFrac(z float64) float64 {
	span := 0 - r.track.SpawnZ
	if span <= 0 {
		return 1
	}
	return sim.ClampF((z-r.track.SpawnZ)/span, 0, 1)
}

// project converts world (x, z) into screen column and row. It also
// returns the depth fraction so callers can scale widths.
func (r worldRenderer) project(s *Screen, x, z float64) (col, row int, t float64) {
	t = r.depthFrac(z)

	top := hudRows
	bottom := s.Height() - 2
	row = top + int(math.Round(t*float64(bottom-top)))

	scale := farScale + (1-farScale)*t
	halfCols := (float64(s.Width())/2 - 2) * scale
	col = s.Width()/2 + int(math.Round(x/(r.track.Width/2)*halfCols))
	return col, row, t
}

// laneHalfCols returns how many columns a world half-width spans at the
// given depth fraction.
func (r worldRenderer) laneHalfCols(s *Screen, halfX, t float64) int {
	scale := farScale + (1-farScale)*t
	halfCols := (float64(s.Width())/2 - 2) * scale
	return int(math.Round(halfX / (r.track.Width / 2) * halfCols))
}

// Draw paints a full frame: track, entities, particles, player, HUD and
// any phase overlay.
func (r worldRenderer) Draw(s *Screen, snap sim.Snapshot, info hudInfo) {
	s.Clear()
	r.drawTrack(s)
	r.drawEntities(s, snap)
	r.drawParticles(s, snap)
	r.drawPlayer(s, snap)
	r.drawHUD(s, snap, info)

	switch snap.Phase {
	case sim.Menu:
		r.drawMenuOverlay(s, snap, info)
	case sim.GameOver:
		r.drawGameOverOverlay(s, snap, info)
	}
	if info.Paused && snap.Phase == sim.Playing {
		s.DrawTextCentered(s.Height()/2, " PAUSED ", sim.ColorYellow)
	}
}

// drawTrack paints the converging lane edges.
func (r worldRenderer) drawTrack(s *Screen) {
	top := hudRows
	bottom := s.Height() - 2
	if bottom <= top {
		return
	}
	for row := top; row <= bottom; row++ {
		t := float64(row-top) / float64(bottom-top)
		scale := farScale + (1-farScale)*t
		halfCols := int((float64(s.Width())/2 - 2) * scale)
		s.SetCell(s.Width()/2-halfCols, row, '·', sim.ColorNone)
		s.SetCell(s.Width()/2+halfCols, row, '·', sim.ColorNone)
	}
}

func (r worldRenderer) drawEntities(s *Screen, snap sim.Snapshot) {
	for _, e := range snap.Entities {
		col, row, t := r.project(s, e.Pos.X, e.Pos.Z)

		if e.Kind == sim.KindPowerUp {
			s.SetCell(col, row, powerUpGlyph(e.PowerUp), e.Color)
			continue
		}

		glyph := '▓'
		if e.Explosive {
			glyph = '◈'
		}
		wc := r.laneHalfCols(s, e.Half.X, t)
		for dx := -wc; dx <= wc; dx++ {
			s.SetCell(col+dx, row, glyph, e.Color)
		}
		// Tall obstacles get a second row when close enough to resolve.
		if t > 0.5 && e.Half.Y > 1.5 {
			for dx := -wc; dx <= wc; dx++ {
				s.SetCell(col+dx, row-1, glyph, e.Color)
			}
		}
	}
}

func powerUpGlyph(kind sim.PowerUpKind) rune {
	switch kind {
	case sim.Shield:
		return '◉'
	case sim.Double:
		return '◆'
	case sim.Shatter:
		return '✦'
	}
	return '?'
}

func (r worldRenderer) drawParticles(s *Screen, snap sim.Snapshot) {
	for _, p := range snap.Particles {
		col, row, _ := r.project(s, p.Pos.X, p.Pos.Z)
		// Lift by world height so bursts arc above the ground line.
		row -= int(math.Round(p.Pos.Y * 0.4))

		glyph := '·'
		switch {
		case p.LifeFrac > 0.66:
			glyph = '*'
		case p.LifeFrac > 0.33:
			glyph = '+'
		}
		s.SetCell(col, row, glyph, p.Color)
	}
}

func (r worldRenderer) drawPlayer(s *Screen, snap sim.Snapshot) {
	p := snap.Player
	col, row, _ := r.project(s, p.Pos.X, p.Pos.Z)
	row -= int(math.Round((p.Pos.Y - p.Half.Y) * 0.5))

	color := sim.ColorWhite
	if snap.Effect != nil {
		color = snap.Effect.Kind.Color()
	}
	s.SetCell(col-1, row, '▐', color)
	s.SetCell(col, row, '█', color)
	s.SetCell(col+1, row, '▌', color)
	if snap.Effect != nil && snap.Effect.Kind == sim.Shield {
		s.SetCell(col, row-1, '⌒', color)
	}
}

func (r worldRenderer) drawHUD(s *Screen, snap sim.Snapshot, info hudInfo) {
	score := fmt.Sprintf(" SCORE %d", snap.Score)
	s.DrawTextColored(0, 0, score, sim.ColorWhite)

	hi := fmt.Sprintf("HI %d ", info.HighScore)
	s.DrawTextColored(s.Width()-len(hi), 0, hi, sim.ColorYellow)

	diff := fmt.Sprintf("LVL %.1f", snap.Difficulty)
	s.DrawTextCentered(0, diff, sim.ColorCyan)

	if snap.Effect != nil {
		label := fmt.Sprintf(" %s %.1fs", snap.Effect.Kind.Label(), snap.Effect.TimeLeft)
		s.DrawTextColored(len(score)+2, 0, label, snap.Effect.Kind.Color())
	}

	s.DrawHLine(0, 1, s.Width(), '─', sim.ColorNone)
}

func (r worldRenderer) drawMenuOverlay(s *Screen, snap sim.Snapshot, info hudInfo) {
	mid := s.Height() / 2

	// Slow pulse driven by simulation idle time, not wall clock.
	titleColor := sim.ColorCyan
	if int(snap.IdleClock*2)%2 == 1 {
		titleColor = sim.ColorMagenta
	}

	s.DrawTextCentered(mid-3, "N E O N   R U S H", titleColor)
	s.DrawTextCentered(mid-1, "press enter to start", sim.ColorWhite)
	s.DrawTextCentered(mid+1, "←/→ move   space jump   p pause   q quit", sim.ColorNone)
	if info.HighScore > 0 {
		s.DrawTextCentered(mid+3, fmt.Sprintf("best run: %d", info.HighScore), sim.ColorYellow)
	}
}

func (r worldRenderer) drawGameOverOverlay(s *Screen, snap sim.Snapshot, info hudInfo) {
	mid := s.Height() / 2

	s.DrawTextCentered(mid-2, "G A M E   O V E R", sim.ColorRed)
	s.DrawTextCentered(mid, fmt.Sprintf("score: %d", snap.Score), sim.ColorWhite)
	if info.NewHigh {
		s.DrawTextCentered(mid+1, "new high score!", sim.ColorYellow)
	}
	s.DrawTextCentered(mid+3, "r restart   q quit", sim.ColorNone)
}
