package lander

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Visual characters for rendering
const (
	ObstacleChar = '▓'
	MovingChar   = '█'
	FriendlyChar = '='
	FinishChar   = '#'
	WreckChar    = 'X'
)

// headingGlyphs are rocket glyphs for each 45° of heading, starting at
// straight up and turning left.
var headingGlyphs = [8]rune{'↑', '↖', '←', '↙', '↓', '↘', '→', '↗'}

// HeadingGlyph returns the rocket glyph for an orientation in degrees.
func HeadingGlyph(angle float64) rune {
	i := int(math.Round(angle/45)) % 8
	if i < 0 {
		i += 8
	}
	return headingGlyphs[i]
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if !g.loaded {
		dst.DrawTextCentered(dst.Height()/2, "no level loaded")
		return
	}

	offX := max(0, (dst.Width()-g.level.Width)/2)
	offY := 1

	for _, s := range g.statics {
		drawSolid(dst, s, offX, offY)
	}
	for _, o := range g.obstacles {
		r := core.NewRect(int(math.Round(o.pos.X))+offX, int(math.Round(o.pos.Y))+offY, int(o.w), int(o.h))
		dst.DrawRect(r, MovingChar, core.ColorMagenta)
	}

	g.main.Draw(dst, offX, offY)
	g.left.Draw(dst, offX, offY)
	g.right.Draw(dst, offX, offY)

	rx := int(math.Floor(g.body.Position.X)) + offX
	ry := int(math.Floor(g.body.Position.Y)) + offY
	switch g.outcome {
	case core.OutcomeCrashed:
		dst.SetWithColor(rx, ry, WreckChar, core.ColorBrightRed)
	case core.OutcomeLanded:
		dst.SetWithColor(rx, ry, HeadingGlyph(g.body.Angle), core.ColorGreen)
	default:
		dst.SetWithColor(rx, ry, HeadingGlyph(g.body.Angle), core.ColorBrightYellow)
	}

	g.crash.Draw(dst, offX, offY)

	g.drawHUD(dst)
	if help := offY + g.level.Height; help < dst.Height() {
		dst.DrawTextColor(offX, help, "space/w/↑ thrust  a/← d/→ rotate  p pause  esc quit", core.ColorGray)
	}

	switch {
	case g.state.Paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorYellow)
	case g.outcome == core.OutcomeLanded:
		next := nextScene(g) + 1
		g.drawCenteredMessage(dst, "LANDED", fmt.Sprintf("Next: level %d of %d", next, g.SceneCount()), core.ColorGreen)
	case g.outcome == core.OutcomeCrashed:
		g.drawCenteredMessage(dst, "CRASHED", "Restarting level...", core.ColorBrightRed)
	}
}

func drawSolid(dst *core.Screen, s solid, offX, offY int) {
	r := core.NewRect(int(s.box.Min.X)+offX, int(s.box.Min.Y)+offY, int(s.box.Width()), int(s.box.Height()))
	switch s.tag {
	case TagFriendly:
		dst.DrawRect(r, FriendlyChar, core.ColorCyan)
	case TagFinish:
		dst.DrawRect(r, FinishChar, core.ColorGreen)
	default:
		dst.DrawRect(r, ObstacleChar, core.ColorGray)
	}
}

// drawHUD writes the status line on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  [%d/%d]  SPD %4.1f  HDG %+4.0f°  LANDED %d  CRASHED %d ",
		g.level.Name, g.index+1, g.SceneCount(),
		g.body.Velocity.Len(), g.body.Angle,
		g.state.Landings, g.state.Crashes)
	dst.DrawTextColor(0, 0, hud, core.ColorWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	tw := len([]rune(title))
	sw := len([]rune(subtitle))
	boxW := max(tw, sw) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColor(boxX+(boxW-tw)/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-sw)/2, boxY+3, subtitle)
}
