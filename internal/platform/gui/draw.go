package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-lander/internal/core"
)

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {0xd0, 0xd0, 0xd0, 0xff},
	core.ColorRed:          {0xcd, 0x31, 0x31, 0xff},
	core.ColorGreen:        {0x0d, 0xbc, 0x79, 0xff},
	core.ColorYellow:       {0xe5, 0xe5, 0x10, 0xff},
	core.ColorBlue:         {0x24, 0x72, 0xc8, 0xff},
	core.ColorMagenta:      {0xbc, 0x3f, 0xbc, 0xff},
	core.ColorCyan:         {0x11, 0xa8, 0xcd, 0xff},
	core.ColorWhite:        {0xe5, 0xe5, 0xe5, 0xff},
	core.ColorBrightRed:    {0xf1, 0x4c, 0x4c, 0xff},
	core.ColorBrightYellow: {0xf5, 0xf5, 0x43, 0xff},
	core.ColorBrightCyan:   {0x29, 0xb8, 0xdb, 0xff},
	core.ColorOrange:       {0xff, 0x87, 0x00, 0xff},
	core.ColorGray:         {0x8a, 0x8a, 0x8a, 0xff},
}

// arrows maps heading glyphs to a unit direction in screen space.
var arrows = map[rune][2]float32{
	'↑': {0, -1},
	'↗': {0.7, -0.7},
	'→': {1, 0},
	'↘': {0.7, 0.7},
	'↓': {0, 1},
	'↙': {-0.7, 0.7},
	'←': {-1, 0},
	'↖': {-0.7, -0.7},
}

func colorOf(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// drawCell paints one cell. Printable ASCII goes through the bitmap font;
// blocks, arrows and box lines the font lacks are drawn as shapes.
func (h *Host) drawCell(dst *ebiten.Image, x, y int, cell core.Cell) {
	px, py := float32(x*cellW), float32(y*cellH)
	cx, cy := px+cellW/2, py+cellH/2
	clr := colorOf(cell.Color)

	switch r := cell.Rune; {
	case r == '█' || r == '▓':
		vector.DrawFilledRect(dst, px, py, cellW, cellH, clr, false)
		if r == '▓' {
			vector.StrokeRect(dst, px+0.5, py+0.5, cellW-1, cellH-1, 1, background, false)
		}

	case r == '─':
		vector.StrokeLine(dst, px, cy, px+cellW, cy, 1, clr, false)
	case r == '│':
		vector.StrokeLine(dst, cx, py, cx, py+cellH, 1, clr, false)
	case r == '┌':
		vector.StrokeLine(dst, cx, cy, px+cellW, cy, 1, clr, false)
		vector.StrokeLine(dst, cx, cy, cx, py+cellH, 1, clr, false)
	case r == '┐':
		vector.StrokeLine(dst, px, cy, cx, cy, 1, clr, false)
		vector.StrokeLine(dst, cx, cy, cx, py+cellH, 1, clr, false)
	case r == '└':
		vector.StrokeLine(dst, cx, cy, px+cellW, cy, 1, clr, false)
		vector.StrokeLine(dst, cx, py, cx, cy, 1, clr, false)
	case r == '┘':
		vector.StrokeLine(dst, px, cy, cx, cy, 1, clr, false)
		vector.StrokeLine(dst, cx, py, cx, cy, 1, clr, false)

	case r < 0x80:
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(px), float64(py))
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(dst, string(r), h.face, op)

	default:
		if d, ok := arrows[r]; ok {
			tipX, tipY := cx+d[0]*cellW, cy+d[1]*cellH/2
			vector.DrawFilledCircle(dst, cx, cy, cellW/2-1, clr, true)
			vector.StrokeLine(dst, cx, cy, tipX, tipY, 2, clr, true)
			return
		}
		vector.DrawFilledCircle(dst, cx, cy, 1.5, clr, true)
	}
}
