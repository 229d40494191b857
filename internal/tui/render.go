package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/zdash/zombiedash/internal/world"
)

// Each tile is two terminal columns wide so the maze looks square.
const (
	cellWidth  = 2
	gridTiles  = 16
	gridTop    = 1
	gridLeft   = 1
	statusLine = gridTop + gridTiles + 1
	bannerLine = 0
)

type glyph struct {
	r     rune
	style tcell.Style
}

var glyphs = map[world.Kind]glyph{
	world.KindPlayer:         {'@', tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)},
	world.KindDumbZombie:     {'z', tcell.StyleDefault.Foreground(tcell.ColorGreen)},
	world.KindSmartZombie:    {'Z', tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)},
	world.KindCitizen:        {'c', tcell.StyleDefault.Foreground(tcell.ColorAqua)},
	world.KindWall:           {'█', tcell.StyleDefault.Foreground(tcell.ColorGray)},
	world.KindExit:           {'X', tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)},
	world.KindPit:            {'O', tcell.StyleDefault.Foreground(tcell.ColorMaroon)},
	world.KindFlame:          {'*', tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)},
	world.KindVomit:          {'~', tcell.StyleDefault.Foreground(tcell.ColorOlive)},
	world.KindLandmine:       {'^', tcell.StyleDefault.Foreground(tcell.ColorFuchsia)},
	world.KindVaccineGoodie:  {'+', tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)},
	world.KindGasCanGoodie:   {'g', tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)},
	world.KindLandmineGoodie: {'m', tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)},
}

// Frame is everything drawn in one refresh.
type Frame struct {
	Sprites []world.Sprite // back to front
	Status  string
	Banner  string
}

// cellFor maps a world position to a screen cell, flipping y so the top
// tile row is drawn first. Positions between tiles round to the nearest.
func cellFor(x, y int) (col, row int) {
	tx := (x + world.TileSize/2) / world.TileSize
	ty := (y + world.TileSize/2) / world.TileSize
	return gridLeft + tx*cellWidth, gridTop + (gridTiles - 1 - ty)
}

// Draw renders f and shows it.
func (s *Screen) Draw(f Frame) {
	sc := s.screen
	sc.Clear()

	for _, sp := range f.Sprites {
		g, ok := glyphs[sp.Kind]
		if !ok {
			continue
		}
		col, row := cellFor(sp.X, sp.Y)
		sc.SetContent(col, row, g.r, nil, g.style)
		if sp.Kind == world.KindWall {
			sc.SetContent(col+1, row, g.r, nil, g.style)
		}
	}

	drawText(sc, gridLeft, statusLine, tcell.StyleDefault, f.Status)
	if f.Banner != "" {
		drawText(sc, gridLeft, bannerLine, tcell.StyleDefault.Reverse(true).Bold(true), f.Banner)
	}
	sc.Show()
}

func drawText(sc tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		sc.SetContent(x, y, r, nil, style)
		x++
	}
}
