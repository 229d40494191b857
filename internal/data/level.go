package data

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Grid dimensions of every level, in tiles.
const (
	LevelWidth  = 16
	LevelHeight = 16
)

var (
	// ErrBadFormat marks malformed level text.
	ErrBadFormat = errors.New("level: bad format")
	// ErrNoMoreLevels is returned when the requested level does not exist.
	ErrNoMoreLevels = errors.New("level: no more levels")
)

// Cell is the decoded content of one level tile.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellPlayer
	CellDumbZombie
	CellSmartZombie
	CellCitizen
	CellWall
	CellExit
	CellPit
	CellVaccineGoodie
	CellGasCanGoodie
	CellLandmineGoodie
)

var cellNames = [...]string{
	CellEmpty:          "empty",
	CellPlayer:         "player",
	CellDumbZombie:     "dumb zombie",
	CellSmartZombie:    "smart zombie",
	CellCitizen:        "citizen",
	CellWall:           "wall",
	CellExit:           "exit",
	CellPit:            "pit",
	CellVaccineGoodie:  "vaccine goodie",
	CellGasCanGoodie:   "gas can goodie",
	CellLandmineGoodie: "landmine goodie",
}

func (c Cell) String() string {
	if int(c) < len(cellNames) {
		return cellNames[c]
	}
	return fmt.Sprintf("cell(%d)", c)
}

func cellFor(ch byte) (Cell, bool) {
	switch ch {
	case ' ':
		return CellEmpty, true
	case 'X', 'x':
		return CellExit, true
	case '@':
		return CellPlayer, true
	case 'D', 'd':
		return CellDumbZombie, true
	case 'S', 's':
		return CellSmartZombie, true
	case 'C', 'c':
		return CellCitizen, true
	case '#':
		return CellWall, true
	case 'O', 'o':
		return CellPit, true
	case 'V', 'v':
		return CellVaccineGoodie, true
	case 'G', 'g':
		return CellGasCanGoodie, true
	case 'L', 'l':
		return CellLandmineGoodie, true
	}
	return CellEmpty, false
}

// Level is a decoded 16x16 maze. Row 0 is the bottom of the playfield; the
// first line of the text file is the top row.
type Level struct {
	Name  string
	cells [LevelHeight][LevelWidth]Cell
}

// At returns the cell at tile (x, y); out-of-range tiles read as empty.
func (l *Level) At(x, y int) Cell {
	if x < 0 || x >= LevelWidth || y < 0 || y >= LevelHeight {
		return CellEmpty
	}
	return l.cells[y][x]
}

// Count returns how many tiles hold c.
func (l *Level) Count(c Cell) int {
	n := 0
	for y := 0; y < LevelHeight; y++ {
		for x := 0; x < LevelWidth; x++ {
			if l.cells[y][x] == c {
				n++
			}
		}
	}
	return n
}

// Decode parses a level grid. Lines may carry trailing blanks; blank lines
// may follow the grid. Anything else out of shape is ErrBadFormat.
func Decode(r io.Reader) (*Level, error) {
	lvl := &Level{}
	foundExit, foundPlayer := false, false

	scanner := bufio.NewScanner(r)
	y := LevelHeight - 1
	for scanner.Scan() {
		line := scanner.Text()
		if y < 0 {
			if strings.TrimRight(line, " \t\r") != "" {
				return nil, fmt.Errorf("%w: content after row %d", ErrBadFormat, LevelHeight)
			}
			continue
		}
		if len(line) < LevelWidth || strings.TrimRight(line[LevelWidth:], " \t\r") != "" {
			return nil, fmt.Errorf("%w: row %d must be %d columns wide", ErrBadFormat, LevelHeight-y, LevelWidth)
		}
		for x := 0; x < LevelWidth; x++ {
			c, ok := cellFor(line[x])
			if !ok {
				return nil, fmt.Errorf("%w: unknown tile %q at row %d column %d", ErrBadFormat, line[x], LevelHeight-y, x+1)
			}
			switch c {
			case CellExit:
				foundExit = true
			case CellPlayer:
				foundPlayer = true
			}
			lvl.cells[y][x] = c
		}
		y--
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	if y >= 0 {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrBadFormat, LevelHeight, LevelHeight-1-y)
	}
	if !foundExit {
		return nil, fmt.Errorf("%w: no exit", ErrBadFormat)
	}
	if !foundPlayer {
		return nil, fmt.Errorf("%w: no player start", ErrBadFormat)
	}
	if !lvl.edgesValid() {
		return nil, fmt.Errorf("%w: border must be walls", ErrBadFormat)
	}
	return lvl, nil
}

func (l *Level) edgesValid() bool {
	for y := 0; y < LevelHeight; y++ {
		if l.cells[y][0] != CellWall || l.cells[y][LevelWidth-1] != CellWall {
			return false
		}
	}
	for x := 0; x < LevelWidth; x++ {
		if l.cells[0][x] != CellWall || l.cells[LevelHeight-1][x] != CellWall {
			return false
		}
	}
	return true
}
