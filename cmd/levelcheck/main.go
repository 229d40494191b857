// levelcheck validates every level a manifest names and prints what each
// one contains. With a third argument it also writes the summary as YAML.
package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zdash/zombiedash/internal/data"
)

type LevelSummary struct {
	Level        int    `yaml:"level"`
	Name         string `yaml:"name,omitempty"`
	Error        string `yaml:"error,omitempty"`
	Citizens     int    `yaml:"citizens"`
	DumbZombies  int    `yaml:"dumb_zombies"`
	SmartZombies int    `yaml:"smart_zombies"`
	Pits         int    `yaml:"pits"`
	Exits        int    `yaml:"exits"`
	Goodies      int    `yaml:"goodies"`
}

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: levelcheck <levels.yaml> <level_dir> [report.yaml]")
		os.Exit(1)
	}

	src, err := data.NewFileSource(os.Args[1], os.Args[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// a manifest entry whose file is missing is reported, not treated as the end
	limit := 99
	if m := src.Manifest(); m != nil {
		limit = m.Count()
	}

	var summaries []LevelSummary
	bad := 0
	for n := 1; n <= limit; n++ {
		lvl, err := src.Load(n)
		if errors.Is(err, data.ErrNoMoreLevels) && src.Manifest() == nil {
			break
		}
		s := LevelSummary{Level: n}
		if err != nil {
			s.Error = err.Error()
			bad++
			fmt.Printf("level %2d  FAIL  %v\n", n, err)
			summaries = append(summaries, s)
			continue
		}
		s.Name = lvl.Name
		s.Citizens = lvl.Count(data.CellCitizen)
		s.DumbZombies = lvl.Count(data.CellDumbZombie)
		s.SmartZombies = lvl.Count(data.CellSmartZombie)
		s.Pits = lvl.Count(data.CellPit)
		s.Exits = lvl.Count(data.CellExit)
		s.Goodies = lvl.Count(data.CellVaccineGoodie) + lvl.Count(data.CellGasCanGoodie) + lvl.Count(data.CellLandmineGoodie)
		summaries = append(summaries, s)
		fmt.Printf("level %2d  ok    %-20s citizens=%d zombies=%d/%d pits=%d goodies=%d\n",
			n, s.Name, s.Citizens, s.DumbZombies, s.SmartZombies, s.Pits, s.Goodies)
	}

	if len(os.Args) > 3 {
		out, err := yaml.Marshal(summaries)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := os.WriteFile(os.Args[3], out, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d level summaries to %s\n", len(summaries), os.Args[3])
	}

	if bad > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d levels failed\n", bad, len(summaries))
		os.Exit(1)
	}
}
