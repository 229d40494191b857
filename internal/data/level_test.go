package data

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var validRows = []string{
	"################",
	"#@      #     X#",
	"#  C    #      #",
	"#       #   D  #",
	"#  O         S #",
	"#              #",
	"#   V  G  L    #",
	"#              #",
	"#              #",
	"#              #",
	"#              #",
	"#              #",
	"#              #",
	"#              #",
	"#              #",
	"################",
}

func grid(rows []string) string { return strings.Join(rows, "\n") + "\n" }

func TestDecodeValidLevel(t *testing.T) {
	lvl, err := Decode(strings.NewReader(grid(validRows)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	// first text row is the top of the playfield
	if got := lvl.At(1, 14); got != CellPlayer {
		t.Errorf("Expected player at (1,14), got %s", got)
	}
	if got := lvl.At(14, 14); got != CellExit {
		t.Errorf("Expected exit at (14,14), got %s", got)
	}
	if got := lvl.At(3, 11); got != CellPit {
		t.Errorf("Expected pit at (3,11), got %s", got)
	}
	if lvl.Count(CellCitizen) != 1 || lvl.Count(CellDumbZombie) != 1 || lvl.Count(CellSmartZombie) != 1 {
		t.Errorf("Expected one citizen and one zombie of each kind")
	}
	if lvl.Count(CellVaccineGoodie)+lvl.Count(CellGasCanGoodie)+lvl.Count(CellLandmineGoodie) != 3 {
		t.Errorf("Expected three goodies")
	}
	if got := lvl.At(-1, 40); got != CellEmpty {
		t.Errorf("Expected out-of-range tile to read empty, got %s", got)
	}
}

func TestDecodeToleratesTrailingBlanks(t *testing.T) {
	rows := append([]string(nil), validRows...)
	rows[3] = rows[3] + "   \r"
	text := grid(rows) + "\n   \n"
	if _, err := Decode(strings.NewReader(text)); err != nil {
		t.Errorf("Expected trailing blanks to be accepted, got %v", err)
	}
}

func TestDecodeLowercaseTiles(t *testing.T) {
	rows := append([]string(nil), validRows...)
	rows[2] = "#  c    #      #"
	lvl, err := Decode(strings.NewReader(grid(rows)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if lvl.At(3, 13) != CellCitizen {
		t.Errorf("Expected lowercase c to decode as citizen, got %s", lvl.At(3, 13))
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	mutate := func(fn func(rows []string) []string) string {
		rows := append([]string(nil), validRows...)
		return grid(fn(rows))
	}
	cases := map[string]string{
		"short row": mutate(func(r []string) []string { r[4] = "#  O   #"; return r }),
		"long row":  mutate(func(r []string) []string { r[4] = r[4] + "##"; return r }),
		"bad char":  mutate(func(r []string) []string { r[5] = "#     ?        #"; return r }),
		"no exit":   mutate(func(r []string) []string { r[1] = "#@      #      #"; return r }),
		"no player": mutate(func(r []string) []string { r[1] = "#       #     X#"; return r }),
		"open edge": mutate(func(r []string) []string { r[6] = "    V  G  L    #"; return r }),
		"few rows":  mutate(func(r []string) []string { return r[:10] }),
		"extra row": mutate(func(r []string) []string { return append(r, "#") }),
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(text))
			if !errors.Is(err, ErrBadFormat) {
				t.Errorf("Expected ErrBadFormat, got %v", err)
			}
		})
	}
}

func TestFileSourceManifest(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "first.txt"), []byte(grid(validRows)), 0o644); err != nil {
		t.Fatal(err)
	}
	bad := append([]string(nil), validRows...)
	bad[0] = "#######  #######"
	if err := os.WriteFile(filepath.Join(dir, "broken.txt"), []byte(grid(bad)), 0o644); err != nil {
		t.Fatal(err)
	}
	manifest := filepath.Join(dir, "levels.yaml")
	body := "levels:\n  - file: first.txt\n    name: Downtown\n  - file: broken.txt\n  - file: missing.txt\n"
	if err := os.WriteFile(manifest, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := NewFileSource(manifest, dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if src.Manifest().Count() != 3 {
		t.Errorf("Expected 3 manifest entries, got %d", src.Manifest().Count())
	}

	lvl, err := src.Load(1)
	if err != nil {
		t.Fatalf("Expected level 1 to load, got %v", err)
	}
	if lvl.Name != "Downtown" {
		t.Errorf("Expected name Downtown, got %q", lvl.Name)
	}
	if _, err := src.Load(2); !errors.Is(err, ErrBadFormat) {
		t.Errorf("Expected ErrBadFormat for level 2, got %v", err)
	}
	if _, err := src.Load(3); !errors.Is(err, ErrNoMoreLevels) {
		t.Errorf("Expected ErrNoMoreLevels for missing file, got %v", err)
	}
	if _, err := src.Load(4); !errors.Is(err, ErrNoMoreLevels) {
		t.Errorf("Expected ErrNoMoreLevels past the manifest, got %v", err)
	}
}

func TestFileSourceNamingConvention(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "level01.txt"), []byte(grid(validRows)), 0o644); err != nil {
		t.Fatal(err)
	}
	src, err := NewFileSource(filepath.Join(dir, "levels.yaml"), dir)
	if err != nil {
		t.Fatalf("Expected missing manifest to be tolerated, got %v", err)
	}
	if src.Manifest() != nil {
		t.Error("Expected no manifest")
	}
	if _, err := src.Load(1); err != nil {
		t.Errorf("Expected level01.txt to load, got %v", err)
	}
	if _, err := src.Load(2); !errors.Is(err, ErrNoMoreLevels) {
		t.Errorf("Expected ErrNoMoreLevels, got %v", err)
	}
}
