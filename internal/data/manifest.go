package data

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LevelEntry is one level listed in levels.yaml.
type LevelEntry struct {
	File string `yaml:"file"`
	Name string `yaml:"name"`
}

type manifestFile struct {
	Levels []LevelEntry `yaml:"levels"`
}

// Manifest lists the playable levels in order.
type Manifest struct {
	Levels []LevelEntry
}

func (m *Manifest) Count() int { return len(m.Levels) }

// LoadManifest reads levels.yaml.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level manifest %s: %w", path, err)
	}
	var file manifestFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse level manifest: %w", err)
	}
	for i, e := range file.Levels {
		if e.File == "" {
			return nil, fmt.Errorf("parse level manifest: level %d has no file", i+1)
		}
	}
	return &Manifest{Levels: file.Levels}, nil
}

// LevelSource yields decoded levels by 1-based level number.
type LevelSource interface {
	Load(level int) (*Level, error)
}

// FileSource loads level files from a directory. With a manifest the level
// order and names come from it; without one, level N is levelNN.txt.
type FileSource struct {
	dir      string
	manifest *Manifest
}

// NewFileSource builds a FileSource. A missing manifest file selects the
// levelNN.txt naming convention; any other manifest error is returned.
func NewFileSource(manifestPath, dir string) (*FileSource, error) {
	src := &FileSource{dir: dir}
	if manifestPath == "" {
		return src, nil
	}
	m, err := LoadManifest(manifestPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return src, nil
		}
		return nil, err
	}
	src.manifest = m
	return src, nil
}

// Manifest returns the loaded manifest, or nil under the naming convention.
func (s *FileSource) Manifest() *Manifest { return s.manifest }

func (s *FileSource) entry(level int) (LevelEntry, bool) {
	if level < 1 {
		return LevelEntry{}, false
	}
	if s.manifest == nil {
		if level > 99 {
			return LevelEntry{}, false
		}
		name := fmt.Sprintf("level%02d.txt", level)
		return LevelEntry{File: name, Name: name}, true
	}
	if level > len(s.manifest.Levels) {
		return LevelEntry{}, false
	}
	return s.manifest.Levels[level-1], true
}

// Load returns ErrNoMoreLevels past the last level (or when the level file
// is absent) and an ErrBadFormat-wrapped error for malformed content.
func (s *FileSource) Load(level int) (*Level, error) {
	e, ok := s.entry(level)
	if !ok {
		return nil, ErrNoMoreLevels
	}
	path := filepath.Join(s.dir, e.File)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoMoreLevels
		}
		return nil, fmt.Errorf("open level %s: %w", path, err)
	}
	defer f.Close()

	lvl, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	lvl.Name = e.Name
	if lvl.Name == "" {
		lvl.Name = e.File
	}
	return lvl, nil
}
