package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-lander/internal/core"
)

//go:embed defaults/*.yaml
var defaultFS embed.FS

// Loader handles loading levels from a directory tree.
type Loader struct {
	FS   fs.FS
	Root string // Shown in errors and FilePath

	// Hitbox is the vehicle size spawns are checked against.
	// Zero means DefaultHitbox.
	Hitbox core.Vec2

	// Problems lists files skipped by the last LoadAll.
	Problems []error
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root), Root: root}
}

// Embedded returns a loader over the built-in level pack.
func Embedded() *Loader {
	sub, err := fs.Sub(defaultFS, "defaults")
	if err != nil {
		panic(fmt.Sprintf("levels: embedded pack: %v", err))
	}
	return &Loader{FS: sub, Root: "embedded"}
}

// LoadAll recursively scans and loads all level files.
// Invalid files and duplicate IDs are skipped and recorded in Problems.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	seen := make(map[string]string)
	l.Problems = nil

	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			l.Problems = append(l.Problems, err)
			return nil
		}
		if prev, dup := seen[level.ID]; dup {
			l.Problems = append(l.Problems, fmt.Errorf("%s: duplicate level id %q (first in %s)", level.FilePath, level.ID, prev))
			return nil
		}
		seen[level.ID] = level.FilePath

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads and validates a single level file, relative to the loader root.
func (l *Loader) LoadFile(p string) (Level, error) {
	display := path.Join(l.Root, p)

	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading file %s: %w", display, err)
	}

	level, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing file %s: %w", display, err)
	}
	level.FilePath = display

	if err := level.ValidateHitbox(l.Hitbox); err != nil {
		return Level{}, fmt.Errorf("levels: invalid file %s: %w", display, err)
	}

	return level, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
