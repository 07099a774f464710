package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/coinhop/internal/domain/level"
)

// LevelsDir is the directory, relative to the asset root, holding level descriptors
const LevelsDir = "levels"

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadSettings loads settings.yaml on top of DefaultSettings.
// A missing file is not an error.
func (l *Loader) LoadSettings() (*Settings, error) {
	cfg := DefaultSettings()

	data, err := fs.ReadFile(l.fsys, "settings.yaml")
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings.yaml: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings.yaml: %w", err)
	}
	cfg.fillDefaults()

	return cfg, nil
}

// LoadLevel loads levels/<name>. Names ending in .tmx are read as Tiled maps,
// everything else as JSON (".json" is appended when there is no extension).
// Errors are always *LoadError.
func (l *Loader) LoadLevel(name string) (*LevelDescriptor, error) {
	file := name
	if path.Ext(file) == "" {
		file += ".json"
	}
	p := path.Join(LevelsDir, file)

	if path.Ext(file) == ".tmx" {
		desc, err := l.loadTiled(p, name)
		if err != nil {
			return nil, &LoadError{Level: name, Err: err}
		}
		return desc, nil
	}

	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, &LoadError{Level: name, Err: fmt.Errorf("failed to read %s: %w", p, err)}
	}

	var desc LevelDescriptor
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, &LoadError{Level: name, Err: fmt.Errorf("failed to parse %s: %w", p, err)}
	}
	desc.Name = name

	return &desc, nil
}

// LevelSet resolves level indices against the configured level list.
// Parsed descriptors are cached until invalidated by the file watcher.
type LevelSet struct {
	loader *Loader
	names  []string

	mu    sync.Mutex
	cache map[string]*LevelDescriptor
}

// NewLevelSet creates a level set over the given level names
func NewLevelSet(loader *Loader, names []string) (*LevelSet, error) {
	if len(names) == 0 {
		return nil, ErrNoLevels
	}
	return &LevelSet{
		loader: loader,
		names:  names,
		cache:  make(map[string]*LevelDescriptor),
	}, nil
}

// Count returns the number of levels
func (s *LevelSet) Count() int {
	return len(s.names)
}

// Name returns the level name at index, wrapped into range
func (s *LevelSet) Name(index int) string {
	return s.names[level.Wrap(index, len(s.names))]
}

// Descriptor loads the descriptor for index, wrapped into range
func (s *LevelSet) Descriptor(index int) (*LevelDescriptor, error) {
	name := s.Name(index)

	s.mu.Lock()
	defer s.mu.Unlock()

	if desc, ok := s.cache[name]; ok {
		return desc, nil
	}

	desc, err := s.loader.LoadLevel(name)
	if err != nil {
		return nil, err
	}
	s.cache[name] = desc
	return desc, nil
}

// Invalidate drops a cached descriptor by file name (e.g. "level00.json").
// Returns true if the name belongs to this set.
func (s *LevelSet) Invalidate(file string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range s.names {
		if name == file || name+".json" == file {
			delete(s.cache, name)
			return true
		}
	}
	return false
}
