package presets

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/algotutor/backend/internal/logging"
)

var errIncomplete = errors.New("preset missing id or tool_id")

// Preset is a prepared exercise: a tool invocation with fixed inputs,
// ready to be executed or streamed for demonstration.
type Preset struct {
	ID          string                 `toml:"id" json:"id"`
	Title       string                 `toml:"title" json:"title"`
	Description string                 `toml:"description" json:"description"`
	ToolID      string                 `toml:"tool_id" json:"tool_id"`
	Params      map[string]interface{} `toml:"params" json:"params"`
}

// Store holds loaded presets keyed by ID.
type Store struct {
	mu      sync.RWMutex
	presets map[string]Preset
	logger  *logging.Logger
}

// NewStore creates an empty preset store.
func NewStore(logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.NewDefault()
	}
	return &Store{
		presets: make(map[string]Preset),
		logger:  logger,
	}
}

// LoadDir loads all .toml preset files from dir.
//
// A missing directory is not an error; malformed or incomplete files are
// skipped with a log entry so one bad preset cannot take down startup.
func (s *Store) LoadDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		s.logger.Warn("presets directory not found", zap.String("dir", dir))
		return nil
	}

	var loaded, failed int

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(info.Name(), ".toml") {
			return nil
		}

		if err := s.loadFile(path); err != nil {
			s.logger.Warn("failed to load preset",
				zap.String("file", info.Name()),
				zap.Error(err))
			failed++
		} else {
			loaded++
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("presets loaded",
		zap.Int("loaded", loaded),
		zap.Int("failed", failed))
	return nil
}

func (s *Store) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var p Preset
	if err := toml.Unmarshal(data, &p); err != nil {
		return err
	}

	if p.ID == "" || p.ToolID == "" {
		return errIncomplete
	}

	s.mu.Lock()
	s.presets[p.ID] = p
	s.mu.Unlock()
	return nil
}

// Add registers a preset directly, replacing any existing one with the same ID.
func (s *Store) Add(p Preset) {
	s.mu.Lock()
	s.presets[p.ID] = p
	s.mu.Unlock()
}

// List returns all presets sorted by ID.
func (s *Store) List() []Preset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Preset, 0, len(s.presets))
	for _, p := range s.presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Get returns the preset with the given ID.
func (s *Store) Get(id string) (Preset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.presets[id]
	return p, ok
}

// Count returns the number of loaded presets.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.presets)
}
