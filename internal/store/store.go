// Package store persists the two JSON records the game keeps across
// sessions: settings and high scores. Load failures fall back to defaults
// and save failures are reported but ignorable; the in-memory values stay
// authoritative for the session either way.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// File names under the data directory.
const (
	settingsFile   = "settings.json"
	highScoresFile = "highscores.json"
)

// Settings is the persisted player configuration.
type Settings struct {
	EasyMode bool `json:"easyMode"`
}

// HighScores holds one slot per mode, keyed by the easy-mode flag.
type HighScores struct {
	Normal int `json:"normal"`
	Easy   int `json:"easy"`
}

// DefaultSettings returns the out-of-the-box configuration.
func DefaultSettings() Settings {
	return Settings{}
}

// Store reads and writes the persisted records under a data directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created on the
// first save, not here.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// LoadSettings reads the persisted settings. Missing or corrupt data is an
// error; callers fall back to defaults.
func (s *Store) LoadSettings() (Settings, error) {
	var out Settings
	if err := s.load(settingsFile, &out); err != nil {
		return Settings{}, err
	}
	return out, nil
}

// SaveSettings writes the settings record.
func (s *Store) SaveSettings(v Settings) error {
	return s.save(settingsFile, v)
}

// LoadHighScores reads the persisted high scores.
func (s *Store) LoadHighScores() (HighScores, error) {
	var out HighScores
	if err := s.load(highScoresFile, &out); err != nil {
		return HighScores{}, err
	}
	return out, nil
}

// SaveHighScores writes the high-score record.
func (s *Store) SaveHighScores(v HighScores) error {
	return s.save(highScoresFile, v)
}

func (s *Store) load(name string, v interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return errors.Wrapf(err, "reading %s", name)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "decoding %s", name)
	}
	return nil
}

func (s *Store) save(name string, v interface{}) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrap(err, "creating data dir")
	}
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", name)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", name)
	}
	return nil
}
