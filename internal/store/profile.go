package store

// Profile is the settings and high-score service injected into the game.
// It loads once at startup, keeps in-memory values authoritative, and
// persists on every mutation. Save failures are swallowed: the session
// keeps its values and tries again on the next change.
type Profile struct {
	store    *Store
	settings Settings
	scores   HighScores
}

// LoadProfile builds a profile from the store, falling back to defaults
// when nothing is persisted yet or the data is corrupt.
func LoadProfile(s *Store) *Profile {
	p := &Profile{store: s, settings: DefaultSettings()}
	if loaded, err := s.LoadSettings(); err == nil {
		p.settings = loaded
	}
	if loaded, err := s.LoadHighScores(); err == nil {
		p.scores = loaded
	}
	return p
}

// EasyMode reports whether easy mode is on.
func (p *Profile) EasyMode() bool {
	return p.settings.EasyMode
}

// SetEasyMode toggles easy mode and persists the settings immediately.
func (p *Profile) SetEasyMode(on bool) {
	p.settings.EasyMode = on
	_ = p.store.SaveSettings(p.settings)
}

// HighScore returns the stored score for the given mode.
func (p *Profile) HighScore(easy bool) int {
	if easy {
		return p.scores.Easy
	}
	return p.scores.Normal
}

// SetHighScore stores a new score for the given mode and persists it.
func (p *Profile) SetHighScore(easy bool, score int) {
	if easy {
		p.scores.Easy = score
	} else {
		p.scores.Normal = score
	}
	_ = p.store.SaveHighScores(p.scores)
}
