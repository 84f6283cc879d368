package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_SaveLoadSettings(t *testing.T) {
	s := NewStore(t.TempDir())

	if err := s.SaveSettings(Settings{EasyMode: true}); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := s.LoadSettings()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if !loaded.EasyMode {
		t.Error("expected EasyMode to round-trip as true")
	}
}

func TestStore_SaveLoadHighScores(t *testing.T) {
	s := NewStore(t.TempDir())

	if err := s.SaveHighScores(HighScores{Normal: 12, Easy: 7}); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := s.LoadHighScores()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if loaded.Normal != 12 || loaded.Easy != 7 {
		t.Errorf("expected 12/7, got %d/%d", loaded.Normal, loaded.Easy)
	}
}

func TestStore_LoadMissing(t *testing.T) {
	s := NewStore(t.TempDir())

	if _, err := s.LoadSettings(); err == nil {
		t.Error("expected error for missing settings file")
	}
	if _, err := s.LoadHighScores(); err == nil {
		t.Error("expected error for missing high-scores file")
	}
}

func TestStore_LoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(dir)

	if _, err := s.LoadSettings(); err == nil {
		t.Error("expected error for corrupt settings file")
	}
}

func TestStore_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := NewStore(dir)

	if err := s.SaveHighScores(HighScores{Normal: 1}); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected data dir to exist: %v", err)
	}
}

func TestProfile_DefaultsOnMissing(t *testing.T) {
	p := LoadProfile(NewStore(t.TempDir()))

	if p.EasyMode() {
		t.Error("expected easy mode off by default")
	}
	if p.HighScore(false) != 0 || p.HighScore(true) != 0 {
		t.Error("expected zero high scores by default")
	}
}

func TestProfile_DefaultsOnCorrupt(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"settings.json", "highscores.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("garbage"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	p := LoadProfile(NewStore(dir))
	if p.EasyMode() || p.HighScore(false) != 0 {
		t.Error("expected defaults when persisted data is corrupt")
	}
}

func TestProfile_PersistsAcrossLoads(t *testing.T) {
	dir := t.TempDir()

	p := LoadProfile(NewStore(dir))
	p.SetEasyMode(true)
	p.SetHighScore(false, 9)
	p.SetHighScore(true, 4)

	reloaded := LoadProfile(NewStore(dir))
	if !reloaded.EasyMode() {
		t.Error("expected easy mode to persist")
	}
	if reloaded.HighScore(false) != 9 {
		t.Errorf("expected normal high score 9, got %d", reloaded.HighScore(false))
	}
	if reloaded.HighScore(true) != 4 {
		t.Errorf("expected easy high score 4, got %d", reloaded.HighScore(true))
	}
}

func TestProfile_ScoresAreIndependentSlots(t *testing.T) {
	p := LoadProfile(NewStore(t.TempDir()))

	p.SetHighScore(false, 10)
	if p.HighScore(true) != 0 {
		t.Error("expected easy slot untouched by normal score")
	}
}
