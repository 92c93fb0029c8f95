package systems

import (
	"encoding/json"
	"log"
	"strconv"

	cfg "github.com/genjam/platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen    bool   `json:"fullscreen"`
	ShowColliders bool   `json:"showColliders"`
	PlayerName    string `json:"playerName,omitempty"`
}

const (
	settingsKey  = "settings"
	bestScoreKey = "best_score"
)

// ItemStore is the subset of gdata.Manager the save code needs.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var saveStore ItemStore

// InitPersistence opens the per-user save directory.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "genjam_platformer",
	})
	if err != nil {
		return err
	}
	saveStore = m
	return nil
}

// SetItemStore replaces the save backend. A nil store disables saving.
func SetItemStore(s ItemStore) {
	saveStore = s
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing
// has been saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if saveStore == nil {
		return nil, nil
	}

	data, err := saveStore.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if saveStore == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := saveStore.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings stores the live window and debug settings.
func SaveCurrentSettings() {
	_ = SaveSettings(&SavedSettings{
		Fullscreen:    ebiten.IsFullscreen(),
		ShowColliders: cfg.Debug.ShowColliders,
		PlayerName:    cfg.GameState.PlayerName,
	})
}

// ApplySavedSettingsGlobal applies settings during startup, before any
// scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
	applySettings(saved)
}

// applySettings copies the saved values into the config. A -debug flag on
// the command line wins over a saved "off".
func applySettings(saved *SavedSettings) {
	cfg.Debug.ShowColliders = cfg.Debug.ShowColliders || saved.ShowColliders
	if saved.PlayerName != "" {
		cfg.GameState.PlayerName = saved.PlayerName
	}
}

// LoadBestScore returns the saved high score, or 0.
func LoadBestScore() int {
	if saveStore == nil {
		return 0
	}
	data, err := saveStore.LoadItem(bestScoreKey)
	if err != nil || data == nil {
		return 0
	}
	best, err := strconv.Atoi(string(data))
	if err != nil {
		log.Printf("Warning: Could not parse best score %q: %v", data, err)
		return 0
	}
	return best
}

// RecordScore saves score when it beats the stored best. It returns the best
// score after the update and whether score set a new record.
func RecordScore(score int) (best int, newBest bool) {
	best = LoadBestScore()
	if score <= best {
		return best, false
	}
	if saveStore != nil {
		if err := saveStore.SaveItem(bestScoreKey, []byte(strconv.Itoa(score))); err != nil {
			log.Printf("Warning: Could not save best score: %v", err)
		}
	}
	return score, true
}
