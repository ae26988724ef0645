package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	charmLog "github.com/charmbracelet/log"
	toml "github.com/pelletier/go-toml/v2"
)

type StorageDriver string

const (
	StorageMemory StorageDriver = "memory"
	StorageSQLite StorageDriver = "sqlite"
)

type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Storage StorageConfig `toml:"storage"`
	Edit    EditConfig    `toml:"edit"`
	Board   BoardConfig   `toml:"board"`
	Keys    KeyConfig     `toml:"keys"`
}

type LoggingConfig struct {
	Level   string        `toml:"level"`
	DevFile DevFileConfig `toml:"dev_file"`
}

// DevFileConfig controls the logfmt file sink used in dev mode.
type DevFileConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// StorageConfig selects the backing store for the three lists. Both drivers keep state in memory only.
type StorageConfig struct {
	Driver StorageDriver `toml:"driver"`
}

type EditConfig struct {
	PreselectStatus bool `toml:"preselect_status"`
}

type BoardConfig struct {
	TodoTitle       string `toml:"todo_title"`
	InProgressTitle string `toml:"in_progress_title"`
	DoneTitle       string `toml:"done_title"`
}

type KeyConfig struct {
	Add      string `toml:"add"`
	Edit     string `toml:"edit"`
	Delete   string `toml:"delete"`
	Validate string `toml:"validate"`
	Cancel   string `toml:"cancel"`
	Select   string `toml:"select"`
	Info     string `toml:"info"`
	Copy     string `toml:"copy"`
}

func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level: "info",
			DevFile: DevFileConfig{
				Enabled: true,
			},
		},
		Storage: StorageConfig{
			Driver: StorageMemory,
		},
		Edit: EditConfig{
			PreselectStatus: true,
		},
		Board: BoardConfig{
			TodoTitle:       "To-Do",
			InProgressTitle: "In Progress",
			DoneTitle:       "Done",
		},
		Keys: KeyConfig{
			Add:      "n",
			Edit:     "e",
			Delete:   "d",
			Validate: "enter",
			Cancel:   "esc",
			Select:   "space",
			Info:     "i",
			Copy:     "y",
		},
	}
}

func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	level := strings.TrimSpace(strings.ToLower(c.Logging.Level))
	if _, err := charmLog.ParseLevel(level); err != nil || level == "" {
		return fmt.Errorf("invalid logging.level: %q", c.Logging.Level)
	}

	switch c.Storage.Driver {
	case StorageMemory, StorageSQLite:
	default:
		return fmt.Errorf("invalid storage.driver: %q", c.Storage.Driver)
	}

	titles := map[string]string{
		"board.todo_title":        c.Board.TodoTitle,
		"board.in_progress_title": c.Board.InProgressTitle,
		"board.done_title":        c.Board.DoneTitle,
	}
	for _, name := range slices.Sorted(maps.Keys(titles)) {
		if strings.TrimSpace(titles[name]) == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	bindings := []struct {
		name  string
		value string
	}{
		{"keys.add", c.Keys.Add},
		{"keys.edit", c.Keys.Edit},
		{"keys.delete", c.Keys.Delete},
		{"keys.validate", c.Keys.Validate},
		{"keys.cancel", c.Keys.Cancel},
		{"keys.select", c.Keys.Select},
		{"keys.info", c.Keys.Info},
		{"keys.copy", c.Keys.Copy},
	}
	seen := map[string]string{}
	for _, binding := range bindings {
		key := strings.TrimSpace(binding.value)
		if key == "" {
			return fmt.Errorf("%s is required", binding.name)
		}
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%s duplicates %s: %q", binding.name, prev, key)
		}
		seen[key] = binding.name
		if isReservedKey(key) {
			return fmt.Errorf("%s collides with a fixed binding: %q", binding.name, key)
		}
	}
	// Validate and cancel stay live while an inline editor has focus.
	for _, binding := range bindings[3:5] {
		if key := strings.TrimSpace(binding.value); isTypingKey(key) {
			return fmt.Errorf("%s must not be a printable key: %q", binding.name, key)
		}
	}

	return nil
}

// reservedKeys are the fixed quit, help, navigation and field-cycling bindings.
var reservedKeys = []string{
	"q", "ctrl+c", "?",
	"h", "j", "k", "l",
	"left", "right", "up", "down",
	"tab", "shift+tab",
}

func isReservedKey(key string) bool {
	if utf8.RuneCountInString(key) > 1 {
		key = strings.ToLower(key)
	}
	return slices.Contains(reservedKeys, key)
}

// isTypingKey reports whether key would also insert text into a focused input.
func isTypingKey(key string) bool {
	return utf8.RuneCountInString(key) == 1 || strings.EqualFold(key, "space")
}
