package replio

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the optional REPL settings a user may keep in
// ".lalr1rc.toml" alongside the invocation directory.
type Config struct {
	Debug    bool   `toml:"debug"`
	Partials bool   `toml:"partials"`
	Prompt   string `toml:"prompt"`
}

// DefaultConfig is what a REPL runs with absent any config file.
func DefaultConfig() Config {
	return Config{Prompt: "> "}
}

// LoadConfig reads path if present, overlaying its values onto
// DefaultConfig. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
