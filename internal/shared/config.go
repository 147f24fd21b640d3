package shared

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Taskbar TaskbarConfig `toml:"taskbar"`
	Helper  HelperConfig  `toml:"helper"`
	Output  OutputConfig  `toml:"output"`
}

// TaskbarConfig controls where pinned shortcuts live and whether the shell
// surface is refreshed after a successful mutation.
type TaskbarConfig struct {
	PinDir       string `toml:"pin_dir"`
	RestartShell bool   `toml:"restart_shell"`
}

// HelperConfig bounds the external helper process used by fallback strategies.
type HelperConfig struct {
	Powershell        string  `toml:"powershell"`
	CallTimeoutMS     int     `toml:"call_timeout_ms"`
	LaunchesPerSecond float64 `toml:"launches_per_second"`
}

// CallTimeout returns the per-external-call bound as a [time.Duration].
func (h HelperConfig) CallTimeout() time.Duration {
	if h.CallTimeoutMS <= 0 {
		return 10 * time.Second
	}
	return time.Duration(h.CallTimeoutMS) * time.Millisecond
}

// OutputConfig contains CLI presentation settings.
type OutputConfig struct {
	Verbose bool `toml:"verbose"`
	Color   bool `toml:"color"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a pinx.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
