package platform

import (
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/forcelightning/mazebot/toml"
	"github.com/forcelightning/mazebot/transport"
)

// Config is the root configuration document for a mazebot run, loaded from
// a TOML file at startup.
type Config struct {
	Maze   MazeConfig   `toml:"maze"`
	Link   LinkConfig   `toml:"link"`
	Debug  bool         `toml:"debug"`
	LogDir string       `toml:"log_dir"`
}

// MazeConfig controls the simulated ground-truth maze, when no physical
// board is attached.
type MazeConfig struct {
	Rows     int     `toml:"rows"`
	Cols     int     `toml:"cols"`
	Seed     int64   `toml:"seed"`
	Braiding float64 `toml:"braiding"`
}

// LinkConfig controls the optional base-station transport link.
type LinkConfig struct {
	Enabled        bool          `toml:"enabled"`
	Role           string        `toml:"role"` // "server" or "client"
	Address        string        `toml:"address"`
	ConnectTimeout time.Duration `toml:"connect_timeout"`
}

// DefaultConfig returns a Config with the same sized defaults the original
// firmware used for its test maze, link disabled, debug logging off.
func DefaultConfig() Config {
	return Config{
		Maze: MazeConfig{
			Rows:     5,
			Cols:     5,
			Seed:     1,
			Braiding: 0,
		},
		Link: LinkConfig{
			Enabled:        false,
			Role:           "server",
			Address:        ":7777",
			ConnectTimeout: 5 * time.Second,
		},
		LogDir: ".",
	}
}

// LoadConfig reads and parses a TOML config file at path, starting from
// DefaultConfig so unset fields keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config file %q", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config file %q", path)
	}

	return cfg, nil
}

// LinkRole resolves the configured role string to a transport.Role.
func (c LinkConfig) LinkRole() transport.Role {
	switch c.Role {
	case "server":
		return transport.RoleServer
	case "client":
		return transport.RoleClient
	default:
		return transport.RoleNone
	}
}
