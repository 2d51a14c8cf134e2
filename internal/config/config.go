// Package config loads shim settings from an optional TOML file. With no
// file present the compiled-in defaults apply, so deployments that only need
// the well-known daemon socket ship no config at all.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/danmuck/routeshim/internal/routing"
)

// EnvSocketPath overrides the daemon socket path, taking precedence over both
// the config file and the compiled-in default.
const EnvSocketPath = "ROUTESHIM_SOCKET"

var ErrInvalidTimeout = errors.New("config: timeouts must not be negative")

// ShimConfig is the on-disk shape. Timeouts are in milliseconds; zero means
// "use the default".
type ShimConfig struct {
	SocketPath       string `toml:"socket_path"`
	ConnectTimeoutMS int64  `toml:"connect_timeout_ms"`
	WriteTimeoutMS   int64  `toml:"write_timeout_ms"`
	ReadTimeoutMS    int64  `toml:"read_timeout_ms"`
}

// Load reads path, or returns defaults when path is empty. The socket path
// environment override is applied last.
func Load(path string) (ShimConfig, error) {
	var cfg ShimConfig
	if path != "" {
		if err := loadToml(path, &cfg); err != nil {
			return ShimConfig{}, err
		}
	}
	if socket := os.Getenv(EnvSocketPath); socket != "" {
		cfg.SocketPath = socket
	}
	if err := cfg.Validate(); err != nil {
		return ShimConfig{}, err
	}
	return cfg, nil
}

// Validate rejects settings the transport layer cannot honor.
func (c ShimConfig) Validate() error {
	if c.ConnectTimeoutMS < 0 || c.WriteTimeoutMS < 0 || c.ReadTimeoutMS < 0 {
		return ErrInvalidTimeout
	}
	return nil
}

// Transport maps the file shape onto the routing transport configuration.
// Unset fields fall through to the transport defaults.
func (c ShimConfig) Transport() routing.TransportConfig {
	return routing.TransportConfig{
		SocketPath:     c.SocketPath,
		ConnectTimeout: time.Duration(c.ConnectTimeoutMS) * time.Millisecond,
		WriteTimeout:   time.Duration(c.WriteTimeoutMS) * time.Millisecond,
		ReadTimeout:    time.Duration(c.ReadTimeoutMS) * time.Millisecond,
	}.WithDefaults()
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}
