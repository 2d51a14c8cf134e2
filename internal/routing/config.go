package routing

import "time"

// DefaultSocketPath is the well-known daemon address. There is no discovery
// mechanism; shim and daemon simply agree on this path.
const DefaultSocketPath = "/tmp/routeshim-router.sock"

// TransportConfig bounds one routing round trip. A daemon that accepts but
// never answers must cost at most ConnectTimeout + WriteTimeout + ReadTimeout;
// an expired deadline is handled exactly like "no decision".
type TransportConfig struct {
	SocketPath     string
	ConnectTimeout time.Duration
	WriteTimeout   time.Duration
	ReadTimeout    time.Duration
}

// DefaultTransportConfig returns the transport defaults.
func DefaultTransportConfig() TransportConfig {
	return TransportConfig{
		SocketPath:     DefaultSocketPath,
		ConnectTimeout: 2 * time.Second,
		WriteTimeout:   5 * time.Second,
		ReadTimeout:    30 * time.Second,
	}
}

// WithDefaults fills zero-valued fields from DefaultTransportConfig.
func (c TransportConfig) WithDefaults() TransportConfig {
	def := DefaultTransportConfig()
	if c.SocketPath == "" {
		c.SocketPath = def.SocketPath
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = def.ConnectTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = def.WriteTimeout
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = def.ReadTimeout
	}
	return c
}
