package routing

import (
	"net"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/routeshim/internal/protocol"
)

// Undecided reasons, used for logging and metrics labels.
const (
	ReasonDial   = "dial"
	ReasonEncode = "encode"
	ReasonRead   = "read"
	ReasonStatus = "status"
)

// Decision is the outcome of one routing attempt. An undecided outcome always
// means "fall back to the real primitive"; transport failures are never
// surfaced to the intercepted caller as errors.
type Decision struct {
	Routed bool
	Status int
	Reason string
}

func undecided(reason string) Decision {
	return Decision{Reason: reason}
}

// Client performs one daemon round trip per intercepted call. It holds no
// connection state; each Send dials, writes, reads and closes.
type Client struct {
	cfg TransportConfig
}

// NewClient returns a client for the configured daemon address.
func NewClient(cfg TransportConfig) *Client {
	return &Client{cfg: cfg.WithDefaults()}
}

// SocketPath reports the daemon address this client dials.
func (c *Client) SocketPath() string {
	return c.cfg.SocketPath
}

// Send ships req to the routing daemon and blocks for its decision. Every
// failure along the way (no socket, refused connection, write error, empty or
// malformed response, expired deadline) yields an undecided Decision.
func (c *Client) Send(req *protocol.Request) Decision {
	conn, err := net.DialTimeout("unix", c.cfg.SocketPath, c.cfg.ConnectTimeout)
	if err != nil {
		log.Debug().Err(err).Str("socket", c.cfg.SocketPath).Msg("routing daemon unreachable")
		return undecided(ReasonDial)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
	if err := protocol.Encode(conn, req); err != nil {
		log.Debug().Err(err).Msg("routing request write failed")
		return undecided(ReasonEncode)
	}

	// No acknowledgment precedes the decision; block straight on the read.
	_ = conn.SetReadDeadline(time.Now().Add(c.cfg.ReadTimeout))
	buf := make([]byte, protocol.MaxStatusBytes)
	n, err := conn.Read(buf)
	if n == 0 {
		if err != nil {
			log.Debug().Err(err).Msg("routing daemon closed without a decision")
		}
		return undecided(ReasonRead)
	}

	status, err := protocol.ParseStatus(buf[:n])
	if err != nil {
		log.Warn().Err(err).Msg("routing daemon sent an unusable response")
		return undecided(ReasonStatus)
	}
	return Decision{Routed: true, Status: status}
}
