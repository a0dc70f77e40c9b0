package printer

import (
	"context"
	"net"
	"time"
)

// TCPTransport writes to a network printer's raw socket (usually port 9100).
// One connection is opened per chunk write; thermal printers drop idle
// connections aggressively, so holding one open across the inter-chunk
// delays is less reliable than redialing.
type TCPTransport struct {
	addr   string
	dialer net.Dialer
}

func NewTCPTransport(addr string) *TCPTransport {
	return &TCPTransport{
		addr:   addr,
		dialer: net.Dialer{Timeout: 3 * time.Second},
	}
}

func (t *TCPTransport) Write(ctx context.Context, chunk []byte) error {
	conn, err := t.dialer.DialContext(ctx, "tcp", t.addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetWriteDeadline(deadline); err != nil {
			return err
		}
	}
	_, err = conn.Write(chunk)
	return err
}
