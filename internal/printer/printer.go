// Package printer delivers encoded receipt streams to a thermal printer in
// bounded chunks. The device channel accepts roughly 100 bytes per write
// and has no flow control, so each chunk is followed by a short pause.
package printer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrWriteFailed wraps any transport failure. Printing is not resumed
// mid-stream; the operator re-triggers the whole receipt.
var ErrWriteFailed = errors.New("printer write failed")

// Transport is the raw write channel of one physical printer.
type Transport interface {
	Write(ctx context.Context, chunk []byte) error
}

const (
	DefaultChunkLen     = 100
	DefaultChunkDelay   = 50 * time.Millisecond
	DefaultChunkTimeout = 5 * time.Second
)

// Printer serializes access to a single device channel. Only one receipt is
// in flight at a time; concurrent Print calls queue on the mutex.
type Printer struct {
	mu           sync.Mutex
	transport    Transport
	chunkLen     int
	chunkDelay   time.Duration
	chunkTimeout time.Duration
}

type Option func(*Printer)

func WithChunkLen(n int) Option {
	return func(p *Printer) {
		if n > 0 {
			p.chunkLen = n
		}
	}
}

func WithChunkDelay(d time.Duration) Option {
	return func(p *Printer) {
		if d >= 0 {
			p.chunkDelay = d
		}
	}
}

func WithChunkTimeout(d time.Duration) Option {
	return func(p *Printer) {
		if d > 0 {
			p.chunkTimeout = d
		}
	}
}

func New(transport Transport, opts ...Option) *Printer {
	p := &Printer{
		transport:    transport,
		chunkLen:     DefaultChunkLen,
		chunkDelay:   DefaultChunkDelay,
		chunkTimeout: DefaultChunkTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print writes data to the device in order, one chunk at a time. The first
// failed or timed-out chunk aborts the rest and surfaces ErrWriteFailed.
func (p *Printer) Print(ctx context.Context, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for offset := 0; offset < len(data); offset += p.chunkLen {
		end := offset + p.chunkLen
		if end > len(data) {
			end = len(data)
		}

		if err := p.writeChunk(ctx, data[offset:end]); err != nil {
			return fmt.Errorf("%w: chunk at offset %d: %v", ErrWriteFailed, offset, err)
		}

		if end < len(data) && p.chunkDelay > 0 {
			select {
			case <-time.After(p.chunkDelay):
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", ErrWriteFailed, ctx.Err())
			}
		}
	}
	return nil
}

func (p *Printer) writeChunk(ctx context.Context, chunk []byte) error {
	chunkCtx, cancel := context.WithTimeout(ctx, p.chunkTimeout)
	defer cancel()
	return p.transport.Write(chunkCtx, chunk)
}
