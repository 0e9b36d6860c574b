// Package websocket opens instrumented websocket connections to the devnet backend.
package websocket

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	gorilla "github.com/gorilla/websocket"
)

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
		Count(operation string, err error)
	}
)

// Dialer opens text connections to a single backend address.
type Dialer struct {
	url          string
	dialer       *gorilla.Dialer
	writeTimeout time.Duration
	metrics      Metrics
}

// NewDialer builds a Dialer for ws://addr.
func NewDialer(addr string, handshakeTimeout, writeTimeout time.Duration, metrics Metrics) (*Dialer, error) {
	if addr == "" {
		return nil, errors.New("backend address is required")
	}
	if metrics == nil {
		return nil, errors.New("websocket metrics is nil")
	}
	u := url.URL{Scheme: "ws", Host: addr}
	return &Dialer{
		url: u.String(),
		dialer: &gorilla.Dialer{
			Proxy:            gorilla.DefaultDialer.Proxy,
			HandshakeTimeout: handshakeTimeout,
		},
		writeTimeout: writeTimeout,
		metrics:      metrics,
	}, nil
}

// URL returns the address dialed.
func (d *Dialer) URL() string {
	return d.url
}

// Dial opens a connection, bounded by ctx and the handshake timeout.
func (d *Dialer) Dial(ctx context.Context) (conn *ObservedConn, err error) {
	started := time.Now()
	defer func() {
		d.metrics.Observe("dial", err, started)
	}()

	c, resp, err := d.dialer.DialContext(ctx, d.url, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", d.url, err)
	}
	return NewObservedConn(c, d.writeTimeout, d.metrics), nil
}
