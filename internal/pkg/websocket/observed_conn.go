package websocket

import (
	"time"

	gorilla "github.com/gorilla/websocket"
)

// TextMessage is the frame type used for JSON payloads.
const TextMessage = gorilla.TextMessage

type conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// ObservedConn records the outcome of every read and write.
type ObservedConn struct {
	conn         conn
	writeTimeout time.Duration
	metrics      Metrics
}

func NewObservedConn(c conn, writeTimeout time.Duration, metrics Metrics) *ObservedConn {
	return &ObservedConn{
		conn:         c,
		writeTimeout: writeTimeout,
		metrics:      metrics,
	}
}

// ReadMessage blocks until the backend pushes a frame, so reads are counted
// but not timed.
func (c *ObservedConn) ReadMessage() (messageType int, data []byte, err error) {
	defer func() {
		c.metrics.Count("read_message", err)
	}()
	return c.conn.ReadMessage()
}

func (c *ObservedConn) WriteMessage(messageType int, data []byte) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("write_message", err, started)
	}()
	if c.writeTimeout > 0 {
		if err = c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
			return err
		}
	}
	return c.conn.WriteMessage(messageType, data)
}

func (c *ObservedConn) Close() (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("close", err, started)
	}()
	return c.conn.Close()
}
