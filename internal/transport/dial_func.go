package transport

import "context"

// DialFunc adapts a function to Dialer.
type DialFunc func(ctx context.Context) (Conn, error)

func (f DialFunc) Dial(ctx context.Context) (Conn, error) {
	return f(ctx)
}
