package transport

// Nudges is a coalescing signal that the next request may have changed.
// Reconnect asks for the current connection to be dropped before anything
// else is sent or received.
type Nudges struct {
	ch        chan struct{}
	reconnect chan struct{}
}

func NewNudges() *Nudges {
	return &Nudges{
		ch:        make(chan struct{}, 1),
		reconnect: make(chan struct{}, 1),
	}
}

// Notify never blocks; pending nudges collapse into one.
func (n *Nudges) Notify() {
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

func (n *Nudges) C() <-chan struct{} {
	return n.ch
}

// Reconnect never blocks; pending requests collapse into one.
func (n *Nudges) Reconnect() {
	select {
	case n.reconnect <- struct{}{}:
	default:
	}
}

func (n *Nudges) ReconnectC() <-chan struct{} {
	return n.reconnect
}
