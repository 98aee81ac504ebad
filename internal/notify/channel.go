package notify

import "sync/atomic"

// ChannelSink queues notifications on a buffered channel. When the buffer is
// full the notification is dropped and counted, so producers never block.
type ChannelSink struct {
	ch      chan Notification
	dropped atomic.Int64
}

// NewChannelSink creates a sink with the given buffer size (minimum 1).
func NewChannelSink(size int) *ChannelSink {
	if size < 1 {
		size = 1
	}
	return &ChannelSink{ch: make(chan Notification, size)}
}

// Notify implements [Sink].
func (c *ChannelSink) Notify(n Notification) {
	select {
	case c.ch <- n:
	default:
		c.dropped.Add(1)
	}
}

// C returns the receive side of the queue.
func (c *ChannelSink) C() <-chan Notification {
	return c.ch
}

// Dropped reports how many notifications were discarded on overflow.
func (c *ChannelSink) Dropped() int64 {
	return c.dropped.Load()
}
