package notify

import (
	"fmt"
	"io"
	"sync"
)

type writerSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a [Sink] printing "Title: body" lines to w. It is
// meant for commands without a terminal UI.
func NewWriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

func (s *writerSink) Notify(n Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "%s: %s\n", n.Title(), n.Body)
}
