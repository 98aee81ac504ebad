package client

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/keepno/internal/poller"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// progressReporter shows export progress on the command line.
type progressReporter interface {
	poller.Observer
	// Finish ends the output; success tells whether the bar may be filled.
	Finish(success bool)
}

// newProgressReporter draws a progress bar on a terminal and prints plain
// lines otherwise.
func newProgressReporter(out *os.File) progressReporter {
	if term.IsTerminal(int(out.Fd())) {
		return newBarReporter(out)
	}
	return newLineReporter(out)
}

type barReporter struct {
	bar *progressbar.ProgressBar
}

func newBarReporter(w io.Writer) *barReporter {
	return &barReporter{
		bar: progressbar.NewOptions(100,
			progressbar.OptionSetDescription("exporting"),
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprint(w, "\n")
			}),
			progressbar.OptionSetRenderBlankState(true),
		),
	}
}

func (b *barReporter) Observe(u poller.Update) {
	if u.State == poller.Succeeded {
		return
	}
	_ = b.bar.Set(u.Progress)
}

func (b *barReporter) Finish(success bool) {
	if success {
		_ = b.bar.Finish()
		return
	}
	_ = b.bar.Exit()
}

type lineReporter struct {
	w    io.Writer
	last poller.Update
	seen bool
}

func newLineReporter(w io.Writer) *lineReporter {
	return &lineReporter{w: w}
}

// Observe prints one line per change of state or progress.
func (l *lineReporter) Observe(u poller.Update) {
	if l.seen && u.State == l.last.State && u.Progress == l.last.Progress {
		return
	}
	l.seen, l.last = true, u
	fmt.Fprintf(l.w, "export %s %d%%\n", u.State, u.Progress)
}

func (l *lineReporter) Finish(bool) {}
