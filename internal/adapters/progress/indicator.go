// Package progress draws a transient status line while speakers are being discovered.
package progress

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"go.trai.ch/sonos/internal/core/ports"
	"go.trai.ch/sonos/internal/ui/style"
)

const (
	twoSecs = style.Timer + "  Give me 2 secs to discover your devices..."
	oneSec  = style.Timer + "  Give me a sec to discover your devices..."

	// FirstStep is how long the first message stays up.
	FirstStep = 1000 * time.Millisecond
	// SecondStep is how long the second message stays up before the line is cleared.
	SecondStep = 999 * time.Millisecond
)

var _ ports.ProgressIndicator = (*Indicator)(nil)

// Indicator implements ports.ProgressIndicator by rewriting a single line with \r.
type Indicator struct {
	mu  sync.Mutex
	out io.Writer
}

// New creates an Indicator writing to out, or to stdout when out is nil.
func New(out io.Writer) *Indicator {
	if out == nil {
		out = os.Stdout
	}
	return &Indicator{out: out}
}

// Start draws the first message and counts down in the background.
// The returned stop function cancels the countdown, clears the line if it is
// still showing and waits for the goroutine to exit. It is safe to call more than once.
func (i *Indicator) Start(ctx context.Context) func() {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		i.run(ctx)
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}
}

func (i *Indicator) run(ctx context.Context) {
	i.write(twoSecs + "\r")

	timer := time.NewTimer(FirstStep)
	defer timer.Stop()

	if !wait(ctx, timer) {
		i.clear()
		return
	}
	i.write(oneSec + strings.Repeat(" ", len(twoSecs)-len(oneSec)) + "\r")

	timer.Reset(SecondStep)
	wait(ctx, timer)
	i.clear()
}

func (i *Indicator) clear() {
	i.write(strings.Repeat(" ", len(twoSecs)) + "\r")
}

func (i *Indicator) write(s string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	_, _ = io.WriteString(i.out, s)
}

// wait reports whether the timer fired before ctx was cancelled.
func wait(ctx context.Context, timer *time.Timer) bool {
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// Disabled is a ports.ProgressIndicator that draws nothing.
type Disabled struct{}

// Start returns a no-op stop function.
func (Disabled) Start(context.Context) func() { return func() {} }
