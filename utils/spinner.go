package utils

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/logrusorgru/aurora"
)

// Spinner initializes the process indicator.
type Spinner struct {
	out      io.Writer
	au       aurora.Aurora
	message  string
	progress float64
	mu       sync.Mutex
	stopChan chan struct{}
	doneChan chan struct{}
}

// NewSpinner instantiates a new Spinner struct writing to out.
// Colors are only emitted when colored is true.
func NewSpinner(out io.Writer, colored bool) *Spinner {
	return &Spinner{
		out: out,
		au:  aurora.NewAurora(colored),
	}
}

// Start starts the process indicator.
func (s *Spinner) Start(message string) {
	s.message = message
	s.stopChan = make(chan struct{})
	s.doneChan = make(chan struct{})

	go func() {
		defer close(s.doneChan)
		for {
			for _, r := range `-\|/` {
				select {
				case <-s.stopChan:
					return
				default:
					s.mu.Lock()
					progress := s.progress
					s.mu.Unlock()
					fmt.Fprintf(s.out, "\r%s %s %3.0f%%", s.message, s.au.Green(string(r)), progress*100)
					time.Sleep(time.Millisecond * 100)
				}
			}
		}
	}()
}

// Progress updates the percentage shown next to the indicator.
func (s *Spinner) Progress(progress float64) {
	s.mu.Lock()
	s.progress = progress
	s.mu.Unlock()
}

// Stop stops the process indicator and waits for the last frame to be written.
func (s *Spinner) Stop() {
	close(s.stopChan)
	<-s.doneChan
	fmt.Fprintln(s.out)
}
