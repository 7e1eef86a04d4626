package mosaic

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
)

// ProgressSink receives the processed fraction, in [0, 1], after every chunk.
type ProgressSink func(progress float64)

// Scheduler colorizes the cells in fixed size chunks, keeping the cell order.
// It runs on the caller's goroutine; Step processes exactly one chunk.
type Scheduler struct {
	cells       []Cell
	src         PixelSource
	smoothness  int
	strokeWidth float64

	cursor  int
	chunk   int
	done    bool
	records []Record
}

// NewScheduler prepares the colorization of the cells.
// The chunk size is 1% of the cells, but at least one cell.
func NewScheduler(cells []Cell, src PixelSource, smoothness int, strokeWidth float64) *Scheduler {
	return &Scheduler{
		cells:       cells,
		src:         src,
		smoothness:  smoothness,
		strokeWidth: strokeWidth,
		chunk:       Max(1, len(cells)/100),
		records:     make([]Record, 0, len(cells)),
	}
}

// ChunkSize returns the number of cells processed by a single Step.
func (s *Scheduler) ChunkSize() int {
	return s.chunk
}

// Done reports whether all the cells have been processed.
func (s *Scheduler) Done() bool {
	return s.done
}

// Step processes the next chunk and returns the progress reached.
// Calling Step after completion is a no-op returning (1, true).
func (s *Scheduler) Step() (float64, bool) {
	if s.done {
		return 1, true
	}
	end := Min(s.cursor+s.chunk, len(s.cells))
	for _, cell := range s.cells[s.cursor:end] {
		color := Colorize(cell.Polygon, s.src, s.smoothness)
		s.records = append(s.records, NewRecord(cell, color, s.strokeWidth))
	}
	s.cursor = end

	if s.cursor == len(s.cells) {
		s.done = true
		return 1, true
	}
	return float64(s.cursor) / float64(len(s.cells)), false
}

// Records returns the records produced so far, in cell order.
func (s *Scheduler) Records() []Record {
	return s.records
}

// Run drives the scheduler to completion. Between two chunks it checks for
// cancellation, yields the processor and reports the progress to the sink.
func (s *Scheduler) Run(ctx context.Context, sink ProgressSink) ([]Record, error) {
	for !s.done {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "colorization stopped at cell %d of %d", s.cursor, len(s.cells))
		}
		progress, done := s.Step()
		if sink != nil {
			sink(progress)
		}
		if !done {
			runtime.Gosched()
		}
	}
	return s.records, nil
}
