package mosaic

import (
	"context"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCells(n int) []Cell {
	cells := make([]Cell, n)
	for i := range cells {
		x := float64(i % 50)
		y := float64(i / 50)
		cells[i] = Cell{
			Site:    i,
			Point:   Point{x + 0.5, y + 0.5},
			Polygon: []Point{{x, y}, {x + 1, y}, {x + 1, y + 1}, {x, y + 1}},
		}
	}
	return cells
}

func TestSchedulerProgress(t *testing.T) {
	cells := testCells(250)
	src := NewImageSource(uniformImage(50, 5, color.NRGBA{R: 200, G: 100, B: 50, A: 255}))
	s := NewScheduler(cells, src, 3, 1.5)
	require.Equal(t, 2, s.ChunkSize())

	var progress []float64
	records, err := s.Run(context.Background(), func(p float64) {
		progress = append(progress, p)
	})
	require.NoError(t, err)

	require.Len(t, progress, 125)
	for i := 1; i < len(progress); i++ {
		assert.Greater(t, progress[i], progress[i-1])
	}
	assert.Equal(t, 1.0, progress[len(progress)-1])
	for _, p := range progress[:len(progress)-1] {
		assert.Less(t, p, 1.0)
	}

	require.Len(t, records, len(cells))
	for i, r := range records {
		assert.Equal(t, cells[i].Polygon, r.Polygon)
		assert.Equal(t, RGB{200, 100, 50}, r.Color)
		assert.Equal(t, 1.5, r.StrokeWidth)
	}
	assert.True(t, s.Done())
}

func TestSchedulerStep(t *testing.T) {
	cells := testCells(1050)
	src := NewImageSource(uniformImage(50, 21, color.NRGBA{A: 255}))
	s := NewScheduler(cells, src, 1, 0)
	require.Equal(t, 10, s.ChunkSize())

	steps := 0
	for {
		before := len(s.Records())
		p, done := s.Step()
		steps++
		require.LessOrEqual(t, len(s.Records())-before, 10)
		assert.Equal(t, float64(len(s.Records()))/float64(len(cells)), p)
		if done {
			break
		}
	}
	assert.Equal(t, 105, steps)
	assert.Len(t, s.Records(), len(cells))

	p, done := s.Step()
	assert.True(t, done)
	assert.Equal(t, 1.0, p)
	assert.Len(t, s.Records(), len(cells))
}

func TestSchedulerSmallBatches(t *testing.T) {
	src := NewImageSource(uniformImage(50, 1, color.NRGBA{A: 255}))

	for _, n := range []int{1, 7, 99} {
		s := NewScheduler(testCells(n), src, 1, 0)
		assert.Equal(t, 1, s.ChunkSize())

		calls := 0
		records, err := s.Run(context.Background(), func(float64) { calls++ })
		require.NoError(t, err)
		assert.Equal(t, n, calls)
		assert.Len(t, records, n)
	}
}

func TestSchedulerEmpty(t *testing.T) {
	s := NewScheduler(nil, NewImageSource(uniformImage(1, 1, color.NRGBA{})), 1, 0)

	var progress []float64
	records, err := s.Run(context.Background(), func(p float64) {
		progress = append(progress, p)
	})
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, []float64{1}, progress)
}

func TestSchedulerCancel(t *testing.T) {
	cells := testCells(400)
	src := NewImageSource(uniformImage(50, 8, color.NRGBA{A: 255}))
	s := NewScheduler(cells, src, 1, 0)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	records, err := s.Run(ctx, func(float64) {
		calls++
		cancel()
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, records)
	assert.Equal(t, 1, calls)

	// The cancelled run stops on a chunk boundary.
	assert.Len(t, s.Records(), s.ChunkSize())
	assert.False(t, s.Done())
}

func TestSchedulerCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewScheduler(testCells(10), NewImageSource(uniformImage(10, 1, color.NRGBA{})), 1, 0)
	_, err := s.Run(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.Records())
}
