package mosaic

import (
	"context"
	"image"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Point seeding modes.
const (
	RandomSeeding = iota
	EdgeSeeding
)

// ErrInvalidConfiguration is returned by Validate before any geometry work begins.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Processor : type with processing options
type Processor struct {
	Points        int
	Smoothness    int
	StrokeWidth   float64
	Seed          int64
	Seeding       int
	EdgeThreshold int
	BlurRadius    int
	Grayscale     bool
	Logger        *zap.Logger
}

// Result holds everything a run produced. Records are in cell order.
type Result struct {
	Width     int
	Height    int
	Points    []Point
	Triangles []Triangle
	Records   []Record
}

// Validate checks the options against the image size.
func (p *Processor) Validate(width, height int) error {
	switch {
	case width <= 0 || height <= 0:
		return errors.Wrapf(ErrInvalidConfiguration, "image size %dx%d", width, height)
	case p.Points <= 0:
		return errors.Wrapf(ErrInvalidConfiguration, "point count %d", p.Points)
	case p.Smoothness <= 0:
		return errors.Wrapf(ErrInvalidConfiguration, "smoothness %d", p.Smoothness)
	case p.StrokeWidth < 0:
		return errors.Wrapf(ErrInvalidConfiguration, "stroke width %g", p.StrokeWidth)
	case p.Seeding != RandomSeeding && p.Seeding != EdgeSeeding:
		return errors.Wrapf(ErrInvalidConfiguration, "seeding mode %d", p.Seeding)
	case p.BlurRadius < 0:
		return errors.Wrapf(ErrInvalidConfiguration, "blur radius %d", p.BlurRadius)
	case p.EdgeThreshold < 0:
		return errors.Wrapf(ErrInvalidConfiguration, "edge threshold %d", p.EdgeThreshold)
	}
	return nil
}

// Process converts the source image into colored Voronoi cells.
// The sink, when not nil, receives the colorization progress.
func (p *Processor) Process(ctx context.Context, src image.Image, sink ProgressSink) (*Result, error) {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	img := ImgToNRGBA(src)
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	if err := p.Validate(width, height); err != nil {
		return nil, err
	}

	start := time.Now()
	points := p.seed(img)
	if len(points) == 0 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "empty point set")
	}
	logger.Debug("points generated", zap.Int("points", len(points)), zap.Int("seeding", p.Seeding))

	tri, err := Triangulate(points, float64(width), float64(height))
	if err != nil {
		return nil, errors.Wrap(err, "triangulation failed")
	}
	logger.Debug("triangulation done",
		zap.Int("triangles", len(tri.Triangles())),
		zap.Duration("elapsed", time.Since(start)),
	)

	cells := BuildCells(tri)
	logger.Debug("cells built",
		zap.Int("cells", len(cells)),
		zap.Int("degenerate", len(points)-len(cells)),
	)

	if p.Grayscale {
		img = Grayscale(img)
	}
	sched := NewScheduler(cells, &ImageSource{img: img}, p.Smoothness, p.StrokeWidth)
	records, err := sched.Run(ctx, sink)
	if err != nil {
		return nil, err
	}
	logger.Debug("cells colorized",
		zap.Int("records", len(records)),
		zap.Int("chunk", sched.ChunkSize()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Result{
		Width:     width,
		Height:    height,
		Points:    tri.Points(),
		Triangles: tri.Triangles(),
		Records:   records,
	}, nil
}

func (p *Processor) seed(img *image.NRGBA) []Point {
	rnd := rand.New(rand.NewSource(p.Seed))
	width, height := img.Bounds().Dx(), img.Bounds().Dy()

	if p.Seeding == EdgeSeeding {
		return EdgePoints(img, p.BlurRadius, p.EdgeThreshold, p.Points, rnd)
	}
	return RandomPoints(float64(width), float64(height), p.Points, rnd)
}
