package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/esimov/mosaic"
	"github.com/esimov/mosaic/utils"
	"github.com/gen2brain/beeep"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/mholt/archiver/v3"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/term"
)

const helperBanner = `
┌┬┐┌─┐┌─┐┌─┐┬┌─┐
││││ │└─┐├─┤││
┴ ┴└─┘└─┘┴ ┴┴└─┘

Image to Voronoi mosaic generator.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", "", "Source image, directory or URL")
	destination = flag.String("out", "", "Destination file or directory (.png, .svg, .pdf)")
	numPoints   = flag.Int("points", 1500, "Number of points")
	smoothness  = flag.Int("smooth", 4, "Side of the color sampling window")
	strokeWidth = flag.Float64("stroke", 0, "Cell outline width")
	seed        = flag.Int64("seed", 0, "Random seed, 0 uses the current time")
	edges       = flag.Bool("edges", false, "Concentrate the points on the image edges")
	threshold   = flag.Int("threshold", 20, "Edge detection threshold")
	blurRadius  = flag.Int("blur", 2, "Blur radius applied before edge detection")
	grayscale   = flag.Bool("gray", false, "Convert to grayscale")
	noise       = flag.Int("noise", 0, "Noise factor (raster output only)")
	preview     = flag.Bool("preview", false, "Show the result in the terminal")
	archive     = flag.String("zip", "", "Bundle the generated files into this archive")
	notify      = flag.Bool("notify", false, "Send a desktop notification when done")
	verbose     = flag.Bool("v", false, "Verbose logging")
)

// Supported output formats.
var drawers = map[string]mosaic.Drawer{
	".png": &mosaic.Image{},
	".svg": &mosaic.SVG{
		Title:       "Voronoi mosaic",
		Description: "Image converted to computer generated art using Voronoi cells.",
	},
	".pdf": &mosaic.PDF{},
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helperBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if len(*source) == 0 || len(*destination) == 0 {
		log.Fatal("Usage: mosaic -in input.jpg -out out.png")
	}

	logger := zap.NewNop()
	if *verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			log.Fatalf("Unable to create logger: %v", err)
		}
	}
	defer logger.Sync()

	isTerm := term.IsTerminal(int(os.Stderr.Fd()))
	au := aurora.NewAurora(isTerm)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	drawers[".png"] = &mosaic.Image{Noise: *noise}

	p := &mosaic.Processor{
		Points:        *numPoints,
		Smoothness:    *smoothness,
		StrokeWidth:   *strokeWidth,
		Seed:          *seed,
		EdgeThreshold: *threshold,
		BlurRadius:    *blurRadius,
		Grayscale:     *grayscale,
		Logger:        logger,
	}
	if *edges {
		p.Seeding = mosaic.EdgeSeeding
	}

	toProcess, err := collect(*source, *destination)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ins := make([]string, 0, len(toProcess))
	for in := range toProcess {
		ins = append(ins, in)
	}
	sort.Strings(ins)

	var (
		generated []string
		failed    int
	)
	for _, in := range ins {
		out := toProcess[in]
		start := time.Now()
		res, err := process(ctx, p, in, out, isTerm)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", au.Red("Error converting image"), in, err)
			logger.Error("processing failed", zap.String("source", in), zap.Error(err))
			if errors.Is(err, context.Canceled) {
				break
			}
			continue
		}
		generated = append(generated, out)

		fmt.Fprintf(os.Stderr, "Generated in: %s\n", au.Green(utils.FormatTime(time.Since(start))))
		fmt.Fprintf(os.Stderr, "Total number of %s cells generated out of %s points\n",
			au.Green(len(res.Records)), au.Green(len(res.Points)))
		fmt.Fprintf(os.Stderr, "Saved as: %s %s\n\n", filepath.Base(out), au.Green("✓"))

		if *preview && isTerm {
			if err := showPreview(res); err != nil {
				logger.Warn("preview failed", zap.Error(err))
			}
		}
	}

	if *archive != "" && len(generated) > 0 {
		if err := archiver.Archive(generated, *archive); err != nil {
			log.Fatalf("Unable to create archive: %v", err)
		}
		fmt.Fprintf(os.Stderr, "Archived %d files into %s\n", len(generated), *archive)
	}

	if *notify {
		msg := fmt.Sprintf("%d image(s) converted, %d failed", len(generated), failed)
		if err := beeep.Notify("Voronoi mosaic", msg, ""); err != nil {
			logger.Warn("notification failed", zap.Error(err))
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// collect maps every source image to its destination file.
func collect(src, dst string) (map[string]string, error) {
	toProcess := make(map[string]string)

	if utils.IsURL(src) {
		toProcess[src] = dst
		return toProcess, nil
	}

	fs, err := os.Stat(src)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open source")
	}

	switch mode := fs.Mode(); {
	case mode.IsDir():
		// Supported image files.
		extensions := []string{".jpg", ".jpeg", ".png", ".webp", ".bmp", ".tiff"}

		// Read destination file or directory.
		dstInfo, err := os.Stat(dst)
		if err != nil {
			return nil, errors.Wrap(err, "unable to get dir stats")
		}
		// Check if the image destination is a directory or a file.
		if !dstInfo.IsDir() {
			return nil, errors.New("please specify a directory as destination")
		}

		files, err := os.ReadDir(src)
		if err != nil {
			return nil, errors.Wrap(err, "unable to read dir")
		}
		for _, f := range files {
			ext := strings.ToLower(filepath.Ext(f.Name()))
			for _, iex := range extensions {
				if ext == iex {
					name := strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))
					toProcess[filepath.Join(src, f.Name())] = filepath.Join(dst, name+".png")
				}
			}
		}
	case mode.IsRegular():
		toProcess[src] = dst
	}
	return toProcess, nil
}

// process runs a single conversion and writes the output file.
func process(ctx context.Context, p *mosaic.Processor, in, out string, isTerm bool) (*mosaic.Result, error) {
	drawer, ok := drawers[strings.ToLower(filepath.Ext(out))]
	if !ok {
		return nil, errors.Errorf("unsupported output format %q", filepath.Ext(out))
	}

	var (
		file *os.File
		err  error
	)
	if utils.IsURL(in) {
		if file, err = utils.DownloadImage(in); err != nil {
			return nil, err
		}
		defer os.Remove(file.Name())
	} else if file, err = os.Open(in); err != nil {
		return nil, errors.Wrap(err, "unable to open source file")
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode source image")
	}

	var sink mosaic.ProgressSink
	if isTerm {
		s := utils.NewSpinner(os.Stderr, true)
		s.Start("Generating mosaic...")
		defer s.Stop()
		sink = s.Progress
	}

	res, err := p.Process(ctx, src, sink)
	if err != nil {
		return nil, err
	}

	fq, err := os.Create(out)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create output file")
	}
	if err := writeOutput(fq, drawer, res); err != nil {
		return nil, err
	}
	return res, nil
}

// writeOutput draws the result and closes the destination.
// A failed close means the file may be truncated, so it is reported.
func writeOutput(dst io.WriteCloser, drawer mosaic.Drawer, res *mosaic.Result) error {
	if err := drawer.Draw(dst, res); err != nil {
		dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return errors.Wrap(err, "unable to close output file")
	}
	return nil
}

// showPreview prints the rasterized result inline in the terminal.
func showPreview(res *mosaic.Result) error {
	tmp, err := os.CreateTemp("", "mosaic-*.png")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	img := &mosaic.Image{Noise: *noise}
	if err := img.Draw(tmp, res); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return imgcat.CatFile(tmp.Name(), os.Stdout)
}
