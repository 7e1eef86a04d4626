/*
Package mosaic is an image processing library which converts images to computer generated art
made of colored Voronoi cells.

The cells are derived from the Delaunay triangulation of a point set, built incrementally with
the Bowyer–Watson algorithm. Every cell is filled with the mean color of the source pixels
around the middle of its bounding box. The colorization runs in small chunks, reporting the
progress after each of them.

The package provides a command line utility supporting various customization options.
Check the supported commands by typing:

	$ mosaic --help

The processing result is a list of records which can be exposed either as raster or vector type.

Example to generate the mosaic and output the result as a raster type:

	package main

	import (
		"context"
		"fmt"
		"os"

		"github.com/esimov/mosaic"
	)

	func main() {
		p := &mosaic.Processor{
			Points:     1500,
			Smoothness: 4,
		}

		res, err := p.Process(context.Background(), srcImg, func(progress float64) {
			fmt.Printf("\r%.0f%%", progress*100)
		})
		if err != nil {
			fmt.Printf("Error on mosaic process: %s", err.Error())
			return
		}

		img := &mosaic.Image{}
		if err := img.Draw(os.Stdout, res); err != nil {
			fmt.Printf("Error encoding the image: %s", err.Error())
		}
	}

Example to output the result as SVG:

	svg := &mosaic.SVG{
		Title:       "Voronoi mosaic",
		Description: "Convert images to computer generated art using Voronoi cells.",
	}
	if err := svg.Draw(w, res); err != nil {
		fmt.Printf("Error writing the svg: %s", err.Error())
	}
*/
package mosaic
