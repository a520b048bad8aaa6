// Command inkwell reads a YAML scene description and renders it to SVG or
// PNG, chosen by the output file's extension. There is no CLI framework in
// the teacher's dependency graph, so this uses the standard flag package,
// as the teacher's own binaries do.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inkwell3d/inkwell"
	"github.com/inkwell3d/inkwell/pngout"
	"github.com/inkwell3d/inkwell/sceneio"
	"github.com/inkwell3d/inkwell/svgout"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "inkwell:", err)
		os.Exit(1)
	}
}

func run() error {
	scenePath := flag.String("scene", "", "path to a YAML scene description (required)")
	outPath := flag.String("out", "out.svg", "output file; .svg or .png by extension")
	debug := flag.Bool("debug", false, "enable debug logging")
	lineWidth := flag.Float64("line-width", 1, "stroke width in pixels (SVG and PNG)")
	flag.Parse()

	if *scenePath == "" {
		flag.Usage()
		return fmt.Errorf("-scene is required")
	}

	raw, err := os.ReadFile(*scenePath)
	if err != nil {
		return err
	}
	var doc sceneio.Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", *scenePath, err)
	}

	scene, err := sceneio.BuildScene(doc)
	if err != nil {
		return err
	}
	logger := inkwell.NewDefaultLogger("inkwell", *debug)
	scene.SetLogger(logger)

	result, err := scene.Render(doc.RenderOptions())
	if err != nil {
		return err
	}
	logger.Infof("rendered %d polylines", len(result.Lines))

	out, err := os.Create(*outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	switch strings.ToLower(filepath.Ext(*outPath)) {
	case ".png":
		return pngout.Encode(out, result, pngout.Options{
			Width: doc.Camera.Width, Height: doc.Camera.Height, LineWidth: *lineWidth,
		})
	default:
		return svgout.Write(out, result, svgout.Options{
			Width: doc.Camera.Width, Height: doc.Camera.Height, StrokeWidth: *lineWidth,
		})
	}
}
