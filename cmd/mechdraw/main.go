// mechdraw - technical and structural diagrams from the command line.
//
// The output format follows the file extension: SVG or PNG drawings,
// binary glTF, or Wavefront OBJ line geometry.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"fortio.org/log"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/taigrr/mechdraw/pkg/export"
	"github.com/taigrr/mechdraw/pkg/render"
	"github.com/taigrr/mechdraw/pkg/style"
)

var version = "dev"

var (
	stylePath string
	verbose   bool
	sizeIn    float64
	sheet     style.Sheet
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mechdraw",
		Short: "Technical and structural diagrams",
		Long: `mechdraw - technical and structural diagrams

Output format follows the file extension:
  .svg .png .jpg .tif  vector or raster drawing
  .glb                 binary glTF line geometry
  .obj                 Wavefront OBJ line geometry

Styles can be overridden with a TOML sheet (--style) whose
[styles.<name>] tables set line_width, color, edge_color, fill,
line_style, z_order and marker_size. A table may start from a
built-in style with base = "<name>".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLogLevel(log.Debug)
			}
			if stylePath == "" {
				return nil
			}
			var err error
			sheet, err = style.LoadFile(stylePath)
			if err != nil {
				return err
			}
			log.Debugf("Loaded %d styles from %s", sheet.Len(), stylePath)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&stylePath, "style", "",
		"TOML style sheet; built-in styles: "+strings.Join(style.PresetNames(), ", "))
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Debug logging")
	root.PersistentFlags().Float64Var(&sizeIn, "size", 6, "Drawing size in inches (svg/png)")

	root.AddCommand(
		newIBeamCmd(),
		newInfoCmd(),
		newFrameCmd(),
		newSpinCmd(),
		newInspectCmd(),
	)
	return root
}

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		os.Exit(1)
	}
}

// drawing is a surface that can be written to a file.
type drawing interface {
	render.Surface
	Save(path string) error
}

// newDrawing picks the output surface from the file extension.
func newDrawing(path string) (drawing, error) {
	ext := strings.ToLower(filepath.Ext(path))
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	switch ext {
	case ".glb":
		return export.NewGLTF(name), nil
	case ".obj":
		return export.NewOBJ(name), nil
	case ".svg", ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		size := vg.Length(sizeIn) * vg.Inch
		return render.NewCanvasSurface(size, size), nil
	}
	return nil, fmt.Errorf("unsupported format: %s (use .svg, .png, .glb, or .obj)", ext)
}

// setArrowHead scales canvas arrowheads to the drawing's world size.
func setArrowHead(d drawing, length float64) {
	if c, ok := d.(*render.CanvasSurface); ok {
		c.ArrowHead = length
	}
}

// lookup resolves a style by name from the loaded sheet and presets.
func lookup(name string, fallback style.Style) style.Style {
	return sheet.Lookup(name, fallback)
}
