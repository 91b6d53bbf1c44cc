package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taigrr/mechdraw/pkg/export"
	"github.com/taigrr/mechdraw/pkg/shapes"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <drawing.obj|drawing.glb>",
		Short: "Display line geometry information for an exported drawing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}
}

func runInspect(cmd *cobra.Command, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}

	var lines []export.Polyline
	switch ext {
	case ".glb", ".gltf":
		lines, err = export.ReadGLTF(path)
	case ".obj":
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		lines, err = export.ReadOBJ(f)
	default:
		return fmt.Errorf("unsupported format: %s (use .obj or .glb)", ext)
	}
	if err != nil {
		return fmt.Errorf("load drawing: %w", err)
	}

	var all shapes.Polygon
	closed := 0
	for _, l := range lines {
		all = append(all, l.Points...)
		if l.Closed {
			closed++
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:       %s\n", filepath.Base(path))
	fmt.Fprintf(out, "Format:     %s\n", strings.ToUpper(strings.TrimPrefix(ext, ".")))
	fmt.Fprintf(out, "Size:       %.2f KB\n", float64(info.Size())/1024)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Strips:     %d (%d closed)\n", len(lines), closed)
	fmt.Fprintf(out, "Vertices:   %d\n", len(all))
	if len(all) > 0 {
		lo, hi := all.Bounds()
		fmt.Fprintf(out, "Bounds Min: (%.3f, %.3f)\n", lo.X, lo.Y)
		fmt.Fprintf(out, "Bounds Max: (%.3f, %.3f)\n", hi.X, hi.Y)
		fmt.Fprintf(out, "Dimensions: %.3f x %.3f\n", hi.X-lo.X, hi.Y-lo.Y)
	}
	return nil
}
