package export

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"
	"math"

	"fortio.org/log"
	"github.com/qmuntal/gltf"

	"github.com/taigrr/mechdraw/pkg/render"
	"github.com/taigrr/mechdraw/pkg/shapes"
	"github.com/taigrr/mechdraw/pkg/style"
)

// ErrEmpty is returned when there is no line geometry to export.
var ErrEmpty = errors.New("nothing to export")

// GLTF is a render surface that exports polylines, arrows, and filled
// polygon outlines as glTF line primitives.
type GLTF struct {
	*render.Recorder

	Name string
}

// NewGLTF returns an empty glTF surface.
func NewGLTF(name string) *GLTF {
	return &GLTF{Recorder: render.NewRecorder(), Name: name}
}

// Document builds a glTF document with a single mesh holding one
// primitive per exported strip.
func (g *GLTF) Document() (*gltf.Document, error) {
	lines, skipped := polylines(g.Recorder)
	if len(lines) == 0 {
		return nil, ErrEmpty
	}
	if skipped > 0 {
		log.Debugf("glTF export skipped %d markers and labels", skipped)
	}

	doc := gltf.NewDocument()
	mesh := &gltf.Mesh{Name: g.Name}
	materials := make(map[string]int)
	var data []byte

	for _, pl := range lines {
		offset := len(data)
		lo, hi := shapes.Polygon(pl.Points).Bounds()
		for _, p := range pl.Points {
			data = appendVec3(data, float32(p.X), float32(p.Y), 0)
		}

		doc.BufferViews = append(doc.BufferViews, &gltf.BufferView{
			Buffer:     0,
			ByteOffset: offset,
			ByteLength: len(data) - offset,
			Target:     gltf.TargetArrayBuffer,
		})
		doc.Accessors = append(doc.Accessors, &gltf.Accessor{
			BufferView:    gltf.Index(len(doc.BufferViews) - 1),
			ComponentType: gltf.ComponentFloat,
			Count:         len(pl.Points),
			Type:          gltf.AccessorVec3,
			Min:           []float64{float64(float32(lo.X)), float64(float32(lo.Y)), 0},
			Max:           []float64{float64(float32(hi.X)), float64(float32(hi.Y)), 0},
		})

		mode := gltf.PrimitiveLineStrip
		if pl.Closed {
			mode = gltf.PrimitiveLineLoop
		}
		mesh.Primitives = append(mesh.Primitives, &gltf.Primitive{
			Attributes: map[string]int{gltf.POSITION: len(doc.Accessors) - 1},
			Mode:       mode,
			Material:   gltf.Index(material(doc, materials, lineColor(pl))),
		})
	}

	doc.Buffers = append(doc.Buffers, &gltf.Buffer{ByteLength: len(data), Data: data})
	doc.Meshes = append(doc.Meshes, mesh)
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name:     g.Name,
		Mesh:     gltf.Index(len(doc.Meshes) - 1),
		Rotation: [4]float64{0, 0, 0, 1},
		Scale:    [3]float64{1, 1, 1},
		Matrix:   [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
	})
	sceneIdx := 0
	if doc.Scene != nil {
		sceneIdx = int(*doc.Scene)
	}
	doc.Scenes[sceneIdx].Nodes = append(doc.Scenes[sceneIdx].Nodes, len(doc.Nodes)-1)
	return doc, nil
}

// Save writes the drawing to path as binary glTF.
func (g *GLTF) Save(path string) error {
	doc, err := g.Document()
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save glb: %w", err)
	}
	log.Infof("Wrote %s (%d primitives, %d materials)", path, len(doc.Meshes[0].Primitives), len(doc.Materials))
	return nil
}

func lineColor(pl Polyline) color.Color {
	if pl.Closed {
		return pl.Cmd.Fill
	}
	if pl.Cmd.Style.Color == nil {
		return color.Black
	}
	return pl.Cmd.Style.Color
}

// material returns the index of an unlit-looking material for c, adding
// it to doc on first use.
func material(doc *gltf.Document, seen map[string]int, c color.Color) int {
	key := style.Hex(c)
	if idx, ok := seen[key]; ok {
		return idx
	}
	r, g, b, a := c.RGBA()
	metallic, roughness := 0.0, 1.0
	doc.Materials = append(doc.Materials, &gltf.Material{
		Name: key,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{
				float64(r) / 0xffff, float64(g) / 0xffff, float64(b) / 0xffff, float64(a) / 0xffff,
			},
			MetallicFactor:  &metallic,
			RoughnessFactor: &roughness,
		},
	})
	seen[key] = len(doc.Materials) - 1
	return seen[key]
}

func appendVec3(b []byte, x, y, z float32) []byte {
	b = binary.LittleEndian.AppendUint32(b, math.Float32bits(x))
	b = binary.LittleEndian.AppendUint32(b, math.Float32bits(y))
	return binary.LittleEndian.AppendUint32(b, math.Float32bits(z))
}

// ReadGLTF loads the line strips of a glTF or GLB file back into 2D
// polylines, dropping z.
func ReadGLTF(path string) ([]Polyline, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	var out []Polyline
	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveLineStrip && prim.Mode != gltf.PrimitiveLineLoop {
				continue
			}
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			pts, err := readPositions(doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("read positions: %w", err)
			}
			out = append(out, Polyline{Points: pts, Closed: prim.Mode == gltf.PrimitiveLineLoop})
		}
	}
	return out, nil
}

func readPositions(doc *gltf.Document, accessorIdx int) ([]shapes.Point, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float VEC3 positions, got %v / %v", accessor.Type, accessor.ComponentType)
	}
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}
	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]
	if buffer.Data == nil {
		return nil, fmt.Errorf("buffer has no data")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	if stride == 0 {
		stride = 12
	}
	if end := start + (accessor.Count-1)*stride + 12; accessor.Count > 0 && end > len(buffer.Data) {
		return nil, fmt.Errorf("accessor overruns buffer (%d > %d)", end, len(buffer.Data))
	}
	pts := make([]shapes.Point, accessor.Count)
	for i := range pts {
		off := start + i*stride
		pts[i] = shapes.Pt(
			float64(math.Float32frombits(binary.LittleEndian.Uint32(buffer.Data[off:]))),
			float64(math.Float32frombits(binary.LittleEndian.Uint32(buffer.Data[off+4:]))),
		)
	}
	return pts, nil
}
