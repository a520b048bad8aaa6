// Package meshio parses Wavefront OBJ files into shape.Mesh values.
// Scanning is line-oriented token splitting in the style of
// gazed-vu's vu/load/obj.go, pared down to the vertex/face subset this
// renderer's Mesh needs — no normals, texture coordinates, or material
// groups are interpreted.
package meshio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/inkwell3d/inkwell/shape"
	"github.com/inkwell3d/inkwell/vecmath"
)

// Load reads an OBJ file from path and builds a triangle-only shape.Mesh.
// Polygonal faces with more than three vertices are fan-triangulated
// around their first vertex.
func Load(path string) (*shape.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshio: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads OBJ-formatted text from r and builds a shape.Mesh.
func Parse(r io.Reader) (*shape.Mesh, error) {
	var vertices []vecmath.Vector
	var faces [][3]int

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("meshio: line %d: %w", lineNo, err)
			}
			vertices = append(vertices, v)
		case "f":
			fs, err := parseFace(fields[1:], len(vertices))
			if err != nil {
				return nil, fmt.Errorf("meshio: line %d: %w", lineNo, err)
			}
			faces = append(faces, fs...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("meshio: %w", err)
	}

	m, err := shape.NewMesh(vertices, faces)
	if err != nil {
		return nil, fmt.Errorf("meshio: %w", err)
	}
	return m, nil
}

func parseVertex(fields []string) (vecmath.Vector, error) {
	if len(fields) < 3 {
		return vecmath.Vector{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var coords [3]float64
	for i := 0; i < 3; i++ {
		c, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return vecmath.Vector{}, fmt.Errorf("vertex coordinate %q: %w", fields[i], err)
		}
		coords[i] = c
	}
	return vecmath.New(coords[0], coords[1], coords[2]), nil
}

// faceIndex parses one OBJ face token ("v", "v/vt", or "v/vt/vn") and
// returns the 0-based vertex index, resolving negative (relative-to-end)
// indices against vertexCount.
func faceIndex(token string, vertexCount int) (int, error) {
	v := strings.SplitN(token, "/", 2)[0]
	idx, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("face vertex index %q: %w", token, err)
	}
	if idx < 0 {
		idx = vertexCount + idx + 1
	}
	if idx < 1 {
		return 0, fmt.Errorf("face vertex index %d out of range", idx)
	}
	return idx - 1, nil
}

func parseFace(fields []string, vertexCount int) ([][3]int, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("face needs at least 3 vertices, got %d", len(fields))
	}
	idx := make([]int, len(fields))
	for i, tok := range fields {
		v, err := faceIndex(tok, vertexCount)
		if err != nil {
			return nil, err
		}
		idx[i] = v
	}
	triangles := make([][3]int, 0, len(idx)-2)
	for i := 1; i < len(idx)-1; i++ {
		triangles = append(triangles, [3]int{idx[0], idx[i], idx[i+1]})
	}
	return triangles, nil
}
