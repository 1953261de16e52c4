// Package export writes generated meshes to interchange formats.
// STL output goes through the sdfx render package so the files match what
// the rest of the CAD toolchain expects.
package export

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/bverret/parasurf/pkg/mesh"
)

// Triangles converts a mesh's indexed triangles into sdfx triangles.
// Vertex winding is preserved, so STL facet normals follow the mesh's
// counter-clockwise front faces.
func Triangles(m *mesh.Mesh) []*sdf.Triangle3 {
	tris := make([]*sdf.Triangle3, 0, m.TriangleCount())
	for i := 0; i+2 < len(m.Indices); i += 3 {
		t := &sdf.Triangle3{}
		for j := 0; j < 3; j++ {
			vi := m.Indices[i+j]
			t[j] = v3.Vec{
				X: float64(m.Vertices[vi*3]),
				Y: float64(m.Vertices[vi*3+1]),
				Z: float64(m.Vertices[vi*3+2]),
			}
		}
		tris = append(tris, t)
	}
	return tris
}

// SaveSTL writes all meshes to a single binary STL file at path.
// Empty meshes are skipped; writing zero triangles is an error.
func SaveSTL(path string, meshes []*mesh.Mesh) error {
	var tris []*sdf.Triangle3
	for _, m := range meshes {
		if m.IsEmpty() {
			continue
		}
		tris = append(tris, Triangles(m)...)
	}
	if len(tris) == 0 {
		return fmt.Errorf("export: no triangles to write to %s", path)
	}
	if err := render.SaveSTL(path, tris); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
