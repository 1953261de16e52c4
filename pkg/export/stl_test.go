package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bverret/parasurf/pkg/mesh"
	"github.com/bverret/parasurf/pkg/surface"
	"github.com/bverret/parasurf/pkg/tessellate"
)

func quadMesh() *mesh.Mesh {
	return &mesh.Mesh{
		Vertices: []float32{
			0, 0, 0,
			1, 0, 0,
			0, 0, 1,
			1, 0, 1,
		},
		Indices: []uint32{0, 2, 1, 1, 2, 3},
	}
}

func TestTrianglesConversion(t *testing.T) {
	m := quadMesh()
	tris := Triangles(m)

	if len(tris) != 2 {
		t.Fatalf("got %d triangles, want 2", len(tris))
	}

	// First triangle follows index order 0, 2, 1.
	a := tris[0]
	if a[0].X != 0 || a[0].Y != 0 || a[0].Z != 0 {
		t.Errorf("tri 0 vertex 0 = %+v, want origin", a[0])
	}
	if a[1].X != 0 || a[1].Z != 1 {
		t.Errorf("tri 0 vertex 1 = %+v, want (0,0,1)", a[1])
	}
	if a[2].X != 1 || a[2].Z != 0 {
		t.Errorf("tri 0 vertex 2 = %+v, want (1,0,0)", a[2])
	}
}

func TestTrianglesEmptyMesh(t *testing.T) {
	if tris := Triangles(&mesh.Mesh{}); len(tris) != 0 {
		t.Errorf("got %d triangles from empty mesh, want 0", len(tris))
	}
}

func TestSaveSTLWritesFile(t *testing.T) {
	m, err := tessellate.Generate(8, 4, surface.Sphere{Radius: 1})
	if err != nil {
		t.Fatalf("tessellation failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.stl")
	if err := SaveSTL(path, []*mesh.Mesh{m}); err != nil {
		t.Fatalf("SaveSTL failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	// Binary STL: 80-byte header + 4-byte count + 50 bytes per facet.
	want := int64(84 + 50*m.TriangleCount())
	if info.Size() != want {
		t.Errorf("file size = %d, want %d", info.Size(), want)
	}
}

func TestSaveSTLSkipsEmptyMeshes(t *testing.T) {
	m, err := tessellate.Generate(1, 1, surface.Plane{Width: 1, Depth: 1})
	if err != nil {
		t.Fatalf("tessellation failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.stl")
	if err := SaveSTL(path, []*mesh.Mesh{{}, m, {}}); err != nil {
		t.Fatalf("SaveSTL failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestSaveSTLNoTriangles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.stl")
	if err := SaveSTL(path, []*mesh.Mesh{{}}); err == nil {
		t.Error("expected error when no triangles to write")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be written when there are no triangles")
	}
}
