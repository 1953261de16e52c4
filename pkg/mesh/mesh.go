// Package mesh defines the triangle mesh produced by tessellation and the
// host-side geometry derived from it (normals, tangents, bounds).
// All arrays are flat: vertices, normals and tangents carry 3 floats per
// vertex, UVs carry 2, and indices carry 3 uint32s per triangle.
package mesh

// Mesh is a triangle mesh suitable for rendering.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	UVs      []float32 `json:"uvs"`      // [u0,v0, u1,v1, ...] normalized [0,1]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...] empty until ComputeNormals
	Tangents []float32 `json:"tangents"` // [tx0,ty0,tz0, ...] empty until ComputeTangents
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles, CCW
	Name     string    `json:"name"`     // which scene entry this came from
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Bounds returns the axis-aligned bounding box of the mesh vertices.
// An empty mesh yields zero bounds.
func (m *Mesh) Bounds() (min, max [3]float32) {
	if m.IsEmpty() {
		return min, max
	}
	min = [3]float32{m.Vertices[0], m.Vertices[1], m.Vertices[2]}
	max = min
	for i := 3; i+2 < len(m.Vertices); i += 3 {
		for a := 0; a < 3; a++ {
			c := m.Vertices[i+a]
			if c < min[a] {
				min[a] = c
			}
			if c > max[a] {
				max[a] = c
			}
		}
	}
	return min, max
}
