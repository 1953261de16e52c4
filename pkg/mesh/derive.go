package mesh

import "math"

// vertex returns vertex i as float64 components.
func (m *Mesh) vertex(i uint32) (x, y, z float64) {
	return float64(m.Vertices[i*3]), float64(m.Vertices[i*3+1]), float64(m.Vertices[i*3+2])
}

// ComputeNormals fills the Normals buffer with per-vertex normals obtained
// by accumulating the face normal of every triangle touching a vertex and
// normalizing the sum. Shared vertices therefore get smooth normals; a
// faceted look requires distinct vertices per face.
func (m *Mesh) ComputeNormals() {
	acc := make([]float64, len(m.Vertices))

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]

		x0, y0, z0 := m.vertex(i0)
		x1, y1, z1 := m.vertex(i1)
		x2, y2, z2 := m.vertex(i2)

		// Face normal = edge1 x edge2, unnormalized so larger triangles
		// weigh more in the accumulation.
		e1x, e1y, e1z := x1-x0, y1-y0, z1-z0
		e2x, e2y, e2z := x2-x0, y2-y0, z2-z0
		nx := e1y*e2z - e1z*e2y
		ny := e1z*e2x - e1x*e2z
		nz := e1x*e2y - e1y*e2x

		for _, vi := range [3]uint32{i0, i1, i2} {
			acc[vi*3] += nx
			acc[vi*3+1] += ny
			acc[vi*3+2] += nz
		}
	}

	m.Normals = make([]float32, len(m.Vertices))
	for i := 0; i+2 < len(acc); i += 3 {
		nx, ny, nz := acc[i], acc[i+1], acc[i+2]
		l := math.Sqrt(nx*nx + ny*ny + nz*nz)
		if l == 0 {
			// Degenerate vertex (unreferenced or zero-area fan).
			continue
		}
		m.Normals[i] = float32(nx / l)
		m.Normals[i+1] = float32(ny / l)
		m.Normals[i+2] = float32(nz / l)
	}
}

// ComputeTangents fills the Tangents buffer from triangle edge and UV
// deltas. Triangles with degenerate UV mappings are skipped rather than
// dividing by zero. Requires a populated UVs buffer.
func (m *Mesh) ComputeTangents() {
	m.Tangents = make([]float32, len(m.Vertices))
	if len(m.UVs) < m.VertexCount()*2 {
		return
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]

		x0, y0, z0 := m.vertex(i0)
		x1, y1, z1 := m.vertex(i1)
		x2, y2, z2 := m.vertex(i2)

		e1x, e1y, e1z := x1-x0, y1-y0, z1-z0
		e2x, e2y, e2z := x2-x0, y2-y0, z2-z0

		du1 := float64(m.UVs[i1*2] - m.UVs[i0*2])
		dv1 := float64(m.UVs[i1*2+1] - m.UVs[i0*2+1])
		du2 := float64(m.UVs[i2*2] - m.UVs[i0*2])
		dv2 := float64(m.UVs[i2*2+1] - m.UVs[i0*2+1])

		det := du1*dv2 - du2*dv1
		if det == 0 {
			continue
		}
		fc := 1.0 / det

		tx := fc * (dv2*e1x - dv1*e2x)
		ty := fc * (dv2*e1y - dv1*e2y)
		tz := fc * (dv2*e1z - dv1*e2z)

		l := math.Sqrt(tx*tx + ty*ty + tz*tz)
		if l == 0 {
			continue
		}
		tx, ty, tz = tx/l, ty/l, tz/l

		handedness := 1.0
		if dv1*du2-dv2*du1 < 0 {
			handedness = -1.0
		}

		for _, vi := range [3]uint32{i0, i1, i2} {
			m.Tangents[vi*3] = float32(tx * handedness)
			m.Tangents[vi*3+1] = float32(ty * handedness)
			m.Tangents[vi*3+2] = float32(tz * handedness)
		}
	}
}
