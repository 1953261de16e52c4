// Package tessellate turns a parametric surface into a triangle mesh by
// sampling the surface's domain on a regular grid and stitching adjacent
// samples into counter-clockwise triangles.
//
// The buffer layout is fixed and every consumer depends on it: for segsU=m
// and segsV=n the vertex and UV buffers hold (m+1)*(n+1) entries linearized
// as x + (m+1)*y, and the index buffer holds 6*m*n entries, two triangles
// per grid cell.
package tessellate

import (
	"fmt"

	"github.com/bverret/parasurf/pkg/mesh"
	"github.com/bverret/parasurf/pkg/surface"
)

// Generate samples s on a (segsU+1) x (segsV+1) grid and returns the
// assembled mesh. segsU and segsV are the quad cell counts along each
// parametric axis and must both be at least 1; the surface's domain bounds
// must not be inverted. Both are checked eagerly so a bad configuration
// fails fast instead of producing a malformed mesh.
//
// Each call allocates fresh buffers; the returned mesh is owned by the
// caller and never touched again.
func Generate(segsU, segsV int, s surface.Surface) (*mesh.Mesh, error) {
	if err := validate(segsU, segsV, s); err != nil {
		return nil, err
	}

	m := newGridMesh(segsU, segsV)
	fillRows(m, 0, segsV+1, segsU, segsV, s)
	fillIndices(m, segsU, segsV)
	return m, nil
}

// validate rejects the configurations that would otherwise divide by zero
// in the normalization step or flip the domain rescaling.
func validate(segsU, segsV int, s surface.Surface) error {
	if segsU < 1 || segsV < 1 {
		return fmt.Errorf("tessellate: subdivisions must be at least 1x1, got %dx%d", segsU, segsV)
	}
	if uMin, uMax := s.DomainU(); uMin > uMax {
		return fmt.Errorf("tessellate: inverted u domain [%g, %g]", uMin, uMax)
	}
	if vMin, vMax := s.DomainV(); vMin > vMax {
		return fmt.Errorf("tessellate: inverted v domain [%g, %g]", vMin, vMax)
	}
	return nil
}

// newGridMesh allocates the vertex, UV and index buffers for a grid of
// segsU x segsV cells.
func newGridMesh(segsU, segsV int) *mesh.Mesh {
	vertCount := (segsU + 1) * (segsV + 1)
	return &mesh.Mesh{
		Vertices: make([]float32, vertCount*3),
		UVs:      make([]float32, vertCount*2),
		Indices:  make([]uint32, segsU*segsV*6),
	}
}

// fillRows evaluates grid rows [yFrom, yTo) and writes each node's position
// and UV to its fixed slot x + (segsU+1)*y. Rows are independent, so
// disjoint row ranges may be filled concurrently without locking.
func fillRows(m *mesh.Mesh, yFrom, yTo, segsU, segsV int, s surface.Surface) {
	uMin, uMax := s.DomainU()
	vMin, vMax := s.DomainV()
	uSpan := uMax - uMin
	vSpan := vMax - vMin

	for y := yFrom; y < yTo; y++ {
		v := float64(y) / float64(segsV)
		sv := v*vSpan + vMin
		for x := 0; x <= segsU; x++ {
			u := float64(x) / float64(segsU)
			su := u*uSpan + uMin

			p := s.Evaluate(su, sv)

			i := x + (segsU+1)*y
			m.Vertices[i*3] = float32(p.X)
			m.Vertices[i*3+1] = float32(p.Y)
			m.Vertices[i*3+2] = float32(p.Z)
			// The UV buffer keeps the normalized pair so texture mapping is
			// independent of the surface's domain scale.
			m.UVs[i*2] = float32(u)
			m.UVs[i*2+1] = float32(v)
		}
	}
}

// fillIndices emits two counter-clockwise triangles per grid cell. The
// ordering determines the front-face orientation for backface culling and
// must not change.
func fillIndices(m *mesh.Mesh, segsU, segsV int) {
	for cell := 0; cell < segsU*segsV; cell++ {
		row := cell / segsU
		col := cell % segsU
		base := uint32(col + row*(segsU+1))
		stride := uint32(segsU + 1)

		i := cell * 6
		m.Indices[i] = base
		m.Indices[i+1] = base + stride
		m.Indices[i+2] = base + 1
		m.Indices[i+3] = base + 1
		m.Indices[i+4] = base + stride
		m.Indices[i+5] = base + stride + 1
	}
}
