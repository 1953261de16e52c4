package tessellate_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/bverret/parasurf/pkg/surface"
	"github.com/bverret/parasurf/pkg/tessellate"
)

// unitPlane maps the unit parameter square onto the XZ plane.
func unitPlane() surface.Surface {
	return surface.Func{
		UMin: 0, UMax: 1,
		VMin: 0, VMax: 1,
		Eval: func(u, v float64) surface.Vec3 {
			return surface.Vec3{X: u, Y: 0, Z: v}
		},
	}
}

// unitSphere is the conventional unit sphere with the polar angle v in [0, pi].
func unitSphere() surface.Surface {
	return surface.Func{
		UMin: 0, UMax: 2 * math.Pi,
		VMin: 0, VMax: math.Pi,
		Eval: func(u, v float64) surface.Vec3 {
			return surface.Vec3{
				X: math.Cos(u) * math.Sin(v),
				Y: math.Sin(u) * math.Sin(v),
				Z: math.Cos(v),
			}
		},
	}
}

func TestGridSizeInvariant(t *testing.T) {
	cases := []struct{ m, n int }{
		{1, 1}, {2, 3}, {16, 8}, {1, 256}, {256, 2},
	}
	for _, c := range cases {
		m, err := tessellate.Generate(c.m, c.n, unitPlane())
		if err != nil {
			t.Fatalf("Generate(%d,%d) failed: %v", c.m, c.n, err)
		}
		wantVerts := (c.m + 1) * (c.n + 1)
		if got := m.VertexCount(); got != wantVerts {
			t.Errorf("Generate(%d,%d): vertex count = %d, want %d", c.m, c.n, got, wantVerts)
		}
		if got := len(m.UVs); got != wantVerts*2 {
			t.Errorf("Generate(%d,%d): UV buffer length = %d, want %d", c.m, c.n, got, wantVerts*2)
		}
		if got := len(m.Indices); got != 6*c.m*c.n {
			t.Errorf("Generate(%d,%d): index buffer length = %d, want %d", c.m, c.n, got, 6*c.m*c.n)
		}
	}
}

func TestIndexBufferInRange(t *testing.T) {
	m, err := tessellate.Generate(7, 5, unitPlane())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	limit := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= limit {
			t.Fatalf("index %d at position %d out of range [0, %d)", idx, i, limit)
		}
	}
}

func TestCornerUVsAppearOnce(t *testing.T) {
	const segsU, segsV = 6, 4
	m, err := tessellate.Generate(segsU, segsV, unitPlane())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	corners := map[[2]float32]int{
		{0, 0}: 0,
		{1, 0}: 0,
		{0, 1}: 0,
		{1, 1}: 0,
	}
	for i := 0; i < m.VertexCount(); i++ {
		uv := [2]float32{m.UVs[i*2], m.UVs[i*2+1]}
		if _, ok := corners[uv]; ok {
			corners[uv]++
		}
	}
	for uv, count := range corners {
		if count != 1 {
			t.Errorf("corner UV %v appears %d times, want exactly 1", uv, count)
		}
	}

	// Corners must sit at the grid corner slots of the linearized buffer.
	cornerSlots := map[int][2]float32{
		0:                          {0, 0},
		segsU:                      {1, 0},
		(segsU + 1) * segsV:        {0, 1},
		(segsU+1)*(segsV+1) - 1:    {1, 1},
	}
	for slot, want := range cornerSlots {
		got := [2]float32{m.UVs[slot*2], m.UVs[slot*2+1]}
		if got != want {
			t.Errorf("UV at slot %d = %v, want %v", slot, got, want)
		}
	}
}

func TestDeterminism(t *testing.T) {
	a, err := tessellate.Generate(12, 9, unitSphere())
	if err != nil {
		t.Fatalf("first Generate failed: %v", err)
	}
	b, err := tessellate.Generate(12, 9, unitSphere())
	if err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two generations with identical inputs differ")
	}
}

func TestDomainScalingSpherePoles(t *testing.T) {
	const tol = 1e-6
	m, err := tessellate.Generate(4, 4, unitSphere())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// Grid node (0,0) is the v=0 pole (0,0,1); node (0,4) is the v=pi
	// pole (0,0,-1). Slot = x + (segsU+1)*y.
	checks := []struct {
		slot int
		want [3]float64
	}{
		{0, [3]float64{0, 0, 1}},
		{5 * 4, [3]float64{0, 0, -1}},
	}
	for _, c := range checks {
		for a := 0; a < 3; a++ {
			got := float64(m.Vertices[c.slot*3+a])
			if math.Abs(got-c.want[a]) > tol {
				t.Errorf("vertex at slot %d component %d = %g, want %g", c.slot, a, got, c.want[a])
			}
		}
	}
}

func TestWindingMinimalGrid(t *testing.T) {
	m, err := tessellate.Generate(1, 1, unitPlane())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	wantVerts := []float32{
		0, 0, 0,
		1, 0, 0,
		0, 0, 1,
		1, 0, 1,
	}
	if !reflect.DeepEqual(m.Vertices, wantVerts) {
		t.Errorf("vertices = %v, want %v", m.Vertices, wantVerts)
	}

	wantIndices := []uint32{0, 2, 1, 1, 2, 3}
	if !reflect.DeepEqual(m.Indices, wantIndices) {
		t.Errorf("indices = %v, want %v", m.Indices, wantIndices)
	}
}

func TestUVsIndependentOfDomainScale(t *testing.T) {
	wide := surface.Func{
		UMin: -50, UMax: 50,
		VMin: 3, VMax: 9,
		Eval: func(u, v float64) surface.Vec3 {
			return surface.Vec3{X: u, Y: 0, Z: v}
		},
	}
	m, err := tessellate.Generate(5, 5, wide)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for i := 0; i < len(m.UVs); i++ {
		if m.UVs[i] < 0 || m.UVs[i] > 1 {
			t.Fatalf("UV component %d = %g outside [0,1]", i, m.UVs[i])
		}
	}
}

func TestDegenerateSubdivisionsRejected(t *testing.T) {
	cases := []struct{ m, n int }{
		{0, 4}, {4, 0}, {0, 0}, {-1, 4}, {4, -3},
	}
	for _, c := range cases {
		if _, err := tessellate.Generate(c.m, c.n, unitPlane()); err == nil {
			t.Errorf("Generate(%d,%d) succeeded, want configuration error", c.m, c.n)
		}
	}
}

func TestInvertedDomainRejected(t *testing.T) {
	invertedU := surface.Func{
		UMin: 1, UMax: 0,
		VMin: 0, VMax: 1,
		Eval: func(u, v float64) surface.Vec3 { return surface.Vec3{} },
	}
	if _, err := tessellate.Generate(4, 4, invertedU); err == nil {
		t.Error("inverted u domain accepted, want configuration error")
	}

	invertedV := surface.Func{
		UMin: 0, UMax: 1,
		VMin: 2, VMax: -2,
		Eval: func(u, v float64) surface.Vec3 { return surface.Vec3{} },
	}
	if _, err := tessellate.Generate(4, 4, invertedV); err == nil {
		t.Error("inverted v domain accepted, want configuration error")
	}
}

func TestZeroWidthDomainPermitted(t *testing.T) {
	// Zero-width intervals are a caller error but not rejected; they must
	// produce a (degenerate) mesh rather than fail.
	flat := surface.Func{
		UMin: 2, UMax: 2,
		VMin: 0, VMax: 1,
		Eval: func(u, v float64) surface.Vec3 {
			return surface.Vec3{X: u, Y: v, Z: 0}
		},
	}
	m, err := tessellate.Generate(2, 2, flat)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if m.VertexCount() != 9 {
		t.Errorf("vertex count = %d, want 9", m.VertexCount())
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	torus := surface.Torus{Radius: 3, TubeRadius: 1}

	serial, err := tessellate.Generate(32, 16, torus)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, workers := range []int{0, 1, 3, 8, 64} {
		parallel, err := tessellate.GenerateParallel(32, 16, torus, workers)
		if err != nil {
			t.Fatalf("GenerateParallel(workers=%d) failed: %v", workers, err)
		}
		if !reflect.DeepEqual(serial, parallel) {
			t.Errorf("GenerateParallel(workers=%d) differs from Generate", workers)
		}
	}
}

func TestParallelRejectsBadConfig(t *testing.T) {
	if _, err := tessellate.GenerateParallel(0, 4, unitPlane(), 4); err == nil {
		t.Error("GenerateParallel accepted zero subdivisions")
	}
}
