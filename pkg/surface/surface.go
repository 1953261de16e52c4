// Package surface defines the parametric surface contract: a pure mapping
// from a 2D parameter domain (u,v) to a point in 3D space. Concrete
// surfaces declare their own domain bounds; the tessellator rescales a
// normalized [0,1] grid into that domain before evaluation.
package surface

// Vec3 is a point or direction in 3D space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Surface is the capability contract implemented by every parametric
// surface. Evaluate must be a pure function of its inputs: identical (u,v)
// always yields an identical point. It is assumed total over the declared
// domain and defines no error conditions.
//
// DomainU and DomainV declare the parameter intervals Evaluate accepts.
// Inverted bounds (min > max) are a configuration error rejected by the
// tessellator; zero-width intervals are legal but produce a degenerate
// surface.
type Surface interface {
	// DomainU returns the parameter interval along the u axis.
	DomainU() (min, max float64)

	// DomainV returns the parameter interval along the v axis.
	DomainV() (min, max float64)

	// Evaluate maps a domain-scaled parameter pair to a 3D point.
	Evaluate(u, v float64) Vec3
}

// Func adapts a plain closure into a Surface. It is the escape hatch for
// surfaces that don't warrant a named type.
type Func struct {
	UMin, UMax float64
	VMin, VMax float64
	Eval       func(u, v float64) Vec3
}

// Compile-time interface check.
var _ Surface = Func{}

func (f Func) DomainU() (min, max float64) { return f.UMin, f.UMax }
func (f Func) DomainV() (min, max float64) { return f.VMin, f.VMax }

func (f Func) Evaluate(u, v float64) Vec3 { return f.Eval(u, v) }
