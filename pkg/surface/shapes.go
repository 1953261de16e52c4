package surface

import "math"

// Compile-time interface checks.
var (
	_ Surface = Sphere{}
	_ Surface = Torus{}
	_ Surface = Plane{}
	_ Surface = Cylinder{}
)

// Sphere is a sphere of the given radius centered at the origin. The v
// parameter is the polar angle, running from the +Z pole (v=0) to the -Z
// pole (v=pi). A full sphere needs the full [0,pi] range; anything less
// yields a spherical cap or band.
type Sphere struct {
	Radius float64
}

func (s Sphere) DomainU() (min, max float64) { return 0, 2 * math.Pi }
func (s Sphere) DomainV() (min, max float64) { return 0, math.Pi }

func (s Sphere) Evaluate(u, v float64) Vec3 {
	return Vec3{
		X: s.Radius * math.Cos(u) * math.Sin(v),
		Y: s.Radius * math.Sin(u) * math.Sin(v),
		Z: s.Radius * math.Cos(v),
	}
}

// Torus is a ring of radius Radius around the Z axis, swept by a tube of
// radius TubeRadius. u travels around the ring, v around the tube.
type Torus struct {
	Radius     float64
	TubeRadius float64
}

func (t Torus) DomainU() (min, max float64) { return 0, 2 * math.Pi }
func (t Torus) DomainV() (min, max float64) { return 0, 2 * math.Pi }

func (t Torus) Evaluate(u, v float64) Vec3 {
	r := t.Radius + t.TubeRadius*math.Cos(v)
	return Vec3{
		X: r * math.Cos(u),
		Y: r * math.Sin(u),
		Z: t.TubeRadius * math.Sin(v),
	}
}

// Plane is a flat rectangle in the XZ plane with its corner at the origin.
// u runs along X over [0,Width], v along Z over [0,Depth].
type Plane struct {
	Width float64
	Depth float64
}

func (p Plane) DomainU() (min, max float64) { return 0, p.Width }
func (p Plane) DomainV() (min, max float64) { return 0, p.Depth }

func (p Plane) Evaluate(u, v float64) Vec3 {
	return Vec3{X: u, Y: 0, Z: v}
}

// Cylinder is an open tube around the Y axis: u travels around the
// circumference, v climbs from the base (y=0) to the top (y=Height).
// Neither end is capped.
type Cylinder struct {
	Radius float64
	Height float64
}

func (c Cylinder) DomainU() (min, max float64) { return 0, 2 * math.Pi }
func (c Cylinder) DomainV() (min, max float64) { return 0, c.Height }

func (c Cylinder) Evaluate(u, v float64) Vec3 {
	return Vec3{
		X: c.Radius * math.Cos(u),
		Y: v,
		Z: c.Radius * math.Sin(u),
	}
}
