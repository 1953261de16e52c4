// Package scene defines the evaluated scene data structures: the named
// surface entries a DSL evaluation produces, ready to be tessellated.
package scene

import "github.com/bverret/parasurf/pkg/surface"

// DefaultSegments is the subdivision count used on each axis when an entry
// does not declare its own.
const DefaultSegments = 32

// MaxSegments is the upper bound on subdivisions per axis accepted by the
// configuration surface. The tessellator itself only rejects counts below
// 1; the range cap is enforced here, on the host side.
const MaxSegments = 256

// Defaults contains scene-wide default settings.
type Defaults struct {
	SegsU int `json:"segs_u"`
	SegsV int `json:"segs_v"`
}

// Entry is one named surface to tessellate, with its subdivision counts.
type Entry struct {
	Name    string          `json:"name"`
	Desc    string          `json:"desc,omitempty"` // printable surface description
	Surface surface.Surface `json:"-"`
	SegsU   int             `json:"segs_u"`
	SegsV   int             `json:"segs_v"`
}

// Scene is the top-level immutable structure produced by DSL evaluation.
// It is never mutated in place; each evaluation produces a new scene.
type Scene struct {
	Entries   []*Entry       `json:"entries"`
	NameIndex map[string]int `json:"name_index"`
	Defaults  Defaults       `json:"defaults"`
}

// New creates an empty Scene with default settings.
func New() *Scene {
	return &Scene{
		NameIndex: make(map[string]int),
		Defaults: Defaults{
			SegsU: DefaultSegments,
			SegsV: DefaultSegments,
		},
	}
}

// Add appends an entry, applying scene defaults for unset subdivision
// counts. It does not check for duplicate names; Validate does.
func (s *Scene) Add(e *Entry) {
	if e.SegsU == 0 {
		e.SegsU = s.Defaults.SegsU
	}
	if e.SegsV == 0 {
		e.SegsV = s.Defaults.SegsV
	}
	s.Entries = append(s.Entries, e)
	if e.Name != "" {
		s.NameIndex[e.Name] = len(s.Entries) - 1
	}
}

// Lookup returns the entry with the given name, or nil.
func (s *Scene) Lookup(name string) *Entry {
	i, ok := s.NameIndex[name]
	if !ok {
		return nil
	}
	return s.Entries[i]
}

// Count returns the number of entries.
func (s *Scene) Count() int {
	return len(s.Entries)
}
