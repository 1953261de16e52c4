package scene

import "fmt"

// Severity distinguishes hard configuration errors from advisories.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Problem describes a single validation finding against a scene entry.
type Problem struct {
	Severity Severity
	Entry    string // entry name, or "" for scene-level problems
	Message  string
}

func (p Problem) Error() string {
	if p.Entry != "" {
		return fmt.Sprintf("%s: %s: %s", p.Severity, p.Entry, p.Message)
	}
	return fmt.Sprintf("%s: %s", p.Severity, p.Message)
}

// Validate checks every entry against the configuration constraints the
// tessellator documents as preconditions: subdivision counts in
// [1, MaxSegments], a usable surface, and non-inverted domain bounds.
// Zero-width domains are legal but degenerate, so they are reported as
// warnings rather than errors.
func (s *Scene) Validate() []Problem {
	var problems []Problem

	seen := make(map[string]bool, len(s.Entries))
	for _, e := range s.Entries {
		if e.Name == "" {
			problems = append(problems, Problem{
				Severity: SeverityError,
				Message:  "entry has no name",
			})
			continue
		}
		if seen[e.Name] {
			problems = append(problems, Problem{
				Severity: SeverityError,
				Entry:    e.Name,
				Message:  "duplicate entry name",
			})
		}
		seen[e.Name] = true

		problems = append(problems, validateEntry(e)...)
	}

	return problems
}

func validateEntry(e *Entry) []Problem {
	var problems []Problem

	fail := func(format string, args ...interface{}) {
		problems = append(problems, Problem{
			Severity: SeverityError,
			Entry:    e.Name,
			Message:  fmt.Sprintf(format, args...),
		})
	}
	warn := func(format string, args ...interface{}) {
		problems = append(problems, Problem{
			Severity: SeverityWarning,
			Entry:    e.Name,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	if e.SegsU < 1 || e.SegsU > MaxSegments {
		fail("segments-u %d out of range [1, %d]", e.SegsU, MaxSegments)
	}
	if e.SegsV < 1 || e.SegsV > MaxSegments {
		fail("segments-v %d out of range [1, %d]", e.SegsV, MaxSegments)
	}

	if e.Surface == nil {
		fail("entry has no surface")
		return problems
	}

	uMin, uMax := e.Surface.DomainU()
	vMin, vMax := e.Surface.DomainV()
	if uMin > uMax {
		fail("inverted u domain [%g, %g]", uMin, uMax)
	}
	if vMin > vMax {
		fail("inverted v domain [%g, %g]", vMin, vMax)
	}
	if uMin == uMax {
		warn("zero-width u domain at %g, surface is degenerate", uMin)
	}
	if vMin == vMax {
		warn("zero-width v domain at %g, surface is degenerate", vMin)
	}

	return problems
}
