package params

import (
	"github.com/routebind/route-runtime/errors"
)

// Route builds parameters for the Route verb.
type Route struct {
	Base

	alternatives     int
	steps            bool
	annotations      Annotations
	geometries       Geometries
	overview         Overview
	continueStraight *bool
	waypoints        []int
}

// NewRoute creates a route builder with the engine's defaults: polyline
// geometry, simplified overview, no alternatives.
func NewRoute() *Route {
	return &Route{
		Base:       newBase(),
		geometries: GeometriesPolyline,
		overview:   OverviewSimplified,
	}
}

// SetAlternatives requests up to n alternative routes.
func (p *Route) SetAlternatives(n int) error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if n < 0 {
		return errors.InvalidArgument("alternatives count must be non-negative, got %d", n)
	}
	p.alternatives = n
	return nil
}

// Alternatives returns the requested number of alternative routes.
func (p *Route) Alternatives() int {
	if p == nil {
		return 0
	}
	return p.alternatives
}

// SetSteps controls whether turn-by-turn steps are returned.
func (p *Route) SetSteps(v bool) error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	p.steps = v
	return nil
}

// Steps reports whether turn-by-turn steps are returned.
func (p *Route) Steps() bool {
	if p == nil {
		return false
	}
	return p.steps
}

// SetAnnotations sets the per-edge metric mask.
func (p *Route) SetAnnotations(a Annotations) error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if !a.valid() {
		return errors.InvalidArgument("unrecognized annotation bits %#x", uint8(a))
	}
	p.annotations = a
	return nil
}

// SetAnnotationsString sets the per-edge metric mask from a token string
// such as "duration,distance". See ParseAnnotations.
func (p *Route) SetAnnotationsString(s string) error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	mask, err := ParseAnnotations(s)
	if err != nil {
		return err
	}
	p.annotations = mask
	return nil
}

// Annotations returns the per-edge metric mask.
func (p *Route) Annotations() Annotations {
	if p == nil {
		return AnnotationsNone
	}
	return p.annotations
}

// SetGeometries sets the geometry encoding.
func (p *Route) SetGeometries(g Geometries) error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if !g.valid() {
		return errors.InvalidArgument("unrecognized geometry encoding %d", g)
	}
	p.geometries = g
	return nil
}

// Geometries returns the geometry encoding.
func (p *Route) Geometries() Geometries {
	if p == nil {
		return GeometriesPolyline
	}
	return p.geometries
}

// SetOverview sets the overview geometry level.
func (p *Route) SetOverview(o Overview) error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if !o.valid() {
		return errors.InvalidArgument("unrecognized overview level %d", o)
	}
	p.overview = o
	return nil
}

// Overview returns the overview geometry level.
func (p *Route) Overview() Overview {
	if p == nil {
		return OverviewSimplified
	}
	return p.overview
}

// SetContinueStraight forces or forbids u-turns at via coordinates. Unset
// leaves the choice to the profile.
func (p *Route) SetContinueStraight(v bool) error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	p.continueStraight = &v
	return nil
}

// ClearContinueStraight returns the option to the profile default.
func (p *Route) ClearContinueStraight() error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	p.continueStraight = nil
	return nil
}

// ContinueStraight returns the continue-straight setting and whether one is
// set.
func (p *Route) ContinueStraight() (bool, bool) {
	if p == nil || p.continueStraight == nil {
		return false, false
	}
	return *p.continueStraight, true
}

// AddWaypoint marks coordinate index as a true waypoint; the remaining
// coordinates become silent vias. Indices must already exist.
func (p *Route) AddWaypoint(index int) error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if err := p.checkIndex(index); err != nil {
		return err
	}
	p.waypoints = append(p.waypoints, index)
	return nil
}

// Waypoints returns the waypoint index subset, empty when every coordinate
// is a waypoint.
func (p *Route) Waypoints() []int {
	if p == nil {
		return nil
	}
	return p.waypoints
}

// Valid checks the builder before dispatch.
func (p *Route) Valid() error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if err := p.needCoordinates(2); err != nil {
		return err
	}
	return p.checkWaypointSubset(p.waypoints)
}
