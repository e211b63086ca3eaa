package params

import (
	"github.com/routebind/route-runtime/errors"
)

// Match builds parameters for the Match (map matching) verb.
type Match struct {
	Base

	timestamps []int64
	gaps       Gaps
	tidy       bool
	waypoints  []int
}

// NewMatch creates a match builder that splits traces on large timestamp
// gaps.
func NewMatch() *Match {
	return &Match{
		Base: newBase(),
		gaps: GapsSplit,
	}
}

// AddTimestamp appends a UNIX timestamp for the next coordinate. Timestamps
// must be non-decreasing.
func (p *Match) AddTimestamp(ts int64) error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if n := len(p.timestamps); n > 0 && ts < p.timestamps[n-1] {
		return errors.InvalidArgument("timestamps must be non-decreasing")
	}
	p.timestamps = append(p.timestamps, ts)
	return nil
}

// Timestamps returns the timestamps added so far.
func (p *Match) Timestamps() []int64 {
	if p == nil {
		return nil
	}
	return p.timestamps
}

// SetGaps controls how large timestamp gaps are treated.
func (p *Match) SetGaps(g Gaps) error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if !g.valid() {
		return errors.InvalidArgument("unrecognized gaps mode %d", g)
	}
	p.gaps = g
	return nil
}

// Gaps returns the gap handling mode.
func (p *Match) Gaps() Gaps {
	if p == nil {
		return GapsSplit
	}
	return p.gaps
}

// SetTidy enables pre-filtering of obvious trace outliers.
func (p *Match) SetTidy(v bool) error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	p.tidy = v
	return nil
}

// Tidy reports whether trace pre-filtering is enabled.
func (p *Match) Tidy() bool {
	if p == nil {
		return false
	}
	return p.tidy
}

// AddWaypoint marks coordinate index as a waypoint of the matched route.
func (p *Match) AddWaypoint(index int) error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if err := p.checkIndex(index); err != nil {
		return err
	}
	p.waypoints = append(p.waypoints, index)
	return nil
}

// Waypoints returns the waypoint index subset.
func (p *Match) Waypoints() []int {
	if p == nil {
		return nil
	}
	return p.waypoints
}

// Valid checks the builder before dispatch. Timestamps, when present, must
// cover every coordinate.
func (p *Match) Valid() error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if err := p.needCoordinates(2); err != nil {
		return err
	}
	if n := len(p.timestamps); n != 0 && n != p.CoordinateCount() {
		return errors.InvalidArgument("have %d timestamps for %d coordinates", n, p.CoordinateCount())
	}
	return p.checkWaypointSubset(p.waypoints)
}
