package params

import (
	"github.com/routebind/route-runtime/errors"
)

// Trip builds parameters for the Trip (traveling-salesman) verb.
type Trip struct {
	Base

	roundtrip   bool
	source      TripSource
	destination TripDestination
}

// NewTrip creates a trip builder for a roundtrip with free endpoints.
func NewTrip() *Trip {
	return &Trip{
		Base:      newBase(),
		roundtrip: true,
	}
}

// SetRoundtrip controls whether the trip returns to its start.
func (p *Trip) SetRoundtrip(v bool) error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	p.roundtrip = v
	return nil
}

// Roundtrip reports whether the trip returns to its start.
func (p *Trip) Roundtrip() bool {
	if p == nil {
		return false
	}
	return p.roundtrip
}

// SetSource fixes the starting point of the trip.
func (p *Trip) SetSource(s TripSource) error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if !s.valid() {
		return errors.InvalidArgument("unrecognized trip source %d", s)
	}
	p.source = s
	return nil
}

// Source returns the trip source selection.
func (p *Trip) Source() TripSource {
	if p == nil {
		return TripSourceAny
	}
	return p.source
}

// SetDestination fixes the end point of the trip.
func (p *Trip) SetDestination(d TripDestination) error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if !d.valid() {
		return errors.InvalidArgument("unrecognized trip destination %d", d)
	}
	p.destination = d
	return nil
}

// Destination returns the trip destination selection.
func (p *Trip) Destination() TripDestination {
	if p == nil {
		return TripDestinationAny
	}
	return p.destination
}

// Valid checks the builder before dispatch.
func (p *Trip) Valid() error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	return p.needCoordinates(2)
}
