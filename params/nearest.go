package params

import (
	"github.com/routebind/route-runtime/errors"
)

// Nearest builds parameters for the Nearest verb.
type Nearest struct {
	Base

	numberOfResults int
}

// NewNearest creates a nearest builder returning a single snap candidate.
func NewNearest() *Nearest {
	return &Nearest{
		Base:            newBase(),
		numberOfResults: 1,
	}
}

// SetNumberOfResults requests n snap candidates.
func (p *Nearest) SetNumberOfResults(n int) error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if n < 1 {
		return errors.InvalidArgument("number of results must be at least 1, got %d", n)
	}
	p.numberOfResults = n
	return nil
}

// NumberOfResults returns the requested candidate count.
func (p *Nearest) NumberOfResults() int {
	if p == nil {
		return 0
	}
	return p.numberOfResults
}

// Valid checks the builder before dispatch. Nearest takes exactly one
// coordinate.
func (p *Nearest) Valid() error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if err := p.needCoordinates(1); err != nil {
		return err
	}
	if n := p.CoordinateCount(); n != 1 {
		return errors.InvalidArgument("nearest takes exactly one coordinate, have %d", n)
	}
	return nil
}
