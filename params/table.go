package params

import (
	"math"

	"github.com/routebind/route-runtime/errors"
)

// Table builds parameters for the Table (many-to-many matrix) verb.
type Table struct {
	Base

	sources            []int
	destinations       []int
	annotations        Annotations
	fallbackSpeed      float64 // 0 disables fallback estimates
	fallbackCoordinate FallbackCoordinate
	scaleFactor        float64
}

// NewTable creates a table builder. With no explicit sources or destinations
// every coordinate is both.
func NewTable() *Table {
	return &Table{
		Base:        newBase(),
		annotations: AnnotationsDuration,
		scaleFactor: 1,
	}
}

// AddSource marks coordinate index as a matrix source. The index must
// already exist.
func (p *Table) AddSource(index int) error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if err := p.checkIndex(index); err != nil {
		return err
	}
	p.sources = append(p.sources, index)
	return nil
}

// AddDestination marks coordinate index as a matrix destination. The index
// must already exist.
func (p *Table) AddDestination(index int) error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if err := p.checkIndex(index); err != nil {
		return err
	}
	p.destinations = append(p.destinations, index)
	return nil
}

// Sources returns the source index subset, empty meaning all.
func (p *Table) Sources() []int {
	if p == nil {
		return nil
	}
	return p.sources
}

// Destinations returns the destination index subset, empty meaning all.
func (p *Table) Destinations() []int {
	if p == nil {
		return nil
	}
	return p.destinations
}

// SetAnnotations selects which matrices are returned. Only duration and
// distance are meaningful for a table.
func (p *Table) SetAnnotations(a Annotations) error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if a == AnnotationsNone || a&^(AnnotationsDuration|AnnotationsDistance) != 0 {
		return errors.InvalidArgument("table annotations must be duration, distance or both")
	}
	p.annotations = a
	return nil
}

// Annotations returns the selected matrix mask.
func (p *Table) Annotations() Annotations {
	if p == nil {
		return AnnotationsNone
	}
	return p.annotations
}

// SetFallbackSpeed enables straight-line fallback estimates (in m/s) for
// unroutable pairs.
func (p *Table) SetFallbackSpeed(speed float64) error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if math.IsNaN(speed) || math.IsInf(speed, 0) || speed <= 0 {
		return errors.InvalidArgument("fallback speed must be positive, got %f", speed)
	}
	p.fallbackSpeed = speed
	return nil
}

// FallbackSpeed returns the fallback speed, 0 when disabled.
func (p *Table) FallbackSpeed() float64 {
	if p == nil {
		return 0
	}
	return p.fallbackSpeed
}

// SetFallbackCoordinate selects which coordinate fallback estimates are
// computed from.
func (p *Table) SetFallbackCoordinate(fc FallbackCoordinate) error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if !fc.valid() {
		return errors.InvalidArgument("unrecognized fallback coordinate %d", fc)
	}
	p.fallbackCoordinate = fc
	return nil
}

// FallbackCoordinate returns the fallback coordinate selection.
func (p *Table) FallbackCoordinate() FallbackCoordinate {
	if p == nil {
		return FallbackCoordinateInput
	}
	return p.fallbackCoordinate
}

// SetScaleFactor multiplies every returned duration.
func (p *Table) SetScaleFactor(factor float64) error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return errors.InvalidArgument("scale factor must be positive, got %f", factor)
	}
	p.scaleFactor = factor
	return nil
}

// ScaleFactor returns the duration scale factor.
func (p *Table) ScaleFactor() float64 {
	if p == nil {
		return 1
	}
	return p.scaleFactor
}

// Valid checks the builder before dispatch.
func (p *Table) Valid() error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	return p.needCoordinates(2)
}
