package main

/*
#include <stdint.h>
#include <stdbool.h>
*/
import "C"

import (
	"github.com/routebind/route-runtime/errors"
	"github.com/routebind/route-runtime/params"
)

// Enum translation from the C surface is always an explicit switch; an
// unrecognized value reports an error instead of silently defaulting.

func approachFromC(v C.int) (params.Approach, error) {
	switch v {
	case -1:
		return params.ApproachUnset, nil
	case 0:
		return params.ApproachUnrestricted, nil
	case 1:
		return params.ApproachCurb, nil
	case 2:
		return params.ApproachOpposite, nil
	default:
		return 0, errors.InvalidArgument("unrecognized approach value %d", int(v))
	}
}

func snappingFromC(v C.int) (params.Snapping, error) {
	switch v {
	case 0:
		return params.SnappingDefault, nil
	case 1:
		return params.SnappingAny, nil
	default:
		return 0, errors.InvalidArgument("unrecognized snapping value %d", int(v))
	}
}

func formatFromC(v C.int) (params.Format, error) {
	switch v {
	case 0:
		return params.FormatJSON, nil
	case 1:
		return params.FormatFlatBuffers, nil
	default:
		return 0, errors.InvalidFormat("unrecognized format value %d", int(v))
	}
}

func geometriesFromC(v C.int) (params.Geometries, error) {
	switch v {
	case 0:
		return params.GeometriesPolyline, nil
	case 1:
		return params.GeometriesPolyline6, nil
	case 2:
		return params.GeometriesGeoJSON, nil
	default:
		return 0, errors.InvalidArgument("unrecognized geometries value %d", int(v))
	}
}

func overviewFromC(v C.int) (params.Overview, error) {
	switch v {
	case 0:
		return params.OverviewSimplified, nil
	case 1:
		return params.OverviewFull, nil
	case 2:
		return params.OverviewFalse, nil
	default:
		return 0, errors.InvalidArgument("unrecognized overview value %d", int(v))
	}
}

func gapsFromC(v C.int) (params.Gaps, error) {
	switch v {
	case 0:
		return params.GapsSplit, nil
	case 1:
		return params.GapsIgnore, nil
	default:
		return 0, errors.InvalidArgument("unrecognized gaps value %d", int(v))
	}
}

func fallbackCoordinateFromC(v C.int) (params.FallbackCoordinate, error) {
	switch v {
	case 0:
		return params.FallbackCoordinateInput, nil
	case 1:
		return params.FallbackCoordinateSnapped, nil
	default:
		return 0, errors.InvalidArgument("unrecognized fallback coordinate value %d", int(v))
	}
}

func tripSourceFromC(v C.int) (params.TripSource, error) {
	switch v {
	case 0:
		return params.TripSourceAny, nil
	case 1:
		return params.TripSourceFirst, nil
	default:
		return 0, errors.InvalidArgument("unrecognized trip source value %d", int(v))
	}
}

func tripDestinationFromC(v C.int) (params.TripDestination, error) {
	switch v {
	case 0:
		return params.TripDestinationAny, nil
	case 1:
		return params.TripDestinationLast, nil
	default:
		return 0, errors.InvalidArgument("unrecognized trip destination value %d", int(v))
	}
}

//export routec_params_add_coordinate
func routec_params_add_coordinate(h C.uint64_t, lon, lat C.double, errOut *C.uint64_t) {
	call(errOut, func() error {
		base, err := getBase(h)
		if err != nil {
			return err
		}
		return base.AddCoordinate(float64(lon), float64(lat))
	})
}

//export routec_params_coordinate_count
func routec_params_coordinate_count(h C.uint64_t, errOut *C.uint64_t) C.int {
	var count int
	call(errOut, func() error {
		base, err := getBase(h)
		if err != nil {
			return err
		}
		count = base.CoordinateCount()
		return nil
	})
	return C.int(count)
}

//export routec_params_set_radius
func routec_params_set_radius(h C.uint64_t, index C.int, radius C.double, errOut *C.uint64_t) {
	call(errOut, func() error {
		base, err := getBase(h)
		if err != nil {
			return err
		}
		return base.SetRadius(int(index), float64(radius))
	})
}

//export routec_params_set_bearing
func routec_params_set_bearing(h C.uint64_t, index C.int, value, rng C.short, errOut *C.uint64_t) {
	call(errOut, func() error {
		base, err := getBase(h)
		if err != nil {
			return err
		}
		return base.SetBearing(int(index), int16(value), int16(rng))
	})
}

//export routec_params_clear_bearing
func routec_params_clear_bearing(h C.uint64_t, index C.int, errOut *C.uint64_t) {
	call(errOut, func() error {
		base, err := getBase(h)
		if err != nil {
			return err
		}
		return base.ClearBearing(int(index))
	})
}

//export routec_params_set_approach
func routec_params_set_approach(h C.uint64_t, index C.int, approach C.int, errOut *C.uint64_t) {
	call(errOut, func() error {
		base, err := getBase(h)
		if err != nil {
			return err
		}
		a, err := approachFromC(approach)
		if err != nil {
			return err
		}
		return base.SetApproach(int(index), a)
	})
}

//export routec_params_set_hint
func routec_params_set_hint(h C.uint64_t, index C.int, hint *C.char, errOut *C.uint64_t) {
	call(errOut, func() error {
		base, err := getBase(h)
		if err != nil {
			return err
		}
		if hint == nil {
			return errors.InvalidArgument("nil hint")
		}
		return base.SetHint(int(index), C.GoString(hint))
	})
}

//export routec_params_add_exclude
func routec_params_add_exclude(h C.uint64_t, class *C.char, errOut *C.uint64_t) {
	call(errOut, func() error {
		base, err := getBase(h)
		if err != nil {
			return err
		}
		if class == nil {
			return errors.InvalidArgument("nil exclude class")
		}
		return base.AddExclude(C.GoString(class))
	})
}

//export routec_params_set_snapping
func routec_params_set_snapping(h C.uint64_t, snapping C.int, errOut *C.uint64_t) {
	call(errOut, func() error {
		base, err := getBase(h)
		if err != nil {
			return err
		}
		s, err := snappingFromC(snapping)
		if err != nil {
			return err
		}
		return base.SetSnapping(s)
	})
}

//export routec_params_set_format
func routec_params_set_format(h C.uint64_t, format C.int, errOut *C.uint64_t) {
	call(errOut, func() error {
		base, err := getBase(h)
		if err != nil {
			return err
		}
		f, err := formatFromC(format)
		if err != nil {
			return err
		}
		return base.SetFormat(f)
	})
}

//export routec_params_set_generate_hints
func routec_params_set_generate_hints(h C.uint64_t, enabled C.bool, errOut *C.uint64_t) {
	call(errOut, func() error {
		base, err := getBase(h)
		if err != nil {
			return err
		}
		return base.SetGenerateHints(bool(enabled))
	})
}

//export routec_params_set_skip_waypoints
func routec_params_set_skip_waypoints(h C.uint64_t, enabled C.bool, errOut *C.uint64_t) {
	call(errOut, func() error {
		base, err := getBase(h)
		if err != nil {
			return err
		}
		return base.SetSkipWaypoints(bool(enabled))
	})
}
