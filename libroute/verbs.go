package main

/*
#include <stdint.h>
#include <stdbool.h>
*/
import "C"

import (
	"github.com/routebind/route-runtime/errors"
	"github.com/routebind/route-runtime/params"
	"github.com/routebind/route-runtime/resource"
)

//export routec_route_params_construct
func routec_route_params_construct() C.uint64_t {
	return C.uint64_t(table.Insert(typeRouteParams, params.NewRoute()))
}

//export routec_route_params_destruct
func routec_route_params_destruct(h C.uint64_t) {
	table.Remove(resource.Handle(h))
}

//export routec_route_params_set_alternatives
func routec_route_params_set_alternatives(h C.uint64_t, n C.int, errOut *C.uint64_t) {
	call(errOut, func() error {
		p, err := getRouteParams(h)
		if err != nil {
			return err
		}
		return p.SetAlternatives(int(n))
	})
}

//export routec_route_params_alternatives
func routec_route_params_alternatives(h C.uint64_t, errOut *C.uint64_t) C.int {
	var n int
	call(errOut, func() error {
		p, err := getRouteParams(h)
		if err != nil {
			return err
		}
		n = p.Alternatives()
		return nil
	})
	return C.int(n)
}

//export routec_route_params_set_steps
func routec_route_params_set_steps(h C.uint64_t, enabled C.bool, errOut *C.uint64_t) {
	call(errOut, func() error {
		p, err := getRouteParams(h)
		if err != nil {
			return err
		}
		return p.SetSteps(bool(enabled))
	})
}

//export routec_route_params_steps
func routec_route_params_steps(h C.uint64_t, errOut *C.uint64_t) C.bool {
	var v bool
	call(errOut, func() error {
		p, err := getRouteParams(h)
		if err != nil {
			return err
		}
		v = p.Steps()
		return nil
	})
	return C.bool(v)
}

//export routec_route_params_set_annotations
func routec_route_params_set_annotations(h C.uint64_t, mask C.uint, errOut *C.uint64_t) {
	call(errOut, func() error {
		p, err := getRouteParams(h)
		if err != nil {
			return err
		}
		a, err := params.AnnotationsFromBits(uint32(mask))
		if err != nil {
			return err
		}
		return p.SetAnnotations(a)
	})
}

//export routec_route_params_set_annotations_string
func routec_route_params_set_annotations_string(h C.uint64_t, s *C.char, errOut *C.uint64_t) {
	call(errOut, func() error {
		p, err := getRouteParams(h)
		if err != nil {
			return err
		}
		if s == nil {
			return errors.InvalidArgument("nil annotations string")
		}
		return p.SetAnnotationsString(C.GoString(s))
	})
}

//export routec_route_params_set_geometries
func routec_route_params_set_geometries(h C.uint64_t, geometries C.int, errOut *C.uint64_t) {
	call(errOut, func() error {
		p, err := getRouteParams(h)
		if err != nil {
			return err
		}
		g, err := geometriesFromC(geometries)
		if err != nil {
			return err
		}
		return p.SetGeometries(g)
	})
}

//export routec_route_params_geometries
func routec_route_params_geometries(h C.uint64_t, errOut *C.uint64_t) C.int {
	var g params.Geometries
	call(errOut, func() error {
		p, err := getRouteParams(h)
		if err != nil {
			return err
		}
		g = p.Geometries()
		return nil
	})
	return C.int(g)
}

//export routec_route_params_set_overview
func routec_route_params_set_overview(h C.uint64_t, overview C.int, errOut *C.uint64_t) {
	call(errOut, func() error {
		p, err := getRouteParams(h)
		if err != nil {
			return err
		}
		o, err := overviewFromC(overview)
		if err != nil {
			return err
		}
		return p.SetOverview(o)
	})
}

//export routec_route_params_overview
func routec_route_params_overview(h C.uint64_t, errOut *C.uint64_t) C.int {
	var o params.Overview
	call(errOut, func() error {
		p, err := getRouteParams(h)
		if err != nil {
			return err
		}
		o = p.Overview()
		return nil
	})
	return C.int(o)
}

//export routec_route_params_set_continue_straight
func routec_route_params_set_continue_straight(h C.uint64_t, enabled C.bool, errOut *C.uint64_t) {
	call(errOut, func() error {
		p, err := getRouteParams(h)
		if err != nil {
			return err
		}
		return p.SetContinueStraight(bool(enabled))
	})
}

//export routec_route_params_clear_continue_straight
func routec_route_params_clear_continue_straight(h C.uint64_t, errOut *C.uint64_t) {
	call(errOut, func() error {
		p, err := getRouteParams(h)
		if err != nil {
			return err
		}
		return p.ClearContinueStraight()
	})
}

//export routec_route_params_add_waypoint
func routec_route_params_add_waypoint(h C.uint64_t, index C.int, errOut *C.uint64_t) {
	call(errOut, func() error {
		p, err := getRouteParams(h)
		if err != nil {
			return err
		}
		return p.AddWaypoint(int(index))
	})
}

//export routec_table_params_construct
func routec_table_params_construct() C.uint64_t {
	return C.uint64_t(table.Insert(typeTableParams, params.NewTable()))
}

//export routec_table_params_destruct
func routec_table_params_destruct(h C.uint64_t) {
	table.Remove(resource.Handle(h))
}

//export routec_table_params_add_source
func routec_table_params_add_source(h C.uint64_t, index C.int, errOut *C.uint64_t) {
	call(errOut, func() error {
		p, err := getTableParams(h)
		if err != nil {
			return err
		}
		return p.AddSource(int(index))
	})
}

//export routec_table_params_add_destination
func routec_table_params_add_destination(h C.uint64_t, index C.int, errOut *C.uint64_t) {
	call(errOut, func() error {
		p, err := getTableParams(h)
		if err != nil {
			return err
		}
		return p.AddDestination(int(index))
	})
}

//export routec_table_params_set_annotations
func routec_table_params_set_annotations(h C.uint64_t, mask C.uint, errOut *C.uint64_t) {
	call(errOut, func() error {
		p, err := getTableParams(h)
		if err != nil {
			return err
		}
		a, err := params.AnnotationsFromBits(uint32(mask))
		if err != nil {
			return err
		}
		return p.SetAnnotations(a)
	})
}

//export routec_table_params_set_fallback_speed
func routec_table_params_set_fallback_speed(h C.uint64_t, speed C.double, errOut *C.uint64_t) {
	call(errOut, func() error {
		p, err := getTableParams(h)
		if err != nil {
			return err
		}
		return p.SetFallbackSpeed(float64(speed))
	})
}

//export routec_table_params_set_fallback_coordinate
func routec_table_params_set_fallback_coordinate(h C.uint64_t, fc C.int, errOut *C.uint64_t) {
	call(errOut, func() error {
		p, err := getTableParams(h)
		if err != nil {
			return err
		}
		v, err := fallbackCoordinateFromC(fc)
		if err != nil {
			return err
		}
		return p.SetFallbackCoordinate(v)
	})
}

//export routec_table_params_set_scale_factor
func routec_table_params_set_scale_factor(h C.uint64_t, factor C.double, errOut *C.uint64_t) {
	call(errOut, func() error {
		p, err := getTableParams(h)
		if err != nil {
			return err
		}
		return p.SetScaleFactor(float64(factor))
	})
}

//export routec_nearest_params_construct
func routec_nearest_params_construct() C.uint64_t {
	return C.uint64_t(table.Insert(typeNearestParams, params.NewNearest()))
}

//export routec_nearest_params_destruct
func routec_nearest_params_destruct(h C.uint64_t) {
	table.Remove(resource.Handle(h))
}

//export routec_nearest_params_set_number_of_results
func routec_nearest_params_set_number_of_results(h C.uint64_t, n C.int, errOut *C.uint64_t) {
	call(errOut, func() error {
		p, err := getNearestParams(h)
		if err != nil {
			return err
		}
		return p.SetNumberOfResults(int(n))
	})
}

//export routec_match_params_construct
func routec_match_params_construct() C.uint64_t {
	return C.uint64_t(table.Insert(typeMatchParams, params.NewMatch()))
}

//export routec_match_params_destruct
func routec_match_params_destruct(h C.uint64_t) {
	table.Remove(resource.Handle(h))
}

//export routec_match_params_add_timestamp
func routec_match_params_add_timestamp(h C.uint64_t, ts C.longlong, errOut *C.uint64_t) {
	call(errOut, func() error {
		p, err := getMatchParams(h)
		if err != nil {
			return err
		}
		return p.AddTimestamp(int64(ts))
	})
}

//export routec_match_params_set_gaps
func routec_match_params_set_gaps(h C.uint64_t, gaps C.int, errOut *C.uint64_t) {
	call(errOut, func() error {
		p, err := getMatchParams(h)
		if err != nil {
			return err
		}
		g, err := gapsFromC(gaps)
		if err != nil {
			return err
		}
		return p.SetGaps(g)
	})
}

//export routec_match_params_gaps
func routec_match_params_gaps(h C.uint64_t, errOut *C.uint64_t) C.int {
	var g params.Gaps
	call(errOut, func() error {
		p, err := getMatchParams(h)
		if err != nil {
			return err
		}
		g = p.Gaps()
		return nil
	})
	return C.int(g)
}

//export routec_match_params_set_tidy
func routec_match_params_set_tidy(h C.uint64_t, enabled C.bool, errOut *C.uint64_t) {
	call(errOut, func() error {
		p, err := getMatchParams(h)
		if err != nil {
			return err
		}
		return p.SetTidy(bool(enabled))
	})
}

//export routec_match_params_add_waypoint
func routec_match_params_add_waypoint(h C.uint64_t, index C.int, errOut *C.uint64_t) {
	call(errOut, func() error {
		p, err := getMatchParams(h)
		if err != nil {
			return err
		}
		return p.AddWaypoint(int(index))
	})
}

//export routec_trip_params_construct
func routec_trip_params_construct() C.uint64_t {
	return C.uint64_t(table.Insert(typeTripParams, params.NewTrip()))
}

//export routec_trip_params_destruct
func routec_trip_params_destruct(h C.uint64_t) {
	table.Remove(resource.Handle(h))
}

//export routec_trip_params_set_roundtrip
func routec_trip_params_set_roundtrip(h C.uint64_t, enabled C.bool, errOut *C.uint64_t) {
	call(errOut, func() error {
		p, err := getTripParams(h)
		if err != nil {
			return err
		}
		return p.SetRoundtrip(bool(enabled))
	})
}

//export routec_trip_params_set_source
func routec_trip_params_set_source(h C.uint64_t, source C.int, errOut *C.uint64_t) {
	call(errOut, func() error {
		p, err := getTripParams(h)
		if err != nil {
			return err
		}
		s, err := tripSourceFromC(source)
		if err != nil {
			return err
		}
		return p.SetSource(s)
	})
}

//export routec_trip_params_source
func routec_trip_params_source(h C.uint64_t, errOut *C.uint64_t) C.int {
	var s params.TripSource
	call(errOut, func() error {
		p, err := getTripParams(h)
		if err != nil {
			return err
		}
		s = p.Source()
		return nil
	})
	return C.int(s)
}

//export routec_trip_params_set_destination
func routec_trip_params_set_destination(h C.uint64_t, destination C.int, errOut *C.uint64_t) {
	call(errOut, func() error {
		p, err := getTripParams(h)
		if err != nil {
			return err
		}
		d, err := tripDestinationFromC(destination)
		if err != nil {
			return err
		}
		return p.SetDestination(d)
	})
}

//export routec_trip_params_destination
func routec_trip_params_destination(h C.uint64_t, errOut *C.uint64_t) C.int {
	var d params.TripDestination
	call(errOut, func() error {
		p, err := getTripParams(h)
		if err != nil {
			return err
		}
		d = p.Destination()
		return nil
	})
	return C.int(d)
}

//export routec_tile_params_construct
func routec_tile_params_construct(x, y, zoom C.uint, errOut *C.uint64_t) C.uint64_t {
	return callHandle(errOut, typeTileParams, func() (any, error) {
		return params.NewTile(uint32(x), uint32(y), uint32(zoom))
	})
}

//export routec_tile_params_destruct
func routec_tile_params_destruct(h C.uint64_t) {
	table.Remove(resource.Handle(h))
}
