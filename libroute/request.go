package main

/*
#include <stdint.h>
*/
import "C"

//export routec_route
func routec_route(engineHandle, paramsHandle C.uint64_t, errOut *C.uint64_t) C.uint64_t {
	return callHandle(errOut, typeResponse, func() (any, error) {
		eng, err := getEngine(engineHandle)
		if err != nil {
			return nil, err
		}
		p, err := getRouteParams(paramsHandle)
		if err != nil {
			return nil, err
		}
		return eng.Route(p)
	})
}

//export routec_table
func routec_table(engineHandle, paramsHandle C.uint64_t, errOut *C.uint64_t) C.uint64_t {
	return callHandle(errOut, typeResponse, func() (any, error) {
		eng, err := getEngine(engineHandle)
		if err != nil {
			return nil, err
		}
		p, err := getTableParams(paramsHandle)
		if err != nil {
			return nil, err
		}
		return eng.Table(p)
	})
}

//export routec_nearest
func routec_nearest(engineHandle, paramsHandle C.uint64_t, errOut *C.uint64_t) C.uint64_t {
	return callHandle(errOut, typeResponse, func() (any, error) {
		eng, err := getEngine(engineHandle)
		if err != nil {
			return nil, err
		}
		p, err := getNearestParams(paramsHandle)
		if err != nil {
			return nil, err
		}
		return eng.Nearest(p)
	})
}

//export routec_match
func routec_match(engineHandle, paramsHandle C.uint64_t, errOut *C.uint64_t) C.uint64_t {
	return callHandle(errOut, typeResponse, func() (any, error) {
		eng, err := getEngine(engineHandle)
		if err != nil {
			return nil, err
		}
		p, err := getMatchParams(paramsHandle)
		if err != nil {
			return nil, err
		}
		return eng.Match(p)
	})
}

//export routec_trip
func routec_trip(engineHandle, paramsHandle C.uint64_t, errOut *C.uint64_t) C.uint64_t {
	return callHandle(errOut, typeResponse, func() (any, error) {
		eng, err := getEngine(engineHandle)
		if err != nil {
			return nil, err
		}
		p, err := getTripParams(paramsHandle)
		if err != nil {
			return nil, err
		}
		return eng.Trip(p)
	})
}

//export routec_tile
func routec_tile(engineHandle, paramsHandle C.uint64_t, errOut *C.uint64_t) C.uint64_t {
	return callHandle(errOut, typeResponse, func() (any, error) {
		eng, err := getEngine(engineHandle)
		if err != nil {
			return nil, err
		}
		p, err := getTileParams(paramsHandle)
		if err != nil {
			return nil, err
		}
		return eng.Tile(p)
	})
}
