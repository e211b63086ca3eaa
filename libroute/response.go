package main

/*
#include <stdint.h>
*/
import "C"

import (
	"github.com/routebind/route-runtime/resource"
)

//export routec_response_destruct
func routec_response_destruct(h C.uint64_t) {
	table.Remove(resource.Handle(h))
}

//export routec_response_json
func routec_response_json(h C.uint64_t, errOut *C.uint64_t) C.uint64_t {
	return callHandle(errOut, typeBlob, func() (any, error) {
		resp, err := getResponse(h)
		if err != nil {
			return nil, err
		}
		rendered, err := resp.JSON()
		if err != nil {
			return nil, err
		}
		return newBlob([]byte(rendered)), nil
	})
}

//export routec_response_flatbuffer
func routec_response_flatbuffer(h C.uint64_t, errOut *C.uint64_t) C.uint64_t {
	return callHandle(errOut, typeBlob, func() (any, error) {
		resp, err := getResponse(h)
		if err != nil {
			return nil, err
		}
		data, err := resp.Flatbuffer()
		if err != nil {
			return nil, err
		}
		return newBlob(data), nil
	})
}

//export routec_response_bytes
func routec_response_bytes(h C.uint64_t, errOut *C.uint64_t) C.uint64_t {
	return callHandle(errOut, typeBlob, func() (any, error) {
		resp, err := getResponse(h)
		if err != nil {
			return nil, err
		}
		data, err := resp.Bytes()
		if err != nil {
			return nil, err
		}
		return newBlob(data), nil
	})
}

//export routec_response_code
func routec_response_code(h C.uint64_t, errOut *C.uint64_t) *C.char {
	var code string
	call(errOut, func() error {
		resp, err := getResponse(h)
		if err != nil {
			return err
		}
		code, err = resp.Code()
		return err
	})
	if code == "" {
		return nil
	}
	return C.CString(code)
}

//export routec_response_route_count
func routec_response_route_count(h C.uint64_t, errOut *C.uint64_t) C.int {
	var count int
	call(errOut, func() error {
		resp, err := getResponse(h)
		if err != nil {
			return err
		}
		count, err = resp.RouteCount()
		return err
	})
	return C.int(count)
}

//export routec_response_route_distance
func routec_response_route_distance(h C.uint64_t, index C.int, errOut *C.uint64_t) C.double {
	var distance float64
	call(errOut, func() error {
		resp, err := getResponse(h)
		if err != nil {
			return err
		}
		distance, err = resp.RouteDistance(int(index))
		return err
	})
	return C.double(distance)
}

//export routec_response_route_duration
func routec_response_route_duration(h C.uint64_t, index C.int, errOut *C.uint64_t) C.double {
	var duration float64
	call(errOut, func() error {
		resp, err := getResponse(h)
		if err != nil {
			return err
		}
		duration, err = resp.RouteDuration(int(index))
		return err
	})
	return C.double(duration)
}

//export routec_response_waypoint_count
func routec_response_waypoint_count(h C.uint64_t, errOut *C.uint64_t) C.int {
	var count int
	call(errOut, func() error {
		resp, err := getResponse(h)
		if err != nil {
			return err
		}
		count, err = resp.WaypointCount()
		return err
	})
	return C.int(count)
}

//export routec_response_waypoint_name
func routec_response_waypoint_name(h C.uint64_t, index C.int, errOut *C.uint64_t) *C.char {
	var name string
	ok := false
	call(errOut, func() error {
		resp, err := getResponse(h)
		if err != nil {
			return err
		}
		name, err = resp.WaypointName(int(index))
		ok = err == nil
		return err
	})
	if !ok {
		return nil
	}
	return C.CString(name)
}

//export routec_response_waypoint_longitude
func routec_response_waypoint_longitude(h C.uint64_t, index C.int, errOut *C.uint64_t) C.double {
	var lon float64
	call(errOut, func() error {
		resp, err := getResponse(h)
		if err != nil {
			return err
		}
		lon, _, err = resp.WaypointLocation(int(index))
		return err
	})
	return C.double(lon)
}

//export routec_response_waypoint_latitude
func routec_response_waypoint_latitude(h C.uint64_t, index C.int, errOut *C.uint64_t) C.double {
	var lat float64
	call(errOut, func() error {
		resp, err := getResponse(h)
		if err != nil {
			return err
		}
		_, lat, err = resp.WaypointLocation(int(index))
		return err
	})
	return C.double(lat)
}

//export routec_response_waypoint_distance
func routec_response_waypoint_distance(h C.uint64_t, index C.int, errOut *C.uint64_t) C.double {
	var distance float64
	call(errOut, func() error {
		resp, err := getResponse(h)
		if err != nil {
			return err
		}
		distance, err = resp.WaypointDistance(int(index))
		return err
	})
	return C.double(distance)
}
