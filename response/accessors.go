package response

import (
	"github.com/routebind/route-runtime/errors"
	"github.com/routebind/route-runtime/jsonval"
)

// Direct field accessors into JSON-shaped responses. They mirror the common
// response layout: a "code" string, a "routes" array of objects carrying
// "distance"/"duration" numbers, and a "waypoints" array of objects carrying
// "name", "hint" and a [lon, lat] "location". Shape mismatches report
// InvalidFormat; out-of-range indices report InvalidArgument.

// Code returns the response's top-level code string, "Ok" on success.
func (r *Response) Code() (string, error) {
	obj, err := r.jsonObject()
	if err != nil {
		return "", err
	}
	code, ok := obj.GetString("code")
	if !ok {
		return "", errors.InvalidFormat("response has no code field")
	}
	return code, nil
}

func (r *Response) indexedObject(field string, i int) (*jsonval.Object, error) {
	obj, err := r.jsonObject()
	if err != nil {
		return nil, err
	}
	arr, ok := obj.GetArray(field)
	if !ok {
		return nil, errors.InvalidFormat("response has no %s array", field)
	}
	if i < 0 || i >= len(arr.Values) {
		return nil, errors.InvalidArgument("%s index %d out of range (count %d)", field, i, len(arr.Values))
	}
	entry, ok := arr.Values[i].(*jsonval.Object)
	if !ok {
		return nil, errors.InvalidFormat("%s[%d] is not an object", field, i)
	}
	return entry, nil
}

func (r *Response) arrayLen(field string) (int, error) {
	obj, err := r.jsonObject()
	if err != nil {
		return 0, err
	}
	arr, ok := obj.GetArray(field)
	if !ok {
		return 0, errors.InvalidFormat("response has no %s array", field)
	}
	return len(arr.Values), nil
}

// RouteCount returns the number of returned routes.
func (r *Response) RouteCount() (int, error) {
	return r.arrayLen("routes")
}

// RouteDistance returns the total distance in meters of route i.
func (r *Response) RouteDistance(i int) (float64, error) {
	route, err := r.indexedObject("routes", i)
	if err != nil {
		return 0, err
	}
	d, ok := route.GetNumber("distance")
	if !ok {
		return 0, errors.InvalidFormat("routes[%d] has no distance", i)
	}
	return d, nil
}

// RouteDuration returns the total travel time in seconds of route i.
func (r *Response) RouteDuration(i int) (float64, error) {
	route, err := r.indexedObject("routes", i)
	if err != nil {
		return 0, err
	}
	d, ok := route.GetNumber("duration")
	if !ok {
		return 0, errors.InvalidFormat("routes[%d] has no duration", i)
	}
	return d, nil
}

// WaypointCount returns the number of returned waypoints.
func (r *Response) WaypointCount() (int, error) {
	return r.arrayLen("waypoints")
}

// WaypointName returns the street name waypoint i snapped to.
func (r *Response) WaypointName(i int) (string, error) {
	wp, err := r.indexedObject("waypoints", i)
	if err != nil {
		return "", err
	}
	name, ok := wp.GetString("name")
	if !ok {
		return "", errors.InvalidFormat("waypoints[%d] has no name", i)
	}
	return name, nil
}

// WaypointHint returns the opaque snapping hint token of waypoint i, empty
// when hints were not generated.
func (r *Response) WaypointHint(i int) (string, error) {
	wp, err := r.indexedObject("waypoints", i)
	if err != nil {
		return "", err
	}
	hint, _ := wp.GetString("hint")
	return hint, nil
}

// WaypointLocation returns the snapped lon/lat of waypoint i.
func (r *Response) WaypointLocation(i int) (lon, lat float64, err error) {
	wp, err := r.indexedObject("waypoints", i)
	if err != nil {
		return 0, 0, err
	}
	loc, ok := wp.GetArray("location")
	if !ok || len(loc.Values) != 2 {
		return 0, 0, errors.InvalidFormat("waypoints[%d] has no [lon, lat] location", i)
	}
	lonNum, okLon := loc.Values[0].(jsonval.Number)
	latNum, okLat := loc.Values[1].(jsonval.Number)
	if !okLon || !okLat {
		return 0, 0, errors.InvalidFormat("waypoints[%d] location is not numeric", i)
	}
	return lonNum.Value, latNum.Value, nil
}

// WaypointDistance returns the snapping distance in meters of waypoint i,
// present on nearest responses.
func (r *Response) WaypointDistance(i int) (float64, error) {
	wp, err := r.indexedObject("waypoints", i)
	if err != nil {
		return 0, err
	}
	d, ok := wp.GetNumber("distance")
	if !ok {
		return 0, errors.InvalidFormat("waypoints[%d] has no distance", i)
	}
	return d, nil
}
