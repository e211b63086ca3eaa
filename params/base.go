package params

import (
	"encoding/base64"
	"math"

	"github.com/paulmach/orb"

	"github.com/routebind/route-runtime/errors"
)

// CoordinatePrecision is the engine's fixed-point coordinate scale: one unit
// is 1e-6 degrees.
const CoordinatePrecision = 1e6

// ToFixed converts a point to the engine's fixed-point encoding.
func ToFixed(p orb.Point) (lon, lat int32) {
	return int32(math.Round(p[0] * CoordinatePrecision)),
		int32(math.Round(p[1] * CoordinatePrecision))
}

// FromFixed converts the engine's fixed-point encoding back to degrees.
func FromFixed(lon, lat int32) orb.Point {
	return orb.Point{float64(lon) / CoordinatePrecision, float64(lat) / CoordinatePrecision}
}

// radiusUnset is the per-coordinate sentinel for "no radius set".
const radiusUnset = -1.0

// Bearing restricts snapping to segments whose direction lies within Range
// degrees of Value.
type Bearing struct {
	Value int16 // 0..360, clockwise from true north
	Range int16 // 0..180
}

// bearingUnset is the per-coordinate sentinel for "no bearing set".
var bearingUnset = Bearing{Value: -1, Range: -1}

// Base carries the coordinate list and shared options common to the
// coordinate-taking verbs.
type Base struct {
	coords     []orb.Point
	radiuses   []float64
	bearings   []Bearing
	approaches []Approach
	hints      []string
	exclude    []string

	snapping      Snapping
	format        Format
	generateHints bool
	skipWaypoints bool
}

func newBase() Base {
	return Base{
		snapping:      SnappingDefault,
		format:        FormatJSON,
		generateHints: true,
	}
}

// AddCoordinate appends a lon/lat pair in degrees.
func (b *Base) AddCoordinate(lon, lat float64) error {
	if b == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if math.IsNaN(lon) || math.IsNaN(lat) || lon < -180 || lon > 180 || lat < -90 || lat > 90 {
		return errors.InvalidArgument("coordinate (%f, %f) out of range", lon, lat)
	}
	b.coords = append(b.coords, orb.Point{lon, lat})
	return nil
}

// CoordinateCount returns the number of coordinates added so far.
func (b *Base) CoordinateCount() int {
	if b == nil {
		return 0
	}
	return len(b.coords)
}

// Coordinate returns the i-th coordinate.
func (b *Base) Coordinate(i int) (orb.Point, error) {
	if b == nil {
		return orb.Point{}, errors.InvalidArgument("nil parameters")
	}
	if i < 0 || i >= len(b.coords) {
		return orb.Point{}, errors.InvalidCoordinateIndex(i, len(b.coords))
	}
	return b.coords[i], nil
}

// Coordinates returns the coordinate list. The slice is shared; callers must
// not mutate it.
func (b *Base) Coordinates() []orb.Point {
	if b == nil {
		return nil
	}
	return b.coords
}

func (b *Base) checkIndex(i int) error {
	if i < 0 || i >= len(b.coords) {
		return errors.InvalidCoordinateIndex(i, len(b.coords))
	}
	return nil
}

// growRadiuses lazily sizes the radius slice to the coordinate count.
func (b *Base) growRadiuses() {
	for len(b.radiuses) < len(b.coords) {
		b.radiuses = append(b.radiuses, radiusUnset)
	}
}

func (b *Base) growBearings() {
	for len(b.bearings) < len(b.coords) {
		b.bearings = append(b.bearings, bearingUnset)
	}
}

func (b *Base) growApproaches() {
	for len(b.approaches) < len(b.coords) {
		b.approaches = append(b.approaches, ApproachUnset)
	}
}

func (b *Base) growHints() {
	for len(b.hints) < len(b.coords) {
		b.hints = append(b.hints, "")
	}
}

// SetRadius sets the snapping radius in meters for coordinate i. A negative
// radius clears the attribute back to unset.
func (b *Base) SetRadius(i int, radius float64) error {
	if b == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if err := b.checkIndex(i); err != nil {
		return err
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) {
		return errors.InvalidArgument("radius must be finite")
	}
	b.growRadiuses()
	if radius < 0 {
		b.radiuses[i] = radiusUnset
	} else {
		b.radiuses[i] = radius
	}
	return nil
}

// Radius returns the radius for coordinate i and whether one is set.
func (b *Base) Radius(i int) (float64, bool, error) {
	if b == nil {
		return 0, false, errors.InvalidArgument("nil parameters")
	}
	if err := b.checkIndex(i); err != nil {
		return 0, false, err
	}
	if i >= len(b.radiuses) || b.radiuses[i] < 0 {
		return 0, false, nil
	}
	return b.radiuses[i], true, nil
}

// SetBearing sets the bearing restriction for coordinate i.
func (b *Base) SetBearing(i int, value, rng int16) error {
	if b == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if err := b.checkIndex(i); err != nil {
		return err
	}
	if value < 0 || value > 360 || rng < 0 || rng > 180 {
		return errors.InvalidArgument("bearing (%d, %d) out of range", value, rng)
	}
	b.growBearings()
	b.bearings[i] = Bearing{Value: value, Range: rng}
	return nil
}

// ClearBearing unsets the bearing restriction for coordinate i.
func (b *Base) ClearBearing(i int) error {
	if b == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if err := b.checkIndex(i); err != nil {
		return err
	}
	if i < len(b.bearings) {
		b.bearings[i] = bearingUnset
	}
	return nil
}

// Bearing returns the bearing restriction for coordinate i and whether one
// is set.
func (b *Base) Bearing(i int) (Bearing, bool, error) {
	if b == nil {
		return Bearing{}, false, errors.InvalidArgument("nil parameters")
	}
	if err := b.checkIndex(i); err != nil {
		return Bearing{}, false, err
	}
	if i >= len(b.bearings) || b.bearings[i].Range < 0 {
		return Bearing{}, false, nil
	}
	return b.bearings[i], true, nil
}

// SetApproach restricts the approach side for coordinate i.
func (b *Base) SetApproach(i int, approach Approach) error {
	if b == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if err := b.checkIndex(i); err != nil {
		return err
	}
	if approach != ApproachUnset && !approach.valid() {
		return errors.InvalidArgument("unrecognized approach %d", approach)
	}
	b.growApproaches()
	b.approaches[i] = approach
	return nil
}

// Approach returns the approach restriction for coordinate i and whether one
// is set.
func (b *Base) Approach(i int) (Approach, bool, error) {
	if b == nil {
		return ApproachUnset, false, errors.InvalidArgument("nil parameters")
	}
	if err := b.checkIndex(i); err != nil {
		return ApproachUnset, false, err
	}
	if i >= len(b.approaches) || b.approaches[i] == ApproachUnset {
		return ApproachUnset, false, nil
	}
	return b.approaches[i], true, nil
}

// SetHint attaches a pre-computed snapping hint token to coordinate i. The
// token is the opaque base64 blob from a prior response; an empty token
// clears the hint.
func (b *Base) SetHint(i int, token string) error {
	if b == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if err := b.checkIndex(i); err != nil {
		return err
	}
	if token != "" {
		if _, err := base64.StdEncoding.DecodeString(token); err != nil {
			return errors.InvalidArgument("hint token is not valid base64")
		}
	}
	b.growHints()
	b.hints[i] = token
	return nil
}

// Hint returns the hint token for coordinate i, empty when unset.
func (b *Base) Hint(i int) (string, error) {
	if b == nil {
		return "", errors.InvalidArgument("nil parameters")
	}
	if err := b.checkIndex(i); err != nil {
		return "", err
	}
	if i >= len(b.hints) {
		return "", nil
	}
	return b.hints[i], nil
}

// AddExclude adds a class name routes must avoid.
func (b *Base) AddExclude(class string) error {
	if b == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if class == "" {
		return errors.InvalidArgument("exclude class must not be empty")
	}
	b.exclude = append(b.exclude, class)
	return nil
}

// Exclude returns the excluded class names.
func (b *Base) Exclude() []string {
	if b == nil {
		return nil
	}
	return b.exclude
}

// SetSnapping sets the snapping mode.
func (b *Base) SetSnapping(s Snapping) error {
	if b == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if !s.valid() {
		return errors.InvalidArgument("unrecognized snapping mode %d", s)
	}
	b.snapping = s
	return nil
}

// Snapping returns the snapping mode.
func (b *Base) Snapping() Snapping {
	if b == nil {
		return SnappingDefault
	}
	return b.snapping
}

// SetFormat sets the response format.
func (b *Base) SetFormat(f Format) error {
	if b == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if !f.valid() {
		return errors.InvalidFormat("unrecognized output format %d", f)
	}
	b.format = f
	return nil
}

// Format returns the response format.
func (b *Base) Format() Format {
	if b == nil {
		return FormatJSON
	}
	return b.format
}

// SetGenerateHints controls whether responses include snapping hint tokens.
func (b *Base) SetGenerateHints(v bool) error {
	if b == nil {
		return errors.InvalidArgument("nil parameters")
	}
	b.generateHints = v
	return nil
}

// GenerateHints reports whether responses include snapping hint tokens.
func (b *Base) GenerateHints() bool {
	if b == nil {
		return false
	}
	return b.generateHints
}

// SetSkipWaypoints controls whether responses omit the waypoints array.
func (b *Base) SetSkipWaypoints(v bool) error {
	if b == nil {
		return errors.InvalidArgument("nil parameters")
	}
	b.skipWaypoints = v
	return nil
}

// SkipWaypoints reports whether responses omit the waypoints array.
func (b *Base) SkipWaypoints() bool {
	if b == nil {
		return false
	}
	return b.skipWaypoints
}

// needCoordinates is the shared minimum-count check run by the per-verb
// Valid methods.
func (b *Base) needCoordinates(min int) error {
	if b == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if len(b.coords) < min {
		return errors.InvalidArgument("need at least %d coordinates, have %d", min, len(b.coords))
	}
	return nil
}

// checkWaypointSubset validates a waypoint index subset against the
// coordinate count: indices strictly increasing, first must be 0 and last
// must be the final coordinate.
func (b *Base) checkWaypointSubset(waypoints []int) error {
	if len(waypoints) == 0 {
		return nil
	}
	if len(waypoints) < 2 {
		return errors.InvalidArgument("waypoint subset needs at least 2 entries")
	}
	prev := -1
	for _, w := range waypoints {
		if w < 0 || w >= len(b.coords) {
			return errors.InvalidCoordinateIndex(w, len(b.coords))
		}
		if w <= prev {
			return errors.InvalidArgument("waypoint indices must be strictly increasing")
		}
		prev = w
	}
	if waypoints[0] != 0 || waypoints[len(waypoints)-1] != len(b.coords)-1 {
		return errors.InvalidArgument("waypoint subset must start at the first and end at the last coordinate")
	}
	return nil
}
