package params

import (
	"strings"

	"github.com/routebind/route-runtime/errors"
)

// Format selects the wire shape of a response.
type Format uint8

const (
	FormatJSON Format = iota
	FormatFlatBuffers
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatFlatBuffers:
		return "flatbuffers"
	default:
		return "unknown"
	}
}

func (f Format) valid() bool {
	return f == FormatJSON || f == FormatFlatBuffers
}

// ParseFormat translates a format token. Unknown tokens are InvalidFormat.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "flatbuffers":
		return FormatFlatBuffers, nil
	default:
		return 0, errors.InvalidFormat("unrecognized output format %q", s)
	}
}

// Snapping controls which road segments a coordinate may snap to.
type Snapping uint8

const (
	// SnappingDefault snaps only to segments reachable under the profile's
	// default restrictions.
	SnappingDefault Snapping = iota
	// SnappingAny snaps to any usable segment.
	SnappingAny
)

func (s Snapping) String() string {
	switch s {
	case SnappingDefault:
		return "default"
	case SnappingAny:
		return "any"
	default:
		return "unknown"
	}
}

func (s Snapping) valid() bool {
	return s == SnappingDefault || s == SnappingAny
}

// Approach restricts which side of the road a coordinate snaps to.
type Approach int8

const (
	// ApproachUnset is the per-coordinate sentinel for "no restriction set".
	ApproachUnset Approach = -1

	ApproachUnrestricted Approach = iota - 1
	ApproachCurb
	ApproachOpposite
)

func (a Approach) String() string {
	switch a {
	case ApproachUnset:
		return "unset"
	case ApproachUnrestricted:
		return "unrestricted"
	case ApproachCurb:
		return "curb"
	case ApproachOpposite:
		return "opposite"
	default:
		return "unknown"
	}
}

func (a Approach) valid() bool {
	switch a {
	case ApproachUnrestricted, ApproachCurb, ApproachOpposite:
		return true
	default:
		return false
	}
}

// Geometries selects the encoding of returned route geometry.
type Geometries uint8

const (
	GeometriesPolyline Geometries = iota
	GeometriesPolyline6
	GeometriesGeoJSON
)

func (g Geometries) String() string {
	switch g {
	case GeometriesPolyline:
		return "polyline"
	case GeometriesPolyline6:
		return "polyline6"
	case GeometriesGeoJSON:
		return "geojson"
	default:
		return "unknown"
	}
}

func (g Geometries) valid() bool {
	switch g {
	case GeometriesPolyline, GeometriesPolyline6, GeometriesGeoJSON:
		return true
	default:
		return false
	}
}

// Overview selects how much route geometry a response carries.
type Overview uint8

const (
	OverviewSimplified Overview = iota
	OverviewFull
	OverviewFalse
)

func (o Overview) String() string {
	switch o {
	case OverviewSimplified:
		return "simplified"
	case OverviewFull:
		return "full"
	case OverviewFalse:
		return "false"
	default:
		return "unknown"
	}
}

func (o Overview) valid() bool {
	switch o {
	case OverviewSimplified, OverviewFull, OverviewFalse:
		return true
	default:
		return false
	}
}

// Gaps controls how a match request treats large timestamp gaps.
type Gaps uint8

const (
	GapsSplit Gaps = iota
	GapsIgnore
)

func (g Gaps) String() string {
	switch g {
	case GapsSplit:
		return "split"
	case GapsIgnore:
		return "ignore"
	default:
		return "unknown"
	}
}

func (g Gaps) valid() bool {
	return g == GapsSplit || g == GapsIgnore
}

// FallbackCoordinate selects which coordinate a table fallback estimate is
// computed from.
type FallbackCoordinate uint8

const (
	FallbackCoordinateInput FallbackCoordinate = iota
	FallbackCoordinateSnapped
)

func (f FallbackCoordinate) String() string {
	switch f {
	case FallbackCoordinateInput:
		return "input"
	case FallbackCoordinateSnapped:
		return "snapped"
	default:
		return "unknown"
	}
}

func (f FallbackCoordinate) valid() bool {
	return f == FallbackCoordinateInput || f == FallbackCoordinateSnapped
}

// TripSource fixes the starting point of a trip.
type TripSource uint8

const (
	TripSourceAny TripSource = iota
	TripSourceFirst
)

func (s TripSource) String() string {
	switch s {
	case TripSourceAny:
		return "any"
	case TripSourceFirst:
		return "first"
	default:
		return "unknown"
	}
}

func (s TripSource) valid() bool {
	return s == TripSourceAny || s == TripSourceFirst
}

// TripDestination fixes the end point of a trip.
type TripDestination uint8

const (
	TripDestinationAny TripDestination = iota
	TripDestinationLast
)

func (d TripDestination) String() string {
	switch d {
	case TripDestinationAny:
		return "any"
	case TripDestinationLast:
		return "last"
	default:
		return "unknown"
	}
}

func (d TripDestination) valid() bool {
	return d == TripDestinationAny || d == TripDestinationLast
}

// Annotations is a bitset selecting the per-edge metrics a response should
// include.
type Annotations uint8

const (
	AnnotationsDuration Annotations = 1 << iota
	AnnotationsNodes
	AnnotationsDistance
	AnnotationsWeight
	AnnotationsDatasources
	AnnotationsSpeed
)

const (
	AnnotationsNone Annotations = 0
	AnnotationsAll              = AnnotationsDuration | AnnotationsNodes | AnnotationsDistance |
		AnnotationsWeight | AnnotationsDatasources | AnnotationsSpeed
)

// Has reports whether every bit of mask is set.
func (a Annotations) Has(mask Annotations) bool {
	return a&mask == mask
}

func (a Annotations) valid() bool {
	return a&^AnnotationsAll == 0
}

// String returns the comma-delimited token form, "none" for the empty set.
func (a Annotations) String() string {
	if a == AnnotationsNone {
		return "none"
	}
	var parts []string
	for _, tok := range []struct {
		bit  Annotations
		name string
	}{
		{AnnotationsDuration, "duration"},
		{AnnotationsNodes, "nodes"},
		{AnnotationsDistance, "distance"},
		{AnnotationsWeight, "weight"},
		{AnnotationsDatasources, "datasources"},
		{AnnotationsSpeed, "speed"},
	} {
		if a.Has(tok.bit) {
			parts = append(parts, tok.name)
		}
	}
	return strings.Join(parts, ",")
}

// AnnotationsFromBits translates a raw annotation bit pattern from a foreign
// caller. The incoming value is wider than the mask type, so bits outside
// the defined set are InvalidArgument rather than truncated away.
func AnnotationsFromBits(bits uint32) (Annotations, error) {
	if bits&^uint32(AnnotationsAll) != 0 {
		return 0, errors.InvalidArgument("unrecognized annotation bits %#x", bits)
	}
	return Annotations(bits), nil
}

// ParseAnnotations translates a comma- or pipe-delimited annotation token
// string into a mask. The boolean tokens true/false select everything or
// nothing, matching the engine's string-valued annotations option. Unknown
// tokens are InvalidArgument.
func ParseAnnotations(s string) (Annotations, error) {
	var mask Annotations
	for _, tok := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' }) {
		switch strings.TrimSpace(tok) {
		case "duration":
			mask |= AnnotationsDuration
		case "nodes":
			mask |= AnnotationsNodes
		case "distance":
			mask |= AnnotationsDistance
		case "weight":
			mask |= AnnotationsWeight
		case "datasources":
			mask |= AnnotationsDatasources
		case "speed":
			mask |= AnnotationsSpeed
		case "all", "true":
			mask |= AnnotationsAll
		case "none", "false", "":
		default:
			return 0, errors.InvalidArgument("unrecognized annotation token %q", tok)
		}
	}
	return mask, nil
}
