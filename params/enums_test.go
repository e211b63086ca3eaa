package params

import (
	"testing"

	"github.com/routebind/route-runtime/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "json", want: FormatJSON},
		{in: "flatbuffers", want: FormatFlatBuffers},
		{in: "xml", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				wantCode(t, err, errors.CodeInvalidFormat)
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, %v", tt.in, got, err)
			}
		})
	}
}

func TestAnnotationsFromBits(t *testing.T) {
	tests := []struct {
		name    string
		bits    uint32
		want    Annotations
		wantErr bool
	}{
		{name: "none", bits: 0, want: AnnotationsNone},
		{name: "duration", bits: uint32(AnnotationsDuration), want: AnnotationsDuration},
		{name: "all", bits: uint32(AnnotationsAll), want: AnnotationsAll},
		{name: "undefined low bit", bits: 0x40, wantErr: true},
		{name: "bit above mask width", bits: 0x100, wantErr: true},
		{name: "defined bit plus high bit", bits: 0x100 | uint32(AnnotationsDuration), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AnnotationsFromBits(tt.bits)
			if tt.wantErr {
				wantCode(t, err, errors.CodeInvalidArgument)
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("AnnotationsFromBits(%#x) = %v, %v, want %v", tt.bits, got, err, tt.want)
			}
		})
	}
}

func TestParseAnnotations(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Annotations
		wantErr bool
	}{
		{name: "single", in: "duration", want: AnnotationsDuration},
		{name: "comma list", in: "duration,distance", want: AnnotationsDuration | AnnotationsDistance},
		{name: "pipe list", in: "speed|nodes", want: AnnotationsSpeed | AnnotationsNodes},
		{name: "spaces tolerated", in: "duration, weight", want: AnnotationsDuration | AnnotationsWeight},
		{name: "true selects all", in: "true", want: AnnotationsAll},
		{name: "false selects none", in: "false", want: AnnotationsNone},
		{name: "all", in: "all", want: AnnotationsAll},
		{name: "none", in: "none", want: AnnotationsNone},
		{name: "empty", in: "", want: AnnotationsNone},
		{name: "datasources", in: "datasources", want: AnnotationsDatasources},
		{name: "unknown token", in: "duration,velocity", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAnnotations(tt.in)
			if tt.wantErr {
				wantCode(t, err, errors.CodeInvalidArgument)
				return
			}
			if err != nil {
				t.Fatalf("ParseAnnotations(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAnnotations(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAnnotations_String(t *testing.T) {
	tests := []struct {
		in   Annotations
		want string
	}{
		{in: AnnotationsNone, want: "none"},
		{in: AnnotationsDuration, want: "duration"},
		{in: AnnotationsDuration | AnnotationsDistance, want: "duration,distance"},
		{in: AnnotationsAll, want: "duration,nodes,distance,weight,datasources,speed"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("%#x.String() = %q, want %q", uint8(tt.in), got, tt.want)
		}
	}
}

func TestAnnotations_StringParseRoundTrip(t *testing.T) {
	for _, mask := range []Annotations{
		AnnotationsNone,
		AnnotationsDuration,
		AnnotationsSpeed | AnnotationsWeight,
		AnnotationsAll,
	} {
		back, err := ParseAnnotations(mask.String())
		if err != nil {
			t.Fatalf("ParseAnnotations(%q): %v", mask.String(), err)
		}
		if back != mask {
			t.Errorf("round trip %q: got %v, want %v", mask.String(), back, mask)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "format", got: FormatFlatBuffers.String(), want: "flatbuffers"},
		{name: "snapping", got: SnappingAny.String(), want: "any"},
		{name: "approach", got: ApproachCurb.String(), want: "curb"},
		{name: "approach unset", got: ApproachUnset.String(), want: "unset"},
		{name: "geometries", got: GeometriesGeoJSON.String(), want: "geojson"},
		{name: "overview", got: OverviewFalse.String(), want: "false"},
		{name: "gaps", got: GapsIgnore.String(), want: "ignore"},
		{name: "fallback", got: FallbackCoordinateSnapped.String(), want: "snapped"},
		{name: "trip source", got: TripSourceFirst.String(), want: "first"},
		{name: "trip destination", got: TripDestinationLast.String(), want: "last"},
		{name: "unknown format", got: Format(42).String(), want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}
