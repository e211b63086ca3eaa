package params

import (
	stderrors "errors"
	"testing"

	"github.com/routebind/route-runtime/errors"
)

func wantCode(t *testing.T, err error, code errors.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	if got := errors.CodeOf(err); got != code {
		t.Fatalf("error code = %s, want %s (err: %v)", got, code, err)
	}
}

func TestBase_NilReceiverSetters(t *testing.T) {
	var b *Base

	tests := []struct {
		name string
		call func() error
	}{
		{name: "AddCoordinate", call: func() error { return b.AddCoordinate(13.4, 52.5) }},
		{name: "SetRadius", call: func() error { return b.SetRadius(0, 5) }},
		{name: "SetBearing", call: func() error { return b.SetBearing(0, 90, 20) }},
		{name: "SetApproach", call: func() error { return b.SetApproach(0, ApproachCurb) }},
		{name: "SetHint", call: func() error { return b.SetHint(0, "aGludA==") }},
		{name: "AddExclude", call: func() error { return b.AddExclude("toll") }},
		{name: "SetSnapping", call: func() error { return b.SetSnapping(SnappingAny) }},
		{name: "SetFormat", call: func() error { return b.SetFormat(FormatFlatBuffers) }},
		{name: "SetGenerateHints", call: func() error { return b.SetGenerateHints(false) }},
		{name: "SetSkipWaypoints", call: func() error { return b.SetSkipWaypoints(true) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantCode(t, tt.call(), errors.CodeInvalidArgument)
		})
	}
}

func TestBase_AddCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		lon     float64
		lat     float64
		wantErr bool
	}{
		{name: "berlin", lon: 13.388860, lat: 52.517037},
		{name: "antimeridian", lon: 180, lat: 0},
		{name: "lon out of range", lon: 181, lat: 0, wantErr: true},
		{name: "lat out of range", lon: 0, lat: -91, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBase()
			err := b.AddCoordinate(tt.lon, tt.lat)
			if tt.wantErr {
				wantCode(t, err, errors.CodeInvalidArgument)
				if b.CoordinateCount() != 0 {
					t.Error("failed add must not append")
				}
				return
			}
			if err != nil {
				t.Fatalf("AddCoordinate: %v", err)
			}
			got, err := b.Coordinate(0)
			if err != nil {
				t.Fatalf("Coordinate(0): %v", err)
			}
			if got[0] != tt.lon || got[1] != tt.lat {
				t.Errorf("Coordinate(0) = %v, want (%v, %v)", got, tt.lon, tt.lat)
			}
		})
	}
}

func TestBase_IndexedSettersOutOfRange(t *testing.T) {
	b := newBase()
	if err := b.AddCoordinate(13.4, 52.5); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		call func(i int) error
	}{
		{name: "SetRadius", call: func(i int) error { return b.SetRadius(i, 10) }},
		{name: "SetBearing", call: func(i int) error { return b.SetBearing(i, 90, 20) }},
		{name: "SetApproach", call: func(i int) error { return b.SetApproach(i, ApproachCurb) }},
		{name: "SetHint", call: func(i int) error { return b.SetHint(i, "") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantCode(t, tt.call(1), errors.CodeInvalidCoordinateIndex)
			wantCode(t, tt.call(-1), errors.CodeInvalidCoordinateIndex)

			// Failed indexed sets must leave the attribute arrays untouched.
			if _, set, err := b.Radius(0); err != nil || set {
				t.Errorf("radius mutated by failed set: set=%v err=%v", set, err)
			}
			if _, set, err := b.Bearing(0); err != nil || set {
				t.Errorf("bearing mutated by failed set: set=%v err=%v", set, err)
			}
		})
	}
}

func TestBase_RadiusRoundTrip(t *testing.T) {
	b := newBase()
	for i := 0; i < 3; i++ {
		if err := b.AddCoordinate(13.4+float64(i), 52.5); err != nil {
			t.Fatal(err)
		}
	}

	// Unset by default.
	if _, set, err := b.Radius(1); err != nil || set {
		t.Fatalf("default radius: set=%v err=%v", set, err)
	}

	if err := b.SetRadius(1, 30.5); err != nil {
		t.Fatal(err)
	}
	r, set, err := b.Radius(1)
	if err != nil || !set || r != 30.5 {
		t.Errorf("Radius(1) = %v, %v, %v; want 30.5, true, nil", r, set, err)
	}

	// Lazy resize leaves neighbors unset.
	if _, set, _ := b.Radius(0); set {
		t.Error("Radius(0) unexpectedly set")
	}
	if _, set, _ := b.Radius(2); set {
		t.Error("Radius(2) unexpectedly set")
	}

	// Negative clears back to unset.
	if err := b.SetRadius(1, -1); err != nil {
		t.Fatal(err)
	}
	if _, set, _ := b.Radius(1); set {
		t.Error("Radius(1) still set after clear")
	}
}

func TestBase_BearingRoundTrip(t *testing.T) {
	b := newBase()
	if err := b.AddCoordinate(13.4, 52.5); err != nil {
		t.Fatal(err)
	}

	if err := b.SetBearing(0, 361, 10); err == nil {
		t.Error("expected error for bearing value 361")
	}
	if err := b.SetBearing(0, 90, 181); err == nil {
		t.Error("expected error for bearing range 181")
	}

	if err := b.SetBearing(0, 90, 20); err != nil {
		t.Fatal(err)
	}
	bearing, set, err := b.Bearing(0)
	if err != nil || !set {
		t.Fatalf("Bearing(0): set=%v err=%v", set, err)
	}
	if bearing.Value != 90 || bearing.Range != 20 {
		t.Errorf("Bearing(0) = %+v", bearing)
	}

	if err := b.ClearBearing(0); err != nil {
		t.Fatal(err)
	}
	if _, set, _ := b.Bearing(0); set {
		t.Error("bearing still set after clear")
	}
}

func TestBase_ApproachRoundTrip(t *testing.T) {
	b := newBase()
	if err := b.AddCoordinate(13.4, 52.5); err != nil {
		t.Fatal(err)
	}

	wantCode(t, b.SetApproach(0, Approach(9)), errors.CodeInvalidArgument)

	if err := b.SetApproach(0, ApproachCurb); err != nil {
		t.Fatal(err)
	}
	a, set, err := b.Approach(0)
	if err != nil || !set || a != ApproachCurb {
		t.Errorf("Approach(0) = %v, %v, %v", a, set, err)
	}

	if err := b.SetApproach(0, ApproachUnset); err != nil {
		t.Fatal(err)
	}
	if _, set, _ := b.Approach(0); set {
		t.Error("approach still set after unset")
	}
}

func TestBase_HintValidation(t *testing.T) {
	b := newBase()
	if err := b.AddCoordinate(13.4, 52.5); err != nil {
		t.Fatal(err)
	}

	wantCode(t, b.SetHint(0, "not*base64*"), errors.CodeInvalidArgument)

	token := "aGludC10b2tlbg==" // any valid base64 blob
	if err := b.SetHint(0, token); err != nil {
		t.Fatal(err)
	}
	got, err := b.Hint(0)
	if err != nil || got != token {
		t.Errorf("Hint(0) = %q, %v", got, err)
	}

	if err := b.SetHint(0, ""); err != nil {
		t.Fatal(err)
	}
	if got, _ := b.Hint(0); got != "" {
		t.Errorf("hint not cleared: %q", got)
	}
}

func TestBase_OptionRoundTrips(t *testing.T) {
	b := newBase()

	if b.Format() != FormatJSON || b.Snapping() != SnappingDefault || !b.GenerateHints() || b.SkipWaypoints() {
		t.Fatal("unexpected defaults")
	}

	if err := b.SetFormat(FormatFlatBuffers); err != nil {
		t.Fatal(err)
	}
	if b.Format() != FormatFlatBuffers {
		t.Error("format round trip failed")
	}
	wantCode(t, b.SetFormat(Format(99)), errors.CodeInvalidFormat)
	if b.Format() != FormatFlatBuffers {
		t.Error("failed set mutated format")
	}

	if err := b.SetSnapping(SnappingAny); err != nil {
		t.Fatal(err)
	}
	if b.Snapping() != SnappingAny {
		t.Error("snapping round trip failed")
	}
	wantCode(t, b.SetSnapping(Snapping(99)), errors.CodeInvalidArgument)

	if err := b.SetGenerateHints(false); err != nil {
		t.Fatal(err)
	}
	if b.GenerateHints() {
		t.Error("generate hints round trip failed")
	}

	if err := b.SetSkipWaypoints(true); err != nil {
		t.Fatal(err)
	}
	if !b.SkipWaypoints() {
		t.Error("skip waypoints round trip failed")
	}

	if err := b.AddExclude("toll"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddExclude("ferry"); err != nil {
		t.Fatal(err)
	}
	wantCode(t, b.AddExclude(""), errors.CodeInvalidArgument)
	if got := b.Exclude(); len(got) != 2 || got[0] != "toll" || got[1] != "ferry" {
		t.Errorf("Exclude() = %v", got)
	}
}

func TestFixedPointRoundTrip(t *testing.T) {
	b := newBase()
	if err := b.AddCoordinate(13.388860, 52.517037); err != nil {
		t.Fatal(err)
	}
	p, _ := b.Coordinate(0)

	lon, lat := ToFixed(p)
	if lon != 13388860 || lat != 52517037 {
		t.Errorf("ToFixed = (%d, %d)", lon, lat)
	}
	back := FromFixed(lon, lat)
	if back != p {
		t.Errorf("FromFixed round trip = %v, want %v", back, p)
	}
}

func TestWantCodeHelperMatchesSentinel(t *testing.T) {
	// errors.Is sentinel matching is what the C layer relies on; make sure
	// the builders produce comparable errors.
	b := newBase()
	if err := b.AddCoordinate(13.4, 52.5); err != nil {
		t.Fatal(err)
	}
	err := b.SetRadius(3, 1)
	if !stderrors.Is(err, &errors.Error{Code: errors.CodeInvalidCoordinateIndex}) {
		t.Errorf("sentinel match failed for %v", err)
	}
}
