package params

import (
	"testing"

	"github.com/routebind/route-runtime/errors"
)

func routeWithCoords(t *testing.T, n int) *Route {
	t.Helper()
	p := NewRoute()
	for i := 0; i < n; i++ {
		if err := p.AddCoordinate(13.38+float64(i)/100, 52.51); err != nil {
			t.Fatal(err)
		}
	}
	return p
}

func TestRoute_Defaults(t *testing.T) {
	p := NewRoute()

	if p.Geometries() != GeometriesPolyline {
		t.Errorf("default geometries = %v", p.Geometries())
	}
	if p.Overview() != OverviewSimplified {
		t.Errorf("default overview = %v", p.Overview())
	}
	if p.Alternatives() != 0 || p.Steps() || p.Annotations() != AnnotationsNone {
		t.Error("unexpected defaults")
	}
	if _, set := p.ContinueStraight(); set {
		t.Error("continue straight set by default")
	}
}

func TestRoute_SetterRoundTrips(t *testing.T) {
	p := routeWithCoords(t, 3)

	if err := p.SetAlternatives(2); err != nil || p.Alternatives() != 2 {
		t.Errorf("alternatives: %v, %d", err, p.Alternatives())
	}
	wantCode(t, p.SetAlternatives(-1), errors.CodeInvalidArgument)

	if err := p.SetSteps(true); err != nil || !p.Steps() {
		t.Error("steps round trip failed")
	}

	if err := p.SetAnnotations(AnnotationsDuration | AnnotationsSpeed); err != nil {
		t.Fatal(err)
	}
	if !p.Annotations().Has(AnnotationsSpeed) {
		t.Error("annotations round trip failed")
	}
	wantCode(t, p.SetAnnotations(Annotations(0x80)), errors.CodeInvalidArgument)

	if err := p.SetAnnotationsString("nodes|weight"); err != nil {
		t.Fatal(err)
	}
	if p.Annotations() != AnnotationsNodes|AnnotationsWeight {
		t.Errorf("annotations from string = %v", p.Annotations())
	}
	wantCode(t, p.SetAnnotationsString("bogus"), errors.CodeInvalidArgument)

	if err := p.SetGeometries(GeometriesGeoJSON); err != nil || p.Geometries() != GeometriesGeoJSON {
		t.Error("geometries round trip failed")
	}
	wantCode(t, p.SetGeometries(Geometries(9)), errors.CodeInvalidArgument)

	if err := p.SetOverview(OverviewFull); err != nil || p.Overview() != OverviewFull {
		t.Error("overview round trip failed")
	}
	wantCode(t, p.SetOverview(Overview(9)), errors.CodeInvalidArgument)

	if err := p.SetContinueStraight(true); err != nil {
		t.Fatal(err)
	}
	if v, set := p.ContinueStraight(); !set || !v {
		t.Error("continue straight round trip failed")
	}
	if err := p.ClearContinueStraight(); err != nil {
		t.Fatal(err)
	}
	if _, set := p.ContinueStraight(); set {
		t.Error("continue straight not cleared")
	}
}

func TestRoute_Waypoints(t *testing.T) {
	p := routeWithCoords(t, 4)

	wantCode(t, p.AddWaypoint(4), errors.CodeInvalidCoordinateIndex)
	if len(p.Waypoints()) != 0 {
		t.Error("failed add mutated waypoints")
	}

	for _, w := range []int{0, 2, 3} {
		if err := p.AddWaypoint(w); err != nil {
			t.Fatal(err)
		}
	}
	if err := p.Valid(); err != nil {
		t.Errorf("Valid() = %v", err)
	}
}

func TestRoute_Valid(t *testing.T) {
	tests := []struct {
		name     string
		build    func(t *testing.T) *Route
		wantCode errors.Code
	}{
		{
			name:     "nil",
			build:    func(t *testing.T) *Route { return nil },
			wantCode: errors.CodeInvalidArgument,
		},
		{
			name:     "too few coordinates",
			build:    func(t *testing.T) *Route { return routeWithCoords(t, 1) },
			wantCode: errors.CodeInvalidArgument,
		},
		{
			name:  "two coordinates",
			build: func(t *testing.T) *Route { return routeWithCoords(t, 2) },
		},
		{
			name: "waypoints missing last coordinate",
			build: func(t *testing.T) *Route {
				p := routeWithCoords(t, 3)
				for _, w := range []int{0, 1} {
					if err := p.AddWaypoint(w); err != nil {
						t.Fatal(err)
					}
				}
				return p
			},
			wantCode: errors.CodeInvalidArgument,
		},
		{
			name: "unordered waypoints",
			build: func(t *testing.T) *Route {
				p := routeWithCoords(t, 3)
				for _, w := range []int{2, 0} {
					if err := p.AddWaypoint(w); err != nil {
						t.Fatal(err)
					}
				}
				return p
			},
			wantCode: errors.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build(t).Valid()
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("Valid() = %v", err)
				}
				return
			}
			wantCode(t, err, tt.wantCode)
		})
	}
}
