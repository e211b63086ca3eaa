package params

import (
	"testing"

	"github.com/routebind/route-runtime/errors"
)

func TestTable_SourcesAndDestinations(t *testing.T) {
	p := NewTable()
	for i := 0; i < 3; i++ {
		if err := p.AddCoordinate(13.38+float64(i)/100, 52.51); err != nil {
			t.Fatal(err)
		}
	}

	wantCode(t, p.AddSource(3), errors.CodeInvalidCoordinateIndex)
	wantCode(t, p.AddDestination(-1), errors.CodeInvalidCoordinateIndex)

	if err := p.AddSource(0); err != nil {
		t.Fatal(err)
	}
	if err := p.AddDestination(2); err != nil {
		t.Fatal(err)
	}
	if got := p.Sources(); len(got) != 1 || got[0] != 0 {
		t.Errorf("Sources() = %v", got)
	}
	if got := p.Destinations(); len(got) != 1 || got[0] != 2 {
		t.Errorf("Destinations() = %v", got)
	}
	if err := p.Valid(); err != nil {
		t.Errorf("Valid() = %v", err)
	}
}

func TestTable_Options(t *testing.T) {
	p := NewTable()

	if p.Annotations() != AnnotationsDuration {
		t.Errorf("default annotations = %v", p.Annotations())
	}
	if p.ScaleFactor() != 1 || p.FallbackSpeed() != 0 {
		t.Error("unexpected defaults")
	}

	if err := p.SetAnnotations(AnnotationsDuration | AnnotationsDistance); err != nil {
		t.Fatal(err)
	}
	wantCode(t, p.SetAnnotations(AnnotationsSpeed), errors.CodeInvalidArgument)
	wantCode(t, p.SetAnnotations(AnnotationsNone), errors.CodeInvalidArgument)
	if p.Annotations() != AnnotationsDuration|AnnotationsDistance {
		t.Error("failed set mutated annotations")
	}

	if err := p.SetFallbackSpeed(4.2); err != nil || p.FallbackSpeed() != 4.2 {
		t.Error("fallback speed round trip failed")
	}
	wantCode(t, p.SetFallbackSpeed(0), errors.CodeInvalidArgument)
	wantCode(t, p.SetFallbackSpeed(-3), errors.CodeInvalidArgument)

	if err := p.SetFallbackCoordinate(FallbackCoordinateSnapped); err != nil {
		t.Fatal(err)
	}
	if p.FallbackCoordinate() != FallbackCoordinateSnapped {
		t.Error("fallback coordinate round trip failed")
	}
	wantCode(t, p.SetFallbackCoordinate(FallbackCoordinate(7)), errors.CodeInvalidArgument)

	if err := p.SetScaleFactor(1.5); err != nil || p.ScaleFactor() != 1.5 {
		t.Error("scale factor round trip failed")
	}
	wantCode(t, p.SetScaleFactor(0), errors.CodeInvalidArgument)
}

func TestNearest(t *testing.T) {
	p := NewNearest()

	if p.NumberOfResults() != 1 {
		t.Errorf("default number of results = %d", p.NumberOfResults())
	}
	wantCode(t, p.SetNumberOfResults(0), errors.CodeInvalidArgument)
	if err := p.SetNumberOfResults(5); err != nil || p.NumberOfResults() != 5 {
		t.Error("number of results round trip failed")
	}

	wantCode(t, p.Valid(), errors.CodeInvalidArgument)

	if err := p.AddCoordinate(13.39, 52.54); err != nil {
		t.Fatal(err)
	}
	if err := p.Valid(); err != nil {
		t.Errorf("Valid() = %v", err)
	}

	if err := p.AddCoordinate(13.40, 52.55); err != nil {
		t.Fatal(err)
	}
	wantCode(t, p.Valid(), errors.CodeInvalidArgument)
}

func TestMatch(t *testing.T) {
	p := NewMatch()
	for i := 0; i < 3; i++ {
		if err := p.AddCoordinate(13.38+float64(i)/100, 52.51); err != nil {
			t.Fatal(err)
		}
	}

	if p.Gaps() != GapsSplit || p.Tidy() {
		t.Error("unexpected defaults")
	}

	if err := p.SetGaps(GapsIgnore); err != nil || p.Gaps() != GapsIgnore {
		t.Error("gaps round trip failed")
	}
	wantCode(t, p.SetGaps(Gaps(9)), errors.CodeInvalidArgument)

	if err := p.SetTidy(true); err != nil || !p.Tidy() {
		t.Error("tidy round trip failed")
	}

	for _, ts := range []int64{1000, 1005, 1005} {
		if err := p.AddTimestamp(ts); err != nil {
			t.Fatal(err)
		}
	}
	wantCode(t, p.AddTimestamp(999), errors.CodeInvalidArgument)
	if got := p.Timestamps(); len(got) != 3 {
		t.Errorf("Timestamps() = %v", got)
	}
	if err := p.Valid(); err != nil {
		t.Errorf("Valid() = %v", err)
	}

	// Partial timestamp coverage is invalid.
	if err := p.AddCoordinate(13.42, 52.51); err != nil {
		t.Fatal(err)
	}
	wantCode(t, p.Valid(), errors.CodeInvalidArgument)
}

func TestTrip(t *testing.T) {
	p := NewTrip()
	for i := 0; i < 3; i++ {
		if err := p.AddCoordinate(13.38+float64(i)/100, 52.51); err != nil {
			t.Fatal(err)
		}
	}

	if !p.Roundtrip() || p.Source() != TripSourceAny || p.Destination() != TripDestinationAny {
		t.Error("unexpected defaults")
	}

	if err := p.SetRoundtrip(false); err != nil || p.Roundtrip() {
		t.Error("roundtrip round trip failed")
	}
	if err := p.SetSource(TripSourceFirst); err != nil || p.Source() != TripSourceFirst {
		t.Error("source round trip failed")
	}
	wantCode(t, p.SetSource(TripSource(9)), errors.CodeInvalidArgument)
	if err := p.SetDestination(TripDestinationLast); err != nil || p.Destination() != TripDestinationLast {
		t.Error("destination round trip failed")
	}
	wantCode(t, p.SetDestination(TripDestination(9)), errors.CodeInvalidArgument)

	if err := p.Valid(); err != nil {
		t.Errorf("Valid() = %v", err)
	}
}

func TestTile(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z uint32
		wantErr bool
	}{
		{name: "berlin-ish", x: 2200, y: 1343, z: 12},
		{name: "max zoom", x: 1, y: 1, z: 22},
		{name: "zoom too low", x: 0, y: 0, z: 11, wantErr: true},
		{name: "zoom too high", x: 0, y: 0, z: 23, wantErr: true},
		{name: "x outside grid", x: 1 << 12, y: 0, z: 12, wantErr: true},
		{name: "y outside grid", x: 0, y: 1 << 12, z: 12, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewTile(tt.x, tt.y, tt.z)
			if tt.wantErr {
				wantCode(t, err, errors.CodeInvalidArgument)
				return
			}
			if err != nil {
				t.Fatalf("NewTile: %v", err)
			}
			if p.X() != tt.x || p.Y() != tt.y || p.Z() != tt.z {
				t.Errorf("tile = (%d, %d, %d)", p.X(), p.Y(), p.Z())
			}
			if err := p.Valid(); err != nil {
				t.Errorf("Valid() = %v", err)
			}
			b := p.Bound()
			if b.Min[0] >= b.Max[0] || b.Min[1] >= b.Max[1] {
				t.Errorf("degenerate tile bound %v", b)
			}
		})
	}
}
