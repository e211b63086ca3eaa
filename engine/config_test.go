package engine

import (
	"testing"

	"github.com/routebind/route-runtime/errors"
	"go.uber.org/zap"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{in: "ch", want: AlgorithmCH},
		{in: "CH", want: AlgorithmCH},
		{in: "mld", want: AlgorithmMLD},
		{in: "MLD", want: AlgorithmMLD},
		{in: "corech", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.in)
		if tt.wantErr {
			if errors.CodeOf(err) != errors.CodeInvalidAlgorithm {
				t.Errorf("ParseAlgorithm(%q) err = %v, want InvalidAlgorithm", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseAlgorithm(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestAlgorithmString(t *testing.T) {
	if AlgorithmCH.String() != "ch" || AlgorithmMLD.String() != "mld" {
		t.Error("algorithm tokens changed")
	}
	if Algorithm(99).String() != "unknown" {
		t.Error("out-of-range algorithm should stringify as unknown")
	}
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StoragePath = "map.osrm"
	if err := cfg.Valid(); err != nil {
		t.Fatalf("default config with storage path: %v", err)
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	log := zap.NewExample()
	SetLogger(log)
	if Logger() != log {
		t.Error("SetLogger did not install the logger")
	}

	SetLogger(nil)
	if Logger() == nil || Logger() == log {
		t.Error("SetLogger(nil) should restore the no-op logger")
	}
}
