package engine

import (
	"github.com/routebind/route-runtime/errors"
)

// Algorithm selects the graph-processing strategy a dataset was prepared
// for.
type Algorithm uint8

const (
	// AlgorithmCH queries contraction-hierarchy datasets.
	AlgorithmCH Algorithm = iota
	// AlgorithmMLD queries multi-level-partition datasets.
	AlgorithmMLD
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmCH:
		return "ch"
	case AlgorithmMLD:
		return "mld"
	default:
		return "unknown"
	}
}

func (a Algorithm) valid() bool {
	return a == AlgorithmCH || a == AlgorithmMLD
}

// ParseAlgorithm translates an algorithm token. Unknown tokens are
// InvalidAlgorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "ch", "CH":
		return AlgorithmCH, nil
	case "mld", "MLD":
		return AlgorithmMLD, nil
	default:
		return 0, errors.InvalidAlgorithm(s)
	}
}

// FeatureDataset names an optional dataset a deployment may leave unloaded
// to save memory.
type FeatureDataset uint8

const (
	FeatureDatasetRouteSteps FeatureDataset = iota
	FeatureDatasetRouteGeometry
)

func (d FeatureDataset) String() string {
	switch d {
	case FeatureDatasetRouteSteps:
		return "route_steps"
	case FeatureDatasetRouteGeometry:
		return "route_geometry"
	default:
		return "unknown"
	}
}

// Config holds engine startup settings. It is read once by New; later
// mutation has no effect on a constructed engine.
//
// Limits use -1 for "unlimited".
type Config struct {
	// StoragePath points at a prepared dataset on disk. Mutually exclusive
	// with UseSharedMemory.
	StoragePath string

	// UseSharedMemory attaches to a dataset preloaded into a shared memory
	// region instead of opening files.
	UseSharedMemory bool

	// DatasetName disambiguates shared-memory regions when several datasets
	// are loaded.
	DatasetName string

	// UseMmap maps dataset files instead of reading them into heap memory.
	UseMmap bool

	Algorithm Algorithm

	MaxLocationsViaroute      int
	MaxLocationsTrip          int
	MaxLocationsDistanceTable int
	MaxLocationsMapMatching   int
	MaxResultsNearest         int
	MaxAlternatives           int

	// DefaultRadius is applied to coordinates without an explicit snapping
	// radius; -1 leaves the backend's own default.
	DefaultRadius float64

	MaxRadiusMapMatching float64

	// DisableFeatureDatasets lists optional datasets the deployment did not
	// load. Requests needing one fail in the backend.
	DisableFeatureDatasets []FeatureDataset

	// Verbosity is the log level token handed to the backend ("", "WARNING",
	// "INFO", "DEBUG").
	Verbosity string
}

// DefaultConfig returns a config with every limit unlimited and CH
// selected.
func DefaultConfig() *Config {
	return &Config{
		Algorithm:                 AlgorithmCH,
		MaxLocationsViaroute:      -1,
		MaxLocationsTrip:          -1,
		MaxLocationsDistanceTable: -1,
		MaxLocationsMapMatching:   -1,
		MaxResultsNearest:         -1,
		MaxAlternatives:           3,
		DefaultRadius:             -1,
		MaxRadiusMapMatching:      -1,
	}
}

// Valid checks the config before engine construction.
func (c *Config) Valid() error {
	if c == nil {
		return errors.InvalidArgument("nil config")
	}
	if !c.Algorithm.valid() {
		return errors.InvalidAlgorithm(c.Algorithm)
	}
	if c.UseSharedMemory && c.StoragePath != "" {
		return errors.InvalidArgument("storage path and shared memory are mutually exclusive")
	}
	if !c.UseSharedMemory && c.StoragePath == "" {
		return errors.InvalidDataset("no storage path and shared memory disabled", nil)
	}
	for _, limit := range []int{
		c.MaxLocationsViaroute,
		c.MaxLocationsTrip,
		c.MaxLocationsDistanceTable,
		c.MaxLocationsMapMatching,
		c.MaxResultsNearest,
		c.MaxAlternatives,
	} {
		if limit < -1 {
			return errors.InvalidArgument("limits must be -1 (unlimited) or non-negative")
		}
	}
	return nil
}
