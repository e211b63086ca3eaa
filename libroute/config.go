package main

/*
#include <stdint.h>
#include <stdbool.h>
*/
import "C"

import (
	"github.com/routebind/route-runtime/engine"
	"github.com/routebind/route-runtime/errors"
	"github.com/routebind/route-runtime/resource"
)

//export routec_config_construct
func routec_config_construct() C.uint64_t {
	return C.uint64_t(table.Insert(typeConfig, engine.DefaultConfig()))
}

//export routec_config_destruct
func routec_config_destruct(h C.uint64_t) {
	table.Remove(resource.Handle(h))
}

//export routec_config_set_storage_path
func routec_config_set_storage_path(h C.uint64_t, path *C.char, errOut *C.uint64_t) {
	call(errOut, func() error {
		cfg, err := getConfig(h)
		if err != nil {
			return err
		}
		if path == nil {
			return errors.InvalidArgument("nil storage path")
		}
		cfg.StoragePath = C.GoString(path)
		return nil
	})
}

//export routec_config_set_shared_memory
func routec_config_set_shared_memory(h C.uint64_t, enabled C.bool, errOut *C.uint64_t) {
	call(errOut, func() error {
		cfg, err := getConfig(h)
		if err != nil {
			return err
		}
		cfg.UseSharedMemory = bool(enabled)
		return nil
	})
}

//export routec_config_set_dataset_name
func routec_config_set_dataset_name(h C.uint64_t, name *C.char, errOut *C.uint64_t) {
	call(errOut, func() error {
		cfg, err := getConfig(h)
		if err != nil {
			return err
		}
		if name == nil {
			return errors.InvalidArgument("nil dataset name")
		}
		cfg.DatasetName = C.GoString(name)
		return nil
	})
}

//export routec_config_set_mmap
func routec_config_set_mmap(h C.uint64_t, enabled C.bool, errOut *C.uint64_t) {
	call(errOut, func() error {
		cfg, err := getConfig(h)
		if err != nil {
			return err
		}
		cfg.UseMmap = bool(enabled)
		return nil
	})
}

//export routec_config_set_algorithm
func routec_config_set_algorithm(h C.uint64_t, algorithm *C.char, errOut *C.uint64_t) {
	call(errOut, func() error {
		cfg, err := getConfig(h)
		if err != nil {
			return err
		}
		if algorithm == nil {
			return errors.InvalidAlgorithm("<nil>")
		}
		alg, err := engine.ParseAlgorithm(C.GoString(algorithm))
		if err != nil {
			return err
		}
		cfg.Algorithm = alg
		return nil
	})
}

func setConfigLimit(h C.uint64_t, errOut *C.uint64_t, assign func(cfg *engine.Config, limit int), limit C.int) {
	call(errOut, func() error {
		cfg, err := getConfig(h)
		if err != nil {
			return err
		}
		if limit < -1 {
			return errors.InvalidArgument("limit must be -1 (unlimited) or non-negative, got %d", int(limit))
		}
		assign(cfg, int(limit))
		return nil
	})
}

//export routec_config_set_max_locations_viaroute
func routec_config_set_max_locations_viaroute(h C.uint64_t, limit C.int, errOut *C.uint64_t) {
	setConfigLimit(h, errOut, func(cfg *engine.Config, v int) { cfg.MaxLocationsViaroute = v }, limit)
}

//export routec_config_set_max_locations_trip
func routec_config_set_max_locations_trip(h C.uint64_t, limit C.int, errOut *C.uint64_t) {
	setConfigLimit(h, errOut, func(cfg *engine.Config, v int) { cfg.MaxLocationsTrip = v }, limit)
}

//export routec_config_set_max_locations_distance_table
func routec_config_set_max_locations_distance_table(h C.uint64_t, limit C.int, errOut *C.uint64_t) {
	setConfigLimit(h, errOut, func(cfg *engine.Config, v int) { cfg.MaxLocationsDistanceTable = v }, limit)
}

//export routec_config_set_max_locations_map_matching
func routec_config_set_max_locations_map_matching(h C.uint64_t, limit C.int, errOut *C.uint64_t) {
	setConfigLimit(h, errOut, func(cfg *engine.Config, v int) { cfg.MaxLocationsMapMatching = v }, limit)
}

//export routec_config_set_max_results_nearest
func routec_config_set_max_results_nearest(h C.uint64_t, limit C.int, errOut *C.uint64_t) {
	setConfigLimit(h, errOut, func(cfg *engine.Config, v int) { cfg.MaxResultsNearest = v }, limit)
}

//export routec_config_set_max_alternatives
func routec_config_set_max_alternatives(h C.uint64_t, limit C.int, errOut *C.uint64_t) {
	setConfigLimit(h, errOut, func(cfg *engine.Config, v int) { cfg.MaxAlternatives = v }, limit)
}

//export routec_config_set_default_radius
func routec_config_set_default_radius(h C.uint64_t, radius C.double, errOut *C.uint64_t) {
	call(errOut, func() error {
		cfg, err := getConfig(h)
		if err != nil {
			return err
		}
		cfg.DefaultRadius = float64(radius)
		return nil
	})
}

//export routec_config_set_max_radius_map_matching
func routec_config_set_max_radius_map_matching(h C.uint64_t, radius C.double, errOut *C.uint64_t) {
	call(errOut, func() error {
		cfg, err := getConfig(h)
		if err != nil {
			return err
		}
		cfg.MaxRadiusMapMatching = float64(radius)
		return nil
	})
}

//export routec_config_disable_feature_dataset
func routec_config_disable_feature_dataset(h C.uint64_t, name *C.char, errOut *C.uint64_t) {
	call(errOut, func() error {
		cfg, err := getConfig(h)
		if err != nil {
			return err
		}
		if name == nil {
			return errors.InvalidArgument("nil feature dataset name")
		}
		var ds engine.FeatureDataset
		switch token := C.GoString(name); token {
		case "route_steps":
			ds = engine.FeatureDatasetRouteSteps
		case "route_geometry":
			ds = engine.FeatureDatasetRouteGeometry
		default:
			return errors.InvalidArgument("unrecognized feature dataset %q", token)
		}
		cfg.DisableFeatureDatasets = append(cfg.DisableFeatureDatasets, ds)
		return nil
	})
}

//export routec_config_set_verbosity
func routec_config_set_verbosity(h C.uint64_t, verbosity *C.char, errOut *C.uint64_t) {
	call(errOut, func() error {
		cfg, err := getConfig(h)
		if err != nil {
			return err
		}
		if verbosity == nil {
			return errors.InvalidArgument("nil verbosity")
		}
		cfg.Verbosity = C.GoString(verbosity)
		return nil
	})
}

//export routec_engine_construct
func routec_engine_construct(cfgHandle C.uint64_t, errOut *C.uint64_t) C.uint64_t {
	return callHandle(errOut, typeEngine, func() (any, error) {
		cfg, err := getConfig(cfgHandle)
		if err != nil {
			return nil, err
		}
		return engine.New(cfg)
	})
}

//export routec_engine_destruct
func routec_engine_destruct(h C.uint64_t) {
	v, ok := table.Remove(resource.Handle(h))
	if !ok {
		return
	}
	if eng, ok := v.(*engine.Engine); ok {
		_ = eng.Close()
	}
}
