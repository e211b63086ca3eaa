// Package routeruntime provides a Go binding runtime for a native-style
// route-planning engine.
//
// The library does not implement routing itself. It supplies the boundary
// layer around an engine backend: typed parameter builders with validation,
// the engine's JSON value model and renderer, response wrappers with JSON and
// FlatBuffer accessors, and an error model that keeps every failure inside a
// (code, message) pair. Backends implementing the five request verbs plus
// tile fetch register themselves the way database/sql drivers do.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	routeruntime/        Root package with library and ABI version queries
//	├── engine/          Engine configuration, backend registry and dispatch
//	├── params/          Per-verb parameter builders and option enums
//	├── response/        Result slots, JSON/FlatBuffer response accessors
//	├── jsonval/         Engine JSON value model and compact renderer
//	├── errors/          (code, message) boundary errors and panic capture
//	├── resource/        Opaque handle table for the C export surface
//	├── enginetest/      Scripted backend for tests and downstream consumers
//	└── libroute/        C ABI surface (c-shared/c-archive build modes)
//
// # Quick Start
//
// Query a registered backend:
//
//	cfg := engine.DefaultConfig()
//	cfg.StoragePath = "berlin-latest.osrm"
//	cfg.Algorithm = engine.AlgorithmMLD
//
//	eng, err := engine.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer eng.Close()
//
//	p := params.NewRoute()
//	p.AddCoordinate(13.388860, 52.517037)
//	p.AddCoordinate(13.397634, 52.529407)
//
//	resp, err := eng.Route(p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, _ := resp.JSON()
//	fmt.Println(out)
//
// # Thread Safety
//
// An Engine is safe for concurrent queries once constructed, to the extent
// the registered backend is. Parameter builders and responses are NOT
// thread-safe and must be confined to a single goroutine or externally
// synchronized.
//
// # Ownership
//
// Handles crossing the C surface in libroute follow a strict
// one-construct-one-destruct discipline. Nothing is reference counted; a
// missing destruct leaks and a double destruct is a caller error, consistent
// with a thin C ABI boundary.
package routeruntime
