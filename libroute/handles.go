package main

/*
#include <stdint.h>
#include <stdlib.h>
#include <stdbool.h>
*/
import "C"

import (
	"github.com/routebind/route-runtime/engine"
	"github.com/routebind/route-runtime/errors"
	"github.com/routebind/route-runtime/params"
	"github.com/routebind/route-runtime/resource"
	"github.com/routebind/route-runtime/response"
)

// One process-wide table holds everything addressed from C.
var table = resource.NewTable()

const (
	typeConfig uint32 = iota + 1
	typeEngine
	typeRouteParams
	typeTableParams
	typeNearestParams
	typeMatchParams
	typeTripParams
	typeTileParams
	typeResponse
	typeError
	typeBlob
)

// storeError tables an error and writes its handle to the out-parameter.
// A nil out-parameter discards the error; the call still fails.
func storeError(errOut *C.uint64_t, err error) {
	if errOut == nil {
		return
	}
	coded, ok := err.(*errors.Error)
	if !ok {
		coded = errors.Exception(err)
	}
	*errOut = C.uint64_t(table.Insert(typeError, coded))
}

// call runs fn with panic containment and reports any failure through the
// error out-parameter.
func call(errOut *C.uint64_t, fn func() error) {
	var err error
	func() {
		defer errors.Recover(&err)
		err = fn()
	}()
	if err != nil {
		storeError(errOut, err)
	}
}

// callHandle runs fn with panic containment and tables its result. Failure
// reports through errOut and returns handle 0.
func callHandle(errOut *C.uint64_t, typeID uint32, fn func() (any, error)) C.uint64_t {
	var v any
	var err error
	func() {
		defer errors.Recover(&err)
		v, err = fn()
	}()
	if err != nil {
		storeError(errOut, err)
		return 0
	}
	return C.uint64_t(table.Insert(typeID, v))
}

func badHandle(h C.uint64_t, what string) error {
	return errors.InvalidArgument("handle %d is not a valid %s handle", uint64(h), what)
}

func getConfig(h C.uint64_t) (*engine.Config, error) {
	v, ok := table.GetTyped(resource.Handle(h), typeConfig)
	if !ok {
		return nil, badHandle(h, "config")
	}
	return v.(*engine.Config), nil
}

func getEngine(h C.uint64_t) (*engine.Engine, error) {
	v, ok := table.GetTyped(resource.Handle(h), typeEngine)
	if !ok {
		return nil, badHandle(h, "engine")
	}
	return v.(*engine.Engine), nil
}

func getRouteParams(h C.uint64_t) (*params.Route, error) {
	v, ok := table.GetTyped(resource.Handle(h), typeRouteParams)
	if !ok {
		return nil, badHandle(h, "route parameters")
	}
	return v.(*params.Route), nil
}

func getTableParams(h C.uint64_t) (*params.Table, error) {
	v, ok := table.GetTyped(resource.Handle(h), typeTableParams)
	if !ok {
		return nil, badHandle(h, "table parameters")
	}
	return v.(*params.Table), nil
}

func getNearestParams(h C.uint64_t) (*params.Nearest, error) {
	v, ok := table.GetTyped(resource.Handle(h), typeNearestParams)
	if !ok {
		return nil, badHandle(h, "nearest parameters")
	}
	return v.(*params.Nearest), nil
}

func getMatchParams(h C.uint64_t) (*params.Match, error) {
	v, ok := table.GetTyped(resource.Handle(h), typeMatchParams)
	if !ok {
		return nil, badHandle(h, "match parameters")
	}
	return v.(*params.Match), nil
}

func getTripParams(h C.uint64_t) (*params.Trip, error) {
	v, ok := table.GetTyped(resource.Handle(h), typeTripParams)
	if !ok {
		return nil, badHandle(h, "trip parameters")
	}
	return v.(*params.Trip), nil
}

func getTileParams(h C.uint64_t) (*params.Tile, error) {
	v, ok := table.GetTyped(resource.Handle(h), typeTileParams)
	if !ok {
		return nil, badHandle(h, "tile parameters")
	}
	return v.(*params.Tile), nil
}

// getBase resolves the shared coordinate builder behind any verb's
// parameter handle. Tile parameters carry no coordinates and are rejected.
func getBase(h C.uint64_t) (*params.Base, error) {
	v, ok := table.Get(resource.Handle(h))
	if !ok {
		return nil, badHandle(h, "parameter")
	}
	switch p := v.(type) {
	case *params.Route:
		return &p.Base, nil
	case *params.Table:
		return &p.Base, nil
	case *params.Nearest:
		return &p.Base, nil
	case *params.Match:
		return &p.Base, nil
	case *params.Trip:
		return &p.Base, nil
	default:
		return nil, badHandle(h, "parameter")
	}
}

func getResponse(h C.uint64_t) (*response.Response, error) {
	v, ok := table.GetTyped(resource.Handle(h), typeResponse)
	if !ok {
		return nil, badHandle(h, "response")
	}
	return v.(*response.Response), nil
}

func main() {}
