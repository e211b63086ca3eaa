// Package enginetest provides a scripted backend for exercising the binding
// without a prepared dataset. Tests and downstream consumers plug it into
// the engine registry and script each verb's behavior.
package enginetest

import (
	"github.com/routebind/route-runtime/engine"
	"github.com/routebind/route-runtime/jsonval"
	"github.com/routebind/route-runtime/params"
	"github.com/routebind/route-runtime/response"
)

// Backend is a scriptable engine.Backend. Unset verb functions answer Ok
// with a minimal payload for the slot's format. The zero value is usable.
//
// Backend records calls without locking; confine one instance to one test.
type Backend struct {
	RouteFn   func(*params.Route, *response.Result) engine.Status
	TableFn   func(*params.Table, *response.Result) engine.Status
	NearestFn func(*params.Nearest, *response.Result) engine.Status
	MatchFn   func(*params.Match, *response.Result) engine.Status
	TripFn    func(*params.Trip, *response.Result) engine.Status
	TileFn    func(*params.Tile, *response.Result) engine.Status

	CloseErr error

	// Calls lists the verbs invoked, in order.
	Calls []string
	// Closed reports whether Close was called.
	Closed bool
}

var _ engine.Backend = (*Backend)(nil)

// Factory returns a BackendFactory handing out this backend.
func (b *Backend) Factory() engine.BackendFactory {
	return func(*engine.Config) (engine.Backend, error) {
		return b, nil
	}
}

func (b *Backend) Route(p *params.Route, result *response.Result) engine.Status {
	b.Calls = append(b.Calls, "Route")
	if b.RouteFn != nil {
		return b.RouteFn(p, result)
	}
	return WriteOK(result)
}

func (b *Backend) Table(p *params.Table, result *response.Result) engine.Status {
	b.Calls = append(b.Calls, "Table")
	if b.TableFn != nil {
		return b.TableFn(p, result)
	}
	return WriteOK(result)
}

func (b *Backend) Nearest(p *params.Nearest, result *response.Result) engine.Status {
	b.Calls = append(b.Calls, "Nearest")
	if b.NearestFn != nil {
		return b.NearestFn(p, result)
	}
	return WriteOK(result)
}

func (b *Backend) Match(p *params.Match, result *response.Result) engine.Status {
	b.Calls = append(b.Calls, "Match")
	if b.MatchFn != nil {
		return b.MatchFn(p, result)
	}
	return WriteOK(result)
}

func (b *Backend) Trip(p *params.Trip, result *response.Result) engine.Status {
	b.Calls = append(b.Calls, "Trip")
	if b.TripFn != nil {
		return b.TripFn(p, result)
	}
	return WriteOK(result)
}

func (b *Backend) Tile(p *params.Tile, result *response.Result) engine.Status {
	b.Calls = append(b.Calls, "Tile")
	if b.TileFn != nil {
		return b.TileFn(p, result)
	}
	return WriteOK(result)
}

func (b *Backend) Close() error {
	b.Closed = true
	return b.CloseErr
}

// WriteOK fills a minimal success payload matching the slot's format and
// answers StatusOK.
func WriteOK(result *response.Result) engine.Status {
	switch result.Kind() {
	case response.KindJSON:
		result.Object().Set("code", jsonval.String{Value: "Ok"})
	case response.KindFlatBuffers:
		b := result.Builder()
		off := b.CreateString("Ok")
		b.Finish(off)
	case response.KindBytes:
		// A tile payload is opaque; any bytes will do.
		_ = result.SetBytes([]byte{0x1a, 0x00})
	}
	return engine.StatusOK
}

// WriteError fills the structured error payload the engine embeds in failed
// JSON results and answers StatusError. Non-JSON slots are left untouched,
// which exercises the caller's generic fallback.
func WriteError(result *response.Result, code, message string) engine.Status {
	if result.Kind() == response.KindJSON {
		result.Object().Set("code", jsonval.String{Value: code})
		result.Object().Set("message", jsonval.String{Value: message})
	}
	return engine.StatusError
}
