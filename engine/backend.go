package engine

import (
	"sync"

	"github.com/routebind/route-runtime/params"
	"github.com/routebind/route-runtime/response"
)

// Status is a backend's answer: the result slot is authoritative either way,
// holding the payload on Ok and (for JSON slots) the structured error fields
// on Error.
type Status int

const (
	StatusOK Status = iota
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Backend is the routing engine proper. Implementations must be safe for
// concurrent calls once constructed; all graph machinery lives behind this
// interface and is opaque to the binding.
type Backend interface {
	Route(p *params.Route, result *response.Result) Status
	Table(p *params.Table, result *response.Result) Status
	Nearest(p *params.Nearest, result *response.Result) Status
	Match(p *params.Match, result *response.Result) Status
	Trip(p *params.Trip, result *response.Result) Status
	Tile(p *params.Tile, result *response.Result) Status

	Close() error
}

// BackendFactory constructs a backend from a validated config.
type BackendFactory func(cfg *Config) (Backend, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[Algorithm]BackendFactory)
)

// Register installs the backend factory for an algorithm. Registering again
// replaces the previous factory; passing nil panics.
func Register(alg Algorithm, factory BackendFactory) {
	if factory == nil {
		panic("engine: Register with nil factory")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[alg] = factory
}

func factoryFor(alg Algorithm) (BackendFactory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[alg]
	return f, ok
}
