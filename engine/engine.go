package engine

import (
	"go.uber.org/zap"

	"github.com/routebind/route-runtime/errors"
	"github.com/routebind/route-runtime/params"
	"github.com/routebind/route-runtime/response"
)

// Engine is the boundary adapter in front of a backend. It is immutable
// after construction; every verb is a read-only query.
type Engine struct {
	cfg     Config
	backend Backend
	log     *zap.Logger
}

// New constructs an engine from a config snapshot. The config is copied and
// may be reused or destroyed by the caller afterwards.
func New(cfg *Config) (eng *Engine, err error) {
	defer errors.Recover(&err)

	if cfg == nil {
		return nil, errors.InvalidArgument("nil config")
	}
	if err := cfg.Valid(); err != nil {
		return nil, err
	}

	factory, ok := factoryFor(cfg.Algorithm)
	if !ok {
		return nil, errors.InvalidAlgorithm(cfg.Algorithm)
	}

	backend, err := factory(cfg)
	if err != nil {
		if coded, ok := err.(*errors.Error); ok {
			return nil, coded
		}
		return nil, errors.InvalidDataset("backend construction failed", err)
	}

	log := Logger()
	log.Info("engine ready",
		zap.Stringer("algorithm", cfg.Algorithm),
		zap.String("storage", cfg.StoragePath),
		zap.Bool("shared_memory", cfg.UseSharedMemory),
		zap.Bool("mmap", cfg.UseMmap),
	)

	return &Engine{cfg: *cfg, backend: backend, log: log}, nil
}

// Config returns a copy of the construction-time config.
func (e *Engine) Config() Config {
	if e == nil {
		return Config{}
	}
	return e.cfg
}

// Close releases the backend. The engine must not be used afterwards.
func (e *Engine) Close() error {
	if e == nil || e.backend == nil {
		return nil
	}
	return e.backend.Close()
}

func (e *Engine) ready() error {
	if e == nil || e.backend == nil {
		return errors.InvalidArgument("engine not initialized")
	}
	return nil
}

func checkLocationLimit(verb string, count, limit int) error {
	if limit >= 0 && count > limit {
		return errors.TooBig(verb, count, limit)
	}
	return nil
}

// finish turns a backend status into a response or an extracted error.
func (e *Engine) finish(verb string, result *response.Result, st Status) (*response.Response, error) {
	if st != StatusOK {
		err := extractError(verb, result)
		e.log.Debug("request failed",
			zap.String("verb", verb),
			zap.String("code", string(errors.CodeOf(err))),
		)
		return nil, err
	}
	return response.New(result), nil
}

// extractError reads the structured code/message pair from a failed result.
// When the payload yields no readable pair the verb-named generic error is
// returned instead; diagnostic fidelity first, but never a secondary
// failure.
func extractError(verb string, result *response.Result) error {
	if code, message, ok := result.ErrorFields(); ok {
		return errors.FromPayload(code, message)
	}
	return errors.Generic(verb)
}

// Route computes routes through the coordinates in order.
func (e *Engine) Route(p *params.Route) (resp *response.Response, err error) {
	defer errors.Recover(&err)

	if err := e.ready(); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.InvalidArgument("nil route parameters")
	}
	if err := p.Valid(); err != nil {
		return nil, err
	}
	if err := checkLocationLimit("Route", p.CoordinateCount(), e.cfg.MaxLocationsViaroute); err != nil {
		return nil, err
	}
	if limit := e.cfg.MaxAlternatives; limit >= 0 && p.Alternatives() > limit {
		return nil, errors.New(errors.CodeTooBig, "route request with %d alternatives exceeds limit of %d", p.Alternatives(), limit)
	}

	result, err := response.NewResult(p.Format())
	if err != nil {
		return nil, err
	}
	return e.finish("Route", result, e.backend.Route(p, result))
}

// Table computes a duration/distance matrix between coordinates.
func (e *Engine) Table(p *params.Table) (resp *response.Response, err error) {
	defer errors.Recover(&err)

	if err := e.ready(); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.InvalidArgument("nil table parameters")
	}
	if err := p.Valid(); err != nil {
		return nil, err
	}
	if err := checkLocationLimit("Table", p.CoordinateCount(), e.cfg.MaxLocationsDistanceTable); err != nil {
		return nil, err
	}

	result, err := response.NewResult(p.Format())
	if err != nil {
		return nil, err
	}
	return e.finish("Table", result, e.backend.Table(p, result))
}

// Nearest snaps one coordinate onto the road network.
func (e *Engine) Nearest(p *params.Nearest) (resp *response.Response, err error) {
	defer errors.Recover(&err)

	if err := e.ready(); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.InvalidArgument("nil nearest parameters")
	}
	if err := p.Valid(); err != nil {
		return nil, err
	}
	if limit := e.cfg.MaxResultsNearest; limit >= 0 && p.NumberOfResults() > limit {
		return nil, errors.New(errors.CodeTooBig, "nearest request with %d results exceeds limit of %d", p.NumberOfResults(), limit)
	}

	result, err := response.NewResult(p.Format())
	if err != nil {
		return nil, err
	}
	return e.finish("Nearest", result, e.backend.Nearest(p, result))
}

// Match snaps a noisy GPS trace onto the road network.
func (e *Engine) Match(p *params.Match) (resp *response.Response, err error) {
	defer errors.Recover(&err)

	if err := e.ready(); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.InvalidArgument("nil match parameters")
	}
	if err := p.Valid(); err != nil {
		return nil, err
	}
	if err := checkLocationLimit("Match", p.CoordinateCount(), e.cfg.MaxLocationsMapMatching); err != nil {
		return nil, err
	}

	result, err := response.NewResult(p.Format())
	if err != nil {
		return nil, err
	}
	return e.finish("Match", result, e.backend.Match(p, result))
}

// Trip solves the traveling-salesman ordering of the coordinates.
func (e *Engine) Trip(p *params.Trip) (resp *response.Response, err error) {
	defer errors.Recover(&err)

	if err := e.ready(); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.InvalidArgument("nil trip parameters")
	}
	if err := p.Valid(); err != nil {
		return nil, err
	}
	if err := checkLocationLimit("Trip", p.CoordinateCount(), e.cfg.MaxLocationsTrip); err != nil {
		return nil, err
	}

	result, err := response.NewResult(p.Format())
	if err != nil {
		return nil, err
	}
	return e.finish("Trip", result, e.backend.Trip(p, result))
}

// Tile fetches one debug vector tile as raw bytes.
func (e *Engine) Tile(p *params.Tile) (resp *response.Response, err error) {
	defer errors.Recover(&err)

	if err := e.ready(); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.InvalidArgument("nil tile parameters")
	}
	if err := p.Valid(); err != nil {
		return nil, err
	}

	result := response.NewBytesResult()
	return e.finish("Tile", result, e.backend.Tile(p, result))
}
