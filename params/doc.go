// Package params provides the per-verb parameter builders consumed by the
// engine dispatch.
//
// Every builder embeds Base, which carries the coordinate list and the
// per-coordinate optional attributes (radius, bearing, approach, hint token).
// Optional attributes use a negative sentinel for "unset" and are resized
// lazily to the coordinate count, so attributes can be set in any order after
// their coordinate exists.
//
// Setters validate eagerly and never mutate state on failure: a nil receiver
// or a bad value reports InvalidArgument, an index at or beyond the current
// coordinate count reports InvalidCoordinateIndex. Enumerated options are
// translated through explicit switches; an unrecognized value is an error,
// never a silent default.
//
// Builders are not consumed by a request. The same builder may be passed to
// any number of calls and destroyed whenever the caller is done with it.
package params
