// Package engine wires parameter builders, backends and responses together.
//
// A Backend is the opaque collaborator that owns all routing machinery: five
// request verbs plus tile fetch, each filling a caller-allocated result slot
// and answering with a Status. Backends register per algorithm the way
// database/sql drivers do; this package never inspects how a backend
// computes anything.
//
// Engine is the boundary adapter in front of a backend. Every verb performs
// the same sequence: validate the parameter builder, enforce configured
// limits, allocate the result slot for the requested format, invoke the
// backend with panics contained, and on failure extract the structured
// code/message pair from the result, falling back to a verb-named generic
// error when the payload is unreadable.
package engine
