// Package errors provides the boundary error model for the route-runtime
// library.
//
// Every failure crossing a public entry point is an *Error holding a fixed
// string Code and a human-readable Message. Codes detected by the binding
// itself (InvalidArgument, InvalidCoordinateIndex, ...) are distinct from
// codes passed through from the engine's own error payloads (NoRoute,
// NoSegment, ...), which are preserved verbatim.
//
// Use the convenience constructors for common patterns:
//
//	err := errors.InvalidArgument("radius must be non-negative, got %f", r)
//	err := errors.InvalidCoordinateIndex(7, 3)
//	err := errors.FromPayload("NoRoute", "Impossible route between points")
//
// Recover converts a panic into an Exception-coded error; deferring it at a
// public entry point guarantees nothing unwinds past the boundary:
//
//	func (e *Engine) Route(p *params.Route) (resp *response.Response, err error) {
//	    defer errors.Recover(&err)
//	    ...
//	}
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
