package response

import (
	"github.com/routebind/route-runtime/errors"
	"github.com/routebind/route-runtime/jsonval"
)

// Response wraps a successfully populated result. It is immutable; accessors
// only read.
type Response struct {
	result *Result
}

// New wraps a populated result slot.
func New(result *Result) *Response {
	return &Response{result: result}
}

// Kind returns the payload variant.
func (r *Response) Kind() Kind {
	if r == nil {
		return KindInvalid
	}
	return r.result.Kind()
}

// JSON renders a JSON-shaped response to compact text.
func (r *Response) JSON() (string, error) {
	if r == nil || r.result == nil {
		return "", errors.InvalidArgument("nil response")
	}
	if r.result.kind != KindJSON {
		return "", errors.InvalidFormat("response is %s, not json", r.result.kind)
	}
	return jsonval.Render(r.result.obj), nil
}

// Flatbuffer returns the finished FlatBuffer byte region, copying when the
// region is offset within the builder's allocation. The returned length is
// always the exact logical length.
func (r *Response) Flatbuffer() ([]byte, error) {
	if r == nil || r.result == nil {
		return nil, errors.InvalidArgument("nil response")
	}
	if r.result.kind != KindFlatBuffers {
		return nil, errors.InvalidFormat("response is %s, not flatbuffers", r.result.kind)
	}
	return TakeBuffer(r.result.builder)
}

// Bytes returns the raw payload of a bytes response (tile data).
func (r *Response) Bytes() ([]byte, error) {
	if r == nil || r.result == nil {
		return nil, errors.InvalidArgument("nil response")
	}
	if r.result.kind != KindBytes {
		return nil, errors.InvalidFormat("response is %s, not bytes", r.result.kind)
	}
	return r.result.raw, nil
}

func (r *Response) jsonObject() (*jsonval.Object, error) {
	if r == nil || r.result == nil {
		return nil, errors.InvalidArgument("nil response")
	}
	if r.result.kind != KindJSON || r.result.obj == nil {
		return nil, errors.InvalidFormat("response is %s, not json", r.result.Kind())
	}
	return r.result.obj, nil
}
