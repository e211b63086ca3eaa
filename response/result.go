package response

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/routebind/route-runtime/errors"
	"github.com/routebind/route-runtime/jsonval"
	"github.com/routebind/route-runtime/params"
)

// Kind discriminates the result variants.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindJSON
	KindFlatBuffers
	KindBytes
)

func (k Kind) String() string {
	switch k {
	case KindJSON:
		return "json"
	case KindFlatBuffers:
		return "flatbuffers"
	case KindBytes:
		return "bytes"
	default:
		return "invalid"
	}
}

// Result is the mutable slot a backend fills in. Exactly one variant is
// live, fixed at allocation time.
type Result struct {
	kind    Kind
	obj     *jsonval.Object
	builder *flatbuffers.Builder
	raw     []byte
}

// NewJSONResult allocates a result slot holding an empty JSON object.
func NewJSONResult() *Result {
	return &Result{kind: KindJSON, obj: jsonval.NewObject()}
}

// NewFlatBuffersResult allocates a result slot holding a fresh FlatBuffer
// builder.
func NewFlatBuffersResult() *Result {
	return &Result{kind: KindFlatBuffers, builder: flatbuffers.NewBuilder(1024)}
}

// NewBytesResult allocates a result slot for a raw byte payload.
func NewBytesResult() *Result {
	return &Result{kind: KindBytes}
}

// NewResult allocates the slot matching a requested output format.
func NewResult(f params.Format) (*Result, error) {
	switch f {
	case params.FormatJSON:
		return NewJSONResult(), nil
	case params.FormatFlatBuffers:
		return NewFlatBuffersResult(), nil
	default:
		return nil, errors.InvalidFormat("unrecognized output format %d", f)
	}
}

// Kind returns the live variant.
func (r *Result) Kind() Kind {
	if r == nil {
		return KindInvalid
	}
	return r.kind
}

// Object returns the JSON object for a KindJSON result, nil otherwise.
func (r *Result) Object() *jsonval.Object {
	if r == nil {
		return nil
	}
	return r.obj
}

// Builder returns the FlatBuffer builder for a KindFlatBuffers result, nil
// otherwise.
func (r *Result) Builder() *flatbuffers.Builder {
	if r == nil {
		return nil
	}
	return r.builder
}

// SetBytes stores the raw payload of a KindBytes result.
func (r *Result) SetBytes(data []byte) error {
	if r == nil {
		return errors.InvalidArgument("nil result")
	}
	if r.kind != KindBytes {
		return errors.InvalidFormat("result slot is %s, not bytes", r.kind)
	}
	r.raw = data
	return nil
}

// Bytes returns the raw payload of a KindBytes result.
func (r *Result) Bytes() []byte {
	if r == nil {
		return nil
	}
	return r.raw
}

// ErrorFields extracts the structured code/message pair the engine embeds in
// a failed JSON result. ok is false when the result is not JSON-shaped or
// the code field is absent or mistyped; message may legitimately be empty.
func (r *Result) ErrorFields() (code, message string, ok bool) {
	if r == nil || r.kind != KindJSON || r.obj == nil {
		return "", "", false
	}
	code, ok = r.obj.GetString("code")
	if !ok || code == "" {
		return "", "", false
	}
	message, _ = r.obj.GetString("message")
	return code, message, true
}
