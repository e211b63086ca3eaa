package response

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/routebind/route-runtime/errors"
)

// TakeBuffer extracts the finished byte region from a FlatBuffer builder.
//
// The builder allocates from the end of its backing array, so the finished
// region usually starts at an offset into the allocation. Callers get a
// uniform contract either way: a slice whose length is exactly the logical
// region length. The offset case copies; the aligned case aliases the
// builder's backing array, after which the builder must not be reused.
func TakeBuffer(b *flatbuffers.Builder) (data []byte, err error) {
	if b == nil {
		return nil, errors.InvalidArgument("nil flatbuffer builder")
	}
	// FinishedBytes panics on an unfinished builder.
	defer errors.Recover(&err)

	logical := b.FinishedBytes()
	if b.Head() == 0 {
		return logical, nil
	}

	out := make([]byte, len(logical))
	copy(out, logical)
	return out, nil
}
