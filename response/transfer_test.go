package response

import (
	"bytes"
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/routebind/route-runtime/errors"
)

func finishedBuilder(t *testing.T) *flatbuffers.Builder {
	t.Helper()
	b := flatbuffers.NewBuilder(0)
	off := b.CreateString("flatbuffer payload")
	b.Finish(off)
	return b
}

func TestTakeBuffer(t *testing.T) {
	b := finishedBuilder(t)
	want := b.FinishedBytes()
	wantLen := len(want)
	head := b.Head()

	got, err := TakeBuffer(b)
	if err != nil {
		t.Fatalf("TakeBuffer: %v", err)
	}
	if len(got) != wantLen {
		t.Errorf("len = %d, want exact logical length %d", len(got), wantLen)
	}
	if !bytes.Equal(got, want) {
		t.Error("content mismatch")
	}

	// A builder grows from the end, so the logical region is offset and the
	// transfer must have copied into a fresh allocation.
	if head > 0 && &got[0] == &want[0] {
		t.Error("offset region was aliased, not copied")
	}
}

func TestTakeBuffer_Unfinished(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	b.CreateString("never finished")

	_, err := TakeBuffer(b)
	wantCode(t, err, errors.CodeException)
}

func TestTakeBuffer_Nil(t *testing.T) {
	_, err := TakeBuffer(nil)
	wantCode(t, err, errors.CodeInvalidArgument)
}

func TestResponse_Flatbuffer(t *testing.T) {
	r := NewFlatBuffersResult()
	off := r.Builder().CreateString("response payload")
	r.Builder().Finish(off)

	data, err := New(r).Flatbuffer()
	if err != nil {
		t.Fatalf("Flatbuffer(): %v", err)
	}
	if len(data) == 0 {
		t.Error("empty transfer")
	}

	_, err = New(NewJSONResult()).Flatbuffer()
	wantCode(t, err, errors.CodeInvalidFormat)
}
