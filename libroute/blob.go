package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/routebind/route-runtime/resource"
)

// blob owns a C allocation holding a payload copied out of Go memory. The
// pointer stays valid until the blob handle is destructed; no Go pointer
// ever crosses the boundary.
type blob struct {
	ptr  unsafe.Pointer
	size int
}

func newBlob(data []byte) *blob {
	if len(data) == 0 {
		return &blob{}
	}
	return &blob{ptr: C.CBytes(data), size: len(data)}
}

// Drop frees the C allocation. Called by the handle table on removal.
func (b *blob) Drop() {
	if b.ptr != nil {
		C.free(b.ptr)
		b.ptr = nil
		b.size = 0
	}
}

func getBlob(h C.uint64_t) (*blob, error) {
	v, ok := table.GetTyped(resource.Handle(h), typeBlob)
	if !ok {
		return nil, badHandle(h, "blob")
	}
	return v.(*blob), nil
}

//export routec_blob_data
func routec_blob_data(h C.uint64_t) unsafe.Pointer {
	b, err := getBlob(h)
	if err != nil {
		return nil
	}
	return b.ptr
}

//export routec_blob_size
func routec_blob_size(h C.uint64_t) C.size_t {
	b, err := getBlob(h)
	if err != nil {
		return 0
	}
	return C.size_t(b.size)
}

//export routec_blob_destruct
func routec_blob_destruct(h C.uint64_t) {
	table.Remove(resource.Handle(h))
}

//export routec_string_destruct
func routec_string_destruct(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}
