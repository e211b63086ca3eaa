package main

/*
#include <stdint.h>
*/
import "C"

import (
	"github.com/routebind/route-runtime/errors"
	"github.com/routebind/route-runtime/resource"
)

func getError(h C.uint64_t) (*errors.Error, bool) {
	v, ok := table.GetTyped(resource.Handle(h), typeError)
	if !ok {
		return nil, false
	}
	return v.(*errors.Error), true
}

//export routec_error_code
func routec_error_code(h C.uint64_t) *C.char {
	e, ok := getError(h)
	if !ok {
		return nil
	}
	return C.CString(string(e.Code))
}

//export routec_error_message
func routec_error_message(h C.uint64_t) *C.char {
	e, ok := getError(h)
	if !ok {
		return nil
	}
	return C.CString(e.Message)
}

//export routec_error_destruct
func routec_error_destruct(h C.uint64_t) {
	table.Remove(resource.Handle(h))
}
