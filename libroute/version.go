package main

/*
#include <stdint.h>
#include <stdbool.h>
*/
import "C"

import (
	routeruntime "github.com/routebind/route-runtime"
)

//export routec_version
func routec_version() *C.char {
	return C.CString(routeruntime.Version())
}

//export routec_version_major
func routec_version_major() C.longlong {
	return C.longlong(routeruntime.VersionMajor())
}

//export routec_version_minor
func routec_version_minor() C.longlong {
	return C.longlong(routeruntime.VersionMinor())
}

//export routec_version_patch
func routec_version_patch() C.longlong {
	return C.longlong(routeruntime.VersionPatch())
}

//export routec_is_abi_compatible
func routec_is_abi_compatible(major C.longlong) C.bool {
	return C.bool(int64(major) == routeruntime.VersionMajor())
}
