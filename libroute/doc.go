//go:build cgo

// Package main implements libroute, the C ABI over the route-runtime
// binding. Every exported function carries the routec_ prefix.
//
// Build a shared library:
//
//	go build --buildmode=c-shared -o libroute.so ./libroute
//
// Build a static archive:
//
//	go build --buildmode=c-archive -o libroute.a ./libroute
//
// Both modes emit a libroute.h with the C declarations.
//
// # Handles
//
// Foreign callers address every object (config, engine, parameter builders,
// responses, errors, blobs) through a uint64 handle. Handle 0 is never
// valid. Handles are never reused, so a stale or double-freed handle fails
// with InvalidArgument instead of touching another caller's object. Every
// routec_*_construct has exactly one matching routec_*_destruct; a missing
// destruct leaks, a double destruct reports an error on the next use.
//
// # Errors
//
// Fallible functions take a uint64_t* error out-parameter. The caller
// pre-initializes it to 0; on failure it receives an error handle whose
// code and message are readable through routec_error_code and
// routec_error_message, and which the caller destructs with
// routec_error_destruct. On success the out-parameter is left untouched.
// Functions that produce a handle return 0 on failure. No panic ever
// crosses the C boundary.
//
// # Blobs
//
// Rendered JSON, FlatBuffer payloads and raw tile bytes are copied into
// C-allocated memory and exposed as blob handles: routec_blob_data,
// routec_blob_size, routec_blob_destruct. The blob owns its allocation;
// destructing the blob frees it. Strings returned directly (error codes,
// version, waypoint names) are C-allocated copies freed with
// routec_string_destruct.
package main
