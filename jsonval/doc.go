// Package jsonval mirrors the engine's tagged-union JSON value model and
// renders it to compact JSON text.
//
// The value set is fixed: String, Number, Object, Array, True, False, Null.
// Object preserves insertion order of keys; the renderer emits keys in
// exactly that order and makes no further ordering promise.
//
// Rendering is byte-oriented. Strings are escaped per standard JSON rules
// for quote, backslash and the named control escapes; remaining bytes below
// 0x20 become \u00XX. Bytes at or above 0x20 pass through verbatim: the
// renderer neither validates UTF-8 nor escapes non-ASCII. Non-finite numbers
// render as the literal null since JSON cannot represent them.
package jsonval
