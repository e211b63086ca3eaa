// Package resource provides the handle table behind the C boundary.
//
// Foreign callers cannot hold Go pointers, so every object that crosses the
// boundary (configs, parameter builders, engines, responses, errors, blobs)
// lives in a table and is addressed by an integer handle.
//
// # Handle Table
//
// The Table maps integer handles to Go values:
//
//	table := resource.NewTable()
//
//	// Insert a value, get a handle
//	handle := table.Insert(typeID, myValue)
//
//	// Retrieve value by handle
//	value, ok := table.Get(handle)
//
//	// Remove and get value (for destruction)
//	value, ok := table.Remove(handle)
//
// # Type Safety
//
// Handles are typed - each resource type gets a unique type ID:
//
//	const EngineTypeID = 1
//	const ResponseTypeID = 2
//
//	engineHandle := table.Insert(EngineTypeID, eng)
//
//	// Type-checked retrieval
//	value, ok := table.GetTyped(engineHandle, EngineTypeID)   // ok
//	value, ok := table.GetTyped(engineHandle, ResponseTypeID) // !ok
//
// # Handle Reuse
//
// Handles are never reused. A destroyed handle stays invalid for the life of
// the table, so a foreign caller that double-frees or uses a stale handle
// gets a clean lookup failure instead of another caller's object.
//
// # Memory Management
//
// Resources are not garbage collected while tabled. The foreign caller must
// destroy every handle it receives; values implementing Dropper have their
// Drop method called on removal. Call table.Close() to release everything at
// library shutdown.
package resource
