package jsonval

// Value is the closed set of JSON values the engine produces. Exactly the
// seven types in this package implement it.
type Value interface {
	isValue()
}

// String holds a JSON string. The bytes are not required to be valid UTF-8;
// they are rendered as-is apart from mandatory escapes.
type String struct {
	Value string
}

// Number holds a JSON number as a float64, matching the engine's
// double-precision representation.
type Number struct {
	Value float64
}

// Object is an insertion-ordered string-to-Value map.
type Object struct {
	keys   []string
	values map[string]Value
}

// Array holds a JSON array.
type Array struct {
	Values []Value
}

// True is the JSON literal true.
type True struct{}

// False is the JSON literal false.
type False struct{}

// Null is the JSON literal null.
type Null struct{}

func (String) isValue()  {}
func (Number) isValue()  {}
func (*Object) isValue() {}
func (*Array) isValue()  {}
func (True) isValue()    {}
func (False) isValue()   {}
func (Null) isValue()    {}

// Bool returns the Value for a Go bool.
func Bool(b bool) Value {
	if b {
		return True{}
	}
	return False{}
}

// NewObject creates an empty ordered object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Set stores v under key. A new key is appended to the iteration order; an
// existing key keeps its position.
func (o *Object) Set(key string, v Value) {
	if o.values == nil {
		o.values = make(map[string]Value)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the keys in insertion order. The slice is shared; callers
// must not mutate it.
func (o *Object) Keys() []string {
	return o.keys
}

// GetString returns the string stored under key, or ok=false when the key is
// absent or holds a different type.
func (o *Object) GetString(key string) (string, bool) {
	v, ok := o.values[key]
	if !ok {
		return "", false
	}
	s, ok := v.(String)
	if !ok {
		return "", false
	}
	return s.Value, true
}

// GetNumber returns the number stored under key, or ok=false when the key is
// absent or holds a different type.
func (o *Object) GetNumber(key string) (float64, bool) {
	v, ok := o.values[key]
	if !ok {
		return 0, false
	}
	n, ok := v.(Number)
	if !ok {
		return 0, false
	}
	return n.Value, true
}

// GetObject returns the object stored under key, or ok=false when the key is
// absent or holds a different type.
func (o *Object) GetObject(key string) (*Object, bool) {
	v, ok := o.values[key]
	if !ok {
		return nil, false
	}
	obj, ok := v.(*Object)
	return obj, ok
}

// GetArray returns the array stored under key, or ok=false when the key is
// absent or holds a different type.
func (o *Object) GetArray(key string) (*Array, bool) {
	v, ok := o.values[key]
	if !ok {
		return nil, false
	}
	arr, ok := v.(*Array)
	return arr, ok
}
