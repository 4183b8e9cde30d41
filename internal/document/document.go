package document

// Kind identifies which JSON value a Value holds.
type Kind int

const (
	// KindNull is the JSON null value. The zero Value is null.
	KindNull Kind = iota
	// KindBool is a JSON boolean.
	KindBool
	// KindNumber is a JSON number, stored as its raw text.
	KindNumber
	// KindString is a JSON string.
	KindString
	// KindObject is a JSON object with preserved key order.
	KindObject
	// KindArray is a JSON array.
	KindArray
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "invalid"
	}
}

// Value is one JSON-compatible value: null, bool, number, string, object or
// array. Objects preserve key order so a loaded config file can be written
// back without churn. Numbers keep their raw text so "1.0" survives a
// round trip.
//
// The zero Value is JSON null.
type Value struct {
	kind Kind
	b    bool
	num  string
	str  string
	obj  *fields
	arr  []Value
}

// fields is the ordered backing store of an object value.
type fields struct {
	keys []string
	vals map[string]Value
}

// Null returns the JSON null value.
func Null() Value {
	return Value{}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Number returns a number value holding the given raw JSON number text.
// The text is not validated; callers are expected to pass well-formed
// number literals (Parse always does).
func Number(text string) Value {
	return Value{kind: KindNumber, num: text}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// NewObject returns an empty object value.
func NewObject() Value {
	return Value{kind: KindObject, obj: &fields{vals: make(map[string]Value)}}
}

// NewArray returns an array value holding the given items.
func NewArray(items ...Value) Value {
	return Value{kind: KindArray, arr: items}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsObject reports whether the value is a JSON object.
func (v Value) IsObject() bool { return v.kind == KindObject }

// IsString reports whether the value is a JSON string.
func (v Value) IsString() bool { return v.kind == KindString }

// Str returns the string contents, or "" if the value is not a string.
func (v Value) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// StrOr returns the string contents, or def if the value is not a string
// or is empty.
func (v Value) StrOr(def string) string {
	if v.kind != KindString || v.str == "" {
		return def
	}
	return v.str
}

// BoolVal returns the boolean contents, or false if the value is not a bool.
func (v Value) BoolVal() bool {
	return v.kind == KindBool && v.b
}

// NumberText returns the raw number text, or "" if the value is not a number.
func (v Value) NumberText() string {
	if v.kind != KindNumber {
		return ""
	}
	return v.num
}

// Get returns the member with the given key. The second result is false if
// the value is not an object or the key is absent.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	val, ok := v.obj.vals[key]
	return val, ok
}

// Has reports whether the object has the given key.
func (v Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Set inserts or replaces a member. New keys are appended in insertion
// order; replacing an existing key keeps its position. Set panics if the
// value is not an object, matching the misuse semantics of indexing a
// non-map.
func (v Value) Set(key string, member Value) {
	if v.kind != KindObject {
		panic("document: Set on non-object value")
	}
	if _, exists := v.obj.vals[key]; !exists {
		v.obj.keys = append(v.obj.keys, key)
	}
	v.obj.vals[key] = member
}

// Delete removes a member if present.
func (v Value) Delete(key string) {
	if v.kind != KindObject {
		return
	}
	if _, exists := v.obj.vals[key]; !exists {
		return
	}
	delete(v.obj.vals, key)
	for i, k := range v.obj.keys {
		if k == key {
			v.obj.keys = append(v.obj.keys[:i], v.obj.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the object's keys in insertion order. The returned slice is
// a copy. Returns nil for non-objects.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, len(v.obj.keys))
	copy(keys, v.obj.keys)
	return keys
}

// Len returns the number of members for objects, the number of items for
// arrays, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindObject:
		return len(v.obj.keys)
	case KindArray:
		return len(v.arr)
	default:
		return 0
	}
}

// Items returns the array's items. The returned slice is shared; callers
// that need an independent copy should Clone first. Returns nil for
// non-arrays.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Clone returns a deep copy of the value.
func (v Value) Clone() Value {
	switch v.kind {
	case KindObject:
		out := NewObject()
		for _, k := range v.obj.keys {
			out.Set(k, v.obj.vals[k].Clone())
		}
		return out
	case KindArray:
		items := make([]Value, len(v.arr))
		for i, item := range v.arr {
			items[i] = item.Clone()
		}
		return NewArray(items...)
	default:
		return v
	}
}

// Equal reports whether two values are deeply equal. Objects compare both
// membership and key order; numbers compare by raw text.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.num == other.num
	case KindString:
		return v.str == other.str
	case KindObject:
		if len(v.obj.keys) != len(other.obj.keys) {
			return false
		}
		for i, k := range v.obj.keys {
			if other.obj.keys[i] != k {
				return false
			}
			if !v.obj.vals[k].Equal(other.obj.vals[k]) {
				return false
			}
		}
		return true
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Interface converts the value to native Go types (map[string]any, []any,
// string, bool, json.Number-style string for numbers, nil). Object key
// order is lost; this is intended for display encoders like YAML, not for
// persisting documents.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindObject:
		m := make(map[string]any, len(v.obj.keys))
		for _, k := range v.obj.keys {
			m[k] = v.obj.vals[k].Interface()
		}
		return m
	case KindArray:
		items := make([]any, len(v.arr))
		for i, item := range v.arr {
			items[i] = item.Interface()
		}
		return items
	default:
		return nil
	}
}
