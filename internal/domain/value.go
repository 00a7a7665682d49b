package domain

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Kind identifies which variant a Value holds
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindObject
)

// String returns the JSON name of the kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Member is a single key/value entry of an object, in document order
type Member struct {
	Key   string
	Value Value
}

// Value is one decoded JSON value.
// Objects keep their members in the order they appeared in the source line.
type Value struct {
	Kind   Kind
	Bool   bool
	Number string // raw literal, e.g. "3.02e-5"
	Text   string
	List   []Value
	object *orderedmap.OrderedMap[string, Value]
}

// NullValue returns a JSON null
func NullValue() Value {
	return Value{Kind: KindNull}
}

// BoolValue returns a JSON boolean
func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// NumberValue returns a JSON number holding its raw literal
func NumberValue(literal string) Value {
	return Value{Kind: KindNumber, Number: literal}
}

// StringValue returns a JSON string
func StringValue(s string) Value {
	return Value{Kind: KindString, Text: s}
}

// ListValue returns a JSON array of the given items
func ListValue(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Kind: KindList, List: items}
}

// ObjectValue returns a JSON object with members in the given order.
// A repeated key keeps its first position and takes the last value.
func ObjectValue(members ...Member) Value {
	om := orderedmap.New[string, Value](len(members))
	for _, m := range members {
		om.Set(m.Key, m.Value)
	}
	return Value{Kind: KindObject, object: om}
}

// Len returns the number of members of an object or items of a list
func (v Value) Len() int {
	switch v.Kind {
	case KindList:
		return len(v.List)
	case KindObject:
		if v.object == nil {
			return 0
		}
		return v.object.Len()
	default:
		return 0
	}
}

// Members returns the object's members in document order.
// It returns nil for every other kind.
func (v Value) Members() []Member {
	if v.Kind != KindObject || v.object == nil {
		return nil
	}
	members := make([]Member, 0, v.object.Len())
	for pair := v.object.Oldest(); pair != nil; pair = pair.Next() {
		members = append(members, Member{Key: pair.Key, Value: pair.Value})
	}
	return members
}

// Get returns the member stored under key
func (v Value) Get(key string) (Value, bool) {
	if v.Kind != KindObject || v.object == nil {
		return Value{}, false
	}
	return v.object.Get(key)
}

// IsEmpty reports whether the value counts as unset: null, "", [] or {}.
// Booleans and numbers are never empty, including false and 0.
func (v Value) IsEmpty() bool {
	switch v.Kind {
	case KindNull:
		return true
	case KindString:
		return v.Text == ""
	case KindList, KindObject:
		return v.Len() == 0
	default:
		return false
	}
}
