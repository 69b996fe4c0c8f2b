package types

// ParamKind is the tagged variant describing the expected shape of a check
// parameter. Validation compares declared and observed kinds explicitly
// rather than relying on runtime type introspection.
type ParamKind int

const (
	KindInvalid ParamKind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindList
	KindMap
)

// String implements the Stringer interface for ParamKind
func (k ParamKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "invalid"
	}
}

// ParamSchema maps parameter names to the kind a base check requires
type ParamSchema map[string]ParamKind

// KindOf classifies a YAML-decoded value. Values outside the YAML scalar and
// container set report KindInvalid.
//
// Kinds match strictly: a YAML integer satisfies only KindInt, never
// KindFloat. Checks that accept either declare KindFloat and document that
// callers must write a float literal.
func KindOf(v any) ParamKind {
	switch v.(type) {
	case string:
		return KindString
	case int, int64:
		return KindInt
	case float64:
		return KindFloat
	case bool:
		return KindBool
	case []any:
		return KindList
	case map[string]any:
		return KindMap
	default:
		return KindInvalid
	}
}
