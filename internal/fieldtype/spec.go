package fieldtype

import "github.com/hurou927/table-schema-gen/internal/common"

// Kind is the value shape a field must satisfy.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBoolean
	KindRecord
	KindArray
	KindObject
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindRecord:
		return "record"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return common.UnknownStr
	}
}

// Spec describes the shape of a field value, independent of any output syntax.
type Spec struct {
	Kind     Kind
	Optional bool
	// Inner is the element spec of an array.
	Inner *Spec
}

// Clone returns a deep copy of s.
func (s *Spec) Clone() *Spec {
	if s == nil {
		return nil
	}
	out := *s
	out.Inner = s.Inner.Clone()
	return &out
}

// String renders the spec compactly, e.g. "array<object>?".
func (s *Spec) String() string {
	if s == nil {
		return "<unsupported>"
	}
	out := s.Kind.String()
	if s.Kind == KindArray && s.Inner != nil {
		out += "<" + s.Inner.String() + ">"
	}
	if s.Optional {
		out += "?"
	}
	return out
}

func scalarOf(k Kind) Spec {
	return Spec{Kind: k, Optional: true}
}

func arrayOf(k Kind) Spec {
	inner := Spec{Kind: k}
	return Spec{Kind: KindArray, Optional: true, Inner: &inner}
}
