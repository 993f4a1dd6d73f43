package fieldtype

import (
	"errors"
	"fmt"

	"github.com/hurou927/table-schema-gen/internal/diagnostic"
	"github.com/hurou927/table-schema-gen/internal/schema"
)

// ErrMissingResult is returned for computed fields without a result descriptor.
var ErrMissingResult = errors.New("fieldtype: computed field has no result type")

// Mapper maps remote fields to specs, reporting unsupported types to a sink.
type Mapper struct {
	table string
	sink  diagnostic.Sink
}

// NewMapper creates a Mapper. table is only used to label warnings.
func NewMapper(table string, sink diagnostic.Sink) *Mapper {
	if sink == nil {
		sink = diagnostic.Discard
	}
	return &Mapper{table: table, sink: sink}
}

// Map returns the spec for f, or nil when its type is unsupported.
func (m *Mapper) Map(f schema.Field) (*Spec, error) {
	spec, err := m.resolve(f, Classify(f.Descriptor()))
	if err != nil {
		return nil, fmt.Errorf("field %q (%s): %w", f.Name, f.ID, err)
	}
	return spec, nil
}

func (m *Mapper) resolve(f schema.Field, v Variant) (*Spec, error) {
	switch v := v.(type) {
	case Scalar:
		return v.Spec.Clone(), nil

	case Computed:
		if v.Result == nil || v.Result.Type == "" {
			return nil, ErrMissingResult
		}
		inner, err := m.resolve(f, Classify(*v.Result))
		if err != nil || inner == nil {
			return nil, err
		}
		if v.Multiple && inner.Kind != KindArray {
			inner.Optional = false
			inner = &Spec{Kind: KindArray, Inner: inner}
		}
		inner.Optional = true
		return inner, nil

	case Unsupported:
		m.sink.Warn(diagnostic.CodeUnsupportedType,
			fmt.Sprintf("field type %q is not supported, excluding it from the schema", v.Type),
			m.table, f.Name)
		return nil, nil

	default:
		return nil, fmt.Errorf("unhandled variant %T", v)
	}
}
