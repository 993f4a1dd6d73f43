// Package model builds the per-table generation model: sanitized
// identifiers, value specs, link metadata and required-field overrides.
package model

import (
	"fmt"

	"github.com/hurou927/table-schema-gen/internal/diagnostic"
	"github.com/hurou927/table-schema-gen/internal/fieldtype"
	"github.com/hurou927/table-schema-gen/internal/ident"
	"github.com/hurou927/table-schema-gen/internal/schema"
)

// Field is a remote field with its generated identifier and spec.
type Field struct {
	schema.Field
	Identifier string
	// Spec is nil for unsupported remote types.
	Spec *fieldtype.Spec
}

// Supported reports whether the field has a spec.
func (f *Field) Supported() bool {
	return f.Spec != nil
}

// Link describes a field referencing records of another table.
type Link struct {
	Identifier    string
	LinkedTableID string
}

// Table is the generation model of one remote table.
type Table struct {
	ID          string
	Name        string
	Description string
	BaseName    string
	BaseID      string
	// Identifier names the table in generated code; unique per document.
	Identifier string
	Fields     []Field
	Links      []Link
	// RequiredFields lists identifiers made required by configuration.
	RequiredFields []string
}

// SupportedFields returns the fields that have a spec, in order.
func (t *Table) SupportedFields() []Field {
	out := make([]Field, 0, len(t.Fields))
	for _, f := range t.Fields {
		if f.Supported() {
			out = append(out, f)
		}
	}
	return out
}

// Builder creates table models for one document. Table identifiers are
// unique across the document; field identifiers are unique per table.
type Builder struct {
	sink   diagnostic.Sink
	tables *ident.Scope
}

// NewBuilder creates a Builder reporting warnings to sink. Table names
// sanitizing to one of reserved get a numeric suffix.
func NewBuilder(sink diagnostic.Sink, reserved ...string) *Builder {
	if sink == nil {
		sink = diagnostic.Discard
	}
	tables := ident.NewScope("", sink)
	tables.Reserve(reserved...)
	return &Builder{sink: sink, tables: tables}
}

// Build maps every field of tbl. A fresh identifier scope is used per call.
func (b *Builder) Build(baseName, baseID string, tbl schema.Table) (*Table, error) {
	out := &Table{
		ID:          tbl.ID,
		Name:        tbl.Name,
		Description: tbl.Description,
		BaseName:    baseName,
		BaseID:      baseID,
		Identifier:  b.tables.IdentifierIn(baseName, tbl.Name),
		Fields:      make([]Field, 0, len(tbl.Fields)),
	}

	names := ident.NewScope(tbl.Name, b.sink)
	mapper := fieldtype.NewMapper(tbl.Name, b.sink)

	for _, f := range tbl.Fields {
		spec, err := mapper.Map(f)
		if err != nil {
			return nil, fmt.Errorf("table %q (%s): %w", tbl.Name, tbl.ID, err)
		}

		gf := Field{Field: f, Identifier: names.Identifier(f.Name), Spec: spec}
		out.Fields = append(out.Fields, gf)

		if f.Type == fieldtype.LinkType && f.LinkedTableID() != "" && spec != nil {
			out.Links = append(out.Links, Link{Identifier: gf.Identifier, LinkedTableID: f.LinkedTableID()})
		}
	}

	return out, nil
}
