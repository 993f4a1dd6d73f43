package render

import (
	"github.com/go-openapi/inflect"

	"github.com/hurou927/table-schema-gen/internal/fieldtype"
	"github.com/hurou927/table-schema-gen/internal/model"
)

// Options controls what is generated.
type Options struct {
	// RecordSchemas adds per-table record schemas and the shared parse helper.
	RecordSchemas bool
	// Package is the package name of Go output.
	Package string
}

// Block is one unit of the document: HeaderBlock, SectionBlock, SchemaBlock,
// TypeAliasBlock, RecordSchemaBlock or TableDefinitionBlock.
type Block interface {
	block()
}

// HeaderBlock holds the shared definitions, emitted once.
type HeaderBlock struct {
	RecordSchemas bool
}

// SectionBlock introduces a table.
type SectionBlock struct {
	BaseName string
	BaseID   string
	Table    string
	TableID  string
}

// SchemaEntry is one field of a schema. Spec is nil for unsupported fields,
// which are emitted as comments.
type SchemaEntry struct {
	Identifier string
	FieldID    string
	FieldName  string
	FieldType  string
	Spec       *fieldtype.Spec
}

// SchemaBlock declares the validation schema of a table.
type SchemaBlock struct {
	Name        string
	TypeName    string
	Description string
	Entries     []SchemaEntry
}

// TypeAliasBlock declares the record type inferred from a schema.
type TypeAliasBlock struct {
	Name   string
	Schema string
	// TypeName is the schema's struct name for formats without inference.
	TypeName string
}

// RecordSchemaBlock wraps a schema as {id, fields}.
type RecordSchemaBlock struct {
	Name     string
	Schema   string
	TypeName string
}

// Mapping pairs a generated identifier with its column id.
type Mapping struct {
	Identifier string
	FieldID    string
}

// TableDefinitionBlock declares the table id, mappings and metadata.
type TableDefinitionBlock struct {
	Name           string
	TableID        string
	Mappings       []Mapping
	RequiredFields []string
	Links          []model.Link
}

func (HeaderBlock) block()          {}
func (SectionBlock) block()         {}
func (SchemaBlock) block()          {}
func (TypeAliasBlock) block()       {}
func (RecordSchemaBlock) block()    {}
func (TableDefinitionBlock) block() {}

// Document is an ordered list of blocks.
type Document struct {
	Options Options
	Blocks  []Block
}

// ReservedIdentifiers are table identifiers whose derived names would clash
// with the shared header declarations of some format (TableDefinition, Link,
// Record, TableRecord, ParseRecord/parseRecord) or shadow a TypeScript
// global the header uses (Record, Readonly).
var ReservedIdentifiers = []string{
	"tableDefinition",
	"link",
	"record",
	"tableRecord",
	"parseRecord",
	"readonly",
}

// Names derived from a table identifier.
type Names struct {
	Schema       string
	Type         string
	Record       string
	RecordSchema string
	Table        string
}

// NamesFor derives the declaration names of a table.
func NamesFor(identifier string) Names {
	typ := inflect.Capitalize(identifier)
	if typ != "" && (typ[0] == '_' || (typ[0] >= '0' && typ[0] <= '9')) {
		typ = "T" + typ
	}
	return Names{
		Schema:       identifier + "Schema",
		Type:         typ,
		Record:       typ + "Record",
		RecordSchema: identifier + "RecordSchema",
		Table:        identifier + "Table",
	}
}

// NewDocument lays out the header followed by one group of blocks per table.
func NewDocument(tables []*model.Table, opts Options) *Document {
	doc := &Document{Options: opts}
	doc.Blocks = append(doc.Blocks, HeaderBlock{RecordSchemas: opts.RecordSchemas})

	for _, tbl := range tables {
		doc.Blocks = append(doc.Blocks, tableBlocks(tbl, opts)...)
	}

	return doc
}

func tableBlocks(tbl *model.Table, opts Options) []Block {
	names := NamesFor(tbl.Identifier)

	schema := SchemaBlock{
		Name:        names.Schema,
		TypeName:    names.Type,
		Description: tbl.Description,
		Entries:     make([]SchemaEntry, 0, len(tbl.Fields)),
	}
	def := TableDefinitionBlock{
		Name:           names.Table,
		TableID:        tbl.ID,
		RequiredFields: tbl.RequiredFields,
		Links:          tbl.Links,
	}

	for _, f := range tbl.Fields {
		schema.Entries = append(schema.Entries, SchemaEntry{
			Identifier: f.Identifier,
			FieldID:    f.ID,
			FieldName:  f.Name,
			FieldType:  f.Type,
			Spec:       f.Spec,
		})
		if f.Supported() {
			def.Mappings = append(def.Mappings, Mapping{Identifier: f.Identifier, FieldID: f.ID})
		}
	}

	blocks := []Block{
		SectionBlock{BaseName: tbl.BaseName, BaseID: tbl.BaseID, Table: tbl.Name, TableID: tbl.ID},
		schema,
		TypeAliasBlock{Name: names.Type, Schema: names.Schema, TypeName: names.Type},
	}
	if opts.RecordSchemas {
		blocks = append(blocks, RecordSchemaBlock{Name: names.RecordSchema, Schema: names.Schema, TypeName: names.Type})
	}

	return append(blocks, def)
}
