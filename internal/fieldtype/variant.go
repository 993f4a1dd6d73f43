package fieldtype

import "github.com/hurou927/table-schema-gen/internal/schema"

// Variant is the classification of a remote field type.
// It is one of Scalar, Computed or Unsupported.
type Variant interface {
	variant()
}

// Scalar is a type with a fixed spec.
type Scalar struct {
	Spec Spec
}

// Computed is a type whose value shape comes from a nested result descriptor.
type Computed struct {
	// Result is nil when the remote schema omitted it.
	Result *schema.FieldDescriptor
	// Multiple wraps the resolved result in an array (lookups).
	Multiple bool
}

// Unsupported is a type with no known mapping.
type Unsupported struct {
	Type string
}

func (Scalar) variant()      {}
func (Computed) variant()    {}
func (Unsupported) variant() {}

var scalars = map[string]Spec{
	// text-like
	"singleLineText":     scalarOf(KindString),
	"multilineText":      scalarOf(KindString),
	"richText":           scalarOf(KindString),
	"email":              scalarOf(KindString),
	"url":                scalarOf(KindString),
	"phoneNumber":        scalarOf(KindString),
	"singleSelect":       scalarOf(KindString),
	"externalSyncSource": scalarOf(KindString),

	// numeric
	"number":     scalarOf(KindNumber),
	"percent":    scalarOf(KindNumber),
	"currency":   scalarOf(KindNumber),
	"rating":     scalarOf(KindNumber),
	"duration":   scalarOf(KindNumber),
	"count":      scalarOf(KindNumber),
	"autoNumber": scalarOf(KindNumber),

	"checkbox": scalarOf(KindBoolean),

	// ISO-8601 text
	"date":             scalarOf(KindString),
	"dateTime":         scalarOf(KindString),
	"createdTime":      scalarOf(KindString),
	"lastModifiedTime": scalarOf(KindString),

	"singleCollaborator": scalarOf(KindObject),
	"createdBy":          scalarOf(KindObject),
	"lastModifiedBy":     scalarOf(KindObject),
	"aiText":             scalarOf(KindObject),

	"barcode": scalarOf(KindRecord),
	"button":  scalarOf(KindRecord),

	"multipleSelects":     arrayOf(KindString),
	"multipleRecordLinks": arrayOf(KindString),

	"multipleAttachments":   arrayOf(KindObject),
	"multipleCollaborators": arrayOf(KindObject),
}

var computed = map[string]bool{
	"formula":              false,
	"rollup":               false,
	"lookup":               true,
	"multipleLookupValues": true,
}

// LinkType is the remote type of fields referencing another table.
const LinkType = "multipleRecordLinks"

// Classify returns the variant of a field descriptor.
func Classify(d schema.FieldDescriptor) Variant {
	if spec, ok := scalars[d.Type]; ok {
		return Scalar{Spec: spec}
	}
	if multiple, ok := computed[d.Type]; ok {
		var result *schema.FieldDescriptor
		if d.Options != nil {
			result = d.Options.Result
		}
		return Computed{Result: result, Multiple: multiple}
	}
	return Unsupported{Type: d.Type}
}
