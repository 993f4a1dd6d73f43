package schema

// ViewTypeGrid is the only view type whose visible fields narrow a table.
const ViewTypeGrid = "grid"

// FieldOptions holds the type-specific options of a field descriptor.
type FieldOptions struct {
	// Result describes the value type of a computed field (formula, rollup, lookup).
	Result *FieldDescriptor `json:"result,omitempty"`
	// LinkedTableID is the target table of a link field.
	LinkedTableID string `json:"linkedTableId,omitempty"`
}

// FieldDescriptor is the type part of a field, also used for nested results.
type FieldDescriptor struct {
	Type    string        `json:"type"`
	Options *FieldOptions `json:"options,omitempty"`
}

// Field represents a remote column.
type Field struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Type        string        `json:"type"`
	Description string        `json:"description,omitempty"`
	Options     *FieldOptions `json:"options,omitempty"`
}

// LinkedTableID returns the target table of a link field, or "".
func (f *Field) LinkedTableID() string {
	if f.Options == nil {
		return ""
	}
	return f.Options.LinkedTableID
}

// Descriptor returns the field's type descriptor.
func (f *Field) Descriptor() FieldDescriptor {
	return FieldDescriptor{Type: f.Type, Options: f.Options}
}

// View represents a saved field-visibility filter on a table.
type View struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	VisibleFieldIDs []string `json:"visibleFieldIds,omitempty"`
}

// NarrowsFields reports whether the view is a grid view with visible fields.
func (v *View) NarrowsFields() bool {
	return v.Type == ViewTypeGrid && len(v.VisibleFieldIDs) > 0
}

// Table represents a remote table with its fields and views.
type Table struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	PrimaryFieldID string  `json:"primaryFieldId,omitempty"`
	Description    string  `json:"description,omitempty"`
	Fields         []Field `json:"fields"`
	Views          []View  `json:"views"`
}

// ViewByID returns the view with the given id, or nil.
func (t *Table) ViewByID(id string) *View {
	for i := range t.Views {
		if t.Views[i].ID == id {
			return &t.Views[i]
		}
	}
	return nil
}
