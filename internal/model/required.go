package model

import (
	"errors"
	"fmt"

	"github.com/hurou927/table-schema-gen/internal/common"
)

// ErrUnknownRequiredField is returned when a required-field token matches no field.
var ErrUnknownRequiredField = errors.New("model: unknown required field")

// RequiredFieldError names the unresolved token and its table.
type RequiredFieldError struct {
	Token   string
	Table   string
	TableID string
}

// Error returns the error string.
func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("required field %q not found in table %q (%s)", e.Token, e.Table, e.TableID)
}

// Is reports whether target is ErrUnknownRequiredField.
func (e *RequiredFieldError) Is(target error) bool {
	return target == ErrUnknownRequiredField
}

// RequiredTokens returns the override list for the table, looked up by
// table id first and display name second.
func (t *Table) RequiredTokens(overrides map[string][]string) []string {
	if tokens, ok := overrides[t.ID]; ok {
		return tokens
	}
	return overrides[t.Name]
}

// ApplyRequired resolves the table's required-field overrides. With a
// non-empty list, exactly the named fields become required and every other
// field optional; with none, optionality is left untouched.
func (t *Table) ApplyRequired(overrides map[string][]string) error {
	tokens := t.RequiredTokens(overrides)
	if len(tokens) == 0 {
		return nil
	}

	lookup := t.aliases()

	required := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		id, ok := lookup[tok]
		if !ok {
			return &RequiredFieldError{Token: tok, Table: t.Name, TableID: t.ID}
		}
		required = append(required, id)
	}
	t.RequiredFields = common.Dedupe(required)

	set := make(map[string]bool, len(t.RequiredFields))
	for _, id := range t.RequiredFields {
		set[id] = true
	}
	for i := range t.Fields {
		if spec := t.Fields[i].Spec; spec != nil {
			spec.Optional = !set[t.Fields[i].Identifier]
		}
	}

	return nil
}

// aliases maps field ids, display names and identifiers to identifiers.
// Ids take precedence over names, names over identifiers.
func (t *Table) aliases() map[string]string {
	lookup := make(map[string]string, len(t.Fields)*3)
	add := func(key, id string) {
		if _, ok := lookup[key]; !ok {
			lookup[key] = id
		}
	}
	for _, f := range t.Fields {
		add(f.ID, f.Identifier)
	}
	for _, f := range t.Fields {
		add(f.Name, f.Identifier)
	}
	for _, f := range t.Fields {
		add(f.Identifier, f.Identifier)
	}
	return lookup
}
