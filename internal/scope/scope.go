// Package scope narrows a fetched table list to the configured tables and views.
package scope

import (
	"errors"
	"fmt"

	"github.com/hurou927/table-schema-gen/internal/schema"
)

var (
	// ErrTableNotFound is returned when a table token matches no table.
	ErrTableNotFound = errors.New("scope: table not found")
	// ErrAmbiguousTable is returned when a table name matches several tables.
	ErrAmbiguousTable = errors.New("scope: table name is ambiguous")
	// ErrViewNotFound is returned when a view id is not owned by any table.
	ErrViewNotFound = errors.New("scope: view not found")
)

// NotFoundError names the token that could not be resolved.
type NotFoundError struct {
	Token string
	err   error
}

// Error returns the error string.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %q", e.err, e.Token)
}

// Unwrap returns the sentinel error.
func (e *NotFoundError) Unwrap() error {
	return e.err
}

// Apply runs table scoping and then view scoping. Empty token lists skip the
// corresponding stage. The input is not modified.
func Apply(tables []schema.Table, tableTokens, viewIDs []string) ([]schema.Table, error) {
	out := tables
	var err error

	if len(tableTokens) > 0 {
		out, err = Tables(out, tableTokens)
		if err != nil {
			return nil, err
		}
	}

	if len(viewIDs) > 0 {
		out, err = Views(out, viewIDs)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Tables keeps the tables named by the tokens (ids or display names), in fetch order.
func Tables(tables []schema.Table, tokens []string) ([]schema.Table, error) {
	keep := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		id, err := findTable(tables, tok)
		if err != nil {
			return nil, err
		}
		keep[id] = true
	}

	out := make([]schema.Table, 0, len(keep))
	for _, tbl := range tables {
		if keep[tbl.ID] {
			out = append(out, tbl)
		}
	}
	return out, nil
}

// findTable resolves a token by id first, then by display name.
func findTable(tables []schema.Table, token string) (string, error) {
	for _, tbl := range tables {
		if tbl.ID == token {
			return tbl.ID, nil
		}
	}

	var match string
	for _, tbl := range tables {
		if tbl.Name != token {
			continue
		}
		if match != "" {
			return "", &NotFoundError{Token: token, err: ErrAmbiguousTable}
		}
		match = tbl.ID
	}
	if match == "" {
		return "", &NotFoundError{Token: token, err: ErrTableNotFound}
	}
	return match, nil
}

// Views keeps the tables owning at least one of viewIDs. When a table's
// matched views include grid views with visible fields, its fields are
// narrowed to the union of those views' visible fields.
func Views(tables []schema.Table, viewIDs []string) ([]schema.Table, error) {
	matched := make(map[string]bool, len(tables))
	visible := make(map[string]map[string]bool, len(tables))

	for _, viewID := range viewIDs {
		tbl, view := findView(tables, viewID)
		if view == nil {
			return nil, &NotFoundError{Token: viewID, err: ErrViewNotFound}
		}
		matched[tbl.ID] = true

		if !view.NarrowsFields() {
			continue
		}
		if visible[tbl.ID] == nil {
			visible[tbl.ID] = make(map[string]bool)
		}
		for _, id := range view.VisibleFieldIDs {
			visible[tbl.ID][id] = true
		}
	}

	out := make([]schema.Table, 0, len(matched))
	for _, tbl := range tables {
		if !matched[tbl.ID] {
			continue
		}
		if set, ok := visible[tbl.ID]; ok {
			tbl = narrow(tbl, set)
		}
		out = append(out, tbl)
	}
	return out, nil
}

func findView(tables []schema.Table, viewID string) (*schema.Table, *schema.View) {
	for i := range tables {
		if v := tables[i].ViewByID(viewID); v != nil {
			return &tables[i], v
		}
	}
	return nil, nil
}

// narrow returns a copy of tbl holding only the fields in ids, in field order.
func narrow(tbl schema.Table, ids map[string]bool) schema.Table {
	fields := make([]schema.Field, 0, len(ids))
	for _, f := range tbl.Fields {
		if ids[f.ID] {
			fields = append(fields, f)
		}
	}
	tbl.Fields = fields
	return tbl
}
