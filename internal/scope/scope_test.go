package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hurou927/table-schema-gen/internal/schema"
)

func fixture() []schema.Table {
	return []schema.Table{
		{
			ID:   "tbl1",
			Name: "Tasks",
			Fields: []schema.Field{
				{ID: "fld1", Name: "Name", Type: "singleLineText"},
				{ID: "fld2", Name: "Status", Type: "singleSelect"},
				{ID: "fld3", Name: "Due", Type: "date"},
				{ID: "fld4", Name: "Owner", Type: "singleCollaborator"},
			},
			Views: []schema.View{
				{ID: "viw1", Name: "Open", Type: "grid", VisibleFieldIDs: []string{"fld1", "fld2"}},
				{ID: "viw2", Name: "Calendar", Type: "calendar", VisibleFieldIDs: []string{"fld3"}},
				{ID: "viw3", Name: "Planning", Type: "grid", VisibleFieldIDs: []string{"fld3", "fld1"}},
				{ID: "viw4", Name: "Empty grid", Type: "grid"},
			},
		},
		{
			ID:     "tbl2",
			Name:   "People",
			Fields: []schema.Field{{ID: "fld5", Name: "Name", Type: "singleLineText"}},
			Views:  []schema.View{{ID: "viw5", Name: "All", Type: "grid", VisibleFieldIDs: []string{"fld5"}}},
		},
		{
			ID:     "tbl3",
			Name:   "Archive",
			Fields: []schema.Field{{ID: "fld6", Name: "Name", Type: "singleLineText"}},
			Views:  []schema.View{{ID: "viw6", Name: "Kanban", Type: "kanban", VisibleFieldIDs: []string{"fld6"}}},
		},
	}
}

func tableIDs(tables []schema.Table) []string {
	ids := make([]string, len(tables))
	for i, t := range tables {
		ids[i] = t.ID
	}
	return ids
}

func fieldIDs(tbl schema.Table) []string {
	ids := make([]string, len(tbl.Fields))
	for i, f := range tbl.Fields {
		ids[i] = f.ID
	}
	return ids
}

func TestTables(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		expected []string
	}{
		{"by id", []string{"tbl2"}, []string{"tbl2"}},
		{"by name", []string{"Archive"}, []string{"tbl3"}},
		{"keeps fetch order", []string{"tbl3", "Tasks"}, []string{"tbl1", "tbl3"}},
		{"dedupes id and name", []string{"tbl1", "Tasks", "tbl1"}, []string{"tbl1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tables(fixture(), tt.tokens)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tableIDs(got))
		})
	}
}

func TestTables_Errors(t *testing.T) {
	_, err := Tables(fixture(), []string{"tbl1", "Nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTableNotFound)
	assert.Contains(t, err.Error(), `"Nope"`)

	dup := append(fixture(), schema.Table{ID: "tbl9", Name: "Tasks"})
	_, err = Tables(dup, []string{"Tasks"})
	assert.ErrorIs(t, err, ErrAmbiguousTable)

	// An id match wins over an ambiguous name.
	got, err := Tables(dup, []string{"tbl9"})
	require.NoError(t, err)
	assert.Equal(t, []string{"tbl9"}, tableIDs(got))
}

func TestViews(t *testing.T) {
	t.Run("single grid view narrows fields", func(t *testing.T) {
		got, err := Views(fixture(), []string{"viw1"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, []string{"fld1", "fld2"}, fieldIDs(got[0]))
	})

	t.Run("union of grid views in field order", func(t *testing.T) {
		got, err := Views(fixture(), []string{"viw3", "viw1"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, []string{"fld1", "fld2", "fld3"}, fieldIDs(got[0]))
	})

	t.Run("non grid view keeps all fields", func(t *testing.T) {
		got, err := Views(fixture(), []string{"viw2"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, []string{"fld1", "fld2", "fld3", "fld4"}, fieldIDs(got[0]))
	})

	t.Run("grid view without visible fields keeps all fields", func(t *testing.T) {
		got, err := Views(fixture(), []string{"viw4"})
		require.NoError(t, err)
		assert.Len(t, got[0].Fields, 4)
	})

	t.Run("non grid view does not widen a narrowed table", func(t *testing.T) {
		got, err := Views(fixture(), []string{"viw2", "viw1"})
		require.NoError(t, err)
		assert.Equal(t, []string{"fld1", "fld2"}, fieldIDs(got[0]))
	})

	t.Run("tables without matched views are excluded", func(t *testing.T) {
		got, err := Views(fixture(), []string{"viw6", "viw1"})
		require.NoError(t, err)
		assert.Equal(t, []string{"tbl1", "tbl3"}, tableIDs(got))
		assert.Len(t, got[1].Fields, 1)
	})

	t.Run("unknown view", func(t *testing.T) {
		_, err := Views(fixture(), []string{"viw1", "viwMissing"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrViewNotFound)
		assert.Contains(t, err.Error(), "viwMissing")
	})
}

func TestViews_DoesNotMutateInput(t *testing.T) {
	tables := fixture()
	_, err := Views(tables, []string{"viw1"})
	require.NoError(t, err)
	assert.Len(t, tables[0].Fields, 4)
}

func TestApply(t *testing.T) {
	t.Run("no scoping returns everything", func(t *testing.T) {
		got, err := Apply(fixture(), nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"tbl1", "tbl2", "tbl3"}, tableIDs(got))
	})

	t.Run("views only see table scoped tables", func(t *testing.T) {
		_, err := Apply(fixture(), []string{"People"}, []string{"viw1"})
		assert.ErrorIs(t, err, ErrViewNotFound)
	})

	t.Run("round trip by own id and all views", func(t *testing.T) {
		tables := fixture()
		people := tables[1]

		got, err := Apply(tables, []string{people.ID}, []string{"viw5"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, people.ID, got[0].ID)
		assert.Equal(t, people.Views[0].VisibleFieldIDs, fieldIDs(got[0]))
	})

	t.Run("table error surfaces first", func(t *testing.T) {
		_, err := Apply(fixture(), []string{"Nope"}, []string{"viwMissing"})
		assert.ErrorIs(t, err, ErrTableNotFound)
	})
}
