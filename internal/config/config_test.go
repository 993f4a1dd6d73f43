package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
apiKey: pat123
output: generated/schema.ts
recordSchemas: true
bases:
  - baseName: Main
    baseId: appMain
    tableIds: [tblTasks, People]
    viewIds: [viwOpen]
    requiredFields:
      Tasks: [Status, fld2]
  - baseName: Other
    baseId: appOther
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "pat123", cfg.APIKey)
	assert.Equal(t, "generated/schema.ts", cfg.Output)
	assert.Equal(t, "typescript", cfg.Format)
	assert.True(t, cfg.RecordSchemas)
	require.Len(t, cfg.Bases, 2)

	main := cfg.Bases[0]
	assert.Equal(t, "Main", main.BaseName)
	assert.Equal(t, "appMain", main.BaseID)
	assert.Equal(t, []string{"tblTasks", "People"}, main.TableIDs)
	assert.Equal(t, []string{"viwOpen"}, main.ViewIDs)
	assert.Equal(t, map[string][]string{"Tasks": {"Status", "fld2"}}, main.RequiredFields)

	assert.Nil(t, cfg.Bases[1].TableIDs)
	assert.Nil(t, cfg.Bases[1].RequiredFields)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestParse_EnvFallback(t *testing.T) {
	t.Setenv("AIRTABLE_API_KEY", "")
	t.Setenv("AIRTABLE_TOKEN", "from-env")
	t.Setenv("AIRTABLE_ENDPOINT", "http://localhost:9999")

	cfg, err := Parse([]byte("bases:\n  - baseName: B\n    baseId: appB\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, "http://localhost:9999", cfg.Endpoint)

	cfg, err = Parse([]byte("apiKey: from-file\nbases:\n  - baseName: B\n    baseId: appB\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.APIKey)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{"no bases", "apiKey: k\n", "at least one base"},
		{"no base name", "bases:\n  - baseId: app\n", "bases[0].baseName is required"},
		{"no base id", "bases:\n  - baseName: B\n", "bases[0].baseId is required"},
		{"empty table ids", "bases:\n  - baseName: B\n    baseId: app\n    tableIds: []\n", "bases[0].tableIds must not be empty"},
		{"empty view ids", "bases:\n  - baseName: B\n    baseId: app\n    viewIds: []\n", "bases[0].viewIds must not be empty"},
		{"blank table id", "bases:\n  - baseName: B\n    baseId: app\n    tableIds: [\"\"]\n", "bases[0].tableIds[0] must not be empty"},
		{"empty required list", "bases:\n  - baseName: B\n    baseId: app\n    requiredFields:\n      T: []\n", "bases[0].requiredFields[T] must not be empty"},
		{"bad yaml", "bases: [", "parsing config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
