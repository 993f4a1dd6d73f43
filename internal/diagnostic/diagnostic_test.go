package diagnostic

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{
			name:     "message only",
			diag:     Diagnostic{Message: "something"},
			expected: "something",
		},
		{
			name:     "with code",
			diag:     Diagnostic{Code: CodeUnsupportedType, Message: "type button"},
			expected: "[unsupported-type] type button",
		},
		{
			name:     "with table and field",
			diag:     Diagnostic{Code: CodeFallbackIdentifier, Message: "m", Table: "Tasks", Field: "3 Months"},
			expected: "[Tasks] 3 Months: [fallback-identifier] m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}

func TestDiagnostics_CollectAndCount(t *testing.T) {
	var d Diagnostics
	d.Warn(CodeUnsupportedType, "a", "T", "F1")
	d.Warn(CodeFallbackIdentifier, "b", "T", "F2")
	d.Warn(CodeUnsupportedType, "c", "T", "F3")

	require.Len(t, d.Warnings, 3)
	assert.Equal(t, 2, d.Count(CodeUnsupportedType))
	assert.Equal(t, 1, d.Count(CodeFallbackIdentifier))
	assert.Equal(t, "F1", d.Warnings[0].Field)
}

func TestLogSinkAndTee(t *testing.T) {
	var buf bytes.Buffer
	var collected Diagnostics

	sink := Tee{NewLogSink(&buf), &collected, Discard}
	sink.Warn(CodeUnsupportedType, "type button is not supported", "Tasks", "Action")

	assert.Equal(t, "WARNING: [Tasks] Action: [unsupported-type] type button is not supported\n", buf.String())
	assert.Len(t, collected.Warnings, 1)
}
