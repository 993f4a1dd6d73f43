package render

import (
	"fmt"

	"github.com/hurou927/table-schema-gen/internal/model"
)

// Output formats.
const (
	FormatTypeScript = "typescript"
	FormatGo         = "go"
)

// DefaultGoPackage is used when Options.Package is empty.
const DefaultGoPackage = "schema"

// Formatter prints a document.
type Formatter interface {
	Format(doc *Document) ([]byte, error)
}

// FormatterFor returns the formatter of the named format.
func FormatterFor(format string) (Formatter, error) {
	switch format {
	case "", FormatTypeScript:
		return TypeScript{}, nil
	case FormatGo:
		return Go{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: %s, %s)", format, FormatTypeScript, FormatGo)
	}
}

// Render lays out the tables and prints them in the named format.
func Render(tables []*model.Table, format string, opts Options) ([]byte, error) {
	f, err := FormatterFor(format)
	if err != nil {
		return nil, err
	}
	return f.Format(NewDocument(tables, opts))
}
