package render

import (
	"fmt"
	"strings"

	"github.com/hurou927/table-schema-gen/internal/fieldtype"
)

// GeneratedComment is the first line of every generated document.
const GeneratedComment = "Code generated by table-schema-gen. DO NOT EDIT."

const tsHeader = `import { z } from 'zod';

export interface TableDefinition {
  readonly id: string;
  readonly mappings: Readonly<Record<string, string>>;
  readonly requiredFields?: readonly string[];
  readonly links?: Readonly<Record<string, { readonly tableId: string }>>;
}

export interface TableRecord<TFields> {
  id: string;
  fields: TFields;
}
`

const tsParseRecord = `
export function parseRecord<TSchema extends z.AnyZodObject>(
  schema: TSchema,
  data: unknown,
): TableRecord<z.infer<TSchema>> {
  return z
    .object({ id: z.string(), fields: schema.strict() })
    .strict()
    .parse(data) as TableRecord<z.infer<TSchema>>;
}
`

// TypeScript prints zod schemas and TypeScript types.
type TypeScript struct{}

// Format implements Formatter.
func (TypeScript) Format(doc *Document) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("// " + GeneratedComment + "\n\n")

	for _, b := range doc.Blocks {
		switch b := b.(type) {
		case HeaderBlock:
			sb.WriteString(tsHeader)
			if b.RecordSchemas {
				sb.WriteString(tsParseRecord)
			}

		case SectionBlock:
			fmt.Fprintf(&sb, "\n// Base: %s (%s) / Table: %s (%s)\n",
				commentText(b.BaseName), b.BaseID, commentText(b.Table), b.TableID)

		case SchemaBlock:
			if b.Description != "" {
				fmt.Fprintf(&sb, "/** %s */\n", strings.ReplaceAll(commentText(b.Description), "*/", "* /"))
			}
			fmt.Fprintf(&sb, "export const %s = z.object({\n", b.Name)
			for _, e := range b.Entries {
				if e.Spec == nil {
					fmt.Fprintf(&sb, "  // %s: unsupported field type %q (%s, %q)\n",
						e.Identifier, e.FieldType, e.FieldID, commentText(e.FieldName))
					continue
				}
				fmt.Fprintf(&sb, "  %s: %s,\n", e.Identifier, zodSpec(e.Spec))
			}
			sb.WriteString("});\n")

		case TypeAliasBlock:
			fmt.Fprintf(&sb, "\nexport type %s = z.infer<typeof %s>;\n", b.Name, b.Schema)

		case RecordSchemaBlock:
			fmt.Fprintf(&sb, "\nexport const %s = z\n  .object({\n    id: z.string(),\n    fields: %s,\n  })\n  .strict();\n",
				b.Name, b.Schema)

		case TableDefinitionBlock:
			fmt.Fprintf(&sb, "\nexport const %s = {\n  id: %s,\n  mappings: {\n", b.Name, tsString(b.TableID))
			for _, m := range b.Mappings {
				fmt.Fprintf(&sb, "    %s: %s,\n", m.Identifier, tsString(m.FieldID))
			}
			sb.WriteString("  },\n")
			if len(b.RequiredFields) > 0 {
				quoted := make([]string, len(b.RequiredFields))
				for i, id := range b.RequiredFields {
					quoted[i] = tsString(id)
				}
				fmt.Fprintf(&sb, "  requiredFields: [%s],\n", strings.Join(quoted, ", "))
			}
			if len(b.Links) > 0 {
				sb.WriteString("  links: {\n")
				for _, l := range b.Links {
					fmt.Fprintf(&sb, "    %s: { tableId: %s },\n", l.Identifier, tsString(l.LinkedTableID))
				}
				sb.WriteString("  },\n")
			}
			sb.WriteString("} as const satisfies TableDefinition;\n")

		default:
			return nil, fmt.Errorf("typescript: unhandled block %T", b)
		}
	}

	return []byte(sb.String()), nil
}

// zodSpec renders a spec as a zod expression.
func zodSpec(s *fieldtype.Spec) string {
	var out string
	switch s.Kind {
	case fieldtype.KindString:
		out = "z.string()"
	case fieldtype.KindNumber:
		out = "z.number()"
	case fieldtype.KindBoolean:
		out = "z.boolean()"
	case fieldtype.KindRecord:
		out = "z.record(z.string(), z.unknown())"
	case fieldtype.KindObject:
		out = "z.object({ id: z.string() }).passthrough()"
	case fieldtype.KindArray:
		inner := "z.unknown()"
		if s.Inner != nil {
			inner = zodSpec(s.Inner)
		}
		out = "z.array(" + inner + ")"
	default:
		out = "z.unknown()"
	}
	if s.Optional {
		out += ".optional()"
	}
	return out
}

// tsString quotes s as a single-quoted string literal.
func tsString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// commentText flattens s onto a single line.
func commentText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
