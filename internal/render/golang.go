package render

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"

	"github.com/hurou927/table-schema-gen/internal/fieldtype"
)

// Go prints Go structs, table definitions and a generic record parser.
type Go struct{}

// Format implements Formatter.
func (Go) Format(doc *Document) ([]byte, error) {
	pkg := doc.Options.Package
	if pkg == "" {
		pkg = DefaultGoPackage
	}

	f := jen.NewFile(pkg)
	f.HeaderComment(GeneratedComment)

	for _, b := range doc.Blocks {
		switch b := b.(type) {
		case HeaderBlock:
			genHeader(f, b)
		case SectionBlock:
			f.Commentf("Base: %s (%s) / Table: %s (%s)", commentText(b.BaseName), b.BaseID, commentText(b.Table), b.TableID)
		case SchemaBlock:
			genStruct(f, b)
		case TypeAliasBlock:
			f.Commentf("%sRecord is a %s record as returned by the API.", b.Name, b.TypeName)
			f.Type().Id(b.Name+"Record").Op("=").Id("Record").Types(jen.Id(b.TypeName))
		case RecordSchemaBlock:
			genParseFunc(f, b)
		case TableDefinitionBlock:
			genTableDefinition(f, b)
		default:
			return nil, fmt.Errorf("go: unhandled block %T", b)
		}
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("go: formatting output: %w", err)
	}
	return buf.Bytes(), nil
}

func genHeader(f *jen.File, b HeaderBlock) {
	f.Comment("TableDefinition describes a generated table.")
	f.Type().Id("TableDefinition").Struct(
		jen.Id("ID").String(),
		jen.Id("Mappings").Map(jen.String()).String(),
		jen.Id("RequiredFields").Index().String(),
		jen.Id("Links").Map(jen.String()).Id("Link"),
	)

	f.Comment("Link is the target of a link field.")
	f.Type().Id("Link").Struct(
		jen.Id("TableID").String(),
	)

	f.Comment("Record pairs a record id with its fields.")
	f.Type().Id("Record").Types(jen.Id("T").Any()).Struct(
		jen.Id("ID").String().Tag(map[string]string{"json": "id"}),
		jen.Id("Fields").Id("T").Tag(map[string]string{"json": "fields"}),
	)

	if !b.RecordSchemas {
		return
	}

	f.Comment("ParseRecord decodes a record, rejecting unknown keys.")
	f.Func().Id("ParseRecord").Types(jen.Id("T").Any()).
		Params(jen.Id("data").Index().Byte()).
		Params(jen.Id("Record").Types(jen.Id("T")), jen.Error()).
		Block(
			jen.Var().Id("rec").Id("Record").Types(jen.Id("T")),
			jen.Id("dec").Op(":=").Qual("encoding/json", "NewDecoder").Call(
				jen.Qual("bytes", "NewReader").Call(jen.Id("data")),
			),
			jen.Id("dec").Dot("DisallowUnknownFields").Call(),
			jen.If(
				jen.Err().Op(":=").Id("dec").Dot("Decode").Call(jen.Op("&").Id("rec")),
				jen.Err().Op("!=").Nil(),
			).Block(
				jen.Return(jen.Id("rec"), jen.Err()),
			),
			jen.Return(jen.Id("rec"), jen.Nil()),
		)
}

func genStruct(f *jen.File, b SchemaBlock) {
	fields := make([]jen.Code, 0, len(b.Entries))
	for _, e := range b.Entries {
		if e.Spec == nil {
			fields = append(fields, jen.Commentf("%s: unsupported field type %q (%s, %q)",
				e.Identifier, e.FieldType, e.FieldID, commentText(e.FieldName)))
			continue
		}

		tag := e.Identifier
		if e.Spec.Optional {
			tag += ",omitempty"
		}
		fields = append(fields, jen.Id(goFieldName(e.Identifier)).Add(goType(e.Spec)).Tag(map[string]string{"json": tag}))
	}

	if b.Description != "" {
		f.Commentf("%s %s", b.TypeName, commentText(b.Description))
	} else {
		f.Commentf("%s holds the fields of a record.", b.TypeName)
	}
	f.Type().Id(b.TypeName).Struct(fields...)
}

func genParseFunc(f *jen.File, b RecordSchemaBlock) {
	name := "Parse" + b.TypeName + "Record"
	f.Commentf("%s decodes a %s record, rejecting unknown keys.", name, b.TypeName)
	f.Func().Id(name).
		Params(jen.Id("data").Index().Byte()).
		Params(jen.Id(b.TypeName+"Record"), jen.Error()).
		Block(
			jen.Return(jen.Id("ParseRecord").Types(jen.Id(b.TypeName)).Call(jen.Id("data"))),
		)
}

func genTableDefinition(f *jen.File, b TableDefinitionBlock) {
	mappings := make([]jen.Code, 0, len(b.Mappings)+1)
	for _, m := range b.Mappings {
		mappings = append(mappings, jen.Line().Lit(m.Identifier).Op(":").Lit(m.FieldID))
	}
	mappings = append(mappings, jen.Line())

	values := []jen.Code{
		jen.Line().Id("ID").Op(":").Lit(b.TableID),
		jen.Line().Id("Mappings").Op(":").Map(jen.String()).String().Values(mappings...),
	}

	if len(b.RequiredFields) > 0 {
		required := make([]jen.Code, len(b.RequiredFields))
		for i, id := range b.RequiredFields {
			required[i] = jen.Lit(id)
		}
		values = append(values, jen.Line().Id("RequiredFields").Op(":").Index().String().Values(required...))
	}

	if len(b.Links) > 0 {
		links := make([]jen.Code, 0, len(b.Links)+1)
		for _, l := range b.Links {
			links = append(links, jen.Line().Lit(l.Identifier).Op(":").Values(jen.Id("TableID").Op(":").Lit(l.LinkedTableID)))
		}
		links = append(links, jen.Line())
		values = append(values, jen.Line().Id("Links").Op(":").Map(jen.String()).Id("Link").Values(links...))
	}
	values = append(values, jen.Line())

	name := inflect.Capitalize(b.Name)
	f.Commentf("%s maps field identifiers to column ids.", name)
	f.Var().Id(name).Op("=").Id("TableDefinition").Values(values...)
}

// goFieldName exports an identifier.
func goFieldName(identifier string) string {
	if identifier != "" && identifier[0] == '_' {
		return "F" + identifier
	}
	return inflect.Capitalize(identifier)
}

func goType(s *fieldtype.Spec) *jen.Statement {
	var t *jen.Statement
	switch s.Kind {
	case fieldtype.KindString:
		t = jen.String()
	case fieldtype.KindNumber:
		t = jen.Float64()
	case fieldtype.KindBoolean:
		t = jen.Bool()
	case fieldtype.KindRecord, fieldtype.KindObject:
		return jen.Map(jen.String()).Any()
	case fieldtype.KindArray:
		inner := jen.Any()
		if s.Inner != nil {
			inner = goType(s.Inner)
		}
		return jen.Index().Add(inner)
	default:
		return jen.Any()
	}
	if s.Optional {
		return jen.Op("*").Add(t)
	}
	return t
}
