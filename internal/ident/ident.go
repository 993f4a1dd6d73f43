package ident

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hurou927/table-schema-gen/internal/diagnostic"
)

// FallbackPrefix prefixes the sequential names given to unusable display names.
const FallbackPrefix = "invalidIdentifier"

// reserved holds words that cannot be used as identifiers in generated code.
var reserved = map[string]bool{
	"await": true, "break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "else": true, "enum": true, "export": true,
	"extends": true, "false": true, "finally": true, "for": true,
	"function": true, "if": true, "implements": true, "import": true,
	"in": true, "instanceof": true, "interface": true, "let": true,
	"new": true, "null": true, "package": true, "private": true,
	"protected": true, "public": true, "return": true, "static": true,
	"super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "var": true, "void": true, "while": true,
	"with": true, "yield": true,
}

// IsValid reports whether s is an ASCII identifier that is not a reserved word.
func IsValid(s string) bool {
	if s == "" || IsReserved(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// IsReserved reports whether s is a reserved word.
func IsReserved(s string) bool {
	return reserved[s]
}

// Scope tracks the identifiers handed out within one generation pass.
type Scope struct {
	table     string
	sink      diagnostic.Sink
	used      map[string]bool
	fallbacks int
}

// NewScope creates an empty scope. table is only used to label warnings.
func NewScope(table string, sink diagnostic.Sink) *Scope {
	if sink == nil {
		sink = diagnostic.Discard
	}
	return &Scope{
		table: table,
		sink:  sink,
		used:  make(map[string]bool),
	}
}

// Identifier returns a valid identifier for displayName that is unique
// within the scope, and registers it.
func (s *Scope) Identifier(displayName string) string {
	return s.IdentifierIn(s.table, displayName)
}

// IdentifierIn is Identifier with warnings labelled with table instead of
// the scope's own label.
func (s *Scope) IdentifierIn(table, displayName string) string {
	return s.claim(s.sanitize(table, displayName))
}

// Reserve marks ids as taken so that later names are suffixed instead.
func (s *Scope) Reserve(ids ...string) {
	for _, id := range ids {
		s.used[id] = true
	}
}

// Used reports whether id has already been handed out or reserved.
func (s *Scope) Used(id string) bool {
	return s.used[id]
}

func (s *Scope) sanitize(table, displayName string) string {
	normalized := StripMarks(displayName)

	if id := capitalizedWords(splitWords(normalized)); IsValid(id) {
		return id
	}

	cleaned := clean(normalized)
	if leadsWithNumber(cleaned) {
		return s.fallback(table, displayName)
	}

	id := capitalizedWords(splitWords(cleaned))
	if id != "" && id[0] >= '0' && id[0] <= '9' {
		id = "_" + id
	}
	if IsValid(id) {
		return id
	}

	if id = salvage(id); IsValid(id) {
		return id
	}

	return s.fallback(table, displayName)
}

// salvage drops everything before the first ASCII letter or underscore and
// replaces the remaining invalid characters with underscores.
func salvage(id string) string {
	start := strings.IndexFunc(id, func(r rune) bool {
		return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
	})
	if start < 0 {
		return ""
	}

	var b strings.Builder
	for _, r := range id[start:] {
		if r < 0x80 && (r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}

	out := capitalizedWords(splitWords(b.String()))
	if out != "" && out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}

func (s *Scope) fallback(table, displayName string) string {
	s.fallbacks++
	id := FallbackPrefix + strconv.Itoa(s.fallbacks)
	s.sink.Warn(diagnostic.CodeFallbackIdentifier,
		fmt.Sprintf("could not derive an identifier from %q, using %s", displayName, id),
		table, displayName)
	return id
}

func (s *Scope) claim(base string) string {
	candidate := base
	for n := 2; s.Used(candidate); n++ {
		candidate = base + strconv.Itoa(n)
	}
	s.used[candidate] = true
	return candidate
}
