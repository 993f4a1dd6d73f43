// Package generate runs the schema pipeline: fetch each base, scope its
// tables, build table models and render one document.
package generate

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/hurou927/table-schema-gen/internal/config"
	"github.com/hurou927/table-schema-gen/internal/diagnostic"
	"github.com/hurou927/table-schema-gen/internal/model"
	"github.com/hurou927/table-schema-gen/internal/render"
	"github.com/hurou927/table-schema-gen/internal/schema"
	"github.com/hurou927/table-schema-gen/internal/scope"
)

// ErrMissingAPIKey is returned when no API key is configured.
var ErrMissingAPIKey = errors.New("generate: API key is required (set apiKey or AIRTABLE_API_KEY)")

// Options tunes a Generator.
type Options struct {
	// Sink receives warnings in addition to the run's own collection.
	Sink diagnostic.Sink
	// Log receives progress lines when Verbose and model dumps when Debug.
	Log     io.Writer
	Verbose bool
	Debug   bool
}

// Generator orchestrates one generation run.
type Generator struct {
	cfg     *config.Config
	fetcher schema.Fetcher
	opts    Options
}

// Result is the outcome of a run.
type Result struct {
	Tables      []*model.Table
	Output      []byte
	Diagnostics diagnostic.Diagnostics
}

// New creates a new Generator.
func New(cfg *config.Config, fetcher schema.Fetcher, opts Options) *Generator {
	if opts.Log == nil {
		opts.Log = io.Discard
	}
	return &Generator{cfg: cfg, fetcher: fetcher, opts: opts}
}

// Generate builds every configured base and renders the document. Any
// error discards everything rendered so far.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	res := &Result{}

	tables, err := g.build(ctx, &res.Diagnostics)
	if err != nil {
		return nil, err
	}
	res.Tables = tables

	out, err := render.Render(tables, g.cfg.Format, render.Options{
		RecordSchemas: g.cfg.RecordSchemas,
		Package:       g.cfg.Package,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering: %w", err)
	}
	res.Output = out

	return res, nil
}

// Build fetches, scopes and models every configured base without rendering.
func (g *Generator) Build(ctx context.Context) ([]*model.Table, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics
	tables, err := g.build(ctx, &diags)
	return tables, diags, err
}

func (g *Generator) build(ctx context.Context, diags *diagnostic.Diagnostics) ([]*model.Table, error) {
	if g.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	var sink diagnostic.Sink = diags
	if g.opts.Sink != nil {
		sink = diagnostic.Tee{diags, g.opts.Sink}
	}
	builder := model.NewBuilder(sink, render.ReservedIdentifiers...)

	var all []*model.Table
	for _, base := range g.cfg.Bases {
		tables, err := g.buildBase(ctx, builder, base)
		if err != nil {
			return nil, fmt.Errorf("base %s (%s): %w", base.BaseName, base.BaseID, err)
		}
		all = append(all, tables...)
	}

	if g.opts.Debug {
		spew.Fdump(g.opts.Log, all)
	}

	return all, nil
}

func (g *Generator) buildBase(ctx context.Context, builder *model.Builder, base config.Base) ([]*model.Table, error) {
	if g.opts.Verbose {
		fmt.Fprintf(g.opts.Log, "[fetch] %s (%s)\n", base.BaseName, base.BaseID)
	}

	fetched, err := g.fetcher.Fetch(ctx, base.BaseID, g.cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("fetching schema: %w", err)
	}

	scoped, err := scope.Apply(fetched, base.TableIDs, base.ViewIDs)
	if err != nil {
		return nil, fmt.Errorf("scoping tables: %w", err)
	}

	if g.opts.Verbose {
		fmt.Fprintf(g.opts.Log, "[scope] %s: %d of %d tables\n", base.BaseName, len(scoped), len(fetched))
	}

	out := make([]*model.Table, 0, len(scoped))
	for _, tbl := range scoped {
		m, err := builder.Build(base.BaseName, base.BaseID, tbl)
		if err != nil {
			return nil, err
		}
		if err := m.ApplyRequired(base.RequiredFields); err != nil {
			return nil, err
		}
		out = append(out, m)

		if g.opts.Verbose {
			fmt.Fprintf(g.opts.Log, "[table] %s.%s: %d fields\n", base.BaseName, tbl.Name, len(m.Fields))
		}
	}

	return out, nil
}

// Summary returns one line per generated table.
func (r *Result) Summary() []string {
	lines := make([]string, 0, len(r.Tables)+1)
	for _, tbl := range r.Tables {
		unsupported := len(tbl.Fields) - len(tbl.SupportedFields())
		line := fmt.Sprintf("  %s.%s: %d fields", tbl.BaseName, tbl.Name, len(tbl.Fields))
		if unsupported > 0 {
			line += fmt.Sprintf(" (%d unsupported)", unsupported)
		}
		if len(tbl.RequiredFields) > 0 {
			line += fmt.Sprintf(", %d required", len(tbl.RequiredFields))
		}
		lines = append(lines, line)
	}
	if n := len(r.Diagnostics.Warnings); n > 0 {
		lines = append(lines, fmt.Sprintf("  %d warnings", n))
	}
	return lines
}
