package graph

import (
	"github.com/hurou927/table-schema-gen/internal/model"
)

// Edge is a directed link from the table holding a link field to its target.
type Edge struct {
	Link model.Link
	From string // table id
	To   string // table id
}

// Graph is a directed graph built from link fields.
type Graph struct {
	// Tables maps table id -> table
	Tables map[string]*model.Table

	// Order lists table ids in document order
	Order []string

	// Edges are links between distinct tables
	Edges []Edge

	// SelfRefs holds links back to the same table, keyed by table id
	SelfRefs map[string][]model.Link

	// Targets maps table id → ids of tables it links to
	Targets map[string][]string

	// Sources maps table id → ids of tables linking to it
	Sources map[string][]string

	// Adjacency for undirected connectivity
	Adjacency map[string]map[string]bool

	// Dangling holds links whose target table is not in scope
	Dangling []Edge
}

// Build constructs the link graph of tables. Links to tables outside the
// given set are recorded as dangling and otherwise ignored.
func Build(tables []*model.Table) *Graph {
	g := &Graph{
		Tables:    make(map[string]*model.Table, len(tables)),
		SelfRefs:  make(map[string][]model.Link),
		Targets:   make(map[string][]string),
		Sources:   make(map[string][]string),
		Adjacency: make(map[string]map[string]bool),
	}

	for _, tbl := range tables {
		if _, seen := g.Tables[tbl.ID]; seen {
			continue
		}
		g.Tables[tbl.ID] = tbl
		g.Order = append(g.Order, tbl.ID)
		g.Adjacency[tbl.ID] = make(map[string]bool)
	}

	for _, id := range g.Order {
		tbl := g.Tables[id]
		for _, link := range tbl.Links {
			edge := Edge{Link: link, From: id, To: link.LinkedTableID}

			if _, ok := g.Tables[link.LinkedTableID]; !ok {
				g.Dangling = append(g.Dangling, edge)
				continue
			}

			if link.LinkedTableID == id {
				g.SelfRefs[id] = append(g.SelfRefs[id], link)
				continue
			}

			g.Edges = append(g.Edges, edge)
			g.Targets[id] = appendUnique(g.Targets[id], edge.To)
			g.Sources[edge.To] = appendUnique(g.Sources[edge.To], id)
			g.Adjacency[id][edge.To] = true
			g.Adjacency[edge.To][id] = true
		}
	}

	return g
}

func appendUnique(list []string, v string) []string {
	for _, s := range list {
		if s == v {
			return list
		}
	}
	return append(list, v)
}

// Unlinked returns tables that neither link to nor are linked from another table.
func (g *Graph) Unlinked() []string {
	var out []string
	for _, id := range g.Order {
		if len(g.Adjacency[id]) == 0 && len(g.SelfRefs[id]) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// Name returns the display name of a table id, or the id itself.
func (g *Graph) Name(id string) string {
	if tbl, ok := g.Tables[id]; ok {
		return tbl.Name
	}
	return id
}
