package graph

import (
	"fmt"
	"io"
	"strings"
)

// WriteMermaid writes the link graph in Mermaid format to w.
// Each connected component is a subgraph.
func WriteMermaid(w io.Writer, g *Graph) error {
	components := FindComponents(g)

	if _, err := fmt.Fprintln(w, "graph LR"); err != nil {
		return err
	}

	for i, comp := range components {
		fmt.Fprintf(w, "    subgraph component_%d\n", i+1)

		tableSet := make(map[string]bool, len(comp.Tables))
		for _, t := range comp.Tables {
			tableSet[t] = true
			fmt.Fprintf(w, "        %s[%q]\n", mermaidID(t), mermaidLabel(g.Name(t)))
		}

		edgesWritten := make(map[string]bool)
		for _, edge := range g.Edges {
			if !tableSet[edge.From] {
				continue
			}
			edgeKey := fmt.Sprintf("%s-->%s:%s", edge.From, edge.To, edge.Link.Identifier)
			if edgesWritten[edgeKey] {
				continue
			}
			edgesWritten[edgeKey] = true
			fmt.Fprintf(w, "        %s -->|%s| %s\n",
				mermaidID(edge.From), edge.Link.Identifier, mermaidID(edge.To))
		}

		for _, t := range comp.Tables {
			for _, link := range g.SelfRefs[t] {
				fmt.Fprintf(w, "        %s -->|%s| %s\n", mermaidID(t), link.Identifier, mermaidID(t))
			}
		}

		fmt.Fprintln(w, "    end")
		if i < len(components)-1 {
			fmt.Fprintln(w)
		}
	}

	return nil
}

// WriteText writes a text summary of the link graph to w.
func WriteText(w io.Writer, g *Graph) error {
	components := FindComponents(g)

	if _, err := fmt.Fprintf(w, "Tables: %d\n", len(g.Tables)); err != nil {
		return err
	}
	fmt.Fprintf(w, "Links: %d\n", len(g.Edges)+countSelfRefs(g))
	fmt.Fprintf(w, "Connected Components: %d\n\n", len(components))

	if len(g.Dangling) > 0 {
		var targets []string
		for _, e := range g.Dangling {
			targets = append(targets, fmt.Sprintf("%s.%s -> %s", g.Name(e.From), e.Link.Identifier, e.To))
		}
		fmt.Fprintf(w, "WARNING: Links to tables outside the generated scope: %v\n\n", targets)
	}

	topo := TopoSortAll(g)
	if topo.HasCycle {
		fmt.Fprintf(w, "Circular links: %v\n\n", names(g, topo.CycleTables))
	}

	if len(g.SelfRefs) > 0 {
		var selfRefTables []string
		for _, id := range g.Order {
			if len(g.SelfRefs[id]) > 0 {
				selfRefTables = append(selfRefTables, g.Name(id))
			}
		}
		fmt.Fprintf(w, "Self-linking tables: %v\n\n", selfRefTables)
	}

	fmt.Fprintf(w, "Unlinked tables: %v\n\n", names(g, g.Unlinked()))

	for i, comp := range components {
		fmt.Fprintf(w, "=== Component %d (%d tables) ===\n", i+1, len(comp.Tables))

		topoComp := TopoSort(g, comp.Tables)
		if topoComp.HasCycle {
			fmt.Fprintf(w, "  Link order (partial, has cycle):\n")
		} else {
			fmt.Fprintf(w, "  Link order:\n")
		}
		for j, id := range topoComp.Order {
			tbl := g.Tables[id]
			fmt.Fprintf(w, "    %d. %s (%s, %d fields, %d links)\n",
				j+1, tbl.Name, id, len(tbl.Fields), len(tbl.Links))
		}
		if topoComp.HasCycle {
			fmt.Fprintf(w, "  Cycle tables: %v\n", names(g, topoComp.CycleTables))
		}
		fmt.Fprintln(w)
	}

	return nil
}

// mermaidID converts a table id to a Mermaid-safe node ID.
func mermaidID(id string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') {
			return r
		}
		return '_'
	}, id)
}

func mermaidLabel(name string) string {
	return strings.ReplaceAll(name, `"`, "'")
}

func names(g *Graph, ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = g.Name(id)
	}
	return out
}

func countSelfRefs(g *Graph) int {
	count := 0
	for _, links := range g.SelfRefs {
		count += len(links)
	}
	return count
}
