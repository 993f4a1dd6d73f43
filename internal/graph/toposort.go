package graph

// TopoResult holds the result of topological sorting.
type TopoResult struct {
	// Order lists linked-to tables before the tables linking to them.
	Order []string
	// HasCycle is true if the links form a cycle.
	HasCycle bool
	// CycleTables lists tables involved in cycles (if any).
	CycleTables []string
}

// TopoSort performs Kahn's algorithm on the given set of tables within the graph.
func TopoSort(g *Graph, tables []string) TopoResult {
	tableSet := make(map[string]bool, len(tables))
	for _, t := range tables {
		tableSet[t] = true
	}

	// In-degree = number of link targets within the subset
	inDegree := make(map[string]int, len(tables))
	dependents := make(map[string][]string)
	for _, t := range tables {
		inDegree[t] = 0
	}
	for _, t := range tables {
		for _, target := range g.Targets[t] {
			if tableSet[target] {
				dependents[target] = append(dependents[target], t)
				inDegree[t]++
			}
		}
	}

	var queue []string
	for _, t := range tables {
		if inDegree[t] == 0 {
			queue = append(queue, t)
		}
	}

	var order []string
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)

		for _, dep := range dependents[node] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	result := TopoResult{Order: order}

	if len(order) < len(tables) {
		result.HasCycle = true
		for _, t := range tables {
			if inDegree[t] > 0 {
				result.CycleTables = append(result.CycleTables, t)
			}
		}
	}

	return result
}

// TopoSortAll performs topological sort across all tables in the graph.
func TopoSortAll(g *Graph) TopoResult {
	return TopoSort(g, g.Order)
}
