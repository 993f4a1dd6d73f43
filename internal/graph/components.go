package graph

// Component represents a connected component of tables.
type Component struct {
	Tables []string
}

// FindComponents detects connected components using undirected BFS.
// Components and their tables follow document order.
func FindComponents(g *Graph) []Component {
	visited := make(map[string]bool)
	var components []Component

	for _, id := range g.Order {
		if visited[id] {
			continue
		}
		comp := bfs(g, id, visited)
		components = append(components, Component{Tables: g.inOrder(comp)})
	}

	return components
}

func bfs(g *Graph, start string, visited map[string]bool) map[string]bool {
	queue := []string{start}
	visited[start] = true
	result := map[string]bool{start: true}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		for neighbor := range g.Adjacency[node] {
			if !visited[neighbor] {
				visited[neighbor] = true
				result[neighbor] = true
				queue = append(queue, neighbor)
			}
		}
	}

	return result
}

func (g *Graph) inOrder(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for _, id := range g.Order {
		if set[id] {
			out = append(out, id)
		}
	}
	return out
}
