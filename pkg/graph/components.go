package graph

import (
	"sort"

	"github.com/dd0wney/cluso-rbd/pkg/model"
)

// Components groups the given block ids into weakly-connected clusters
// using every connection (signal and bus tie alike) whose both ends
// lie inside the id set. BFS with an explicit visited set, so cyclic
// and malformed inputs terminate. Clusters come back ordered by the
// smallest block number they contain; ids inside a cluster are ordered
// by block number.
func Components(blockIDs []string, blocks []model.Block, connections []model.Connection) [][]string {
	inSet := make(map[string]bool, len(blockIDs))
	for _, id := range blockIDs {
		inSet[id] = true
	}

	// Undirected neighbor lists over every usable connection
	neighbors := make(map[string][]string, len(blockIDs))
	for _, conn := range connections {
		if conn.IsSelfLoop() {
			continue
		}
		if !inSet[conn.FromBlockID] || !inSet[conn.ToBlockID] {
			continue
		}
		neighbors[conn.FromBlockID] = append(neighbors[conn.FromBlockID], conn.ToBlockID)
		neighbors[conn.ToBlockID] = append(neighbors[conn.ToBlockID], conn.FromBlockID)
	}

	numberOf := make(map[string]int, len(blocks))
	for _, b := range blocks {
		numberOf[b.ID] = b.Number
	}

	visited := make(map[string]bool, len(blockIDs))
	components := make([][]string, 0)

	for _, start := range blockIDs {
		if visited[start] {
			continue
		}

		component := make([]string, 0)
		queue := []string{start}
		visited[start] = true

		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			component = append(component, current)

			for _, next := range neighbors[current] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}

		sort.Slice(component, func(i, j int) bool {
			return numberOf[component[i]] < numberOf[component[j]]
		})
		components = append(components, component)
	}

	sort.Slice(components, func(i, j int) bool {
		return numberOf[components[i][0]] < numberOf[components[j][0]]
	})
	return components
}
