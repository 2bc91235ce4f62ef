package graph

import (
	"github.com/dd0wney/cluso-rbd/pkg/model"
)

// Adjacency maps a block id to the blocks it signal-feeds
type Adjacency map[string][]string

// BuildAdjacency builds the directed signal adjacency over the given
// blocks. Only signal edges (one left end, one right end) contribute;
// bus ties are terminal merges handled later and self-loops are
// ignored. Pure function of its inputs.
func BuildAdjacency(blocks []model.Block, connections []model.Connection) Adjacency {
	known := make(map[string]bool, len(blocks))
	for _, b := range blocks {
		known[b.ID] = true
	}

	adj := make(Adjacency, len(blocks))
	for _, b := range blocks {
		adj[b.ID] = nil
	}

	for _, conn := range connections {
		if !conn.IsSignal() {
			continue
		}
		src, dst := conn.SignalSource(), conn.SignalTarget()
		if !known[src] || !known[dst] {
			continue
		}
		adj[src] = append(adj[src], dst)
	}

	return adj
}

// SignalInDegree counts valid signal inputs per block id
func SignalInDegree(blocks []model.Block, connections []model.Connection) map[string]int {
	degree := make(map[string]int, len(blocks))
	for _, b := range blocks {
		degree[b.ID] = 0
	}
	for _, conn := range connections {
		if !conn.IsSignal() {
			continue
		}
		if _, ok := degree[conn.SignalTarget()]; ok {
			degree[conn.SignalTarget()]++
		}
	}
	return degree
}

// SignalOutDegree counts valid signal outputs per block id
func SignalOutDegree(blocks []model.Block, connections []model.Connection) map[string]int {
	degree := make(map[string]int, len(blocks))
	for _, b := range blocks {
		degree[b.ID] = 0
	}
	for _, conn := range connections {
		if !conn.IsSignal() {
			continue
		}
		if _, ok := degree[conn.SignalSource()]; ok {
			degree[conn.SignalSource()]++
		}
	}
	return degree
}
