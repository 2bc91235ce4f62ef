package engine

import (
	"github.com/dd0wney/cluso-rbd/pkg/formula"
	"github.com/dd0wney/cluso-rbd/pkg/graph"
	"github.com/dd0wney/cluso-rbd/pkg/model"
)

// parallelPathStrategy handles clusters the series-parallel reducer
// cannot collapse, provided they look like a left bus feeding a right
// bus: at least two entry blocks (no signal input, sharing a left
// rail) and at least two exit blocks (no signal output, sharing a
// right rail). It enumerates simple entry-to-exit paths and, when the
// paths are pairwise block-disjoint, treats them as independent
// parallel branches of series chains.
type parallelPathStrategy struct{}

func (parallelPathStrategy) name() string { return string(ModeParallelPaths) }

func (parallelPathStrategy) reduce(c *Cluster) (*ClusterResult, bool) {
	entries := busGroupEnds(c, model.SideLeft)
	exits := busGroupEnds(c, model.SideRight)
	if len(entries) < 2 || len(exits) < 2 {
		return nil, false
	}

	isExit := make(map[string]bool, len(exits))
	for _, id := range exits {
		isExit[id] = true
	}

	paths := make([][]string, 0)
	for _, entry := range entries {
		paths = append(paths, simplePaths(c.Adjacency, entry, isExit)...)
	}
	if len(paths) < 2 || !pairwiseDisjoint(paths) {
		return nil, false
	}

	index := model.BlockIndex(c.Blocks)
	failAll := 1.0
	generals := make([]string, 0, len(paths))
	values := make([]string, 0, len(paths))
	for _, path := range paths {
		pathRel := 1.0
		pathGen := make([]string, 0, len(path))
		pathVal := make([]string, 0, len(path))
		for _, id := range path {
			b := index[id]
			pathRel *= Clamp01(b.Reliability)
			pathGen = append(pathGen, formula.BlockSymbol(b.Number))
			pathVal = append(pathVal, FormatProb(b.Reliability))
		}
		failAll *= 1 - pathRel
		generals = append(generals, formula.Series(pathGen))
		values = append(values, formula.Series(pathVal))
	}

	return &ClusterResult{
		Reliability: 1 - failAll,
		General:     formula.Parallel(generals),
		WithValues:  formula.Parallel(values),
		Mode:        ModeParallelPaths,
		BlockIDs:    c.blockIDs(),
	}, true
}

// busGroupEnds returns the cluster's boundary blocks on the given
// side: blocks with no signal edge touching that direction, provided
// at least two of them and all mutually reachable over same-side bus
// ties. Returns nil when the side does not form a shared rail.
func busGroupEnds(c *Cluster, side model.Side) []string {
	var degree map[string]int
	if side == model.SideLeft {
		degree = graph.SignalInDegree(c.Blocks, c.Connections)
	} else {
		degree = graph.SignalOutDegree(c.Blocks, c.Connections)
	}

	ends := make([]string, 0)
	for _, b := range c.Blocks {
		if degree[b.ID] == 0 {
			ends = append(ends, b.ID)
		}
	}
	if len(ends) < 2 {
		return nil
	}

	// All boundary blocks must share one rail over side-side ties
	position := make(map[string]int, len(c.Blocks))
	for i, b := range c.Blocks {
		position[b.ID] = i
	}
	uf := graph.NewUnionFind(len(c.Blocks))
	for _, conn := range c.Connections {
		if conn.IsBusTie() && conn.FromSide == side {
			uf.Union(position[conn.FromBlockID], position[conn.ToBlockID])
		}
	}
	root := uf.Find(position[ends[0]])
	for _, id := range ends[1:] {
		if uf.Find(position[id]) != root {
			return nil
		}
	}
	return ends
}

// simplePaths enumerates all simple directed paths from start to any
// exit block, using an explicit stack so cyclic inputs terminate
func simplePaths(adj graph.Adjacency, start string, isExit map[string]bool) [][]string {
	type frame struct {
		id   string
		next int
	}
	stack := []frame{{id: start}}
	onPath := map[string]bool{start: true}
	paths := make([][]string, 0)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.next == 0 && isExit[top.id] {
			path := make([]string, len(stack))
			for i, f := range stack {
				path[i] = f.id
			}
			paths = append(paths, path)
		}

		advanced := false
		for top.next < len(adj[top.id]) {
			child := adj[top.id][top.next]
			top.next++
			if !onPath[child] {
				stack = append(stack, frame{id: child})
				onPath[child] = true
				advanced = true
				break
			}
		}
		if !advanced {
			onPath[top.id] = false
			stack = stack[:len(stack)-1]
		}
	}
	return paths
}

// pairwiseDisjoint reports whether no block appears on two paths
func pairwiseDisjoint(paths [][]string) bool {
	seen := make(map[string]bool)
	for _, path := range paths {
		for _, id := range path {
			if seen[id] {
				return false
			}
			seen[id] = true
		}
	}
	return true
}
