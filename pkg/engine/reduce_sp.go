package engine

import (
	"github.com/dd0wney/cluso-rbd/pkg/formula"
	"github.com/dd0wney/cluso-rbd/pkg/graph"
	"github.com/dd0wney/cluso-rbd/pkg/model"
)

// maxReduceIterations bounds the merge loop so a shape the rules never
// shrink cannot spin
const maxReduceIterations = 200

// reducedEdge is one block (or merged sub-network) between two
// terminal equivalence classes
type reducedEdge struct {
	from, to    int
	reliability float64
	general     string
	withValues  string
}

// seriesParallelStrategy collapses a cluster to a single edge by
// alternating parallel and series merges over terminal equivalence
// classes. Exact for every series-parallel topology; declines on
// anything it cannot fully collapse.
type seriesParallelStrategy struct{}

func (seriesParallelStrategy) name() string { return string(ModeReducedSP) }

func (seriesParallelStrategy) reduce(c *Cluster) (*ClusterResult, bool) {
	if len(c.Blocks) == 0 {
		return nil, false
	}

	edges := buildReducedEdges(c)

	for iter := 0; iter < maxReduceIterations; iter++ {
		if len(edges) == 1 {
			break
		}
		merged, changed := mergeParallel(edges)
		if !changed {
			merged, changed = mergeSeries(merged)
		}
		if !changed {
			break
		}
		edges = merged
	}

	if len(edges) != 1 || edges[0].from == edges[0].to {
		return nil, false
	}

	return &ClusterResult{
		Reliability: edges[0].reliability,
		General:     edges[0].general,
		WithValues:  edges[0].withValues,
		Mode:        ModeReducedSP,
		BlockIDs:    c.blockIDs(),
	}, true
}

// buildReducedEdges assigns each (block, side) terminal a dense index,
// merges terminals joined by bus ties and by signal edges (a signal
// edge identifies the source output with the destination input), and
// emits one edge per block between its two terminal classes.
func buildReducedEdges(c *Cluster) []reducedEdge {
	position := make(map[string]int, len(c.Blocks))
	for i, b := range c.Blocks {
		position[b.ID] = i
	}
	terminal := func(blockID string, side model.Side) int {
		idx := position[blockID] * 2
		if side == model.SideRight {
			idx++
		}
		return idx
	}

	uf := graph.NewUnionFind(len(c.Blocks) * 2)
	for _, conn := range c.Connections {
		switch {
		case conn.IsBusTie():
			uf.Union(terminal(conn.FromBlockID, conn.FromSide), terminal(conn.ToBlockID, conn.ToSide))
		case conn.IsSignal():
			uf.Union(terminal(conn.SignalSource(), model.SideRight), terminal(conn.SignalTarget(), model.SideLeft))
		}
	}

	edges := make([]reducedEdge, 0, len(c.Blocks))
	for _, b := range c.Blocks {
		edges = append(edges, reducedEdge{
			from:        uf.Find(terminal(b.ID, model.SideLeft)),
			to:          uf.Find(terminal(b.ID, model.SideRight)),
			reliability: Clamp01(b.Reliability),
			general:     formula.BlockSymbol(b.Number),
			withValues:  FormatProb(b.Reliability),
		})
	}
	return edges
}

// mergeParallel collapses every set of edges sharing a (from, to) pair
// into one edge with the independent-OR reliability 1 − Π(1 − rᵢ)
func mergeParallel(edges []reducedEdge) ([]reducedEdge, bool) {
	type pair struct{ from, to int }
	buckets := make(map[pair][]int)
	order := make([]pair, 0)
	for i, e := range edges {
		p := pair{e.from, e.to}
		if _, seen := buckets[p]; !seen {
			order = append(order, p)
		}
		buckets[p] = append(buckets[p], i)
	}

	changed := false
	merged := make([]reducedEdge, 0, len(order))
	for _, p := range order {
		members := buckets[p]
		if len(members) == 1 {
			merged = append(merged, edges[members[0]])
			continue
		}
		changed = true
		failAll := 1.0
		generals := make([]string, 0, len(members))
		values := make([]string, 0, len(members))
		for _, i := range members {
			failAll *= 1 - edges[i].reliability
			generals = append(generals, edges[i].general)
			values = append(values, edges[i].withValues)
		}
		merged = append(merged, reducedEdge{
			from:        p.from,
			to:          p.to,
			reliability: 1 - failAll,
			general:     formula.Parallel(generals),
			withValues:  formula.Parallel(values),
		})
	}
	return merged, changed
}

// mergeSeries finds an interior terminal with exactly one incoming and
// one outgoing edge and splices the two edges into one with the
// independent-AND reliability r_in × r_out. One merge per call; the
// outer loop repeats until quiescence.
func mergeSeries(edges []reducedEdge) ([]reducedEdge, bool) {
	inAt := make(map[int][]int)
	outAt := make(map[int][]int)
	for i, e := range edges {
		if e.from == e.to {
			continue
		}
		inAt[e.to] = append(inAt[e.to], i)
		outAt[e.from] = append(outAt[e.from], i)
	}

	for _, e := range edges {
		node := e.to
		if len(inAt[node]) != 1 || len(outAt[node]) != 1 {
			continue
		}
		in := edges[inAt[node][0]]
		out := edges[outAt[node][0]]
		spliced := reducedEdge{
			from:        in.from,
			to:          out.to,
			reliability: in.reliability * out.reliability,
			general:     formula.Series([]string{in.general, out.general}),
			withValues:  formula.Series([]string{in.withValues, out.withValues}),
		}
		merged := make([]reducedEdge, 0, len(edges)-1)
		for i := range edges {
			if i == inAt[node][0] || i == outAt[node][0] {
				continue
			}
			merged = append(merged, edges[i])
		}
		return append(merged, spliced), true
	}
	return edges, false
}
