package engine

// strategy is one reduction approach. reduce returns ok=false when the
// cluster's shape is outside what the strategy can handle; the caller
// tries the next strategy in order.
type strategy interface {
	name() string
	reduce(c *Cluster) (*ClusterResult, bool)
}

// reductionChain is the ordered fallback chain. The series-parallel
// reducer is exact on any true series-parallel topology; the disjoint
// path decomposition covers bus-to-bus multi-branch shapes it cannot
// collapse; the legacy group heuristic always answers.
var reductionChain = []strategy{
	seriesParallelStrategy{},
	parallelPathStrategy{},
	legacyGroupStrategy{},
}

// reduceCluster runs the fallback chain. The last strategy always
// succeeds, so the result is never nil.
func reduceCluster(c *Cluster) *ClusterResult {
	for _, s := range reductionChain {
		if result, ok := s.reduce(c); ok {
			return result
		}
	}
	// Unreachable: legacyGroupStrategy never declines
	return &ClusterResult{Mode: ModeLegacyGroups, BlockIDs: c.blockIDs()}
}
