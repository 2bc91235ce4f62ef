package engine

import (
	"github.com/dd0wney/cluso-rbd/pkg/graph"
	"github.com/dd0wney/cluso-rbd/pkg/model"
)

// ReductionMode tags which reduction strategy produced a cluster result
type ReductionMode string

const (
	// ModeReducedSP means the series-parallel reducer fully collapsed
	// the cluster
	ModeReducedSP ReductionMode = "reduced-sp"
	// ModeParallelPaths means the disjoint-path decomposition applied
	ModeParallelPaths ReductionMode = "parallel-paths"
	// ModeLegacyGroups means the pairwise group heuristic applied
	ModeLegacyGroups ReductionMode = "legacy-groups"
)

// Cluster is one weakly-connected set of active non-reserve blocks
// together with the connections internal to it
type Cluster struct {
	// Blocks ordered by ascending display number
	Blocks []model.Block
	// Connections with both endpoints inside the cluster
	Connections []model.Connection
	// Adjacency over signal edges inside the cluster
	Adjacency graph.Adjacency
}

// ClusterResult is the outcome of reducing one cluster
type ClusterResult struct {
	Reliability float64
	General     string
	WithValues  string
	Mode        ReductionMode
	BlockIDs    []string
}

// newCluster assembles a Cluster for the given member ids
func newCluster(memberIDs []string, blocks []model.Block, connections []model.Connection) *Cluster {
	inCluster := make(map[string]bool, len(memberIDs))
	for _, id := range memberIDs {
		inCluster[id] = true
	}

	index := model.BlockIndex(blocks)
	members := make([]model.Block, 0, len(memberIDs))
	for _, id := range memberIDs {
		if b, ok := index[id]; ok {
			members = append(members, b)
		}
	}

	internal := make([]model.Connection, 0)
	for _, conn := range connections {
		if conn.IsSelfLoop() {
			continue
		}
		if inCluster[conn.FromBlockID] && inCluster[conn.ToBlockID] {
			internal = append(internal, conn)
		}
	}

	return &Cluster{
		Blocks:      members,
		Connections: internal,
		Adjacency:   graph.BuildAdjacency(members, internal),
	}
}

func (c *Cluster) blockIDs() []string {
	ids := make([]string, len(c.Blocks))
	for i, b := range c.Blocks {
		ids[i] = b.ID
	}
	return ids
}
