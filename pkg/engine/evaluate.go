package engine

import (
	"github.com/dd0wney/cluso-rbd/pkg/graph"
	"github.com/dd0wney/cluso-rbd/pkg/model"
)

// ChainDetail describes one reduced cluster in the working
// configuration
type ChainDetail struct {
	Blocks      []string `json:"blocks"`
	Reliability float64  `json:"reliability"`
	// Reserves and WithReserveReliability reflect the pooled
	// k-out-of-n result when reserve blocks exist; without reserves
	// WithReserveReliability equals Reliability.
	Reserves               []string `json:"reserves"`
	WithReserveReliability float64  `json:"withReserveReliability"`
	Mode                   string   `json:"mode"`
}

// GroupDetail describes one multi-block parallel group (blocks sharing
// both rails)
type GroupDetail struct {
	Blocks      []string `json:"blocks"`
	Reliability float64  `json:"reliability"`
}

// Details breaks a system evaluation down for display
type Details struct {
	Chains         []ChainDetail `json:"chains"`
	ParallelGroups []GroupDetail `json:"parallelGroups"`
}

// SystemResult is the full outcome of one evaluation
type SystemResult struct {
	SystemReliability float64 `json:"systemReliability"`
	Details           Details `json:"details"`
}

// EvaluateSystem computes the operational reliability of the diagram.
// Pure and stateless: every call reclassifies, reclusters, and
// re-reduces from scratch. Never fails; malformed configurations
// degrade to a reliability of zero.
func EvaluateSystem(blocks []model.Block, connections []model.Connection) SystemResult {
	empty := SystemResult{Details: Details{
		Chains:         []ChainDetail{},
		ParallelGroups: []GroupDetail{},
	}}

	mains := ActiveMains(blocks, connections)
	if len(mains) == 0 {
		return empty
	}
	reserves := Reserves(blocks)

	mainIDs := make([]string, len(mains))
	for i, b := range mains {
		mainIDs[i] = b.ID
	}

	results := make([]*ClusterResult, 0)
	base := 1.0
	for _, member := range graph.Components(mainIDs, blocks, connections) {
		result := reduceCluster(newCluster(member, blocks, connections))
		results = append(results, result)
		base *= result.Reliability
	}

	reserveIDs := make([]string, len(reserves))
	pooled := make([]float64, 0, len(mains)+len(reserves))
	for _, b := range mains {
		pooled = append(pooled, b.Reliability)
	}
	for i, b := range reserves {
		reserveIDs[i] = b.ID
		pooled = append(pooled, b.Reliability)
	}

	system := base
	withReserve := 0.0
	if len(reserves) > 0 {
		// Standby redundancy pools every main with every reserve;
		// the system works when at least |mains| of them do.
		withReserve = KOutOfN(pooled, len(mains))
		system = withReserve
	}

	chains := make([]ChainDetail, 0, len(results))
	for _, result := range results {
		chain := ChainDetail{
			Blocks:                 result.BlockIDs,
			Reliability:            Surface(result.Reliability),
			Reserves:               []string{},
			WithReserveReliability: Surface(result.Reliability),
			Mode:                   string(result.Mode),
		}
		if len(reserves) > 0 {
			chain.Reserves = reserveIDs
			chain.WithReserveReliability = Surface(withReserve)
		}
		chains = append(chains, chain)
	}

	return SystemResult{
		SystemReliability: Surface(system),
		Details: Details{
			Chains:         chains,
			ParallelGroups: groupDetails(mains, connections),
		},
	}
}

// groupDetails lists every multi-block parallel group among the active
// blocks with its independent-OR reliability
func groupDetails(mains []model.Block, connections []model.Connection) []GroupDetail {
	index := model.BlockIndex(mains)
	details := make([]GroupDetail, 0)
	for _, group := range parallelGroups(mains, connections) {
		if len(group) < 2 {
			continue
		}
		failAll := 1.0
		for _, id := range group {
			failAll *= 1 - Clamp01(index[id].Reliability)
		}
		details = append(details, GroupDetail{
			Blocks:      group,
			Reliability: Surface(1 - failAll),
		})
	}
	return details
}
