package engine

import (
	"sort"

	"github.com/dd0wney/cluso-rbd/pkg/formula"
	"github.com/dd0wney/cluso-rbd/pkg/graph"
	"github.com/dd0wney/cluso-rbd/pkg/model"
)

// legacyGroupStrategy is the reducer of last resort. Blocks sharing
// both a left-left and a right-right bus tie pair into parallel
// groups (transitively); groups are ordered topologically over
// inter-group signal edges and their reliabilities multiply. Less
// general than the other strategies, kept for residual bus shapes
// they do not recognize. Never declines.
type legacyGroupStrategy struct{}

func (legacyGroupStrategy) name() string { return string(ModeLegacyGroups) }

func (legacyGroupStrategy) reduce(c *Cluster) (*ClusterResult, bool) {
	groups := parallelGroups(c.Blocks, c.Connections)

	numberOf := make(map[string]int, len(c.Blocks))
	index := model.BlockIndex(c.Blocks)
	for _, b := range c.Blocks {
		numberOf[b.ID] = b.Number
	}

	order := graph.OrderGroups(groups, c.Adjacency, numberOf)

	reliability := 1.0
	generals := make([]string, 0, len(order))
	values := make([]string, 0, len(order))
	for _, gi := range order {
		group := groups[gi]
		failAll := 1.0
		groupGen := make([]string, 0, len(group))
		groupVal := make([]string, 0, len(group))
		for _, id := range group {
			b := index[id]
			failAll *= 1 - Clamp01(b.Reliability)
			groupGen = append(groupGen, formula.BlockSymbol(b.Number))
			groupVal = append(groupVal, FormatProb(b.Reliability))
		}
		reliability *= 1 - failAll
		generals = append(generals, formula.Parallel(groupGen))
		values = append(values, formula.Parallel(groupVal))
	}

	return &ClusterResult{
		Reliability: reliability,
		General:     formula.Series(generals),
		WithValues:  formula.Series(values),
		Mode:        ModeLegacyGroups,
		BlockIDs:    c.blockIDs(),
	}, true
}

// parallelGroups partitions blocks into groups where two blocks join a
// group when they share both a left-left and a right-right bus tie.
// Closure is transitive. Singleton groups are included. Groups and
// their members come back ordered by block number.
func parallelGroups(blocks []model.Block, connections []model.Connection) [][]string {
	position := make(map[string]int, len(blocks))
	for i, b := range blocks {
		position[b.ID] = i
	}

	tied := func(side model.Side) map[[2]int]bool {
		pairs := make(map[[2]int]bool)
		for _, conn := range connections {
			if !conn.IsBusTie() || conn.FromSide != side {
				continue
			}
			a, aok := position[conn.FromBlockID]
			b, bok := position[conn.ToBlockID]
			if !aok || !bok {
				continue
			}
			if a > b {
				a, b = b, a
			}
			pairs[[2]int{a, b}] = true
		}
		return pairs
	}
	leftPairs := tied(model.SideLeft)
	rightPairs := tied(model.SideRight)

	uf := graph.NewUnionFind(len(blocks))
	for pair := range leftPairs {
		if rightPairs[pair] {
			uf.Union(pair[0], pair[1])
		}
	}

	byRoot := make(map[int][]string)
	for i, b := range blocks {
		root := uf.Find(i)
		byRoot[root] = append(byRoot[root], b.ID)
	}

	numberOf := make(map[string]int, len(blocks))
	for _, b := range blocks {
		numberOf[b.ID] = b.Number
	}

	groups := make([][]string, 0, len(byRoot))
	for _, members := range byRoot {
		sort.Slice(members, func(i, j int) bool {
			return numberOf[members[i]] < numberOf[members[j]]
		})
		groups = append(groups, members)
	}
	sort.Slice(groups, func(i, j int) bool {
		return numberOf[groups[i][0]] < numberOf[groups[j][0]]
	})
	return groups
}
