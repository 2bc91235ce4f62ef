package engine

import (
	"fmt"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dd0wney/cluso-rbd/pkg/model"
)

// TestNumericInvariants verifies properties that must hold for every
// probability input
func TestNumericInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("rounding is idempotent", prop.ForAll(
		func(x float64) bool {
			once := Round6(x)
			return Round6(once) == once
		},
		gen.Float64Range(-10, 10),
	))

	properties.Property("surfaced values stay in [0,1]", prop.ForAll(
		func(x float64) bool {
			s := Surface(x)
			return s >= 0 && s <= 1
		},
		gen.Float64Range(-100, 100),
	))

	properties.Property("k-out-of-n is monotone in the requirement", prop.ForAll(
		func(probs []float64) bool {
			prev := 1.0
			for m := 0; m <= len(probs); m++ {
				current := KOutOfN(probs, m)
				if current > prev+1e-12 {
					return false
				}
				prev = current
			}
			return true
		},
		gen.SliceOfN(5, gen.Float64Range(0, 1)),
	))

	properties.TestingRun(t)
}

// ladderDiagram builds a series chain of parallel rungs: stage i has
// width[i] blocks sharing both rails, stages joined by signal edges.
// Always a true series-parallel shape, so the exact reducer and the
// legacy heuristic must agree on it.
func ladderDiagram(widths []int, rels []float64) ([]model.Block, []model.Connection) {
	blocks := make([]model.Block, 0)
	connections := make([]model.Connection, 0)
	number := 1
	ri := 0
	nextRel := func() float64 {
		r := rels[ri%len(rels)]
		ri++
		return r
	}

	stages := make([][]string, len(widths))
	for si, width := range widths {
		for j := 0; j < width; j++ {
			id := fmt.Sprintf("b%d-%d", si, j)
			blocks = append(blocks, model.Block{ID: id, Number: number, Reliability: nextRel()})
			number++
			stages[si] = append(stages[si], id)
		}
		first := stages[si][0]
		for _, other := range stages[si][1:] {
			connections = append(connections,
				busTie(fmt.Sprintf("l%s", other), first, other, model.SideLeft),
				busTie(fmt.Sprintf("r%s", other), first, other, model.SideRight),
			)
		}
		if si > 0 {
			connections = append(connections,
				signal(fmt.Sprintf("s%d", si), stages[si-1][0], stages[si][0]))
		}
	}
	return blocks, connections
}

// TestStrategyAgreementOnLadders cross-checks the exact reducer
// against the legacy grouping on randomly sized ladder networks
func TestStrategyAgreementOnLadders(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("reduction paths agree", prop.ForAll(
		func(widths []int, rels []float64) bool {
			blocks, connections := ladderDiagram(widths, rels)
			cluster := clusterFor(nil, blocks, connections)

			sp, ok := seriesParallelStrategy{}.reduce(cluster)
			if !ok {
				return false
			}
			legacy, _ := legacyGroupStrategy{}.reduce(cluster)
			return math.Abs(sp.Reliability-legacy.Reliability) < 1e-9
		},
		gen.SliceOfN(3, gen.IntRange(1, 3)),
		gen.SliceOfN(6, gen.Float64Range(0.01, 0.999)),
	))

	properties.TestingRun(t)
}
