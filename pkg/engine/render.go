package engine

import (
	"fmt"
	"math"

	"github.com/dd0wney/cluso-rbd/pkg/formula"
	"github.com/dd0wney/cluso-rbd/pkg/graph"
	"github.com/dd0wney/cluso-rbd/pkg/model"
)

// equalProbEpsilon is the tolerance under which pooled probabilities
// count as numerically equal for the Bernoulli expansion
const equalProbEpsilon = 1e-12

// RenderFormula produces the symbolic and numeric derivation of the
// system reliability. The structure mirrors whichever reduction path
// EvaluateSystem takes, so the rendered formula is traceable to the
// actual computation. Degenerate inputs yield "G = 0".
func RenderFormula(blocks []model.Block, connections []model.Connection) formula.Formulas {
	zero := formula.Formulas{General: "G = 0", WithValues: "G = 0"}

	mains := ActiveMains(blocks, connections)
	if len(mains) == 0 {
		return zero
	}
	reserves := Reserves(blocks)
	if len(reserves) > 0 {
		return renderRedundancy(mains, reserves)
	}

	mainIDs := make([]string, len(mains))
	for i, b := range mains {
		mainIDs[i] = b.ID
	}

	generals := make([]string, 0)
	values := make([]string, 0)
	total := 1.0
	for _, member := range graph.Components(mainIDs, blocks, connections) {
		result := reduceCluster(newCluster(member, blocks, connections))
		generals = append(generals, result.General)
		values = append(values, result.WithValues)
		total *= result.Reliability
	}

	withValues := formula.Series(values)
	if len(values) > 1 {
		// Show the combined product explicitly when clusters multiply
		withValues += " = " + FormatProb(total)
	}
	return formula.Formulas{
		General:    formula.Equation(formula.Series(generals)),
		WithValues: formula.Equation(withValues),
	}
}

// renderRedundancy renders the k-out-of-n standby case: a sum of
// exact-success-count probabilities from minRequired to n. When every
// pooled probability is numerically equal, each term additionally
// expands via the binomial-coefficient Bernoulli formula.
func renderRedundancy(mains, reserves []model.Block) formula.Formulas {
	pooled := make([]float64, 0, len(mains)+len(reserves))
	for _, b := range mains {
		pooled = append(pooled, b.Reliability)
	}
	for _, b := range reserves {
		pooled = append(pooled, b.Reliability)
	}

	n := len(pooled)
	minRequired := len(mains)
	dist := SuccessDistribution(pooled)

	equal := true
	for _, p := range pooled[1:] {
		if math.Abs(p-pooled[0]) > equalProbEpsilon {
			equal = false
			break
		}
	}

	generals := make([]string, 0, n-minRequired+1)
	values := make([]string, 0, n-minRequired+1)
	total := 0.0
	for k := minRequired; k <= n; k++ {
		total += dist[k]
		if equal {
			p := Clamp01(pooled[0])
			generals = append(generals, formula.BernoulliTerm(n, k, "p", "(1 "+formula.Minus+" p)"))
			values = append(values, formula.BernoulliTerm(n, k, FormatProb(p), FormatProb(1-p)))
		} else {
			generals = append(generals, formula.SuccessCountSymbol(k))
			values = append(values, FormatProb(dist[k]))
		}
	}

	general := formula.Equation(formula.Sum(generals))
	if !equal {
		general += formula.LineBreak + fmt.Sprintf("P%s = probability that exactly k of %d blocks succeed",
			formula.Sub("k"), n)
	}
	return formula.Formulas{
		General:    general,
		WithValues: formula.Equation(formula.Sum(values) + " = " + FormatProb(total)),
	}
}
