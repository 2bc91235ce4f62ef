package engine

// SuccessDistribution computes the Poisson-binomial distribution of
// the number of successes among independent blocks with the given
// probabilities. dist[k] is the probability that exactly k succeed.
func SuccessDistribution(probs []float64) []float64 {
	n := len(probs)
	dist := make([]float64, n+1)
	dist[0] = 1
	for _, p := range probs {
		p = Clamp01(p)
		for k := n; k >= 0; k-- {
			dist[k] *= 1 - p
			if k > 0 {
				dist[k] += dist[k-1] * p
			}
		}
	}
	return dist
}

// KOutOfN is the standby-redundancy model: the probability that at
// least minRequired of the pooled blocks succeed, regardless of which
// specific blocks those are.
func KOutOfN(probs []float64, minRequired int) float64 {
	if minRequired <= 0 {
		return 1
	}
	if minRequired > len(probs) {
		return 0
	}
	dist := SuccessDistribution(probs)
	total := 0.0
	for k := minRequired; k <= len(probs); k++ {
		total += dist[k]
	}
	return total
}
