package formula

import (
	"fmt"
	"strconv"
)

// Choose computes the binomial coefficient C(n,k)
func Choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1.0
	for i := 1; i <= k; i++ {
		result = result * float64(n-k+i) / float64(i)
	}
	return result
}

// BernoulliTerm renders one equal-probability k-out-of-n term,
// C(n,k)·p^k·(1−p)^(n−k), with the given symbols for p and 1−p.
// Zero-exponent factors are omitted.
func BernoulliTerm(n, k int, pSym, qSym string) string {
	term := fmt.Sprintf("C(%d,%d)", n, k)
	if k > 0 {
		term += Mul + pSym
		if k > 1 {
			term += Sup(strconv.Itoa(k))
		}
	}
	if n-k > 0 {
		term += Mul + qSym
		if n-k > 1 {
			term += Sup(strconv.Itoa(n - k))
		}
	}
	return term
}

// SuccessCountSymbol labels the probability that exactly k of n pooled
// blocks succeed
func SuccessCountSymbol(k int) string {
	return "P" + Sub(strconv.Itoa(k))
}
