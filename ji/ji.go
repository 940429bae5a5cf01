package ji

import (
	"math"
	"sort"

	"github.com/xenviz/engine/constants"
	"github.com/xenviz/engine/model"
	"github.com/xenviz/engine/util"
)

// Generate enumerates the just-intonation intervals whose odd numerator and
// denominator stay within oddLimit and factor entirely into selectedPrimes,
// reduced into the octave [1,2), simplified, and deduplicated by cents.
// The odd limit constrains the numbers before octave equivalence, so the
// limit check happens on the raw pair and the doubling happens after.
func Generate(selectedPrimes []int, oddLimit int) ([]model.JIInterval, error) {
	if oddLimit < 1 || oddLimit%2 == 0 {
		return nil, &model.DomainError{Param: "oddLimit", Msg: "must be a positive odd integer"}
	}

	selected := make(map[int]bool, len(selectedPrimes))
	for _, p := range selectedPrimes {
		selected[p] = true
	}

	intervals := make([]model.JIInterval, 0)
	var seen []float64
	for num := 1; num <= oddLimit; num += 2 {
		numFactors := primeFactors(num)
		if !allSelected(numFactors, selected) {
			continue
		}
		for den := 1; den <= oddLimit; den += 2 {
			if num == den {
				continue
			}
			denFactors := primeFactors(den)
			if !allSelected(denFactors, selected) {
				continue
			}

			n, d := reduceToOctave(num, den)
			g := util.Gcd(n, d)
			n, d = n/g, d/g

			cents := constants.CentsPerOctave * math.Log2(float64(n)/float64(d))
			if containsWithin(seen, cents, constants.JIDedupTolerance) {
				continue
			}
			seen = append(seen, cents)

			factors := mergeFactors(numFactors, denFactors)
			intervals = append(intervals, model.JIInterval{
				Numerator:    n,
				Denominator:  d,
				Cents:        cents,
				PrimeFactors: factors,
				HighestPrime: highest(factors),
			})
		}
	}
	return intervals, nil
}

// primeFactors returns the distinct prime factors of n in ascending order,
// without multiplicity. primeFactors(1) is empty.
func primeFactors(n int) []int {
	var factors []int
	for p := 2; p*p <= n; p++ {
		if n%p == 0 {
			factors = append(factors, p)
			for n%p == 0 {
				n /= p
			}
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

func allSelected(factors []int, selected map[int]bool) bool {
	for _, f := range factors {
		if !selected[f] {
			return false
		}
	}
	return true
}

// reduceToOctave doubles num or den until 1 <= num/den < 2.
func reduceToOctave(num, den int) (int, int) {
	for num >= 2*den {
		den *= 2
	}
	for num < den {
		num *= 2
	}
	return num, den
}

func containsWithin(vals []float64, v float64, tolerance float64) bool {
	for _, existing := range vals {
		if math.Abs(existing-v) < tolerance {
			return true
		}
	}
	return false
}

func mergeFactors(a []int, b []int) []int {
	set := make(map[int]bool, len(a)+len(b))
	for _, f := range a {
		set[f] = true
	}
	for _, f := range b {
		set[f] = true
	}
	merged := util.GetKeys(set)
	sort.Ints(merged)
	return merged
}

func highest(factors []int) int {
	var res int
	for _, f := range factors {
		if f > res {
			res = f
		}
	}
	return res
}
