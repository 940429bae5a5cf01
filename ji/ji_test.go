package ji

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xenviz/engine/model"
	"github.com/xenviz/engine/util"
)

func hasRatio(intervals []model.JIInterval, num, den int) bool {
	for _, iv := range intervals {
		if iv.Numerator == num && iv.Denominator == den {
			return true
		}
	}
	return false
}

func TestReductionInvariant(t *testing.T) {
	assert := assert.New(t)

	intervals, err := Generate([]int{3, 5}, 9)
	assert.NoError(err)
	assert.NotEmpty(intervals)
	for _, iv := range intervals {
		assert.Equal(1, util.Gcd(iv.Numerator, iv.Denominator))
		ratio := float64(iv.Numerator) / float64(iv.Denominator)
		assert.GreaterOrEqual(ratio, 1.0)
		assert.Less(ratio, 2.0)
	}
}

func TestPrimeFilterIsStrict(t *testing.T) {
	assert := assert.New(t)

	intervals, err := Generate([]int{3, 5}, 9)
	assert.NoError(err)

	for _, iv := range intervals {
		for _, f := range iv.PrimeFactors {
			assert.Contains([]int{3, 5}, f)
		}
	}
	assert.False(hasRatio(intervals, 7, 4))
	assert.False(hasRatio(intervals, 9, 7))
	assert.True(hasRatio(intervals, 5, 3))
	assert.True(hasRatio(intervals, 9, 5))
}

func TestCentsMatchRatios(t *testing.T) {
	assert := assert.New(t)

	intervals, err := Generate([]int{3}, 3)
	assert.NoError(err)
	// 3/1 drops to 3/2, 1/3 rises to 4/3
	assert.Len(intervals, 2)
	for _, iv := range intervals {
		expected := 1200 * math.Log2(float64(iv.Numerator)/float64(iv.Denominator))
		assert.InDelta(expected, iv.Cents, 1e-9)
	}
	assert.True(hasRatio(intervals, 3, 2))
	assert.True(hasRatio(intervals, 4, 3))
}

func TestDeduplicatesByCents(t *testing.T) {
	assert := assert.New(t)

	intervals, err := Generate([]int{3, 5, 7}, 15)
	assert.NoError(err)
	for i := range intervals {
		for j := i + 1; j < len(intervals); j++ {
			diff := math.Abs(intervals[i].Cents - intervals[j].Cents)
			assert.GreaterOrEqual(diff, 1e-6)
		}
	}
}

func TestHighestPrimeComesFromBothSides(t *testing.T) {
	assert := assert.New(t)

	intervals, err := Generate([]int{3, 5}, 9)
	assert.NoError(err)
	for _, iv := range intervals {
		if iv.Numerator == 5 && iv.Denominator == 3 {
			assert.Equal([]int{3, 5}, iv.PrimeFactors)
			assert.Equal(5, iv.HighestPrime)
		}
		// 9/8 comes from the 9:1 pair, so its factor set is the odd side only
		if iv.Numerator == 9 && iv.Denominator == 8 {
			assert.Equal([]int{3}, iv.PrimeFactors)
			assert.Equal(3, iv.HighestPrime)
		}
	}
}

func TestEmptyPrimeSelectionYieldsNothing(t *testing.T) {
	assert := assert.New(t)

	intervals, err := Generate(nil, 9)
	assert.NoError(err)
	assert.Empty(intervals)
}

func TestRejectsBadOddLimit(t *testing.T) {
	assert := assert.New(t)

	for _, limit := range []int{0, -3, 8} {
		_, err := Generate([]int{3, 5}, limit)
		var domainErr *model.DomainError
		assert.True(errors.As(err, &domainErr), "oddLimit %v", limit)
	}
}

func TestIdempotence(t *testing.T) {
	assert := assert.New(t)

	first, err := Generate([]int{3, 5, 7}, 9)
	assert.NoError(err)
	second, err := Generate([]int{3, 5, 7}, 9)
	assert.NoError(err)
	assert.Equal(first, second)
}

func TestPrimeFactorsHelper(t *testing.T) {
	assert := assert.New(t)

	assert.Empty(primeFactors(1))
	assert.Equal([]int{3}, primeFactors(9))
	assert.Equal([]int{3, 5}, primeFactors(45))
	assert.Equal([]int{7}, primeFactors(7))
}
