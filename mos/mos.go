package mos

import (
	"math"

	"github.com/xenviz/engine/constants"
	"github.com/xenviz/engine/generator"
	"github.com/xenviz/engine/model"
	"github.com/xenviz/engine/util"
)

// Generate stacks the generator stackCount times from 0 cents, normalizing
// every note into [0,1200), and classifies the resulting step pattern.
// Notes keep stack order, not pitch order.
func Generate(generatorCents float64, stackCount int) (model.MosResult, error) {
	var res model.MosResult
	if stackCount < 0 {
		return res, &model.DomainError{Param: "stackCount", Msg: "must be a non-negative integer"}
	}

	notes := make([]model.MosNote, stackCount+1)
	notes[0] = model.MosNote{Stack: 0, Cents: 0}
	cumulative := 0.0
	for i := 1; i <= stackCount; i++ {
		cumulative += generatorCents
		notes[i] = model.MosNote{Stack: i, Cents: normalize(cumulative)}
	}
	res.Notes = notes
	res.Classification = classify(notes)
	return res, nil
}

// GenerateFromExpression parses expr with the generator grammar before
// stacking, so callers can pass "3/2" or "7\12" straight through.
func GenerateFromExpression(expr string, stackCount int) (model.MosResult, error) {
	cents, err := generator.ParseCents(expr)
	if err != nil {
		return model.MosResult{}, err
	}
	return Generate(cents, stackCount)
}

// normalize maps cents into [0, 1200). The double mod keeps negative
// generators on the positive side of the octave.
func normalize(cents float64) float64 {
	m := math.Mod(cents, constants.CentsPerOctave)
	return math.Mod(m+constants.CentsPerOctave, constants.CentsPerOctave)
}

func classify(notes []model.MosNote) model.MosClassification {
	var c model.MosClassification

	// a generator that rationally divides the octave revisits pitches it
	// already produced; the scale is its distinct pitch classes
	classes := distinctClasses(notes)
	if len(classes) < 2 {
		return c
	}
	sorted := util.SortedCopy(classes)

	steps := make([]float64, len(sorted))
	for i := range sorted {
		step := sorted[(i+1)%len(sorted)] - sorted[i]
		if step < 0 {
			step += constants.CentsPerOctave
		}
		steps[i] = roundStep(step)
	}

	distinct := distinctValues(steps)
	if len(distinct) != 2 {
		return c
	}

	small, large := distinct[0], distinct[1]
	c.SmallStepSize = small
	c.LargeStepSize = large
	for _, s := range steps {
		switch {
		case math.Abs(s-small) < constants.MosStepTolerance:
			c.SmallStepCount++
		case math.Abs(s-large) < constants.MosStepTolerance:
			c.LargeStepCount++
		}
	}

	// two step sizes whose counts share a divisor are a repeated smaller
	// pattern (4L 4s is 1L 1s four times over), not a moment of symmetry
	c.IsMos = c.SmallStepCount > 0 && util.Gcd(c.LargeStepCount, c.SmallStepCount) == 1
	return c
}

// distinctClasses collapses notes whose rounded cents coincide, keeping the
// first occurrence of each pitch class.
func distinctClasses(notes []model.MosNote) []float64 {
	seen := make(map[float64]bool, len(notes))
	var classes []float64
	for _, n := range notes {
		key := roundStep(n.Cents)
		if seen[key] {
			continue
		}
		seen[key] = true
		classes = append(classes, n.Cents)
	}
	return classes
}

// distinctValues returns the unique values ascending.
func distinctValues(vals []float64) []float64 {
	set := make(map[float64]bool, len(vals))
	for _, v := range vals {
		set[v] = true
	}
	return util.SortedCopy(util.GetKeys(set))
}

func roundStep(v float64) float64 {
	factor := math.Pow(10, constants.MosStepDecimals)
	return math.Round(v*factor) / factor
}
