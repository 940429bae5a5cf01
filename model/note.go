package model

import "fmt"

// EdoNote is one step of an equal division of the octave. IsEdoPrime
// describes the division count itself, so it is identical on every note
// of the set.
type EdoNote struct {
	Index      int     `json:"index"`
	Cents      float64 `json:"cents"`
	IsEdoPrime bool    `json:"isEdoPrime"`
}

// JIInterval is a just-intonation ratio reduced to the octave [1,2).
// PrimeFactors and HighestPrime come from the pre-reduction odd
// numerator/denominator and exist for display grouping only.
type JIInterval struct {
	Numerator    int     `json:"numerator"`
	Denominator  int     `json:"denominator"`
	Cents        float64 `json:"cents"`
	PrimeFactors []int   `json:"primeFactors"`
	HighestPrime int     `json:"highestPrime"`
}

// MosNote is one note of a generator-stacked scale. Stack counts generator
// applications from the origin; stack 0 is always 0 cents.
type MosNote struct {
	Stack int     `json:"stack"`
	Cents float64 `json:"cents"`
}

// MosClassification describes the step pattern of a stacked scale. The step
// fields are populated whenever exactly two step sizes exist, even when the
// coprimality test then keeps IsMos false.
type MosClassification struct {
	IsMos          bool    `json:"isMos"`
	LargeStepCount int     `json:"largeStepCount,omitempty"`
	SmallStepCount int     `json:"smallStepCount,omitempty"`
	LargeStepSize  float64 `json:"largeStepSize,omitempty"`
	SmallStepSize  float64 `json:"smallStepSize,omitempty"`
}

// Label renders the step pattern in xL ys form, e.g. "5L 2s". Empty when
// the scale is not a moment of symmetry.
func (c MosClassification) Label() string {
	if !c.IsMos {
		return ""
	}
	return fmt.Sprintf("%dL %ds", c.LargeStepCount, c.SmallStepCount)
}

type MosResult struct {
	Notes          []MosNote         `json:"notes"`
	Classification MosClassification `json:"classification"`
}
