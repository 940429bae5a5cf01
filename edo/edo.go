package edo

import (
	"math"

	"github.com/xenviz/engine/constants"
	"github.com/xenviz/engine/model"
)

// Generate returns the divisions equally spaced notes of one octave.
func Generate(divisions int) ([]model.EdoNote, error) {
	if divisions <= 0 {
		return nil, &model.DomainError{Param: "divisions", Msg: "must be a positive integer"}
	}

	prime := isPrime(divisions)
	notes := make([]model.EdoNote, divisions)
	for n := 0; n < divisions; n++ {
		notes[n] = model.EdoNote{
			Index:      n,
			Cents:      float64(n) / float64(divisions) * constants.CentsPerOctave,
			IsEdoPrime: prime,
		}
	}
	return notes, nil
}

func isPrime(n int) bool {
	if n <= 1 {
		return false
	}
	for i := 2; i <= int(math.Sqrt(float64(n))); i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}
