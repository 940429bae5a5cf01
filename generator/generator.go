package generator

import (
	"math"
	"strconv"
	"strings"

	"github.com/xenviz/engine/constants"
	"github.com/xenviz/engine/model"
)

// Kind discriminates the accepted generator grammars.
type Kind int

const (
	KindEdoSteps Kind = iota
	KindRatio
	KindCents
)

// Value is a parsed generator expression. For KindEdoSteps, A is the step
// count and B the division count; for KindRatio, A/B is the frequency
// ratio; for KindCents, A holds the raw cents value and B is unused.
type Value struct {
	Kind Kind
	A    float64
	B    float64
}

// Cents converts the value to cents. Plain cents values pass through
// unmodified, so negative or >1200 results are legal here; octave
// normalization is the caller's concern.
func (v Value) Cents() float64 {
	switch v.Kind {
	case KindEdoSteps:
		return v.A / v.B * constants.CentsPerOctave
	case KindRatio:
		return constants.CentsPerOctave * math.Log2(v.A/v.B)
	default:
		return v.A
	}
}

// Parse matches input against the three grammars in priority order:
// "steps\edo", then "num/den", then plain cents. Detection is purely
// syntactic, so a malformed "3/x" fails as a ratio attempt instead of
// falling through to the cents form.
func Parse(input string) (Value, error) {
	s := strings.TrimSpace(input)

	if strings.Contains(s, `\`) {
		parts := strings.Split(s, `\`)
		if len(parts) != 2 {
			return Value{}, &model.FormatError{Msg: `Invalid EDO format. Use n\edo`}
		}
		steps, stepsErr := strconv.ParseFloat(parts[0], 64)
		edo, edoErr := strconv.ParseFloat(parts[1], 64)
		if stepsErr != nil || edoErr != nil || edo <= 0 {
			return Value{}, &model.FormatError{Msg: `Invalid EDO format. Use n\edo`}
		}
		return Value{Kind: KindEdoSteps, A: steps, B: edo}, nil
	}

	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) != 2 {
			return Value{}, &model.FormatError{Msg: "Invalid ratio format. Use n/d"}
		}
		num, numErr := strconv.ParseFloat(parts[0], 64)
		den, denErr := strconv.ParseFloat(parts[1], 64)
		if numErr != nil || denErr != nil || num <= 0 || den <= 0 {
			return Value{}, &model.FormatError{Msg: "Invalid ratio format. Use n/d"}
		}
		return Value{Kind: KindRatio, A: num, B: den}, nil
	}

	cents, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, &model.FormatError{Msg: `Invalid interval. Use cents (701.955), a ratio (3/2) or EDO steps (7\12)`}
	}
	return Value{Kind: KindCents, A: cents}, nil
}

// ParseCents is Parse followed by Cents.
func ParseCents(input string) (float64, error) {
	v, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return v.Cents(), nil
}
