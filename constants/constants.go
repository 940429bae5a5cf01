package constants

import "os"

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// CentsPerOctave is the size of the 2:1 octave in cents.
const CentsPerOctave = 1200.0

// JIDedupTolerance merges two just-intonation intervals whose cents values
// differ by less than this.
const JIDedupTolerance = 1e-6

// MosStepTolerance matches a step against a classified step size.
const MosStepTolerance = 1e-4

// MosStepDecimals is the rounding applied to steps before they are
// compared. Looser loses legitimate distinctions, tighter lets float noise
// from repeated addition split one step size in two.
const MosStepDecimals = 5
