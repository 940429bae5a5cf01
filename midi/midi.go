package midi

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	// middle C carries 0 cents
	baseKey  = 60
	velocity = 100
	ticks    = smf.MetricTicks(960)
	// one quarter note per scale degree
	noteTicks = 960
	// deviation is mapped over the default +/-2 semitone wheel range
	wheelRangeCents = 200.0
	wheelMax        = 8192.0
)

// WriteScale renders the cents values as one ascending pass on a single
// track, detuning each note from its nearest equal-tempered key with a
// pitch bend event. When out is empty a fresh uuid filename is used.
// Returns the filename written.
func WriteScale(cents []float64, out string) (string, error) {
	if out == "" {
		out = uuid.New().String() + ".mid"
	}

	s := buildSMF(cents)
	if err := s.WriteFile(out); err != nil {
		return "", fmt.Errorf("error writing midi file... %v", err)
	}
	return out, nil
}

func buildSMF(cents []float64) *smf.SMF {
	var s smf.SMF
	s.TimeFormat = ticks

	var track smf.Track
	track.Add(0, smf.MetaTempo(120))
	for _, c := range cents {
		key, bend := keyAndBend(c)
		track.Add(0, midi.Pitchbend(0, bend))
		track.Add(0, midi.NoteOn(0, key, velocity))
		track.Add(noteTicks, midi.NoteOff(0, key))
	}
	track.Close(0)
	s.Tracks = append(s.Tracks, track)
	return &s
}

// keyAndBend picks the nearest 12edo key and the wheel offset covering the
// remainder. Input stays within one octave above baseKey, so the key never
// leaves the midi range.
func keyAndBend(cents float64) (uint8, int16) {
	semis := int(math.Round(cents / 100))
	dev := cents - float64(semis)*100
	bend := int16(math.Round(dev / wheelRangeCents * wheelMax))
	return uint8(baseKey + semis), bend
}
