package pitch

import (
	"strconv"
	"strings"

	"github.com/jsphweid/chapette/model"
)

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Key renders p the way fingering tables are keyed: step, one "#" per sharp
// or one "-" per flat, then octave. "C#4", "B-3", "C4".
func Key(p model.Pitch) string {
	var b strings.Builder
	b.WriteString(p.Step)
	for i := 0; i < p.Alter; i++ {
		b.WriteByte('#')
	}
	for i := 0; i > p.Alter; i-- {
		b.WriteByte('-')
	}
	b.WriteString(strconv.Itoa(p.Octave))
	return b.String()
}

// FromMidi spells a midi key number with sharps, middle C (60) being C4.
func FromMidi(key uint8) model.Pitch {
	name := sharpNames[key%12]
	p := model.Pitch{Step: name[:1], Octave: int(key)/12 - 1}
	if len(name) > 1 {
		p.Alter = 1
	}
	return p
}
