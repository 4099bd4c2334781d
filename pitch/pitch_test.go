package pitch

import (
	"testing"

	"github.com/jsphweid/chapette/model"
	"github.com/stretchr/testify/assert"
)

func TestKeyFormatsAccidentals(t *testing.T) {
	cases := map[string]model.Pitch{
		"C4":   {Step: "C", Octave: 4},
		"C#4":  {Step: "C", Alter: 1, Octave: 4},
		"B-3":  {Step: "B", Alter: -1, Octave: 3},
		"F##5": {Step: "F", Alter: 2, Octave: 5},
		"E--4": {Step: "E", Alter: -2, Octave: 4},
	}

	for expected, p := range cases {
		t.Run(expected, func(t *testing.T) {
			assert.Equal(t, expected, Key(p))
		})
	}
}

func TestKeyDoesNotFoldEnharmonics(t *testing.T) {
	sharp := Key(model.Pitch{Step: "C", Alter: 1, Octave: 4})
	flat := Key(model.Pitch{Step: "D", Alter: -1, Octave: 4})
	assert.NotEqual(t, sharp, flat)
}

func TestFromMidi(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(model.Pitch{Step: "C", Octave: 4}, FromMidi(60))
	assert.Equal(model.Pitch{Step: "C", Alter: 1, Octave: 4}, FromMidi(61))
	assert.Equal(model.Pitch{Step: "B", Octave: 3}, FromMidi(59))
	assert.Equal(model.Pitch{Step: "C", Octave: -1}, FromMidi(0))
	assert.Equal("F#5", Key(FromMidi(78)))
}
