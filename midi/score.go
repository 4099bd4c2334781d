package midi

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/chapette/model"
	"github.com/jsphweid/chapette/pitch"
	"gitlab.com/gomidi/midi/v2/smf"
)

const defaultTicksPerQuarter = 960

// notes starting on the same tick of a track
type onset struct {
	tick uint64
	keys []uint8
}

func ticksPerMeasure(s *smf.SMF) uint64 {
	// NOTE: assumes 4/4 throughout
	if mt, ok := s.TimeFormat.(smf.MetricTicks); ok && mt > 0 {
		return uint64(mt) * 4
	}
	return defaultTicksPerQuarter * 4
}

func getOnsets(track smf.Track) []onset {
	var res []onset
	tickToOnset := make(map[uint64]int)
	var absTicks uint64
	for _, event := range track {
		absTicks += uint64(event.Delta)
		var channel, key, velocity uint8
		if !event.Message.GetNoteOn(&channel, &key, &velocity) || velocity == 0 {
			continue
		}
		i, ok := tickToOnset[absTicks]
		if !ok {
			i = len(res)
			tickToOnset[absTicks] = i
			res = append(res, onset{tick: absTicks})
		}
		res[i].keys = append(res[i].keys, key)
	}
	return res
}

func toEvent(o onset) model.Event {
	var ev model.Event
	for _, key := range o.keys {
		ev.Pitches = append(ev.Pitches, pitch.FromMidi(key))
	}
	ev.Type = model.TypeNote
	if len(ev.Pitches) > 1 {
		ev.Type = model.TypeChord
	}
	ev.Attributes = map[string]string{"tick": strconv.FormatUint(o.tick, 10)}
	return ev
}

// ToScore makes one part per track that has notes. Notes starting together
// become a chord, in the order the file lists them.
func ToScore(s *smf.SMF) *model.Score {
	var score model.Score
	perMeasure := ticksPerMeasure(s)

	for i, track := range s.Tracks {
		onsets := getOnsets(track)
		if len(onsets) == 0 {
			continue
		}

		part := model.Part{ID: fmt.Sprintf("P%d", i+1), Name: fmt.Sprintf("Track %d", i+1)}
		for _, o := range onsets {
			number := int(o.tick/perMeasure) + 1
			if len(part.Measures) == 0 || part.Measures[len(part.Measures)-1].Number != number {
				part.Measures = append(part.Measures, model.Measure{
					Number: number,
					Voices: []model.Voice{{Number: 1}},
				})
			}
			voice := &part.Measures[len(part.Measures)-1].Voices[0]
			voice.Events = append(voice.Events, toEvent(o))
		}
		score.Parts = append(score.Parts, part)
	}

	return &score
}

func ReadScore(path string) (*model.Score, error) {
	s, err := ReadMidiFile(path)
	if err != nil {
		return nil, err
	}
	return ToScore(s), nil
}
