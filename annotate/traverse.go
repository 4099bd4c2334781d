package annotate

import "github.com/jsphweid/chapette/model"

// Classify tags an event as a single note, a chord or anything else.
func Classify(ev *model.Event) model.Kind {
	switch {
	case ev.Type == model.TypeNote && len(ev.Pitches) == 1:
		return model.KindNote
	case ev.Type == model.TypeChord && len(ev.Pitches) > 0:
		return model.KindChord
	}
	return model.KindOther
}

// Walk calls fn for every note and chord in score, part by part, then measure,
// voice and event in the order the score holds them. Other events are skipped.
func Walk(score *model.Score, fn func(kind model.Kind, ev *model.Event)) {
	for p := range score.Parts {
		part := &score.Parts[p]
		for m := range part.Measures {
			measure := &part.Measures[m]
			for v := range measure.Voices {
				voice := &measure.Voices[v]
				for e := range voice.Events {
					ev := &voice.Events[e]
					if kind := Classify(ev); kind != model.KindOther {
						fn(kind, ev)
					}
				}
			}
		}
	}
}
