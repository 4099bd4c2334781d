package annotate

import (
	"github.com/jsphweid/chapette/fingering"
	"github.com/jsphweid/chapette/model"
	"github.com/jsphweid/chapette/pitch"
)

// Resolve returns the text to attach to ev and whether to attach it at all.
//
// A note gets its fingering only when the table has its pitch. A chord always
// gets an attachment: each matching pitch's fingering goes in front of the
// ones found before it, one per line, so the last match reads first.
func Resolve(kind model.Kind, ev *model.Event, table *fingering.Table) (string, bool) {
	switch kind {
	case model.KindNote:
		return table.Lookup(pitch.Key(ev.Pitches[0]))
	case model.KindChord:
		var text string
		for _, p := range ev.Pitches {
			f, ok := table.Lookup(pitch.Key(p))
			if !ok {
				continue
			}
			if text == "" {
				text = f
			} else {
				text = f + "\n" + text
			}
		}
		// NOTE: still attached when nothing matched, text is "" then
		return text, true
	case model.KindOther:
		return "", false
	}
	return "", false
}
