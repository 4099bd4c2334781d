package annotate

import (
	"github.com/jsphweid/chapette/fingering"
	"github.com/jsphweid/chapette/model"
)

// Annotate appends fingerings from table to the notes and chords of score in
// place. It keeps nothing between calls; score must not be shared with other
// goroutines while it runs.
func Annotate(score *model.Score, table *fingering.Table) model.Report {
	var report model.Report
	Walk(score, func(kind model.Kind, ev *model.Event) {
		switch kind {
		case model.KindNote:
			report.Notes += 1
		case model.KindChord:
			report.Chords += 1
		}

		text, ok := Resolve(kind, ev, table)
		if !ok {
			report.Unmatched += 1
			return
		}
		if text == "" {
			report.Unmatched += 1
		}
		Attach(ev, text)
		report.Attached += 1
	})
	return report
}
