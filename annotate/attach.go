package annotate

import "github.com/jsphweid/chapette/model"

// Attach adds text after any annotations ev already has.
func Attach(ev *model.Event, text string) {
	ev.Annotations = append(ev.Annotations, text)
}
