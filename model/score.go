package model

type Pitch struct {
	Step   string `json:"step"`
	Alter  int    `json:"alter,omitempty"`
	Octave int    `json:"octave"`
}

type Event struct {
	Type        string            `json:"type"`
	Pitches     []Pitch           `json:"pitches,omitempty"`
	Annotations []string          `json:"annotations,omitempty"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

type Voice struct {
	Number int     `json:"number"`
	Events []Event `json:"events"`
}

type Measure struct {
	Number int     `json:"number"`
	Voices []Voice `json:"voices"`
}

type Part struct {
	ID       string    `json:"id"`
	Name     string    `json:"name,omitempty"`
	Measures []Measure `json:"measures"`
}

type Score struct {
	Title string `json:"title,omitempty"`
	Parts []Part `json:"parts"`
}

// Kind is assigned to an event once, during traversal.
type Kind uint8

const (
	KindOther Kind = iota
	KindNote
	KindChord
)

func (k Kind) String() string {
	switch k {
	case KindNote:
		return "note"
	case KindChord:
		return "chord"
	}
	return "other"
}

// Event types as written by the score decoders.
const (
	TypeNote  = "note"
	TypeChord = "chord"
	TypeRest  = "rest"
)
