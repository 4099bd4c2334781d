package model

type AnnotateRequestBody struct {
	Score Score `json:"score"`
}

type Report struct {
	Notes     int `json:"notes"`
	Chords    int `json:"chords"`
	Attached  int `json:"attached"`
	Unmatched int `json:"unmatched"`
}

type AnnotateResponse struct {
	Id     string `json:"id"`
	Score  Score  `json:"score"`
	Report Report `json:"report"`
}

type FingeringsResponse struct {
	Instrument string            `json:"instrument"`
	Fingerings map[string]string `json:"fingerings"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
