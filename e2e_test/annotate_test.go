//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jsphweid/chapette/cmd"
	"github.com/jsphweid/chapette/model"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	if err := cmd.LoadServeTable(); err != nil {
		panic(err.Error())
	}

	exitVal := m.Run()

	os.Exit(exitVal)
}

func createAnnotateReqBody(events ...model.Event) io.Reader {
	body := model.AnnotateRequestBody{Score: model.Score{Parts: []model.Part{{
		ID:       "P1",
		Measures: []model.Measure{{Number: 1, Voices: []model.Voice{{Number: 1, Events: events}}}},
	}}}}
	data, err := json.Marshal(body)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func TestAnnotateTrumpetLineE2E(t *testing.T) {
	body := createAnnotateReqBody(
		model.Event{Type: model.TypeNote, Pitches: []model.Pitch{{Step: "C", Octave: 4}}},
		model.Event{Type: model.TypeNote, Pitches: []model.Pitch{{Step: "B", Alter: -1, Octave: 3}}, Annotations: []string{"Glo-"}},
		model.Event{Type: model.TypeRest},
		model.Event{Type: model.TypeChord, Pitches: []model.Pitch{{Step: "C", Octave: 4}, {Step: "E", Octave: 4}, {Step: "G", Octave: 4}}},
		model.Event{Type: model.TypeNote, Pitches: []model.Pitch{{Step: "C", Octave: 2}}},
	)
	req := httptest.NewRequest(http.MethodPost, "/annotate", body)
	w := httptest.NewRecorder()
	cmd.NewRouter().ServeHTTP(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var annotateResponse model.AnnotateResponse
	err := json.Unmarshal(respBody, &annotateResponse)
	if err != nil {
		panic(err.Error())
	}

	assert.NotEmpty(annotateResponse.Id)
	assert.Equal(model.Report{Notes: 3, Chords: 1, Attached: 3, Unmatched: 1}, annotateResponse.Report)
	evs := annotateResponse.Score.Parts[0].Measures[0].Voices[0].Events
	assert.Equal([]string{"open"}, evs[0].Annotations)
	assert.Equal([]string{"Glo-", "1"}, evs[1].Annotations)
	assert.Empty(evs[2].Annotations)
	assert.Equal([]string{"open\n1-2\nopen"}, evs[3].Annotations)
	assert.Empty(evs[4].Annotations)
}

func TestAnnotateRejectsBadBodyE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/annotate", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()
	cmd.HandleAnnotate(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(400, resp.StatusCode)

	var errorResponse model.ErrorResponse
	assert.NoError(json.Unmarshal(respBody, &errorResponse))
	assert.Contains(errorResponse.Error, "Could not unmarshal")
}

func TestFingeringsE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/fingerings", nil)
	w := httptest.NewRecorder()
	cmd.NewRouter().ServeHTTP(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var fingeringsResponse model.FingeringsResponse
	assert.NoError(json.Unmarshal(respBody, &fingeringsResponse))
	assert.Equal("open", fingeringsResponse.Fingerings["C4"])
}
