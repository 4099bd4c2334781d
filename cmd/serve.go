package cmd

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chapette/annotate"
	"github.com/jsphweid/chapette/constants"
	"github.com/jsphweid/chapette/fingering"
	"github.com/jsphweid/chapette/model"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// read-only once serving starts, shared by every request
var servedTable *fingering.Table

var port string

func init() {
	serveCmd.Flags().StringVar(&port, "port", constants.GetPort(), "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the annotator over HTTP",
	Long:  `Serves POST /annotate and GET /fingerings.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := LoadServeTable(); err != nil {
			return err
		}
		logrus.Infof("listening on :%v with %v fingerings", port, servedTable.Len())
		return http.ListenAndServe(":"+port, NewRouter())
	},
}

func LoadServeTable() error {
	table, err := loadTable()
	if err != nil {
		return err
	}
	servedTable = table
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Warnf("could not write response: %v", err)
	}
}

func HandleAnnotate(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "Could not read request body: " + err.Error()})
		return
	}

	var input model.AnnotateRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "Could not unmarshal request body: " + err.Error()})
		return
	}

	id := uuid.New().String()
	report := annotate.Annotate(&input.Score, servedTable)
	logrus.WithFields(logrus.Fields{
		"id":       id,
		"notes":    report.Notes,
		"chords":   report.Chords,
		"attached": report.Attached,
	}).Info("annotated score")

	writeJSON(w, http.StatusOK, model.AnnotateResponse{Id: id, Score: input.Score, Report: report})
}

func HandleFingerings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.FingeringsResponse{
		Instrument: instrument,
		Fingerings: servedTable.Entries(),
	})
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/annotate", HandleAnnotate).Methods("POST")
	router.HandleFunc("/fingerings", HandleFingerings).Methods("GET")
	return cors.Default().Handler(router)
}
