package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/scalefinder/chord"
	"github.com/jsphweid/scalefinder/constants"
	"github.com/jsphweid/scalefinder/logger"
	"github.com/jsphweid/scalefinder/midi"
	"github.com/jsphweid/scalefinder/model"
	"github.com/jsphweid/scalefinder/note"
	"github.com/jsphweid/scalefinder/rank"
	"github.com/jsphweid/scalefinder/scale"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func init() {
	serveCmd.Flags().Int("port", 8080, "port to serve on")
	cobra.CheckErr(viper.BindPFlag(constants.Port, serveCmd.Flags().Lookup("port")))
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the ranking, chord and scale API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := fmt.Sprintf(":%d", constants.GetPort())
		logger.Log.Info("serving", zap.String("addr", addr))
		return http.ListenAndServe(addr, NewRouter())
	},
}

const requestIDHeader = "X-Request-Id"

// NewRouter wires every endpoint behind cors and request logging.
func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/rank", HandleRank).Methods(http.MethodPost)
	router.HandleFunc("/rank/midi", HandleRankMidi).Methods(http.MethodPost)
	router.HandleFunc("/chords", HandleQualities).Methods(http.MethodGet)
	router.HandleFunc("/chords/{root}/{quality}", HandleChord).Methods(http.MethodGet)
	router.HandleFunc("/scales", HandleScales).Methods(http.MethodGet)
	router.HandleFunc("/scales/{key}/{tonality}", HandleScale).Methods(http.MethodGet)
	router.Use(requestLogger)

	c := cors.New(cors.Options{
		AllowedOrigins: constants.GetCorsOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		ExposedHeaders: []string{requestIDHeader},
	})
	return c.Handler(router)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Log.Info("request",
			zap.String("id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("could not encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), model.ErrorResponse{Error: err.Error()})
}

// statusFor maps domain errors to responses: malformed input is a 400, input
// that parses but cannot be realized is a 422, unknown catalog entries 404.
func statusFor(err error) int {
	switch {
	case errors.Is(err, note.ErrUnrecognizedNoteName),
		errors.Is(err, note.ErrUnknownInterval),
		errors.Is(err, chord.ErrUnknownDegree),
		errors.Is(err, midi.ErrUnparseable):
		return http.StatusBadRequest
	case errors.Is(err, chord.ErrUnknownQuality),
		errors.Is(err, scale.ErrUnknownScale):
		return http.StatusNotFound
	case errors.Is(err, note.ErrInvalidPitchIndex),
		errors.Is(err, note.ErrOctaveOutOfRange),
		errors.Is(err, chord.ErrDegenerateChord):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func HandleRank(w http.ResponseWriter, r *http.Request) {
	var input model.RankRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "Could not unmarshal request body: " + err.Error()})
		return
	}

	fromNames, err := note.ParsePitchClasses(input.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	fromNumbers, err := note.ReduceNoteNumbers(input.NoteNumbers)
	if err != nil {
		writeError(w, err)
		return
	}

	pcs := note.Dedupe(append(fromNames, fromNumbers...))
	if len(pcs) == 0 {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "no notes given"})
		return
	}
	writeJSON(w, http.StatusOK, model.FromRanking(pcs, rank.Catalog(pcs)))
}

// HandleRankMidi ranks the union of every uploaded file's note ons. Files that
// fail are listed in the response; only when none succeed is it an error.
func HandleRankMidi(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(constants.GetMaxUploadBytes()); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "Could not read upload: " + err.Error()})
		return
	}

	headers := r.MultipartForm.File["file"]
	if len(headers) == 0 {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: `no files in form field "file"`})
		return
	}

	var sources []midi.Source
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			writeError(w, err)
			return
		}
		defer f.Close()
		sources = append(sources, midi.Source{Name: h.Filename, Reader: f})
	}

	pcs, results, err := midi.PitchClassesFromSources(sources)
	if err != nil {
		logger.Log.Warn("some midi uploads failed", zap.Error(err))
	}
	if len(pcs) == 0 {
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "uploaded files contain no notes"})
		return
	}

	res := model.FromRanking(pcs, rank.Catalog(pcs))
	res.FileErrors = model.FromFileResults(results)
	writeJSON(w, http.StatusOK, res)
}

func HandleQualities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, qualityModels())
}

// HandleChord serves /chords/{root}/{quality}?octave=2&omit=5. Use "major"
// for the plain triad since an empty path segment won't route.
func HandleChord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	query := r.URL.Query()

	var octave *int
	if s := query.Get("octave"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "octave must be an integer"})
			return
		}
		octave = &n
	}

	var omit []int
	for _, s := range query["omit"] {
		for _, part := range strings.Split(s, ",") {
			d, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "omit must be a list of degrees"})
				return
			}
			omit = append(omit, d)
		}
	}

	c, err := buildChord(vars["root"], vars["quality"], octave, omit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.FromChord(c))
}

func HandleScales(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scaleModels())
}

func HandleScale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	s, err := lookupScale(vars["key"], vars["tonality"])
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := scaleWithChords(s)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
