package cmd

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/harmonics/chord"
	"github.com/jsphweid/harmonics/config"
	"github.com/jsphweid/harmonics/logging"
	"github.com/jsphweid/harmonics/model"
	"github.com/jsphweid/harmonics/note"
	"github.com/jsphweid/harmonics/scale"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func init() {
	serveCmd.Flags().String("addr", ":8080", "address to listen on")
	viper.BindPFlag(config.KeyServerAddr, serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the calculations over HTTP",
	Long:  `Serves notes, scales, chords and durations as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(config.ServerAddr())
	},
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestID)
	router.HandleFunc("/notes/{class}/{octave}", HandleNote).Methods("GET")
	router.HandleFunc("/scales/{key}/{type}", HandleScale).Methods("GET")
	router.HandleFunc("/chords/{key}/{type}", HandleChord).Methods("GET")
	router.HandleFunc("/durations/{value}", HandleDuration).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: config.AllowedOrigins(),
		AllowedMethods: []string{http.MethodGet},
	})
	return c.Handler(router)
}

func serve(addr string) error {
	logging.Log.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, NewRouter())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestID tags every request with an X-Request-ID, reusing the caller's
// when present, and logs the outcome.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logging.Log.Info("request",
			logging.WithRequestID(id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Log.Error("could not encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func HandleNote(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	class, err := lookupPitch(vars["class"])
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	octave, err := parseOctave(vars["octave"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, model.FromNote(note.New(class, octave), config.TuningA4()))
}

func HandleScale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	key, err := lookupPitch(vars["key"])
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	st, err := lookupScale(vars["type"])
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	s := scale.New(st, key)

	res := model.ScaleResponse{Name: s.String(), MIDIKeys: s.MIDIKeys()}
	for _, p := range s.PitchClasses() {
		res.PitchClasses = append(res.PitchClasses, p.String())
	}

	if name := r.URL.Query().Get("shape"); name != "" {
		shape, err := lookupShape(name)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		for _, fd := range s.FieldDegrees(shape) {
			if fd.Err != nil {
				res.HarmonicField = append(res.HarmonicField, "")
				res.UnmatchedDegrees = append(res.UnmatchedDegrees, fd.Number)
				continue
			}
			res.HarmonicField = append(res.HarmonicField, fd.Chord.String())
		}
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleChord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	key, err := lookupPitch(vars["key"])
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	ct, err := lookupChordType(vars["type"])
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	octave := 4
	if s := r.URL.Query().Get("octave"); s != "" {
		octave, err = parseOctave(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	a4 := config.TuningA4()
	c := chord.New(ct, key)
	res := model.ChordResponse{Name: c.String(), Notes: model.FromNotes(c.Notes(octave), a4)}
	for _, i := range ct.Intervals() {
		res.Intervals = append(res.Intervals, i.String())
	}
	if r.URL.Query().Get("inversions") == "true" {
		for _, inv := range c.Inversions(octave) {
			res.Inversions = append(res.Inversions, model.FromNotes(inv, a4))
		}
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleDuration(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	bpm := 120.0
	if s := q.Get("bpm"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		bpm = v
	}
	beats := 4
	if s := q.Get("beats"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		beats = v
	}
	beat := q.Get("beat")
	if beat == "" {
		beat = "quarter"
	}

	t, v, err := buildDuration(mux.Vars(r)["value"], q.Get("modifier"), beats, beat, bpm)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, model.DurationResponse{
		Tempo:   t.String(),
		Value:   v.String(),
		Seconds: t.Seconds(v),
	})
}
