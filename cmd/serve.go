package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/barsim/analysis"
	"github.com/jsphweid/barsim/color"
	"github.com/jsphweid/barsim/constants"
	"github.com/jsphweid/barsim/logger"
	"github.com/jsphweid/barsim/metric"
	"github.com/jsphweid/barsim/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var addr string

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", constants.GetAddr(), "address to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analysis over http",
	Long:  `Serves POST /analyze for the browser renderer`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(addr)
	},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.GetLogger().Error("could not encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxRequestBytes)
	var input model.AnalyzeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		writeError(w, status, fmt.Errorf("could not decode request body: %w", err))
		return
	}

	opts, err := buildOptions(input.Metric, input.Reducer, input.Colormap, input.Granularity, input.Threshold, input.Depth)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	a, err := analysis.New(opts...)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := a.Analyze(input.Track.ToTrack())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, res.Response())
}

func HandleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, metric.Names())
}

func HandleColormaps(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, color.ColormapNames())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.GetLogger().Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", HandleAnalyze).Methods("POST")
	router.HandleFunc("/metrics", HandleMetrics).Methods("GET")
	router.HandleFunc("/colormaps", HandleColormaps).Methods("GET")
	router.Use(loggingMiddleware)
	// the renderer runs in the browser on another origin
	return cors.Default().Handler(router)
}

func serve(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.GetLogger().Info("listening", "addr", addr)
	return srv.ListenAndServe()
}
