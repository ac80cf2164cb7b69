package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/AngelCh415/geoacq-etl/internal/pipeline"
	"github.com/AngelCh415/geoacq-etl/internal/utils"
)

const maxUploadBytes = 32 << 20

func NewRouter(log *slog.Logger, p *pipeline.Pipeline, metricsHandler http.Handler) http.Handler {
	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })
	mux.Handle("/metrics", metricsHandler)

	mux.Post("/report/run", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "multipart form required", 400)
			return
		}
		start, end := r.FormValue("start"), r.FormValue("end")
		if !validDate(start) || !validDate(end) {
			http.Error(w, "start and end required (YYYY-MM-DD)", 400)
			return
		}

		in := pipeline.Input{Start: start, End: end}
		var err error
		if in.Leads, err = formFile(r, "leads"); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		if in.UACe, err = formFile(r, "uace"); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		if in.UAC, err = formFile(r, "uac"); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}

		res, err := p.Run(r.Context(), in)
		if err != nil {
			if errors.Is(err, pipeline.ErrMalformedInput) {
				http.Error(w, err.Error(), 400)
				return
			}
			http.Error(w, err.Error(), 502)
			return
		}
		writeJSON(w, res)
	})

	return mux
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func formFile(r *http.Request, field string) ([]byte, error) {
	f, _, err := r.FormFile(field)
	if err != nil {
		return nil, errors.New("file " + field + " required")
	}
	defer f.Close()
	return io.ReadAll(f)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}
