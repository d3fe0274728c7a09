package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rpgo/projector/internal/calculation"
	"github.com/rpgo/projector/internal/config"
	"github.com/rpgo/projector/internal/logging"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Detail    string `json:"detail"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail, RequestID: RequestID(r.Context())})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"uptime_s": time.Since(s.startedAt).Seconds(),
	})
}

// handleProjection decodes the body over the calculator defaults, validates
// it and runs the calculator under the request context.
func (s *Server) handleProjection(kind config.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := config.NewRequest(kind)
		if err != nil {
			writeError(w, r, http.StatusInternalServerError, err.Error())
			return
		}

		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err := dec.Decode(req.Params()); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("malformed JSON body: %v", err))
			return
		}
		if err := s.parser.ValidateRequest(req); err != nil {
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		if err := config.CheckPathBudget(req, s.cfg.MaxPathCells); err != nil {
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}

		log := logging.ForRequest(s.logger, RequestID(r.Context()), string(kind))
		result, err := s.engine.WithLogger(log).Project(r.Context(), req.Params())
		if err != nil {
			status := statusFor(err)
			if status >= 500 {
				log.Errorf("projection failed: %v", err)
			}
			writeError(w, r, status, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, config.ErrValidation),
		errors.Is(err, calculation.ErrInvalidHorizon),
		errors.Is(err, calculation.ErrInvalidSimulations),
		errors.Is(err, calculation.ErrInvalidFrequency),
		errors.Is(err, calculation.ErrInvalidVolatility),
		errors.Is(err, calculation.ErrScheduleLength):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
