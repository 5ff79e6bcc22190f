package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"ayurveda-intake/internal/common/errors"
	"ayurveda-intake/internal/pipeline"
)

// Submitter runs a decoded request body through the intake pipeline.
type Submitter interface {
	Submit(ctx context.Context, raw interface{}) (*pipeline.Result, error)
}

type submitResponse struct {
	OK           bool   `json:"ok"`
	SubmissionID string `json:"submission_id"`
}

type healthResponse struct {
	OK bool `json:"ok"`
}

type submitHandler struct {
	submitter Submitter
	errors    *errors.ErrorHandler
	maxBytes  int64
}

func (h *submitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeBody(w, r, h.maxBytes)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			h.errors.WriteError(w, r, errors.NewRequestBodyTooLargeError(tooLarge.Limit, err))
			return
		}
		h.errors.WriteError(w, r, errors.NewInvalidRequestBodyError(err))
		return
	}

	res, err := h.submitter.Submit(r.Context(), raw)
	if err != nil {
		h.errors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{OK: true, SubmissionID: res.SubmissionID})
}

var errTrailingData = stderrors.New("unexpected data after JSON value")

// decodeBody reads exactly one JSON value from at most maxBytes. An empty body
// decodes as an empty object so it fails field validation rather than parsing.
func decodeBody(w http.ResponseWriter, r *http.Request, maxBytes int64) (interface{}, error) {
	body := r.Body
	if maxBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	dec := json.NewDecoder(body)
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return map[string]interface{}{}, nil
		}
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errTrailingData
		}
		return nil, err
	}
	return raw, nil
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{OK: true})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
