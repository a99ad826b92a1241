package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bibbank/creditrisk/internal/application/dto"
	"github.com/bibbank/creditrisk/internal/application/usecase"
	"github.com/bibbank/creditrisk/internal/domain/model"
	"github.com/bibbank/creditrisk/internal/presentation/render"
)

const maxBodyBytes = 1 << 20

// PredictionHandler serves the scoring API over HTTP.
type PredictionHandler struct {
	predict   *usecase.PredictDefaultRisk
	summarize *usecase.SummarizeProfile
	form      *usecase.DescribeForm
	logger    *slog.Logger
}

// NewPredictionHandler creates a new PredictionHandler.
func NewPredictionHandler(
	predict *usecase.PredictDefaultRisk,
	summarize *usecase.SummarizeProfile,
	form *usecase.DescribeForm,
	logger *slog.Logger,
) *PredictionHandler {
	return &PredictionHandler{
		predict:   predict,
		summarize: summarize,
		form:      form,
		logger:    logger,
	}
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error  string             `json:"error"`
	Fields []model.FieldError `json:"fields,omitempty"`
}

// RegisterRoutes registers the API endpoints on the provided ServeMux.
func (h *PredictionHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/form", h.DescribeForm)
	mux.HandleFunc("POST /api/v1/summaries", h.SummarizeProfile)
	mux.HandleFunc("POST /api/v1/predictions", h.PredictDefaultRisk)
}

// PredictDefaultRisk handles POST /api/v1/predictions.
func (h *PredictionHandler) PredictDefaultRisk(w http.ResponseWriter, r *http.Request) {
	req, err := readProfile(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.predict.Execute(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if wantsText(r) {
		h.writeText(w, func(buf io.Writer) error { return render.Prediction(buf, result) })
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// SummarizeProfile handles POST /api/v1/summaries.
func (h *PredictionHandler) SummarizeProfile(w http.ResponseWriter, r *http.Request) {
	req, err := readProfile(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.summarize.Execute(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if wantsText(r) {
		h.writeText(w, func(buf io.Writer) error { return render.Summary(buf, summary) })
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// DescribeForm handles GET /api/v1/form.
func (h *PredictionHandler) DescribeForm(w http.ResponseWriter, r *http.Request) {
	form := h.form.Execute()
	if wantsText(r) {
		h.writeText(w, func(buf io.Writer) error { return render.Form(buf, form.Fields) })
		return
	}
	writeJSON(w, http.StatusOK, form)
}

func (h *PredictionHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  "invalid input",
			Fields: model.FieldErrors(err),
		})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.logger.Warn("request abandoned", "error", err)
		writeError(w, http.StatusServiceUnavailable, "request cancelled")
	case errors.Is(err, model.ErrModelUnavailable):
		h.logger.Error("model unavailable", "error", err)
		writeError(w, http.StatusServiceUnavailable, "model unavailable")
	default:
		h.logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *PredictionHandler) writeText(w http.ResponseWriter, fn func(io.Writer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		h.logger.Error("failed to render response", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// readProfile decodes the request body over the form defaults, so omitted
// fields take the values the form is first presented with.
func readProfile(r *http.Request) (dto.PredictRequest, error) {
	req := dto.DefaultPredictRequest()
	if r.Body == nil {
		return req, errors.New("request body is empty")
	}
	defer r.Body.Close()

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, errors.New("request body is empty")
		}
		return req, fmt.Errorf("malformed request body: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return req, errors.New("malformed request body: unexpected data after JSON object")
	}
	return req, nil
}

func wantsText(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/plain")
}

func writeError(w http.ResponseWriter, statusCode int, msg string) {
	writeJSON(w, statusCode, ErrorResponse{Error: msg})
}
