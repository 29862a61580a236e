package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/orkonung/pitchplot/pkg/errors"
	plotio "github.com/orkonung/pitchplot/pkg/io"
	"github.com/orkonung/pitchplot/pkg/pipeline"
	"github.com/orkonung/pitchplot/pkg/pitch"
)

// maxRequestBody caps render request bodies at 4 MiB; event files are small.
const maxRequestBody = 4 << 20

// renderRequest is the POST /v1/render body: pipeline options plus the raw
// event payload in the import format.
type renderRequest struct {
	pipeline.Options
	Events json.RawMessage `json:"events"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"themes": pitch.ThemeNames()})
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"presets": pitch.PresetNames()})
}

// handleRender renders event data to a single artifact. The response body is
// the artifact itself, with the pipeline run ID in X-Render-ID.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req renderRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New(errors.ErrCodeInvalidInput, "decode request: %v", err))
		return
	}

	// Re-wrap the raw events so they pass through the import validation.
	events, err := decodeEvents(req.Events)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	// The API returns one artifact per request.
	if len(req.Formats) == 0 {
		req.Formats = []string{plotio.FormatPNG}
	}
	if len(req.Formats) > 1 {
		writeError(w, http.StatusBadRequest,
			errors.New(errors.ErrCodeInvalidInput, "render accepts a single format per request"))
		return
	}

	result, err := s.runner.Execute(ctx, events, req.Options)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	format := req.Formats[0]
	s.logger.Debug("rendered",
		"request_id", requestID(ctx),
		"render_id", result.ID,
		"kind", req.Kind,
		"format", format,
		"cached", result.Cached)

	w.Header().Set("Content-Type", contentType(format))
	w.Header().Set("X-Render-ID", result.ID.String())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// decodeEvents validates the raw event array using the import reader.
func decodeEvents(raw json.RawMessage) ([]plotio.Event, error) {
	if len(raw) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "events are required")
	}
	wrapped, err := json.Marshal(map[string]json.RawMessage{"events": raw})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "wrap events")
	}
	events, err := plotio.ReadJSON(bytes.NewReader(wrapped))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode events")
	}
	return events, nil
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidTheme,
		errors.ErrCodeInvalidPreset, errors.ErrCodeInvalidKind, errors.ErrCodeInvalidPath,
		errors.ErrCodeLengthMismatch:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func contentType(format string) string {
	switch format {
	case plotio.FormatPNG:
		return "image/png"
	case plotio.FormatSVG:
		return "image/svg+xml"
	case plotio.FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	})
}
