package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// ErrorDetail is the body of a JSON API error.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps ErrorDetail as {"error": {...}}.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "destination not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "not_found", Message: message}}
}

// internalBody is the opaque body returned for unexpected failures.
func internalBody() ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "internal_error", Message: "internal server error"}}
}

// writeJSON encodes v with the given status. Encoding happens before the
// header is written so a marshalling failure still yields a clean 500.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.log.ErrorContext(r.Context(), "encode json response", "path", r.URL.Path, "error", err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(internalBody())
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

// writeHTML renders a page into a buffer and only then writes status and
// body, so template failures become a plain 500 instead of a truncated page.
func (s *Server) writeHTML(w http.ResponseWriter, r *http.Request, status int, renderPage func(io.Writer) error) {
	var buf bytes.Buffer
	if err := renderPage(&buf); err != nil {
		s.log.ErrorContext(r.Context(), "render page", "path", r.URL.Path, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// notFound renders the HTML 404 page for unknown routes.
func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.writeHTML(w, r, http.StatusNotFound, func(out io.Writer) error {
		return s.pages.NotFound(out, "The page you asked for does not exist.")
	})
}
