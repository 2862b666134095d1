package web

// errors.go provides unified error response handling for the web layer.
//
// It ensures all errors are:
//   - Logged with full technical details for debugging (server-side)
//   - Returned to clients as user-friendly messages with action suggestions
//   - Formatted as JSON for API clients and as an HTML page otherwise
//
// The error flow:
//  1. Handler encounters an error
//  2. Calls respondError(w, r, err, statusCode)
//  3. Error is mapped via core.MapError to get user-friendly message
//  4. Technical error + context is logged with request ID for correlation
//  5. User message is rendered in appropriate format for the client

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/kishalayrajiitgn-design/Pipe-Stock-Search-Tool/internal/core"
	"github.com/kishalayrajiitgn-design/Pipe-Stock-Search-Tool/internal/logging"
	"github.com/kishalayrajiitgn-design/Pipe-Stock-Search-Tool/internal/web/templates"
)

// ErrorResponse represents the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Message, Action) fields.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// respondError logs err and writes the mapped user message as JSON or HTML
// depending on the request.
func respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	userMsg := core.MapError(err)

	level := slog.LevelWarn
	if statusCode >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logging.FromContext(r.Context()).Log(r.Context(), level, "request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
	)

	if wantsJSON(r) {
		writeJSON(w, r, statusCode, ErrorResponse{
			Error:   userMsg.Message,
			Message: userMsg.Message,
			Action:  userMsg.Action,
			Code:    userMsg.Code,
		})
		return
	}
	respondErrorHTML(w, r, userMsg, statusCode)
}

// respondErrorHTML renders the error page.
func respondErrorHTML(w http.ResponseWriter, r *http.Request, msg core.UserMessage, statusCode int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := templates.ErrorPage(msg, statusCode).Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render error page", "error", err)
	}
}

// wantsJSON checks if the client prefers JSON response.
func wantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return true
	}
	// API routes default to JSON
	return strings.HasPrefix(r.URL.Path, "/api/")
}
