package main

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sushihentaime/blogway/internal/common"
)

func (app *application) logError(r *http.Request, err error) {
	var (
		method  = r.Method
		url     = r.URL.RequestURI()
		message = err.Error()
	)

	app.logger.Error(message, slog.String("method", method), slog.String("url", url))
}

func (app *application) writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	// quotes leak decoder internals into client-facing text
	message = strings.ReplaceAll(message, `"`, "")

	err := app.writeJSON(w, status, envelope{Success: false, Message: message})
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// errorResponse maps a service failure onto the wire. Tagged errors carry
// their own status; validation failures become 422; anything else is logged
// and reported as a 500.
func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var tagged *common.Error
	var validationErr common.ValidationError

	switch {
	case errors.As(err, &tagged):
		app.writeErrorResponse(w, r, tagged.Status(), tagged.Message)
	case errors.As(err, &validationErr):
		app.writeErrorResponse(w, r, http.StatusUnprocessableEntity, validationErr.Message())
	default:
		app.logError(r, err)
		app.writeErrorResponse(w, r, http.StatusInternalServerError, "Internal Server Error")
	}
}

func (app *application) routeNotFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusNotFound, "Route not found")
}

func (app *application) notAuthorizedResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusUnauthorized, "You are not authorized")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusTooManyRequests, "Rate limit exceeded")
}
