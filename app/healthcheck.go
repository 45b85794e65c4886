package main

import "net/http"

func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	env := envelope{
		Success: true,
		Message: "available",
		Data: map[string]string{
			"environment": app.config.Environment,
			"version":     app.config.Version,
		},
	}

	err := app.writeJSON(w, http.StatusOK, env)
	if err != nil {
		app.logError(r, err)
		http.Error(w, "the server encountered a problem and could not process your request", http.StatusInternalServerError)
	}
}
