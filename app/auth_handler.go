package main

import (
	"net/http"

	"github.com/sushihentaime/blogway/internal/common"
)

type registerUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (app *application) registerUserHandler(w http.ResponseWriter, r *http.Request) {
	var input registerUserRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.errorResponse(w, r, common.NewBadRequest(err.Error()))
		return
	}

	user, err := app.userService.CreateUser(r.Context(), input.FirstName, input.LastName, input.Email, input.Password)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{
		Success: true,
		Message: "User created successfully",
		Data:    map[string]any{"user": user},
	})
	if err != nil {
		app.errorResponse(w, r, err)
	}
}

type loginUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (app *application) loginUserHandler(w http.ResponseWriter, r *http.Request) {
	var input loginUserRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.errorResponse(w, r, common.NewBadRequest(err.Error()))
		return
	}

	token, user, err := app.userService.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Log in successful",
		Data:    map[string]any{"accessToken": token, "user": user},
	})
	if err != nil {
		app.errorResponse(w, r, err)
	}
}
