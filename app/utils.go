package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/sushihentaime/blogway/internal/blogservice"
	"github.com/sushihentaime/blogway/internal/common"
)

type envelope struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message"`
	Data     any       `json:"data,omitempty"`
	Metadata *metadata `json:"metadata,omitempty"`
}

type metadata struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	TotalPages      int  `json:"totalPages"`
	TotalCount      int  `json:"totalCount"`
	HasPreviousPage bool `json:"hasPreviousPage"`
	HasNextPage     bool `json:"hasNextPage"`
}

func newMetadata(page, limit, totalCount int) *metadata {
	totalPages := 0
	if totalCount > 0 {
		totalPages = (totalCount + limit - 1) / limit
	}

	return &metadata{
		Page:            page,
		Limit:           limit,
		TotalPages:      totalPages,
		TotalCount:      totalCount,
		HasPreviousPage: page > 1,
		HasNextPage:     page < totalPages,
	}
}

func (app *application) writeJSON(w http.ResponseWriter, status int, data envelope) error {
	json, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(json)

	return nil
}

func (app *application) parseJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	maxBytes := 1_048_576
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("request body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("request body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("request body contains an invalid value for the %q field", unmarshalTypeError.Field)
			}
			return fmt.Errorf("request body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("request body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("request body contains unknown field %s", fieldName)
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("request body must not be larger than %d bytes", maxBytesError.Limit)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}

	err = decoder.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("request body must only contain a single JSON value")
	}

	return nil
}

func (app *application) readIDParam(r *http.Request, key string) (int, error) {
	params := httprouter.ParamsFromContext(r.Context())

	id, err := strconv.Atoi(params.ByName(key))
	if err != nil || id < 1 {
		return 0, common.NewInvalidInput("Invalid Id")
	}

	return id, nil
}

// readListQuery parses the shared pagination and ordering query parameters,
// falling back to the defaults when a parameter is absent.
func (app *application) readListQuery(r *http.Request) (blogservice.Filters, error) {
	params := r.URL.Query()

	f := blogservice.Filters{
		Page:    1,
		Limit:   20,
		Order:   "desc",
		OrderBy: "created_at",
	}

	if params.Get("page") != "" {
		page, err := strconv.Atoi(params.Get("page"))
		if err != nil {
			return f, common.NewBadRequest("Invalid page parameter")
		}
		f.Page = page
	}

	if params.Get("limit") != "" {
		limit, err := strconv.Atoi(params.Get("limit"))
		if err != nil {
			return f, common.NewBadRequest("Invalid limit parameter")
		}
		f.Limit = limit
	}

	if params.Get("order") != "" {
		f.Order = params.Get("order")
	}

	if params.Get("order_by") != "" {
		f.OrderBy = params.Get("order_by")
	}

	return f, nil
}
