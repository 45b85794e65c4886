package main

import (
	"net/http"

	"github.com/sushihentaime/blogway/internal/blogservice"
	"github.com/sushihentaime/blogway/internal/common"
)

func (app *application) listBlogsHandler(w http.ResponseWriter, r *http.Request) {
	filters, err := app.readListQuery(r)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	params := blogservice.SearchParams{
		Title:  r.URL.Query().Get("title"),
		Tags:   r.URL.Query().Get("tags"),
		Author: r.URL.Query().Get("author"),
	}

	blogs, totalCount, err := app.blogService.GetAllPublishedBlogs(r.Context(), params, filters)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	meta := newMetadata(filters.Page, filters.Limit, totalCount)

	message := "Blogs retrieval successful"
	if meta.TotalPages == 0 {
		message = "No blogs found"
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		Success:  true,
		Message:  message,
		Data:     map[string]any{"blogs": blogs},
		Metadata: meta,
	})
	if err != nil {
		app.errorResponse(w, r, err)
	}
}

func (app *application) getBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	blog, err := app.blogService.GetBlogByID(r.Context(), id)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Successfully retrieved Blog",
		Data:    map[string]any{"blog": blog},
	})
	if err != nil {
		app.errorResponse(w, r, err)
	}
}

func (app *application) createBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input blogservice.CreateBlogRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.errorResponse(w, r, common.NewBadRequest(err.Error()))
		return
	}

	userID := app.getUserContext(r)

	blog, err := app.blogService.CreateBlog(r.Context(), userID, &input)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{
		Success: true,
		Message: "Blog created successfully",
		Data:    map[string]any{"blog": blog},
	})
	if err != nil {
		app.errorResponse(w, r, err)
	}
}

func (app *application) updateBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	var input blogservice.UpdateBlogRequest

	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.errorResponse(w, r, common.NewBadRequest(err.Error()))
		return
	}

	userID := app.getUserContext(r)

	blog, err := app.blogService.UpdateBlog(r.Context(), id, userID, &input)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Blog updated successfully",
		Data:    map[string]any{"blog": blog},
	})
	if err != nil {
		app.errorResponse(w, r, err)
	}
}

func (app *application) publishBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	userID := app.getUserContext(r)

	blog, err := app.blogService.PublishBlog(r.Context(), id, userID)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Blog published successfully",
		Data:    map[string]any{"blog": blog},
	})
	if err != nil {
		app.errorResponse(w, r, err)
	}
}

func (app *application) deleteBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	userID := app.getUserContext(r)

	err = app.blogService.DeleteBlog(r.Context(), id, userID)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) listOwnBlogsHandler(w http.ResponseWriter, r *http.Request) {
	filters, err := app.readListQuery(r)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	state := r.URL.Query().Get("state")
	userID := app.getUserContext(r)

	blogs, totalCount, err := app.blogService.GetAllBlogs(r.Context(), userID, state, filters)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	meta := newMetadata(filters.Page, filters.Limit, totalCount)

	message := "Blogs retrieval successful"
	if meta.TotalPages == 0 {
		message = "No blogs found"
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		Success:  true,
		Message:  message,
		Data:     map[string]any{"blogs": blogs},
		Metadata: meta,
	})
	if err != nil {
		app.errorResponse(w, r, err)
	}
}
