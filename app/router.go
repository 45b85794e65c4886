package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	// unmatched methods fall through to the same 404 as unknown paths
	router.HandleMethodNotAllowed = false
	router.NotFound = http.HandlerFunc(app.routeNotFoundResponse)

	router.HandlerFunc(http.MethodGet, "/api/healthcheck", app.healthCheckHandler)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	// auth
	router.HandlerFunc(http.MethodPost, "/api/auth/register", app.registerUserHandler)
	router.HandlerFunc(http.MethodPost, "/api/auth/login", app.loginUserHandler)

	// blogs
	router.HandlerFunc(http.MethodGet, "/api/blogs", app.listBlogsHandler)
	router.HandlerFunc(http.MethodGet, "/api/blogs/:id", app.getBlogHandler)
	router.HandlerFunc(http.MethodPost, "/api/blogs", app.requireAuth(app.createBlogHandler))
	router.HandlerFunc(http.MethodPatch, "/api/blogs/:id", app.requireAuth(app.updateBlogHandler))
	router.HandlerFunc(http.MethodPatch, "/api/blogs/:id/publish", app.requireAuth(app.publishBlogHandler))
	router.HandlerFunc(http.MethodDelete, "/api/blogs/:id", app.requireAuth(app.deleteBlogHandler))
	router.HandlerFunc(http.MethodGet, "/api/users/me/blogs", app.requireAuth(app.listOwnBlogsHandler))

	return app.recoverPanic(app.logRequest(app.httpMetrics(app.rateLimit(app.authenticate(router)))))
}
