package handlers

import (
	"net/http"

	"sitelog/internal/http/api"

	"github.com/go-chi/render"
)

const serviceName = "Construction Site Management API"

func Healthcheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	}
}

// Info describes the running service on the root path.
func Info(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, api.InfoResponse{Message: serviceName, Version: version})
	}
}
