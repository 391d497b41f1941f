package handler

import (
	"net/http"

	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	logger.Configure(config.Get())

	handler := di.InitializeService()
	handler.Handler().ServeHTTP(w, r)
}
