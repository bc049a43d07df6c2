package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/devfolio/stats-service/internal/adapters/http/handlers"
)

func NewRouter(h *handlers.ProfileHandler) *http.ServeMux {
	router := http.NewServeMux()
	router.HandleFunc("GET /profiles/{username}", h.GetProfile)
	router.HandleFunc("GET /profiles/{username}/repositories/{repo}/languages", h.GetRepositoryLanguages)
	// Serve Swagger documentation
	router.HandleFunc("/swagger/", httpSwagger.WrapHandler)
	return router
}
