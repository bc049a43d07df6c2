package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/devfolio/stats-service/internal/adapters/api"
	"github.com/devfolio/stats-service/internal/core/service"
	"github.com/devfolio/stats-service/pkg/response"
)

// LanguageLister is the tolerant per-repository language breakdown lookup.
type LanguageLister interface {
	RepositoryLanguages(ctx context.Context, owner, repo string) map[string]int
}

type ProfileHandler struct {
	profiles  service.ProfileProvider
	languages LanguageLister
}

func NewProfileHandler(profiles service.ProfileProvider, languages LanguageLister) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, languages: languages}
}

// GetProfile serves GET /profiles/{username}: the statistics snapshot plus
// the normalized event and repository sequences.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if username == "" {
		response.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}

	profile, err := h.profiles.GetProfile(r.Context(), username)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			response.ErrorResponse(w, http.StatusNotFound, "user not found")
			return
		}
		response.ErrorResponse(w, http.StatusBadGateway, "failed to aggregate profile")
		return
	}

	response.SuccessResponse(w, http.StatusOK, profile)
}

// GetRepositoryLanguages serves GET /profiles/{username}/repositories/{repo}/languages.
// Lookup failures degrade to an empty mapping by contract.
func (h *ProfileHandler) GetRepositoryLanguages(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	repo := r.PathValue("repo")
	if username == "" || repo == "" {
		response.ErrorResponse(w, http.StatusBadRequest, "username and repo are required")
		return
	}

	breakdown := h.languages.RepositoryLanguages(r.Context(), username, repo)
	response.SuccessResponse(w, http.StatusOK, breakdown)
}
