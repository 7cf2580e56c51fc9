package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/alamex/bitacora-backend-go/internal/domain/profile"
	"github.com/alamex/bitacora-backend-go/internal/handler/http/response"
)

type ProfileHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
}

type ProfileHandlerImpl struct {
	profileService profile.ProfileService
}

func NewProfileHandler(profileService profile.ProfileService) ProfileHandler {
	return &ProfileHandlerImpl{profileService: profileService}
}

// Create implements ProfileHandler.
func (p *ProfileHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq profile.CreateProfileRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create profile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := p.profileService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create profile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Profile configured", created)
}

// GetMine implements ProfileHandler.
func (p *ProfileHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	prof, err := p.profileService.GetMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, prof)
}
