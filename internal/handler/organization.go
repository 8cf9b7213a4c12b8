// internal/handler/organization.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/outreachhub/outreachhub/internal/middleware"
	"github.com/outreachhub/outreachhub/internal/serializer"
	"github.com/outreachhub/outreachhub/internal/service"
)

type OrganizationHandler struct {
	orgService *service.OrganizationService
}

func NewOrganizationHandler(orgService *service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

func (h *OrganizationHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	var input service.OrganizationUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	org, err := h.orgService.Update(r.Context(), caller, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, serializer.Organization(*org))
}

type DashboardResponse struct {
	Organization serializer.OrganizationView `json:"organization"`
	Events       []serializer.EventView      `json:"events"`
}

// Dashboard returns the landing-page payload: the organization's welcome
// message plus its events. Readable by any authenticated role.
func (h *OrganizationHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	dash, err := h.orgService.Dashboard(r.Context(), caller)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, DashboardResponse{
		Organization: serializer.Organization(*dash.Organization),
		Events:       serializer.Events(dash.Events),
	})
}

type AdminOverviewResponse struct {
	Organization serializer.OrganizationView `json:"organization"`
	Users        []serializer.UserView       `json:"users"`
}

// AdminOverview returns the admin-page payload: organization settings plus
// the staff roster. Administrators only.
func (h *OrganizationHandler) AdminOverview(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	overview, err := h.orgService.AdminOverview(r.Context(), caller)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, AdminOverviewResponse{
		Organization: serializer.Organization(*overview.Organization),
		Users:        serializer.Users(overview.Users),
	})
}
