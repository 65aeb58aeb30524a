package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"volly/internal/domain"
	"volly/internal/dto"
)

func (h *Handler) handleVolunteerSignup(w http.ResponseWriter, r *http.Request) {
	var req dto.VolunteerSignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: bad request body", domain.ErrValidation))
		return
	}
	token, err := h.auth.SignupVolunteer(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.TokenResponse{Token: token})
}

func (h *Handler) handleVolunteerLogin(w http.ResponseWriter, r *http.Request) {
	userName, password, err := parseBasicAuth(r)
	if err != nil {
		writeError(w, err)
		return
	}
	token, err := h.auth.LoginVolunteer(r.Context(), userName, password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.TokenResponse{Token: token})
}

func (h *Handler) handleVolunteerOpportunities(w http.ResponseWriter, r *http.Request) {
	companies, err := h.rel.Opportunities(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.OpportunitiesResponse{Companies: companies})
}

func (h *Handler) handleVolunteerPending(w http.ResponseWriter, r *http.Request) {
	volunteer := volunteerFrom(r.Context())
	lists, err := h.rel.VolunteerCompanies(r.Context(), volunteer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"pendingCompanies": lists.PendingCompanies})
}

func (h *Handler) handleVolunteerActive(w http.ResponseWriter, r *http.Request) {
	volunteer := volunteerFrom(r.Context())
	lists, err := h.rel.VolunteerCompanies(r.Context(), volunteer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"activeCompanies": lists.ActiveCompanies})
}

func (h *Handler) handleVolunteerUpdate(w http.ResponseWriter, r *http.Request) {
	volunteer := volunteerFrom(r.Context())
	var req dto.VolunteerUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: bad request body", domain.ErrValidation))
		return
	}
	token, err := h.auth.UpdateVolunteer(r.Context(), volunteer, req)
	if err != nil {
		writeError(w, err)
		return
	}

	out := map[string]any{}
	if req.FirstName != nil {
		out["firstName"] = volunteer.FirstName
	}
	if req.LastName != nil {
		out["lastName"] = volunteer.LastName
	}
	if req.UserName != nil {
		out["userName"] = volunteer.UserName
	}
	if req.Email != nil {
		out["email"] = volunteer.Email
	}
	if req.PhoneNumber != nil {
		out["phoneNumber"] = volunteer.PhoneNumber
	}
	if token != "" {
		out["token"] = token
	}
	writeJSON(w, http.StatusOK, out)
}

type companyIDRequest struct {
	CompanyID string `json:"companyId"`
}

func (h *Handler) handleVolunteerApply(w http.ResponseWriter, r *http.Request) {
	h.volunteerTransition(w, r, h.rel.Apply)
}

func (h *Handler) handleVolunteerLeave(w http.ResponseWriter, r *http.Request) {
	h.volunteerTransition(w, r, h.rel.Leave)
}

func (h *Handler) volunteerTransition(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, v *domain.Volunteer, id domain.CompanyID) (*dto.CompanyListResponse, error),
) {
	volunteer := volunteerFrom(r.Context())
	var req companyIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.CompanyID) == "" {
		writeError(w, fmt.Errorf("%w: companyId is required", domain.ErrValidation))
		return
	}
	companyID, err := uuid.Parse(strings.TrimSpace(req.CompanyID))
	if err != nil {
		writeError(w, fmt.Errorf("%w: company", domain.ErrNotFound))
		return
	}
	lists, err := op(r.Context(), volunteer, companyID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lists)
}

func (h *Handler) handleVolunteerDelete(w http.ResponseWriter, r *http.Request) {
	volunteer := volunteerFrom(r.Context())
	if err := h.rel.DeleteVolunteer(r.Context(), volunteer); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
