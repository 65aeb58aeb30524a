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

func (h *Handler) handleCompanySignup(w http.ResponseWriter, r *http.Request) {
	var req dto.CompanySignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: bad request body", domain.ErrValidation))
		return
	}
	token, err := h.auth.SignupCompany(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.TokenResponse{Token: token})
}

func (h *Handler) handleCompanyLogin(w http.ResponseWriter, r *http.Request) {
	name, password, err := parseBasicAuth(r)
	if err != nil {
		writeError(w, err)
		return
	}
	token, err := h.auth.LoginCompany(r.Context(), name, password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.TokenResponse{Token: token})
}

func (h *Handler) handleCompanyPending(w http.ResponseWriter, r *http.Request) {
	company := companyFrom(r.Context())
	roster, err := h.rel.CompanyRoster(r.Context(), company)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"pendingVolunteers": roster.PendingVolunteers})
}

func (h *Handler) handleCompanyActive(w http.ResponseWriter, r *http.Request) {
	company := companyFrom(r.Context())
	roster, err := h.rel.CompanyRoster(r.Context(), company)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"activeVolunteers": roster.ActiveVolunteers})
}

func (h *Handler) handleCompanyUpdate(w http.ResponseWriter, r *http.Request) {
	company := companyFrom(r.Context())
	var req dto.CompanyUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: bad request body", domain.ErrValidation))
		return
	}
	token, err := h.auth.UpdateCompany(r.Context(), company, req)
	if err != nil {
		writeError(w, err)
		return
	}

	// Echo the fields that changed, with values as stored (phone normalized).
	out := map[string]any{}
	if req.CompanyName != nil {
		out["companyName"] = company.CompanyName
	}
	if req.Email != nil {
		out["email"] = company.Email
	}
	if req.PhoneNumber != nil {
		out["phoneNumber"] = company.PhoneNumber
	}
	if req.Website != nil {
		out["website"] = company.Website
	}
	if token != "" {
		out["token"] = token
	}
	writeJSON(w, http.StatusOK, out)
}

type volunteerIDRequest struct {
	VolunteerID string `json:"volunteerId"`
}

func (h *Handler) handleCompanyApprove(w http.ResponseWriter, r *http.Request) {
	h.companyTransition(w, r, h.rel.Approve)
}

func (h *Handler) handleCompanyTerminate(w http.ResponseWriter, r *http.Request) {
	h.companyTransition(w, r, h.rel.Terminate)
}

func (h *Handler) companyTransition(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, c *domain.Company, id domain.VolunteerID) (*dto.RosterResponse, error),
) {
	company := companyFrom(r.Context())
	var req volunteerIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.VolunteerID) == "" {
		writeError(w, fmt.Errorf("%w: volunteerId is required", domain.ErrValidation))
		return
	}
	volunteerID, err := uuid.Parse(strings.TrimSpace(req.VolunteerID))
	if err != nil {
		writeError(w, fmt.Errorf("%w: volunteer", domain.ErrNotFound))
		return
	}
	roster, err := op(r.Context(), company, volunteerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, roster)
}

func (h *Handler) handleCompanySend(w http.ResponseWriter, r *http.Request) {
	company := companyFrom(r.Context())
	var req dto.SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: bad request body", domain.ErrValidation))
		return
	}
	ids := make([]domain.VolunteerID, 0, len(req.Volunteers))
	for _, raw := range req.Volunteers {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			writeError(w, fmt.Errorf("%w: volunteer", domain.ErrNotFound))
			return
		}
		ids = append(ids, id)
	}
	if err := h.rel.Send(r.Context(), company, ids, req.TextMessage); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) handleCompanyDelete(w http.ResponseWriter, r *http.Request) {
	company := companyFrom(r.Context())
	if err := h.rel.DeleteCompany(r.Context(), company); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
