package http

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"volly/internal/domain"
	"volly/internal/service"
)

type ctxKey string

const (
	ctxKeyCompany   ctxKey = "company"
	ctxKeyVolunteer ctxKey = "volunteer"
)

// parseBasicAuth decodes the Authorization header for the login routes.
// Malformed headers are a 400, per the error contract.
func parseBasicAuth(r *http.Request) (name, password string, err error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", "", fmt.Errorf("%w: authorization header is required", domain.ErrValidation)
	}
	encoded, ok := strings.CutPrefix(header, "Basic ")
	if !ok {
		return "", "", fmt.Errorf("%w: basic auth is required", domain.ErrValidation)
	}
	decoded, decodeErr := base64.StdEncoding.DecodeString(encoded)
	if decodeErr != nil {
		return "", "", fmt.Errorf("%w: malformed basic auth", domain.ErrValidation)
	}
	name, password, ok = strings.Cut(string(decoded), ":")
	if !ok || name == "" || password == "" {
		return "", "", fmt.Errorf("%w: username and password required", domain.ErrValidation)
	}
	return name, password, nil
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", fmt.Errorf("%w: authorization header required", domain.ErrValidation)
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", fmt.Errorf("%w: bearer auth required", domain.ErrValidation)
	}
	return token, nil
}

// BearerCompany resolves the bearer token to a company and stores it on the
// request context.
func BearerCompany(auth service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				writeError(w, err)
				return
			}
			company, err := auth.CompanyByToken(r.Context(), token)
			if err != nil {
				writeError(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyCompany, company)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func BearerVolunteer(auth service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				writeError(w, err)
				return
			}
			volunteer, err := auth.VolunteerByToken(r.Context(), token)
			if err != nil {
				writeError(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyVolunteer, volunteer)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func companyFrom(ctx context.Context) *domain.Company {
	c, _ := ctx.Value(ctxKeyCompany).(*domain.Company)
	return c
}

func volunteerFrom(ctx context.Context) *domain.Volunteer {
	v, _ := ctx.Value(ctxKeyVolunteer).(*domain.Volunteer)
	return v
}
