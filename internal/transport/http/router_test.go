package http

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volly/internal/domain"
	"volly/internal/dto"
	"volly/internal/store"
)

type stubAuthService struct {
	companyByToken   func(ctx context.Context, token string) (*domain.Company, error)
	volunteerByToken func(ctx context.Context, token string) (*domain.Volunteer, error)
	loginCompany     func(ctx context.Context, name, password string) (string, error)
	signupCompany    func(ctx context.Context, r dto.CompanySignupRequest) (string, error)
	updateVolunteer  func(ctx context.Context, v *domain.Volunteer, u dto.VolunteerUpdate) (string, error)
}

func (s *stubAuthService) SignupCompany(ctx context.Context, r dto.CompanySignupRequest) (string, error) {
	if s.signupCompany != nil {
		return s.signupCompany(ctx, r)
	}
	return "", errors.New("not stubbed")
}

func (s *stubAuthService) SignupVolunteer(ctx context.Context, r dto.VolunteerSignupRequest) (string, error) {
	return "", errors.New("not stubbed")
}

func (s *stubAuthService) LoginCompany(ctx context.Context, name, password string) (string, error) {
	if s.loginCompany != nil {
		return s.loginCompany(ctx, name, password)
	}
	return "", errors.New("not stubbed")
}

func (s *stubAuthService) LoginVolunteer(ctx context.Context, userName, password string) (string, error) {
	return "", errors.New("not stubbed")
}

func (s *stubAuthService) CompanyByToken(ctx context.Context, token string) (*domain.Company, error) {
	if s.companyByToken != nil {
		return s.companyByToken(ctx, token)
	}
	return nil, fmt.Errorf("%w: company", domain.ErrNotFound)
}

func (s *stubAuthService) VolunteerByToken(ctx context.Context, token string) (*domain.Volunteer, error) {
	if s.volunteerByToken != nil {
		return s.volunteerByToken(ctx, token)
	}
	return nil, fmt.Errorf("%w: volunteer", domain.ErrNotFound)
}

func (s *stubAuthService) UpdateCompany(ctx context.Context, c *domain.Company, u dto.CompanyUpdate) (string, error) {
	return "", errors.New("not stubbed")
}

func (s *stubAuthService) UpdateVolunteer(ctx context.Context, v *domain.Volunteer, u dto.VolunteerUpdate) (string, error) {
	if s.updateVolunteer != nil {
		return s.updateVolunteer(ctx, v, u)
	}
	return "", errors.New("not stubbed")
}

type stubRelationshipService struct {
	approve       func(ctx context.Context, c *domain.Company, id domain.VolunteerID) (*dto.RosterResponse, error)
	send          func(ctx context.Context, c *domain.Company, ids []domain.VolunteerID, message string) error
	opportunities func(ctx context.Context) ([]dto.CompanyView, error)
	roster        func(ctx context.Context, c *domain.Company) (*dto.RosterResponse, error)
}

func (s *stubRelationshipService) Apply(ctx context.Context, v *domain.Volunteer, companyID domain.CompanyID) (*dto.CompanyListResponse, error) {
	return nil, errors.New("not stubbed")
}

func (s *stubRelationshipService) Leave(ctx context.Context, v *domain.Volunteer, companyID domain.CompanyID) (*dto.CompanyListResponse, error) {
	return nil, errors.New("not stubbed")
}

func (s *stubRelationshipService) Approve(ctx context.Context, c *domain.Company, volunteerID domain.VolunteerID) (*dto.RosterResponse, error) {
	if s.approve != nil {
		return s.approve(ctx, c, volunteerID)
	}
	return nil, errors.New("not stubbed")
}

func (s *stubRelationshipService) Terminate(ctx context.Context, c *domain.Company, volunteerID domain.VolunteerID) (*dto.RosterResponse, error) {
	return nil, errors.New("not stubbed")
}

func (s *stubRelationshipService) Send(ctx context.Context, c *domain.Company, volunteerIDs []domain.VolunteerID, message string) error {
	if s.send != nil {
		return s.send(ctx, c, volunteerIDs, message)
	}
	return errors.New("not stubbed")
}

func (s *stubRelationshipService) DeleteCompany(ctx context.Context, c *domain.Company) error {
	return errors.New("not stubbed")
}

func (s *stubRelationshipService) DeleteVolunteer(ctx context.Context, v *domain.Volunteer) error {
	return errors.New("not stubbed")
}

func (s *stubRelationshipService) CompanyRoster(ctx context.Context, c *domain.Company) (*dto.RosterResponse, error) {
	if s.roster != nil {
		return s.roster(ctx, c)
	}
	return nil, errors.New("not stubbed")
}

func (s *stubRelationshipService) VolunteerCompanies(ctx context.Context, v *domain.Volunteer) (*dto.CompanyListResponse, error) {
	return nil, errors.New("not stubbed")
}

func (s *stubRelationshipService) Opportunities(ctx context.Context) ([]dto.CompanyView, error) {
	if s.opportunities != nil {
		return s.opportunities(ctx)
	}
	return nil, errors.New("not stubbed")
}

type stubSubscriptionService struct {
	handleInbound func(ctx context.Context, from, body string) (string, error)
}

func (s *stubSubscriptionService) HandleInbound(ctx context.Context, fromPhoneNumber, body string) (string, error) {
	if s.handleInbound != nil {
		return s.handleInbound(ctx, fromPhoneNumber, body)
	}
	return "", nil
}

func newTestRouter(auth *stubAuthService, rel *stubRelationshipService, subs *stubSubscriptionService) http.Handler {
	if auth == nil {
		auth = &stubAuthService{}
	}
	if rel == nil {
		rel = &stubRelationshipService{}
	}
	if subs == nil {
		subs = &stubSubscriptionService{}
	}
	return NewRouter(auth, rel, subs, RouterConfig{})
}

func basicAuth(user, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+password))
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(nil, nil, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestCompanyLogin(t *testing.T) {
	auth := &stubAuthService{
		loginCompany: func(ctx context.Context, name, password string) (string, error) {
			if name == "acme" && password == "hunter22" {
				return "signed-token", nil
			}
			return "", domain.ErrUnauthorized
		},
	}
	router := newTestRouter(auth, nil, nil)

	t.Run("success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/company/login", nil)
		req.Header.Set("Authorization", basicAuth("acme", "hunter22"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"token":"signed-token"}`, rec.Body.String())
	})

	t.Run("wrong password", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/company/login", nil)
		req.Header.Set("Authorization", basicAuth("acme", "nope"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/company/login", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not basic", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/company/login", nil)
		req.Header.Set("Authorization", "Bearer whatever")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBearerCompanyMiddleware(t *testing.T) {
	company := &domain.Company{ID: uuid.New(), CompanyName: "acme"}
	auth := &stubAuthService{
		companyByToken: func(ctx context.Context, token string) (*domain.Company, error) {
			if token == "good-token" {
				return company, nil
			}
			return nil, fmt.Errorf("%w: company", domain.ErrNotFound)
		},
	}
	rel := &stubRelationshipService{
		roster: func(ctx context.Context, c *domain.Company) (*dto.RosterResponse, error) {
			require.Same(t, company, c)
			return &dto.RosterResponse{
				PendingVolunteers: []dto.VolunteerView{},
				ActiveVolunteers:  []dto.VolunteerView{},
			}, nil
		},
	}
	router := newTestRouter(auth, rel, nil)

	t.Run("valid token reaches handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/company/pending", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"pendingVolunteers":[]}`, rec.Body.String())
	})

	t.Run("unknown token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/company/pending", nil)
		req.Header.Set("Authorization", "Bearer stale-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/company/pending", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCompanyApprove(t *testing.T) {
	company := &domain.Company{ID: uuid.New(), CompanyName: "acme"}
	volunteerID := uuid.New()
	auth := &stubAuthService{
		companyByToken: func(ctx context.Context, token string) (*domain.Company, error) {
			return company, nil
		},
	}
	rel := &stubRelationshipService{
		approve: func(ctx context.Context, c *domain.Company, id domain.VolunteerID) (*dto.RosterResponse, error) {
			require.Equal(t, volunteerID, id)
			return &dto.RosterResponse{
				PendingVolunteers: []dto.VolunteerView{},
				ActiveVolunteers:  []dto.VolunteerView{{ID: id.String(), UserName: "ada"}},
			}, nil
		},
	}
	router := newTestRouter(auth, rel, nil)

	do := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, "/company/approve", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer good-token")
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("success", func(t *testing.T) {
		rec := do(fmt.Sprintf(`{"volunteerId":%q}`, volunteerID))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ada")
	})

	t.Run("missing volunteerId", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, do(`{}`).Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, do(`{"volunteerId":"not-a-uuid"}`).Code)
	})
}

func TestCompanySend(t *testing.T) {
	company := &domain.Company{ID: uuid.New()}
	auth := &stubAuthService{
		companyByToken: func(ctx context.Context, token string) (*domain.Company, error) {
			return company, nil
		},
	}
	var gotIDs []domain.VolunteerID
	var gotMessage string
	rel := &stubRelationshipService{
		send: func(ctx context.Context, c *domain.Company, ids []domain.VolunteerID, message string) error {
			gotIDs, gotMessage = ids, message
			return nil
		},
	}
	router := newTestRouter(auth, rel, nil)

	id := uuid.New()
	body := fmt.Sprintf(`{"textMessage":"shift tomorrow","volunteers":[%q]}`, id)
	req := httptest.NewRequest(http.MethodPost, "/company/send", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []domain.VolunteerID{id}, gotIDs)
	assert.Equal(t, "shift tomorrow", gotMessage)
}

func TestVolunteerOpportunities(t *testing.T) {
	auth := &stubAuthService{
		volunteerByToken: func(ctx context.Context, token string) (*domain.Volunteer, error) {
			return &domain.Volunteer{ID: uuid.New()}, nil
		},
	}
	rel := &stubRelationshipService{
		opportunities: func(ctx context.Context) ([]dto.CompanyView, error) {
			return []dto.CompanyView{{ID: uuid.New().String(), CompanyName: "acme"}}, nil
		},
	}
	router := newTestRouter(auth, rel, nil)

	req := httptest.NewRequest(http.MethodGet, "/volunteer/opportunities", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "acme")
}

func TestVerifyWebhook(t *testing.T) {
	subs := &stubSubscriptionService{
		handleInbound: func(ctx context.Context, from, body string) (string, error) {
			switch body {
			case "TEXT":
				return "Volly: Thank you for subscribing. Reply STOP to unsubscribe.", nil
			case "boom":
				return "", errors.New("store down")
			}
			return "", nil
		},
	}
	router := newTestRouter(nil, nil, subs)

	post := func(from, body string) *httptest.ResponseRecorder {
		form := fmt.Sprintf("From=%s&Body=%s", from, body)
		req := httptest.NewRequest(http.MethodPost, "/verify", strings.NewReader(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("subscribe reply", func(t *testing.T) {
		rec := post("%2B13195550142", "TEXT")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/xml", rec.Header().Get("Content-Type"))
		assert.Equal(t, "<Response><Message>Volly: Thank you for subscribing. Reply STOP to unsubscribe.</Message></Response>", rec.Body.String())
	})

	t.Run("silent ack", func(t *testing.T) {
		rec := post("%2B13195550142", "stop")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "<Response></Response>", rec.Body.String())
	})

	t.Run("service failure still acks", func(t *testing.T) {
		rec := post("%2B13195550142", "boom")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "<Response></Response>", rec.Body.String())
	})
}

func TestVolunteerUpdateEchoesStoredFields(t *testing.T) {
	volunteer := &domain.Volunteer{ID: uuid.New(), UserName: "ada", PhoneNumber: "+13195550142"}
	auth := &stubAuthService{
		volunteerByToken: func(ctx context.Context, token string) (*domain.Volunteer, error) {
			return volunteer, nil
		},
		updateVolunteer: func(ctx context.Context, v *domain.Volunteer, u dto.VolunteerUpdate) (string, error) {
			v.PhoneNumber = "+16415552222"
			return "", nil
		},
	}
	router := newTestRouter(auth, nil, nil)

	req := httptest.NewRequest(http.MethodPut, "/volunteer/update", strings.NewReader(`{"phoneNumber":"641-555-2222"}`))
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"phoneNumber":"+16415552222"}`, rec.Body.String())
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: fmt.Errorf("%w: bad field", domain.ErrValidation), want: http.StatusBadRequest},
		{name: "unauthorized", err: domain.ErrUnauthorized, want: http.StatusUnauthorized},
		{name: "not found", err: fmt.Errorf("%w: company", domain.ErrNotFound), want: http.StatusNotFound},
		{name: "store not found", err: store.ErrRecordNotFound, want: http.StatusNotFound},
		{name: "duplicate", err: domain.ErrDuplicate, want: http.StatusConflict},
		{name: "driver duplicate key", err: errors.New(`ERROR: duplicate key value violates unique constraint "uni_companies_email"`), want: http.StatusConflict},
		{name: "driver validation", err: errors.New("validation failed on column phone_number"), want: http.StatusBadRequest},
		{name: "driver bad uuid", err: errors.New("invalid input syntax for type uuid"), want: http.StatusNotFound},
		{name: "unknown", err: errors.New("disk on fire"), want: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusFor(tc.err))
		})
	}
}
