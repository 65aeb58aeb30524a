package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"volly/internal/domain"
	"volly/internal/dto"
	"volly/internal/observability/metrics"
	"volly/internal/phone"
	"volly/internal/service"
	"volly/internal/store"
)

// optInPrompt is the first text a volunteer receives after signing up.
const optInPrompt = "Volly: Reply TEXT to subscribe to volunteer notifications. Msg & data rates may apply."

type AuthServiceImpl struct {
	Store           dataStore
	PasswordService service.PasswordService
	TokenService    service.TokenService
	Notifier        service.Notifier
}

func NewAuthServiceImpl(st *store.Store, pw service.PasswordService, ts service.TokenService, notifier service.Notifier) *AuthServiceImpl {
	return &AuthServiceImpl{
		Store:           gormStoreAdapter{store: st},
		PasswordService: pw,
		TokenService:    ts,
		Notifier:        notifier,
	}
}

func (a *AuthServiceImpl) SignupCompany(ctx context.Context, r dto.CompanySignupRequest) (string, error) {
	result := "failure"
	defer func() { metrics.SignupsTotal.WithLabelValues("company", result).Inc() }()

	if r.CompanyName == "" || r.Password == "" || r.Email == "" || r.PhoneNumber == "" || r.Website == "" {
		return "", fmt.Errorf("%w: companyName, password, email, phoneNumber, and website are required", domain.ErrValidation)
	}
	normalized, ok := phone.Normalize(r.PhoneNumber)
	if !ok {
		return "", fmt.Errorf("%w: invalid phone number", domain.ErrValidation)
	}

	hash, err := a.PasswordService.Hash(r.Password)
	if err != nil {
		return "", err
	}
	seed, err := a.TokenService.NewSeed()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	company := &domain.Company{
		ID:           uuid.New(),
		CompanyName:  r.CompanyName,
		PasswordHash: hash,
		Email:        r.Email,
		PhoneNumber:  normalized,
		Website:      r.Website,
		TokenSeed:    seed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := a.Store.Companies().Create(ctx, company); err != nil {
		return "", err // unique constraints bubble up (name/email/phone/website)
	}

	token, err := a.TokenService.Sign(seed)
	if err != nil {
		return "", err
	}
	result = "success"
	return token, nil
}

func (a *AuthServiceImpl) SignupVolunteer(ctx context.Context, r dto.VolunteerSignupRequest) (string, error) {
	result := "failure"
	defer func() { metrics.SignupsTotal.WithLabelValues("volunteer", result).Inc() }()

	if r.FirstName == "" || r.LastName == "" || r.UserName == "" || r.Password == "" || r.Email == "" || r.PhoneNumber == "" {
		return "", fmt.Errorf("%w: firstName, lastName, userName, password, email, and phoneNumber are required", domain.ErrValidation)
	}
	normalized, ok := phone.Normalize(r.PhoneNumber)
	if !ok {
		return "", fmt.Errorf("%w: invalid phone number", domain.ErrValidation)
	}

	hash, err := a.PasswordService.Hash(r.Password)
	if err != nil {
		return "", err
	}
	seed, err := a.TokenService.NewSeed()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	volunteer := &domain.Volunteer{
		ID:             uuid.New(),
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		UserName:       r.UserName,
		Email:          r.Email,
		PhoneNumber:    normalized,
		PasswordHash:   hash,
		TokenSeed:      seed,
		Textable:       false,
		FirstSubscribe: true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := a.Store.Volunteers().Create(ctx, volunteer); err != nil {
		return "", err
	}

	unverified := &domain.UnverifiedAccount{
		ID:          uuid.New(),
		VolunteerID: volunteer.ID,
		PhoneNumber: normalized,
		CreatedAt:   now,
	}
	if err := a.Store.UnverifiedAccounts().Create(ctx, unverified); err != nil {
		return "", err
	}

	// Number lookup and opt-in prompt are side effects of a signup that has
	// already succeeded; failures are logged and dropped.
	a.initiateValidation(ctx, volunteer)

	token, err := a.TokenService.Sign(seed)
	if err != nil {
		return "", err
	}
	result = "success"
	return token, nil
}

func (a *AuthServiceImpl) initiateValidation(ctx context.Context, v *domain.Volunteer) {
	valid, err := a.Notifier.Lookup(ctx, v.PhoneNumber)
	if err != nil {
		slog.Warn("phone lookup failed", "volunteer_id", v.ID, "error", err)
		return
	}
	if !valid {
		slog.Warn("phone number failed lookup", "volunteer_id", v.ID, "phone", v.PhoneNumber)
		return
	}
	if err := a.Notifier.Send(ctx, v.PhoneNumber, optInPrompt); err != nil {
		slog.Warn("opt-in prompt failed", "volunteer_id", v.ID, "error", err)
	}
}

func (a *AuthServiceImpl) LoginCompany(ctx context.Context, name, password string) (string, error) {
	result := "failure"
	defer func() { metrics.LoginsTotal.WithLabelValues("company", result).Inc() }()

	company, err := a.Store.Companies().GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: company", domain.ErrNotFound)
		}
		return "", err
	}
	if err := a.PasswordService.Verify(password, company.PasswordHash); err != nil {
		return "", err
	}

	token, err := a.rotateCompanySeed(ctx, company)
	if err != nil {
		return "", err
	}
	result = "success"
	return token, nil
}

func (a *AuthServiceImpl) LoginVolunteer(ctx context.Context, userName, password string) (string, error) {
	result := "failure"
	defer func() { metrics.LoginsTotal.WithLabelValues("volunteer", result).Inc() }()

	volunteer, err := a.Store.Volunteers().GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: volunteer", domain.ErrNotFound)
		}
		return "", err
	}
	if err := a.PasswordService.Verify(password, volunteer.PasswordHash); err != nil {
		return "", err
	}

	token, err := a.rotateVolunteerSeed(ctx, volunteer)
	if err != nil {
		return "", err
	}
	result = "success"
	return token, nil
}

// rotateCompanySeed mints a fresh tokenSeed, persists it, and signs a token.
// Rotation invalidates any previously issued token for the account.
func (a *AuthServiceImpl) rotateCompanySeed(ctx context.Context, c *domain.Company) (string, error) {
	seed, err := a.TokenService.NewSeed()
	if err != nil {
		return "", err
	}
	c.TokenSeed = seed
	c.UpdatedAt = time.Now().UTC()
	if err := a.Store.Companies().Save(ctx, c); err != nil {
		return "", err
	}
	return a.TokenService.Sign(seed)
}

func (a *AuthServiceImpl) rotateVolunteerSeed(ctx context.Context, v *domain.Volunteer) (string, error) {
	seed, err := a.TokenService.NewSeed()
	if err != nil {
		return "", err
	}
	v.TokenSeed = seed
	v.UpdatedAt = time.Now().UTC()
	if err := a.Store.Volunteers().Save(ctx, v); err != nil {
		return "", err
	}
	return a.TokenService.Sign(seed)
}

func (a *AuthServiceImpl) CompanyByToken(ctx context.Context, token string) (*domain.Company, error) {
	seed, err := a.TokenService.ParseSeed(token)
	if err != nil {
		return nil, err
	}
	company, err := a.Store.Companies().GetByTokenSeed(ctx, seed)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: company", domain.ErrNotFound)
		}
		return nil, err
	}
	return company, nil
}

func (a *AuthServiceImpl) VolunteerByToken(ctx context.Context, token string) (*domain.Volunteer, error) {
	seed, err := a.TokenService.ParseSeed(token)
	if err != nil {
		return nil, err
	}
	volunteer, err := a.Store.Volunteers().GetByTokenSeed(ctx, seed)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: volunteer", domain.ErrNotFound)
		}
		return nil, err
	}
	return volunteer, nil
}

func (a *AuthServiceImpl) UpdateCompany(ctx context.Context, c *domain.Company, u dto.CompanyUpdate) (string, error) {
	if u.Empty() {
		return "", fmt.Errorf("%w: no updatable field provided", domain.ErrValidation)
	}

	if u.CompanyName != nil {
		if *u.CompanyName == "" {
			return "", fmt.Errorf("%w: companyName cannot be empty", domain.ErrValidation)
		}
		c.CompanyName = *u.CompanyName
	}
	if u.Email != nil {
		if *u.Email == "" {
			return "", fmt.Errorf("%w: email cannot be empty", domain.ErrValidation)
		}
		c.Email = *u.Email
	}
	if u.Website != nil {
		if *u.Website == "" {
			return "", fmt.Errorf("%w: website cannot be empty", domain.ErrValidation)
		}
		c.Website = *u.Website
	}
	if u.PhoneNumber != nil {
		normalized, ok := phone.Normalize(*u.PhoneNumber)
		if !ok {
			return "", fmt.Errorf("%w: invalid phone number", domain.ErrValidation)
		}
		// Unlike the volunteer update, a no-op phone change is accepted here.
		c.PhoneNumber = normalized
	}

	token := ""
	if u.Password != nil {
		hash, err := a.PasswordService.Hash(*u.Password)
		if err != nil {
			return "", err
		}
		c.PasswordHash = hash
		seed, err := a.TokenService.NewSeed()
		if err != nil {
			return "", err
		}
		c.TokenSeed = seed
		token, err = a.TokenService.Sign(seed)
		if err != nil {
			return "", err
		}
	}

	c.UpdatedAt = time.Now().UTC()
	if err := a.Store.Companies().Save(ctx, c); err != nil {
		return "", err
	}
	return token, nil
}

func (a *AuthServiceImpl) UpdateVolunteer(ctx context.Context, v *domain.Volunteer, u dto.VolunteerUpdate) (string, error) {
	if u.Empty() {
		return "", fmt.Errorf("%w: no updatable field provided", domain.ErrValidation)
	}

	if u.FirstName != nil {
		if *u.FirstName == "" {
			return "", fmt.Errorf("%w: firstName cannot be empty", domain.ErrValidation)
		}
		v.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		if *u.LastName == "" {
			return "", fmt.Errorf("%w: lastName cannot be empty", domain.ErrValidation)
		}
		v.LastName = *u.LastName
	}
	if u.UserName != nil {
		if *u.UserName == "" {
			return "", fmt.Errorf("%w: userName cannot be empty", domain.ErrValidation)
		}
		v.UserName = *u.UserName
	}
	if u.Email != nil {
		if *u.Email == "" {
			return "", fmt.Errorf("%w: email cannot be empty", domain.ErrValidation)
		}
		v.Email = *u.Email
	}
	if u.PhoneNumber != nil {
		normalized, ok := phone.Normalize(*u.PhoneNumber)
		if !ok {
			return "", fmt.Errorf("%w: invalid phone number", domain.ErrValidation)
		}
		if normalized == v.PhoneNumber {
			return "", fmt.Errorf("%w: phone number unchanged", domain.ErrValidation)
		}
		v.PhoneNumber = normalized
	}

	token := ""
	if u.Password != nil {
		hash, err := a.PasswordService.Hash(*u.Password)
		if err != nil {
			return "", err
		}
		v.PasswordHash = hash
		seed, err := a.TokenService.NewSeed()
		if err != nil {
			return "", err
		}
		v.TokenSeed = seed
		token, err = a.TokenService.Sign(seed)
		if err != nil {
			return "", err
		}
	}

	v.UpdatedAt = time.Now().UTC()
	if err := a.Store.Volunteers().Save(ctx, v); err != nil {
		return "", err
	}
	return token, nil
}
