package impl

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"volly/internal/domain"
	"volly/internal/store"
)

// memoryStore implements dataStore over maps so services can be exercised
// without a database. Lookups return copies; Save writes copies back, which
// matches the read-modify-write document semantics of the real store.
type memoryStore struct {
	mu          sync.Mutex
	companies   map[uuid.UUID]*domain.Company
	volunteers  map[uuid.UUID]*domain.Volunteer
	unverifieds map[uuid.UUID]*domain.UnverifiedAccount
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		companies:   make(map[uuid.UUID]*domain.Company),
		volunteers:  make(map[uuid.UUID]*domain.Volunteer),
		unverifieds: make(map[uuid.UUID]*domain.UnverifiedAccount),
	}
}

func (m *memoryStore) Companies() companyStore { return &memoryCompanyStore{m} }
func (m *memoryStore) Volunteers() volunteerStore { return &memoryVolunteerStore{m} }
func (m *memoryStore) UnverifiedAccounts() unverifiedAccountStore {
	return &memoryUnverifiedStore{m}
}

func copyCompany(c *domain.Company) *domain.Company {
	out := *c
	out.PendingVolunteers = append(out.PendingVolunteers[:0:0], c.PendingVolunteers...)
	out.ActiveVolunteers = append(out.ActiveVolunteers[:0:0], c.ActiveVolunteers...)
	return &out
}

func copyVolunteer(v *domain.Volunteer) *domain.Volunteer {
	out := *v
	out.PendingCompanies = append(out.PendingCompanies[:0:0], v.PendingCompanies...)
	out.ActiveCompanies = append(out.ActiveCompanies[:0:0], v.ActiveCompanies...)
	return &out
}

type memoryCompanyStore struct{ m *memoryStore }

func (s *memoryCompanyStore) Create(ctx context.Context, c *domain.Company) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	s.m.companies[c.ID] = copyCompany(c)
	return nil
}

func (s *memoryCompanyStore) GetByID(ctx context.Context, id domain.CompanyID) (*domain.Company, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	c, ok := s.m.companies[id]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	return copyCompany(c), nil
}

func (s *memoryCompanyStore) GetByName(ctx context.Context, name string) (*domain.Company, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, c := range s.m.companies {
		if c.CompanyName == name {
			return copyCompany(c), nil
		}
	}
	return nil, store.ErrRecordNotFound
}

func (s *memoryCompanyStore) GetByTokenSeed(ctx context.Context, seed string) (*domain.Company, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, c := range s.m.companies {
		if c.TokenSeed == seed {
			return copyCompany(c), nil
		}
	}
	return nil, store.ErrRecordNotFound
}

func (s *memoryCompanyStore) Save(ctx context.Context, c *domain.Company) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.companies[c.ID] = copyCompany(c)
	return nil
}

func (s *memoryCompanyStore) Delete(ctx context.Context, id domain.CompanyID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	delete(s.m.companies, id)
	return nil
}

func (s *memoryCompanyStore) All(ctx context.Context) ([]*domain.Company, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	out := make([]*domain.Company, 0, len(s.m.companies))
	for _, c := range s.m.companies {
		out = append(out, copyCompany(c))
	}
	return out, nil
}

func (s *memoryCompanyStore) GetByIDs(ctx context.Context, ids []domain.CompanyID) ([]*domain.Company, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var out []*domain.Company
	for _, id := range ids {
		if c, ok := s.m.companies[id]; ok {
			out = append(out, copyCompany(c))
		}
	}
	return out, nil
}

type memoryVolunteerStore struct{ m *memoryStore }

func (s *memoryVolunteerStore) Create(ctx context.Context, v *domain.Volunteer) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	s.m.volunteers[v.ID] = copyVolunteer(v)
	return nil
}

func (s *memoryVolunteerStore) GetByID(ctx context.Context, id domain.VolunteerID) (*domain.Volunteer, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	v, ok := s.m.volunteers[id]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	return copyVolunteer(v), nil
}

func (s *memoryVolunteerStore) GetByUserName(ctx context.Context, userName string) (*domain.Volunteer, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, v := range s.m.volunteers {
		if v.UserName == userName {
			return copyVolunteer(v), nil
		}
	}
	return nil, store.ErrRecordNotFound
}

func (s *memoryVolunteerStore) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.Volunteer, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, v := range s.m.volunteers {
		if v.PhoneNumber == phoneNumber {
			return copyVolunteer(v), nil
		}
	}
	return nil, store.ErrRecordNotFound
}

func (s *memoryVolunteerStore) GetByTokenSeed(ctx context.Context, seed string) (*domain.Volunteer, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, v := range s.m.volunteers {
		if v.TokenSeed == seed {
			return copyVolunteer(v), nil
		}
	}
	return nil, store.ErrRecordNotFound
}

func (s *memoryVolunteerStore) Save(ctx context.Context, v *domain.Volunteer) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.volunteers[v.ID] = copyVolunteer(v)
	return nil
}

func (s *memoryVolunteerStore) Delete(ctx context.Context, id domain.VolunteerID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	delete(s.m.volunteers, id)
	return nil
}

func (s *memoryVolunteerStore) All(ctx context.Context) ([]*domain.Volunteer, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	out := make([]*domain.Volunteer, 0, len(s.m.volunteers))
	for _, v := range s.m.volunteers {
		out = append(out, copyVolunteer(v))
	}
	return out, nil
}

func (s *memoryVolunteerStore) GetByIDs(ctx context.Context, ids []domain.VolunteerID) ([]*domain.Volunteer, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var out []*domain.Volunteer
	for _, id := range ids {
		if v, ok := s.m.volunteers[id]; ok {
			out = append(out, copyVolunteer(v))
		}
	}
	return out, nil
}

type memoryUnverifiedStore struct{ m *memoryStore }

func (s *memoryUnverifiedStore) Create(ctx context.Context, a *domain.UnverifiedAccount) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	rec := *a
	s.m.unverifieds[a.ID] = &rec
	return nil
}

func (s *memoryUnverifiedStore) All(ctx context.Context) ([]*domain.UnverifiedAccount, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	out := make([]*domain.UnverifiedAccount, 0, len(s.m.unverifieds))
	for _, a := range s.m.unverifieds {
		rec := *a
		out = append(out, &rec)
	}
	return out, nil
}

func (s *memoryUnverifiedStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	delete(s.m.unverifieds, id)
	return nil
}

func (s *memoryUnverifiedStore) DeleteByVolunteerID(ctx context.Context, volunteerID domain.VolunteerID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for id, a := range s.m.unverifieds {
		if a.VolunteerID == volunteerID {
			delete(s.m.unverifieds, id)
		}
	}
	return nil
}

// stubNotifier records sends; lookups succeed unless told otherwise.
type stubNotifier struct {
	mu      sync.Mutex
	sends   []sentMessage
	sendErr error
	invalid bool
}

type sentMessage struct {
	to   string
	body string
}

func (s *stubNotifier) Send(ctx context.Context, to, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sends = append(s.sends, sentMessage{to: to, body: body})
	return nil
}

func (s *stubNotifier) Lookup(ctx context.Context, phoneNumber string) (bool, error) {
	return !s.invalid, nil
}

func (s *stubNotifier) sent() []sentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sentMessage(nil), s.sends...)
}
