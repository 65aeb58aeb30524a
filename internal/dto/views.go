package dto

import "volly/internal/domain"

// Censored views are the only projection of an account that ever crosses the
// HTTP boundary when listing the other side of a relationship.

type CompanyView struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Website     string `json:"website"`
}

type VolunteerView struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	UserName    string `json:"userName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

func NewCompanyView(c *domain.Company) CompanyView {
	return CompanyView{
		ID:          c.ID.String(),
		CompanyName: c.CompanyName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Website:     c.Website,
	}
}

func NewVolunteerView(v *domain.Volunteer) VolunteerView {
	return VolunteerView{
		ID:          v.ID.String(),
		FirstName:   v.FirstName,
		LastName:    v.LastName,
		UserName:    v.UserName,
		Email:       v.Email,
		PhoneNumber: v.PhoneNumber,
	}
}

func NewCompanyViews(companies []*domain.Company) []CompanyView {
	out := make([]CompanyView, 0, len(companies))
	for _, c := range companies {
		out = append(out, NewCompanyView(c))
	}
	return out
}

func NewVolunteerViews(volunteers []*domain.Volunteer) []VolunteerView {
	out := make([]VolunteerView, 0, len(volunteers))
	for _, v := range volunteers {
		out = append(out, NewVolunteerView(v))
	}
	return out
}
