package dto

type SendRequest struct {
	TextMessage string   `json:"textMessage"`
	Volunteers  []string `json:"volunteers"`
}

// RosterResponse is returned by approve/terminate so the company sees both
// sets after the transition.
type RosterResponse struct {
	PendingVolunteers []VolunteerView `json:"pendingVolunteers"`
	ActiveVolunteers  []VolunteerView `json:"activeVolunteers"`
}

// CompanyListResponse is the volunteer-side mirror.
type CompanyListResponse struct {
	PendingCompanies []CompanyView `json:"pendingCompanies"`
	ActiveCompanies  []CompanyView `json:"activeCompanies"`
}

type OpportunitiesResponse struct {
	Companies []CompanyView `json:"companies"`
}
