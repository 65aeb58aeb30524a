package dto

// Update requests carry only the fields the caller wants to change. Pointer
// fields distinguish "absent" from "set to empty", and nothing outside this
// allow-list ever reaches the record.

type CompanyUpdate struct {
	CompanyName *string `json:"companyName,omitempty"`
	Password    *string `json:"password,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Website     *string `json:"website,omitempty"`
}

func (u CompanyUpdate) Empty() bool {
	return u.CompanyName == nil && u.Password == nil && u.Email == nil &&
		u.PhoneNumber == nil && u.Website == nil
}

type VolunteerUpdate struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	UserName    *string `json:"userName,omitempty"`
	Password    *string `json:"password,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

func (u VolunteerUpdate) Empty() bool {
	return u.FirstName == nil && u.LastName == nil && u.UserName == nil &&
		u.Password == nil && u.Email == nil && u.PhoneNumber == nil
}
