package domain

import "github.com/google/uuid"

type CompanyID = uuid.UUID
type VolunteerID = uuid.UUID
